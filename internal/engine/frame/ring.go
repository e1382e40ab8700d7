package frame

import "fmt"

// DefaultDepth is the default number of in-flight frames.
const DefaultDepth = 3

// Fence reports GPU progress as a monotonically increasing completion value.
// Wait blocks until the given value has been signaled complete.
type Fence interface {
	Completed() uint64
	Wait(value uint64)
}

// Resource holds one in-flight frame's CPU-visible constant storage.
// The update pass writes it; the compositor reads it while recording.
type Resource struct {
	Objects   []ObjectConstants
	Materials []MaterialConstants
	Pass      [passCount]PassConstants

	// FenceValue is the completion value of the submission that last used
	// this resource, or zero if it has never been submitted.
	FenceValue uint64
}

// Ring cycles through frame resources, blocking on the fence before handing
// out a slot the GPU may still be reading.
type Ring struct {
	resources []*Resource
	current   int
	fence     Fence
}

// NewRing creates a ring of the given depth with room for objectCount object
// slots and materialCount material slots per resource. Depth must be at
// least 2 so CPU and GPU can overlap.
func NewRing(depth, objectCount, materialCount int, fence Fence) (*Ring, error) {
	if depth < 2 {
		return nil, fmt.Errorf("frame ring depth %d too small, need at least 2", depth)
	}

	r := &Ring{
		resources: make([]*Resource, depth),
		fence:     fence,
	}
	for i := range r.resources {
		r.resources[i] = &Resource{
			Objects:   make([]ObjectConstants, objectCount),
			Materials: make([]MaterialConstants, materialCount),
		}
	}
	return r, nil
}

// Depth returns the number of in-flight frames.
func (r *Ring) Depth() int {
	return len(r.resources)
}

// Current returns the resource handed out by the last Advance.
func (r *Ring) Current() *Resource {
	return r.resources[r.current]
}

// Advance cycles to the next resource, blocking until the GPU has finished
// the submission that last used it. This is the frame tick's only blocking
// point.
func (r *Ring) Advance() *Resource {
	r.current = (r.current + 1) % len(r.resources)
	res := r.resources[r.current]
	if res.FenceValue != 0 && r.fence.Completed() < res.FenceValue {
		r.fence.Wait(res.FenceValue)
	}
	return res
}

// Signal records the completion value of the submission that just used the
// current resource.
func (r *Ring) Signal(value uint64) {
	r.resources[r.current].FenceValue = value
}
