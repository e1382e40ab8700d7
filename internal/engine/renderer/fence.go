package renderer

import (
	"sort"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// waitTimeout is the per-attempt ClientWaitSync timeout in nanoseconds.
const waitTimeout = uint64(100 * 1000 * 1000)

// Fence maps monotonically increasing completion values onto GL sync
// objects, giving the frame ring a single progress counter to block on.
type Fence struct {
	pending   map[uint64]uintptr
	completed uint64
}

// NewFence creates a fence with nothing pending.
func NewFence() *Fence {
	return &Fence{pending: make(map[uint64]uintptr)}
}

// Signal inserts a sync object tagged with the given value. Values must be
// issued in increasing order.
func (f *Fence) Signal(value uint64) {
	f.pending[value] = gl.FenceSync(gl.SYNC_GPU_COMMANDS_COMPLETE, 0)
}

// Completed polls pending sync objects in order and returns the highest
// value the GPU has finished.
func (f *Fence) Completed() uint64 {
	for _, v := range f.pendingValues() {
		status := gl.ClientWaitSync(f.pending[v], 0, 0)
		if status != gl.ALREADY_SIGNALED && status != gl.CONDITION_SATISFIED {
			break
		}
		f.retire(v)
	}
	return f.completed
}

// Wait blocks until the given value's submission has completed on the GPU.
func (f *Fence) Wait(value uint64) {
	for _, v := range f.pendingValues() {
		if v > value {
			break
		}
		sync := f.pending[v]
		for {
			status := gl.ClientWaitSync(sync, gl.SYNC_FLUSH_COMMANDS_BIT, waitTimeout)
			if status == gl.ALREADY_SIGNALED || status == gl.CONDITION_SATISFIED {
				break
			}
			if status == gl.WAIT_FAILED {
				// Context loss; nothing sensible to block on anymore.
				break
			}
		}
		f.retire(v)
	}
	if value > f.completed {
		f.completed = value
	}
}

func (f *Fence) pendingValues() []uint64 {
	values := make([]uint64, 0, len(f.pending))
	for v := range f.pending {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	return values
}

func (f *Fence) retire(value uint64) {
	gl.DeleteSync(f.pending[value])
	delete(f.pending, value)
	if value > f.completed {
		f.completed = value
	}
}
