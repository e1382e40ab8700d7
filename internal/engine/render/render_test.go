package render

import (
	"fmt"
	"testing"

	"mirrorbox/internal/engine/mirror"
	"mirrorbox/internal/engine/model"
	"mirrorbox/internal/engine/scene"
)

// recorder is a CommandList that logs state changes and draws.
type recorder struct {
	pipeline string
	ref      uint32
	pass     int

	// ops is a flat trace: "pipeline:<name>", "ref:<n>", "pass:<n>",
	// "draw:<item>".
	ops []string

	failOn string
}

var knownPipelines = map[string]bool{
	PipelineOpaque:      true,
	PipelineTransparent: true,
	PipelineMark:        true,
	PipelineReflections: true,
	PipelineShadow:      true,
}

func (r *recorder) SetPipeline(name string) error {
	if name == r.failOn || !knownPipelines[name] {
		return fmt.Errorf("unknown pipeline %q", name)
	}
	r.pipeline = name
	r.ops = append(r.ops, "pipeline:"+name)
	return nil
}

func (r *recorder) SetStencilRef(ref uint32) {
	r.ref = ref
	r.ops = append(r.ops, fmt.Sprintf("ref:%d", ref))
}

func (r *recorder) SetPass(slot int) {
	r.pass = slot
	r.ops = append(r.ops, fmt.Sprintf("pass:%d", slot))
}

func (r *recorder) DrawItem(it *scene.RenderItem) {
	r.ops = append(r.ops, "draw:"+it.Name)
}

func testStore(t *testing.T) *scene.Store {
	t.Helper()
	s := scene.NewStore()
	s.AddGeometry(&scene.Geometry{Name: scene.RoomGeometry, Mesh: model.Room()})
	s.AddGeometry(&scene.Geometry{
		Name: scene.SkullGeometry,
		Mesh: &model.Mesh{
			Vertices:  make([]model.Vertex, 3),
			Indices:   []uint32{0, 1, 2},
			Submeshes: map[string]model.Submesh{"skull": {IndexCount: 3}},
		},
	})
	if _, err := scene.Build(s, 3); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestDrawSequence(t *testing.T) {
	store := testStore(t)
	rec := &recorder{}

	if err := NewCompositor(store, true).Draw(rec); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	want := []string{
		"pass:0", "ref:0", "pipeline:opaque",
		"draw:floor", "draw:wall", "draw:skull0", "draw:skull1",
	}
	for _, side := range mirror.DrawOrder {
		face := "mirror" + side.String()
		want = append(want,
			"ref:1", "pipeline:markStencilMirrors", "draw:"+face,
			"pass:1", "pipeline:drawStencilReflections",
			fmt.Sprintf("draw:skull0/%s", side), fmt.Sprintf("draw:skull1/%s", side),
			"ref:0", "pipeline:markStencilMirrors", "draw:"+face,
		)
	}
	want = append(want, "pass:0", "ref:0", "pipeline:transparent")
	for _, side := range mirror.DrawOrder {
		want = append(want, "draw:mirror"+side.String())
	}
	want = append(want, "pipeline:shadow", "draw:skull0/shadow", "draw:skull1/shadow")

	if len(rec.ops) != len(want) {
		t.Fatalf("op count: got %d, want %d\ngot:  %v", len(rec.ops), len(want), rec.ops)
	}
	for i := range want {
		if rec.ops[i] != want[i] {
			t.Fatalf("op %d: got %q, want %q", i, rec.ops[i], want[i])
		}
	}
}

func TestShadowPassDisabled(t *testing.T) {
	store := testStore(t)
	rec := &recorder{}

	if err := NewCompositor(store, false).Draw(rec); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	for _, op := range rec.ops {
		if op == "pipeline:shadow" || op == "draw:skull0/shadow" {
			t.Fatalf("shadow pass recorded while disabled: %v", rec.ops)
		}
	}
}

// TestStencilReturnsToZero simulates the stencil reference written by each
// mark pass: every 1-mark must be undone before the frame ends, and the next
// side must start from a zeroed stencil.
func TestStencilReturnsToZero(t *testing.T) {
	store := testStore(t)
	rec := &recorder{}

	if err := NewCompositor(store, true).Draw(rec); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	stencil := uint32(0)
	var ref uint32
	for _, op := range rec.ops {
		switch {
		case op == "ref:0":
			ref = 0
		case op == "ref:1":
			if stencil != 0 {
				t.Fatal("marking a new side over a dirty stencil buffer")
			}
			ref = 1
		case op == "pipeline:"+PipelineMark:
			stencil = ref
		}
	}
	if stencil != 0 {
		t.Errorf("stencil left at %d after frame", stencil)
	}
}

func TestUnknownPipelineFails(t *testing.T) {
	store := testStore(t)

	for _, fail := range []string{PipelineOpaque, PipelineMark, PipelineReflections, PipelineTransparent, PipelineShadow} {
		rec := &recorder{failOn: fail}
		if err := NewCompositor(store, true).Draw(rec); err == nil {
			t.Errorf("expected error when %q is missing", fail)
		}
	}
}
