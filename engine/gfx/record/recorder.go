// Package record implements core.Renderer by remembering every call. It
// backs the trace command and lets the rendering core be tested without a
// window.
package record

import (
	"fmt"
	"io"
	"strings"

	"github.com/spnavcfg/spnavcfg/engine/colors"
	"github.com/spnavcfg/spnavcfg/engine/core"
)

type Op uint8

const (
	OpResize Op = iota
	OpClear
	OpDraw
	OpDrawTextured
	OpScissor
	OpState
)

func (o Op) String() string {
	return [...]string{"resize", "clear", "draw", "draw-textured", "scissor", "state"}[o]
}

// Call is one recorded backend invocation. Only the fields relevant to Op
// are set.
type Call struct {
	Op      Op
	Mode    core.Primitive
	Verts   []core.Vertex
	Texture core.Texture
	Scissor core.ScissorRect
	State   core.RenderState
	Color   colors.Color
	W, H    int
}

func (c Call) String() string {
	switch c.Op {
	case OpResize:
		return fmt.Sprintf("resize %dx%d", c.W, c.H)
	case OpClear:
		return fmt.Sprintf("clear %v", c.Color)
	case OpDraw, OpDrawTextured:
		var b strings.Builder
		fmt.Fprintf(&b, "%s %s n=%d", c.Op, c.Mode, len(c.Verts))
		for i, v := range c.Verts {
			if i == 4 {
				b.WriteString(" ...")
				break
			}
			fmt.Fprintf(&b, " (%.1f,%.1f)", v.X, v.Y)
		}
		return b.String()
	case OpScissor:
		s := c.Scissor
		return fmt.Sprintf("scissor x=%d y=%d w=%d h=%d", s.X, s.Y, s.W, s.H)
	case OpState:
		return fmt.Sprintf("state width=%.1f smooth=%t", c.State.LineWidth, c.State.LineSmooth)
	}
	return c.Op.String()
}

// Texture is the handle returned by Recorder.CreateTexture.
type Texture struct {
	ID   int
	W, H int
}

func (t *Texture) Size() (int, int) { return t.W, t.H }

// Recorder captures calls in order.
type Recorder struct {
	Calls    []Call
	state    core.RenderState
	scissor  core.ScissorRect
	textures int
}

func New() *Recorder { return &Recorder{state: core.DefaultRenderState} }

func (r *Recorder) Init() error { return nil }
func (r *Recorder) Shutdown()   {}

func (r *Recorder) Resize(w, h int) {
	r.Calls = append(r.Calls, Call{Op: OpResize, W: w, H: h})
}

func (r *Recorder) Clear(c colors.Color) {
	r.Calls = append(r.Calls, Call{Op: OpClear, Color: c})
}

func (r *Recorder) Draw(mode core.Primitive, verts []core.Vertex) {
	// callers reuse their vertex slices
	r.Calls = append(r.Calls, Call{Op: OpDraw, Mode: mode, Verts: append([]core.Vertex(nil), verts...), State: r.state, Scissor: r.scissor})
}

func (r *Recorder) DrawTextured(tex core.Texture, verts []core.Vertex) {
	r.Calls = append(r.Calls, Call{Op: OpDrawTextured, Mode: core.Triangles, Texture: tex, Verts: append([]core.Vertex(nil), verts...), State: r.state, Scissor: r.scissor})
}

func (r *Recorder) SetScissor(s core.ScissorRect) {
	r.scissor = s
	r.Calls = append(r.Calls, Call{Op: OpScissor, Scissor: s})
}

func (r *Recorder) State() core.RenderState { return r.state }

func (r *Recorder) SetState(s core.RenderState) {
	r.state = s
	r.Calls = append(r.Calls, Call{Op: OpState, State: s})
}

func (r *Recorder) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("record: invalid texture size %dx%d", desc.Width, desc.Height)
	}
	r.textures++
	return &Texture{ID: r.textures, W: desc.Width, H: desc.Height}, nil
}

// Reset forgets recorded calls but keeps the current state.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

// Draws returns only the draw calls.
func (r *Recorder) Draws() []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == OpDraw || c.Op == OpDrawTextured {
			out = append(out, c)
		}
	}
	return out
}

// Dump writes one line per call.
func (r *Recorder) Dump(w io.Writer) error {
	for i, c := range r.Calls {
		if _, err := fmt.Fprintf(w, "%4d %s\n", i, c); err != nil {
			return err
		}
	}
	return nil
}
