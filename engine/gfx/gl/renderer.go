package glbackend

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/spnavcfg/spnavcfg/engine/assets"
	"github.com/spnavcfg/spnavcfg/engine/colors"
	"github.com/spnavcfg/spnavcfg/engine/core"
	"github.com/spnavcfg/spnavcfg/engine/gfx/renderer2d"
	"github.com/spnavcfg/spnavcfg/engine/scene"
)

// pos2 + uv2 (float32) + RGBA8
const vertexStride = int32(unsafe.Sizeof(core.Vertex{}))

type glTexture struct {
	id   uint32
	w, h int
}

func (t *glTexture) Size() (int, int) { return t.w, t.h }

// RendererGL streams each primitive into one VBO and draws it immediately.
// A 1x1 white texture stands in for untextured draws so one program serves
// both paths.
type RendererGL struct {
	win     core.Window
	program uint32
	vao     uint32
	vbo     uint32
	uVP     int32
	uTex    int32
	white   *glTexture
	camera  *scene.PixelCamera
	state   core.RenderState
	cap     int // VBO capacity in vertices
	wide    []core.Vertex
}

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win, camera: scene.NewPixelCamera(1, 1), state: core.DefaultRenderState}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	vs, err := assets.LoadShader("prim.vert")
	if err != nil {
		return err
	}
	fs, err := assets.LoadShader("prim.frag")
	if err != nil {
		return err
	}
	r.program, err = makeProgram(vs, fs)
	if err != nil {
		return err
	}
	r.uVP = gl.GetUniformLocation(r.program, gl.Str("uViewProjection\x00"))
	r.uTex = gl.GetUniformLocation(r.program, gl.Str("uTex\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	r.cap = 1024
	gl.BufferData(gl.ARRAY_BUFFER, r.cap*int(vertexStride), nil, gl.STREAM_DRAW)

	// layout(location = 0) in vec2 aPos;
	// layout(location = 1) in vec2 aUV;
	// layout(location = 2) in vec4 aColor; (normalized bytes)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, vertexStride, 2*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, vertexStride, 4*4)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	white, err := r.CreateTexture(core.TextureDesc{
		Width: 1, Height: 1,
		Format:    core.TextureRGBA8,
		Pixels:    []byte{255, 255, 255, 255},
		MinFilter: "nearest", MagFilter: "nearest",
	})
	if err != nil {
		return err
	}
	r.white = white.(*glTexture)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.SCISSOR_TEST)
	r.applyState(r.state)

	core.Logger().Info("gl renderer ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))
	return nil
}

func (r *RendererGL) Shutdown() {
	if r.white != nil {
		gl.DeleteTextures(1, &r.white.id)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.Scissor(0, 0, int32(w), int32(h))
	r.camera.SetViewportPixels(w, h)
}

func (r *RendererGL) Clear(c colors.Color) {
	f := c.Float()
	// glClear honors the scissor box
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(f[0], f[1], f[2], f[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Enable(gl.SCISSOR_TEST)
}

func (r *RendererGL) SetScissor(s core.ScissorRect) {
	gl.Scissor(s.X, s.Y, s.W, s.H)
}

func (r *RendererGL) State() core.RenderState { return r.state }

func (r *RendererGL) SetState(s core.RenderState) {
	r.applyState(s)
	r.state = s
}

// applyState never sets a line width above 1: core contexts may reject it,
// so Draw expands wider lines into triangles instead.
func (r *RendererGL) applyState(s core.RenderState) {
	gl.LineWidth(min(s.LineWidth, 1))
	if s.LineSmooth {
		gl.Enable(gl.LINE_SMOOTH)
	} else {
		gl.Disable(gl.LINE_SMOOTH)
	}
}

func glMode(m core.Primitive) uint32 {
	switch m {
	case core.Lines:
		return gl.LINES
	case core.LineStrip:
		return gl.LINE_STRIP
	case core.LineLoop:
		return gl.LINE_LOOP
	case core.TriangleFan:
		return gl.TRIANGLE_FAN
	default:
		return gl.TRIANGLES
	}
}

func (r *RendererGL) Draw(mode core.Primitive, verts []core.Vertex) {
	if wideLine(mode, r.state.LineWidth) {
		r.wide = renderer2d.WideLines(r.wide[:0], mode, verts, r.state.LineWidth)
		r.draw(r.white, gl.TRIANGLES, r.wide)
		return
	}
	r.draw(r.white, glMode(mode), verts)
}

func wideLine(mode core.Primitive, width float32) bool {
	switch mode {
	case core.Lines, core.LineStrip, core.LineLoop:
		return width > 1
	}
	return false
}

func (r *RendererGL) DrawTextured(tex core.Texture, verts []core.Vertex) {
	t, ok := tex.(*glTexture)
	if !ok {
		return
	}
	r.draw(t, gl.TRIANGLES, verts)
}

func (r *RendererGL) draw(tex *glTexture, mode uint32, verts []core.Vertex) {
	if len(verts) == 0 {
		return
	}
	gl.UseProgram(r.program)
	vp := r.camera.VP()
	gl.UniformMatrix4fv(r.uVP, 1, false, &vp[0])
	gl.Uniform1i(r.uTex, 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	size := len(verts) * int(vertexStride)
	if len(verts) > r.cap {
		for r.cap < len(verts) {
			r.cap *= 2
		}
		gl.BufferData(gl.ARRAY_BUFFER, r.cap*int(vertexStride), nil, gl.STREAM_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(&verts[0]))
	gl.DrawArrays(mode, 0, int32(len(verts)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.UseProgram(0)
}

func glFilter(s string) int32 {
	if s == "nearest" {
		return gl.NEAREST
	}
	return gl.LINEAR
}

func (r *RendererGL) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("create texture: invalid size %dx%d", desc.Width, desc.Height)
	}
	if want := desc.Width * desc.Height * 4; len(desc.Pixels) != want {
		return nil, fmt.Errorf("create texture: want %d bytes, got %d", want, len(desc.Pixels))
	}
	t := &glTexture{w: desc.Width, h: desc.Height}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilter(desc.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter(desc.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(desc.Width), int32(desc.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(desc.Pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
