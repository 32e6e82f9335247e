package assets

import (
	"embed"
	"fmt"
	"path"
)

//go:embed shaders/*.vert shaders/*.frag
var shaderFS embed.FS

// LoadShader returns an embedded GLSL source as a null-terminated string for
// OpenGL.
func LoadShader(name string) (string, error) {
	b, err := shaderFS.ReadFile(path.Join("shaders", name))
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	// Ensure null termination for gl.Str
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}
