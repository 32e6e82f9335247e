package profiler

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepClock advances one microsecond per reading.
func stepClock(p *Profiler) {
	var t int64
	p.now = func() int64 { t += 1000; return t }
}

func decode(t *testing.T, p *Profiler) ssFile {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, p.WriteSpeedscope(&buf))
	var doc ssFile
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	return doc
}

func TestNestedScopes(t *testing.T) {
	p := New(64)
	stepClock(p)

	endFrame := p.Start("frame")
	endUI := p.Start("ui")
	endUI()
	endDraw := p.Start("draw")
	endDraw()
	endFrame()

	doc := decode(t, p)
	require.Len(t, doc.Profiles, 1)
	assert.Equal(t, []ssFrame{{"frame"}, {"ui"}, {"draw"}}, doc.Shared.Frames)

	evs := doc.Profiles[0].Events
	require.Len(t, evs, 6)
	assert.Equal(t, ssEvent{Type: "O", At: 0, Frame: 0}, evs[0])
	assert.Equal(t, ssEvent{Type: "C", At: 5, Frame: 0}, evs[5])
	assert.Equal(t, int64(5), doc.Profiles[0].EndValue)
}

func TestOpenScopesAreClosed(t *testing.T) {
	p := New(64)
	stepClock(p)
	p.Start("outer")
	p.Start("inner")

	evs := decode(t, p).Profiles[0].Events
	require.Len(t, evs, 4)
	assert.Equal(t, ssEvent{Type: "C", At: 1, Frame: 1}, evs[2])
	assert.Equal(t, ssEvent{Type: "C", At: 1, Frame: 0}, evs[3])
}

func TestRingDropsOrphanCloses(t *testing.T) {
	p := New(2)
	stepClock(p)
	end := p.Start("a")
	p.Start("b")()
	end()

	// only "b" close and "a" close survive; neither has its open
	var buf bytes.Buffer
	assert.Error(t, p.WriteSpeedscope(&buf))
}

func TestNilProfiler(t *testing.T) {
	var p *Profiler
	p.Start("x")()
	assert.Error(t, p.WriteSpeedscope(&bytes.Buffer{}))
}

func TestDumpWritesFile(t *testing.T) {
	p := New(8)
	p.Start("frame")()

	path := filepath.Join(t.TempDir(), "capture.speedscope.json")
	require.NoError(t, p.Dump(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"evented"`)
	assert.NoFileExists(t, path+".tmp")
}
