package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedLayer struct {
	name    string
	handled bool
}

func (l *namedLayer) OnAttach(*Engine)            {}
func (l *namedLayer) OnDetach(*Engine)            {}
func (l *namedLayer) OnUpdate(*Engine, float64)   {}
func (l *namedLayer) OnRender(*Engine, float64)   {}
func (l *namedLayer) OnEvent(*Engine, Event) bool { return l.handled }

func names(ls *LayerStack, reverse bool) []string {
	var out []string
	if reverse {
		ls.ForEachReverse(func(l Layer) bool {
			out = append(out, l.(*namedLayer).name)
			return l.OnEvent(nil, EventCloseRequested{})
		})
		return out
	}
	ls.ForEach(func(l Layer) { out = append(out, l.(*namedLayer).name) })
	return out
}

func TestLayerStackOrder(t *testing.T) {
	var ls LayerStack
	ls.Push(&namedLayer{name: "panel"})
	ls.Push(&namedLayer{name: "overlay"})
	ls.Push(&namedLayer{name: "modal", handled: false})

	assert.Equal(t, []string{"panel", "overlay", "modal"}, names(&ls, false))
	assert.Equal(t, []string{"modal", "overlay", "panel"}, names(&ls, true))
}

func TestLayerStackEventStopsAtHandler(t *testing.T) {
	var ls LayerStack
	ls.Push(&namedLayer{name: "panel"})
	ls.Push(&namedLayer{name: "overlay", handled: true})
	ls.Push(&namedLayer{name: "modal"})

	assert.Equal(t, []string{"modal", "overlay"}, names(&ls, true))
}

func TestLayerStackPop(t *testing.T) {
	var ls LayerStack
	_, ok := ls.Pop()
	assert.False(t, ok)

	ls.Push(&namedLayer{name: "panel"})
	ls.Push(&namedLayer{name: "overlay"})
	top, ok := ls.Pop()
	require.True(t, ok)
	assert.Equal(t, "overlay", top.(*namedLayer).name)
	assert.Equal(t, []string{"panel"}, names(&ls, false))
}
