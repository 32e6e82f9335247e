package core

// Layer is one slice of the application that receives the loop callbacks.
// The panel window runs a single layer; overlays push more on top.
type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64)
	OnRender(e *Engine, alpha float64)
	OnEvent(e *Engine, ev Event) bool // true stops propagation to lower layers
}

// LayerStack orders layers bottom to top. Updates and rendering walk it
// bottom-up; events and detach walk it top-down.
type LayerStack struct{ list []Layer }

func (ls *LayerStack) Push(l Layer) { ls.list = append(ls.list, l) }

// Pop removes the top layer without detaching it.
func (ls *LayerStack) Pop() (Layer, bool) {
	n := len(ls.list)
	if n == 0 {
		return nil, false
	}
	top := ls.list[n-1]
	ls.list[n-1] = nil
	ls.list = ls.list[:n-1]
	return top, true
}

func (ls *LayerStack) ForEach(f func(Layer)) {
	for _, l := range ls.list {
		f(l)
	}
}

// ForEachReverse visits layers top-down until f returns true.
func (ls *LayerStack) ForEachReverse(f func(Layer) bool) {
	for i := len(ls.list) - 1; i >= 0; i-- {
		if f(ls.list[i]) {
			return
		}
	}
}
