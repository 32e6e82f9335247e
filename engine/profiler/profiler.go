// Package profiler records nested timing scopes into a ring buffer and
// exports them in the speedscope evented format.
package profiler

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Profiler is safe for concurrent Start calls. A nil *Profiler records
// nothing.
type Profiler struct {
	ring evRing

	mu     sync.Mutex
	frames []string
	index  map[string]int

	now func() int64
}

// New keeps the last capacity scope events.
func New(capacity int) *Profiler {
	if capacity <= 0 {
		capacity = 1 << 16
	}
	p := &Profiler{index: map[string]int{}, now: func() int64 { return time.Now().UnixNano() }}
	p.ring.init(capacity)
	return p
}

// Start opens a scope and returns the func that closes it.
func (p *Profiler) Start(name string) func() {
	if p == nil {
		return func() {}
	}
	fid := p.intern(name)
	start := p.now()
	p.ring.push(evEntry{AtNS: start, FrameID: fid, Open: true})
	return func() {
		end := p.now()
		if end < start {
			end = start
		}
		p.ring.push(evEntry{AtNS: end, FrameID: fid})
	}
}

func (p *Profiler) intern(name string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if id, ok := p.index[name]; ok {
		return id
	}
	id := len(p.frames)
	p.index[name] = id
	p.frames = append(p.frames, name)
	return id
}

// WriteSpeedscope encodes the recorded events as a speedscope document.
func (p *Profiler) WriteSpeedscope(w io.Writer) error {
	if p == nil {
		return errors.New("profiler: disabled")
	}
	p.mu.Lock()
	fs := make([]ssFrame, len(p.frames))
	for i, name := range p.frames {
		fs[i] = ssFrame{Name: name}
	}
	p.mu.Unlock()

	events, endUS := balance(p.ring.snapshot())
	if len(events) == 0 {
		return errors.New("profiler: no events to dump")
	}
	doc := ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: fs},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "spnavcfg frames",
			Unit:     "microseconds",
			EndValue: endUS,
			Events:   events,
		}},
		Exporter: "spnavcfg-profiler",
		Name:     "spnavcfg capture",
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&doc)
}

// Dump writes the speedscope document to path atomically.
func (p *Profiler) Dump(path string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := p.WriteSpeedscope(f); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ---------- event ring ----------

type evEntry struct {
	AtNS    int64
	FrameID int
	Open    bool
}

type evRing struct {
	cap   uint64
	write atomic.Uint64
	evs   []evEntry
}

func (r *evRing) init(capacity int) {
	r.cap = uint64(capacity)
	r.evs = make([]evEntry, r.cap)
}

func (r *evRing) push(e evEntry) {
	i := r.write.Add(1) - 1
	r.evs[i%r.cap] = e
}

// snapshot returns the surviving events in write order.
func (r *evRing) snapshot() []evEntry {
	n := r.write.Load()
	start := uint64(0)
	if n > r.cap {
		start = n - r.cap
	}
	out := make([]evEntry, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.evs[k%r.cap])
	}
	return out
}

// balance converts events to microseconds since the first one, drops closes
// that do not match the innermost open scope and closes whatever is still
// open at the last timestamp.
func balance(evs []evEntry) ([]ssEvent, int64) {
	if len(evs) == 0 {
		return nil, 0
	}
	base := evs[0].AtNS
	out := make([]ssEvent, 0, len(evs))
	stack := make([]int, 0, 16)
	var lastUS, endUS int64

	for _, e := range evs {
		atUS := max((e.AtNS-base)/1000, lastUS)
		if e.Open {
			out = append(out, ssEvent{Type: "O", At: atUS, Frame: e.FrameID})
			stack = append(stack, e.FrameID)
		} else {
			// the ring may have overwritten the matching open
			if len(stack) == 0 || stack[len(stack)-1] != e.FrameID {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: atUS, Frame: e.FrameID})
		}
		lastUS = atUS
		endUS = max(endUS, atUS)
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: lastUS, Frame: stack[i]})
	}
	return out, endUS
}

// ---------- speedscope document ----------

type ssFile struct {
	Schema             string      `json:"$schema"`
	Shared             ssShared    `json:"shared"`
	Profiles           []ssProfile `json:"profiles"`
	ActiveProfileIndex int         `json:"activeProfileIndex"`
	Exporter           string      `json:"exporter,omitempty"`
	Name               string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`
	Frame int    `json:"frame"`
}
