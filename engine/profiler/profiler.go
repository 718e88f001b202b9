// Package profiler records nested timing scopes into a lock-free ring and
// exports them as a speedscope evented profile.
package profiler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

var ErrNoEvents = errors.New("profiler: no events recorded")

// Init enables recording with room for capacity events. Older events are
// overwritten once the ring is full. Until Init is called Begin is a no-op.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 16
	}
	evrb.init(capacity)
}

// Enabled reports whether Init was called.
func Enabled() bool { return evrb.ready.Load() }

// Reset drops every recorded event and disables recording.
func Reset() {
	evrb.ready.Store(false)
	evrb.write.Store(0)
	evrb.evs = nil
}

// Begin opens a scope and returns the func that closes it.
//
//	defer profiler.Begin("ui.Render")()
func Begin(name string) func() {
	if !evrb.ready.Load() {
		return func() {}
	}
	fid := intern(name)
	start := time.Now().UnixNano()
	evrb.push(evEntry{AtNS: start, FrameID: fid, Open: true})
	return func() {
		end := max(time.Now().UnixNano(), start)
		evrb.push(evEntry{AtNS: end, FrameID: fid, Open: false})
	}
}

// WriteSpeedscope encodes the recorded events as a speedscope file.
func WriteSpeedscope(w io.Writer, name string) error {
	evs := evrb.snapshot()
	if len(evs) == 0 {
		return ErrNoEvents
	}
	doc, err := buildSpeedscope(evs, name)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Dump writes the profile to path, or to the temp dir when path is empty,
// and returns the path written.
func Dump(path string) (string, error) {
	if path == "" {
		path = filepath.Join(os.TempDir(), "aether.speedscope.json")
	}
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("profiler dump: %w", err)
	}
	if err := WriteSpeedscope(f, filepath.Base(path)); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("profiler dump: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("profiler dump: %w", err)
	}
	return path, nil
}

// Open dumps the profile and launches the speedscope viewer on it when the
// viewer is installed.
func Open(path string) (string, error) {
	path, err := Dump(path)
	if err != nil {
		return "", err
	}
	bin, err := exec.LookPath("speedscope")
	if err != nil {
		slog.Info("speedscope not installed, profile written", "path", path)
		return path, nil
	}
	if err := exec.Command(bin, path).Start(); err != nil {
		slog.Warn("launch speedscope", "err", err)
	}
	return path, nil
}

func MemoryUsage() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func MemoryAllocs() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Mallocs
}

func NumGoroutine() int { return runtime.NumGoroutine() }
func NumCPU() int       { return runtime.NumCPU() }

// ---------- event ring ----------

type evEntry struct {
	AtNS    int64
	FrameID int
	Open    bool
}

type evRing struct {
	ready atomic.Bool
	cap   uint64
	write atomic.Uint64
	evs   []evEntry
}

func (r *evRing) init(capacity int) {
	r.cap = uint64(capacity)
	r.evs = make([]evEntry, r.cap)
	r.write.Store(0)
	r.ready.Store(true)
}

func (r *evRing) push(e evEntry) {
	if !r.ready.Load() {
		return
	}
	i := r.write.Add(1) - 1
	r.evs[i%r.cap] = e
}

// snapshot returns the retained events in write order.
func (r *evRing) snapshot() []evEntry {
	if !r.ready.Load() {
		return nil
	}
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

var evrb evRing

// ---------- string interner ----------

var (
	muFrames sync.Mutex
	frames   []string
	index    = map[string]int{}
)

func intern(name string) int {
	muFrames.Lock()
	defer muFrames.Unlock()
	if id, ok := index[name]; ok {
		return id
	}
	id := len(frames)
	index[name] = id
	frames = append(frames, name)
	return id
}
