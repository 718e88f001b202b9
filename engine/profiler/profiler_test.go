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

func decode(t *testing.T) ssFile {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteSpeedscope(&buf, "test"))
	var doc ssFile
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	return doc
}

func types(evs []ssEvent) string {
	var s string
	for _, e := range evs {
		s += e.Type
	}
	return s
}

func TestBegin_DisabledIsNoop(t *testing.T) {
	Reset()
	assert.False(t, Enabled())
	Begin("idle")()
	assert.ErrorIs(t, WriteSpeedscope(&bytes.Buffer{}, "x"), ErrNoEvents)
}

func TestSpeedscope_NestedScopes(t *testing.T) {
	Reset()
	Init(64)
	t.Cleanup(Reset)

	outer := Begin("frame")
	Begin("update")()
	Begin("render")()
	outer()

	doc := decode(t)
	require.Len(t, doc.Profiles, 1)
	p := doc.Profiles[0]
	assert.Equal(t, "evented", p.Type)
	assert.Equal(t, "OOCOCC", types(p.Events))
	assert.Equal(t, "frame", doc.Shared.Frames[p.Events[0].Frame].Name)
	assert.Equal(t, "update", doc.Shared.Frames[p.Events[1].Frame].Name)
	for i := 1; i < len(p.Events); i++ {
		assert.GreaterOrEqual(t, p.Events[i].At, p.Events[i-1].At)
	}
}

func TestSpeedscope_BalancesTruncatedRing(t *testing.T) {
	Reset()
	Init(3)
	t.Cleanup(Reset)

	// the ring keeps only the last three events: C(a) O(b) O(c)
	a := Begin("a")
	a()
	b := Begin("b")
	Begin("c")
	_ = b

	doc := decode(t)
	assert.Equal(t, "OOCC", types(doc.Profiles[0].Events), "orphan close dropped, open scopes closed")
}

func TestDump(t *testing.T) {
	Reset()
	Init(8)
	t.Cleanup(Reset)
	Begin("dump")()

	path, err := Dump(filepath.Join(t.TempDir(), "p.json"))
	require.NoError(t, err)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "speedscope.app/file-format-schema.json")
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestRuntimeStats(t *testing.T) {
	assert.Positive(t, MemoryUsage())
	assert.Positive(t, NumCPU())
	assert.Positive(t, NumGoroutine())
}
