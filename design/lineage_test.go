package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	Name  string
	Count int
}

func cloneWidget(w widget) widget {
	return w
}

func TestLineageCutRevisionFreezesHead(t *testing.T) {
	l := NewLineage("Falcon", widget{Name: "v1", Count: 1}, cloneWidget)

	num := l.CutRevision("first cut")
	require.Equal(t, uint32(1), num)

	l.Head.Count = 99
	l.Head.Name = "mutated"

	rev, ok := l.GetRevision(1)
	require.True(t, ok)
	assert.Equal(t, "v1", rev.Snapshot.Name)
	assert.Equal(t, 1, rev.Snapshot.Count)
	assert.Equal(t, "first cut", rev.Label)
}

func TestLineageRevisionNumbersIncrementMonotonically(t *testing.T) {
	l := NewLineage("Falcon", widget{Name: "v1"}, cloneWidget)

	first := l.CutRevision("a")
	second := l.CutRevision("b")
	third := l.CutRevision("c")

	assert.Equal(t, uint32(1), first)
	assert.Equal(t, uint32(2), second)
	assert.Equal(t, uint32(3), third)
}

func TestLineageLatestRevisionEmpty(t *testing.T) {
	l := NewLineage("Falcon", widget{Name: "v1"}, cloneWidget)

	_, ok := l.LatestRevision()
	assert.False(t, ok)
}

func TestLineageLatestRevisionReturnsMostRecent(t *testing.T) {
	l := NewLineage("Falcon", widget{Name: "v1"}, cloneWidget)
	l.CutRevision("a")
	l.Head.Name = "v2"
	l.CutRevision("b")

	latest, ok := l.LatestRevision()
	require.True(t, ok)
	assert.Equal(t, uint32(2), latest.Number)
	assert.Equal(t, "v2", latest.Snapshot.Name)
}

func TestLineageGetRevisionMissing(t *testing.T) {
	l := NewLineage("Falcon", widget{Name: "v1"}, cloneWidget)
	l.CutRevision("a")

	_, ok := l.GetRevision(42)
	assert.False(t, ok)
}
