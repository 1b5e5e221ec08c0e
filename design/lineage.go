package design

// Revision is a frozen snapshot of a design at the moment it was cut,
// kept for manufacturing to build against even after the head design has
// moved on.
type Revision[T any] struct {
	Number   uint32
	Snapshot T
	Label    string
}

// Lineage tracks a design's current, mutable Head plus a list of frozen
// Revisions. Mutating Head never affects a revision already cut; cutting
// a revision deep-copies the current head via the caller-supplied clone.
type Lineage[T any] struct {
	Name          string
	Head          T
	Revisions     []Revision[T]
	nextRevision  uint32
	clone         func(T) T
}

// NewLineage returns a lineage named name with head as its initial,
// mutable design. clone must return an independent deep copy of a T, used
// whenever a revision is cut.
func NewLineage[T any](name string, head T, clone func(T) T) *Lineage[T] {
	return &Lineage[T]{
		Name:         name,
		Head:         head,
		nextRevision: 1,
		clone:        clone,
	}
}

// CutRevision freezes the current head as a new revision and returns its
// revision number, starting at 1 and incrementing monotonically.
func (l *Lineage[T]) CutRevision(label string) uint32 {
	num := l.nextRevision
	l.Revisions = append(l.Revisions, Revision[T]{
		Number:   num,
		Snapshot: l.clone(l.Head),
		Label:    label,
	})
	l.nextRevision++
	return num
}

// GetRevision returns the revision with the given number, if any.
func (l *Lineage[T]) GetRevision(number uint32) (Revision[T], bool) {
	for _, r := range l.Revisions {
		if r.Number == number {
			return r, true
		}
	}
	var zero Revision[T]
	return zero, false
}

// LatestRevision returns the most recently cut revision, if any.
func (l *Lineage[T]) LatestRevision() (Revision[T], bool) {
	if len(l.Revisions) == 0 {
		var zero Revision[T]
		return zero, false
	}
	return l.Revisions[len(l.Revisions)-1], true
}
