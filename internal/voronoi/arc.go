package voronoi

import assert "github.com/arl/assertgo"

// arcIndex and breakIndex are typed indices into the beach line's
// per-sweep arenas: arcs and breakpoints are allocated from arenas for
// the duration of one sweep and referenced by index rather than
// pointer; a freed slot is never reused within a sweep, so an index never
// comes to name a different arc or breakpoint.
type arcIndex int
type breakIndex int

const noArc breakIndex = -1
const noBreak breakIndex = -1

// arc is a parabolic arc on the beach line, identified by its focus site.
// leftBreak/rightBreak are -1 when the arc is the leftmost/rightmost on
// the beach line. gen is bumped whenever the arc is invalidated (which
// includes removal). A pending circle event is invalidated through its own
// isValid flag, not through gen.
type arc struct {
	site Site
	leftBreak breakIndex
	rightBreak breakIndex
	event *circleEvent // at most one pending circle event, owned by the arc
	gen int
	freed bool
}

// breakpoint is the intersection of two adjacent arcs. start is the point
// where the breakpoint first appeared (emitted as the origin of its
// Voronoi edge at finish, or when the breakpoint is later resolved by a
// circle event).
type breakpoint struct {
	left, right Site
	leftArc arcIndex
	rightArc arcIndex
	start point
	freed bool
}

// arena owns all arcs and breakpoints allocated during one sweep. It is
// dropped wholesale at finish.
type arena struct {
	arcs []arc
	breakpoints []breakpoint
}

func newArena() *arena {
	return &arena{}
}

func (a *arena) newArc(site Site) arcIndex {
	a.arcs = append(a.arcs, arc{site: site, leftBreak: noBreak, rightBreak: noBreak})
	return arcIndex(len(a.arcs) - 1)
}

func (a *arena) arc(i arcIndex) *arc {
	assert.True(i >= 0 && int(i) < len(a.arcs), "arc index %d out of bounds (arena holds %d)", i, len(a.arcs))
	return &a.arcs[i]
}

func (a *arena) newBreakpoint(left, right Site, leftArc, rightArc arcIndex, start point) breakIndex {
	a.breakpoints = append(a.breakpoints, breakpoint{
		left: left, right: right, leftArc: leftArc, rightArc: rightArc, start: start,
	})
	return breakIndex(len(a.breakpoints) - 1)
}

func (a *arena) breakpoint(i breakIndex) *breakpoint {
	assert.True(i >= 0 && int(i) < len(a.breakpoints), "breakpoint index %d out of bounds (arena holds %d)", i, len(a.breakpoints))
	return &a.breakpoints[i]
}

// invalidateArc marks arc i's pending circleEvent (if any) invalid,
// detaches it from the arc, and bumps the arc's generation counter.
func (a *arena) invalidateArc(i arcIndex) {
	ar := &a.arcs[i]
	if ar.event != nil {
		ar.event.isValid = false
		ar.event = nil
	}
	ar.gen++
}

func (a *arena) freeArc(i arcIndex) {
	a.invalidateArc(arcIndex(i))
	a.arcs[i].freed = true
}

func (a *arena) freeBreakpoint(i breakIndex) {
	a.breakpoints[i].freed = true
}
