package voronoi

import (
	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/utils"
)

// eventKind distinguishes a site event from a circle event in the shared
// priority queue ordering (y descending, x ascending on ties for site
// events; stable enqueue order for circle events, ).
type eventKind int

const (
	siteEventKind eventKind = iota
	circleEventKind
)

// circleEvent is a predicted disappearance of an arc at a future y.
// isValid is flipped false (rather than removing the event from the
// queue) when the owning arc is invalidated; consumers must skip events
// whose validity bit is false. seq breaks ties between circle events that
// land on the same y, giving a stable enqueue order.
type circleEvent struct {
	x, y float64 // y is the bottom of the circumcircle: center.y - radius
	center point
	arc arcIndex
	isValid bool
	seq int64
}

type point struct{ X, Y float64 }

// event is the tagged union pushed through the shared event queue.
type event struct {
	kind eventKind
	site Site // valid when kind == siteEventKind
	circle *circleEvent // valid when kind == circleEventKind
}

// eventY/eventX give the sweep-line ordering key regardless of kind.
func (e *event) eventY() float64 {
	if e.kind == siteEventKind {
		return e.site.Y
	}
	return e.circle.y
}

func (e *event) eventX() float64 {
	if e.kind == siteEventKind {
		return e.site.X
	}
	return e.circle.x
}

// eventQueue is the sweep's single priority queue of pending events,
// ordered y descending (the sweep proceeds from largest y to smallest),
// x ascending on ties for site events, and stable enqueue order for
// circle events. Built on gods' priorityqueue (gods' red-black tree backs
// the breakpoint index, see breakpoint_index.go).
type eventQueue struct {
	pq *priorityqueue.Queue
	seq int64
	nextID int64
}

func newEventQueue() *eventQueue {
	cmp := func(a, b interface{}) int {
		ea, eb := a.(*event), b.(*event)
		if ea.eventY() != eb.eventY() {
			return utils.Float64Comparator(eb.eventY(), ea.eventY())
		}
		if ea.kind == siteEventKind && eb.kind == siteEventKind {
			return utils.Float64Comparator(ea.eventX(), eb.eventX())
		}
		// Circle events (or a circle/site tie) fall back to stable
		// enqueue order.
		var sa, sb int64
		if ea.kind == circleEventKind {
			sa = ea.circle.seq
		}
		if eb.kind == circleEventKind {
			sb = eb.circle.seq
		}
		return utils.Int64Comparator(sa, sb)
	}
	return &eventQueue{pq: priorityqueue.NewWith(cmp)}
}

func (q *eventQueue) pushSite(s Site) {
	q.pq.Enqueue(&event{kind: siteEventKind, site: s})
}

func (q *eventQueue) pushCircle(ce *circleEvent) {
	q.seq++
	ce.seq = q.seq
	q.pq.Enqueue(&event{kind: circleEventKind, circle: ce})
}

func (q *eventQueue) pop() (*event, bool) {
	v, ok := q.pq.Dequeue()
	if !ok {
		return nil, false
	}
	return v.(*event), true
}

func (q *eventQueue) empty() bool {
	return q.pq.Empty()
}
