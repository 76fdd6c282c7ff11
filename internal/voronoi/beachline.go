package voronoi

import "math"

// beachLine is the event-ordered beach line of C2: it maintains the
// current arcs and breakpoints and consumes events in sweep order,
// accumulating Voronoi edges, Delaunay edges and Delaunay triangles as it
// goes. All state (arcs, breakpoints, the ordered index) is owned by one
// arena, scoped to a single sweep and dropped at finish.
type beachLine struct {
	arena *arena
	index *breakpointIndex
	leftmost arcIndex
	hasArcs bool
	sweepY float64

	bbox boundingBox

	delaunaySeen map[[2]int]bool
	delaunayEdges []DelaunayEdge
	voronoiEdges []Edge
	triangles []Triangle

	pending []*circleEvent // circle events predicted during the last insertSite/removeArcAt call
}

type boundingBox struct {
	minX, maxX, minY, maxY float64
}

func newBeachLine(sites []Site) *beachLine {
	bl := &beachLine{
		leftmost: arcIndex(-1),
		delaunaySeen: make(map[[2]int]bool),
	}
	bl.arena = newArena()
	bl.index = newBreakpointIndex(bl.arena, &bl.sweepY)
	bl.bbox = computeBoundingBox(sites)
	return bl
}

func computeBoundingBox(sites []Site) boundingBox {
	if len(sites) == 0 {
		return boundingBox{}
	}
	bb := boundingBox{minX: sites[0].X, maxX: sites[0].X, minY: sites[0].Y, maxY: sites[0].Y}
	for _, s := range sites[1:] {
		bb.minX = math.Min(bb.minX, s.X)
		bb.maxX = math.Max(bb.maxX, s.X)
		bb.minY = math.Min(bb.minY, s.Y)
		bb.maxY = math.Max(bb.maxY, s.Y)
	}
	return bb
}

func (bl *beachLine) emitDelaunayEdge(a, b Site) {
	e := DelaunayEdge{A: a, B: b}
	k := e.key()
	if bl.delaunaySeen[k] {
		return
	}
	bl.delaunaySeen[k] = true
	bl.delaunayEdges = append(bl.delaunayEdges, e)
}

// neighborArcs returns the arcs immediately to the left and right of m on
// the beach line, or -1 when m is the leftmost/rightmost arc.
func (bl *beachLine) neighborArcs(m arcIndex) (left, right arcIndex) {
	left, right = -1, -1
	ma := bl.arena.arc(m)
	if ma.leftBreak != noBreak {
		left = bl.arena.breakpoint(ma.leftBreak).leftArc
	}
	if ma.rightBreak != noBreak {
		right = bl.arena.breakpoint(ma.rightBreak).rightArc
	}
	return
}

// insertSite handles a site event: locate the arc above the new site,
// split it (or, in the degenerate same-y case, append one breakpoint
// beside it), emit the resulting Delaunay edge(s), and queue circle
// events for the arcs newly adjacent to the inserted one.
func (bl *beachLine) insertSite(s Site) {
	if !bl.hasArcs {
		bl.leftmost = bl.arena.newArc(s)
		bl.hasArcs = true
		return
	}

	above := bl.index.arcAt(s.X, bl.leftmost)
	bl.arena.invalidateArc(above)
	aboveArc := bl.arena.arc(above)

	if aboveArc.site.Y == s.Y {
		bl.insertDegenerate(above, s)
		return
	}
	bl.insertGeneral(above, s)
}

// insertDegenerate handles a site event where the new site shares the
// sweep-line y with the arc directly above it: no parabola split is
// possible, so a single breakpoint is created beside the existing arc.
func (bl *beachLine) insertDegenerate(above arcIndex, s Site) {
	aboveArc := bl.arena.arc(above)
	newIdx := bl.arena.newArc(s)

	var left, right arcIndex
	if s.X > aboveArc.site.X {
		left, right = above, newIdx
	} else {
		left, right = newIdx, above
	}

	start := point{X: (bl.arena.arc(left).site.X + bl.arena.arc(right).site.X) / 2, Y: bl.sweepY}
	bp := bl.arena.newBreakpoint(bl.arena.arc(left).site, bl.arena.arc(right).site, left, right, start)
	bl.spliceBreakpoint(left, right, bp)
	bl.index.insert(bp)

	bl.emitDelaunayEdge(aboveArc.site, s)

	bl.addCircleEventFor(left)
	bl.addCircleEventFor(right)
}

// PredictedEvents drains and returns the circle events predicted during
// the most recent insertSite or removeArcAt call, for the generator to
// push onto its event queue.
func (bl *beachLine) PredictedEvents() []*circleEvent {
	out := bl.pending
	bl.pending = nil
	return out
}

// spliceBreakpoint wires a freshly created breakpoint bp between the
// given adjacent arcs, preserving whatever breakpoints those arcs
// already had on their outer sides.
func (bl *beachLine) spliceBreakpoint(left, right arcIndex, bp breakIndex) {
	bl.arena.arc(left).rightBreak = bp
	bl.arena.arc(right).leftBreak = bp
}

// insertGeneral splits an existing arc into left/new/right, the common
// case of a site event.
func (bl *beachLine) insertGeneral(above arcIndex, s Site) {
	aboveArc := *bl.arena.arc(above)

	leftIdx := bl.arena.newArc(aboveArc.site)
	newIdx := bl.arena.newArc(s)
	rightIdx := bl.arena.newArc(aboveArc.site)

	leftArcObj := bl.arena.arc(leftIdx)
	rightArcObj := bl.arena.arc(rightIdx)

	leftArcObj.leftBreak = aboveArc.leftBreak
	if aboveArc.leftBreak != noBreak {
		bl.arena.breakpoint(aboveArc.leftBreak).rightArc = leftIdx
	} else if bl.leftmost == above {
		bl.leftmost = leftIdx
	}

	rightArcObj.rightBreak = aboveArc.rightBreak
	if aboveArc.rightBreak != noBreak {
		bl.arena.breakpoint(aboveArc.rightBreak).leftArc = rightIdx
	}

	start := point{X: s.X, Y: breakpointY(aboveArc.site, s.X, bl.sweepY)}
	bpLeft := bl.arena.newBreakpoint(aboveArc.site, s, leftIdx, newIdx, start)
	bpRight := bl.arena.newBreakpoint(s, aboveArc.site, newIdx, rightIdx, start)

	leftArcObj.rightBreak = bpLeft
	newArcObj := bl.arena.arc(newIdx)
	newArcObj.leftBreak = bpLeft
	newArcObj.rightBreak = bpRight
	rightArcObj.leftBreak = bpRight

	bl.index.insert(bpLeft)
	bl.index.insert(bpRight)

	bl.emitDelaunayEdge(aboveArc.site, s)

	bl.arena.freeArc(above)

	bl.addCircleEventFor(leftIdx)
	bl.addCircleEventFor(rightIdx)
}

// addCircleEventFor computes the circumcircle of m and its current
// left/right neighbors and, if it predicts a future disappearance of m,
// appends a circle event owned by m to bl.pending.
func (bl *beachLine) addCircleEventFor(m arcIndex) {
	left, right := bl.neighborArcs(m)
	if left < 0 || right < 0 {
		return
	}
	la, ma, ra := bl.arena.arc(left), bl.arena.arc(m), bl.arena.arc(right)

	if !isConvexTurn(la.site, ma.site, ra.site) {
		// Diverging triple: the arcs are spreading apart rather than
		// converging, so any circumcircle found is not a genuine future
		// disappearance of m.
		return
	}

	cx, cy, r, ok := circumcircle(la.site, ma.site, ra.site)
	if !ok {
		return
	}
	bottomY := cy - r
	if bottomY > bl.sweepY {
		// The circle's lowest point lies above the current sweep line:
		// that disappearance would be in the past, so it is skipped.
		return
	}

	ce := &circleEvent{x: cx, y: bottomY, center: point{X: cx, Y: cy}, arc: m, isValid: true}
	ma.event = ce
	bl.pending = append(bl.pending, ce)
}

// removeArcAt handles a circle event: remove the disappearing arc,
// merging its two neighbors under one new breakpoint and emitting the
// corresponding Delaunay edge and dual triangle.
func (bl *beachLine) removeArcAt(ce *circleEvent) {
	m := ce.arc
	marc := bl.arena.arc(m)
	leftBreak, rightBreak := marc.leftBreak, marc.rightBreak

	left, right := bl.neighborArcs(m)

	bl.arena.invalidateArc(m)
	if left >= 0 {
		bl.arena.invalidateArc(left)
	}
	if right >= 0 {
		bl.arena.invalidateArc(right)
	}

	vertex := ce.center

	switch {
	case left >= 0 && right >= 0:
		la, ra := bl.arena.arc(left), bl.arena.arc(right)
		bl.emitDelaunayEdge(la.site, ra.site)
		bl.triangles = append(bl.triangles, Triangle{A: la.site, B: marc.site, C: ra.site})

		bl.finalizeBreakpoint(leftBreak, vertex)
		bl.finalizeBreakpoint(rightBreak, vertex)
		bl.index.remove(leftBreak)
		bl.index.remove(rightBreak)
		bl.arena.freeBreakpoint(leftBreak)
		bl.arena.freeBreakpoint(rightBreak)

		merged := bl.arena.newBreakpoint(la.site, ra.site, left, right, vertex)
		la.rightBreak = merged
		ra.leftBreak = merged
		bl.index.insert(merged)
	case left >= 0:
		bl.finalizeBreakpoint(leftBreak, vertex)
		bl.index.remove(leftBreak)
		bl.arena.freeBreakpoint(leftBreak)
		bl.arena.arc(left).rightBreak = noBreak
	case right >= 0:
		bl.finalizeBreakpoint(rightBreak, vertex)
		bl.index.remove(rightBreak)
		bl.arena.freeBreakpoint(rightBreak)
		bl.arena.arc(right).leftBreak = noBreak
	}

	bl.arena.freeArc(m)
	if bl.leftmost == m {
		if left >= 0 {
			bl.leftmost = left
		} else {
			bl.leftmost = right
		}
	}

	if left >= 0 {
		bl.addCircleEventFor(left)
	}
	if right >= 0 {
		bl.addCircleEventFor(right)
	}
}

func (bl *beachLine) finalizeBreakpoint(b breakIndex, end point) {
	bp := bl.arena.breakpoint(b)
	bl.voronoiEdges = append(bl.voronoiEdges, Edge{A: bp.start, B: end})
}

// finish extrapolates every still-live breakpoint to the sweep's bounding
// box (slightly enlarged for a finite result) along its direction of
// motion.
func (bl *beachLine) finish() {
	const margin = 1.0
	const epsY = 1.0
	probeY := bl.bbox.minY - (bl.bbox.maxY-bl.bbox.minY) - 10*epsY - 10

	for _, idx := range bl.index.all() {
		bp := bl.arena.breakpoint(idx)
		if bp.freed {
			continue
		}
		p0 := point{X: breakpointX(bp.left, bp.right, bl.sweepY), Y: breakpointY(bp.left, breakpointX(bp.left, bp.right, bl.sweepY), bl.sweepY)}
		x1 := breakpointX(bp.left, bp.right, probeY)
		p1 := point{X: x1, Y: breakpointY(bp.left, x1, probeY)}

		dx, dy := p1.X-p0.X, p1.Y-p0.Y
		norm := math.Hypot(dx, dy)
		if norm < 1e-12 {
			// No discernible direction (near-degenerate); drop the edge
			// at its start, which is still finite.
			bl.voronoiEdges = append(bl.voronoiEdges, Edge{A: bp.start, B: bp.start})
			continue
		}
		dx, dy = dx/norm, dy/norm

		target := bl.farBoundsPoint(bp.start, dx, dy, margin)
		bl.voronoiEdges = append(bl.voronoiEdges, Edge{A: bp.start, B: target})
	}
}

// farBoundsPoint walks from start along direction (dx,dy) until it
// exits [minX-margin..maxX+margin] x [minY-margin..maxY+margin].
func (bl *beachLine) farBoundsPoint(start point, dx, dy, margin float64) point {
	lo := bl.bbox.minX - margin
	hi := bl.bbox.maxX + margin
	loY := bl.bbox.minY - margin
	hiY := bl.bbox.maxY + margin

	width := hi - lo
	height := hiY - loY
	span := math.Hypot(width, height) + 1
	t := span
	if math.Abs(dx) > 1e-12 {
		if dx > 0 {
			t = math.Min(t, (hi-start.X)/dx)
		} else {
			t = math.Min(t, (lo-start.X)/dx)
		}
	}
	if math.Abs(dy) > 1e-12 {
		if dy > 0 {
			t = math.Min(t, (hiY-start.Y)/dy)
		} else {
			t = math.Min(t, (loY-start.Y)/dy)
		}
	}
	if t < 0 {
		t = span
	}
	return point{X: start.X + dx*t, Y: start.Y + dy*t}
}
