package voronoi

// Compute drives Fortune's sweep over sites (already deduplicated, with
// sequential addresses) and returns the Voronoi edges, Delaunay edges,
// Delaunay triangles and per-site neighbor mapping. It owns the two
// priority queues (site events and circle events, sharing one
// eventQueue) and drives the beach line to consume them.
func Compute(sites []Site) Result {
	if len(sites) == 0 {
		return Result{Neighbors: map[int][]int{}}
	}

	ordered := sortedForSweep(sites)
	bl := newBeachLine(ordered)
	q := newEventQueue()

	for _, s := range ordered {
		q.pushSite(s)
	}

	if len(ordered) == 1 {
		bl.insertSite(ordered[0])
	} else {
		for !q.empty() {
			ev, ok := q.pop()
			if !ok {
				break
			}
			bl.sweepY = ev.eventY()

			switch ev.kind {
			case siteEventKind:
				bl.insertSite(ev.site)
			case circleEventKind:
				if !ev.circle.isValid {
					continue
				}
				bl.removeArcAt(ev.circle)
			}
			for _, ce := range bl.PredictedEvents() {
				q.pushCircle(ce)
			}
		}
	}

	bl.finish()

	return Result{
		VoronoiEdges:  bl.voronoiEdges,
		DelaunayEdges: bl.delaunayEdges,
		Triangles:     bl.triangles,
		Neighbors:     buildNeighbors(bl.delaunayEdges),
	}
}
