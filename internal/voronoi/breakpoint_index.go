package voronoi

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// breakpointIndex is the beach line's ordered structure keyed by each
// breakpoint's *current* x position: a self-balancing tree supporting
// insert, remove, and arc_at(x). Rather than caching and reinserting on
// every sweep-line advance, the tree's comparator recomputes each stored
// breakpoint's x from the live sweep-line y at comparison time, via a
// plain closure over the beach line's current sweepY, which is the
// cheapest way to keep the tree correct without bookkeeping a dirty set.
// Backed by gods' red-black tree.
type breakpointIndex struct {
	tree *redblacktree.Tree
	arena *arena
	sweepY *float64
}

// indexKey is either a stored breakpoint reference (idx >= 0) or a
// synthetic query key carrying a fixed x (idx == queryKeyIdx), so
// arc_at(x) can probe the tree without allocating a breakpoint.
type indexKey struct {
	idx breakIndex
	queryX float64
	seq int64 // disambiguates breakpoints that momentarily share an x
}

const queryKeyIdx breakIndex = -1

func newBreakpointIndex(a *arena, sweepY *float64) *breakpointIndex {
	bi := &breakpointIndex{arena: a, sweepY: sweepY}
	bi.tree = redblacktree.NewWith(bi.compare)
	return bi
}

func (bi *breakpointIndex) keyX(k indexKey) float64 {
	if k.idx == queryKeyIdx {
		return k.queryX
	}
	bp := bi.arena.breakpoint(k.idx)
	return breakpointX(bp.left, bp.right, *bi.sweepY)
}

func (bi *breakpointIndex) compare(a, b interface{}) int {
	ka, kb := a.(indexKey), b.(indexKey)
	xa, xb := bi.keyX(ka), bi.keyX(kb)
	switch {
	case xa < xb:
		return -1
	case xa > xb:
		return 1
	case ka.seq < kb.seq:
		return -1
	case ka.seq > kb.seq:
		return 1
	default:
		return 0
	}
}

var indexSeq int64

func (bi *breakpointIndex) insert(idx breakIndex) {
	indexSeq++
	bi.tree.Put(indexKey{idx: idx, seq: indexSeq}, idx)
}

func (bi *breakpointIndex) remove(idx breakIndex) {
	// The tree is keyed by (x, seq); since seq isn't tracked on the
	// breakpoint itself, scan for the matching value. Beach lines stay
	// small relative to input size in practice (O(active arcs)), so a
	// linear scan here is acceptable and keeps the arena simple.
	for _, k := range bi.tree.Keys {
		ik := k.(indexKey)
		if ik.idx == idx {
			bi.tree.Remove(ik)
			return
		}
	}
}

// arcAt returns the arc whose parabola lies directly above x on the
// beach line, by locating the rightmost breakpoint with position <= x
// (its right arc is the one above x) or, if none precede x, the leftmost
// arc on the line.
func (bi *breakpointIndex) arcAt(x float64, leftmostArc arcIndex) arcIndex {
	if bi.tree.Size == 0 {
		return leftmostArc
	}
	qk := indexKey{idx: queryKeyIdx, queryX: x, seq: -1}
	floorNode, found := bi.tree.Floor(qk)
	if !found || floorNode == nil {
		return leftmostArc
	}
	idx := floorNode.Value.(breakIndex)
	return bi.arena.breakpoint(idx).rightArc
}

// all returns every live breakpoint index, sorted by current x, for
// use at finish.
func (bi *breakpointIndex) all() []breakIndex {
	out := make([]breakIndex, 0, bi.tree.Size)
	for _, v := range bi.tree.Values {
		out = append(out, v.(breakIndex))
	}
	return out
}
