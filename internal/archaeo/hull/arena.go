// Package hull maintains a polyline convex hull incrementally as points are
// inserted at its extrema, tracking the horizontal and vertical antipodal
// pairs used to derive a blurred segment's bounding strip in amortized O(1)
// per inserted point.
package hull

import "github.com/banshee-data/archaeoscan/internal/archaeo/geom2i"

// noVertex marks an absent neighbor index, the index-arena equivalent of a
// nil CHVertex pointer.
const noVertex = -1

// vertex is one polyline node: a point plus its left/right neighbors,
// addressed by index into the owning Arena rather than by pointer. This is
// the flattened-graph idiom the teacher codebase uses for its assignment
// matrices (internal/lidar/hungarian.go) applied here to the hull's
// circular doubly-linked vertex list.
type vertex struct {
	pt          geom2i.Pt
	left, right int
}

// Arena owns every vertex ever inserted into a hull, including those later
// disconnected by a restore. Vertices are never freed individually; the
// whole arena is dropped with the hull.
type Arena struct {
	vs []vertex
}

func newArena() *Arena {
	return &Arena{}
}

// add appends a new vertex at pt and returns its index.
func (a *Arena) add(pt geom2i.Pt) int {
	a.vs = append(a.vs, vertex{pt: pt, left: noVertex, right: noVertex})
	return len(a.vs) - 1
}

func (a *Arena) point(i int) geom2i.Pt { return a.vs[i].pt }
func (a *Arena) left(i int) int        { return a.vs[i].left }
func (a *Arena) right(i int) int       { return a.vs[i].right }
func (a *Arena) setLeft(i, l int)      { a.vs[i].left = l }
func (a *Arena) setRight(i, r int)     { a.vs[i].right = r }

// get returns the nth (0=X,1=Y) coordinate of vertex i, mirroring
// CHVertex::get used by Antipodal's direction-agnostic comparisons.
func (a *Arena) get(i, n int) int {
	if n == 1 {
		return a.vs[i].pt.Y
	}
	return a.vs[i].pt.X
}

// vprod2 returns the cross product of (pt[i]->pt[dst]) and (vx,vy), mirroring
// CHVertex::vprod(pt, vx, vy).
func (a *Arena) vprod2(i, dst, vx, vy int) int {
	p, d := a.vs[i].pt, a.vs[dst].pt
	return (d.X-p.X)*vy - vx*(d.Y-p.Y)
}

// vprod4 returns the cross product of (pt[i]->pt[p2]) and (pt[p4]-pt[p3]),
// mirroring CHVertex::vprod(p2, p3, p4).
func (a *Arena) vprod4(i, p2, p3, p4 int) int {
	base, b2, b3, b4 := a.vs[i].pt, a.vs[p2].pt, a.vs[p3].pt, a.vs[p4].pt
	return (b2.X-base.X)*(b4.Y-b3.Y) - (b4.X-b3.X)*(b2.Y-base.Y)
}
