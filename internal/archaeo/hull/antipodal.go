package hull

import "github.com/banshee-data/archaeoscan/internal/archaeo/geom2i"

// antipodal tracks the vertex/edge pair of a polyline convex hull that
// maximizes the perpendicular distance along one axis: iy=1 for a
// horizontal pair (vertices compared by Y, width measured along X), iy=0 for
// a vertical pair (vertices compared by X, width measured along Y). Grounded
// on original_source/src/ConvexHull/antipodal.cpp.
type antipodal struct {
	arena            *Arena
	ix, iy           int
	vpt, ept1, ept2  int
}

func newHorizontalAntipodal(a *Arena) *antipodal {
	return &antipodal{arena: a, ix: 0, iy: 1, vpt: noVertex, ept1: noVertex, ept2: noVertex}
}

func newVerticalAntipodal(a *Arena) *antipodal {
	return &antipodal{arena: a, ix: 1, iy: 0, vpt: noVertex, ept1: noVertex, ept2: noVertex}
}

// init seeds the antipodal pair from three unordered vertices (the initial
// hull triangle), picking the one whose iy coordinate lies between the
// other two (the median along iy) as the vertex and the other two as the
// leaning edge.
func (ap *antipodal) init(v1, v2, v3 int) {
	a := ap.arena
	g := func(i int) int { return a.get(i, ap.iy) }
	switch {
	case g(v1) < g(v2):
		switch {
		case g(v2) < g(v3):
			ap.vpt, ap.ept1, ap.ept2 = v2, v1, v3
		case g(v1) < g(v3):
			ap.vpt, ap.ept1, ap.ept2 = v3, v1, v2
		default:
			ap.vpt, ap.ept1, ap.ept2 = v1, v2, v3
		}
	default:
		switch {
		case g(v1) < g(v3):
			ap.vpt, ap.ept1, ap.ept2 = v1, v2, v3
		case g(v2) <= g(v3): // EQUIV: intentionally "<=" not "<", per the original
			ap.vpt, ap.ept1, ap.ept2 = v3, v1, v2
		default:
			ap.vpt, ap.ept1, ap.ept2 = v2, v1, v3
		}
	}
}

func (ap *antipodal) vertex() int    { return ap.vpt }
func (ap *antipodal) edgeStart() int { return ap.ept1 }
func (ap *antipodal) edgeEnd() int   { return ap.ept2 }

func (ap *antipodal) setVertex(v int)        { ap.vpt = v }
func (ap *antipodal) setEdge(es, ee int)     { ap.ept1, ap.ept2 = es, ee }
func (ap *antipodal) setVertexAndEdge(v, es, ee int) {
	ap.vpt, ap.ept1, ap.ept2 = v, es, ee
}

// thickness returns the antipodal pair's perpendicular distance as an exact
// rational, never evaluated to float.
func (ap *antipodal) thickness() geom2i.EDist {
	a := ap.arena
	vp, e1, e2 := a.point(ap.vpt), a.point(ap.ept1), a.point(ap.ept2)
	var den, num int
	if ap.iy == 1 {
		den = e2.Y - e1.Y
		num = (vp.X-e1.X)*den - (vp.Y-e1.Y)*(e2.X-e1.X)
	} else {
		den = e2.X - e1.X
		num = (vp.Y-e1.Y)*den - (vp.X-e1.X)*(e2.Y-e1.Y)
	}
	return geom2i.NewEDist(num, den)
}

// remainder returns the antipodal edge's line-equation value at vertex v,
// oriented so the edge direction always has a non-negative leading
// coefficient.
func (ap *antipodal) remainder(v int) int {
	a := ap.arena
	e1, e2 := a.point(ap.ept1), a.point(ap.ept2)
	pa := e2.Y - e1.Y
	pb := e2.X - e1.X
	if ap.iy == 0 {
		pa, pb = e2.X-e1.X, e2.Y-e1.Y
	}
	if pa == 0 {
		bb := pb
		if bb > 0 {
			bb = -bb
		}
		if ap.iy == 1 {
			return bb * a.point(v).Y
		}
		return bb * a.point(v).X
	}
	if pa < 0 {
		pa, pb = -pa, -pb
	}
	if ap.iy == 1 {
		return pa*a.point(v).X - pb*a.point(v).Y
	}
	return pa*a.point(v).Y - pb*a.point(v).X
}

// edgeInFirstQuadrant reports whether the leaning edge lies in the first
// quadrant (sign(dx) == sign(dy)), used to pick which rotation branch the
// main case of update takes.
func (ap *antipodal) edgeInFirstQuadrant() bool {
	if ap.iy == 0 {
		return true
	}
	a := ap.arena
	e1, e2 := a.point(ap.ept1), a.point(ap.ept2)
	da := e2.Y - e1.Y
	if da == 0 {
		return true
	}
	if da > 0 {
		return e1.X < e2.X
	}
	return e2.X < e1.X
}

// update revises the antipodal pair after pt has just been inserted into
// the hull, in amortized O(1): the case analysis below mirrors
// Antipodal::update line for line, including its original case comments.
func (ap *antipodal) update(pt int) {
	a := ap.arena
	rpt, lpt := a.right(pt), a.left(pt)

	rmp := ap.remainder(pt)
	rmv := ap.remainder(ap.vpt)
	rme := ap.remainder(ap.ept1)
	zpt := a.get(pt, ap.iy)
	zav := a.get(ap.vpt, ap.iy)
	zas := a.get(ap.ept1, ap.iy)
	zae := a.get(ap.ept2, ap.iy)

	pvertex := ap.vpt
	switch {
	case ap.remainder(rpt) == rmv:
		pvertex = rpt
	case ap.remainder(lpt) == rmv:
		pvertex = lpt
	}

	pedge := ap.ept1
	switch {
	case ap.remainder(rpt) == rme:
		pedge = rpt
	case ap.remainder(lpt) == rme:
		pedge = lpt
	}

	// P on the line supported by the Edge.
	if rmp == rme {
		// P between start and end of antipodal Edge: no change (impossible).
		if zpt == zas || zpt == zae || (zpt < zas) != (zpt < zae) {
			return
		}
		// Prolongation of antipodal Edge up to P.
		ap.setEdge(pt, pedge)
		return
	}

	// P on the line (parallel to Edge) supported by the Vertex.
	if rmp == rmv {
		if zpt == zas || zpt == zae || (zpt < zas) != (zpt < zae) {
			// P at the height of Edge: P is the new Vertex.
			ap.setVertex(pt)
		} else {
			// P beyond Edge Start: the Edge Start is the new Vertex.
			if zas == zae || (zas < zpt) != (zas < zae) {
				ap.setVertex(ap.ept1)
			}
			// P beyond Edge End: the Edge End is the new Vertex.
			if (zae < zpt) != (zae < zas) {
				ap.setVertex(ap.ept2)
			}
			// The new Edge joins P to the former Vertex.
			ap.setEdge(pt, pvertex)
		}
		return
	}

	// P strictly between antipodal Edge and Vertex: no change.
	if (rmp < rmv) != (rmp < rme) {
		return
	}

	// P at the height of the antipodal Vertex.
	if zpt == zav {
		if (rmv < rmp) != (rmv < rme) {
			// P beyond the antipodal Vertex: P is the new Vertex.
			ap.setVertex(pt)
			return
		}

		oldvpt := ap.vpt
		if zav != a.get(lpt, ap.iy) {
			if a.vprod4(oldvpt, a.left(oldvpt), lpt, pt) > 0 {
				ap.setVertex(oldvpt)
				ap.setEdge(lpt, pt)
			} else {
				ap.setVertex(pt)
				ap.setEdge(oldvpt, a.left(oldvpt))
			}
		} else {
			if a.vprod4(oldvpt, a.right(oldvpt), rpt, pt) < 0 {
				ap.setVertex(oldvpt)
				ap.setEdge(rpt, pt)
			} else {
				ap.setVertex(pt)
				ap.setEdge(oldvpt, a.right(oldvpt))
			}
		}
		return
	}

	// Main case.
	var cvx int = noVertex
	firstQuad := true
	if ap.edgeInFirstQuadrant() {
		if (rmp > rme && rmp > rmv && zpt > zav) || (rmp < rme && rmp < rmv && zpt < zav) {
			firstQuad = false
		}
	} else if (rmp > rme && rmp > rmv && zpt < zav) || (rmp < rme && rmp < rmv && zpt > zav) {
		firstQuad = false
	}

	if firstQuad {
		if (rme < rmp) != (rme < rmv) {
			cvx = pvertex
		}
		if (rmv < rme) != (rmv < rmp) {
			if a.right(ap.ept1) == ap.ept2 {
				cvx = ap.ept1
			} else {
				cvx = ap.ept2
			}
		}
		zvx := a.get(cvx, ap.iy)
		lvx, rvx := a.left(cvx), a.right(cvx)

		for a.vprod4(cvx, rvx, rpt, pt) > 0 {
			cvx = rvx
			lvx, rvx = a.left(cvx), a.right(cvx)
			zvx = a.get(cvx, ap.iy)
			zpn := a.get(lvx, ap.iy)
			if zpt == zvx || zpt == zpn || (zpt < zvx) != (zpt < zpn) {
				break
			}
		}

		if zvx == zpt {
			if a.vprod4(cvx, rvx, rpt, pt) <= 0 {
				ap.setVertex(cvx)
				ap.setEdge(rpt, pt)
			} else {
				ap.setVertex(pt)
				ap.setEdge(cvx, rvx)
			}
		} else {
			zpn := a.get(rpt, ap.iy)
			if zvx == zpn || (zvx < zpt) != (zvx < zpn) {
				ap.setVertex(cvx)
				ap.setEdge(rpt, pt)
			} else {
				ap.setVertex(pt)
				ap.setEdge(lvx, cvx)
			}
		}
	} else {
		// Second quadrant.
		if (rme < rmp) != (rme < rmv) {
			cvx = pvertex
		}
		if (rmv < rme) != (rmv < rmp) {
			if a.left(ap.ept1) == ap.ept2 {
				cvx = ap.ept1
			} else {
				cvx = ap.ept2
			}
		}
		zvx := a.get(cvx, ap.iy)
		rvx, lvx := a.right(cvx), a.left(cvx)

		for a.vprod4(cvx, lvx, lpt, pt) < 0 {
			cvx = lvx
			rvx, lvx = a.right(cvx), a.left(cvx)
			zvx = a.get(cvx, ap.iy)
			zvn := a.get(rvx, ap.iy)
			if zpt == zvx || zpt == zvn || (zpt < zvx) != (zpt < zvn) {
				break
			}
		}
		if zvx == zpt {
			if a.vprod4(cvx, lvx, lpt, pt) >= 0 {
				ap.setVertex(cvx)
				ap.setEdge(lpt, pt)
			} else {
				ap.setVertex(pt)
				ap.setEdge(cvx, lvx)
			}
		} else {
			zvn := a.get(lpt, ap.iy)
			if zvx == zvn || (zvx < zvn) != (zvx < zpt) {
				ap.setVertex(cvx)
				ap.setEdge(lpt, pt)
			} else {
				ap.setVertex(pt)
				ap.setEdge(rvx, cvx)
			}
		}
	}
}
