package hull

import "github.com/banshee-data/archaeoscan/internal/archaeo/geom2i"

// preserveRecord is the one-level undo snapshot taken before every
// insertion, letting Restore put the hull back exactly as it was in O(1).
// Per spec, this is kept as an explicit record of indices rather than the
// original's ad hoc pointer snapshot.
type preserveRecord struct {
	left, right                     int
	aphVertex, aphEdgeStart, aphEdgeEnd int
	apvVertex, apvEdgeStart, apvEdgeEnd int
}

// Hull is an incrementally maintained polyline convex hull with both a
// horizontal and a vertical antipodal pair tracked alongside it. Grounded on
// original_source/src/ConvexHull/convexhull.cpp.
type Hull struct {
	arena *Arena

	left, right int
	lastToLeft  bool

	aph, apv *antipodal

	saved preserveRecord

	// scratch set by insert/insertDS, consumed by Restore.
	lconnect, rconnect, ldisconnect, rdisconnect int
}

// New builds the initial hull from three points, grounded on
// ConvexHull::ConvexHull(lpt, cpt, rpt).
func New(lpt, cpt, rpt geom2i.Pt) *Hull {
	a := newArena()
	lv := a.add(lpt)
	cv := a.add(cpt)
	rv := a.add(rpt)

	h := &Hull{arena: a, left: lv, right: rv}

	if lpt.ToLeft(cpt, rpt) {
		a.setRight(lv, cv)
		a.setLeft(cv, lv)
		a.setRight(cv, rv)
		a.setLeft(rv, cv)
		a.setRight(rv, lv)
		a.setLeft(lv, rv)
	} else {
		a.setRight(lv, rv)
		a.setLeft(rv, lv)
		a.setRight(rv, cv)
		a.setLeft(cv, rv)
		a.setRight(cv, lv)
		a.setLeft(lv, cv)
	}

	h.aph = newHorizontalAntipodal(a)
	h.aph.init(lv, cv, rv)
	h.apv = newVerticalAntipodal(a)
	h.apv.init(lv, cv, rv)

	h.saved = h.snapshot()
	return h
}

func (h *Hull) snapshot() preserveRecord {
	return preserveRecord{
		left: h.left, right: h.right,
		aphVertex: h.aph.vertex(), aphEdgeStart: h.aph.edgeStart(), aphEdgeEnd: h.aph.edgeEnd(),
		apvVertex: h.apv.vertex(), apvEdgeStart: h.apv.edgeStart(), apvEdgeEnd: h.apv.edgeEnd(),
	}
}

// Preserve snapshots the current hull state so Restore can undo the next
// insertion.
func (h *Hull) Preserve() {
	h.saved = h.snapshot()
}

// Restore reverts the hull to the state captured by the last Preserve,
// reconnecting the vertices disconnected by the intervening insertion.
func (h *Hull) Restore() {
	h.arena.setLeft(h.rconnect, h.rdisconnect)
	h.arena.setRight(h.lconnect, h.ldisconnect)
	h.left = h.saved.left
	h.right = h.saved.right
	h.aph.setVertexAndEdge(h.saved.aphVertex, h.saved.aphEdgeStart, h.saved.aphEdgeEnd)
	h.apv.setVertexAndEdge(h.saved.apvVertex, h.saved.apvEdgeStart, h.saved.apvEdgeEnd)
}

// InHull reports whether pt already lies within the hull on the given
// extremity side, i.e. whether adding it would be a no-op.
func (h *Hull) InHull(pt geom2i.Pt, toLeft bool) bool {
	ext := h.right
	if toLeft {
		ext = h.left
	}
	extPt := h.arena.point(ext)
	extR := h.arena.point(h.arena.right(ext))
	extL := h.arena.point(h.arena.left(ext))
	return pt.ToLeftOrOn(extPt, extR) && pt.ToLeftOrOn(extL, extPt)
}

// AddPoint inserts pt at the given extremity if it strictly extends the
// hull, updating both antipodal pairs in amortized O(1). Returns false if
// pt was already inside the hull (no-op).
func (h *Hull) AddPoint(pt geom2i.Pt, toLeft bool) bool {
	if h.InHull(pt, toLeft) {
		return false
	}
	vx := h.arena.add(pt)
	h.lastToLeft = toLeft
	h.Preserve()
	h.insert(vx, toLeft)
	h.aph.update(vx)
	h.apv.update(vx)
	return true
}

// AddPointDS inserts pt unconditionally (skipping the InHull check), for
// callers that already know the point extends the hull — mirrors
// ConvexHull::addPointDS.
func (h *Hull) AddPointDS(pt geom2i.Pt, toLeft bool) {
	vx := h.arena.add(pt)
	h.lastToLeft = toLeft
	h.Preserve()
	h.insertDS(vx, toLeft)
	h.aph.update(vx)
	h.apv.update(vx)
}

// MoveLastPoint restores the hull to before the last AddPoint/AddPointDS,
// then re-adds the last point at the new position pos. Returns false if the
// new position is inside the restored hull.
func (h *Hull) MoveLastPoint(pos geom2i.Pt) bool {
	h.Restore()
	if h.InHull(pos, h.lastToLeft) {
		return false
	}
	h.Preserve()
	return h.AddPoint(pos, h.lastToLeft)
}

// Thickness returns the smaller of the horizontal and vertical antipodal
// pair thicknesses: the bounding strip width a blurred segment derives its
// enclosing digital straight segment from.
func (h *Hull) Thickness() geom2i.EDist {
	aphw := h.aph.thickness()
	apvw := h.apv.thickness()
	if apvw.Less(aphw) {
		return apvw
	}
	return aphw
}

// AntipodalEdgeAndVertex returns the leaning edge (s,e) and opposite vertex
// v of whichever antipodal pair (horizontal or vertical) is currently
// thinner.
func (h *Hull) AntipodalEdgeAndVertex() (s, e, v geom2i.Pt) {
	aphw := h.aph.thickness()
	apvw := h.apv.thickness()
	ap := h.aph
	if apvw.Less(aphw) {
		ap = h.apv
	}
	return h.arena.point(ap.edgeStart()), h.arena.point(ap.edgeEnd()), h.arena.point(ap.vertex())
}

func (h *Hull) insert(pt int, toLeft bool) {
	a := h.arena
	opIn := false
	var opVertex int

	var lconnect, rconnect int
	if toLeft {
		lconnect, rconnect = h.left, h.left
		h.left = pt
		opVertex = h.right
	} else {
		lconnect, rconnect = h.right, h.right
		h.right = pt
		opVertex = h.left
	}

	ldisconnect := a.right(lconnect)
	for a.point(pt).ToLeftOrOn(a.point(lconnect), a.point(a.left(lconnect))) {
		if lconnect == opVertex {
			opIn = true
		}
		ldisconnect = lconnect
		lconnect = a.left(lconnect)
	}
	if opIn {
		if toLeft {
			h.right = lconnect
		} else {
			h.left = lconnect
		}
	}

	opIn = false
	rdisconnect := a.left(rconnect)
	for !a.point(pt).ToLeft(a.point(rconnect), a.point(a.right(rconnect))) {
		if rconnect == opVertex {
			opIn = true
		}
		rdisconnect = rconnect
		rconnect = a.right(rconnect)
	}
	if opIn {
		if toLeft {
			h.right = rconnect
		} else {
			h.left = rconnect
		}
	}

	a.setRight(lconnect, pt)
	a.setLeft(pt, lconnect)
	a.setLeft(rconnect, pt)
	a.setRight(pt, rconnect)

	h.lconnect, h.rconnect, h.ldisconnect, h.rdisconnect = lconnect, rconnect, ldisconnect, rdisconnect
}

func (h *Hull) insertDS(pt int, toLeft bool) {
	a := h.arena
	var lconnect, rconnect int
	if toLeft {
		lconnect, rconnect = h.left, h.left
		h.left = pt
	} else {
		lconnect, rconnect = h.right, h.right
		h.right = pt
	}

	ldisconnect := a.right(lconnect)
	for a.point(pt).ToLeftOrOn(a.point(lconnect), a.point(a.left(lconnect))) {
		ldisconnect = lconnect
		lconnect = a.left(lconnect)
	}

	rdisconnect := a.left(rconnect)
	for !a.point(pt).ToLeft(a.point(rconnect), a.point(a.right(rconnect))) {
		rdisconnect = rconnect
		rconnect = a.right(rconnect)
	}

	a.setRight(lconnect, pt)
	a.setLeft(pt, lconnect)
	a.setLeft(rconnect, pt)
	a.setRight(pt, rconnect)

	h.lconnect, h.rconnect, h.ldisconnect, h.rdisconnect = lconnect, rconnect, ldisconnect, rdisconnect
}

// Vertices walks the hull polyline from its left extremity around to its
// right extremity and back, for diagnostics/tests only.
func (h *Hull) Vertices() []geom2i.Pt {
	var out []geom2i.Pt
	start := h.left
	cur := start
	for {
		out = append(out, h.arena.point(cur))
		cur = h.arena.right(cur)
		if cur == start || len(out) > len(h.arena.vs)+1 {
			break
		}
	}
	return out
}
