package xdnd

// FindDestination implements the C3 hit tester: given a root pointer
// position and a top-level view, it finds the deepest mapped descendant
// view containing that point. Ties among overlapping siblings resolve to
// the first declared child, deterministically across calls.
//
// translator performs the one root-to-toplevel coordinate translation;
// every subsequent descent works in toolkit-local coordinates using each
// view's own Position/Size, which the toolkit is assumed to report
// correctly relative to its parent.
func FindDestination(translator CoordinateTranslator, topLevel View, rootX, rootY int16) View {
	localX, localY, err := translator.TranslateRootToWindow(topLevel.Window(), rootX, rootY)
	if err != nil {
		return topLevel
	}
	return findChildAt(topLevel, localX, localY)
}

// findChildAt recursively descends into the first mapped child (in
// declared order) whose rectangle contains (x, y), translating the query
// point into that child's local space at each step. It returns the
// current node when no child matches.
func findChildAt(parent View, x, y int16) View {
	for _, child := range parent.Children() {
		if !child.Mapped() {
			continue
		}
		cx, cy := child.Position()
		cw, ch := child.Size()
		if x < cx || x > cx+cw || y < cy || y > cy+ch {
			continue
		}
		return findChildAt(child, x-cx, y-cy)
	}
	return parent
}
