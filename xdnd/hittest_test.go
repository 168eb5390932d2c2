package xdnd

import "testing"

func TestFindDestination_DescendsToDeepestMappedChild(t *testing.T) {
	grandchild := &fakeView{win: 0, x: 5, y: 5, w: 10, h: 10, mapped: true}
	child := &fakeView{win: 0, x: 10, y: 10, w: 50, h: 50, mapped: true, children: []View{grandchild}}
	top := &fakeView{win: 1, x: 0, y: 0, w: 200, h: 200, mapped: true, children: []View{child}}

	got := FindDestination(fakeTranslator{}, top, 17, 17) // 10+5, 10+5 -> inside grandchild
	if got != grandchild {
		t.Fatalf("expected grandchild, got %v", got)
	}
}

func TestFindDestination_ReturnsTopLevelWhenNoChildMatches(t *testing.T) {
	child := &fakeView{win: 0, x: 10, y: 10, w: 20, h: 20, mapped: true}
	top := &fakeView{win: 1, x: 0, y: 0, w: 200, h: 200, mapped: true, children: []View{child}}

	got := FindDestination(fakeTranslator{}, top, 150, 150)
	if got != top {
		t.Fatalf("expected top-level fallback, got %v", got)
	}
}

func TestFindDestination_SkipsUnmappedChild(t *testing.T) {
	hidden := &fakeView{win: 0, x: 0, y: 0, w: 200, h: 200, mapped: false}
	visible := &fakeView{win: 0, x: 0, y: 0, w: 200, h: 200, mapped: true}
	top := &fakeView{win: 1, x: 0, y: 0, w: 200, h: 200, mapped: true, children: []View{hidden, visible}}

	got := FindDestination(fakeTranslator{}, top, 50, 50)
	if got != visible {
		t.Fatalf("expected the mapped sibling, got %v", got)
	}
}

func TestFindDestination_FirstDeclaredChildWinsOnOverlap(t *testing.T) {
	first := &fakeView{win: 0, x: 0, y: 0, w: 100, h: 100, mapped: true}
	second := &fakeView{win: 0, x: 0, y: 0, w: 100, h: 100, mapped: true}
	top := &fakeView{win: 1, x: 0, y: 0, w: 200, h: 200, mapped: true, children: []View{first, second}}

	got := FindDestination(fakeTranslator{}, top, 50, 50)
	if got != first {
		t.Fatalf("expected first declared child to win ties, got %v", got)
	}
}

func TestFindDestination_DeterministicAcrossRuns(t *testing.T) {
	child := &fakeView{win: 0, x: 10, y: 10, w: 50, h: 50, mapped: true}
	top := &fakeView{win: 1, x: 0, y: 0, w: 200, h: 200, mapped: true, children: []View{child}}

	first := FindDestination(fakeTranslator{}, top, 30, 30)
	second := FindDestination(fakeTranslator{}, top, 30, 30)
	if first != second {
		t.Fatalf("expected deterministic result, got %v then %v", first, second)
	}
}
