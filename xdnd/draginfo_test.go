package xdnd

import "testing"

func TestEnsureDragInfo_AllocatesOnceIdle(t *testing.T) {
	top := &fakeView{win: 1}
	info := ensureDragInfo(nil, top)
	if info.State != StateIdle {
		t.Fatalf("expected fresh record in StateIdle, got %s", info.State)
	}
	if info.AwareView != top || info.DestView != top {
		t.Fatalf("expected AwareView and DestView to be the top-level view")
	}
}

func TestEnsureDragInfo_ReturnsExistingUnchanged(t *testing.T) {
	top := &fakeView{win: 1}
	existing := &DragInfo{State: StateDropAllowed}
	got := ensureDragInfo(existing, top)
	if got != existing {
		t.Fatalf("expected the existing record to be returned unchanged")
	}
}

func TestNextMissingType_AlignsPositionally(t *testing.T) {
	info := &DragInfo{RequiredTypes: []string{"text/uri-list", "text/plain"}}

	typ, has := info.nextMissingType()
	if !has || typ != "text/uri-list" {
		t.Fatalf("expected first missing type text/uri-list, got %q (has=%v)", typ, has)
	}

	info.appendPayload(Payload{Data: []byte("file:///a"), OK: true})
	typ, has = info.nextMissingType()
	if !has || typ != "text/plain" {
		t.Fatalf("expected second missing type text/plain, got %q (has=%v)", typ, has)
	}

	info.appendPayload(Payload{OK: false})
	_, has = info.nextMissingType()
	if has {
		t.Fatalf("expected no missing types once every slot is filled")
	}
}

func TestAllPayloadsGathered_NoRequiredTypes(t *testing.T) {
	info := &DragInfo{}
	if !info.allPayloadsGathered() {
		t.Fatalf("expected allPayloadsGathered true when there are no required types")
	}
}

func TestPayloadBytes_AbsentSlotsAreNil(t *testing.T) {
	info := &DragInfo{RequiredTypes: []string{"a", "b"}}
	info.appendPayload(Payload{Data: []byte("x"), OK: true})
	info.appendPayload(Payload{OK: false})

	got := info.payloadBytes()
	if len(got) != 2 || string(got[0]) != "x" || got[1] != nil {
		t.Fatalf("unexpected payload bytes: %v", got)
	}
}

func TestFreeDestinationViewInfos_KeepsRecordAlive(t *testing.T) {
	info := &DragInfo{
		SourceTypes:   []string{"a"},
		RequiredTypes: []string{"a"},
		DropPayloads:  []Payload{{OK: true}},
		State:         StateDropAllowed,
	}
	info.freeDestinationViewInfos()

	if info.RequiredTypes != nil || info.DropPayloads != nil {
		t.Fatalf("expected per-view scratch state cleared")
	}
	if info.SourceTypes == nil {
		t.Fatalf("expected source_types to survive a dest_view change")
	}
	if info.State != StateDropAllowed {
		t.Fatalf("expected state to survive partial cleanup, got %s", info.State)
	}
}

func TestMessageWindow_FallsBackToAwareView(t *testing.T) {
	top := &fakeView{win: 42}
	child := &fakeView{win: 0}
	info := &DragInfo{AwareView: top}

	if got := info.messageWindow(child); got != 42 {
		t.Fatalf("expected fallback to aware view's window, got %v", got)
	}
	if got := info.messageWindow(top); got != 42 {
		t.Fatalf("expected the view's own window when non-zero, got %v", got)
	}
}
