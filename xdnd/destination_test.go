package xdnd

import (
	"testing"

	"github.com/jezek/xgb/xproto"
)

type engineFixture struct {
	atoms      *Atoms
	selection  *fakeSelectionRequester
	scheduler  *fakeScheduler
	messages   *fakeMessageSender
	registry   *AwarenessRegistry
	properties *fakePropertySource
	engine     *Engine
}

func newEngineFixture(mimeTypes ...string) *engineFixture {
	atoms := newTestAtoms(mimeTypes...)
	selection := &fakeSelectionRequester{data: map[xproto.Atom][]byte{}, fail: map[xproto.Atom]bool{}}
	scheduler := &fakeScheduler{}
	messages := &fakeMessageSender{}
	registry := NewAwarenessRegistry(atoms, &fakeAwarenessWriter{}, &fakeRealizationNotifier{}, nil)
	properties := &fakePropertySource{threeTypes: mimeTypes}

	engine := NewEngine(
		atoms,
		properties,
		fakeTranslator{},
		fakePointerQuerier{},
		fakeGeometryQuerier{},
		selection,
		scheduler,
		messages,
		registry,
		Config{},
	)

	return &engineFixture{
		atoms: atoms, selection: selection, scheduler: scheduler,
		messages: messages, registry: registry, properties: properties, engine: engine,
	}
}

func enterData(version uint32, typeListAvailable bool) [5]uint32 {
	flags := version << 24
	if typeListAvailable {
		flags |= 1
	}
	return [5]uint32{0, flags, 0, 0, 0}
}

func positionData(atoms *Atoms, x, y int16, op Operation) [5]uint32 {
	packed := uint32(uint16(x))<<16 | uint32(uint16(y))
	return [5]uint32{0, 0, packed, 0, uint32(OperationToAction(atoms, op))}
}

// Scenario 1: happy-path copy, three types, inspection off.
func TestEngine_HappyPathCopy(t *testing.T) {
	f := newEngineFixture("text/uri-list", "text/plain", "application/x-color")
	top := &fakeView{win: 1, x: 0, y: 0, w: 200, h: 200, mapped: true, realized: true}

	var capturedPayloads [][]byte
	concluded := false
	f.registry.SetDestinationCallbacks(top, Callbacks{
		RequiredDataTypes: func(op Operation, sourceTypes []string) []string { return []string{"text/uri-list"} },
		AllowedOperation:  func(op Operation, sourceTypes []string) Operation { return OperationCopy },
		PerformDragOperation: func(payloads [][]byte, ops []ActionDescription, point Point) {
			capturedPayloads = payloads
		},
		ConcludeDragOperation: func() { concluded = true },
	})

	f.selection.data[f.atoms.mimeCache["text/uri-list"]] = []byte("file:///a\n")

	f.engine.HandleEnter(top, 9, enterData(5, false))
	f.engine.HandlePosition(top, 9, positionData(f.atoms, 100, 100, OperationCopy))

	status := f.messages.lastStatus()
	if !status.accept || status.action != f.atoms.XdndActionCopy {
		t.Fatalf("expected accept status with copy action, got %+v", status)
	}
	if status.wantPositionAlways {
		t.Fatalf("expected want_position=false for a childless destination")
	}

	f.engine.HandleDrop(top)

	if len(capturedPayloads) != 1 || string(capturedPayloads[0]) != "file:///a\n" {
		t.Fatalf("expected payload [\"file:///a\\n\"], got %v", capturedPayloads)
	}
	if !concluded {
		t.Fatalf("expected ConcludeDragOperation to be called")
	}
	if f.messages.finished != 1 {
		t.Fatalf("expected exactly one finished message, got %d", f.messages.finished)
	}
}

// Scenario 2: action changed mid-drag, destination refuses the new action.
func TestEngine_ActionChangedMidDrag_Refused(t *testing.T) {
	f := newEngineFixture("text/uri-list")
	top := &fakeView{win: 1, x: 0, y: 0, w: 200, h: 200, mapped: true, realized: true}

	f.registry.SetDestinationCallbacks(top, Callbacks{
		RequiredDataTypes: func(op Operation, sourceTypes []string) []string { return []string{"text/uri-list"} },
		AllowedOperation: func(op Operation, sourceTypes []string) Operation {
			if op == OperationCopy {
				return OperationCopy
			}
			return OperationNone
		},
	})

	f.engine.HandleEnter(top, 9, enterData(5, false))
	f.engine.HandlePosition(top, 9, positionData(f.atoms, 100, 100, OperationCopy))
	if !f.messages.lastStatus().accept {
		t.Fatalf("expected initial copy to be accepted")
	}

	f.engine.HandlePosition(top, 9, positionData(f.atoms, 100, 100, OperationMove))

	status := f.messages.lastStatus()
	if status.accept || status.action != xproto.AtomNone {
		t.Fatalf("expected the changed action to be refused, got %+v", status)
	}
}

// Scenario 3: watchdog timeout cancels the drag.
func TestEngine_WatchdogCancelsDrag(t *testing.T) {
	f := newEngineFixture("text/uri-list")
	top := &fakeView{win: 1, x: 0, y: 0, w: 200, h: 200, mapped: true, realized: true}

	concluded := false
	f.registry.SetDestinationCallbacks(top, Callbacks{
		RequiredDataTypes:     func(op Operation, sourceTypes []string) []string { return []string{"text/uri-list"} },
		AllowedOperation:      func(op Operation, sourceTypes []string) Operation { return OperationCopy },
		ConcludeDragOperation: func() { concluded = true },
	})

	f.engine.HandleEnter(top, 9, enterData(5, false))
	f.engine.HandlePosition(top, 9, positionData(f.atoms, 100, 100, OperationCopy))

	f.scheduler.fireLatest()

	status := f.messages.lastStatus()
	if status.accept {
		t.Fatalf("expected the watchdog to emit a reject status, got %+v", status)
	}
	if !concluded {
		t.Fatalf("expected ConcludeDragOperation on watchdog cancellation")
	}
	if f.engine.drag != nil {
		t.Fatalf("expected the drag record to be cleared after watchdog fires")
	}
}

// Scenario 4: destination view changes between position messages.
func TestEngine_DestinationViewChanges(t *testing.T) {
	f := newEngineFixture("text/uri-list")
	childA := &fakeView{win: 0, x: 0, y: 0, w: 100, h: 200, mapped: true}
	childB := &fakeView{win: 0, x: 100, y: 0, w: 100, h: 200, mapped: true}
	top := &fakeView{win: 1, x: 0, y: 0, w: 200, h: 200, mapped: true, realized: true, children: []View{childA, childB}}
	childA.parent, childB.parent = top, top

	f.registry.SetDestinationCallbacks(childA, Callbacks{
		RequiredDataTypes: func(op Operation, sourceTypes []string) []string { return []string{"text/uri-list"} },
		AllowedOperation:  func(op Operation, sourceTypes []string) Operation { return OperationCopy },
	})
	f.registry.SetDestinationCallbacks(childB, Callbacks{
		RequiredDataTypes: func(op Operation, sourceTypes []string) []string { return []string{"text/uri-list"} },
		AllowedOperation:  func(op Operation, sourceTypes []string) Operation { return OperationMove },
	})

	f.engine.HandleEnter(top, 9, enterData(5, false))
	f.engine.HandlePosition(top, 9, positionData(f.atoms, 50, 50, OperationCopy)) // hits childA

	statusA := f.messages.lastStatus()
	if !statusA.accept || statusA.action != f.atoms.XdndActionCopy {
		t.Fatalf("expected childA to accept copy, got %+v", statusA)
	}

	f.engine.HandlePosition(top, 9, positionData(f.atoms, 150, 50, OperationCopy)) // hits childB

	statusB := f.messages.lastStatus()
	if !statusB.accept || statusB.action != f.atoms.XdndActionMove {
		t.Fatalf("expected childB to accept move after the view change, got %+v", statusB)
	}
	if f.engine.drag.DestView != childB {
		t.Fatalf("expected DestView to be childB")
	}
}

// Scenario 5: type list overflow triggers a full fetch and retry.
func TestEngine_TypeListOverflow(t *testing.T) {
	f := newEngineFixture("text/uri-list")
	top := &fakeView{win: 1, x: 0, y: 0, w: 200, h: 200, mapped: true, realized: true}
	f.properties.threeTypes = []string{"image/png", "image/jpeg", "application/x-color"}
	f.properties.fullTypeList = []string{"image/png", "image/jpeg", "application/x-color", "text/uri-list"}

	f.registry.SetDestinationCallbacks(top, Callbacks{
		RequiredDataTypes: func(op Operation, sourceTypes []string) []string {
			for _, t := range sourceTypes {
				if t == "text/uri-list" {
					return []string{"text/uri-list"}
				}
			}
			return nil
		},
		AllowedOperation: func(op Operation, sourceTypes []string) Operation { return OperationCopy },
	})

	f.engine.HandleEnter(top, 9, enterData(5, true)) // type_list_available=1
	f.engine.HandlePosition(top, 9, positionData(f.atoms, 100, 100, OperationCopy))

	status := f.messages.lastStatus()
	if !status.accept {
		t.Fatalf("expected the full type list fetch to satisfy the destination, got %+v", status)
	}
	if f.engine.drag.TypeListAvailable {
		t.Fatalf("expected TypeListAvailable to be cleared after the fetch")
	}
}

// Scenario 6: selection request fails for one of two required types.
func TestEngine_SelectionFailsForOneType(t *testing.T) {
	f := newEngineFixture("text/uri-list", "text/plain")
	top := &fakeView{win: 1, x: 0, y: 0, w: 200, h: 200, mapped: true, realized: true}

	var capturedPayloads [][]byte
	f.registry.SetDestinationCallbacks(top, Callbacks{
		RequiredDataTypes: func(op Operation, sourceTypes []string) []string {
			return []string{"text/uri-list", "text/plain"}
		},
		AllowedOperation: func(op Operation, sourceTypes []string) Operation { return OperationCopy },
		PerformDragOperation: func(payloads [][]byte, ops []ActionDescription, point Point) {
			capturedPayloads = payloads
		},
	})

	f.selection.data[f.atoms.mimeCache["text/uri-list"]] = []byte("file:///a\n")
	f.selection.fail[f.atoms.mimeCache["text/plain"]] = true

	f.engine.HandleEnter(top, 9, enterData(5, false))
	f.engine.HandlePosition(top, 9, positionData(f.atoms, 100, 100, OperationCopy))
	f.engine.HandleDrop(top)

	if len(capturedPayloads) != 2 {
		t.Fatalf("expected two payload slots, got %d", len(capturedPayloads))
	}
	if string(capturedPayloads[0]) != "file:///a\n" {
		t.Fatalf("expected first payload to be the uri-list bytes, got %q", capturedPayloads[0])
	}
	if capturedPayloads[1] != nil {
		t.Fatalf("expected second payload to be absent, got %q", capturedPayloads[1])
	}
	if f.messages.finished != 1 {
		t.Fatalf("expected exactly one finished message, got %d", f.messages.finished)
	}
}

// payload/type alignment: drop_payloads never outgrows required_types.
func TestEngine_PayloadAlignmentInvariant(t *testing.T) {
	f := newEngineFixture("text/uri-list", "text/plain")
	top := &fakeView{win: 1, x: 0, y: 0, w: 200, h: 200, mapped: true, realized: true}

	f.registry.SetDestinationCallbacks(top, Callbacks{
		RequiredDataTypes: func(op Operation, sourceTypes []string) []string {
			return []string{"text/uri-list", "text/plain"}
		},
		AllowedOperation: func(op Operation, sourceTypes []string) Operation { return OperationCopy },
	})
	f.selection.data[f.atoms.mimeCache["text/uri-list"]] = []byte("a")
	f.selection.data[f.atoms.mimeCache["text/plain"]] = []byte("b")

	f.engine.HandleEnter(top, 9, enterData(5, false))
	f.engine.HandlePosition(top, 9, positionData(f.atoms, 100, 100, OperationCopy))

	if f.engine.drag != nil && len(f.engine.drag.DropPayloads) > len(f.engine.drag.RequiredTypes) {
		t.Fatalf("payload/type alignment violated: %d payloads for %d required types",
			len(f.engine.drag.DropPayloads), len(f.engine.drag.RequiredTypes))
	}
}

// clear idempotence.
func TestEngine_ClearIsIdempotent(t *testing.T) {
	f := newEngineFixture("text/uri-list")
	top := &fakeView{win: 1, x: 0, y: 0, w: 200, h: 200, mapped: true, realized: true}
	f.registry.SetDestinationCallbacks(top, Callbacks{
		AllowedOperation: func(op Operation, sourceTypes []string) Operation { return OperationCopy },
	})

	f.engine.HandleEnter(top, 9, enterData(5, false))
	f.engine.HandlePosition(top, 9, positionData(f.atoms, 100, 100, OperationCopy))

	f.engine.Clear()
	f.engine.Clear() // must not panic or double-send

	if f.engine.drag != nil {
		t.Fatalf("expected drag to remain nil after repeated Clear()")
	}
}

// Protocol version mismatch on enter is rejected rather than mis-negotiated.
func TestEngine_RejectsUnsupportedProtocolVersion(t *testing.T) {
	f := newEngineFixture("text/uri-list")
	top := &fakeView{win: 1, x: 0, y: 0, w: 200, h: 200, mapped: true, realized: true}
	f.registry.SetDestinationCallbacks(top, Callbacks{
		AllowedOperation: func(op Operation, sourceTypes []string) Operation { return OperationCopy },
	})

	f.engine.HandleEnter(top, 9, enterData(6, false)) // version 6 > supported 5

	status := f.messages.lastStatus()
	if status.accept {
		t.Fatalf("expected a version-mismatch enter to be rejected, got %+v", status)
	}
	if f.engine.drag != nil {
		t.Fatalf("expected no drag record to survive a version mismatch")
	}
}
