package xdnd

import "testing"

func TestOperationActionRoundTrip(t *testing.T) {
	atoms := newTestAtoms()
	ops := []Operation{OperationCopy, OperationMove, OperationLink, OperationAsk, OperationPrivate}
	for _, op := range ops {
		action := OperationToAction(atoms, op)
		got := ActionToOperation(atoms, action)
		if got != op {
			t.Fatalf("round trip for %s: got %s", op, got)
		}
	}
}

func TestActionToOperation_UnrecognizedIsNone(t *testing.T) {
	atoms := newTestAtoms()
	if got := ActionToOperation(atoms, 9999); got != OperationNone {
		t.Fatalf("expected OperationNone for unrecognized atom, got %s", got)
	}
}

func TestOperationToAction_NoneIsAtomNone(t *testing.T) {
	atoms := newTestAtoms()
	if got := OperationToAction(atoms, OperationNone); got != 0 {
		t.Fatalf("expected AtomNone for OperationNone, got %v", got)
	}
}
