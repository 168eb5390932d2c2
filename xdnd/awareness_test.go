package xdnd

import "testing"

func TestRegisterView_WritesAwarenessOnceWhenRealized(t *testing.T) {
	atoms := newTestAtoms("text/uri-list")
	writer := &fakeAwarenessWriter{}
	notifier := &fakeRealizationNotifier{}
	registry := NewAwarenessRegistry(atoms, writer, notifier, nil)

	top := &fakeView{win: 7, realized: true}

	if err := registry.RegisterView(top, []string{"text/uri-list"}); err != nil {
		t.Fatalf("RegisterView: %v", err)
	}
	if err := registry.RegisterView(top, []string{"text/uri-list"}); err != nil {
		t.Fatalf("RegisterView (second call): %v", err)
	}

	if writer.written[top.Window()] != XDNDVersion {
		t.Fatalf("expected awareness property written with version %d", XDNDVersion)
	}
	if len(writer.written) != 1 {
		t.Fatalf("expected exactly one awareness write, writer state: %v", writer.written)
	}
}

func TestRegisterView_DefersUntilRealized(t *testing.T) {
	atoms := newTestAtoms("text/uri-list")
	writer := &fakeAwarenessWriter{}
	notifier := &fakeRealizationNotifier{}
	registry := NewAwarenessRegistry(atoms, writer, notifier, nil)

	top := &fakeView{win: 7, realized: false}
	if err := registry.RegisterView(top, []string{"text/uri-list"}); err != nil {
		t.Fatalf("RegisterView: %v", err)
	}

	if len(writer.written) != 0 {
		t.Fatalf("expected no awareness write before realization, got %v", writer.written)
	}
}

func TestSetDestinationCallbacks_DefaultsUnsuppliedFields(t *testing.T) {
	atoms := newTestAtoms()
	registry := NewAwarenessRegistry(atoms, &fakeAwarenessWriter{}, &fakeRealizationNotifier{}, nil)
	view := &fakeView{win: 1, realized: true}

	registry.SetDestinationCallbacks(view, Callbacks{})

	callbacks, ok := registry.CallbacksFor(view)
	if !ok {
		t.Fatalf("expected callbacks to be registered")
	}
	if op := callbacks.AllowedOperation(OperationCopy, nil); op != OperationNone {
		t.Fatalf("expected default AllowedOperation to reject, got %s", op)
	}
	if callbacks.HasInspectDropData() {
		t.Fatalf("expected InspectDropData to remain absent when unsupplied")
	}
}

func TestIsRegisteredDestination_FalseUntilCallbacksSet(t *testing.T) {
	atoms := newTestAtoms("text/uri-list")
	registry := NewAwarenessRegistry(atoms, &fakeAwarenessWriter{}, &fakeRealizationNotifier{}, nil)
	view := &fakeView{win: 1, realized: true}

	if err := registry.RegisterView(view, []string{"text/uri-list"}); err != nil {
		t.Fatalf("RegisterView: %v", err)
	}
	if registry.IsRegisteredDestination(view) {
		t.Fatalf("expected not yet a registered destination without callbacks")
	}

	registry.SetDestinationCallbacks(view, Callbacks{})
	if !registry.IsRegisteredDestination(view) {
		t.Fatalf("expected registered destination once callbacks are set")
	}
}
