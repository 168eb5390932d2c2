package xdnd

// Callbacks is the destination callback surface (C4): a registrant
// supplies as many of these as it cares about; withDefaults fills in the
// rest with safe no-op/reject behavior, mirroring the "mutable record of
// function pointers with defaults patched in" of the original, re-expressed
// as a plain struct of func fields plus a builder rather than a C vtable.
type Callbacks struct {
	// RequiredDataTypes returns the subset/ordering of MIME types the
	// destination wants from sourceTypes, or nil to force a full-type-list
	// fetch (if one is available) followed by a retry.
	RequiredDataTypes func(requestedOp Operation, sourceTypes []string) []string

	// AllowedOperation returns the semantic operation the destination will
	// perform, or OperationNone to reject the drop outright.
	AllowedOperation func(requestedOp Operation, sourceTypes []string) Operation

	// PrepareForDragOperation is called once when the pointer enters this
	// destination view.
	PrepareForDragOperation func()

	// InspectDropData is optional (nil means "not implemented"). When
	// present, it authorizes the drop given the pre-fetched payloads
	// (required by RequiredDataTypes); absent payload slots carry nil.
	InspectDropData func(payloads [][]byte) bool

	// PerformDragOperation executes the drop. operations is non-nil only
	// when the source's requested action was "ask".
	PerformDragOperation func(payloads [][]byte, operations []ActionDescription, dropPoint Point)

	// ConcludeDragOperation is called after every drop attempt, whether it
	// succeeded, was refused, or timed out.
	ConcludeDragOperation func()
}

// HasInspectDropData reports whether the registrant supplied an
// InspectDropData callback (it's the only genuinely optional one — all
// others get a safe default instead of being left nil).
func (c Callbacks) HasInspectDropData() bool {
	return c.InspectDropData != nil
}

// withDefaults returns a copy of c with every unsupplied callback replaced
// by a safe default: reject everything, no-op otherwise.
//
// NOTE: the C original (dragdestination.c, WMSetViewDragDestinationProcs)
// checks `allowedOperation == NULL` twice and never defaults
// requiredDataTypes, so a caller that omits RequiredDataTypes there gets a
// nil function pointer and crashes on first use. Defaulting it here instead
// is an intentional departure from the literal C behavior, since there is no
// reason a destination that only cares about the allowed operation should
// have to supply a trivial RequiredDataTypes just to avoid a crash.
func (c Callbacks) withDefaults() Callbacks {
	if c.RequiredDataTypes == nil {
		c.RequiredDataTypes = func(Operation, []string) []string { return nil }
	}
	if c.AllowedOperation == nil {
		c.AllowedOperation = func(Operation, []string) Operation { return OperationNone }
	}
	if c.PrepareForDragOperation == nil {
		c.PrepareForDragOperation = func() {}
	}
	// InspectDropData is left nil when absent — its absence changes
	// control flow (checkDropAllowed skips straight to checkActionAllowed).
	if c.PerformDragOperation == nil {
		c.PerformDragOperation = func([][]byte, []ActionDescription, Point) {}
	}
	if c.ConcludeDragOperation == nil {
		c.ConcludeDragOperation = func() {}
	}
	return c
}
