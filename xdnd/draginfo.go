package xdnd

import "github.com/jezek/xgb/xproto"

// State is the protocol FSM's current state for a drag session (C4).
type State int

const (
	StateIdle State = iota
	StateWaitEnter
	StateInspectDropData
	StateDropAllowed
	StateDropNotAllowed
	StateWaitForDropData
)

func (s State) String() string {
	switch s {
	case StateWaitEnter:
		return "waitEnter"
	case StateInspectDropData:
		return "inspectDropData"
	case StateDropAllowed:
		return "dropAllowed"
	case StateDropNotAllowed:
		return "dropNotAllowed"
	case StateWaitForDropData:
		return "waitForDropData"
	default:
		return "idle"
	}
}

// Payload is one positional slot of a drag's dropped data, aligned with
// DragInfo.RequiredTypes. OK is false when the selection request for that
// type failed or returned no data — the slot is still occupied (so
// positional alignment holds) but carries no bytes.
type Payload struct {
	Data []byte
	OK   bool
}

// DragInfo is the per-drag mutable record (C2): created on the first
// relevant message, destroyed when the drag ends or is cancelled.
type DragInfo struct {
	SourceWindow xproto.Window
	AwareView    View
	DestView     View

	ProtocolVersion int

	SourceTypes       []string
	TypeListAvailable bool

	RequiredTypes []string
	DropPayloads  []Payload

	SourceAction        Operation
	DestAction          Operation
	SourceActionChanged bool

	State State

	// watchdogHandle is the engine's single in-flight timeout handle for
	// this drag, owned here so Clear can always cancel it.
	watchdogHandle TimerHandle
}

// ensureDragInfo returns info unchanged if non-nil, otherwise allocates a
// fresh record scoped to topLevel in StateIdle (C2 ensure_exists).
func ensureDragInfo(info *DragInfo, topLevel View) *DragInfo {
	if info != nil {
		return info
	}
	return &DragInfo{
		AwareView: topLevel,
		DestView:  topLevel,
		State:     StateIdle,
	}
}

// freeDestinationViewInfos releases per-destination-view scratch state
// (RequiredTypes, DropPayloads) while keeping the record itself alive and
// SourceTypes intact (a dest_view change keeps source_types, since it came
// from the enter message the new view never received) — used when the
// destination view changes mid-drag, and by clearDrag.
func (info *DragInfo) freeDestinationViewInfos() {
	info.RequiredTypes = nil
	info.DropPayloads = nil
}

// nextMissingType returns the first required type with no payload slot
// yet, or "" with ok=false if every required type already has one (or
// there are no required types at all).
func (info *DragInfo) nextMissingType() (string, bool) {
	if info.RequiredTypes == nil {
		return "", false
	}
	idx := len(info.DropPayloads)
	if idx >= len(info.RequiredTypes) {
		return "", false
	}
	return info.RequiredTypes[idx], true
}

// appendPayload records the result of a selection request for the next
// missing required type, preserving positional alignment with
// RequiredTypes. It is a programmer error to call this when every slot is
// already filled.
func (info *DragInfo) appendPayload(p Payload) {
	info.DropPayloads = append(info.DropPayloads, p)
}

// allPayloadsGathered reports whether a payload slot exists for every
// required type. Vacuously true when there are no required types at all.
func (info *DragInfo) allPayloadsGathered() bool {
	return len(info.DropPayloads) >= len(info.RequiredTypes)
}

// messageWindow returns the X11 window id to address XDND messages to on
// behalf of view: view's own window if it has one, otherwise the drag's
// aware (top-level) window, since child views are not required to carry a
// window id of their own.
func (info *DragInfo) messageWindow(view View) xproto.Window {
	if w := view.Window(); w != 0 {
		return w
	}
	return info.AwareView.Window()
}

// payloadBytes extracts just the byte slices (nil where absent) for
// handing to destination callbacks, which never see the OK flag directly.
func (info *DragInfo) payloadBytes() [][]byte {
	out := make([][]byte, len(info.DropPayloads))
	for i, p := range info.DropPayloads {
		if p.OK {
			out[i] = p.Data
		}
	}
	return out
}
