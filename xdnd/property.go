package xdnd

import (
	"log/slog"

	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil"
	"github.com/jezek/xgbutil/xprop"
)

// ActionDescription pairs a semantic Operation with the human-readable
// description text the source advertises for it, as read from the
// XdndActionDescription property (used when the source's action is "ask").
type ActionDescription struct {
	Operation   Operation
	Description string
}

// PropertySource is C1's interface to the engine: reading a source window's
// advertised type/action lists. PropertyReader is the production
// implementation backed by a live X connection; tests supply a fake.
type PropertySource interface {
	ReadTypeList(w xproto.Window) []string
	ReadActionList(w xproto.Window) (list []ActionDescription, ok bool)
	DecodeThreeTypes(data [5]uint32) []string
}

// PropertyReader implements C1: reading typed atom/string lists from an
// arbitrary source window. It never fails loudly — on any read error,
// format mismatch, or empty result it logs at warning level and returns an
// empty/absent result so a misbehaving source can never abort a drag.
type PropertyReader struct {
	xu    *xgbutil.XUtil
	atoms *Atoms
	log   *slog.Logger
}

// NewPropertyReader builds a property reader bound to a live X connection.
func NewPropertyReader(xu *xgbutil.XUtil, atoms *Atoms, log *slog.Logger) *PropertyReader {
	if log == nil {
		log = slog.Default()
	}
	return &PropertyReader{xu: xu, atoms: atoms, log: log}
}

// ReadTypeList reads the XdndTypeList property from window w as an atom
// array and resolves each atom to its textual MIME name. On any failure it
// returns an empty (non-nil) slice rather than an error.
func (r *PropertyReader) ReadTypeList(w xproto.Window) []string {
	reply, err := xprop.GetProperty(r.xu, w, "XdndTypeList")
	if err != nil {
		r.log.Warn("xdnd: failed to read XdndTypeList property", "window", w, "error", err)
		return []string{}
	}
	if reply.Type != uint32(xproto.AtomAtom) || reply.Format != 32 || reply.ValueLen == 0 {
		r.log.Warn("xdnd: XdndTypeList property has unexpected format", "window", w, "format", reply.Format, "type", reply.Type)
		return []string{}
	}

	atoms := decodeAtomArray(reply.Value)
	names := make([]string, 0, len(atoms))
	for _, atom := range atoms {
		name, err := xprop.AtomName(r.xu, atom)
		if err != nil {
			r.log.Warn("xdnd: failed to resolve atom name", "atom", atom, "error", err)
			continue
		}
		names = append(names, name)
	}
	return names
}

// ReadActionList reads the XdndActionList and XdndActionDescription
// properties from window w, pairing each action atom (translated to an
// Operation) with its null-separated description string. Returns ok=false
// on any read failure, format mismatch, or count disagreement between the
// two properties. The returned descriptions are independent copies of the
// source property buffers.
func (r *PropertyReader) ReadActionList(w xproto.Window) (list []ActionDescription, ok bool) {
	actionsReply, err := xprop.GetProperty(r.xu, w, "XdndActionList")
	if err != nil {
		r.log.Warn("xdnd: cannot read action list", "window", w, "error", err)
		return nil, false
	}
	if actionsReply.Type != uint32(xproto.AtomAtom) || actionsReply.Format != 32 || actionsReply.ValueLen == 0 {
		r.log.Warn("xdnd: XdndActionList property has unexpected format", "window", w)
		return nil, false
	}

	descReply, err := xprop.GetProperty(r.xu, w, "XdndActionDescription")
	if err != nil {
		r.log.Warn("xdnd: cannot read action description list", "window", w, "error", err)
		return nil, false
	}
	if descReply.Format != 8 || descReply.ValueLen == 0 {
		r.log.Warn("xdnd: XdndActionDescription property has unexpected format", "window", w)
		return nil, false
	}

	actionAtoms := decodeAtomArray(actionsReply.Value)
	descriptions := splitNullSeparated(descReply.Value)

	if len(actionAtoms) != len(descriptions) {
		r.log.Warn("xdnd: action list and description list disagree in length",
			"window", w, "actions", len(actionAtoms), "descriptions", len(descriptions))
		return nil, false
	}

	result := make([]ActionDescription, len(actionAtoms))
	for i, atom := range actionAtoms {
		result[i] = ActionDescription{
			Operation:   ActionToOperation(r.atoms, atom),
			Description: string([]byte(descriptions[i])), // copy, independent of source buffer
		}
	}
	return result, true
}

// DecodeThreeTypes extracts up to three MIME-type atoms embedded in words
// 2..4 of an XdndEnter client message, resolving each to its textual name
// and skipping "none" entries. This is the live decode path the FSM always
// uses on enter (the type-list-on-enter bit is recorded for later
// use by checkDropAllowed's retry, not consumed here).
func (r *PropertyReader) DecodeThreeTypes(data [5]uint32) []string {
	types := make([]string, 0, 3)
	for i := 2; i <= 4; i++ {
		atom := xproto.Atom(data[i])
		if atom == xproto.AtomNone {
			continue
		}
		name, err := xprop.AtomName(r.xu, atom)
		if err != nil {
			r.log.Warn("xdnd: failed to resolve enter-message type atom", "atom", atom, "error", err)
			continue
		}
		types = append(types, name)
	}
	return types
}

func decodeAtomArray(value []byte) []xproto.Atom {
	count := len(value) / 4
	atoms := make([]xproto.Atom, 0, count)
	for i := 0; i < count; i++ {
		off := i * 4
		v := uint32(value[off]) | uint32(value[off+1])<<8 | uint32(value[off+2])<<16 | uint32(value[off+3])<<24
		atoms = append(atoms, xproto.Atom(v))
	}
	return atoms
}

func splitNullSeparated(value []byte) []string {
	var result []string
	start := 0
	for i, b := range value {
		if b == 0 {
			result = append(result, string(value[start:i]))
			start = i + 1
		}
	}
	if start < len(value) {
		result = append(result, string(value[start:]))
	}
	return result
}
