package xdnd

import "github.com/jezek/xgb/xproto"

// Operation is the toolkit-level semantic verb a drop may perform. Atoms on
// the wire ("actions") are translated to and from Operation at the engine
// boundary so destination callbacks never deal with raw X11 atoms.
type Operation int

const (
	OperationNone Operation = iota
	OperationCopy
	OperationMove
	OperationLink
	OperationAsk
	OperationPrivate
)

func (op Operation) String() string {
	switch op {
	case OperationCopy:
		return "copy"
	case OperationMove:
		return "move"
	case OperationLink:
		return "link"
	case OperationAsk:
		return "ask"
	case OperationPrivate:
		return "private"
	default:
		return "none"
	}
}

// ActionToOperation translates a wire action atom to its semantic
// Operation, given the interned atom table. An unrecognized atom (including
// xproto.AtomNone) maps to OperationNone.
func ActionToOperation(atoms *Atoms, action xproto.Atom) Operation {
	switch action {
	case atoms.XdndActionCopy:
		return OperationCopy
	case atoms.XdndActionMove:
		return OperationMove
	case atoms.XdndActionLink:
		return OperationLink
	case atoms.XdndActionAsk:
		return OperationAsk
	case atoms.XdndActionPrivate:
		return OperationPrivate
	default:
		return OperationNone
	}
}

// OperationToAction is the inverse of ActionToOperation: it translates a
// semantic Operation back to its wire action atom. OperationNone (and any
// unrecognized value) maps to xproto.AtomNone.
func OperationToAction(atoms *Atoms, op Operation) xproto.Atom {
	switch op {
	case OperationCopy:
		return atoms.XdndActionCopy
	case OperationMove:
		return atoms.XdndActionMove
	case OperationLink:
		return atoms.XdndActionLink
	case OperationAsk:
		return atoms.XdndActionAsk
	case OperationPrivate:
		return atoms.XdndActionPrivate
	default:
		return xproto.AtomNone
	}
}
