package xdnd

import (
	"log/slog"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// SelectionRequester issues the XdndSelection ConvertSelection request used
// to pull one payload out of a drag source (C2 storeDropData /
// requestDropDataInSelection). callback fires at most once, with ok=false
// if the source refused the conversion or the result could not be read —
// the payload request loop treats this as "slot absent", not a fault. RequestSelection returns
// false if the request could not even be issued.
type SelectionRequester interface {
	RequestSelection(destWindow xproto.Window, selectionAtom, targetAtom, propertyAtom xproto.Atom, callback func(data []byte, ok bool)) bool
}

// X11SelectionRequester is the production SelectionRequester, issuing a real
// ConvertSelection request and resolving it when the toolkit's event loop
// observes the matching SelectionNotify (via HandleSelectionNotify) — the
// receiving-side mirror of source.go's handleSelectionRequest.
type X11SelectionRequester struct {
	conn *xgb.Conn
	log  *slog.Logger

	pending map[pendingKey]func(data []byte, ok bool)
}

type pendingKey struct {
	requestor xproto.Window
	property  xproto.Atom
}

// NewX11SelectionRequester builds a SelectionRequester bound to conn.
func NewX11SelectionRequester(conn *xgb.Conn, log *slog.Logger) *X11SelectionRequester {
	if log == nil {
		log = slog.Default()
	}
	return &X11SelectionRequester{
		conn:    conn,
		log:     log,
		pending: make(map[pendingKey]func(data []byte, ok bool)),
	}
}

// RequestSelection converts selectionAtom against targetAtom, landing the
// result on propertyAtom of destWindow (the engine's own window, acting as
// requestor — destWindow plays the role source.go's drag window plays on
// the sending side).
func (r *X11SelectionRequester) RequestSelection(destWindow xproto.Window, selectionAtom, targetAtom, propertyAtom xproto.Atom, callback func(data []byte, ok bool)) bool {
	key := pendingKey{requestor: destWindow, property: propertyAtom}
	r.pending[key] = callback

	cookie := xproto.ConvertSelectionChecked(r.conn, destWindow, selectionAtom, targetAtom, propertyAtom, xproto.TimeCurrentTime)
	if err := cookie.Check(); err != nil {
		delete(r.pending, key)
		r.log.Warn("xdnd: ConvertSelection request failed", "error", err)
		return false
	}
	return true
}

// HandleSelectionNotify resolves a pending request when the toolkit's event
// loop observes a SelectionNotify for it. Unrecognized notifications (no
// matching pending request) are ignored — they belong to some other
// consumer of the selection mechanism.
func (r *X11SelectionRequester) HandleSelectionNotify(ev *xproto.SelectionNotifyEvent) {
	key := pendingKey{requestor: ev.Requestor, property: ev.Property}

	callback, ok := r.pending[key]
	if ok {
		delete(r.pending, key)
	}
	if !ok {
		return
	}

	if ev.Property == xproto.AtomNone {
		callback(nil, false)
		return
	}

	data, ok := r.readProperty(ev.Requestor, ev.Property)
	callback(data, ok)
}

func (r *X11SelectionRequester) readProperty(win xproto.Window, property xproto.Atom) ([]byte, bool) {
	const maxLength = 1 << 22 // 4 MiB, generous ceiling for a single dropped payload
	reply, err := xproto.GetProperty(r.conn, false, win, property, xproto.AtomAny, 0, maxLength).Reply()
	if err != nil || reply == nil {
		r.log.Warn("xdnd: failed to read selection property", "error", err)
		return nil, false
	}
	defer xproto.DeleteProperty(r.conn, win, property)
	return reply.Value, true
}
