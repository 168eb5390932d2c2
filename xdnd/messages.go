package xdnd

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// X11MessageSender is the production MessageSender, sending XdndStatus and
// XdndFinished client messages the same way source.go sends its own
// messages (sendClientMessage), just in the opposite protocol direction.
type X11MessageSender struct {
	conn  *xgb.Conn
	atoms *Atoms
}

// NewX11MessageSender builds a MessageSender bound to conn and atoms.
func NewX11MessageSender(conn *xgb.Conn, atoms *Atoms) *X11MessageSender {
	return &X11MessageSender{conn: conn, atoms: atoms}
}

// SendStatus sends XdndStatus to sourceWindow on behalf of destWindow: bit
// 0 of data[1] is accept, bit 1 is want-position-always; data[2]/data[3]
// carry the rect only when the destination view has no children (all-zero
// rect otherwise, per the original's updateSourceWindow); data[4] carries
// the accepted action atom, or None when accept is false.
func (s *X11MessageSender) SendStatus(sourceWindow, destWindow xproto.Window, accept, wantPositionAlways bool, rectX, rectY, rectW, rectH int16, action xproto.Atom) error {
	var flags uint32
	if accept {
		flags |= 1
	}
	if wantPositionAlways {
		flags |= 2
	}

	var data [5]uint32
	data[0] = uint32(destWindow)
	data[1] = flags
	data[2] = uint32(uint16(rectX))<<16 | uint32(uint16(rectY))
	data[3] = uint32(uint16(rectW))<<16 | uint32(uint16(rectH))
	if accept {
		data[4] = uint32(action)
	}

	return s.sendClientMessage(sourceWindow, s.atoms.XdndStatus, data)
}

// SendFinished sends XdndFinished to sourceWindow on behalf of destWindow,
// concluding a drop.
func (s *X11MessageSender) SendFinished(sourceWindow, destWindow xproto.Window) error {
	var data [5]uint32
	data[0] = uint32(destWindow)
	return s.sendClientMessage(sourceWindow, s.atoms.XdndFinished, data)
}

func (s *X11MessageSender) sendClientMessage(target xproto.Window, msgType xproto.Atom, data [5]uint32) error {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: target,
		Type:   msgType,
		Data:   xproto.ClientMessageDataUnionData32New(data[:]),
	}

	cookie := xproto.SendEventChecked(s.conn, false, target, 0, string(ev.Bytes()))
	return cookie.Check()
}
