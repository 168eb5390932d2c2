package xdnd

import (
	"time"

	"github.com/jezek/xgb/xproto"
)

// newTestAtoms builds an Atoms value with plausible atom numbers and no
// live connection, so action/mime translation works without an X server.
// Any mime type requestNextPayload needs to intern in a test must be
// pre-seeded in mimeTypes.
func newTestAtoms(mimeTypes ...string) *Atoms {
	atoms := &Atoms{
		XdndAware:             1,
		XdndSelection:         2,
		XdndEnter:             3,
		XdndPosition:          4,
		XdndStatus:            5,
		XdndLeave:             6,
		XdndDrop:              7,
		XdndFinished:          8,
		XdndTypeList:          9,
		XdndActionList:        10,
		XdndActionDescription: 11,
		XdndActionCopy:        12,
		XdndActionMove:        13,
		XdndActionLink:        14,
		XdndActionAsk:         15,
		XdndActionPrivate:     16,
		TARGETS:               17,
		AudioMidi:             18,
		TextUriList:           19,
		mimeCache:             make(map[string]xproto.Atom),
	}
	for i, mime := range mimeTypes {
		atoms.mimeCache[mime] = xproto.Atom(1000 + i)
	}
	return atoms
}

// fakeView is a minimal in-memory View for tests, avoiding any X11 connection.
type fakeView struct {
	win      xproto.Window
	x, y     int16
	w, h     int16
	mapped   bool
	realized bool
	children []View
	parent   *fakeView
}

func (v *fakeView) Window() xproto.Window   { return v.win }
func (v *fakeView) Position() (int16, int16) { return v.x, v.y }
func (v *fakeView) Size() (int16, int16)     { return v.w, v.h }
func (v *fakeView) Mapped() bool             { return v.mapped }
func (v *fakeView) Children() []View         { return v.children }
func (v *fakeView) Realized() bool           { return v.realized }
func (v *fakeView) TopLevel() View {
	if v.parent != nil {
		return v.parent.TopLevel()
	}
	return v
}

// fakeTranslator treats root and window coordinates as identical, so tests
// can reason about plain (x, y) pairs.
type fakeTranslator struct{}

func (fakeTranslator) TranslateRootToWindow(win xproto.Window, rootX, rootY int16) (int16, int16, error) {
	return rootX, rootY, nil
}

type fakePointerQuerier struct {
	x, y int16
}

func (p fakePointerQuerier) QueryPointer(win xproto.Window) (int16, int16, error) {
	return p.x, p.y, nil
}

type fakeGeometryQuerier struct{}

func (fakeGeometryQuerier) BoundingRectInRoot(view View) (int16, int16, int16, int16, error) {
	x, y := view.Position()
	w, h := view.Size()
	return x, y, w, h, nil
}

// fakeSelectionRequester resolves every request synchronously with
// pre-seeded data (ok=false if the type has no entry), or refuses to issue
// it if the type is listed in fail.
type fakeSelectionRequester struct {
	data map[xproto.Atom][]byte
	fail map[xproto.Atom]bool
}

func (r *fakeSelectionRequester) RequestSelection(destWindow xproto.Window, selectionAtom, targetAtom, propertyAtom xproto.Atom, callback func(data []byte, ok bool)) bool {
	if r.fail[targetAtom] {
		return false
	}
	data, ok := r.data[targetAtom]
	callback(data, ok)
	return true
}

// fakeMessageSender records every status/finished message sent.
type fakeMessageSender struct {
	statuses []statusMessage
	finished int
}

type statusMessage struct {
	sourceWindow, destWindow           xproto.Window
	accept, wantPositionAlways         bool
	rectX, rectY, rectW, rectH         int16
	action                             xproto.Atom
}

func (m *fakeMessageSender) SendStatus(sourceWindow, destWindow xproto.Window, accept, wantPositionAlways bool, rectX, rectY, rectW, rectH int16, action xproto.Atom) error {
	m.statuses = append(m.statuses, statusMessage{sourceWindow, destWindow, accept, wantPositionAlways, rectX, rectY, rectW, rectH, action})
	return nil
}

func (m *fakeMessageSender) SendFinished(sourceWindow, destWindow xproto.Window) error {
	m.finished++
	return nil
}

func (m *fakeMessageSender) lastStatus() statusMessage {
	return m.statuses[len(m.statuses)-1]
}

// fakeScheduler never actually fires unless the test calls fireLatest() manually,
// so tests control the watchdog deterministically.
type fakeScheduler struct {
	scheduled []*fakeTimer
}

type fakeTimer struct {
	handler func()
	live    bool
}

func (s *fakeScheduler) ScheduleOnce(delay time.Duration, handler func()) TimerHandle {
	t := &fakeTimer{handler: handler, live: true}
	s.scheduled = append(s.scheduled, t)
	return t
}

func (s *fakeScheduler) Cancel(handle TimerHandle) {
	if t, ok := handle.(*fakeTimer); ok {
		t.live = false
	}
}

func (s *fakeScheduler) fireLatest() {
	if len(s.scheduled) == 0 {
		return
	}
	t := s.scheduled[len(s.scheduled)-1]
	if t.live {
		t.handler()
	}
}

// fakePropertySource stands in for PropertyReader in tests, avoiding any
// X11 connection. fullTypeList is what ReadTypeList returns (simulating a
// source with more than three advertised types); threeTypes is what
// DecodeThreeTypes returns (the enter-message subset).
type fakePropertySource struct {
	threeTypes   []string
	fullTypeList []string
	actionList   []ActionDescription
	actionListOK bool
}

func (s *fakePropertySource) ReadTypeList(w xproto.Window) []string {
	if s.fullTypeList == nil {
		return []string{}
	}
	return s.fullTypeList
}

func (s *fakePropertySource) ReadActionList(w xproto.Window) ([]ActionDescription, bool) {
	return s.actionList, s.actionListOK
}

func (s *fakePropertySource) DecodeThreeTypes(data [5]uint32) []string {
	return s.threeTypes
}

type fakeAwarenessWriter struct {
	written map[xproto.Window]byte
}

func (w *fakeAwarenessWriter) WriteAwareProperty(view View, version byte) error {
	if w.written == nil {
		w.written = make(map[xproto.Window]byte)
	}
	w.written[view.Window()] = version
	return nil
}

type fakeRealizationNotifier struct {
	fired map[View]bool
}

func (n *fakeRealizationNotifier) Subscribe(view View, handler func()) func() {
	if n.fired == nil {
		n.fired = make(map[View]bool)
	}
	if n.fired[view] {
		handler()
	}
	return func() {}
}
