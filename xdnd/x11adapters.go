package xdnd

import (
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil"
	"github.com/jezek/xgbutil/xevent"
	"github.com/jezek/xgbutil/xwindow"
)

// X11CoordinateTranslator implements CoordinateTranslator using the raw
// TranslateCoordinates request against xgbutil's connection and root
// window.
type X11CoordinateTranslator struct {
	xu *xgbutil.XUtil
}

// NewX11CoordinateTranslator builds a CoordinateTranslator bound to xu.
func NewX11CoordinateTranslator(xu *xgbutil.XUtil) *X11CoordinateTranslator {
	return &X11CoordinateTranslator{xu: xu}
}

func (t *X11CoordinateTranslator) TranslateRootToWindow(win xproto.Window, rootX, rootY int16) (int16, int16, error) {
	reply, err := xproto.TranslateCoordinates(t.xu.Conn(), t.xu.RootWin(), win, rootX, rootY).Reply()
	if err != nil {
		return 0, 0, err
	}
	return reply.DstX, reply.DstY, nil
}

// X11PointerQuerier implements PointerQuerier via xproto.QueryPointer.
type X11PointerQuerier struct {
	xu *xgbutil.XUtil
}

// NewX11PointerQuerier builds a PointerQuerier bound to xu.
func NewX11PointerQuerier(xu *xgbutil.XUtil) *X11PointerQuerier {
	return &X11PointerQuerier{xu: xu}
}

func (q *X11PointerQuerier) QueryPointer(win xproto.Window) (int16, int16, error) {
	reply, err := xproto.QueryPointer(q.xu.Conn(), win).Reply()
	if err != nil {
		return 0, 0, err
	}
	return reply.WinX, reply.WinY, nil
}

// X11GeometryQuerier implements GeometryQuerier using xgbutil/xwindow for
// the view's extent and a root-coordinate translate for its origin.
type X11GeometryQuerier struct {
	xu *xgbutil.XUtil
}

// NewX11GeometryQuerier builds a GeometryQuerier bound to xu.
func NewX11GeometryQuerier(xu *xgbutil.XUtil) *X11GeometryQuerier {
	return &X11GeometryQuerier{xu: xu}
}

func (g *X11GeometryQuerier) BoundingRectInRoot(view View) (x, y, w, h int16, err error) {
	win := view.Window()
	geom, err := xwindow.New(g.xu, win).Geometry()
	if err != nil {
		return 0, 0, 0, 0, err
	}

	originReply, err := xproto.TranslateCoordinates(g.xu.Conn(), win, g.xu.RootWin(), 0, 0).Reply()
	if err != nil {
		return 0, 0, 0, 0, err
	}

	return originReply.DstX, originReply.DstY, int16(geom.Width()), int16(geom.Height()), nil
}

// X11AwarenessWriter implements AwarenessWriter: publishing the XdndAware
// property (a single CARDINAL holding the protocol version) on a realized
// top-level window.
type X11AwarenessWriter struct {
	xu    *xgbutil.XUtil
	atoms *Atoms
}

// NewX11AwarenessWriter builds an AwarenessWriter bound to xu and atoms.
func NewX11AwarenessWriter(xu *xgbutil.XUtil, atoms *Atoms) *X11AwarenessWriter {
	return &X11AwarenessWriter{xu: xu, atoms: atoms}
}

func (w *X11AwarenessWriter) WriteAwareProperty(view View, version byte) error {
	data := []byte{version, 0, 0, 0}
	cookie := xproto.ChangePropertyChecked(
		w.xu.Conn(), xproto.PropModeReplace, view.Window(),
		w.atoms.XdndAware, xproto.AtomCardinal, 32,
		1, data,
	)
	return cookie.Check()
}

// X11RealizationNotifier implements RealizationNotifier by watching for the
// MapNotify event on a view's window via xgbutil's event-callback registry
// (xevent). Subscribe may be called before the window is mapped; the
// callback fires at most once and detaches itself.
type X11RealizationNotifier struct {
	xu *xgbutil.XUtil

	nextID  uint64
	pending map[xproto.Window]map[uint64]func()
}

// NewX11RealizationNotifier builds a RealizationNotifier bound to xu. It
// registers a single MapNotify callback on xu's event loop that fan-outs to
// whichever views currently have pending subscriptions.
func NewX11RealizationNotifier(xu *xgbutil.XUtil) *X11RealizationNotifier {
	n := &X11RealizationNotifier{xu: xu, pending: make(map[xproto.Window]map[uint64]func())}
	xevent.MapNotifyFun(n.handleMapNotify).Connect(xu, xu.RootWin())
	return n
}

func (n *X11RealizationNotifier) handleMapNotify(xu *xgbutil.XUtil, ev xevent.MapNotifyEvent) {
	handlers := n.pending[ev.Window]
	delete(n.pending, ev.Window)

	for _, h := range handlers {
		h()
	}
}

func (n *X11RealizationNotifier) Subscribe(view View, handler func()) (cancel func()) {
	win := view.Window()

	n.nextID++
	id := n.nextID
	if n.pending[win] == nil {
		n.pending[win] = make(map[uint64]func())
	}
	n.pending[win][id] = handler

	return func() {
		delete(n.pending[win], id)
	}
}
