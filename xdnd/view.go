package xdnd

import "github.com/jezek/xgb/xproto"

// View is the toolkit's view-tree collaborator. The destination engine
// never constructs or mutates a View; it only walks one that the toolkit
// hands it (an enter/position message arrives scoped to some top-level
// View, and the engine descends into its children to find the drop
// target). Coordinate translation and geometry are owned by the toolkit,
// not the engine — see CoordinateTranslator.
type View interface {
	// Window returns the X11 window id backing this view. Only top-level
	// views are required to return a non-zero id; child views may return 0
	// since hit-testing operates on toolkit-local coordinates for them.
	Window() xproto.Window

	// Position returns this view's origin relative to its parent's
	// coordinate space (or, for a top-level view, its own window).
	Position() (x, y int16)

	// Size returns this view's width and height.
	Size() (w, h int16)

	// Mapped reports whether the view is currently visible/mapped. Unmapped
	// views are never hit-test candidates.
	Mapped() bool

	// Children returns this view's child views in declared (z-order,
	// front-to-back for overlap resolution) order. A leaf view returns nil.
	Children() []View

	// TopLevel returns the top-level ancestor of this view (itself, if it
	// is already top-level). The awareness registry (C5) publishes the
	// XdndAware property on the top-level, never on an arbitrary child.
	TopLevel() View

	// Realized reports whether this view's underlying window has been
	// created on the X server yet. Only meaningful for top-level views.
	Realized() bool
}

// RealizationNotifier lets the awareness registry (C5) defer writing the
// XdndAware property until a not-yet-realized top-level view is realized.
// Subscribe fires handler at most once and is expected to unsubscribe
// itself automatically after firing (the registry calls the returned
// cancel func defensively, but a conforming notifier tolerates that being
// a no-op after it has already fired).
type RealizationNotifier interface {
	Subscribe(view View, handler func()) (cancel func())
}

// GeometryQuerier reports a view's bounding rectangle in root (screen)
// coordinates, used for the XdndStatus message's rect fields when the
// destination view has no children.
type GeometryQuerier interface {
	BoundingRectInRoot(view View) (x, y, w, h int16, err error)
}

// MessageSender emits the XDND wire messages the destination side sends
// back to a drag source: status and finished. A send failure is IPC-level
// and causes the caller to abandon the drag silently, matching the C
// original's sendDnDClientMessage behavior.
type MessageSender interface {
	SendStatus(sourceWindow, destWindow xproto.Window, accept, wantPositionAlways bool, rectX, rectY, rectW, rectH int16, action xproto.Atom) error
	SendFinished(sourceWindow, destWindow xproto.Window) error
}

// CoordinateTranslator translates root (screen) coordinates into a window's
// local coordinate space. The real implementation delegates to X11's
// TranslateCoordinates request (X11CoordinateTranslator, over xgbutil's connection, in production); tests
// supply a fake.
type CoordinateTranslator interface {
	TranslateRootToWindow(win xproto.Window, rootX, rootY int16) (int16, int16, error)
}

// PointerQuerier returns the current pointer position in a window's local
// coordinate space, used to stamp perform_drag_operation's drop point at
// drop time (the position is re-queried rather than cached, matching the
// original's getDropLocationInView).
type PointerQuerier interface {
	QueryPointer(win xproto.Window) (x, y int16, err error)
}

// Point is a simple (x, y) pair in some view's local coordinate space.
type Point struct {
	X, Y int16
}
