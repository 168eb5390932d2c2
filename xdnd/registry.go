package xdnd

import (
	"log/slog"

	"github.com/jezek/xgb/xproto"
	"github.com/pkg/errors"
)

// registration holds the per-view state the awareness registry (C5) tracks.
// A single struct serves both roles a View can play: a top-level view
// carries hintSet (and, indirectly, the realized XdndAware property); any
// registered view (top-level or not) carries acceptedTypes and, once
// SetDestinationCallbacks is called, its destination callbacks.
type registration struct {
	acceptedTypes []xproto.Atom
	callbacks     Callbacks
	hasCallbacks  bool
	hintSet       bool
}

// AwarenessRegistry implements C5: declaring views as accepting drop
// destinations, publishing the XdndAware property on their top-level
// window, and holding the destination callback table each registered view
// supplies.
type AwarenessRegistry struct {
	views    map[View]*registration
	atoms    *Atoms
	writer   AwarenessWriter
	notifier RealizationNotifier
	log      *slog.Logger
}

// AwarenessWriter writes the single-byte XdndAware property (value = the
// supported protocol version) onto a realized top-level view's window.
type AwarenessWriter interface {
	WriteAwareProperty(view View, version byte) error
}

// NewAwarenessRegistry builds a registry bound to the given atom table,
// property writer, and realization notifier.
func NewAwarenessRegistry(atoms *Atoms, writer AwarenessWriter, notifier RealizationNotifier, log *slog.Logger) *AwarenessRegistry {
	if log == nil {
		log = slog.Default()
	}
	return &AwarenessRegistry{
		views:    make(map[View]*registration),
		atoms:    atoms,
		writer:   writer,
		notifier: notifier,
		log:      log,
	}
}

// RegisterView declares view as an accepting destination for the given
// MIME types, publishing the awareness property on its top-level ancestor
// exactly once: idempotent across repeated calls on the same top-level.
func (r *AwarenessRegistry) RegisterView(view View, acceptedTypes []string) error {
	atoms := make([]xproto.Atom, 0, len(acceptedTypes))
	for _, mime := range acceptedTypes {
		atom, err := r.atoms.InternMime(mime)
		if err != nil {
			return errors.Wrapf(err, "xdnd: failed to intern mime type %q", mime)
		}
		atoms = append(atoms, atom)
	}

	reg := r.viewReg(view)
	reg.acceptedTypes = atoms

	r.ensureAwarenessHint(view.TopLevel())
	return nil
}

// UnregisterView releases the accepted-types array for view. The view's
// destination callbacks (if any) are left untouched — callers manage those
// separately via SetDestinationCallbacks.
func (r *AwarenessRegistry) UnregisterView(view View) {
	if reg, ok := r.views[view]; ok {
		reg.acceptedTypes = nil
	}
}

// SetDestinationCallbacks installs view's destination callback table,
// filling in safe defaults for anything unsupplied.
func (r *AwarenessRegistry) SetDestinationCallbacks(view View, callbacks Callbacks) {
	reg := r.viewReg(view)
	reg.callbacks = callbacks.withDefaults()
	reg.hasCallbacks = true
}

// IsRegisteredDestination reports whether view has destination callbacks
// installed — the engine's notion of a registered destination view.
func (r *AwarenessRegistry) IsRegisteredDestination(view View) bool {
	reg, ok := r.views[view]
	return ok && reg.hasCallbacks
}

// CallbacksFor returns view's installed callbacks. ok is false if view has
// no destination callbacks installed.
func (r *AwarenessRegistry) CallbacksFor(view View) (Callbacks, bool) {
	reg, ok := r.views[view]
	if !ok || !reg.hasCallbacks {
		return Callbacks{}, false
	}
	return reg.callbacks, true
}

func (r *AwarenessRegistry) viewReg(view View) *registration {
	reg, ok := r.views[view]
	if !ok {
		reg = &registration{}
		r.views[view] = reg
	}
	return reg
}

// ensureAwarenessHint sets the xdnd_hint_set flag on topLevel's
// registration the first time any view under it registers, then writes
// (or schedules writing, if not yet realized) the XdndAware property.
func (r *AwarenessRegistry) ensureAwarenessHint(topLevel View) {
	reg := r.viewReg(topLevel)
	alreadySet := reg.hintSet
	reg.hintSet = true

	if alreadySet {
		return
	}

	if topLevel.Realized() {
		r.writeAwareness(topLevel)
		return
	}

	var cancel func()
	cancel = r.notifier.Subscribe(topLevel, func() {
		r.writeAwareness(topLevel)
		if cancel != nil {
			cancel()
		}
	})
}

func (r *AwarenessRegistry) writeAwareness(topLevel View) {
	if err := r.writer.WriteAwareProperty(topLevel, XDNDVersion); err != nil {
		r.log.Warn("xdnd: failed to write XdndAware property", "error", err)
	}
}
