package xdnd

import (
	"log/slog"

	"github.com/jezek/xgb/xproto"
)

// Engine is the protocol FSM (C4): it consumes client messages forwarded by
// the toolkit's event loop, negotiates a drop against a foreign source
// window, drives selection requests, and invokes a registered destination
// view's callbacks. Like the original, it tracks at most one in-flight drag
// at a time — a second drag cannot begin until the first reaches idle.
type Engine struct {
	config Config
	atoms  *Atoms
	log    *slog.Logger

	properties PropertySource
	translator CoordinateTranslator
	pointer    PointerQuerier
	geometry   GeometryQuerier
	selection  SelectionRequester
	scheduler  Scheduler
	messages   MessageSender
	registry   *AwarenessRegistry

	drag *DragInfo
}

// NewEngine assembles an Engine from its collaborators. Every collaborator
// is required; tests supply fakes in place of the X11-backed production
// adapters (X11SelectionRequester, X11MessageSender, NewSystemScheduler,
// and an xgbutil-backed CoordinateTranslator/PointerQuerier/GeometryQuerier).
func NewEngine(
	atoms *Atoms,
	properties PropertySource,
	translator CoordinateTranslator,
	pointer PointerQuerier,
	geometry GeometryQuerier,
	selection SelectionRequester,
	scheduler Scheduler,
	messages MessageSender,
	registry *AwarenessRegistry,
	config Config,
) *Engine {
	config = config.withDefaults()
	return &Engine{
		config:     config,
		atoms:      atoms,
		log:        config.Log,
		properties: properties,
		translator: translator,
		pointer:    pointer,
		geometry:   geometry,
		selection:  selection,
		scheduler:  scheduler,
		messages:   messages,
		registry:   registry,
	}
}

// HandleClientMessage dispatches a raw XDND client message to the
// appropriate transition based on its type atom. topLevel is the toolkit's
// view scoped to the window the message targets.
func (e *Engine) HandleClientMessage(topLevel View, ev *xproto.ClientMessageEvent) {
	var words [5]uint32
	copy(words[:], ev.Data.Data32)
	sourceWindow := xproto.Window(words[0])

	switch ev.Type {
	case e.atoms.XdndEnter:
		e.HandleEnter(topLevel, sourceWindow, words)
	case e.atoms.XdndPosition:
		e.HandlePosition(topLevel, sourceWindow, words)
	case e.atoms.XdndDrop:
		e.HandleDrop(topLevel)
	default:
		// Every other client message, including XdndLeave: idle sends a
		// reject status and stays idle; every other state stays without
		// emitting anything.
		if e.drag == nil {
			return
		}
		if e.drag.State == StateIdle {
			e.sendStatusNone(e.drag.SourceWindow, topLevel.Window())
		}
	}
}

// HandleEnter stores the enter message's source window, protocol version,
// and up-to-three advertised types. If a drag record was already waiting on
// an enter message (StateWaitEnter), re-run checkDropAllowed immediately;
// otherwise this only records state and does not transition (the next
// position message drives progress).
func (e *Engine) HandleEnter(topLevel View, sourceWindow xproto.Window, data [5]uint32) {
	version := int(data[1] >> 24)
	typeListAvailable := data[1]&1 != 0

	if version > e.config.ProtocolVersion {
		e.log.Warn("xdnd: rejecting enter with unsupported protocol version", "version", version, "supported", e.config.ProtocolVersion)
		e.sendStatusNone(sourceWindow, topLevel.Window())
		e.clearDrag()
		return
	}

	info := ensureDragInfo(e.drag, topLevel)
	e.drag = info
	wasWaitingEnter := info.State == StateWaitEnter

	info.SourceWindow = sourceWindow
	info.ProtocolVersion = version
	info.TypeListAvailable = typeListAvailable
	info.SourceTypes = e.properties.DecodeThreeTypes(data)

	if wasWaitingEnter {
		e.checkDropAllowed(info)
	}
}

// HandlePosition re-hit-tests the pointer against topLevel on every call,
// since the current destination view can change mid-drag.
func (e *Engine) HandlePosition(topLevel View, sourceWindow xproto.Window, data [5]uint32) {
	packed := data[2]
	rootX := int16(packed >> 16)
	rootY := int16(packed & 0xffff)
	requestedOp := ActionToOperation(e.atoms, xproto.Atom(data[4]))

	info := ensureDragInfo(e.drag, topLevel)
	e.drag = info
	info.SourceWindow = sourceWindow

	targetView := FindDestination(e.translator, topLevel, rootX, rootY)

	if targetView != info.DestView {
		info.DestView = targetView
		info.SourceActionChanged = false
		if info.State != StateWaitEnter {
			info.freeDestinationViewInfos()
			info.State = StateIdle
		}
	} else {
		info.SourceActionChanged = requestedOp != info.SourceAction
	}
	info.SourceAction = requestedOp

	switch info.State {
	case StateIdle:
		e.handleIdlePosition(info, targetView)
	case StateDropAllowed:
		e.handleDropAllowedPosition(info)
	case StateDropNotAllowed:
		e.handleDropNotAllowedPosition(info)
	default:
		// waitEnter, inspectDropData, waitForDropData: position counts as
		// "other" in these states; stay without emitting anything.
	}
}

// handleIdlePosition handles a position message arriving with no drop
// negotiated yet: ignore unregistered destinations, otherwise move the
// negotiation forward once the source's types are known.
func (e *Engine) handleIdlePosition(info *DragInfo, targetView View) {
	if !e.registry.IsRegisteredDestination(targetView) {
		e.sendStatusNone(info.SourceWindow, info.messageWindow(targetView))
		return
	}
	callbacks, _ := e.registry.CallbacksFor(targetView)
	callbacks.PrepareForDragOperation()
	if info.SourceTypes != nil {
		e.checkDropAllowed(info)
	} else {
		info.State = StateWaitEnter
	}
}

// handleDropAllowedPosition re-checks the drop if the source changed its
// requested action since the last position message, otherwise re-accepts
// with the previously negotiated action and resets the watchdog.
func (e *Engine) handleDropAllowedPosition(info *DragInfo) {
	if info.SourceActionChanged {
		e.checkDropAllowed(info)
		return
	}
	e.sendStatusAccept(info, info.DestAction)
	e.resetWatchdog(info)
}

// handleDropNotAllowedPosition mirrors handleDropAllowedPosition for a
// destination that has already refused the drag.
func (e *Engine) handleDropNotAllowedPosition(info *DragInfo) {
	if info.SourceActionChanged {
		e.checkDropAllowed(info)
		return
	}
	e.sendStatusNone(info.SourceWindow, info.messageWindow(info.DestView))
	e.resetWatchdog(info)
}

// checkDropAllowed asks the destination which types it wants and, once that
// settles, runs checkActionAllowed (or, if InspectDropData is supplied,
// fetches the required payloads first and defers to finishInspectDropData).
func (e *Engine) checkDropAllowed(info *DragInfo) {
	callbacks, ok := e.registry.CallbacksFor(info.DestView)
	if !ok {
		e.sendStatusNone(info.SourceWindow, info.messageWindow(info.DestView))
		info.State = StateDropNotAllowed
		e.resetWatchdog(info)
		return
	}

	required := callbacks.RequiredDataTypes(info.SourceAction, info.SourceTypes)
	if required == nil && info.TypeListAvailable {
		info.SourceTypes = e.properties.ReadTypeList(info.SourceWindow)
		info.TypeListAvailable = false
		required = callbacks.RequiredDataTypes(info.SourceAction, info.SourceTypes)
	}
	info.RequiredTypes = required

	if !callbacks.HasInspectDropData() {
		e.checkActionAllowed(info, callbacks)
		return
	}

	info.DropPayloads = make([]Payload, 0, len(required))
	info.State = StateInspectDropData
	e.resetWatchdog(info)
	if e.requestNextPayload(info) {
		e.finishInspectDropData(info, callbacks)
	}
}

// finishInspectDropData runs once every required payload has either arrived
// or been recorded absent.
func (e *Engine) finishInspectDropData(info *DragInfo, callbacks Callbacks) {
	if callbacks.InspectDropData(info.payloadBytes()) {
		e.checkActionAllowed(info, callbacks)
		return
	}
	e.sendStatusNone(info.SourceWindow, info.messageWindow(info.DestView))
	info.State = StateDropNotAllowed
	e.resetWatchdog(info)
}

// checkActionAllowed asks the destination whether it will perform the
// requested operation and sends the corresponding status reply.
func (e *Engine) checkActionAllowed(info *DragInfo, callbacks Callbacks) {
	op := callbacks.AllowedOperation(info.SourceAction, info.SourceTypes)
	info.DestAction = op
	if op == OperationNone {
		e.sendStatusNone(info.SourceWindow, info.messageWindow(info.DestView))
		info.State = StateDropNotAllowed
	} else {
		e.sendStatusAccept(info, op)
		info.State = StateDropAllowed
	}
	e.resetWatchdog(info)
}

// requestNextPayload implements the payload request protocol. It
// returns true once every required type has a payload slot (arrived or
// recorded absent), false if a selection request is now outstanding.
func (e *Engine) requestNextPayload(info *DragInfo) bool {
	for {
		typ, has := info.nextMissingType()
		if !has {
			return true
		}

		targetAtom, err := e.atoms.InternMime(typ)
		if err != nil {
			e.log.Warn("xdnd: failed to intern required type", "type", typ, "error", err)
			info.appendPayload(Payload{OK: false})
			continue
		}

		destWindow := info.DestView.Window()
		if destWindow == 0 {
			destWindow = info.AwareView.Window()
		}
		requested := e.selection.RequestSelection(destWindow, e.atoms.XdndSelection, targetAtom, e.atoms.XdndSelection, func(data []byte, ok bool) {
			info.appendPayload(Payload{Data: data, OK: ok})
			e.onSelectionArrived(info)
		})
		if !requested {
			info.appendPayload(Payload{OK: false})
			continue
		}
		return false
	}
}

// onSelectionArrived re-enters the FSM once a payload slot is filled. It
// stands in for the original's self-addressed "selection ready" client
// message: the toolkit's event loop already calls this synchronously from
// the dispatch thread (via the SelectionRequester's own notify handling), so
// no extra round trip through the X server is needed to preserve the
// single-threaded, one-at-a-time re-entry the original relies on.
func (e *Engine) onSelectionArrived(info *DragInfo) {
	if e.drag != info {
		return // a stale callback from a drag already cleared (e.g. by the watchdog)
	}
	e.resetWatchdog(info)

	switch info.State {
	case StateInspectDropData:
		if !e.requestNextPayload(info) {
			return
		}
		callbacks, ok := e.registry.CallbacksFor(info.DestView)
		if !ok {
			e.clearDrag()
			return
		}
		e.finishInspectDropData(info, callbacks)
	case StateWaitForDropData:
		if !e.requestNextPayload(info) {
			return
		}
		callbacks, ok := e.registry.CallbacksFor(info.DestView)
		if !ok {
			e.clearDrag()
			return
		}
		e.completeDrop(info, callbacks)
	}
}

// HandleDrop begins the drop sequence for the in-flight drag, if the
// destination has accepted it; otherwise the drop is refused outright.
func (e *Engine) HandleDrop(topLevel View) {
	info := e.drag
	if info == nil {
		return
	}

	switch info.State {
	case StateDropAllowed:
		callbacks, ok := e.registry.CallbacksFor(info.DestView)
		if !ok {
			e.clearDrag()
			return
		}
		if info.allPayloadsGathered() {
			e.completeDrop(info, callbacks)
			return
		}
		info.DropPayloads = make([]Payload, 0, len(info.RequiredTypes))
		info.State = StateWaitForDropData
		e.resetWatchdog(info)
		if e.requestNextPayload(info) {
			e.completeDrop(info, callbacks)
		}
	default:
		// dropNotAllowed, and any other state a drop arrives in (the
		// source is treated as possibly misbehaving, not as a programmer
		// error): refuse without invoking PerformDragOperation.
		e.refuseDrop(info)
	}
}

func (e *Engine) completeDrop(info *DragInfo, callbacks Callbacks) {
	dropPoint := e.queryDropPoint(info)
	callbacks.PerformDragOperation(info.payloadBytes(), e.operationList(info), dropPoint)
	if err := e.messages.SendFinished(info.SourceWindow, info.messageWindow(info.DestView)); err != nil {
		e.log.Warn("xdnd: failed to send finished message", "error", err)
	}
	callbacks.ConcludeDragOperation()
	e.clearDrag()
}

func (e *Engine) refuseDrop(info *DragInfo) {
	if info.DestView != nil {
		if err := e.messages.SendFinished(info.SourceWindow, info.messageWindow(info.DestView)); err != nil {
			e.log.Warn("xdnd: failed to send finished message", "error", err)
		}
		if callbacks, ok := e.registry.CallbacksFor(info.DestView); ok {
			callbacks.ConcludeDragOperation()
		}
	}
	e.clearDrag()
}

// onWatchdogFired cancels a drag that has gone 3000ms without a response
// from the source.
func (e *Engine) onWatchdogFired(info *DragInfo, view View) {
	if e.drag != info {
		return // already cleared by the time this fired
	}
	e.log.Debug("xdnd: watchdog fired, cancelling drag", "state", info.State)

	e.sendStatusNone(info.SourceWindow, info.messageWindow(view))
	if e.drag == nil {
		return // sendStatusNone already cleared on a send failure
	}
	if callbacks, ok := e.registry.CallbacksFor(view); ok {
		callbacks.ConcludeDragOperation()
	}
	e.clearDrag()
}

// operationList fetches the source's ask-action descriptions, but only when
// the currently requested action is "ask" (perform_drag_operation's
// operation_list_if_ask parameter).
func (e *Engine) operationList(info *DragInfo) []ActionDescription {
	if info.SourceAction != OperationAsk {
		return nil
	}
	list, ok := e.properties.ReadActionList(info.SourceWindow)
	if !ok {
		return nil
	}
	return list
}

// queryDropPoint re-queries the pointer position fresh at drop time rather
// than relying on the last position message, matching the original's
// getDropLocationInView.
func (e *Engine) queryDropPoint(info *DragInfo) Point {
	x, y, err := e.pointer.QueryPointer(info.messageWindow(info.DestView))
	if err != nil {
		return Point{}
	}
	return Point{X: x, Y: y}
}

func (e *Engine) sendStatusNone(sourceWindow, destWindow xproto.Window) {
	if err := e.messages.SendStatus(sourceWindow, destWindow, false, false, 0, 0, 0, 0, xproto.AtomNone); err != nil {
		e.log.Warn("xdnd: failed to send status message", "error", err)
		e.clearDrag()
	}
}

func (e *Engine) sendStatusAccept(info *DragInfo, op Operation) {
	destView := info.DestView
	action := OperationToAction(e.atoms, op)

	var rectX, rectY, rectW, rectH int16
	wantAlways := false
	if children := destView.Children(); len(children) == 0 {
		if x, y, w, h, err := e.geometry.BoundingRectInRoot(destView); err == nil {
			rectX, rectY, rectW, rectH = x, y, w, h
		}
	} else {
		wantAlways = true
	}

	if err := e.messages.SendStatus(info.SourceWindow, info.messageWindow(destView), true, wantAlways, rectX, rectY, rectW, rectH, action); err != nil {
		e.log.Warn("xdnd: failed to send status message", "error", err)
		e.clearDrag()
	}
}

// Clear cancels the in-flight drag, if any, and releases its record.
// Idempotent: calling it with no active drag is a no-op (idempotent).
func (e *Engine) Clear() {
	e.clearDrag()
}

func (e *Engine) clearDrag() {
	if e.drag == nil {
		return
	}
	e.stopWatchdog(e.drag)
	e.drag.freeDestinationViewInfos()
	e.drag.State = StateIdle
	e.drag = nil
}
