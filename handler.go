package conflict

import (
	"go.uber.org/zap"
)

// TickStats counts what happened during one Resolve.
type TickStats struct {
	Duration        float64
	Listeners       int
	Passive         int
	PairsChecked    int
	Collisions      int
	EventsDelivered int
}

// Stats describes a CollisionHandler.
type Stats struct {
	Ticks       uint64
	Listeners   int
	Collidables int
	LastTick    TickStats
}

// CollisionHandler finds the collisions between its listeners and everything else
// once per tick and delivers them as events. Every listener is checked against the
// listeners before it and against every passive collidable, so each pair is checked
// at most once per tick.
//
// A CollisionHandler is not safe for concurrent use.
type CollisionHandler struct {
	cfg    Config
	logger *zap.Logger

	listeners   entitySet[Listener]
	collidables collidableHandler

	// listeners already handled during the current tick
	previousListeners []snapshot[Listener]

	locked            int
	postStepCallbacks []func()

	stats Stats
}

// NewCollisionHandler creates an empty handler. A nil logger disables logging.
func NewCollisionHandler(cfg Config, logger *zap.Logger) *CollisionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CollisionHandler{
		cfg:    cfg,
		logger: logger.Named("conflict"),
	}
}

func (h *CollisionHandler) Config() Config {
	return h.cfg
}

// Add registers c as a listener if it implements Listener and as a passive collidable
// otherwise. Calls made while a tick is being resolved take effect once it's done.
func (h *CollisionHandler) Add(c Collidable) {
	if c == nil {
		return
	}
	if h.locked > 0 {
		h.addPostStepCallback(func() { h.Add(c) })
		return
	}

	if c.CollisionInformation().empty() {
		h.logger.Warn("collidable has no shapes and will not collide", zap.Stringer("collidable", stringer(c)))
	}

	if l, ok := c.(Listener); ok {
		if h.listeners.Insert(l) {
			h.logger.Debug("added listener", zap.Stringer("listener", stringer(c)))
		}
		return
	}
	if h.collidables.add(c) {
		h.logger.Debug("added collidable", zap.Stringer("collidable", stringer(c)))
	}
}

// Remove unregisters c from whichever set it was added to.
func (h *CollisionHandler) Remove(c Collidable) {
	if c == nil {
		return
	}
	if l, ok := c.(Listener); ok {
		h.RemoveListener(l)
		return
	}
	h.RemovePassive(c)
}

func (h *CollisionHandler) RemoveListener(l Listener) {
	if h.locked > 0 {
		h.addPostStepCallback(func() { h.RemoveListener(l) })
		return
	}
	if h.listeners.Remove(l) {
		h.logger.Debug("removed listener", zap.Stringer("listener", stringer(l)))
	}
}

func (h *CollisionHandler) RemovePassive(c Collidable) {
	if h.locked > 0 {
		h.addPostStepCallback(func() { h.RemovePassive(c) })
		return
	}
	if h.collidables.remove(c) {
		h.logger.Debug("removed collidable", zap.Stringer("collidable", stringer(c)))
	}
}

// RemoveAll unregisters every listener and passive collidable.
func (h *CollisionHandler) RemoveAll() {
	if h.locked > 0 {
		h.addPostStepCallback(h.RemoveAll)
		return
	}
	h.listeners.Clear()
	h.collidables.collidables.Clear()
	h.logger.Debug("removed everything")
}

func (h *CollisionHandler) Listeners() []Listener {
	return h.listeners.Slice()
}

func (h *CollisionHandler) Collidables() []Collidable {
	return h.collidables.collidables.Slice()
}

func (h *CollisionHandler) Stats() Stats {
	stats := h.stats
	stats.Listeners = h.listeners.Count()
	stats.Collidables = h.collidables.collidables.Count()
	return stats
}

// Active reports whether any listener is listening for collisions.
func (h *CollisionHandler) Active() bool {
	active := false
	h.listeners.Each(func(l Listener) {
		if checker := l.ListeningInformation(); checker != nil && checker.Active() {
			active = true
		}
	})
	return active
}

// SetActive switches every listener on or off.
func (h *CollisionHandler) SetActive(active bool) {
	h.listeners.Each(func(l Listener) {
		if checker := l.ListeningInformation(); checker != nil {
			checker.SetActive(active)
		}
	})
}

// Resolve checks the registered entities for collisions and delivers the events.
// duration is passed on to every event.
func (h *CollisionHandler) Resolve(duration float64) {
	if h.locked > 0 {
		h.logger.Warn("Resolve called while a tick is being resolved, ignoring")
		return
	}
	h.resolve(duration, h.listeners.entries, h.collidables.collidables.entries)
}

// ResolveWith works like Resolve on the given entities instead of the registered ones.
func (h *CollisionHandler) ResolveWith(duration float64, listeners []Listener, passive []Collidable) {
	if h.locked > 0 {
		h.logger.Warn("ResolveWith called while a tick is being resolved, ignoring")
		return
	}
	h.resolve(duration, listeners, passive)
}

func (h *CollisionHandler) resolve(duration float64, listeners []Listener, passive []Collidable) {
	h.Lock()
	defer h.Unlock()

	listenerShapes := place(listeners, h.cfg, h.logger)
	passiveShapes := place(passive, h.cfg, h.logger)

	tick := TickStats{
		Duration:  duration,
		Listeners: len(listenerShapes),
		Passive:   len(passiveShapes),
	}

	var index *spaceHash
	if h.cfg.CellSize > 0 && len(passiveShapes) > 0 {
		index = indexPassive(h.cfg.CellSize, passiveShapes)
	}

	for _, current := range listenerShapes {
		h.handleListener(current, passiveShapes, index, duration, &tick)
	}

	clear(h.previousListeners)
	h.previousListeners = h.previousListeners[:0]

	h.stats.Ticks++
	h.stats.LastTick = tick

	if ce := h.logger.Check(zap.DebugLevel, "resolved tick"); ce != nil {
		ce.Write(
			zap.Uint64("tick", h.stats.Ticks),
			zap.Float64("duration", duration),
			zap.Int("listeners", tick.Listeners),
			zap.Int("passive", tick.Passive),
			zap.Int("pairs", tick.PairsChecked),
			zap.Int("collisions", tick.Collisions),
			zap.Int("events", tick.EventsDelivered),
		)
	}
}

func (h *CollisionHandler) handleListener(current snapshot[Listener], passive []snapshot[Collidable], index *spaceHash, duration float64, tick *TickStats) {
	// inactive listeners still count as handled
	defer func() {
		h.previousListeners = append(h.previousListeners, current)
	}()

	checker := current.entity.ListeningInformation()
	if checker == nil || !checker.Active() {
		return
	}

	for _, previous := range h.previousListeners {
		h.handlePair(current, previous, duration, tick)
	}
	h.collidables.checkForCollisionsWith(current, passive, index, duration, tick)
}

// handlePair checks a listener against one handled earlier in the tick. The check is
// made once and its result sent to whichever of the two is interested.
func (h *CollisionHandler) handlePair(current, previous snapshot[Listener], duration float64, tick *TickStats) {
	self, other := current.entity, previous.entity
	if self == other {
		return
	}
	checker := self.ListeningInformation()
	otherChecker := other.ListeningInformation()

	currentInterested := checker.InterestedIn(other.Kind()) &&
		other.CollisionInformation().AllowsEventsFor(self.Kind())
	previousInterested := otherChecker != nil && otherChecker.Active() &&
		otherChecker.InterestedIn(self.Kind()) &&
		self.CollisionInformation().AllowsEventsFor(other.Kind())
	if !currentInterested && !previousInterested {
		return
	}

	points := (currentInterested && checker.WantsPoints()) ||
		(previousInterested && otherChecker.WantsPoints())
	mtv := points ||
		(currentInterested && checker.WantsMTV()) ||
		(previousInterested && otherChecker.WantsMTV())

	tick.PairsChecked++
	data := current.shapes.collide(previous.shapes, mtv, points)
	if !data.Collides {
		return
	}
	tick.Collisions++

	event := NewCollisionEvent(self, other, data, duration)
	if currentInterested {
		tick.EventsDelivered++
		self.OnCollision(event)
	}
	if previousInterested {
		tick.EventsDelivered++
		other.OnCollision(event.Flipped())
	}
}

// Lock defers registration changes until the matching Unlock.
func (h *CollisionHandler) Lock() {
	h.locked++
}

// Unlock runs the deferred registration changes once the last lock is released.
func (h *CollisionHandler) Unlock() {
	h.locked--
	if h.locked < 0 {
		h.logger.DPanic("collision handler lock underflow")
		h.locked = 0
	}
	if h.locked != 0 {
		return
	}

	callbacks := h.postStepCallbacks
	h.postStepCallbacks = nil
	for _, callback := range callbacks {
		callback()
	}
}

func (h *CollisionHandler) addPostStepCallback(callback func()) {
	h.postStepCallbacks = append(h.postStepCallbacks, callback)
}

type stringerFunc func() string

func (f stringerFunc) String() string {
	return f()
}

// stringer describes c for logs without formatting unless the entry is written.
func stringer(c Collidable) stringerFunc {
	return func() string {
		if s, ok := c.(interface{ String() string }); ok {
			return s.String()
		}
		return "collidable"
	}
}
