package conflict

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// collidableHandler owns the passive collidables of a CollisionHandler: things that
// can be collided with but never listen themselves.
type collidableHandler struct {
	collidables entitySet[Collidable]
}

func (ch *collidableHandler) add(c Collidable) bool {
	return ch.collidables.Insert(c)
}

func (ch *collidableHandler) remove(c Collidable) bool {
	return ch.collidables.Remove(c)
}

// indexPassive hashes the passive shapes of a tick by their bounding boxes.
func indexPassive(cellSize float64, passive []snapshot[Collidable]) *spaceHash {
	bbs := make([]BB, len(passive))
	for i, other := range passive {
		bbs[i] = other.shapes.bb
	}
	return newSpaceHash(cellSize, bbs)
}

// checkForCollisionsWith tells the listener about its collisions with each passive
// collidable. Only the listener's interest matters here. A nil index checks them all.
func (ch *collidableHandler) checkForCollisionsWith(listener snapshot[Listener], passive []snapshot[Collidable], index *spaceHash, duration float64, tick *TickStats) {
	checker := listener.entity.ListeningInformation()
	self := Collidable(listener.entity)

	check := func(other snapshot[Collidable]) {
		if other.entity == self {
			return
		}
		if !other.entity.CollisionInformation().AllowsEventsFor(self.Kind()) ||
			!checker.InterestedIn(other.entity.Kind()) {
			return
		}

		tick.PairsChecked++
		data := listener.shapes.collide(other.shapes, checker.WantsMTV(), checker.WantsPoints())
		if !data.Collides {
			return
		}
		tick.Collisions++
		tick.EventsDelivered++
		listener.entity.OnCollision(NewCollisionEvent(self, other.entity, data, duration))
	}

	if index == nil {
		for _, other := range passive {
			check(other)
		}
		return
	}
	index.Query(listener.shapes.bb, func(i int) {
		check(passive[i])
	})
}

// place snapshots the world shapes of every entity taking part in a tick. Entities
// without shapes, switched off or with a broken transform are left out. With more than
// one worker the shapes are placed concurrently, the order of entities is kept.
func place[T Collidable](entities []T, cfg Config, logger *zap.Logger) []snapshot[T] {
	shapes := make([]*worldShapes, len(entities))
	errs := make([]error, len(entities))

	placeOne := func(i int) {
		e := entities[i]
		if Collidable(e) == nil {
			return
		}
		if t, ok := Collidable(e).(Toggleable); ok && !t.CollisionEnabled() {
			return
		}
		info := e.CollisionInformation()
		if info.empty() {
			return
		}
		shapes[i], errs[i] = placeShapes(info, e.Transform(), cfg)
	}

	if cfg.Workers > 1 && len(entities) > 1 {
		var g errgroup.Group
		g.SetLimit(cfg.Workers)
		for i := range entities {
			g.Go(func() error {
				placeOne(i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range entities {
			placeOne(i)
		}
	}

	if err := multierr.Combine(errs...); err != nil {
		logger.Warn("some collidables could not be placed", zap.Error(err))
	}

	snapshots := make([]snapshot[T], 0, len(entities))
	for i, e := range entities {
		if shapes[i] != nil {
			snapshots = append(snapshots, snapshot[T]{entity: e, shapes: shapes[i]})
		}
	}
	return snapshots
}
