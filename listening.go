package conflict

// ListeningInformation describes what a listener wants to hear about: which kinds of
// collidables and how much detail.
type ListeningInformation struct {
	owner Collidable

	wantsMTV    bool
	wantsPoints bool
	interest    KindSet
	active      bool

	cfg Config
}

type ListeningOption func(l *ListeningInformation)

// WithMTV asks for the minimum translation vector of every collision.
func WithMTV() ListeningOption {
	return func(l *ListeningInformation) {
		l.wantsMTV = true
	}
}

// WithContactPoints asks for contact points, which brings the MTV along.
func WithContactPoints() ListeningOption {
	return func(l *ListeningInformation) {
		l.wantsPoints = true
	}
}

// WithInterest limits the kinds of collidables the listener checks against. The
// default nil set is interested in everything.
func WithInterest(kinds KindSet) ListeningOption {
	return func(l *ListeningInformation) {
		l.interest = kinds.Clone()
	}
}

// WithCheckConfig sets the config used by CheckCollisionsWith.
func WithCheckConfig(cfg Config) ListeningOption {
	return func(l *ListeningInformation) {
		l.cfg = cfg
	}
}

// NewListeningInformation creates an active listening information for owner.
func NewListeningInformation(owner Collidable, opts ...ListeningOption) *ListeningInformation {
	l := &ListeningInformation{
		owner:  owner,
		active: true,
		cfg:    DefaultConfig(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *ListeningInformation) Owner() Collidable {
	return l.owner
}

func (l *ListeningInformation) WantsMTV() bool {
	return l.wantsMTV || l.wantsPoints
}

func (l *ListeningInformation) SetWantsMTV(wants bool) {
	l.wantsMTV = wants
}

func (l *ListeningInformation) WantsPoints() bool {
	return l.wantsPoints
}

func (l *ListeningInformation) SetWantsPoints(wants bool) {
	l.wantsPoints = wants
}

func (l *ListeningInformation) Interest() KindSet {
	return l.interest
}

func (l *ListeningInformation) SetInterest(kinds KindSet) {
	l.interest = kinds.Clone()
}

func (l *ListeningInformation) InterestedIn(k Kind) bool {
	return l.interest.Accepts(k)
}

// Active reports whether the listener is currently listening for collisions.
func (l *ListeningInformation) Active() bool {
	return l.active
}

func (l *ListeningInformation) SetActive(active bool) {
	l.active = active
}

// CheckCollisionsWith checks the owner against other at their current transforms.
// Either side without shapes never collides.
func (l *ListeningInformation) CheckCollisionsWith(other Collidable, wantMTV, wantPoints bool) CollisionData {
	if l.owner == nil || other == nil {
		return noCollision
	}
	own, err := placeShapes(l.owner.CollisionInformation(), l.owner.Transform(), l.cfg)
	if err != nil {
		return noCollision
	}
	theirs, err := placeShapes(other.CollisionInformation(), other.Transform(), l.cfg)
	if err != nil {
		return noCollision
	}
	return own.collide(theirs, wantMTV, wantPoints)
}

// PointCollides reports whether a world space point lies within any of the owner's
// shapes.
func (l *ListeningInformation) PointCollides(p Vector) bool {
	if l.owner == nil {
		return false
	}
	info := l.owner.CollisionInformation()
	if info.empty() {
		return false
	}

	t := l.owner.Transform()
	if inv, ok := t.inverse(); ok {
		return info.ContainsPoint(mulPoint(inv, p))
	}

	shapes, err := placeShapes(info, t, l.cfg)
	if err != nil {
		return false
	}
	for _, polygon := range shapes.polygons {
		if polygon.ContainsPoint(p) {
			return true
		}
	}
	for _, circle := range shapes.circles {
		if circle.ContainsPoint(p) {
			return true
		}
	}
	return false
}
