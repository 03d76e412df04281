package conflict

import (
	"fmt"

	"github.com/google/uuid"
)

// Collidable is anything that has shapes in the world. Implementations are compared
// by identity, so use pointer types.
type Collidable interface {
	Kind() Kind
	Transform() Transform
	// CollisionInformation may return nil, the collidable is then ignored.
	CollisionInformation() *CollisionInformation
}

// Listener is a collidable that wants to hear about its collisions.
type Listener interface {
	Collidable
	ListeningInformation() *ListeningInformation
	OnCollision(event CollisionEvent)
}

// Toggleable collidables can stop taking part in collisions without being removed.
type Toggleable interface {
	CollisionEnabled() bool
}

/// Body position update function type.
type BodyPositionFunc func(body *Body, dt float64)

// Body is a ready made collidable with a position, a rotation and a velocity.
type Body struct {
	id   uuid.UUID
	kind Kind

	// position and velocity
	p Vector
	v Vector

	// angle and angular velocity (degrees)
	a float64
	w float64

	scale Vector

	info     *CollisionInformation
	disabled bool

	position_func BodyPositionFunc

	UserData interface{}
}

func NewBody(kind Kind, info *CollisionInformation) *Body {
	return &Body{
		id:            uuid.New(),
		kind:          kind,
		scale:         Vector{1, 1},
		info:          info,
		position_func: BodyUpdatePosition,
	}
}

func (body *Body) String() string {
	return fmt.Sprint("Body ", body.id)
}

func (body *Body) ID() uuid.UUID {
	return body.id
}

func (body *Body) Kind() Kind {
	return body.kind
}

func (body *Body) CollisionInformation() *CollisionInformation {
	return body.info
}

func (body *Body) SetCollisionInformation(info *CollisionInformation) {
	body.info = info
}

func (body *Body) Transform() Transform {
	return Transform{Position: body.p, Rotation: body.a, Scale: body.scale}
}

// SetTransform moves and rotates the body in one go.
func (body *Body) SetTransform(p Vector, a float64) {
	body.p = p
	body.a = a
}

func (body *Body) Position() Vector {
	return body.p
}

func (body *Body) SetPosition(position Vector) {
	body.p = position
}

func (body *Body) Angle() float64 {
	return body.a
}

func (body *Body) SetAngle(angle float64) {
	body.a = angle
}

func (body *Body) Scale() Vector {
	return body.scale
}

func (body *Body) SetScale(scale Vector) {
	body.scale = scale
}

func (body *Body) Velocity() Vector {
	return body.v
}

func (body *Body) SetVelocity(x, y float64) {
	body.v = Vector{x, y}
}

func (body *Body) SetVelocityVector(v Vector) {
	body.v = v
}

func (body *Body) AngularVelocity() float64 {
	return body.w
}

func (body *Body) SetAngularVelocity(angularVelocity float64) {
	body.w = angularVelocity
}

func (body *Body) SetPositionUpdateFunc(f BodyPositionFunc) {
	body.position_func = f
}

// Step advances the body by dt with its position update function.
func (body *Body) Step(dt float64) {
	body.position_func(body, dt)
}

func (body *Body) CollisionEnabled() bool {
	return !body.disabled
}

func (body *Body) SetCollisionEnabled(enabled bool) {
	body.disabled = !enabled
}

// WorldToLocal converts a world space point to body local coordinates.
func (body *Body) WorldToLocal(point Vector) Vector {
	return body.Transform().InverseApply(point)
}

// LocalToWorld converts a body local point to world coordinates.
func (body *Body) LocalToWorld(point Vector) Vector {
	return body.Transform().Apply(point)
}

/// Default position integration function.
func BodyUpdatePosition(body *Body, dt float64) {
	body.p = body.p.Add(body.v.Mult(dt))
	body.a += body.w * dt
}

// ListeningBody is a Body that receives collision events through a callback.
type ListeningBody struct {
	*Body
	listening *ListeningInformation
	onCollision func(event CollisionEvent)
}

// NewListeningBody creates a listening body. onCollision may be nil.
func NewListeningBody(kind Kind, info *CollisionInformation, onCollision func(CollisionEvent), opts ...ListeningOption) *ListeningBody {
	body := &ListeningBody{
		Body:        NewBody(kind, info),
		onCollision: onCollision,
	}
	body.listening = NewListeningInformation(body, opts...)
	return body
}

func (body *ListeningBody) ListeningInformation() *ListeningInformation {
	return body.listening
}

func (body *ListeningBody) OnCollision(event CollisionEvent) {
	if body.onCollision != nil {
		body.onCollision(event)
	}
}

func (body *ListeningBody) String() string {
	return fmt.Sprint("ListeningBody ", body.id)
}

var (
	_ Collidable = (*Body)(nil)
	_ Toggleable = (*Body)(nil)
	_ Listener   = (*ListeningBody)(nil)
)
