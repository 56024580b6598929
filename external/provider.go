package external

import "github.com/katalvlaran/platracer/geom"

// ObjectHandle identifies a scene object. Hosts typically satisfy this
// with a pointer or a small comparable struct; the orchestrator treats
// it as opaque and passes it unexamined through the traversal graph and
// R-tree as their generic owner type.
type ObjectHandle interface{}

// Direction is a horizontal traversal direction.
type Direction int

const (
	Left Direction = iota
	Right
)

// Actor selects which character a controller query is about.
type Actor int

const (
	AgentActor Actor = iota
	TargetActor
)

// Vec2 is a 2D direction vector, used only for the steering output.
type Vec2 struct {
	X, Y float64
}

// SceneProvider enumerates scene objects once per orchestrator tick.
type SceneProvider interface {
	// EnumerateSceneObjects returns every object on an enabled layer
	// matching tagFilter. tagFilter is opaque to the orchestrator; it is
	// passed through unexamined.
	EnumerateSceneObjects(layerMask int, tagFilter string) []ObjectHandle
}

// ObjectProvider exposes per-object geometry and identity.
type ObjectProvider interface {
	// BoundingRectangle returns obj's axis-aligned world-space rectangle.
	BoundingRectangle(obj ObjectHandle) geom.Rect

	// TopFace returns the upper long face of obj's rectangle collider as
	// a line segment, or ok=false when the top face is the shorter
	// dimension (a vertical wall has no walkable top face).
	TopFace(obj ObjectHandle) (line geom.Line, ok bool)

	// Name returns obj's stable display name, used for edge-name
	// prefixing and same-object detection during jump/fall linking.
	Name(obj ObjectHandle) string
}

// ControllerProvider reports the platform directly beneath a character,
// as maintained by the host's raycast character controller.
type ControllerProvider interface {
	// StandingPlatform returns the object beneath who, or ok=false if
	// who is airborne or the controller has no current reading.
	StandingPlatform(who Actor) (obj ObjectHandle, ok bool)
}

// ArcProvider exposes the agent's pre-sampled ballistic arcs. Sampling
// itself (gravity integration, collision response) is out of scope;
// the orchestrator only consumes the resulting rectangle sequences.
type ArcProvider interface {
	// JumpArc returns the sequence of swept bounding rectangles for a
	// jump launched in dir, anchored at anchorRect.
	JumpArc(dir Direction, anchorRect geom.Rect) []geom.Rect

	// FallArc returns the sequence of swept bounding rectangles for a
	// fall/drop in dir, anchored at anchorRect.
	FallArc(dir Direction, anchorRect geom.Rect) []geom.Rect

	// JumpArcBoundingRect returns the union of every rectangle JumpArc
	// would sample for dir, used to query the R-tree before sampling.
	JumpArcBoundingRect(dir Direction) geom.Rect

	// FallArcBoundingRect is JumpArcBoundingRect's fall-arc counterpart.
	FallArcBoundingRect(dir Direction) geom.Rect
}

// SteeringSink receives the orchestrator's only output: the directional
// input to drive the agent along the current trace.
type SteeringSink interface {
	SetDirectionalInput(v Vec2)
}
