package messages

// ObstacleActionKind selects what an ObstacleAction does.
type ObstacleActionKind uint8

const (
	ActionHit ObstacleActionKind = iota + 1
	ActionDestroy
	ActionToggleDoor
	ActionScale
	ActionRemove
	// ActionResend asks for every obstacle as a full update.
	ActionResend
)

func (k ObstacleActionKind) String() string {
	switch k {
	case ActionHit:
		return "hit"
	case ActionDestroy:
		return "destroy"
	case ActionToggleDoor:
		return "toggle door"
	case ActionScale:
		return "scale"
	case ActionRemove:
		return "remove"
	case ActionResend:
		return "resend"
	}
	return "unknown"
}

// ObstacleAction is an edit a client asks the server to make.
type ObstacleAction struct {
	Kind     ObstacleActionKind
	ObjectID uint16

	// Alt swings a door the other way.
	Alt  bool
	X, Y float64

	// Amount is the debris angle for a hit and the scale delta for a scale.
	Amount float64
}
