package model

// Dimension is one of the two scoring axes.
type Dimension string

const (
	DimensionCentralization Dimension = "centralization"
	DimensionPrivatePublic  Dimension = "privatePublic"
)

// Direction is the polarity of a statement on its axis. Agreeing with a
// "centralized" or "private" statement moves the score towards -100.
type Direction string

const (
	DirectionCentralized   Direction = "centralized"
	DirectionDecentralized Direction = "decentralized"
	DirectionPrivate       Direction = "private"
	DirectionPublic        Direction = "public"
)

// Sign returns the multiplier applied to a normalized answer.
func (d Direction) Sign() float64 {
	switch d {
	case DirectionCentralized, DirectionPrivate:
		return -1
	default:
		return 1
	}
}

// Question is a single Likert statement from the question bank.
// swagger:model Question
type Question struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Direction Direction `json:"direction"`
	Dimension Dimension `json:"dimension"`
}
