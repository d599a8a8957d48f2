package game

// ActionKind identifies a client intent sent to the dispatcher
type ActionKind string

// action kinds
const (
	ActionStartGame         ActionKind = "START_GAME"
	ActionStopGame          ActionKind = "STOP_GAME"
	ActionJoinTable         ActionKind = "JOIN_TABLE"
	ActionSitDown           ActionKind = "SIT_DOWN"
	ActionStandUp           ActionKind = "STAND_UP"
	ActionCheck             ActionKind = "CHECK"
	ActionBet               ActionKind = "BET"
	ActionFold              ActionKind = "FOLD"
	ActionCall              ActionKind = "CALL"
	ActionSetGameParameters ActionKind = "SET_GAME_PARAMETERS"
)

// Action is a client intent. Kind determines which of the remaining fields
// are meaningful.
type Action struct {
	Kind       ActionKind      `json:"kind"`
	Name       string          `json:"name,omitempty"`
	Buyin      int             `json:"buyin,omitempty"`
	SeatNumber int             `json:"seatNumber,omitempty"`
	Amount     int             `json:"amount,omitempty"`
	Parameters *GameParameters `json:"parameters,omitempty"`
}
