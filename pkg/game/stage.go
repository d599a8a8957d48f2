package game

import (
	"encoding/json"
	"fmt"
)

// Stage is the betting-round stage of the current hand
type Stage int

// stage constants
const (
	StageWaiting Stage = iota
	StagePreFlop
	StageFlop
	StageTurn
	StageRiver
	StageShowdown
)

func (s Stage) String() string {
	switch s {
	case StageWaiting:
		return "waiting"
	case StagePreFlop:
		return "pre-flop"
	case StageFlop:
		return "flop"
	case StageTurn:
		return "turn"
	case StageRiver:
		return "river"
	case StageShowdown:
		return "showdown"
	}

	panic(fmt.Sprintf("unknown stage: %d", int(s)))
}

// MarshalJSON encodes the stage into JSON
func (s Stage) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Next returns the stage that follows s. Stages only ever move forward.
func (s Stage) Next() (Stage, bool) {
	if s >= StageWaiting && s < StageShowdown {
		return s + 1, true
	}

	return s, false
}

// BoardSize returns how many community cards are on the board at this stage
func (s Stage) BoardSize() int {
	switch s {
	case StageFlop:
		return 3
	case StageTurn:
		return 4
	case StageRiver, StageShowdown:
		return 5
	}

	return 0
}
