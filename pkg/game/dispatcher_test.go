package game

import (
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestDispatch_UnregisteredClient(t *testing.T) {
	a := assert.New(t)
	g := testGame(t, 1)

	err := g.Dispatch("nobody", Action{Kind: ActionJoinTable, Name: "nobody", Buyin: 100})

	var notFound *NotFoundError
	a.True(errors.As(err, &notFound))
	a.Equal("client", notFound.Entity)
}

func TestDispatch_UnrecognizedAction(t *testing.T) {
	a := assert.New(t)
	g := testGame(t, 1)

	g.RegisterClient("alice")
	err := g.Dispatch("alice", Action{Kind: "DOUBLE_DOWN"})

	var unrecognized *UnrecognizedActionError
	a.True(errors.As(err, &unrecognized))
	a.Equal(ActionKind("DOUBLE_DOWN"), unrecognized.Kind)
}

func TestRegisterClient_Idempotent(t *testing.T) {
	a := assert.New(t)
	g := testGame(t, 1)

	g.RegisterClient("alice")
	a.NoError(g.Dispatch("alice", Action{Kind: ActionJoinTable, Name: "Alice", Buyin: 500}))

	g.RegisterClient("alice")

	a.Len(g.state.connections, 1)
	a.NotNil(g.playerByClientID("alice"))
}

func TestDispatch_JoinTableValidation(t *testing.T) {
	a := assert.New(t)
	g := testGame(t, 1)
	g.RegisterClient("alice")

	var illegal *IllegalStateError

	err := g.Dispatch("alice", Action{Kind: ActionJoinTable, Buyin: 100})
	a.True(errors.As(err, &illegal))

	err = g.Dispatch("alice", Action{Kind: ActionJoinTable, Name: "Alice"})
	a.True(errors.As(err, &illegal))

	a.NoError(g.Dispatch("alice", Action{Kind: ActionJoinTable, Name: "Alice", Buyin: 100}))

	err = g.Dispatch("alice", Action{Kind: ActionJoinTable, Name: "Alice", Buyin: 100})
	a.True(errors.As(err, &illegal))
	a.Contains(err.Error(), "already joined")
}

func TestDispatch_SitDownValidation(t *testing.T) {
	a := assert.New(t)
	g := testGame(t, 1)

	joinAndSit(t, g, "alice", 1000, 0)

	g.RegisterClient("bob")
	a.NoError(g.Dispatch("bob", Action{Kind: ActionJoinTable, Name: "Bob", Buyin: 1000}))

	var illegal *IllegalStateError

	err := g.Dispatch("bob", Action{Kind: ActionSitDown, SeatNumber: 0})
	a.True(errors.As(err, &illegal))
	a.Contains(err.Error(), "taken")

	err = g.Dispatch("bob", Action{Kind: ActionSitDown, SeatNumber: 9})
	a.True(errors.As(err, &illegal))

	err = g.Dispatch("bob", Action{Kind: ActionSitDown, SeatNumber: -1})
	a.True(errors.As(err, &illegal))

	a.NoError(g.Dispatch("bob", Action{Kind: ActionSitDown, SeatNumber: 1}))

	err = g.Dispatch("bob", Action{Kind: ActionSitDown, SeatNumber: 2})
	a.True(errors.As(err, &illegal))
	a.Contains(err.Error(), "already sitting")
}

func TestDispatch_NoSeatsAvailable(t *testing.T) {
	a := assert.New(t)

	g, err := New(logrus.StandardLogger(), GameParameters{
		SmallBlind: 25,
		BigBlind:   50,
		MaxPlayers: 2,
		TimeToAct:  30 * time.Second,
	})
	a.NoError(err)

	joinAndSit(t, g, "alice", 1000, 0)
	joinAndSit(t, g, "bob", 1000, 1)

	g.RegisterClient("carol")
	a.NoError(g.Dispatch("carol", Action{Kind: ActionJoinTable, Name: "Carol", Buyin: 1000}))

	err = g.Dispatch("carol", Action{Kind: ActionSitDown, SeatNumber: 0})

	var exhausted *ResourceExhaustionError
	a.True(errors.As(err, &exhausted))
	a.Equal("seats", exhausted.Resource)
}

func TestDispatch_StandUp(t *testing.T) {
	a := assert.New(t)
	g := testGame(t, 1)

	joinAndSit(t, g, "alice", 1000, 0)
	joinAndSit(t, g, "bob", 1000, 1)

	// cannot stand while dealt into a hand
	var illegal *IllegalStateError
	err := g.Dispatch("alice", Action{Kind: ActionStandUp})
	a.True(errors.As(err, &illegal))

	a.NoError(g.Dispatch("alice", Action{Kind: ActionFold}))
	a.Equal(StageWaiting, g.Stage())

	a.NoError(g.Dispatch("alice", Action{Kind: ActionStandUp}))
	alice := g.playerByClientID("alice")
	a.False(alice.Sitting)
	a.Equal(-1, alice.SeatNumber)

	// standing keeps the chips; they are recorded as a walkaway
	a.Equal(975, alice.Chips)
}

func TestDispatch_BettingValidation(t *testing.T) {
	a := assert.New(t)
	g := testGame(t, 1)

	joinAndSit(t, g, "alice", 1000, 0)
	joinAndSit(t, g, "bob", 1000, 1)

	var illegal *IllegalStateError

	// not bob's turn
	err := g.Dispatch("bob", Action{Kind: ActionCheck})
	a.True(errors.As(err, &illegal))
	a.Contains(err.Error(), "not your turn")

	// alice faces the big blind and cannot check
	err = g.Dispatch("alice", Action{Kind: ActionCheck})
	a.True(errors.As(err, &illegal))

	// a raise below the minimum is rejected
	err = g.Dispatch("alice", Action{Kind: ActionBet, Amount: 75})
	a.True(errors.As(err, &illegal))
	a.Contains(err.Error(), "minimum bet is 100")

	// a bet that does not exceed the current bet is rejected
	err = g.Dispatch("alice", Action{Kind: ActionBet, Amount: 50})
	a.True(errors.As(err, &illegal))

	a.NoError(g.Dispatch("alice", Action{Kind: ActionCall}))

	// nothing for bob to call
	err = g.Dispatch("bob", Action{Kind: ActionCall})
	a.True(errors.As(err, &illegal))

	a.NoError(g.Dispatch("bob", Action{Kind: ActionCheck}))
	a.Equal(StageFlop, g.Stage())

	// no betting actions outside a betting round
	a.NoError(g.Dispatch("bob", Action{Kind: ActionCheck}))
	a.NoError(g.Dispatch("alice", Action{Kind: ActionCheck}))
	a.NoError(g.Dispatch("bob", Action{Kind: ActionCheck}))
	a.NoError(g.Dispatch("alice", Action{Kind: ActionCheck}))
	a.NoError(g.Dispatch("bob", Action{Kind: ActionCheck}))
	a.NoError(g.Dispatch("alice", Action{Kind: ActionCheck}))
	a.Equal(StageWaiting, g.Stage())

	err = g.Dispatch("bob", Action{Kind: ActionCheck})
	a.True(errors.As(err, &illegal))
	a.Contains(err.Error(), "no betting round")
}

func TestDispatch_StartGameValidation(t *testing.T) {
	a := assert.New(t)
	g := testGame(t, 1)

	joinAndSit(t, g, "alice", 1000, 0)

	var illegal *IllegalStateError

	// one seated player is not enough
	err := g.Dispatch("alice", Action{Kind: ActionStartGame})
	a.True(errors.As(err, &illegal))

	// no game in progress to stop
	err = g.Dispatch("alice", Action{Kind: ActionStopGame})
	a.True(errors.As(err, &illegal))

	joinAndSit(t, g, "bob", 1000, 1)

	// already in progress
	err = g.Dispatch("alice", Action{Kind: ActionStartGame})
	a.True(errors.As(err, &illegal))
}

func TestDispatch_SetGameParameters(t *testing.T) {
	a := assert.New(t)
	g := testGame(t, 1)

	joinAndSit(t, g, "alice", 1000, 0)
	joinAndSit(t, g, "bob", 1000, 5)

	updated := GameParameters{
		SmallBlind: 50,
		BigBlind:   100,
		MaxPlayers: 6,
		TimeToAct:  10 * time.Second,
	}

	var illegal *IllegalStateError

	// parameters cannot change mid-hand
	err := g.Dispatch("alice", Action{Kind: ActionSetGameParameters, Parameters: &updated})
	a.True(errors.As(err, &illegal))
	a.Contains(err.Error(), "during a hand")

	a.NoError(g.Dispatch("alice", Action{Kind: ActionFold}))
	a.Equal(StageWaiting, g.Stage())

	// parameters are required and must describe a playable table
	err = g.Dispatch("alice", Action{Kind: ActionSetGameParameters})
	a.True(errors.As(err, &illegal))

	err = g.Dispatch("alice", Action{Kind: ActionSetGameParameters, Parameters: &GameParameters{
		SmallBlind: 100,
		BigBlind:   50,
		MaxPlayers: 6,
		TimeToAct:  10 * time.Second,
	}})
	a.True(errors.As(err, &illegal))

	// shrinking the table below an occupied seat is rejected
	err = g.Dispatch("alice", Action{Kind: ActionSetGameParameters, Parameters: &GameParameters{
		SmallBlind: 50,
		BigBlind:   100,
		MaxPlayers: 4,
		TimeToAct:  10 * time.Second,
	}})
	a.True(errors.As(err, &illegal))
	a.Contains(err.Error(), "seat 5")

	a.NoError(g.Dispatch("alice", Action{Kind: ActionSetGameParameters, Parameters: &updated}))
	a.Equal(updated, g.Parameters())

	// the next hand is dealt under the new blinds
	a.Equal(StagePreFlop, g.Stage())
	a.Equal(150, g.TotalPot())
}

func TestDispatch_FailedActionLeavesStateUnchanged(t *testing.T) {
	a := assert.New(t)
	g := testGame(t, 1)

	alice := joinAndSit(t, g, "alice", 1000, 0)
	bob := joinAndSit(t, g, "bob", 1000, 1)

	before := g.ProjectView("alice")
	a.Error(g.Dispatch("alice", Action{Kind: ActionBet, Amount: 60}))
	after := g.ProjectView("alice")

	a.Equal(before.Players, after.Players)
	a.Equal(before.Stage, after.Stage)
	a.Equal(before.CurrentPlayerToAct, after.CurrentPlayerToAct)
	a.Equal(975, alice.Chips)
	a.Equal(950, bob.Chips)
}
