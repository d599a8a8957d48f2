package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"holdem-server/pkg/deck"
)

// addTestPlayer injects a seated player mid-hand without going through the
// dispatcher.
func addTestPlayer(g *Game, uuid string, seatNumber, chips, betAmount int, lastAction LastAction, holeCards string) *Player {
	p := &Player{
		UUID:       uuid,
		Name:       uuid,
		Chips:      chips,
		Sitting:    true,
		SeatNumber: seatNumber,
		BetAmount:  betAmount,
		LastAction: lastAction,
		HoleCards:  deck.CardsFromString(holeCards),
	}
	g.state.players[uuid] = p

	return p
}

func TestSettleStreet_SidePots(t *testing.T) {
	a := assert.New(t)
	g := testGame(t, 1)

	addTestPlayer(g, "a", 0, 0, 25, LastActionAllIn, "2c,3c")
	addTestPlayer(g, "b", 1, 500, 100, LastActionBet, "2d,3d")
	addTestPlayer(g, "c", 2, 500, 100, LastActionCall, "2h,3h")

	g.settleStreet()

	a.Equal([]Pot{
		{Value: 75, Contestors: []string{"a", "b", "c"}},
		{Value: 150, Contestors: []string{"b", "c"}},
	}, g.state.pots)

	for _, p := range g.state.players {
		a.Equal(0, p.BetAmount)
	}
}

func TestSettleStreet_UncalledBetReturned(t *testing.T) {
	a := assert.New(t)
	g := testGame(t, 1)

	bettor := addTestPlayer(g, "a", 0, 400, 100, LastActionBet, "2c,3c")
	addTestPlayer(g, "b", 1, 500, 40, LastActionFold, "2d,3d")

	g.settleStreet()

	// the 60 nobody matched goes back to the bettor
	a.Equal(460, bettor.Chips)
	a.Equal([]Pot{{Value: 80, Contestors: []string{"a"}}}, g.state.pots)
}

func TestSettleStreet_CoalescesMatchingPots(t *testing.T) {
	a := assert.New(t)
	g := testGame(t, 1)

	addTestPlayer(g, "a", 0, 500, 50, LastActionBet, "2c,3c")
	addTestPlayer(g, "b", 1, 500, 50, LastActionCall, "2d,3d")
	addTestPlayer(g, "c", 2, 500, 50, LastActionCall, "2h,3h")
	g.state.pots = []Pot{{Value: 100, Contestors: []string{"a", "b", "c"}}}

	g.settleStreet()

	a.Equal([]Pot{{Value: 250, Contestors: []string{"a", "b", "c"}}}, g.state.pots)
}

func TestSettleStreet_FoldedPlayerLeavesExistingPots(t *testing.T) {
	a := assert.New(t)
	g := testGame(t, 1)

	addTestPlayer(g, "a", 0, 500, 30, LastActionBet, "2c,3c")
	addTestPlayer(g, "b", 1, 500, 30, LastActionCall, "2d,3d")
	addTestPlayer(g, "c", 2, 500, 30, LastActionFold, "2h,3h")
	g.state.pots = []Pot{{Value: 90, Contestors: []string{"a", "b", "c"}}}

	g.settleStreet()

	a.Equal([]Pot{{Value: 180, Contestors: []string{"a", "b"}}}, g.state.pots)
}

func TestResolveShowdown_SplitWithOddChip(t *testing.T) {
	a := assert.New(t)
	g := testGame(t, 1)

	// both players make the same nine-high straight
	addTestPlayer(g, "a", 0, 0, 0, LastActionCheck, "4c,5d")
	addTestPlayer(g, "b", 1, 0, 0, LastActionCheck, "4h,5s")
	g.state.dealerUUID = "a"
	g.state.board = deck.CardsFromString("6s,7s,8s,9d,13c")
	g.state.pots = []Pot{{Value: 101, Contestors: []string{"a", "b"}}}

	result, err := g.resolveShowdown()
	a.NoError(err)

	// the odd chip goes to the earliest position left of the dealer
	a.Equal(51, result.Payouts["b"])
	a.Equal(50, result.Payouts["a"])
	a.Equal([]string{"b", "a"}, result.Winners)
	a.Equal(51, g.player("b").Chips)
	a.Equal(50, g.player("a").Chips)
}

func TestResolveShowdown_SidePotsPaySeparately(t *testing.T) {
	a := assert.New(t)
	g := testGame(t, 1)

	// a is all in and only eligible for the main pot
	addTestPlayer(g, "a", 0, 0, 0, LastActionAllIn, "13d,13h")
	addTestPlayer(g, "b", 1, 100, 0, LastActionCheck, "10d,10h")
	addTestPlayer(g, "c", 2, 100, 0, LastActionCheck, "2d,3c")
	g.state.dealerUUID = "a"
	g.state.board = deck.CardsFromString("2c,7d,9h,10s,13c")
	g.state.pots = []Pot{
		{Value: 300, Contestors: []string{"a", "b", "c"}},
		{Value: 200, Contestors: []string{"b", "c"}},
	}

	result, err := g.resolveShowdown()
	a.NoError(err)

	a.Equal(300, result.Payouts["a"])
	a.Equal(200, result.Payouts["b"])
	a.Zero(result.Payouts["c"])
	a.Equal([]string{"a"}, result.Winners)
	a.NotEmpty(result.WinningHand)
	a.Empty(g.state.pots)
}
