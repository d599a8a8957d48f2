package game

import (
	"github.com/sirupsen/logrus"

	"holdem-server/pkg/deck"
)

// canStartHand returns true when a new hand may be dealt: the table is
// between hands, no stop is pending, at least two players are seated, and a
// hand did not just end in this same dispatch.
func (g *Game) canStartHand() bool {
	return g.state.stage == StageWaiting &&
		!g.state.stopRequested &&
		!g.handEnded &&
		len(g.seatedPlayers()) >= 2
}

func (g *Game) maybeStartHand() (bool, error) {
	if !g.canStartHand() {
		return false, nil
	}

	if err := g.startHand(); err != nil {
		return false, err
	}

	return true, nil
}

// startHand deals a new hand: advances the button, shuffles, deals two hole
// cards to every seated player, posts the blinds, and opens the pre-flop
// betting round.
func (g *Game) startHand() error {
	g.state.gameInProgress = true
	g.state.lastHandResult = nil
	g.state.deck = deck.NewShuffled(g.rand)
	g.state.minRaiseDiff = 0
	g.state.previousRaise = 0
	g.state.partialAllInLeftOver = 0

	players := g.seatedPlayers()
	if g.player(g.state.dealerUUID) == nil || !g.player(g.state.dealerUUID).Sitting {
		g.state.dealerUUID = players[0].UUID
	} else {
		g.state.dealerUUID = g.nextSeatedPlayer(g.state.dealerUUID)
	}

	if !g.state.deck.CanDraw(len(players)*2 + 5) {
		return &ResourceExhaustionError{Resource: "cards"}
	}

	for i := 0; i < 2; i++ {
		for _, p := range players {
			card, err := g.state.deck.Draw()
			if err != nil {
				return &ResourceExhaustionError{Resource: "cards"}
			}

			p.HoleCards.AddCard(card)
		}
	}

	for _, p := range players {
		p.LastAction = LastActionWaitingToAct
		if clientID := g.clientIDByPlayerUUID(p.UUID); clientID != "" {
			g.ledger.IncrementHandsDealtIn(clientID)
		}
	}

	g.state.stage = StagePreFlop

	// heads-up, the dealer posts the small blind and acts first pre-flop
	smallBlind := g.state.dealerUUID
	if len(players) > 2 {
		smallBlind = g.nextSeatedPlayer(g.state.dealerUUID)
	}
	bigBlind := g.nextSeatedPlayer(smallBlind)

	g.placeBet(g.player(smallBlind), g.state.parameters.SmallBlind, true)
	g.placeBet(g.player(bigBlind), g.state.parameters.BigBlind, true)

	g.log.WithFields(logrus.Fields{
		"dealer":     g.state.dealerUUID,
		"smallBlind": smallBlind,
		"bigBlind":   bigBlind,
		"players":    len(players),
	}).Info("hand started")

	// the blinds can put everyone all in before anyone has a turn
	if g.haveAllPlayersActed() {
		g.settleStreet()
		return g.advanceStreets()
	}

	g.setCurrentPlayerToAct(g.nextPlayerInHand(bigBlind))

	return nil
}

func (g *Game) performCheck(p *Player) error {
	p.LastAction = LastActionCheck
	return g.advanceTurn()
}

func (g *Game) performCall(p *Player) error {
	g.callBet(p)
	return g.advanceTurn()
}

func (g *Game) performBet(p *Player, amount int) error {
	g.placeBet(p, amount, false)
	return g.advanceTurn()
}

func (g *Game) performFold(p *Player) error {
	p.LastAction = LastActionFold
	return g.advanceTurn()
}

// advanceTurn runs after every betting action: it ends the hand if only one
// player remains, passes the turn if the round is still open, and otherwise
// settles the street and moves to the next one.
func (g *Game) advanceTurn() error {
	if len(g.playersInHand()) <= 1 {
		g.settleStreet()
		return g.finishHand()
	}

	if !g.haveAllPlayersActed() {
		g.setCurrentPlayerToAct(g.nextPlayerInHand(g.state.currentPlayerToAct))
		return nil
	}

	g.settleStreet()

	if g.state.stage == StageRiver {
		return g.finishHand()
	}

	return g.advanceStreets()
}

// advanceStreets deals the next street and opens its betting round. When the
// remaining players are all in it keeps dealing through the river and goes
// straight to showdown.
func (g *Game) advanceStreets() error {
	for {
		next, ok := g.state.stage.Next()
		if !ok || next == StageShowdown {
			return g.finishHand()
		}

		g.state.stage = next
		for len(g.state.board) < next.BoardSize() {
			card, err := g.state.deck.Draw()
			if err != nil {
				return &ResourceExhaustionError{Resource: "cards"}
			}

			g.state.board.AddCard(card)
		}

		g.resetStreetBetting()

		if g.isAllInRunOut() {
			g.setCurrentPlayerToAct("")
			if next == StageRiver {
				return g.finishHand()
			}

			continue
		}

		g.setCurrentPlayerToAct(g.nextPlayerInHand(g.state.dealerUUID))
		return nil
	}
}

// finishHand settles the hand, either as a walkover when everyone else
// folded or through a showdown, then resets the table for the next hand.
func (g *Game) finishHand() error {
	result := &HandResult{Payouts: make(map[string]int)}

	inHand := g.playersInHand()
	if len(inHand) == 1 {
		winner := inHand[0]
		total := g.TotalPot()
		winner.Chips += total
		result.Winners = []string{winner.UUID}
		result.Payouts[winner.UUID] = total
		g.state.pots = nil
	} else {
		g.state.stage = StageShowdown

		var err error
		result, err = g.resolveShowdown()
		if err != nil {
			return err
		}
	}

	g.log.WithFields(logrus.Fields{
		"winners": result.Winners,
		"payouts": result.Payouts,
	}).Info("hand finished")

	g.state.lastHandResult = result
	g.clearHandState()

	for _, p := range g.seatedPlayers() {
		if p.Chips == 0 {
			g.standPlayer(p)
			if clientID := g.clientIDByPlayerUUID(p.UUID); clientID != "" {
				g.ledger.AddWalkaway(clientID, 0)
			}
		}
	}

	if g.state.stopRequested || len(g.seatedPlayers()) < 2 {
		g.state.gameInProgress = false
	}

	g.handEnded = true

	return nil
}
