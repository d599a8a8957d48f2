package game

import (
	"sort"

	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker"
)

// settleStreet moves the street's bets into the pot structure. Bets are
// sliced into tiers at each distinct all-in amount so that a player can only
// win chips they matched. The uncalled portion of the largest bet goes back
// to the bettor.
func (g *Game) settleStreet() {
	type streetBet struct {
		player *Player
		amount int
	}

	var bets []*streetBet
	for _, p := range g.playersDealtIn() {
		if p.BetAmount > 0 {
			bets = append(bets, &streetBet{player: p, amount: p.BetAmount})
		}

		p.BetAmount = 0
	}

	pots := g.state.pots
	for len(bets) > 0 {
		if len(bets) == 1 {
			bets[0].player.Chips += bets[0].amount
			break
		}

		tier := bets[0].amount
		for _, b := range bets {
			if b.amount < tier {
				tier = b.amount
			}
		}

		pot := Pot{}
		remaining := bets[:0]
		for _, b := range bets {
			pot.Value += tier
			b.amount -= tier
			if b.player.inHand() {
				pot.Contestors = append(pot.Contestors, b.player.UUID)
			}

			if b.amount > 0 {
				remaining = append(remaining, b)
			}
		}

		pots = append(pots, pot)
		bets = remaining
	}

	g.state.pots = coalescePots(g.filterContestors(pots))
}

// filterContestors drops players no longer in the hand from every pot. A pot
// whose contestors all folded is contested by the remaining in-hand players.
func (g *Game) filterContestors(pots []Pot) []Pot {
	inHand := make(map[string]bool)
	for _, p := range g.playersInHand() {
		inHand[p.UUID] = true
	}

	for i, pot := range pots {
		contestors := make([]string, 0, len(pot.Contestors))
		for _, playerUUID := range pot.Contestors {
			if inHand[playerUUID] {
				contestors = append(contestors, playerUUID)
			}
		}

		if len(contestors) == 0 {
			for _, p := range g.playersInHand() {
				contestors = append(contestors, p.UUID)
			}
		}

		sort.Strings(contestors)
		pots[i].Contestors = contestors
	}

	return pots
}

// coalescePots merges adjacent pots contested by the same set of players
func coalescePots(pots []Pot) []Pot {
	var merged []Pot
	for _, pot := range pots {
		if n := len(merged); n > 0 && sameContestors(merged[n-1].Contestors, pot.Contestors) {
			merged[n-1].Value += pot.Value
			continue
		}

		merged = append(merged, pot)
	}

	return merged
}

func sameContestors(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// resolveShowdown evaluates every in-hand player against the board and pays
// each pot to the best eligible hand, splitting ties. Odd chips go to the
// earliest positions left of the dealer.
func (g *Game) resolveShowdown() (*HandResult, error) {
	hands := make(map[string]poker.Hand)
	for _, p := range g.playersInHand() {
		hand, err := poker.BestHand(p.HoleCards, g.state.board)
		if err != nil {
			return nil, err
		}

		hands[p.UUID] = hand
	}

	result := &HandResult{
		Payouts:    make(map[string]int),
		ShownCards: make(map[string]deck.Hand),
	}
	for _, p := range g.playersInHand() {
		result.ShownCards[p.UUID] = p.HoleCards.Clone()
	}

	for i := len(g.state.pots) - 1; i >= 0; i-- {
		pot := g.state.pots[i]

		eligible := append([]string{}, pot.Contestors...)
		eligibleHands := make([]poker.Hand, len(eligible))
		for j, playerUUID := range eligible {
			eligibleHands[j] = hands[playerUUID]
		}

		var winners []string
		for _, index := range poker.Winners(eligibleHands) {
			winners = append(winners, eligible[index])
		}

		g.sortByPositionFromDealer(winners)

		share := pot.Value / len(winners)
		odd := pot.Value % len(winners)
		for j, playerUUID := range winners {
			amount := share
			if j < odd {
				amount++
			}

			g.player(playerUUID).Chips += amount
			result.Payouts[playerUUID] += amount

			if i == 0 {
				result.Winners = append(result.Winners, playerUUID)
				result.WinningHand = hands[playerUUID].Description
			}
		}
	}

	g.state.pots = nil

	return result, nil
}

// sortByPositionFromDealer orders player UUIDs clockwise starting left of the
// dealer, with the dealer last.
func (g *Game) sortByPositionFromDealer(playerUUIDs []string) {
	players := g.seatedPlayers()
	position := make(map[string]int, len(players))
	dealerIndex := 0
	for i, p := range players {
		if p.UUID == g.state.dealerUUID {
			dealerIndex = i
			break
		}
	}

	for i, p := range players {
		position[p.UUID] = (i - dealerIndex - 1 + 2*len(players)) % len(players)
	}

	sort.Slice(playerUUIDs, func(i, j int) bool {
		return position[playerUUIDs[i]] < position[playerUUIDs[j]]
	})
}
