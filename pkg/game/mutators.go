package game

// The methods in this file are the only writers of gameState. Validation
// happens in the dispatcher before any of these run.

// registerClient adds a client connection. Registering the same ID twice is a no-op.
func (g *Game) registerClient(clientID string) {
	if _, ok := g.state.connections[clientID]; ok {
		return
	}

	g.state.connections[clientID] = &connectedClient{uuid: clientID}
}

// addPlayer creates a player with a bought-in stack and associates it with the client
func (g *Game) addPlayer(clientID, name string, buyin int) *Player {
	p := &Player{
		UUID:       g.newID(),
		Name:       name,
		Chips:      buyin,
		SeatNumber: -1,
	}
	g.state.players[p.UUID] = p
	g.state.connections[clientID].playerUUID = p.UUID

	g.ledger.AddAlias(clientID, name)
	g.ledger.AddBuyin(clientID, buyin)

	return p
}

func (g *Game) seatPlayer(p *Player, seatNumber int) {
	p.Sitting = true
	p.SeatNumber = seatNumber
}

func (g *Game) standPlayer(p *Player) {
	p.Sitting = false
	p.SeatNumber = -1
	p.BetAmount = 0
	p.HoleCards = nil
	p.LastAction = LastActionNone
}

// setParameters replaces the table rules wholesale. Only legal between hands.
func (g *Game) setParameters(parameters GameParameters) {
	g.state.parameters = parameters
}

func (g *Game) setCurrentPlayerToAct(playerUUID string) {
	g.state.currentPlayerToAct = playerUUID
	g.state.turnStartedAt = g.clock()
}

// placeBet commits chips up to amount total for the street, capping at the
// player's stack. Updates the raise bookkeeping used to size the next
// minimum raise; a short all-in does not reopen the action.
func (g *Game) placeBet(p *Player, amount int, blind bool) {
	if max := p.BetAmount + p.Chips; amount > max {
		amount = max
	}

	p.Chips -= amount - p.BetAmount
	p.BetAmount = amount

	switch {
	case p.Chips == 0:
		p.LastAction = LastActionAllIn
	case blind:
		p.LastAction = LastActionPlaceBlind
	default:
		p.LastAction = LastActionBet
	}

	previous := g.state.previousRaise
	if amount > previous && amount < previous+g.state.minRaiseDiff {
		g.state.partialAllInLeftOver = amount - previous
	} else if amount > previous {
		bigBlind := g.state.parameters.BigBlind
		g.state.minRaiseDiff = maxInt(bigBlind, amount-previous)
		g.state.previousRaise = maxInt(bigBlind, amount)
	}
}

// callBet matches the highest bet, or as much of it as the player's stack allows
func (g *Game) callBet(p *Player) {
	amount := minInt(g.highestBet(), p.BetAmount+p.Chips)
	p.Chips -= amount - p.BetAmount
	p.BetAmount = amount

	if p.Chips == 0 {
		p.LastAction = LastActionAllIn
	} else {
		p.LastAction = LastActionCall
	}
}

// resetStreetBetting zeroes per-street bets and re-opens the action for
// players who can still act.
func (g *Game) resetStreetBetting() {
	for _, p := range g.state.players {
		p.BetAmount = 0
	}

	for _, p := range g.playersInHand() {
		if !p.allIn() {
			p.LastAction = LastActionWaitingToAct
		}
	}

	g.state.previousRaise = 0
	g.state.minRaiseDiff = g.state.parameters.BigBlind
	g.state.partialAllInLeftOver = 0
}

// clearHandState wipes everything scoped to a single hand
func (g *Game) clearHandState() {
	for _, p := range g.state.players {
		p.HoleCards = nil
		p.BetAmount = 0
		p.LastAction = LastActionNone
	}

	g.state.deck = nil
	g.state.board = nil
	g.state.pots = nil
	g.state.currentPlayerToAct = ""
	g.state.minRaiseDiff = 0
	g.state.previousRaise = 0
	g.state.partialAllInLeftOver = 0
	g.state.stage = StageWaiting
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
