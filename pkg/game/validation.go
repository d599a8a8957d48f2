package game

// ensureClient returns the client or a NotFoundError. Clients must be
// registered before they can dispatch anything.
func (g *Game) ensureClient(clientID string) (*connectedClient, error) {
	client, ok := g.state.connections[clientID]
	if !ok {
		return nil, &NotFoundError{Entity: "client", ID: clientID}
	}

	return client, nil
}

// ensurePlayer returns the player associated with the client or a NotFoundError
func (g *Game) ensurePlayer(clientID string) (*Player, error) {
	p := g.playerByClientID(clientID)
	if p == nil {
		return nil, &NotFoundError{Entity: "player", ID: clientID}
	}

	return p, nil
}

func (g *Game) validateJoinTable(clientID string, action Action) error {
	if g.playerByClientID(clientID) != nil {
		return illegalf("client has already joined the table")
	}

	if action.Name == "" {
		return illegalf("a player name is required")
	}

	if action.Buyin <= 0 {
		return illegalf("buy-in must be positive")
	}

	return nil
}

func (g *Game) validateSitDown(clientID string, action Action) (*Player, error) {
	p, err := g.ensurePlayer(clientID)
	if err != nil {
		return nil, err
	}

	if p.Sitting {
		return nil, illegalf("player is already sitting at seat %d", p.SeatNumber)
	}

	if len(g.seatedPlayers()) >= g.state.parameters.MaxPlayers {
		return nil, &ResourceExhaustionError{Resource: "seats"}
	}

	if action.SeatNumber < 0 || action.SeatNumber >= g.state.parameters.MaxPlayers {
		return nil, illegalf("seat %d does not exist", action.SeatNumber)
	}

	if g.seatTaken(action.SeatNumber) {
		return nil, illegalf("seat %d is taken", action.SeatNumber)
	}

	return p, nil
}

func (g *Game) validateStandUp(clientID string) (*Player, error) {
	p, err := g.ensurePlayer(clientID)
	if err != nil {
		return nil, err
	}

	if !p.Sitting {
		return nil, illegalf("player is not sitting")
	}

	if p.dealtIn() {
		return nil, illegalf("cannot stand up during a hand")
	}

	return p, nil
}

func (g *Game) validateStartGame(clientID string) error {
	if _, err := g.ensurePlayer(clientID); err != nil {
		return err
	}

	if g.state.gameInProgress {
		return illegalf("game is already in progress")
	}

	if len(g.seatedPlayers()) < 2 {
		return illegalf("at least two seated players are required")
	}

	return nil
}

func (g *Game) validateStopGame(clientID string) error {
	if _, err := g.ensurePlayer(clientID); err != nil {
		return err
	}

	if !g.state.gameInProgress {
		return illegalf("no game is in progress")
	}

	return nil
}

func (g *Game) validateSetGameParameters(clientID string, action Action) error {
	if _, err := g.ensurePlayer(clientID); err != nil {
		return err
	}

	if g.state.stage != StageWaiting {
		return illegalf("cannot change game parameters during a hand")
	}

	if action.Parameters == nil {
		return illegalf("game parameters are required")
	}

	if err := action.Parameters.Validate(); err != nil {
		return err
	}

	for _, p := range g.seatedPlayers() {
		if p.SeatNumber >= action.Parameters.MaxPlayers {
			return illegalf("seat %d does not exist at a table of %d", p.SeatNumber, action.Parameters.MaxPlayers)
		}
	}

	return nil
}

// validateBettingTurn ensures there is a betting round and it is the client's turn
func (g *Game) validateBettingTurn(clientID string) (*Player, error) {
	p, err := g.ensurePlayer(clientID)
	if err != nil {
		return nil, err
	}

	if g.state.stage < StagePreFlop || g.state.stage > StageRiver {
		return nil, illegalf("no betting round in progress")
	}

	if g.state.currentPlayerToAct != p.UUID {
		return nil, illegalf("it is not your turn")
	}

	return p, nil
}

func (g *Game) validateCheck(clientID string) (*Player, error) {
	p, err := g.validateBettingTurn(clientID)
	if err != nil {
		return nil, err
	}

	if p.BetAmount < g.highestBet() {
		return nil, illegalf("cannot check facing a bet")
	}

	return p, nil
}

func (g *Game) validateCall(clientID string) (*Player, error) {
	p, err := g.validateBettingTurn(clientID)
	if err != nil {
		return nil, err
	}

	if p.BetAmount >= g.highestBet() {
		return nil, illegalf("there is no bet to call")
	}

	return p, nil
}

func (g *Game) validateFoldAction(clientID string) (*Player, error) {
	return g.validateBettingTurn(clientID)
}

func (g *Game) validateBet(clientID string, action Action) (*Player, error) {
	p, err := g.validateBettingTurn(clientID)
	if err != nil {
		return nil, err
	}

	amount := minInt(action.Amount, p.BetAmount+p.Chips)
	if amount <= g.highestBet() {
		return nil, illegalf("bet of %d does not exceed the current bet of %d", amount, g.highestBet())
	}

	minimum := g.state.previousRaise + g.state.minRaiseDiff + g.state.partialAllInLeftOver
	if amount < minimum && amount < p.BetAmount+p.Chips {
		return nil, illegalf("minimum bet is %d", minimum)
	}

	return p, nil
}
