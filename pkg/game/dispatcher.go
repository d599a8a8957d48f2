package game

// RegisterClient makes the client known to the table so it can dispatch
// actions and receive views. Registering twice is a no-op.
func (g *Game) RegisterClient(clientID string) {
	g.registerClient(clientID)
}

// Dispatch validates and performs a single client action. The game state is
// only mutated when validation passes; on error the state is unchanged.
// After a successful action a new hand is dealt if the table is ready for one.
func (g *Game) Dispatch(clientID string, action Action) error {
	g.handEnded = false

	if _, err := g.ensureClient(clientID); err != nil {
		return err
	}

	if err := g.performAction(clientID, action); err != nil {
		return err
	}

	_, err := g.maybeStartHand()
	return err
}

func (g *Game) performAction(clientID string, action Action) error {
	switch action.Kind {
	case ActionJoinTable:
		if err := g.validateJoinTable(clientID, action); err != nil {
			return err
		}

		p := g.addPlayer(clientID, action.Name, action.Buyin)
		g.log.WithField("player", p.UUID).WithField("name", p.Name).Info("player joined")
		return nil
	case ActionSitDown:
		p, err := g.validateSitDown(clientID, action)
		if err != nil {
			return err
		}

		g.seatPlayer(p, action.SeatNumber)
		return nil
	case ActionStandUp:
		p, err := g.validateStandUp(clientID)
		if err != nil {
			return err
		}

		g.standPlayer(p)
		g.ledger.AddWalkaway(clientID, p.Chips)
		return nil
	case ActionStartGame:
		if err := g.validateStartGame(clientID); err != nil {
			return err
		}

		g.state.stopRequested = false
		return nil
	case ActionStopGame:
		if err := g.validateStopGame(clientID); err != nil {
			return err
		}

		g.state.stopRequested = true
		if g.state.stage == StageWaiting {
			g.state.gameInProgress = false
		}
		return nil
	case ActionSetGameParameters:
		if err := g.validateSetGameParameters(clientID, action); err != nil {
			return err
		}

		g.setParameters(*action.Parameters)
		g.log.WithField("parameters", *action.Parameters).Info("game parameters changed")
		return nil
	case ActionCheck:
		p, err := g.validateCheck(clientID)
		if err != nil {
			return err
		}

		return g.performCheck(p)
	case ActionCall:
		p, err := g.validateCall(clientID)
		if err != nil {
			return err
		}

		return g.performCall(p)
	case ActionBet:
		p, err := g.validateBet(clientID, action)
		if err != nil {
			return err
		}

		return g.performBet(p, action.Amount)
	case ActionFold:
		p, err := g.validateFoldAction(clientID)
		if err != nil {
			return err
		}

		return g.performFold(p)
	default:
		return &UnrecognizedActionError{Kind: action.Kind}
	}
}
