package game

import "time"

// Interval returns how often the table wants Tick called
func (g *Game) Interval() time.Duration {
	return time.Second
}

// Tick advances time-based behavior: dealing the next hand once the table is
// ready, and forcing a check or fold when the player to act has run out of
// time. It returns true if the state changed.
func (g *Game) Tick() (bool, error) {
	g.handEnded = false

	if g.state.stage == StageWaiting {
		return g.maybeStartHand()
	}

	timeToAct := g.state.parameters.TimeToAct
	playerUUID := g.state.currentPlayerToAct
	if timeToAct <= 0 || playerUUID == "" {
		return false, nil
	}

	if g.clock().Sub(g.state.turnStartedAt) < timeToAct {
		return false, nil
	}

	clientID := g.clientIDByPlayerUUID(playerUUID)
	if clientID == "" {
		return false, nil
	}

	g.log.WithField("player", playerUUID).Info("player timed out")

	if err := g.Dispatch(clientID, Action{Kind: ActionCheck}); err == nil {
		return true, nil
	}

	if err := g.Dispatch(clientID, Action{Kind: ActionFold}); err != nil {
		return false, err
	}

	return true, nil
}
