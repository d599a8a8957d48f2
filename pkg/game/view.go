package game

import (
	"time"

	"holdem-server/pkg/deck"
)

// PlayerView is a player as seen by a particular client. Hole cards are only
// present for the client's own player.
type PlayerView struct {
	UUID       string     `json:"uuid"`
	Name       string     `json:"name"`
	Chips      int        `json:"chips"`
	Sitting    bool       `json:"sitting"`
	SeatNumber int        `json:"seatNumber"`
	LastAction LastAction `json:"lastAction"`
	BetAmount  int        `json:"betAmount"`
	HoleCards  deck.Hand  `json:"holeCards,omitempty"`
}

// ClientView is a snapshot of the table for one client. It shares no memory
// with the live game state.
type ClientView struct {
	HeroPlayerUUID     string                 `json:"heroPlayerUuid,omitempty"`
	Players            map[string]*PlayerView `json:"players"`
	Board              deck.Hand              `json:"board"`
	Stage              Stage                  `json:"stage"`
	Pots               []Pot                  `json:"pots"`
	TotalPot           int                    `json:"totalPot"`
	DealerUUID         string                 `json:"dealerUuid,omitempty"`
	CurrentPlayerToAct string                 `json:"currentPlayerToAct,omitempty"`
	GameInProgress     bool                   `json:"gameInProgress"`
	Parameters         GameParameters         `json:"parameters"`
	LastHandResult     *HandResult            `json:"lastHandResult,omitempty"`
	ServerTime         time.Time              `json:"serverTime"`
}

// ProjectView builds the client's snapshot of the table. Unregistered clients
// get a spectator view with no hole cards.
func (g *Game) ProjectView(clientID string) *ClientView {
	heroUUID := ""
	if client, ok := g.state.connections[clientID]; ok {
		heroUUID = client.playerUUID
	}

	players := make(map[string]*PlayerView, len(g.state.players))
	for _, p := range g.state.players {
		view := &PlayerView{
			UUID:       p.UUID,
			Name:       p.Name,
			Chips:      p.Chips,
			Sitting:    p.Sitting,
			SeatNumber: p.SeatNumber,
			LastAction: p.LastAction,
			BetAmount:  p.BetAmount,
		}

		if p.UUID == heroUUID {
			view.HoleCards = p.HoleCards.Clone()
		}

		players[p.UUID] = view
	}

	return &ClientView{
		HeroPlayerUUID:     heroUUID,
		Players:            players,
		Board:              g.Board(),
		Stage:              g.state.stage,
		Pots:               g.Pots(),
		TotalPot:           g.TotalPot(),
		DealerUUID:         g.state.dealerUUID,
		CurrentPlayerToAct: g.state.currentPlayerToAct,
		GameInProgress:     g.state.gameInProgress,
		Parameters:         g.state.parameters,
		LastHandResult:     cloneHandResult(g.state.lastHandResult),
		ServerTime:         g.clock(),
	}
}
