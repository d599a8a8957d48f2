// Package game implements an authoritative no-limit Texas Hold'em table. All
// state changes flow through Dispatch or Tick; callers must serialize access.
package game

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"holdem-server/internal/rng"
	"holdem-server/pkg/deck"
)

// LastAction is the most recent thing a player did in the current betting round
type LastAction string

// last-action values
const (
	LastActionNone         LastAction = ""
	LastActionWaitingToAct LastAction = "waiting-to-act"
	LastActionPlaceBlind   LastAction = "place-blind"
	LastActionCheck        LastAction = "check"
	LastActionCall         LastAction = "call"
	LastActionBet          LastAction = "bet"
	LastActionFold         LastAction = "fold"
	LastActionAllIn        LastAction = "all-in"
)

// GameParameters are the fixed table rules
type GameParameters struct {
	SmallBlind int           `json:"smallBlind"`
	BigBlind   int           `json:"bigBlind"`
	MaxPlayers int           `json:"maxPlayers"`
	TimeToAct  time.Duration `json:"timeToAct"`
}

// Validate ensures the parameters describe a playable table
func (p GameParameters) Validate() error {
	if p.SmallBlind <= 0 || p.BigBlind <= 0 {
		return illegalf("blinds must be positive")
	}

	if p.SmallBlind > p.BigBlind {
		return illegalf("small blind cannot exceed big blind")
	}

	if p.MaxPlayers < 2 {
		return illegalf("table must allow at least two players")
	}

	return nil
}

// Player is a participant at the table
type Player struct {
	UUID       string     `json:"uuid"`
	Name       string     `json:"name"`
	Chips      int        `json:"chips"`
	Sitting    bool       `json:"sitting"`
	SeatNumber int        `json:"seatNumber"`
	LastAction LastAction `json:"lastAction"`
	BetAmount  int        `json:"betAmount"`
	HoleCards  deck.Hand  `json:"holeCards"`
}

func (p *Player) dealtIn() bool {
	return len(p.HoleCards) > 0
}

func (p *Player) folded() bool {
	return p.LastAction == LastActionFold
}

func (p *Player) allIn() bool {
	return p.LastAction == LastActionAllIn
}

// inHand returns true if the player was dealt in and has not folded
func (p *Player) inHand() bool {
	return p.dealtIn() && !p.folded()
}

// connectedClient is a registered client and its optional player association
type connectedClient struct {
	uuid       string
	playerUUID string
}

// Pot is a main or side pot and the players eligible to win it
type Pot struct {
	Value      int      `json:"value"`
	Contestors []string `json:"contestors"`
}

// HandResult describes how the last completed hand was settled. ShownCards
// holds the hole cards revealed at showdown; a hand won by everyone else
// folding reveals nothing.
type HandResult struct {
	Winners     []string             `json:"winners"`
	Payouts     map[string]int       `json:"payouts"`
	WinningHand string               `json:"winningHand,omitempty"`
	ShownCards  map[string]deck.Hand `json:"shownCards,omitempty"`
}

type gameState struct {
	parameters         GameParameters
	players            map[string]*Player
	connections        map[string]*connectedClient
	deck               *deck.Deck
	board              deck.Hand
	pots               []Pot
	stage              Stage
	dealerUUID         string
	currentPlayerToAct string
	gameInProgress     bool
	stopRequested      bool
	turnStartedAt      time.Time
	lastHandResult     *HandResult

	// betting bookkeeping for the current street
	minRaiseDiff         int
	previousRaise        int
	partialAllInLeftOver int
}

// Game is a single table. It is not safe for concurrent use; the room layer
// serializes all access through its run loop.
type Game struct {
	log    logrus.FieldLogger
	state  gameState
	rand   rng.Generator
	clock  func() time.Time
	ledger Ledger
	newID  func() string

	// set when a hand ends so the same dispatch cannot immediately deal the next one
	handEnded bool
}

// New creates a table with the supplied parameters
func New(log logrus.FieldLogger, parameters GameParameters) (*Game, error) {
	if err := parameters.Validate(); err != nil {
		return nil, err
	}

	return &Game{
		log: log,
		state: gameState{
			parameters:  parameters,
			players:     make(map[string]*Player),
			connections: make(map[string]*connectedClient),
			stage:       StageWaiting,
		},
		rand:   rng.Crypto{},
		clock:  time.Now,
		ledger: noopLedger{},
		newID:  uuid.NewString,
	}, nil
}

// SetLedger attaches a ledger that will be notified of money movement
func (g *Game) SetLedger(l Ledger) {
	if l == nil {
		l = noopLedger{}
	}

	g.ledger = l
}

// Stage returns the current betting-round stage
func (g *Game) Stage() Stage {
	return g.state.stage
}

// GameInProgress returns true if a session is running
func (g *Game) GameInProgress() bool {
	return g.state.gameInProgress
}

// DealerUUID returns the UUID of the player on the button
func (g *Game) DealerUUID() string {
	return g.state.dealerUUID
}

// CurrentPlayerToAct returns the UUID of the player whose turn it is, or the
// empty string when no one can act.
func (g *Game) CurrentPlayerToAct() string {
	return g.state.currentPlayerToAct
}

// Board returns a copy of the community cards
func (g *Game) Board() deck.Hand {
	return g.state.board.Clone()
}

// Parameters returns the table rules
func (g *Game) Parameters() GameParameters {
	return g.state.parameters
}

// Pots returns a copy of the main and side pots
func (g *Game) Pots() []Pot {
	pots := make([]Pot, len(g.state.pots))
	for i, pot := range g.state.pots {
		pots[i] = Pot{
			Value:      pot.Value,
			Contestors: append([]string{}, pot.Contestors...),
		}
	}

	return pots
}

// TotalPot returns the chips across all pots plus outstanding bets
func (g *Game) TotalPot() int {
	total := 0
	for _, pot := range g.state.pots {
		total += pot.Value
	}

	for _, p := range g.state.players {
		total += p.BetAmount
	}

	return total
}

// Player returns a copy of the player with the given UUID
func (g *Game) Player(playerUUID string) (Player, bool) {
	p := g.player(playerUUID)
	if p == nil {
		return Player{}, false
	}

	player := *p
	player.HoleCards = p.HoleCards.Clone()

	return player, true
}

// LastHandResult returns the settlement of the last completed hand, or nil
func (g *Game) LastHandResult() *HandResult {
	return cloneHandResult(g.state.lastHandResult)
}

func (g *Game) player(playerUUID string) *Player {
	return g.state.players[playerUUID]
}

func (g *Game) playerByClientID(clientID string) *Player {
	client, ok := g.state.connections[clientID]
	if !ok || client.playerUUID == "" {
		return nil
	}

	return g.player(client.playerUUID)
}

func (g *Game) clientIDByPlayerUUID(playerUUID string) string {
	for _, client := range g.state.connections {
		if client.playerUUID == playerUUID {
			return client.uuid
		}
	}

	return ""
}

// seatedPlayers returns the sitting players ordered by seat number
func (g *Game) seatedPlayers() []*Player {
	players := make([]*Player, 0, len(g.state.players))
	for _, p := range g.state.players {
		if p.Sitting {
			players = append(players, p)
		}
	}

	sort.Slice(players, func(i, j int) bool {
		return players[i].SeatNumber < players[j].SeatNumber
	})

	return players
}

func (g *Game) seatTaken(seatNumber int) bool {
	for _, p := range g.state.players {
		if p.Sitting && p.SeatNumber == seatNumber {
			return true
		}
	}

	return false
}

// playersDealtIn returns the players dealt into the current hand, by seat
func (g *Game) playersDealtIn() []*Player {
	var players []*Player
	for _, p := range g.seatedPlayers() {
		if p.dealtIn() {
			players = append(players, p)
		}
	}

	return players
}

// playersInHand returns the dealt-in players who have not folded, by seat
func (g *Game) playersInHand() []*Player {
	var players []*Player
	for _, p := range g.playersDealtIn() {
		if !p.folded() {
			players = append(players, p)
		}
	}

	return players
}

func (g *Game) highestBet() int {
	highest := 0
	for _, p := range g.playersDealtIn() {
		if p.BetAmount > highest {
			highest = p.BetAmount
		}
	}

	return highest
}

// haveAllPlayersActed returns true once every dealt-in player has either
// folded, matched the highest bet, or is all in. A posted blind does not
// count as having acted.
func (g *Game) haveAllPlayersActed() bool {
	highest := g.highestBet()
	for _, p := range g.playersDealtIn() {
		if p.LastAction == LastActionWaitingToAct || p.LastAction == LastActionPlaceBlind {
			return false
		}

		if p.folded() || p.allIn() || p.BetAmount == highest {
			continue
		}

		return false
	}

	return true
}

// isAllInRunOut returns true when no further betting is possible because all
// but at most one player in the hand is all in.
func (g *Game) isAllInRunOut() bool {
	inHand := g.playersInHand()
	allIn := 0
	for _, p := range inHand {
		if p.allIn() {
			allIn++
		}
	}

	return len(inHand) >= 2 && allIn >= len(inHand)-1
}

// nextSeatedPlayer returns the first sitting player clockwise of fromUUID, or
// fromUUID if no other sitting player exists.
func (g *Game) nextSeatedPlayer(fromUUID string) string {
	return g.nextPlayer(fromUUID, func(p *Player) bool {
		return true
	})
}

// nextPlayerInHand returns the first player clockwise of fromUUID who can
// still act in the hand, or fromUUID if there is none.
func (g *Game) nextPlayerInHand(fromUUID string) string {
	return g.nextPlayer(fromUUID, func(p *Player) bool {
		return p.inHand() && !p.allIn()
	})
}

func (g *Game) nextPlayer(fromUUID string, eligible func(p *Player) bool) string {
	players := g.seatedPlayers()
	start := -1
	for i, p := range players {
		if p.UUID == fromUUID {
			start = i
			break
		}
	}

	if start < 0 {
		if len(players) > 0 {
			return players[0].UUID
		}

		return fromUUID
	}

	for i := 1; i <= len(players); i++ {
		p := players[(start+i)%len(players)]
		if p.UUID == fromUUID {
			break
		}

		if eligible(p) {
			return p.UUID
		}
	}

	return fromUUID
}

func cloneHandResult(result *HandResult) *HandResult {
	if result == nil {
		return nil
	}

	clone := &HandResult{
		Winners:     append([]string{}, result.Winners...),
		Payouts:     make(map[string]int, len(result.Payouts)),
		WinningHand: result.WinningHand,
	}
	for playerUUID, amount := range result.Payouts {
		clone.Payouts[playerUUID] = amount
	}

	if result.ShownCards != nil {
		clone.ShownCards = make(map[string]deck.Hand, len(result.ShownCards))
		for playerUUID, cards := range result.ShownCards {
			clone.ShownCards[playerUUID] = cards.Clone()
		}
	}

	return clone
}
