package room

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"holdem-server/pkg/game"
	"holdem-server/pkg/ledger"
)

// Table owns a single game and serializes every touch of it through its run
// loop. All client actions and timer ticks execute on one goroutine, so the
// game itself never needs locking.
type Table struct {
	pitBoss *PitBoss
	name    string
	log     logrus.FieldLogger
	game    *game.Game
	ledger  *ledger.Ledger
	clients map[*Client]bool
	lock    sync.RWMutex

	execInRunLoop chan func()
	close         chan bool
}

// NewTable creates a new table with its own game and ledger
// This is called from a blocking state, so it needs to return quickly
func NewTable(pitBoss *PitBoss, name string, parameters game.GameParameters) (*Table, error) {
	log := logrus.WithField("table", name)

	g, err := game.New(log, parameters)
	if err != nil {
		return nil, err
	}

	l := ledger.New()
	g.SetLedger(l)

	return &Table{
		pitBoss:       pitBoss,
		name:          name,
		log:           log,
		game:          g,
		ledger:        l,
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}, nil
}

// Name returns the table name
func (t *Table) Name() string {
	return t.name
}

// LedgerRows returns the table's accounting rows
func (t *Table) LedgerRows() []ledger.Row {
	return t.ledger.Rows()
}

// Clients will return a slice of connected (at the time) clients
func (t *Table) Clients() []*Client {
	t.lock.RLock()
	defer t.lock.RUnlock()

	clients := make([]*Client, 0, len(t.clients))
	for client := range t.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (t *Table) StartShift() {
	go t.runLoop()
}

// EndShift is called when the table is no longer needed
func (t *Table) EndShift() {
	close(t.close)
}

func (t *Table) runLoop() {
	t.log.Debug("creating table run loop")

	ticker := time.NewTicker(t.game.Interval())
	defer ticker.Stop()

	for {
		select {
		case fn := <-t.execInRunLoop:
			fn()
		case <-ticker.C:
			changed, err := t.game.Tick()
			if err != nil {
				t.log.WithError(err).Error("tick failed")
			}

			if changed {
				t.broadcast()
			}
		case <-t.close:
			t.log.Debug("terminating table run loop")
			return
		}
	}
}

// AddClient adds a client
// This method must return quickly
func (t *Table) AddClient(client *Client) {
	t.lock.Lock()
	client.table = t
	t.clients[client] = true
	t.lock.Unlock()

	t.execInRunLoop <- func() {
		t.game.RegisterClient(client.ID)
		client.Send(newGameResponse(t.game.ProjectView(client.ID)))
	}
}

// RemoveClient removes a client
// This method must return quickly
func (t *Table) RemoveClient(client *Client) (lastClient bool) {
	t.lock.Lock()
	delete(t.clients, client)
	nClients := len(t.clients)
	t.lock.Unlock()

	return nClients == 0
}

// ReceivedMessage is called when a client sends a message to the server
func (t *Table) ReceivedMessage(c *Client, msg *PayloadIn) {
	t.execInRunLoop <- func() {
		if err := t.game.Dispatch(c.ID, msg.Action); err != nil {
			t.log.WithError(err).WithFields(logrus.Fields{
				"client": c.String(),
				"action": msg.Action.Kind,
			}).Debug("action rejected")

			c.Send(newErrorResponse(msg.Context, err))
			return
		}

		c.Send(OK(msg.Context))
		t.broadcast()
	}
}

// NOTE: must only be called from the run loop
func (t *Table) broadcast() {
	for _, client := range t.Clients() {
		client.Send(newGameResponse(t.game.ProjectView(client.ID)))
	}
}
