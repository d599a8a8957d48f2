package room

import (
	"sync"

	"github.com/sirupsen/logrus"

	"holdem-server/pkg/game"
)

// PitBoss is responsible for dispatching clients to tables
type PitBoss struct {
	parameters game.GameParameters
	lock       sync.RWMutex
	tables     map[string]*Table
	connect    chan *Client
	disconnect chan *Client
}

// NewPitBoss returns a new dispatch object. Every table it creates uses the
// supplied parameters.
func NewPitBoss(parameters game.GameParameters) *PitBoss {
	return &PitBoss{
		parameters: parameters,
		tables:     make(map[string]*Table),
		connect:    make(chan *Client, 256),
		disconnect: make(chan *Client, 256),
	}
}

// StartShift starts the PitBoss run loop
func (p *PitBoss) StartShift() {
	go p.runLoop()
}

func (p *PitBoss) runLoop() {
	for {
		select {
		case client := <-p.connect:
			logrus.WithField("client", client.String()).Debug("client connected")

			table, found := p.Table(client.TableName)
			if !found {
				var err error
				table, err = NewTable(p, client.TableName, p.parameters)
				if err != nil {
					logrus.WithError(err).WithField("table", client.TableName).Error("could not create table")
					client.Close <- "could not create table"
					continue
				}

				table.StartShift()

				p.lock.Lock()
				p.tables[client.TableName] = table
				p.lock.Unlock()
			}

			table.AddClient(client)
		case client := <-p.disconnect:
			logrus.WithField("client", client.String()).Debug("client disconnected")

			table, found := p.Table(client.TableName)
			if !found {
				logrus.WithField("table", client.TableName).Error("table not found")
				continue
			}

			if table.RemoveClient(client) {
				table.EndShift()

				p.lock.Lock()
				delete(p.tables, client.TableName)
				p.lock.Unlock()
			}
		}
	}
}

// Table returns the table with the given name, if it exists
func (p *PitBoss) Table(name string) (*Table, bool) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	table, found := p.tables[name]
	return table, found
}

// ClientConnected is called when a client connects to the server
func (p *PitBoss) ClientConnected(client *Client) {
	p.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.disconnect <- client
}
