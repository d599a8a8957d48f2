// Package ledger tracks per-client money movement at a table so a session
// can be reconciled after the fact.
package ledger

import (
	"sort"
	"sync"
)

// Row is the accounting for one client
type Row struct {
	ClientID     string   `json:"clientId"`
	Aliases      []string `json:"aliases"`
	Buyin        int      `json:"buyin"`
	HandsDealtIn int      `json:"handsDealtIn"`
	Walkaway     int      `json:"walkaway"`
}

// Ledger is an in-memory ledger safe for concurrent use
type Ledger struct {
	mu   sync.Mutex
	rows map[string]*Row
}

// New returns an empty ledger
func New() *Ledger {
	return &Ledger{
		rows: make(map[string]*Row),
	}
}

func (l *Ledger) row(clientID string) *Row {
	row, ok := l.rows[clientID]
	if !ok {
		row = &Row{ClientID: clientID}
		l.rows[clientID] = row
	}

	return row
}

// AddAlias records a display name used by the client
func (l *Ledger) AddAlias(clientID, name string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	row := l.row(clientID)
	for _, alias := range row.Aliases {
		if alias == name {
			return
		}
	}

	row.Aliases = append(row.Aliases, name)
}

// AddBuyin records chips bought by the client
func (l *Ledger) AddBuyin(clientID string, amount int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.row(clientID).Buyin += amount
}

// IncrementHandsDealtIn records that the client's player was dealt into a hand
func (l *Ledger) IncrementHandsDealtIn(clientID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.row(clientID).HandsDealtIn++
}

// AddWalkaway records chips the client's player left the table with
func (l *Ledger) AddWalkaway(clientID string, chips int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.row(clientID).Walkaway += chips
}

// Rows returns a copy of every row ordered by client ID
func (l *Ledger) Rows() []Row {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows := make([]Row, 0, len(l.rows))
	for _, row := range l.rows {
		r := *row
		r.Aliases = append([]string{}, row.Aliases...)
		rows = append(rows, r)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].ClientID < rows[j].ClientID
	})

	return rows
}
