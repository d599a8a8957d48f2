package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedger(t *testing.T) {
	a := assert.New(t)

	l := New()
	l.AddAlias("client-1", "Alice")
	l.AddAlias("client-1", "Alice")
	l.AddAlias("client-1", "Allie")
	l.AddBuyin("client-1", 1000)
	l.AddBuyin("client-1", 500)
	l.IncrementHandsDealtIn("client-1")
	l.IncrementHandsDealtIn("client-1")
	l.AddWalkaway("client-1", 1800)

	l.AddBuyin("client-2", 250)

	rows := l.Rows()
	a.Len(rows, 2)

	a.Equal(Row{
		ClientID:     "client-1",
		Aliases:      []string{"Alice", "Allie"},
		Buyin:        1500,
		HandsDealtIn: 2,
		Walkaway:     1800,
	}, rows[0])

	a.Equal("client-2", rows[1].ClientID)
	a.Equal(250, rows[1].Buyin)
	a.Empty(rows[1].Aliases)

	// mutating a returned row does not affect the ledger
	rows[0].Aliases[0] = "Mallory"
	a.Equal("Alice", l.Rows()[0].Aliases[0])
}

func TestLedger_EmptyRows(t *testing.T) {
	a := assert.New(t)

	a.Empty(New().Rows())
}
