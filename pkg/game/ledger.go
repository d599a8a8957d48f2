package game

// Ledger records per-client money movement for end-of-session accounting
type Ledger interface {
	// AddAlias records a display name for the client
	AddAlias(clientID, name string)
	// AddBuyin records chips bought by the client
	AddBuyin(clientID string, amount int)
	// IncrementHandsDealtIn records that the client's player was dealt into a hand
	IncrementHandsDealtIn(clientID string)
	// AddWalkaway records the chips the client's player left the table with
	AddWalkaway(clientID string, chips int)
}

type noopLedger struct{}

func (noopLedger) AddAlias(string, string)      {}
func (noopLedger) AddBuyin(string, int)         {}
func (noopLedger) IncrementHandsDealtIn(string) {}
func (noopLedger) AddWalkaway(string, int)      {}
