// Package mux provides the HTTP surface of the hold'em server: a health
// endpoint, a websocket endpoint per table, and the table ledger.
package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"

	"holdem-server/pkg/game"
	"holdem-server/pkg/room"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	pitBoss *room.PitBoss
}

// NewMux returns a new HTTP mux. Tables are created on demand with the
// supplied parameters when the first client connects.
func NewMux(version string, parameters game.GameParameters) *Mux {
	pitBoss := room.NewPitBoss(parameters)
	pitBoss.StartShift()

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())

	tr := r.PathPrefix("/table/{name:[a-zA-Z0-9][a-zA-Z0-9_-]*}").Subrouter()
	tr.Methods(http.MethodGet).Path("/ws").Handler(this.getTableNameWS())
	tr.Methods(http.MethodGet).Path("/ledger").Handler(this.getTableNameLedger())

	return this
}
