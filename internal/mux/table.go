package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
)

func (m *Mux) getTableNameLedger() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table, found := m.pitBoss.Table(gmux.Vars(r)["name"])
		if !found {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		writeJSON(w, http.StatusOK, table.LedgerRows())
	}
}
