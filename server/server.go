// Package server exposes a read-only HTTP diagnostics surface over the
// supervisor's registry: per-device connection state and status-cell
// snapshots, for operators who want more than the host-IPC boundary
// provides. Adapted from the teacher's RouteTable/Mainframe pattern,
// rebuilt on go-chi/chi the way cmd/multiserver wires its own routes.
package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi"

	"github.com/hcavr/avrd/avr"
	"github.com/hcavr/avrd/session"
)

// Registry is the subset of supervisor.Supervisor the diagnostics
// server needs; kept as an interface so this package does not import
// supervisor directly.
type Registry interface {
	Session(serial string) (*session.Session, bool)
}

// Diagnostics serves read-only JSON views of the supervisor's registry.
type Diagnostics struct {
	reg Registry
}

// New constructs a Diagnostics surface over reg.
func New(reg Registry) *Diagnostics {
	return &Diagnostics{reg: reg}
}

// Routes builds the chi router: /devices/{serial} for a single device's
// snapshot, /devices/{serial}/status/{code} for one cell.
func (d *Diagnostics) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/devices/{serial}", d.deviceSnapshot)
	r.Get("/devices/{serial}/status/{code}", d.cellStatus)
	return r
}

func (d *Diagnostics) deviceSnapshot(w http.ResponseWriter, r *http.Request) {
	serial := chi.URLParam(r, "serial")
	s, ok := d.reg.Session(serial)
	if !ok {
		http.Error(w, "unknown or disconnected serial", http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]interface{}{
		"serial": s.Serial,
		"state":  s.State().String(),
		"status": snapshotValues(s.Snapshot()),
	})
}

func (d *Diagnostics) cellStatus(w http.ResponseWriter, r *http.Request) {
	serial := chi.URLParam(r, "serial")
	code := strings.ToUpper(chi.URLParam(r, "code"))
	s, ok := d.reg.Session(serial)
	if !ok {
		http.Error(w, "unknown or disconnected serial", http.StatusNotFound)
		return
	}
	cell, ok := s.Status(code)
	if !ok {
		http.Error(w, "no cached value for that mnemonic", http.StatusNotFound)
		return
	}
	writeJSON(w, cell.Value())
}

func snapshotValues(cells map[string]avr.Cell) map[string]interface{} {
	out := make(map[string]interface{}, len(cells))
	for code, cell := range cells {
		out[code] = cell.Value()
	}
	return out
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
