package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/pawlig/pawlig/internal/auth"
	"github.com/pawlig/pawlig/internal/config"
	"github.com/pawlig/pawlig/internal/service"
	"github.com/pawlig/pawlig/internal/store"
	"github.com/pawlig/pawlig/internal/upload"
)

type App struct {
	Cfg     config.Config
	Svc     *service.Service
	Store   *store.Store
	Codec   *auth.Codec
	Signer  upload.Signer
	started time.Time
}

func NewApp(cfg config.Config, svc *service.Service, st *store.Store, codec *auth.Codec, signer upload.Signer) *App {
	return &App{Cfg: cfg, Svc: svc, Store: st, Codec: codec, Signer: signer, started: time.Now()}
}

// decodeJSON enforces the JSON content type and strict field checking,
// writing the error response itself on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		WriteJSONError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "expected application/json")
		return false
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// pathID extracts the trailing identifier from a prefixed route.
func pathID(r *http.Request, prefix string) string {
	if !strings.HasPrefix(r.URL.Path, prefix) {
		return ""
	}
	return strings.TrimPrefix(r.URL.Path, prefix)
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) metricsHandler(w http.ResponseWriter, r *http.Request) {
	counts, err := a.Store.Counts(r.Context())
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}
	m := map[string]any{
		"entities":   counts,
		"uptime_sec": time.Since(a.started).Seconds(),
	}
	writeJSON(w, http.StatusOK, m)
}
