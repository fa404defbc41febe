// Package httpapi exposes the REST surface: login, catalog reads, shop and
// formation management, lobby and leaderboard views. Match flow itself lives
// on the websocket.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/grandline/autobattler/internal/arena"
	"github.com/grandline/autobattler/internal/auth"
	"github.com/grandline/autobattler/internal/formation"
	"github.com/grandline/autobattler/internal/gamedata"
	"github.com/grandline/autobattler/internal/player"
	"github.com/grandline/autobattler/internal/stats"
	"github.com/grandline/autobattler/internal/ws"
)

// Fresh accounts start their shop economy with this many coins. This pool is
// separate from the arena coin balance paid out by round rewards.
const shopStartingCoins = 10

type API struct {
	log     zerolog.Logger
	auth    *auth.Service
	users   *arena.Registry
	arena   *arena.Service
	players *player.Store
	hub     *ws.Hub
	stats   *stats.Tracker
}

func New(log zerolog.Logger, authSvc *auth.Service, users *arena.Registry, arenaSvc *arena.Service, players *player.Store, hub *ws.Hub, tracker *stats.Tracker) *API {
	return &API{
		log:     log.With().Str("component", "http").Logger(),
		auth:    authSvc,
		users:   users,
		arena:   arenaSvc,
		players: players,
		hub:     hub,
		stats:   tracker,
	}
}

// Routes mounts every endpoint on the router. Everything under /api except
// login requires a Bearer token.
func (a *API) Routes(r *mux.Router) {
	r.HandleFunc("/health", a.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/login", a.handleLogin).Methods(http.MethodPost)

	authed := r.PathPrefix("/api").Subrouter()
	authed.Use(a.auth.Middleware)
	authed.HandleFunc("/me", a.handleMe).Methods(http.MethodGet)
	authed.HandleFunc("/units", a.handleUnits).Methods(http.MethodGet)
	authed.HandleFunc("/synergies", a.handleSynergies).Methods(http.MethodGet)
	authed.HandleFunc("/synergy-preview", a.handleSynergyPreview).Methods(http.MethodPost)
	authed.HandleFunc("/shop", a.handleShop).Methods(http.MethodGet)
	authed.HandleFunc("/shop/reroll", a.handleReroll).Methods(http.MethodPost)
	authed.HandleFunc("/shop/buy", a.handleBuy).Methods(http.MethodPost)
	authed.HandleFunc("/shop/sell", a.handleSell).Methods(http.MethodPost)
	authed.HandleFunc("/formation", a.handleGetFormation).Methods(http.MethodGet)
	authed.HandleFunc("/formation", a.handlePutFormation).Methods(http.MethodPut)
	authed.HandleFunc("/lobby", a.handleLobby).Methods(http.MethodGet)
	authed.HandleFunc("/leaderboard/daily", a.handleDailyLeaderboard).Methods(http.MethodGet)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func claimsFrom(r *http.Request) auth.Claims {
	claims, _ := auth.FromContext(r.Context())
	return claims
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type loginRequest struct {
	Username string `json:"username"`
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "username is required"})
		return
	}

	user := a.users.GetOrCreate(req.Username)
	state := a.players.EnsureShop(user.ID, shopStartingCoins)
	token, err := a.auth.IssueToken(user.ID, user.Username)
	if err != nil {
		a.log.Error().Err(err).Msg("http: token issue failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "login failed"})
		return
	}

	a.log.Info().Str("user", user.Username).Msg("http: login")
	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  user,
		"state": state,
	})
}

func (a *API) handleMe(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	user, ok := a.users.Get(claims.Subject)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "user not found"})
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (a *API) handleUnits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"units": gamedata.Units})
}

func (a *API) handleSynergies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"factions": gamedata.FactionSynergies,
		"roles":    gamedata.RoleSynergies,
	})
}

type synergyPreviewRequest struct {
	UnitIDs []string `json:"unitIds"`
}

// handleSynergyPreview computes synergies for an arbitrary unit list so the
// client can preview a formation before saving it. Unknown ids are ignored.
func (a *API) handleSynergyPreview(w http.ResponseWriter, r *http.Request) {
	var req synergyPreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	defs := make([]gamedata.UnitDefinition, 0, len(req.UnitIDs))
	for _, id := range req.UnitIDs {
		if def, ok := gamedata.UnitByID(id); ok {
			defs = append(defs, def)
		}
	}
	writeJSON(w, http.StatusOK, gamedata.ComputeSynergies(defs))
}

func (a *API) handleShop(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	writeJSON(w, http.StatusOK, a.players.EnsureShop(claims.Subject, shopStartingCoins))
}

// pushShop mirrors a shop mutation to the user's live socket so an open game
// client stays in sync with REST-driven changes.
func (a *API) pushShop(userID string, state any) {
	if a.hub != nil {
		a.hub.Send(userID, ws.Msg{Type: "shop_update", Data: state})
	}
}

func (a *API) handleReroll(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	state, err := a.players.Reroll(claims.Subject)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	a.pushShop(claims.Subject, state)
	writeJSON(w, http.StatusOK, state)
}

type buyRequest struct {
	UnitID string `json:"unitId"`
}

func (a *API) handleBuy(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	var req buyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UnitID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unitId is required"})
		return
	}
	bought, cost, state, err := a.players.Buy(claims.Subject, req.UnitID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	a.pushShop(claims.Subject, state)
	writeJSON(w, http.StatusOK, map[string]any{
		"bought": bought,
		"cost":   cost,
		"state":  state,
	})
}

type sellRequest struct {
	InstanceID string `json:"instanceId"`
}

func (a *API) handleSell(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	var req sellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.InstanceID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "instanceId is required"})
		return
	}
	refund, state, err := a.players.Sell(claims.Subject, req.InstanceID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	a.pushShop(claims.Subject, state)
	writeJSON(w, http.StatusOK, map[string]any{
		"refund": refund,
		"state":  state,
	})
}

func (a *API) handleGetFormation(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	state, ok := a.players.Formation(claims.Subject)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"formation": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"formation": state})
}

func (a *API) handlePutFormation(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	var payload formation.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	state, err := a.players.SetFormation(claims.Subject, payload)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"formation": state})
}

func (a *API) handleLobby(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"queue":         a.arena.QueueSnapshot(),
		"activeMatches": a.arena.ActiveMatches(),
	})
}

func (a *API) handleDailyLeaderboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.stats.Snapshot())
}
