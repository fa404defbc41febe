// Package ws is the websocket edge: it owns the live connections, translates
// inbound client messages into queue calls, and delivers arena events back out.
package ws

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/grandline/autobattler/internal/arena"
	"github.com/grandline/autobattler/internal/auth"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// Msg is the wire envelope for every socket message, both directions.
type Msg struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// QueueService is the slice of the arena the socket edge drives.
type QueueService interface {
	Enqueue(userID string, allowBot bool) int
	Leave(userID string)
	Disconnect(userID string)
}

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex // serializes writes; gorilla allows one concurrent writer
}

func (c *client) write(m Msg) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(m)
}

// Hub tracks one live connection per user id and implements the arena's event
// sink. It never calls back into the arena while holding its own lock.
type Hub struct {
	log   zerolog.Logger
	auth  *auth.Service
	queue QueueService

	mu      sync.Mutex
	clients map[string]*client
}

func NewHub(log zerolog.Logger, authSvc *auth.Service) *Hub {
	return &Hub{
		log:     log.With().Str("component", "ws").Logger(),
		auth:    authSvc,
		clients: map[string]*client{},
	}
}

// BindQueue wires the queue service after construction. The hub and the arena
// reference each other, so one side has to attach late.
func (h *Hub) BindQueue(q QueueService) { h.queue = q }

// register installs a connection for the user, closing any previous one. A
// second login kicks the first session, matching how browsers reconnect.
func (h *Hub) register(userID string, conn *websocket.Conn) *client {
	h.mu.Lock()
	defer h.mu.Unlock()
	if prev, ok := h.clients[userID]; ok {
		_ = prev.conn.Close()
	}
	c := &client{conn: conn}
	h.clients[userID] = c
	return c
}

// unregister drops the user's connection only if it is still the given one.
func (h *Hub) unregister(userID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if cur, ok := h.clients[userID]; ok && cur == c {
		delete(h.clients, userID)
	}
}

func (h *Hub) lookup(userID string) (*client, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.clients[userID]
	return c, ok
}

// Send pushes a message to the user if they are connected, dropping it
// otherwise. Delivery is at-most-once.
func (h *Hub) Send(userID string, m Msg) {
	c, ok := h.lookup(userID)
	if !ok {
		return
	}
	if err := c.write(m); err != nil {
		h.log.Debug().Str("user", userID).Str("type", m.Type).Err(err).Msg("ws: dropped message")
	}
}

// Connected reports whether the user has a live socket.
func (h *Hub) Connected(userID string) bool {
	_, ok := h.lookup(userID)
	return ok
}

func (h *Hub) MatchFound(userID, matchID string, opponent arena.Identity, isBot bool) {
	h.Send(userID, Msg{Type: "match_found", Data: map[string]any{
		"matchId":  matchID,
		"opponent": opponent,
		"isBot":    isBot,
	}})
}

func (h *Hub) RoundStart(userID string, kind arena.RoundKind, label string, round int) {
	h.Send(userID, Msg{Type: "round_start", Data: map[string]any{
		"kind":     kind,
		"opponent": label,
		"round":    round,
	}})
}

func (h *Hub) RoundResult(userID string, result arena.RoundResult) {
	h.Send(userID, Msg{Type: "round_result", Data: result})
}

func (h *Hub) RoundRejected(userID string, reason string) {
	h.Send(userID, Msg{Type: "round_error", Data: map[string]string{"reason": reason}})
}

func (h *Hub) PlayerHP(userID string, hp int) {
	h.Send(userID, Msg{Type: "hp_update", Data: map[string]int{"hp": hp}})
}

func (h *Hub) MatchEnd(userID string, winner string) {
	h.Send(userID, Msg{Type: "match_end", Data: map[string]string{"winner": winner}})
}

type inbound struct {
	Type string `json:"type"`
	Data struct {
		AllowBot bool `json:"allowBot"`
	} `json:"data"`
}

// HandleWS upgrades the connection and runs the read loop. Clients
// authenticate with a ?token= query parameter because browsers cannot set
// headers on websocket dials.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	claims, err := h.auth.VerifyToken(r.URL.Query().Get("token"))
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("ws: upgrade failed")
		return
	}

	userID := claims.Subject
	c := h.register(userID, conn)
	h.log.Info().Str("user", claims.Username).Msg("ws: connected")
	_ = c.write(Msg{Type: "you", Data: map[string]string{"id": userID, "username": claims.Username}})

	defer func() {
		h.unregister(userID, c)
		_ = conn.Close()
		h.queue.Disconnect(userID)
		h.log.Info().Str("user", claims.Username).Msg("ws: disconnected")
	}()

	for {
		var in inbound
		if err := conn.ReadJSON(&in); err != nil {
			return
		}
		switch in.Type {
		case "join_queue":
			pos := h.queue.Enqueue(userID, in.Data.AllowBot)
			h.Send(userID, Msg{Type: "queued", Data: map[string]int{"position": pos}})
		case "leave_queue":
			h.queue.Leave(userID)
			h.Send(userID, Msg{Type: "queue_left"})
		default:
			h.Send(userID, Msg{Type: "error", Data: map[string]string{"reason": "unknown message type: " + in.Type}})
		}
	}
}
