package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grandline/autobattler/internal/auth"
)

type stubQueue struct {
	mu          sync.Mutex
	enqueued    []string
	allowBot    []bool
	left        []string
	disconnects []string
}

func (q *stubQueue) Enqueue(userID string, allowBot bool) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.enqueued = append(q.enqueued, userID)
	q.allowBot = append(q.allowBot, allowBot)
	return len(q.enqueued)
}

func (q *stubQueue) Leave(userID string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.left = append(q.left, userID)
}

func (q *stubQueue) Disconnect(userID string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.disconnects = append(q.disconnects, userID)
}

func (q *stubQueue) disconnectCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.disconnects)
}

func newTestHub(t *testing.T) (*Hub, *stubQueue, *httptest.Server, string) {
	t.Helper()
	authSvc := auth.NewService("test-secret")
	hub := NewHub(zerolog.Nop(), authSvc)
	queue := &stubQueue{}
	hub.BindQueue(queue)

	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWS))
	t.Cleanup(srv.Close)

	token, err := authSvc.IssueToken("user-1", "luffy")
	require.NoError(t, err)
	return hub, queue, srv, token
}

func dial(t *testing.T, srv *httptest.Server, token string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readMsg(t *testing.T, conn *websocket.Conn) Msg {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var m Msg
	require.NoError(t, conn.ReadJSON(&m))
	return m
}

func TestHandleWSRejectsBadToken(t *testing.T) {
	_, _, srv, _ := newTestHub(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?token=junk"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandleWSGreetsAndTracksConnection(t *testing.T) {
	hub, _, srv, token := newTestHub(t)
	conn := dial(t, srv, token)

	hello := readMsg(t, conn)
	assert.Equal(t, "you", hello.Type)
	assert.True(t, hub.Connected("user-1"))
	assert.False(t, hub.Connected("someone-else"))
}

func TestJoinAndLeaveQueue(t *testing.T) {
	_, queue, srv, token := newTestHub(t)
	conn := dial(t, srv, token)
	readMsg(t, conn) // greeting

	require.NoError(t, conn.WriteJSON(Msg{Type: "join_queue", Data: map[string]bool{"allowBot": true}}))
	queued := readMsg(t, conn)
	assert.Equal(t, "queued", queued.Type)
	assert.Equal(t, []string{"user-1"}, queue.enqueued)
	assert.Equal(t, []bool{true}, queue.allowBot)

	require.NoError(t, conn.WriteJSON(Msg{Type: "leave_queue"}))
	left := readMsg(t, conn)
	assert.Equal(t, "queue_left", left.Type)
	assert.Equal(t, []string{"user-1"}, queue.left)
}

func TestUnknownMessageType(t *testing.T) {
	_, _, srv, token := newTestHub(t)
	conn := dial(t, srv, token)
	readMsg(t, conn) // greeting

	require.NoError(t, conn.WriteJSON(Msg{Type: "dance"}))
	resp := readMsg(t, conn)
	assert.Equal(t, "error", resp.Type)
}

func TestDisconnectNotifiesQueue(t *testing.T) {
	hub, queue, srv, token := newTestHub(t)
	conn := dial(t, srv, token)
	readMsg(t, conn) // greeting

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool { return queue.disconnectCount() == 1 }, 2*time.Second, 5*time.Millisecond)
	assert.False(t, hub.Connected("user-1"))
}

func TestSendDropsWhenOffline(t *testing.T) {
	authSvc := auth.NewService("test-secret")
	hub := NewHub(zerolog.Nop(), authSvc)
	hub.BindQueue(&stubQueue{})

	// Must not panic or block with no connection registered.
	hub.Send("ghost", Msg{Type: "hp_update", Data: map[string]int{"hp": 10}})
	assert.False(t, hub.Connected("ghost"))
}
