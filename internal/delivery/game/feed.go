package game

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"gogame/internal/domain/game"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// feedHub pushes game states to websocket watchers. All writes happen under
// mu, so a connection never sees two concurrent writers.
type feedHub struct {
	log   *zap.SugaredLogger
	mu    sync.Mutex
	conns map[string]map[*websocket.Conn]struct{}
}

func newFeedHub(log *zap.SugaredLogger) *feedHub {
	return &feedHub{log: log, conns: make(map[string]map[*websocket.Conn]struct{})}
}

// HandleFeed streams the game state to a websocket after every change. The
// current state is sent on connect.
func (g *GameHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	entry, ok := g.entry(w, r)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Errorw("upgrade error", "id", entry.ID, "error", err)
		return
	}

	entry.Lock()
	g.feeds.subscribe(entry.ID, conn, g.state(entry, ""))
	entry.Unlock()
	defer g.feeds.unsubscribe(entry.ID, conn)

	for {
		// Incoming messages are ignored; reading detects the close.
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				g.log.Warnw("feed read error", "id", entry.ID, "error", err)
			}
			return
		}
	}
}

func (h *feedHub) subscribe(id string, conn *websocket.Conn, initial game.State) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[id] == nil {
		h.conns[id] = make(map[*websocket.Conn]struct{})
	}
	h.conns[id][conn] = struct{}{}
	h.send(id, conn, initial)
}

func (h *feedHub) unsubscribe(id string, conn *websocket.Conn) {
	h.mu.Lock()
	h.drop(id, conn)
	h.mu.Unlock()
	_ = conn.Close()
}

func (h *feedHub) broadcast(id string, state game.State) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns[id] {
		h.send(id, conn, state)
	}
}

func (h *feedHub) closeAll(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns[id] {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "game deleted"),
			time.Now().Add(writeWait))
		_ = conn.Close()
	}
	delete(h.conns, id)
}

// send writes one state; a failed connection is dropped. mu must be held.
func (h *feedHub) send(id string, conn *websocket.Conn, state game.State) {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(state); err != nil {
		h.log.Warnw("feed write error", "id", id, "error", err)
		h.drop(id, conn)
		_ = conn.Close()
	}
}

func (h *feedHub) drop(id string, conn *websocket.Conn) {
	conns, ok := h.conns[id]
	if !ok {
		return
	}
	delete(conns, conn)
	if len(conns) == 0 {
		delete(h.conns, id)
	}
}
