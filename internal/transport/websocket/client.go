package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ninjamadeena/XO-Online/pkg/proto"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = 25 * time.Second

	// Maximum message size allowed from peer.
	maxMessageSize = 1024

	sendBufferSize = 32
)

// client is one connected player. It owns the socket: readPump is the only
// reader and writePump the only writer.
type client struct {
	logger *slog.Logger

	id   string
	conn *websocket.Conn
	send chan []byte
	done chan struct{}

	closeOnce sync.Once
	connected atomic.Bool
}

func newClient(logger *slog.Logger, id string, conn *websocket.Conn) *client {
	that := &client{
		logger: logger.With("component", "ws-client", "session", id),
		id:     id,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
	}
	that.connected.Store(true)

	return that
}

func (that *client) ID() string { return that.id }

func (that *client) Connected() bool { return that.connected.Load() }

// Send - queues a message for the peer. It never blocks: a peer whose send
// buffer is full is too far behind to be worth stalling the whole match for.
func (that *client) Send(action string, payload any) {
	if !that.connected.Load() {
		return
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		that.logger.Error("failed to marshal payload", "action", action, "error", err)
		return
	}

	message, err := json.Marshal(proto.Message{Action: action, Payload: raw})
	if err != nil {
		that.logger.Error("failed to marshal message", "action", action, "error", err)
		return
	}

	select {
	case that.send <- message:
	default:
		that.logger.Warn("send buffer full, dropping message", "action", action)
	}
}

// close marks the client dead and releases the write pump. The send channel
// is never closed so a concurrent Send can never panic. Safe to call more
// than once.
func (that *client) close() {
	that.closeOnce.Do(func() {
		that.connected.Store(false)
		close(that.done)
	})
}

// writePump drains the send channel onto the socket and keeps the connection
// alive with periodic pings.
func (that *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = that.conn.Close()
	}()

	for {
		select {
		case message := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-that.done:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = that.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
