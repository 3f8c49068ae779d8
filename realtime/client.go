package realtime

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Client is one live session of a user
type Client struct {
	id     string
	userID string
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte

	// guarded by the hub lock
	rooms map[string]struct{}
}

func newClient(hub *Hub, conn *websocket.Conn, userID string) *Client {
	return &Client{
		id:     uuid.New().String(),
		userID: userID,
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		rooms:  make(map[string]struct{}),
	}
}

// ID returns the session id
func (c *Client) ID() string {
	return c.id
}

// UserID returns the user owning the session
func (c *Client) UserID() string {
	return c.userID
}

// Serve registers an upgraded connection for a user and pumps events to it
// until the connection goes away
func (h *Hub) Serve(conn *websocket.Conn, userID string) *Client {
	c := newClient(h, conn, userID)
	h.Register(c)

	go c.writePump()
	go c.readPump()

	return c
}

// readPump hands inbound frames to the hub handlers until the connection
// goes away
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.WithField("prefix", hubLogPrefix).WithError(err).Warn("unexpected close")
			}
			return
		}

		var message inbound
		if err := json.Unmarshal(data, &message); err != nil {
			log.WithFields(log.Fields{
				"prefix":    hubLogPrefix,
				"client_id": c.id,
			}).WithError(err).Debug("drop malformed frame")
			continue
		}

		c.hub.dispatch(c, message)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
