package realtime

import (
	"encoding/json"
	"sync"

	log "github.com/sirupsen/logrus"
)

const (
	hubLogPrefix = "realtime"
	sendBuffer   = 256
)

// Event is the frame pushed to a live session
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// inbound is a frame sent by a live session
type inbound struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// HandlerFunc handles one inbound event of a session. It runs on the read
// loop of the session, so frames of a session are handled in order.
type HandlerFunc func(c *Client, data json.RawMessage)

// Hub keeps the live sessions of every connected user. A user may hold
// several sessions at once, one per device. Sessions may also join rooms.
type Hub struct {
	mutex   sync.RWMutex
	clients map[string]map[*Client]struct{}
	rooms   map[string]map[*Client]struct{}

	handlerLock sync.RWMutex
	handlers    map[string]HandlerFunc
}

func NewHub() *Hub {
	return &Hub{
		clients:  make(map[string]map[*Client]struct{}),
		rooms:    make(map[string]map[*Client]struct{}),
		handlers: make(map[string]HandlerFunc),
	}
}

// Handle registers the handler of an inbound event, replacing any previous one
func (h *Hub) Handle(event string, handler HandlerFunc) {
	h.handlerLock.Lock()
	defer h.handlerLock.Unlock()
	h.handlers[event] = handler
}

func (h *Hub) dispatch(c *Client, message inbound) {
	if message.Event == EventPing {
		h.reply(c, EventPong)
		return
	}

	h.handlerLock.RLock()
	handler, ok := h.handlers[message.Event]
	h.handlerLock.RUnlock()

	if !ok {
		log.WithFields(log.Fields{
			"prefix":    hubLogPrefix,
			"client_id": c.id,
			"event":     message.Event,
		}).Debug("no handler for inbound event")
		return
	}

	handler(c, message.Data)
}

// Join adds a registered session to a room
func (h *Hub) Join(c *Client, room string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[c.userID][c]; !ok {
		return
	}

	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]struct{})
	}
	h.rooms[room][c] = struct{}{}
	c.rooms[room] = struct{}{}
}

// Members returns the number of sessions in a room
func (h *Hub) Members(room string) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.rooms[room])
}

// Register adds a session of a user
func (h *Hub) Register(c *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.clients[c.userID] == nil {
		h.clients[c.userID] = make(map[*Client]struct{})
	}
	h.clients[c.userID][c] = struct{}{}

	log.WithFields(log.Fields{
		"prefix":    hubLogPrefix,
		"user_id":   c.userID,
		"client_id": c.id,
	}).Debug("client registered")
}

// Unregister removes a session and closes its send queue. Calling it twice
// for the same client is harmless.
func (h *Hub) Unregister(c *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	clients, ok := h.clients[c.userID]
	if !ok {
		return
	}
	if _, ok := clients[c]; !ok {
		return
	}

	delete(clients, c)
	close(c.send)
	if len(clients) == 0 {
		delete(h.clients, c.userID)
	}

	for room := range c.rooms {
		delete(h.rooms[room], c)
		if len(h.rooms[room]) == 0 {
			delete(h.rooms, room)
		}
	}

	log.WithFields(log.Fields{
		"prefix":    hubLogPrefix,
		"user_id":   c.userID,
		"client_id": c.id,
	}).Debug("client unregistered")
}

// IsOnline reports whether a user has at least one live session
func (h *Hub) IsOnline(userID string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.clients[userID]) > 0
}

// Sessions returns the number of live sessions
func (h *Hub) Sessions() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	n := 0
	for _, clients := range h.clients {
		n += len(clients)
	}
	return n
}

// PublishToUser queues an event to every session of one user. It never
// blocks, sessions that can not keep up are dropped.
func (h *Hub) PublishToUser(userID string, event string, payload interface{}) {
	message, ok := encode(event, payload)
	if !ok {
		return
	}

	h.mutex.RLock()
	slow := deliver(h.clients[userID], message)
	h.mutex.RUnlock()

	h.drop(slow)
}

// PublishBroadcast queues an event to every live session
func (h *Hub) PublishBroadcast(event string, payload interface{}) {
	message, ok := encode(event, payload)
	if !ok {
		return
	}

	slow := make([]*Client, 0)
	h.mutex.RLock()
	for _, clients := range h.clients {
		slow = append(slow, deliver(clients, message)...)
	}
	h.mutex.RUnlock()

	h.drop(slow)
}

// PublishToRoom queues an event to every session in a room
func (h *Hub) PublishToRoom(room string, event string, payload interface{}) {
	message, ok := encode(event, payload)
	if !ok {
		return
	}

	h.mutex.RLock()
	slow := deliver(h.rooms[room], message)
	h.mutex.RUnlock()

	h.drop(slow)
}

// PublishBroadcastFrom queues an event to every live session except the one
// it came from
func (h *Hub) PublishBroadcastFrom(sender *Client, event string, payload interface{}) {
	message, ok := encode(event, payload)
	if !ok {
		return
	}

	slow := make([]*Client, 0)
	h.mutex.RLock()
	for _, clients := range h.clients {
		for c := range clients {
			if c == sender {
				continue
			}
			select {
			case c.send <- message:
			default:
				slow = append(slow, c)
			}
		}
	}
	h.mutex.RUnlock()

	h.drop(slow)
}

// reply queues an event to a single session if it is still registered
func (h *Hub) reply(c *Client, event string) {
	message, ok := encode(event, nil)
	if !ok {
		return
	}

	h.mutex.RLock()
	var slow []*Client
	if _, ok := h.clients[c.userID][c]; ok {
		slow = deliver(map[*Client]struct{}{c: {}}, message)
	}
	h.mutex.RUnlock()

	h.drop(slow)
}

func (h *Hub) drop(clients []*Client) {
	for _, c := range clients {
		log.WithFields(log.Fields{
			"prefix":    hubLogPrefix,
			"user_id":   c.userID,
			"client_id": c.id,
		}).Warn("send queue is full, drop client")
		h.Unregister(c)
	}
}

// deliver must be called with the hub lock held
func deliver(clients map[*Client]struct{}, message []byte) []*Client {
	var slow []*Client
	for c := range clients {
		select {
		case c.send <- message:
		default:
			slow = append(slow, c)
		}
	}
	return slow
}

func encode(event string, payload interface{}) ([]byte, bool) {
	message, err := json.Marshal(Event{Event: event, Data: payload})
	if err != nil {
		log.WithField("prefix", hubLogPrefix).WithError(err).Errorf("marshal event %s", event)
		return nil, false
	}
	return message, true
}
