package realtime

import (
	"encoding/json"
	"sync"

	"serenity-backend/utilities"
)

// MessageType names the event pushed to clients.
type MessageType string

const (
	MsgJournalSaved     MessageType = "journal_saved"
	MsgJournalDeleted   MessageType = "journal_deleted"
	MsgMoodCheckedIn    MessageType = "mood_checked_in"
	MsgMeditationLogged MessageType = "meditation_logged"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Connection is one open socket belonging to a user.
type Connection struct {
	UserID uint
	Send   chan []byte
}

type userMessage struct {
	userID uint
	data   []byte
}

// Hub fans messages out to every socket a user has open.
type Hub struct {
	conns map[uint]map[*Connection]struct{}
	mu    sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan userMessage
	done       chan struct{}
	closeOnce  sync.Once
}

// NewHub creates a hub and starts its run loop.
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[uint]map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan userMessage, 256),
		done:       make(chan struct{}),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.UserID] == nil {
				h.conns[conn.UserID] = make(map[*Connection]struct{})
			}
			h.conns[conn.UserID][conn] = struct{}{}
			h.mu.Unlock()
			utilities.Debug("user %d connected to realtime feed", conn.UserID)

		case conn := <-h.unregister:
			h.mu.Lock()
			h.remove(conn)
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.conns[msg.userID] {
				select {
				case conn.Send <- msg.data:
				default:
					// Slow consumer; drop the socket.
					h.remove(conn)
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for _, set := range h.conns {
				for conn := range set {
					close(conn.Send)
				}
			}
			h.conns = make(map[uint]map[*Connection]struct{})
			h.mu.Unlock()
			return
		}
	}
}

// remove must be called with mu held.
func (h *Hub) remove(conn *Connection) {
	set, ok := h.conns[conn.UserID]
	if !ok {
		return
	}
	if _, ok := set[conn]; !ok {
		return
	}
	delete(set, conn)
	close(conn.Send)
	if len(set) == 0 {
		delete(h.conns, conn.UserID)
	}
}

// Register adds conn to the hub.
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.done:
		close(conn.Send)
	}
}

// Unregister removes conn and closes its Send channel.
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// SendToUser queues a message for every socket userID has open.
func (h *Hub) SendToUser(userID uint, msgType MessageType, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	data, err := json.Marshal(Message{Type: msgType, Payload: raw})
	if err != nil {
		return err
	}
	select {
	case h.broadcast <- userMessage{userID: userID, data: data}:
	case <-h.done:
	}
	return nil
}

// Connections reports how many sockets userID has open.
func (h *Hub) Connections(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[userID])
}

// Subscribe forwards user-scoped bus events to connected clients.
func (h *Hub) Subscribe(bus *utilities.EventBus) {
	forward := func(t MessageType) utilities.EventHandler {
		return func(v interface{}) {
			ev, ok := v.(utilities.UserEvent)
			if !ok {
				return
			}
			if err := h.SendToUser(ev.UserID, t, ev.Data); err != nil {
				utilities.Warn("realtime: %s for user %d: %v", t, ev.UserID, err)
			}
		}
	}
	bus.Subscribe(utilities.EventJournalSaved, forward(MsgJournalSaved))
	bus.Subscribe(utilities.EventJournalDeleted, forward(MsgJournalDeleted))
	bus.Subscribe(utilities.EventMoodCheckedIn, forward(MsgMoodCheckedIn))
	bus.Subscribe(utilities.EventMeditationLogged, forward(MsgMeditationLogged))
}

// Close stops the run loop and closes every connection.
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}
