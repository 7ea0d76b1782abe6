package websockets

import (
	"sync"

	"envportal/config"
	"envportal/internal/database"
	"envportal/internal/events"
	"envportal/internal/logger"

	"github.com/gofiber/websocket/v2"
)

// Manager pushes bus events to connected admin dashboards. Connections are
// write-only from the server's perspective; the read loop exists to detect
// disconnects.
type Manager struct {
	log logger.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func New(db database.DB, eventBus *events.EventBus, config config.Config) (*Manager, error) {
	m := &Manager{
		log:   logger.New("websockets"),
		conns: make(map[*websocket.Conn]struct{}),
	}

	eventBus.Subscribe("admin", m.broadcast)

	return m, nil
}

func (m *Manager) HandleWebSocket(c *websocket.Conn) {
	m.mu.Lock()
	m.conns[c] = struct{}{}
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		delete(m.conns, c)
		m.mu.Unlock()
		_ = c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

func (m *Manager) broadcast(event events.Event) {
	log := m.log.Function("broadcast")

	m.mu.Lock()
	defer m.mu.Unlock()

	for conn := range m.conns {
		if err := conn.WriteJSON(event); err != nil {
			log.Er("failed to write event to connection", err)
			delete(m.conns, conn)
			_ = conn.Close()
		}
	}
}

// ConnectionCount reports active dashboard connections, for the health view.
func (m *Manager) ConnectionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.conns)
}
