// Package feed broadcasts committed game events to websocket subscribers.
package feed

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ZenRepublic/Clubhouse/internal/metrics"
	"github.com/ZenRepublic/Clubhouse/pkg/config"
	"github.com/ZenRepublic/Clubhouse/pkg/game"
)

type subscriber struct {
	conn *websocket.Conn
	// campaign filters the feed; the zero address receives every campaign.
	campaign common.Address
	send     chan []byte
	once     sync.Once
}

func (s *subscriber) wants(ev game.Event) bool {
	return s.campaign == (common.Address{}) || s.campaign == ev.Campaign
}

// Hub fans events out to connected subscribers. Slow subscribers lose events
// instead of blocking the publisher.
type Hub struct {
	cfg      config.FeedConfig
	logger   *zap.Logger
	upgrader websocket.Upgrader

	mu          sync.Mutex
	subscribers map[*subscriber]struct{}
}

// NewHub creates a hub using the feed config.
func NewHub(cfg config.FeedConfig, logger *zap.Logger) *Hub {
	return &Hub{
		cfg:    cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		subscribers: make(map[*subscriber]struct{}),
	}
}

// Publish queues ev for every matching subscriber.
func (h *Hub) Publish(ev game.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error("Failed to marshal feed event", zap.String("kind", string(ev.Kind)), zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subscribers {
		if !sub.wants(ev) {
			continue
		}
		select {
		case sub.send <- data:
		default:
			metrics.FeedDropped.Inc()
		}
	}
}

// Subscribers returns the number of connected clients.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Handle upgrades the request and streams events until the client goes away.
// An optional ?campaign=<address> query narrows the stream to one campaign.
func (h *Hub) Handle(w http.ResponseWriter, r *http.Request) {
	var filter common.Address
	if raw := r.URL.Query().Get("campaign"); raw != "" {
		if !common.IsHexAddress(raw) {
			http.Error(w, "invalid campaign address", http.StatusBadRequest)
			return
		}
		filter = common.HexToAddress(raw)
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Feed upgrade failed", zap.Error(err))
		return
	}

	sub := &subscriber{conn: conn, campaign: filter, send: make(chan []byte, h.cfg.BufferSize)}
	h.add(sub)
	go h.writeLoop(sub)
	h.readLoop(sub)
}

func (h *Hub) add(sub *subscriber) {
	h.mu.Lock()
	h.subscribers[sub] = struct{}{}
	n := len(h.subscribers)
	h.mu.Unlock()

	metrics.FeedSubscribers.Set(float64(n))
	h.logger.Debug("Feed subscriber connected",
		zap.String("campaign", sub.campaign.Hex()),
		zap.Int("subscribers", n))
}

// remove detaches sub and closes its connection. Safe to call more than once.
func (h *Hub) remove(sub *subscriber) {
	sub.once.Do(func() {
		h.mu.Lock()
		delete(h.subscribers, sub)
		n := len(h.subscribers)
		close(sub.send)
		h.mu.Unlock()

		metrics.FeedSubscribers.Set(float64(n))
		_ = sub.conn.Close()
	})
}

// readLoop drains client frames so control messages are processed.
func (h *Hub) readLoop(sub *subscriber) {
	defer h.remove(sub)
	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(sub *subscriber) {
	ticker := time.NewTicker(h.cfg.PingInterval)
	defer ticker.Stop()
	defer h.remove(sub)

	for {
		select {
		case data, ok := <-sub.send:
			if !ok {
				return
			}
			_ = sub.conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
			if err := sub.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				h.logger.Debug("Feed write failed", zap.Error(err))
				return
			}
		case <-ticker.C:
			_ = sub.conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
			if err := sub.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	subs := make([]*subscriber, 0, len(h.subscribers))
	for sub := range h.subscribers {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		_ = sub.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(h.cfg.WriteTimeout))
		h.remove(sub)
	}
}
