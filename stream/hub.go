// Package stream broadcasts rendered frames to web browsers over WebSocket.
//
// A Hub is a mandel.FrameSink: every frame handed to it is encoded as PNG
// once and sent as a binary message to each connected client. Clients that
// fall behind are disconnected so a slow browser never stalls rendering.
package stream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/gogpu/mandel"
	intImage "github.com/gogpu/mandel/internal/image"
)

// Defaults for HubOption values.
const (
	DefaultBacklog      = 4
	DefaultWriteTimeout = 10 * time.Second
)

// ErrHubClosed is returned by WriteFrame after Close.
var ErrHubClosed = errors.New("stream: hub closed")

// HubOption configures a Hub during creation.
type HubOption func(*Hub)

// WithBacklog sets how many encoded frames may queue for a single client
// before it is dropped. Values below 1 are ignored.
func WithBacklog(n int) HubOption {
	return func(h *Hub) {
		if n > 0 {
			h.backlog = n
		}
	}
}

// WithWriteTimeout bounds the time spent sending one frame to one client.
func WithWriteTimeout(d time.Duration) HubOption {
	return func(h *Hub) {
		if d > 0 {
			h.writeTimeout = d
		}
	}
}

// WithOriginPatterns allows cross-origin clients whose Origin host matches
// one of the patterns. By default only same-origin pages may connect.
func WithOriginPatterns(patterns ...string) HubOption {
	return func(h *Hub) {
		h.origins = patterns
	}
}

// Hub fans frames out to WebSocket clients. It is safe for concurrent use.
type Hub struct {
	backlog      int
	writeTimeout time.Duration
	origins      []string

	mu      sync.Mutex
	clients map[*client]struct{}
	latest  []byte
	closed  bool
}

// client is one connected browser. frames is written by the hub and drained
// by the connection's handler goroutine.
type client struct {
	frames chan []byte
	gone   chan struct{}
	once   sync.Once
}

func (c *client) drop() {
	c.once.Do(func() { close(c.gone) })
}

// NewHub creates an empty Hub.
func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		backlog:      DefaultBacklog,
		writeTimeout: DefaultWriteTimeout,
		clients:      make(map[*client]struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// WriteFrame implements mandel.FrameSink. It encodes buf as PNG and queues it
// for every client without waiting for delivery. Clients whose queue is full
// are dropped. New clients receive the most recent frame on connect.
func (h *Hub) WriteFrame(index int, buf *mandel.PixelBuffer) error {
	var png bytes.Buffer
	if err := intImage.Encode(&png, buf.ToImage(), intImage.FormatPNG); err != nil {
		return fmt.Errorf("stream: frame %d: %w", index, err)
	}
	return h.broadcast(index, png.Bytes())
}

func (h *Hub) broadcast(index int, msg []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHubClosed
	}
	h.latest = msg

	for c := range h.clients {
		select {
		case c.frames <- msg:
		default:
			mandel.Logger().Warn("stream client dropped", "frame", index, "reason", "backlog full")
			delete(h.clients, c)
			c.drop()
		}
	}
	return nil
}

// ServeHTTP upgrades the request to a WebSocket and streams frames to it
// until the client goes away, falls behind, or the hub is closed.
// Messages from the client are discarded.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	opts := &websocket.AcceptOptions{OriginPatterns: h.origins}
	conn, err := websocket.Accept(w, r, opts)
	if err != nil {
		mandel.Logger().Debug("stream upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}

	c, ok := h.register()
	if !ok {
		_ = conn.Close(websocket.StatusTryAgainLater, "stream closed")
		return
	}
	defer h.unregister(c)

	log := mandel.Logger().With("remote", r.RemoteAddr)
	log.Debug("stream client connected")

	ctx := conn.CloseRead(r.Context())
	for {
		select {
		case <-ctx.Done():
			log.Debug("stream client disconnected")
			_ = conn.CloseNow()
			return
		case <-c.gone:
			_ = conn.Close(websocket.StatusPolicyViolation, "too slow")
			return
		case msg := <-c.frames:
			if err := h.send(ctx, conn, msg); err != nil {
				log.Debug("stream write failed", "err", err)
				_ = conn.CloseNow()
				return
			}
		}
	}
}

func (h *Hub) send(ctx context.Context, conn *websocket.Conn, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, h.writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageBinary, msg)
}

// register adds a client and primes it with the latest frame.
func (h *Hub) register() (*client, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, false
	}
	c := &client{
		frames: make(chan []byte, h.backlog),
		gone:   make(chan struct{}),
	}
	if h.latest != nil {
		c.frames <- h.latest
	}
	h.clients[c] = struct{}{}
	return c, true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

// Close disconnects every client and rejects later frames and connections.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		c.drop()
	}
}
