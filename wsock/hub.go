/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package wsock

import (
	"bufio"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github/sabouaram/blaze/httpcodec"
	liblog "github/sabouaram/blaze/logger"
)

// Handlers are the callbacks a registered endpoint runs as its sessions
// open, receive frames, and close — the Go shape of websocket.h's
// WebSocketHandlers (on_open/on_message/on_close).
type Handlers struct {
	OnOpen    func(c *Conn)
	OnMessage func(c *Conn, mt MessageType, data []byte)
	OnClose   func(c *Conn)
}

type endpoint struct {
	handlers Handlers
	queue    int

	mu    sync.RWMutex
	conns map[string]*Conn
}

// Hub owns every registered WebSocket endpoint and the session set for
// each. One Hub per server is typical; its HandleUpgrade method is wired
// in as a session.UpgradeFunc so a matching upgrade request on any
// registered path is handed off here instead of reaching the router.
type Hub struct {
	upgrader websocket.Upgrader
	log      liblog.Logger

	nextID atomic.Uint64

	mu        sync.RWMutex
	endpoints map[string]*endpoint
}

// NewHub builds an empty Hub. log may be nil. checkOrigin, if non-nil,
// overrides the upgrader's default same-origin-or-absent check (gorilla's
// zero-value Upgrader rejects cross-origin upgrades unless CheckOrigin is
// set); pass a permissive func for APIs that are deliberately public.
func NewHub(log liblog.Logger, checkOrigin func(r *http.Request) bool) *Hub {
	return &Hub{
		upgrader:  websocket.Upgrader{CheckOrigin: checkOrigin},
		log:       log,
		endpoints: make(map[string]*endpoint),
	}
}

// Register adds a WebSocket endpoint at path with the given handlers and
// per-session outbound queue depth (DefaultOutboundQueue if <= 0).
func (h *Hub) Register(path string, handlers Handlers, queue int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.endpoints[path] = &endpoint{
		handlers: handlers,
		queue:    queue,
		conns:    make(map[string]*Conn),
	}
}

// HandleUpgrade is a session.UpgradeFunc: it performs the handshake for an
// upgrade request whose path matches a registered endpoint and then runs
// that session's read loop until the peer closes or errors. A path with no
// registered endpoint is declined (false) so the caller's normal dispatch
// can answer 404.
func (h *Hub) HandleUpgrade(conn net.Conn, br *bufio.Reader, req *httpcodec.Request) bool {
	h.mu.RLock()
	ep, ok := h.endpoints[req.Path]
	h.mu.RUnlock()
	if !ok {
		return false
	}

	shim := newHijackShim(conn, br)
	httpReq := toHTTPRequest(conn, req)
	wsConn, err := h.upgrader.Upgrade(shim, httpReq, nil)
	if err != nil {
		if h.log != nil {
			h.log.Warning("websocket handshake failed", liblog.Fields{"path": req.Path, "error": err.Error()})
		}
		return true
	}

	c := newConn(h.nextSessionID(), req.Path, wsConn, h, ep.queue)
	ep.add(c)

	go c.writeLoop()
	go h.readLoop(ep, c)
	return true
}

func (h *Hub) nextSessionID() string {
	return strconv.FormatUint(h.nextID.Add(1), 10)
}

// readLoop is the session's sole reader, per gorilla/websocket's
// single-reader-goroutine rule. Pings are answered with a pong
// automatically by gorilla's default ping handler; close frames and
// read errors end the session.
func (h *Hub) readLoop(ep *endpoint, c *Conn) {
	if ep.handlers.OnOpen != nil {
		ep.handlers.OnOpen(c)
	}
	defer func() {
		c.Close()
		if ep.handlers.OnClose != nil {
			ep.handlers.OnClose(c)
		}
	}()

	for {
		mt, data, err := c.ws.ReadMessage()
		if err != nil {
			return
		}
		if ep.handlers.OnMessage != nil {
			ep.handlers.OnMessage(c, MessageType(mt), data)
		}
	}
}

func (ep *endpoint) add(c *Conn) {
	ep.mu.Lock()
	defer ep.mu.Unlock()
	ep.conns[c.ID] = c
}

func (ep *endpoint) remove(c *Conn) {
	ep.mu.Lock()
	defer ep.mu.Unlock()
	delete(ep.conns, c.ID)
}

func (h *Hub) remove(c *Conn) {
	h.mu.RLock()
	ep, ok := h.endpoints[c.Path]
	h.mu.RUnlock()
	if ok {
		ep.remove(c)
	}
}

// Broadcast serializes message to JSON once and enqueues it as a text
// frame on every currently open session at path, per §4.8. A session whose
// outbound queue is already full is closed with a policy-violation code
// instead of blocking the others.
func (h *Hub) Broadcast(path string, message any) error {
	body, err := json.Marshal(message)
	if err != nil {
		return err
	}
	h.mu.RLock()
	ep, ok := h.endpoints[path]
	h.mu.RUnlock()
	if !ok {
		return nil
	}

	ep.mu.RLock()
	targets := make([]*Conn, 0, len(ep.conns))
	for _, c := range ep.conns {
		targets = append(targets, c)
	}
	ep.mu.RUnlock()

	for _, c := range targets {
		c.send(outboundMsg{mt: Text, data: body})
	}
	return nil
}

// Sessions reports the number of currently open sessions at path.
func (h *Hub) Sessions(path string) int {
	h.mu.RLock()
	ep, ok := h.endpoints[path]
	h.mu.RUnlock()
	if !ok {
		return 0
	}
	ep.mu.RLock()
	defer ep.mu.RUnlock()
	return len(ep.conns)
}
