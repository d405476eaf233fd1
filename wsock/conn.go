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
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// MessageType distinguishes a text frame from a binary one, mirroring
// gorilla/websocket's TextMessage/BinaryMessage constants without exposing
// the dependency in this package's own API.
type MessageType int

const (
	Text   MessageType = MessageType(websocket.TextMessage)
	Binary MessageType = MessageType(websocket.BinaryMessage)
)

// DefaultOutboundQueue is the per-session outbound queue depth used when a
// Hub is built with queue <= 0.
const DefaultOutboundQueue = 32

type outboundMsg struct {
	mt   MessageType
	data []byte
}

// Conn is one open WebSocket session: a path, a handle to the underlying
// frame stream, and a dedicated writer goroutine draining a bounded
// outbound queue so a slow peer can't stall anyone else's Send or
// Broadcast. Close it with Close; a full queue closes it automatically
// with a policy-violation (1008) code, per §4.8.
type Conn struct {
	ID   string
	Path string

	// UserData is free for the application's on_open handler to stash
	// anything it wants retrieved in on_message/on_close — the Go
	// equivalent of websocket.h's WebSocket::user_data.
	UserData any

	ws  *websocket.Conn
	hub *Hub

	out       chan outboundMsg
	closeOnce sync.Once
	done      chan struct{}
}

func newConn(id, path string, ws *websocket.Conn, hub *Hub, queue int) *Conn {
	if queue <= 0 {
		queue = DefaultOutboundQueue
	}
	c := &Conn{
		ID:   id,
		Path: path,
		ws:   ws,
		hub:  hub,
		out:  make(chan outboundMsg, queue),
		done: make(chan struct{}),
	}
	return c
}

// SendText enqueues a text frame. Non-blocking: if the outbound queue is
// full, the session is closed with a policy-violation code instead of
// blocking the caller (which could be a Broadcast reaching every open
// session on a path).
func (c *Conn) SendText(message string) {
	c.send(outboundMsg{mt: Text, data: []byte(message)})
}

// SendBinary enqueues a binary frame, same back-pressure rule as SendText.
func (c *Conn) SendBinary(data []byte) {
	c.send(outboundMsg{mt: Binary, data: data})
}

func (c *Conn) send(m outboundMsg) {
	select {
	case <-c.done:
		return
	default:
	}
	select {
	case c.out <- m:
	default:
		c.closePolicyViolation()
	}
}

// Close ends the session with the normal closure code and tears down the
// underlying connection.
func (c *Conn) Close() {
	c.closeWith(websocket.CloseNormalClosure, "")
}

func (c *Conn) closePolicyViolation() {
	c.closeWith(websocket.ClosePolicyViolation, "outbound queue overflow")
}

func (c *Conn) closeWith(code int, reason string) {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.ws.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), time.Now().Add(time.Second))
		_ = c.ws.Close()
		if c.hub != nil {
			c.hub.remove(c)
		}
	})
}

// writeLoop drains out onto the wire until done closes. It is the sole
// writer of c.ws, per gorilla/websocket's single-writer-goroutine rule.
func (c *Conn) writeLoop() {
	for {
		select {
		case <-c.done:
			return
		case m := <-c.out:
			if err := c.ws.WriteMessage(int(m.mt), m.data); err != nil {
				c.closeOnce.Do(func() {
					close(c.done)
					_ = c.ws.Close()
					if c.hub != nil {
						c.hub.remove(c)
					}
				})
				return
			}
		}
	}
}
