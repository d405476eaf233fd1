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

package wsock_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github/sabouaram/blaze/httpcodec"
	"github/sabouaram/blaze/session"
	"github/sabouaram/blaze/wsock"
)

// notFound is the fallback session.Handler used when an upgrade is
// declined (unknown path): a plain 404, exercising the same path a
// router would take.
func notFound(ctx context.Context, req *httpcodec.Request) *httpcodec.Response {
	return &httpcodec.Response{
		StatusCode: 404,
		Header:     httpcodec.Header{"content-type": {"text/plain"}},
		Body:       nil,
		BodySize:   0,
	}
}

// listen starts a Hub-backed server on a fresh loopback port and returns
// its ws:// base URL.
func listen(t *testing.T, hub *wsock.Hub) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func() {
				s := session.New(conn, notFound, session.Config{}, nil)
				s.SetUpgrade(hub.HandleUpgrade)
				s.Serve(context.Background())
			}()
		}
	}()

	return "ws://" + ln.Addr().String()
}

func TestHubEchoesMessage(t *testing.T) {
	hub := wsock.NewHub(nil, nil)
	hub.Register("/chat", wsock.Handlers{
		OnMessage: func(c *wsock.Conn, mt wsock.MessageType, data []byte) {
			c.SendText("Echo: " + string(data))
		},
	}, 0)

	base := listen(t, hub)
	conn, _, err := websocket.DefaultDialer.Dial(base+"/chat", nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteMessage(websocket.TextMessage, []byte("Hello Blaze")); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	if string(data) != "Echo: Hello Blaze" {
		t.Fatalf("got %q, want %q", data, "Echo: Hello Blaze")
	}
}

func TestHubOpenAndCloseCallbacks(t *testing.T) {
	hub := wsock.NewHub(nil, nil)
	opened := make(chan struct{}, 1)
	closed := make(chan struct{}, 1)
	hub.Register("/chat", wsock.Handlers{
		OnOpen:  func(c *wsock.Conn) { opened <- struct{}{} },
		OnClose: func(c *wsock.Conn) { closed <- struct{}{} },
	}, 0)

	base := listen(t, hub)
	conn, _, err := websocket.DefaultDialer.Dial(base+"/chat", nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}

	select {
	case <-opened:
	case <-time.After(2 * time.Second):
		t.Fatalf("OnOpen never fired")
	}

	conn.Close()

	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatalf("OnClose never fired")
	}
}

func TestHubBroadcastReachesAllSessions(t *testing.T) {
	hub := wsock.NewHub(nil, nil)
	ready := make(chan struct{}, 2)
	hub.Register("/broadcast", wsock.Handlers{
		OnOpen: func(c *wsock.Conn) { ready <- struct{}{} },
	}, 0)

	base := listen(t, hub)
	c1, _, err := websocket.DefaultDialer.Dial(base+"/broadcast", nil)
	if err != nil {
		t.Fatalf("Dial c1: %v", err)
	}
	defer c1.Close()
	c2, _, err := websocket.DefaultDialer.Dial(base+"/broadcast", nil)
	if err != nil {
		t.Fatalf("Dial c2: %v", err)
	}
	defer c2.Close()

	for i := 0; i < 2; i++ {
		select {
		case <-ready:
		case <-time.After(2 * time.Second):
			t.Fatalf("both sessions never opened")
		}
	}

	if err := hub.Broadcast("/broadcast", "Global Alert"); err != nil {
		t.Fatalf("Broadcast: %v", err)
	}

	for _, c := range []*websocket.Conn{c1, c2} {
		_ = c.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := c.ReadMessage()
		if err != nil {
			t.Fatalf("ReadMessage: %v", err)
		}
		if string(data) != `"Global Alert"` {
			t.Fatalf("got %q, want %q", data, `"Global Alert"`)
		}
	}
}

func TestHubDeclinesUnregisteredPath(t *testing.T) {
	hub := wsock.NewHub(nil, nil)
	hub.Register("/chat", wsock.Handlers{}, 0)

	base := listen(t, hub)
	_, resp, err := websocket.DefaultDialer.Dial(base+"/unknown", nil)
	if err == nil {
		t.Fatalf("expected handshake to fail for an unregistered path")
	}
	if resp == nil || resp.StatusCode != 404 {
		t.Fatalf("expected a 404 handshake response, got %v", resp)
	}
}

func TestHubClosesSessionOnQueueOverflow(t *testing.T) {
	hub := wsock.NewHub(nil, nil)
	hub.Register("/flood", wsock.Handlers{}, 1)

	base := listen(t, hub)
	conn, _, err := websocket.DefaultDialer.Dial(base+"/flood", nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	// Give the session a moment to register before broadcasting without
	// ever draining the client's read side, so the bounded outbound queue
	// (depth 1) overflows.
	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 10; i++ {
		_ = hub.Broadcast("/flood", "flood")
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	sawClose := false
	for i := 0; i < 20; i++ {
		if _, _, err := conn.ReadMessage(); err != nil {
			if ce, ok := err.(*websocket.CloseError); ok && ce.Code == websocket.ClosePolicyViolation {
				sawClose = true
			}
			break
		}
	}
	if !sawClose {
		t.Fatalf("expected the session to close with a policy-violation code")
	}
}
