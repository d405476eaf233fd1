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

package reactor_test

import (
	"bufio"
	"context"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github/sabouaram/blaze/reactor"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("reserve addr: %v", err)
	}
	addr := l.Addr().String()
	_ = l.Close()
	return addr
}

func TestEngineEchoesConnections(t *testing.T) {
	addr := freeAddr(t)

	var handled int64
	hdl := func(_ context.Context, conn net.Conn) {
		defer conn.Close()
		atomic.AddInt64(&handled, 1)

		r := bufio.NewReader(conn)
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		_, _ = conn.Write([]byte(line))
	}

	eng := reactor.New(reactor.Config{Addr: addr, Shards: 2}, hdl, nil)
	if err := eng.Listen(context.Background()); err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer eng.Stop()

	// give the accept loops a moment to start
	time.Sleep(10 * time.Millisecond)

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte("ping\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	buf := make([]byte, 5)
	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	if _, err := conn.Read(buf); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(buf) != "ping\n" {
		t.Fatalf("echo = %q, want %q", buf, "ping\n")
	}
}

func TestEngineListenTwiceFails(t *testing.T) {
	addr := freeAddr(t)
	eng := reactor.New(reactor.Config{Addr: addr}, func(context.Context, net.Conn) {}, nil)

	if err := eng.Listen(context.Background()); err != nil {
		t.Fatalf("first Listen: %v", err)
	}
	defer eng.Stop()

	if err := eng.Listen(context.Background()); err == nil {
		t.Fatalf("second Listen on a running engine should fail")
	}
}

func TestEngineStopDrainsActiveConnections(t *testing.T) {
	addr := freeAddr(t)

	release := make(chan struct{})
	started := make(chan struct{})
	hdl := func(_ context.Context, conn net.Conn) {
		defer conn.Close()
		close(started)
		<-release
	}

	eng := reactor.New(reactor.Config{Addr: addr, DrainTimeout: time.Second}, hdl, nil)
	if err := eng.Listen(context.Background()); err != nil {
		t.Fatalf("Listen: %v", err)
	}

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	<-started
	if eng.ActiveConns() != 1 {
		t.Fatalf("ActiveConns = %d, want 1", eng.ActiveConns())
	}

	stopped := make(chan struct{})
	go func() {
		eng.Stop()
		close(stopped)
	}()

	// Stop should block until the handler finishes.
	select {
	case <-stopped:
		t.Fatalf("Stop returned before the handler released its connection")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatalf("Stop did not return after the handler released its connection")
	}
}
