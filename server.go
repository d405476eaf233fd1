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

package blaze

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"net"
	"sync"

	liberr "github/sabouaram/blaze/errors"
	"github/sabouaram/blaze/binder"
	"github/sabouaram/blaze/dbpool"
	liblog "github/sabouaram/blaze/logger"
	"github/sabouaram/blaze/reactor"
	"github/sabouaram/blaze/router"
	"github/sabouaram/blaze/services"
	"github/sabouaram/blaze/session"
	"github/sabouaram/blaze/wsock"
)

// Server is the embeddable application server: a *router.Router plus the
// listener (reactor.Engine), the WebSocket hub, the DI registry and the
// named DB pools that a running instance needs around the router.
//
// Ground: LoginRadius-atreugo/types.go's Atreugo struct embeds *Router
// alongside its fasthttp.Server and Config; this embeds *router.Router
// alongside the reactor/wsock/services/dbpool state this module's stack
// needs instead of fasthttp's.
type Server struct {
	*router.Router

	cfg Config
	log liblog.Logger
	hub *wsock.Hub
	svc *services.Registry

	mu     sync.RWMutex
	engine *reactor.Engine
	dbs    map[string]*dbpool.Pool
}

// New builds a Server from cfg. It does not start listening; call Listen
// or ListenTLS once routes and services are registered.
func New(cfg Config) *Server {
	log := cfg.Logger
	if log == nil {
		log = liblog.New(nil)
		log.SetLevel(liblog.NilLevel)
	}

	return &Server{
		Router: router.New(log),
		cfg:    cfg,
		log:    log,
		hub:    wsock.NewHub(log, cfg.CheckOrigin),
		svc:    services.New(),
		dbs:    make(map[string]*dbpool.Pool),
	}
}

// Route binds fn's parameters via binder.Bind (using Services() as the
// binder.Resolver), then registers the resulting pipeline.Handler and its
// router.RouteDoc on the embedded Router — the reflection-aware sibling of
// the embedded Router.Register, which only accepts an already-built
// pipeline.Handler.
func (s *Server) Route(method, pattern string, fn any) error {
	handler, doc, err := binder.Bind(method, pattern, fn, s.svc)
	if err != nil {
		return newBindFailed(method, pattern, err)
	}
	s.Router.Register(method, pattern, handler)
	s.Router.AddDoc(doc)
	return nil
}

// GroupRoute mirrors Route for a route group: fn is bound the same way, then
// registered under g.
func (s *Server) GroupRoute(g *router.Group, method, pattern string, fn any) error {
	handler, doc, err := binder.Bind(method, pattern, fn, s.svc)
	if err != nil {
		return newBindFailed(method, pattern, err)
	}
	g.Register(method, pattern, handler)
	s.Router.AddDoc(doc)
	return nil
}

// WS registers a WebSocket endpoint at path. Connections negotiated there
// are handed off by the session layer before ever reaching the router.
func (s *Server) WS(path string, handlers wsock.Handlers, queue int) {
	s.hub.Register(path, handlers, queue)
}

// Broadcast sends message, JSON-encoded, to every session currently
// connected at path.
func (s *Server) Broadcast(path string, message any) error {
	return s.hub.Broadcast(path, message)
}

// Services returns the Server's DI registry, for Provide/ProvideValue/
// ProvideAutoWired calls made before Listen.
func (s *Server) Services() *services.Registry {
	return s.svc
}

// AddDB opens a named DB pool and makes it available through DB. Pools
// should be added before Listen; the registry itself is safe for
// concurrent use either way.
func (s *Server) AddDB(name string, cfg dbpool.Config) (*dbpool.Pool, error) {
	pool, err := dbpool.Open(cfg)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.dbs[name] = pool
	s.mu.Unlock()
	return pool, nil
}

// DB returns the pool registered under name, or nil if none was.
func (s *Server) DB(name string) *dbpool.Pool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dbs[name]
}

// OpenAPI renders the Router's aggregate RouteDoc set as indented JSON.
func (s *Server) OpenAPI() []byte {
	doc := struct {
		Routes []router.RouteDoc `json:"routes"`
	}{Routes: s.Router.Docs()}

	b, _ := json.MarshalIndent(doc, "", "  ")
	return b
}

// Listen opens the plain-TCP listener described by cfg.Reactor and serves
// connections until ctx is cancelled or Stop is called.
func (s *Server) Listen(ctx context.Context) liberr.Error {
	return s.listen(ctx, nil)
}

// ListenTLS loads certFile/keyFile and serves TLS connections over the
// same reactor.Engine machinery Listen uses, wrapping each accepted
// net.Conn in a *tls.Conn before handing it to the session layer.
func (s *Server) ListenTLS(ctx context.Context, certFile, keyFile string) liberr.Error {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return newTLSLoadErr(err)
	}

	tlsCfg := s.cfg.TLS
	if tlsCfg == nil {
		tlsCfg = &tls.Config{}
	} else {
		tlsCfg = tlsCfg.Clone()
	}
	tlsCfg.Certificates = []tls.Certificate{cert}
	return s.listen(ctx, tlsCfg)
}

func (s *Server) listen(ctx context.Context, tlsCfg *tls.Config) liberr.Error {
	s.mu.Lock()
	if s.engine != nil {
		s.mu.Unlock()
		return newAlreadyListening()
	}
	s.svc.MarkStarted()

	hdl := func(ctx context.Context, conn net.Conn) {
		if tlsCfg != nil {
			conn = tls.Server(conn, tlsCfg)
		}
		sess := session.New(conn, s.Router.Dispatch, s.cfg.Session, s.log)
		sess.SetUpgrade(s.hub.HandleUpgrade)
		sess.Serve(ctx)
	}

	s.engine = reactor.New(s.cfg.Reactor, hdl, s.log)
	s.mu.Unlock()

	return s.engine.Listen(ctx)
}

// Stop closes the listener and waits for in-flight connections to drain,
// per reactor.Engine.Stop. A Server that was never listened on is a no-op.
func (s *Server) Stop() {
	s.mu.RLock()
	e := s.engine
	s.mu.RUnlock()
	if e != nil {
		e.Stop()
	}
}

// ActiveConns returns the number of connections currently being served, or
// 0 if the server was never listened on.
func (s *Server) ActiveConns() int64 {
	s.mu.RLock()
	e := s.engine
	s.mu.RUnlock()
	if e == nil {
		return 0
	}
	return e.ActiveConns()
}
