// Package server owns the TCP front door: it accepts connections, gates
// each behind the shared password, and runs one game session per client.
// Every connection gets a reader goroutine that assembles raw bytes into
// lines and a single processor that hands them to the session strictly
// in arrival order, so a paste burst can never interleave half-handled
// commands.
package server

import (
	"context"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AsperforMias/cli-game/internal/dialogue"
	"github.com/AsperforMias/cli-game/internal/errors"
	"github.com/AsperforMias/cli-game/internal/game"
	"github.com/AsperforMias/cli-game/internal/store"
	"github.com/AsperforMias/cli-game/internal/ui"
	"github.com/AsperforMias/cli-game/internal/world"
)

const (
	// authTimeout bounds the whole password exchange so an idle probe
	// cannot hold a goroutine and a socket forever.
	authTimeout = 60 * time.Second

	readChunk = 512
)

// Server accepts connections and runs an authenticated game session on
// each until the player quits, the client disconnects, or the server
// shuts down.
type Server struct {
	addr     string
	password string
	attempts int
	queue    int
	seed     int64

	world    *world.World
	store    store.Store
	dialogue *dialogue.Service

	mu       sync.Mutex
	listener net.Listener
	wg       sync.WaitGroup
}

// New creates a server with defaults filled in.
func New(cfg *Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Server{
		addr:     cfg.Addr,
		password: cfg.Password,
		attempts: cfg.MaxAttempts,
		queue:    cfg.QueueSize,
		seed:     cfg.Seed,
		world:    cfg.World,
		store:    cfg.Store,
		dialogue: cfg.Dialogue,
	}
	if s.addr == "" {
		s.addr = DefaultAddr
	}
	if s.password == "" {
		s.password = DefaultPassword
	}
	if s.attempts <= 0 {
		s.attempts = defaultMaxAttempts
	}
	if s.queue <= 0 {
		s.queue = defaultQueueSize
	}
	return s, nil
}

// Addr returns the bound listen address, empty until Run binds one.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run listens and serves until ctx is cancelled. Cancellation closes
// the listener and waits for live sessions to flush their farewells.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", s.addr)
	}
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()
	slog.InfoContext(ctx, "server listening", "addr", ln.Addr().String())

	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				break
			}
			slog.ErrorContext(ctx, "accept failed", "error", err)
			continue
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConn(ctx, conn)
		}()
	}

	s.wg.Wait()
	slog.InfoContext(ctx, "server stopped")
	return nil
}

// handleConn runs one connection end to end: password gate, session
// setup, then the reader/processor pair until something ends the
// session. A quitting player gets the farewell from the session itself;
// every other exit path flushes one here before the close.
func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	id := uuid.New().String()
	slog.InfoContext(ctx, "client connected", "session", id, "remote", conn.RemoteAddr().String())

	out := ui.New(conn)
	asm := &assembler{}
	leftover, ok := s.authenticate(conn, out, asm)
	if !ok {
		slog.WarnContext(ctx, "authentication failed", "session", id, "remote", conn.RemoteAddr().String())
		return
	}

	sess, err := game.NewSession(game.SessionConfig{
		ID:       id,
		Output:   out,
		World:    s.world,
		Store:    s.store,
		Dialogue: s.dialogue,
		Seed:     s.seed,
	})
	if err != nil {
		slog.ErrorContext(ctx, "session setup failed", "session", id, "error", err)
		return
	}
	defer sess.Close()
	out.Prompt()

	quit := false
	for _, line := range leftover {
		if sess.HandleLine(ctx, line) {
			quit = true
			break
		}
		out.Prompt()
	}

	if !quit {
		lines := make(chan string, s.queue)
		done := make(chan struct{})
		go s.readLines(conn, asm, lines, done)
		quit = s.process(ctx, sess, out, lines)
		close(done)
	}
	if !quit {
		out.Farewell()
	}
	slog.InfoContext(ctx, "client disconnected", "session", id, "quit", quit)
}

// authenticate runs the password exchange under one deadline. Each
// wrong line burns an attempt. Lines that arrived in the same burst
// behind the correct password are returned so they are not lost.
func (s *Server) authenticate(conn net.Conn, out *ui.Renderer, asm *assembler) ([]string, bool) {
	_ = conn.SetReadDeadline(time.Now().Add(authTimeout))
	defer func() { _ = conn.SetReadDeadline(time.Time{}) }()

	out.Notice("Speak the password to enter.")
	out.Prompt()

	attempts := 0
	buf := make([]byte, readChunk)
	for {
		n, err := conn.Read(buf)
		batch := asm.feed(buf[:n])
		for i, line := range batch {
			if line == s.password {
				out.Blank()
				return batch[i+1:], true
			}
			attempts++
			if attempts >= s.attempts {
				out.Alert("The gate stays shut.")
				return nil, false
			}
			out.Alert("That is not the password.")
			out.Prompt()
		}
		if err != nil {
			return nil, false
		}
	}
}

// readLines pumps connection bytes through the assembler into the line
// queue. A full queue blocks here, which backs a paste flood up into
// the TCP window instead of dropping or reordering commands.
func (s *Server) readLines(conn net.Conn, asm *assembler, lines chan<- string, done <-chan struct{}) {
	defer close(lines)
	buf := make([]byte, readChunk)
	for {
		n, err := conn.Read(buf)
		for _, line := range asm.feed(buf[:n]) {
			select {
			case lines <- line:
			case <-done:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// process consumes lines strictly one at a time. It reports whether the
// player quit, as opposed to the connection dropping or the server
// shutting down.
func (s *Server) process(ctx context.Context, sess *game.Session, out *ui.Renderer, lines <-chan string) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case line, ok := <-lines:
			if !ok {
				return false
			}
			if sess.HandleLine(ctx, line) {
				return true
			}
			out.Prompt()
		}
	}
}
