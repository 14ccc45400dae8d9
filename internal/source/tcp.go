package source

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"sync"
)

// TCP accepts raw report streams over a TCP listener. It exists for
// development and testing against software report generators; there is no
// authentication, mirroring a local USB report pipe. Reports from all
// connections feed the same latest-wins key state.
type TCP struct {
	addr   string
	logger *slog.Logger

	mu        sync.Mutex
	ln        net.Listener
	conns     map[net.Conn]struct{}
	ready     chan struct{}
	readyOnce sync.Once
}

// NewTCP returns a TCP source listening on addr once Run is called.
func NewTCP(addr string, logger *slog.Logger) *TCP {
	return &TCP{
		addr:   addr,
		logger: logger,
		conns:  make(map[net.Conn]struct{}),
		ready:  make(chan struct{}),
	}
}

// Ready is closed once the listener is accepting connections.
func (s *TCP) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound listener address, or nil before Run.
func (s *TCP) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Run accepts connections and frames reports out of each one until the
// context is cancelled or the listener is closed.
func (s *TCP) Run(ctx context.Context, fn func(raw []byte)) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()
	s.readyOnce.Do(func() { close(s.ready) })

	s.logger.Info("listening for report streams", "addr", ln.Addr().String())

	var wg sync.WaitGroup
	for {
		conn, err := ln.Accept()
		if err != nil {
			wg.Wait()
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}

		s.mu.Lock()
		s.conns[conn] = struct{}{}
		s.mu.Unlock()

		wg.Add(1)
		go func() {
			defer wg.Done()
			remote := conn.RemoteAddr().String()
			s.logger.Info("report stream connected", "remote", remote)

			r := NewReader(conn, s.logger)
			if err := r.Run(ctx, fn); err != nil {
				s.logger.Warn("report stream failed", "remote", remote, "error", err)
			} else {
				s.logger.Info("report stream closed", "remote", remote)
			}

			s.mu.Lock()
			delete(s.conns, conn)
			s.mu.Unlock()
			_ = conn.Close()
		}()
	}
}

// Close shuts the listener and all active connections, unblocking Run.
func (s *TCP) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var err error
	if s.ln != nil {
		err = s.ln.Close()
	}
	for conn := range s.conns {
		_ = conn.Close()
	}
	return err
}
