package main

import (
	"errors"
	"fmt"
	"net"
)

// readBufferSize is a hard cap on the request size. A single read fills
// at most this many bytes; anything beyond it is silently truncated.
const readBufferSize = 3000

// Server owns the listening socket and runs one goroutine per accepted
// connection. Connections share nothing but the router's immutable route
// table.
type Server struct {
	addr    string
	backlog int
	router  *Router
}

func NewServer(addr string, backlog int, router *Router) *Server {
	return &Server{addr: addr, backlog: backlog, router: router}
}

// ListenAndServe binds the listening socket and runs the accept loop.
// Bind and listen failures are fatal; accept failures are logged and the
// loop continues. The OS backlog is managed by net.Listen; the
// configured value is recorded for the startup log only.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	defer ln.Close()
	logger.Info().
		Str("component", "server").
		Str("op", "ListenAndServe").
		Str("reason", "server start").
		Msgf("waiting for connections on %s (backlog %d)", s.addr, s.backlog)
	return s.Serve(ln)
}

// Serve accepts connections from ln until it is closed.
func (s *Server) Serve(ln net.Listener) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			logger.Error().
				Str("component", "server").
				Str("op", "Serve").
				Str("reason", "accept failed").
				Msgf("%v", err)
			continue
		}
		go s.handle(conn)
	}
}

// handle runs one request/response cycle and closes the connection. The
// whole request must arrive in a single read of the fixed buffer.
func (s *Server) handle(conn net.Conn) {
	defer conn.Close()
	logger.Info().
		Str("component", "server").
		Str("op", "handle").
		Str("reason", "connection established").
		Msgf("%s", conn.RemoteAddr())

	buf := make([]byte, readBufferSize)
	n, err := conn.Read(buf)
	if err != nil || n == 0 {
		logger.Warn().
			Str("component", "server").
			Str("op", "handle").
			Str("reason", "no data received").
			Msgf("read error: %v", err)
		return
	}

	var res *Response
	req, err := ParseRequest(buf[:n])
	if err != nil {
		logger.Warn().
			Str("component", "server").
			Str("op", "handle").
			Str("reason", "malformed request").
			Msgf("%v", err)
		res = ResponseBadRequest
	} else {
		res = s.router.Handle(req)
	}

	if err := WriteResponse(conn, res); err != nil {
		logger.Error().
			Str("component", "server").
			Str("op", "handle").
			Str("reason", "response write failed").
			Msgf("%v", err)
		return
	}
	logger.Info().
		Str("component", "server").
		Str("op", "handle").
		Str("reason", "response sent").
		Msgf("status=%d length=%d", res.Code, len(res.Body))
}
