/*
   Line-oriented remote debug listener.

   Permission is hereby granted, free of charge, to any person obtaining a
   copy of this software and associated documentation files (the "Software"),
   to deal in the Software without restriction, including without limitation
   the rights to use, copy, modify, merge, publish, distribute, sublicense,
   and/or sell copies of the Software, and to permit persons to whom the
   Software is furnished to do so, subject to the following conditions:

   The above copyright notice and this permission notice shall be included in
   all copies or substantial portions of the Software.

   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.

*/

// Package remote exposes the same command language the interactive console
// speaks over a TCP socket, one command per line, so a debugger front end
// can drive the core without a local terminal. Only error messages are
// written back to the connection; a command's normal output goes to the
// server process's standard output.
package remote

import (
	"bufio"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/ps2emu/eecore/command/command"
	"github.com/ps2emu/eecore/command/parser"
)

// Server accepts connections on a single listening socket and serves the
// command language to each of them concurrently.
type Server struct {
	wg       sync.WaitGroup
	listener net.Listener
	shutdown chan struct{}
	ctx      *command.Context
	port     string
}

// New creates a Server bound to port (e.g. "1234") that will dispatch
// commands against ctx. Commands mutate shared CPU state, so concurrent
// connections interleave arbitrarily, the same as typing at two terminals
// attached to one machine.
func New(port string, ctx *command.Context) *Server {
	return &Server{
		shutdown: make(chan struct{}),
		ctx:      ctx,
		port:     port,
	}
}

// Start begins listening and returns once the socket is bound. Connections
// are served in background goroutines until Stop is called.
func (s *Server) Start() error {
	l, err := net.Listen("tcp", ":"+s.port)
	if err != nil {
		return err
	}
	s.listener = l
	slog.Info("remote: listening", "port", s.port)

	s.wg.Add(1)
	go s.acceptConnections()
	return nil
}

// Stop closes the listener and waits for in-flight connections to drain,
// giving up after a second the way the core's runner does.
func (s *Server) Stop() {
	close(s.shutdown)
	if s.listener != nil {
		s.listener.Close()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		slog.Warn("remote: timeout waiting for connections to close")
	}
}

func (s *Server) acceptConnections() {
	defer s.wg.Done()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.shutdown:
				return
			default:
				slog.Error("remote: accept error", "error", err)
				return
			}
		}
		s.wg.Add(1)
		go s.handleConnection(conn)
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := scanner.Text()
		quit, err := parser.ProcessCommand(line, s.ctx)
		if err != nil {
			io.WriteString(conn, "error: "+err.Error()+"\n")
			continue
		}
		if quit {
			return
		}
	}
}
