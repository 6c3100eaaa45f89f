// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package gatewayhub

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// handleLink serves GET /link/<computer_id>: the persistent WebSocket a
// computer holds open to receive RPCRequest envelopes and send back
// RPCResponse envelopes. Grounded on original_source's `listen` handler
// (mpsc outbound queue plus a tokio::select! read/write loop) and teacher
// server.go's handleConnection for the ping/pong heartbeat knobs.
func (s *Server) handleLink(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/link/")
	if id == "" {
		http.NotFound(w, r)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("link websocket upgrade failed", "computerID", id, "error", err)
		return
	}

	outbound := s.conns.Register(id)
	s.metrics.ListenerCount.Set(float64(s.conns.Count()))
	s.logger.Info("listener connected", "computerID", id)

	defer func() {
		s.conns.Unregister(id, outbound)
		s.metrics.ListenerCount.Set(float64(s.conns.Count()))
		_ = conn.Close()
		s.logger.Info("listener disconnected", "computerID", id)
	}()

	done := make(chan struct{})
	go s.linkReadLoop(conn, id, done)
	s.linkWriteLoop(conn, outbound, done)
}

// linkReadLoop handles inbound frames: RPCResponse envelopes get routed to
// the in-flight table, pings get a pong (gorilla answers pings
// automatically by default, but this keeps the heartbeat deadline logic
// explicit), and any read error tears down the connection via close(done).
func (s *Server) linkReadLoop(conn *websocket.Conn, id string, done chan struct{}) {
	defer close(done)

	conn.SetReadDeadline(time.Now().Add(s.cfg.HeartbeatTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(s.cfg.HeartbeatTimeout))
		return nil
	})

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		var resp RPCResponse
		if err := json.Unmarshal(data, &resp); err != nil {
			s.logger.Error("failed to deserialize rednet response envelope", "computerID", id, "error", err)
			return
		}

		if !s.inflight.Resolve(resp.RequestID, resp.Payload) {
			s.logger.Warn("received response for unknown request id", "requestID", resp.RequestID, "computerID", id)
		}
	}
}

// linkWriteLoop forwards outbound RPCRequest envelopes to the computer as
// JSON text frames and sends periodic pings, until done closes or a write
// fails.
func (s *Server) linkWriteLoop(conn *websocket.Conn, outbound <-chan RPCRequest, done <-chan struct{}) {
	ticker := time.NewTicker(s.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-outbound:
			if !ok {
				return
			}
			data, err := json.Marshal(msg)
			if err != nil {
				s.logger.Error("failed to serialize rednet request envelope", "error", err)
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
