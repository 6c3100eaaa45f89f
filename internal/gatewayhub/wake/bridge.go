// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package wake

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
)

// ClusterExists reports whether the named ComputerCluster exists, so the
// bridge handler can 404 rather than open a socket for a cluster the
// orchestrator doesn't know about — matching original_source's bridge
// handler, which checks the cluster via the Kubernetes API before
// upgrading.
type ClusterExists func(ctx context.Context, namespace, name string) (bool, error)

// BridgeHandler serves GET /bridge/<namespace>/<cluster>: a WebSocket that
// streams the latest wake-command batch for that cluster, one JSON array
// per change, exactly mirroring the borrow_and_update/changed loop in
// original_source/controller/src/c2.rs.
type BridgeHandler struct {
	Broadcaster *Broadcaster
	Exists      ClusterExists
	Logger      *slog.Logger
	Upgrader    websocket.Upgrader
}

func NewBridgeHandler(b *Broadcaster, exists ClusterExists, logger *slog.Logger) *BridgeHandler {
	return &BridgeHandler{
		Broadcaster: b,
		Exists:      exists,
		Logger:      logger,
		Upgrader:    websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 1024},
	}
}

func (h *BridgeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	namespace, name, ok := parseBridgePath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if h.Exists != nil {
		exists, err := h.Exists(r.Context(), namespace, name)
		if err != nil {
			h.Logger.Error("failed to check cluster existence", "namespace", namespace, "name", name, "error", err)
			http.Error(w, "bad gateway", http.StatusBadGateway)
			return
		}
		if !exists {
			http.NotFound(w, r)
			return
		}
	}

	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Logger.Error("bridge websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	sub := h.Broadcaster.Subscribe(namespace, name)
	defer sub.Close()

	h.Logger.Info("command bridge subscriber connected", "namespace", namespace, "name", name)
	defer h.Logger.Info("command bridge subscriber disconnected", "namespace", namespace, "name", name)

	ctx := r.Context()
	for {
		commands, err := sub.Next(ctx)
		if err != nil {
			return
		}
		data, err := json.Marshal(commands)
		if err != nil {
			h.Logger.Error("failed to marshal wake commands", "error", err)
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}

// parseBridgePath splits "/bridge/<namespace>/<cluster>" into its two
// path segments.
func parseBridgePath(path string) (namespace, name string, ok bool) {
	const prefix = "/bridge/"
	if !strings.HasPrefix(path, prefix) {
		return "", "", false
	}
	rest := strings.TrimPrefix(path, prefix)
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
