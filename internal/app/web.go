// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/relabs-tech/accel_orientation/internal/config"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

const wsWriteTimeout = 2 * time.Second

// Hub pushes payloads to every connected websocket client.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	last    []byte
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

// ServeWS upgrades the request, sends the latest payload if there is one,
// and keeps the client registered until it disconnects.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("web: websocket upgrade error: %v", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	if h.last != nil {
		h.write(conn, h.last)
	}
	h.mu.Unlock()

	// clients only listen; reading detects the close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("web: websocket error: %v", err)
			}
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// Broadcast sends msg to all clients, dropping those that fail.
func (h *Hub) Broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = msg
	for conn := range h.clients {
		h.write(conn, msg)
	}
}

// write must be called with h.mu held.
func (h *Hub) write(conn *websocket.Conn, msg []byte) {
	conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		log.Printf("web: websocket write error: %v", err)
		delete(h.clients, conn)
		conn.Close()
	}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// WebServer serves the latest orientation over HTTP and websocket.
type WebServer struct {
	view      ReportView
	hub       *Hub
	staticDir string
}

func NewWebServer(staticDir string) *WebServer {
	return &WebServer{hub: NewHub(), staticDir: staticDir}
}

// HandleReport stores a report payload and pushes it to websocket clients.
func (s *WebServer) HandleReport(payload []byte) error {
	if err := s.view.HandleReport(payload); err != nil {
		return err
	}
	s.hub.Broadcast(payload)
	return nil
}

func (s *WebServer) HandleRaw(payload []byte) error {
	return s.view.HandleRaw(payload)
}

func (s *WebServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/orientation", func(w http.ResponseWriter, r *http.Request) {
		report, ok := s.view.Report()
		if !ok {
			http.Error(w, "no data yet", http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, report)
	})

	mux.HandleFunc("/api/accel/raw", func(w http.ResponseWriter, r *http.Request) {
		raw, ok := s.view.Raw()
		if !ok {
			http.Error(w, "no data yet", http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, raw)
	})

	mux.HandleFunc("/ws", s.hub.ServeWS)

	if s.staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))
	}
	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("web: json encode error: %v", err)
	}
}

// RunWeb subscribes to the producer topics and serves them on cfg.Web.Addr.
func RunWeb() error {
	cfg := config.Get()
	s := NewWebServer("web")

	client, err := connectMQTT("web", cfg.MQTT.Broker, cfg.MQTT.ClientIDWeb)
	if err != nil {
		return err
	}
	defer client.Disconnect(250)

	if err := subscribe(client, "web", cfg.Topics.Orientation, s.HandleReport); err != nil {
		return err
	}
	if cfg.Topics.AccelRaw != "" {
		if err := subscribe(client, "web", cfg.Topics.AccelRaw, s.HandleRaw); err != nil {
			return err
		}
	}

	log.Printf("web: server listening on %s", cfg.Web.Addr)
	return http.ListenAndServe(cfg.Web.Addr, s.Handler())
}
