// Command server is a runnable demo collaborative-editing server: it
// accepts WebSocket connections per document, replays each new client up
// to the current revision, and applies every incoming edit through
// session.Document's transform-against-history reconciliation.
package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/otcore/collabtext/pkg/config"
	"github.com/otcore/collabtext/pkg/logger"
	"github.com/otcore/collabtext/pkg/ot"
	"github.com/otcore/collabtext/pkg/session"
	"github.com/otcore/collabtext/pkg/transport"
	"github.com/otcore/collabtext/pkg/wrapped"
)

var userColors = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A",
	"#9B59B6", "#E91E63", "#00BCD4", "#FF9800",
}

func main() {
	logger.Init()
	cfg := config.Load()
	manager := session.NewManager(cfg.MaxDocumentSize, cfg.IdleTimeout)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", handleWebSocket(manager, cfg))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	server := &http.Server{Addr: cfg.ListenAddr, Handler: mux}

	go reapLoop(manager, cfg.ReapInterval)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	logger.Info("listening on %s", cfg.ListenAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error: %v", err)
		os.Exit(1)
	}
}

func reapLoop(manager *session.Manager, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		if n := manager.Reap(); n > 0 {
			logger.Info("reaped %d idle document(s)", n)
		}
	}
}

func handleWebSocket(manager *session.Manager, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		docID := r.URL.Query().Get("doc")
		if docID == "" {
			docID = "default"
		}
		name := r.URL.Query().Get("name")
		if name == "" {
			name = "anon-" + uuid.NewString()[:8]
		}

		conn, err := transport.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Error("upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		doc := manager.Get(docID)
		clientID := doc.NextClientID()
		doc.SetUserInfo(clientID, transport.UserInfo{
			Name:  name,
			Color: userColors[rand.Intn(len(userColors))],
		})
		defer doc.RemoveUser(clientID)

		frames := doc.Subscribe(clientID, cfg.SubscriberBufferSize)

		if err := conn.WriteJSON(transport.ServerFrame{Type: transport.FrameIdentity, ID: clientID}); err != nil {
			logger.Error("identity send failed: %v", err)
			return
		}
		revision := doc.Revision()
		text := doc.Text()
		initial := wrapped.New(ot.New().Insert(text), nil)
		if err := conn.WriteJSON(transport.ServerFrame{
			Type:       transport.FrameHistory,
			Start:      revision,
			Operations: []*wrapped.Operation{initial},
		}); err != nil {
			logger.Error("initial snapshot send failed: %v", err)
			return
		}

		done := make(chan struct{})
		go writePump(conn, frames, done)
		readPump(conn, doc, clientID)
		close(done)
	}
}

func writePump(conn *websocket.Conn, frames <-chan *transport.ServerFrame, done <-chan struct{}) {
	for {
		select {
		case frame, ok := <-frames:
			if !ok {
				return
			}
			if err := conn.WriteJSON(frame); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func readPump(conn *websocket.Conn, doc *session.Document, clientID int) {
	for {
		var frame transport.ClientFrame
		if err := conn.ReadJSON(&frame); err != nil {
			return
		}

		switch frame.Type {
		case transport.FrameEdit:
			if frame.Operation == nil {
				continue
			}
			if _, err := doc.ApplyEdit(clientID, frame.Revision, frame.Operation); err != nil {
				logger.Error("apply edit from client %d failed: %v", clientID, err)
				return
			}
			conn.WriteJSON(transport.ServerFrame{Type: transport.FrameAck})
		case transport.FrameCursor:
			if frame.Data != nil {
				doc.SetCursor(clientID, *frame.Data)
			}
		}
	}
}
