package pkg

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

const spectatorWriteWait = 10 * time.Second

// Spectator serves a read-only view of one session over HTTP and WebSocket.
type Spectator struct {
	router   *mux.Router
	session  *Session
	upgrader websocket.Upgrader
}

// logWriter turns access log lines into log entries
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	logger.WithField("component", "spectate").Info(strings.TrimSpace(string(p)))
	return len(p), nil
}

func NewSpectator(s *Session) *Spectator {
	sp := &Spectator{
		router:  mux.NewRouter(),
		session: s,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	sp.router.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	sp.router.Use(func(next http.Handler) http.Handler {
		return handlers.CombinedLoggingHandler(logWriter{}, next)
	})
	sp.router.Use(handlers.RecoveryHandler())
	sp.router.HandleFunc("/session", sp.snapshotHandler).Methods(http.MethodGet)
	sp.router.HandleFunc("/session/ws", sp.wsHandler).Methods(http.MethodGet)
	return sp
}

func (sp *Spectator) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sp.router.ServeHTTP(w, r)
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Not Found", http.StatusNotFound)
}

func (sp *Spectator) current() MessageInterface {
	if !sp.session.Live() {
		return MessageClosed{Session: sp.session.Name}
	}
	return sp.session.Message()
}

func (sp *Spectator) snapshotHandler(w http.ResponseWriter, r *http.Request) {
	b, err := Wrap(sp.current())
	if err != nil {
		logger.WithError(err).Error("encoding snapshot")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(b)
}

func (sp *Spectator) wsHandler(w http.ResponseWriter, r *http.Request) {
	// subscribe before the first write so no interaction falls in between
	feed, cancel := sp.session.Subscribe()
	defer cancel()

	conn, err := sp.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied
		return
	}
	defer conn.Close()
	log := logger.WithField("remote", conn.RemoteAddr().String())
	log.Info("spectator joined")

	// spectators never send anything; reading only notices the close
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	send := func(m MessageInterface) bool {
		b, err := Wrap(m)
		if err != nil {
			log.WithError(err).Error("encoding message")
			return false
		}
		conn.SetWriteDeadline(time.Now().Add(spectatorWriteWait))
		if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
			log.WithError(err).Info("spectator write failed")
			return false
		}
		return true
	}

	closeFrame := func() {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"))
	}

	first := sp.current()
	if !send(first) {
		return
	}
	if _, closed := first.(MessageClosed); closed {
		closeFrame()
		return
	}
	for {
		select {
		case snap, ok := <-feed:
			if !ok {
				send(MessageClosed{Session: sp.session.Name})
				closeFrame()
				return
			}
			if !send(MessageSnapshot{Session: sp.session.Name, Players: sp.session.Players, Snapshot: snap}) {
				return
			}
		case <-gone:
			log.Info("spectator left")
			return
		}
	}
}

// NewSpectateServer wraps the spectator feed in an http.Server on addr
func NewSpectateServer(addr string, s *Session) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           NewSpectator(s),
		ReadHeaderTimeout: 5 * time.Second,
	}
}
