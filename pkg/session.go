package pkg

import (
	"sync"

	"github.com/apex/log"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/qnkhuat/hotseat/pkg/engine"
	"github.com/qnkhuat/hotseat/pkg/gui"
)

const SubscriberQueueSize = 8

// Session wraps one engine with the players sharing it. All access to the
// engine goes through the session lock, so the terminal and spectators can
// read while the players click.
type Session struct {
	Name    string
	Players [2]Player

	mu      sync.Mutex
	engine  *engine.Engine
	subs    map[int]chan engine.Snapshot
	nextSub int
	log     log.Interface
}

// NewSession starts a game from the standard layout. An empty name gets a
// generated one.
func NewSession(name string, players [2]Player) *Session {
	if name == "" {
		name = petname.Generate(2, "-")
	}
	s := &Session{
		Name:    name,
		Players: players,
		engine:  engine.New(),
		subs:    make(map[int]chan engine.Snapshot),
	}
	s.log = logger.WithFields(log.Fields{
		"session": name,
		"white":   players[0].Name,
		"black":   players[1].Name,
	})
	s.log.Info("session started")
	return s
}

// Interact applies one square click and publishes the resulting snapshot.
func (s *Session) Interact(sq engine.Square) engine.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.engine.Snapshot()
	snap := s.engine.ApplyInteraction(sq)
	// a committed move always hands the turn over
	if before.Turn != snap.Turn {
		s.logCommit(snap)
	}
	s.publish(snap)
	return snap
}

func (s *Session) logCommit(snap engine.Snapshot) {
	p, _ := snap.PieceAt(snap.LastMove.To)
	entry := s.log.WithFields(log.Fields{
		"from":  snap.LastMove.From.Algebraic(),
		"to":    snap.LastMove.To.Algebraic(),
		"piece": p.Kind,
		"color": p.Color,
	})
	entry.Info("move")
	if debugEnabled() {
		entry.Debug(gui.Diagram(snap))
	}

	switch {
	case snap.Result != nil:
		s.log.WithField("winner", snap.Result.Winner).Info("checkmate")
	case snap.Check.Of(snap.Turn):
		s.log.WithField("color", snap.Turn).Info("check")
	}
}

// Destinations is the legal destination query for the side to move.
func (s *Session) Destinations(sq engine.Square) engine.SquareSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.LegalDestinations(sq)
}

func (s *Session) Snapshot() engine.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Snapshot()
}

// Message is the spectator view of the session.
func (s *Session) Message() MessageSnapshot {
	return MessageSnapshot{Session: s.Name, Players: s.Players, Snapshot: s.Snapshot()}
}

// Reset starts a new game in the same session.
func (s *Session) Reset() engine.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Reset()
	snap := s.engine.Snapshot()
	s.log.Info("new game")
	s.publish(snap)
	return snap
}

// Close ends the session and releases every subscriber.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.engine.Live() {
		return
	}
	s.engine.EndSession()
	for id, ch := range s.subs {
		close(ch)
		delete(s.subs, id)
	}
	s.log.Info("session closed")
}

func (s *Session) Live() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Live()
}

// Subscribe returns a feed of snapshots, one per interaction, and a function
// that cancels it. A subscriber that falls behind misses snapshots rather than
// blocking the players. The channel is closed when the session closes.
func (s *Session) Subscribe() (<-chan engine.Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan engine.Snapshot, SubscriberQueueSize)
	if !s.engine.Live() {
		close(ch)
		return ch, func() {}
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if _, ok := s.subs[id]; ok {
				close(ch)
				delete(s.subs, id)
			}
		})
	}
	return ch, cancel
}

// publish must be called with s.mu held
func (s *Session) publish(snap engine.Snapshot) {
	for id, ch := range s.subs {
		select {
		case ch <- snap:
		default:
			s.log.WithField("subscriber", id).Debug("subscriber is behind, dropping snapshot")
		}
	}
}
