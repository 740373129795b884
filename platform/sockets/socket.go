package socket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/DedS3t/cashflow-backend/app/models"
	"github.com/DedS3t/cashflow-backend/platform/game"
	"github.com/DedS3t/cashflow-backend/platform/queries"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

// message is the payload every game event carries, sent as a JSON string.
type message struct {
	GameId   string `json:"game_id"`
	PlayerId int    `json:"player_id"`
	Roll     int    `json:"roll"`
}

func decode(jsonStr string) (message, error) {
	var m message
	if err := json.Unmarshal([]byte(jsonStr), &m); err != nil {
		return m, fmt.Errorf("decode message: %w", err)
	}
	if m.GameId == "" {
		return m, fmt.Errorf("decode message: game_id missing")
	}
	return m, nil
}

type Server struct {
	io    *socketio.Server
	games *game.Manager
	repo  queries.GameRepository
}

func NewServer(games *game.Manager, repo queries.GameRepository) (*Server, error) {
	io, err := socketio.NewServer(nil)
	if err != nil {
		return nil, fmt.Errorf("create socket.io server: %w", err)
	}
	s := &Server{io: io, games: games, repo: repo}
	s.register()
	return s, nil
}

// Broadcast pushes a game's state to everyone in its room.
func (s *Server) Broadcast(gameId string, state models.GameState) {
	payload, err := json.Marshal(state)
	if err != nil {
		log.WithError(err).WithField("game", gameId).Error("encode state")
		return
	}
	s.io.BroadcastToRoom("/", gameId, "state", string(payload))
	if state.GameOver {
		s.io.BroadcastToRoom("/", gameId, "game-over", queries.WinnerName(state))
	}
}

func (s *Server) fail(c socketio.Conn, msg string) {
	c.Emit("error-message", msg)
}

// session resolves the game a message refers to, reviving lobby games the
// process has no session for yet.
func (s *Server) session(m message) (*game.Session, bool) {
	if sess, err := s.games.Get(m.GameId); err == nil {
		return sess, true
	}
	if !s.repo.VerifyGame(m.GameId) {
		return nil, false
	}
	return s.games.Create(m.GameId), true
}

func (s *Server) register() {
	s.io.OnConnect("/", func(c socketio.Conn) error {
		c.SetContext("")
		return nil
	})

	s.io.OnEvent("/", "join-game", func(c socketio.Conn, jsonStr string) {
		m, err := decode(jsonStr)
		if err != nil {
			s.fail(c, err.Error())
			return
		}
		sess, ok := s.session(m)
		if !ok {
			s.fail(c, "Invalid game")
			c.Emit("failed")
			return
		}
		s.io.BroadcastToRoom("/", m.GameId, "player-join")
		c.Join(m.GameId)
		players := s.io.RoomLen("/", m.GameId)
		c.Emit("joined-game", strconv.Itoa(players))

		payload, _ := json.Marshal(sess.State())
		c.Emit("state", string(payload))
		log.WithFields(log.Fields{"conn": c.ID(), "game": m.GameId}).Debug("joined room")
	})

	s.io.OnEvent("/", "leave-game", func(c socketio.Conn, jsonStr string) {
		m, err := decode(jsonStr)
		if err != nil {
			s.fail(c, err.Error())
			return
		}
		c.Leave(m.GameId)
		s.io.BroadcastToRoom("/", m.GameId, "player-left")
	})

	s.io.OnEvent("/", "play-turn", func(c socketio.Conn, jsonStr string) {
		m, err := decode(jsonStr)
		if err != nil {
			s.fail(c, err.Error())
			return
		}
		sess, ok := s.session(m)
		if !ok {
			s.fail(c, "Invalid game")
			return
		}
		roll := m.Roll
		if roll == 0 {
			roll = sess.RollDice(1)
		}
		report, res := sess.PlayTurn(m.PlayerId, roll)
		if res != game.Ok {
			s.fail(c, res.String())
			return
		}
		payload, _ := json.Marshal(report)
		s.io.BroadcastToRoom("/", m.GameId, "turn", string(payload))
	})

	s.io.OnEvent("/", "draw-card", func(c socketio.Conn, jsonStr string) {
		m, err := decode(jsonStr)
		if err != nil {
			s.fail(c, err.Error())
			return
		}
		sess, ok := s.session(m)
		if !ok {
			s.fail(c, "Invalid game")
			return
		}
		card, ok := sess.DrawCard()
		if !ok {
			s.fail(c, "No cards left")
			return
		}
		payload, _ := json.Marshal(card)
		s.io.BroadcastToRoom("/", m.GameId, "card", string(payload))
	})

	s.io.OnEvent("/", "end-turn", func(c socketio.Conn, jsonStr string) {
		m, err := decode(jsonStr)
		if err != nil {
			s.fail(c, err.Error())
			return
		}
		sess, ok := s.session(m)
		if !ok {
			s.fail(c, "Invalid game")
			return
		}
		st, res := sess.EndTurn(m.PlayerId)
		if res != game.Ok {
			s.fail(c, res.String())
			return
		}
		if next, ok := st.CurrentPlayer(); ok {
			s.io.BroadcastToRoom("/", m.GameId, "change-turn", strconv.Itoa(next.Id))
		}
	})

	s.io.OnError("/", func(c socketio.Conn, e error) {
		log.WithError(e).Warn("socket error")
	})

	s.io.OnDisconnect("/", func(c socketio.Conn, reason string) {
		for _, room := range c.Rooms() {
			s.io.BroadcastToRoom("/", room, "player-left")
		}
		c.LeaveAll()
	})
}

// Handler is the socket.io endpoint wrapped in CORS for the given origins.
func (s *Server) Handler(origins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", s.io)
	return c.Handler(mux)
}

// ListenAndServe runs the socket.io loop and serves it on addr until the
// listener fails.
func (s *Server) ListenAndServe(addr string, origins []string) error {
	go func() {
		if err := s.io.Serve(); err != nil {
			log.WithError(err).Error("socket.io serve")
		}
	}()
	defer s.io.Close()

	log.WithField("addr", addr).Info("socket.io listening")
	return http.ListenAndServe(addr, s.Handler(origins))
}
