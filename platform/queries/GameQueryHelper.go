package queries

import (
	"sync"

	"github.com/DedS3t/cashflow-backend/app/models"
	log "github.com/sirupsen/logrus"
)

type lobbyStatus struct {
	status string
	winner string
}

func statusOf(state models.GameState) lobbyStatus {
	switch {
	case state.GameOver:
		return lobbyStatus{status: models.GameFinished, winner: WinnerName(state)}
	case len(state.Players) > 0:
		return lobbyStatus{status: models.GameInProgress}
	default:
		return lobbyStatus{status: models.GameWaiting}
	}
}

// Recorder moves the lobby row along with the engine state. It writes only
// when the derived status changes, and writes synchronously so that the rows
// follow commit order; sessions already serialise commits per game.
type Recorder struct {
	repo GameRepository
	mu   sync.Mutex
	last map[string]lobbyStatus
}

func NewRecorder(repo GameRepository) *Recorder {
	return &Recorder{repo: repo, last: map[string]lobbyStatus{}}
}

// Record reports whether the repository was written.
func (r *Recorder) Record(id string, state models.GameState) bool {
	next := statusOf(state)
	r.mu.Lock()
	prev, seen := r.last[id]
	r.mu.Unlock()
	if seen && prev == next {
		return false
	}

	var err error
	if next.status == models.GameFinished {
		err = r.repo.FinishGame(id, next.winner)
	} else {
		err = r.repo.SetStatus(id, next.status)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		delete(r.last, id)
		log.WithError(err).WithField("game", id).Warn("lobby status not updated")
		return false
	}
	r.last[id] = next
	return true
}

func WinnerName(state models.GameState) string {
	if state.Winner == nil {
		return ""
	}
	if p, ok := state.Player(*state.Winner); ok {
		return p.Name
	}
	return ""
}
