package queries

import (
	"fmt"
	"sort"
	"sync"

	"github.com/DedS3t/cashflow-backend/app/models"
)

// MemoryGameRepository keeps lobby rows in process. Used when no
// database is configured.
type MemoryGameRepository struct {
	mu    sync.RWMutex
	games map[string]models.Game
}

func NewMemoryGameRepository() *MemoryGameRepository {
	return &MemoryGameRepository{games: map[string]models.Game{}}
}

func (r *MemoryGameRepository) CreateGame(game *models.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.games[game.Id]; ok {
		return fmt.Errorf("insert game %s: duplicate id", game.Id)
	}
	r.games[game.Id] = *game
	return nil
}

func (r *MemoryGameRepository) AvailableGames() ([]models.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	games := []models.Game{}
	for _, g := range r.games {
		if g.Status == models.GameWaiting {
			games = append(games, g)
		}
	}
	sort.Slice(games, func(i, j int) bool { return games[i].Id < games[j].Id })
	return games, nil
}

func (r *MemoryGameRepository) VerifyGame(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.games[id]
	return ok
}

func (r *MemoryGameRepository) SetStatus(id string, status string) error {
	return r.update(id, func(g *models.Game) { g.Status = status })
}

func (r *MemoryGameRepository) FinishGame(id string, winner string) error {
	return r.update(id, func(g *models.Game) {
		g.Status = models.GameFinished
		g.Winner = winner
	})
}

func (r *MemoryGameRepository) update(id string, fn func(g *models.Game)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.games[id]
	if !ok {
		return fmt.Errorf("update game %s: not found", id)
	}
	fn(&g)
	r.games[id] = g
	return nil
}
