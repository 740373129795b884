package queries

import (
	"fmt"

	"github.com/DedS3t/cashflow-backend/app/models"
	"github.com/go-pg/pg/v10"
)

// GameRepository stores the lobby rows players use to find and join games.
type GameRepository interface {
	CreateGame(game *models.Game) error
	AvailableGames() ([]models.Game, error)
	VerifyGame(id string) bool
	SetStatus(id string, status string) error
	FinishGame(id string, winner string) error
}

type PgGameRepository struct {
	db *pg.DB
}

func NewPgGameRepository(db *pg.DB) *PgGameRepository {
	return &PgGameRepository{db: db}
}

func (r *PgGameRepository) CreateGame(game *models.Game) error {
	if _, err := r.db.Model(game).Insert(); err != nil {
		return fmt.Errorf("insert game %s: %w", game.Id, err)
	}
	return nil
}

func (r *PgGameRepository) AvailableGames() ([]models.Game, error) {
	var games []models.Game
	err := r.db.Model(&games).Where("status = ?", models.GameWaiting).Select()
	if err != nil {
		return nil, fmt.Errorf("select available games: %w", err)
	}
	return games, nil
}

func (r *PgGameRepository) VerifyGame(id string) bool {
	game := &models.Game{Id: id}
	err := r.db.Model(game).WherePK().Select()
	return err == nil
}

func (r *PgGameRepository) SetStatus(id string, status string) error {
	game := &models.Game{Id: id}
	_, err := r.db.Model(game).WherePK().Set("status = ?", status).Update()
	if err != nil {
		return fmt.Errorf("update game %s: %w", id, err)
	}
	return nil
}

func (r *PgGameRepository) FinishGame(id string, winner string) error {
	game := &models.Game{Id: id}
	_, err := r.db.Model(game).WherePK().
		Set("status = ?", models.GameFinished).
		Set("winner = ?", winner).
		Update()
	if err != nil {
		return fmt.Errorf("finish game %s: %w", id, err)
	}
	return nil
}
