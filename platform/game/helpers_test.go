package game_test

import (
	"math/rand/v2"

	"github.com/DedS3t/cashflow-backend/app/models"
	"github.com/DedS3t/cashflow-backend/platform/catalog"
	"github.com/DedS3t/cashflow-backend/platform/game"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(3, 5))
}

func setup(name, job string) models.PlayerSetup {
	s, err := catalog.Default().NewPlayerSetup(name, "Blue", job, false)
	if err != nil {
		panic(err)
	}
	return s
}

// newGame seats Ana and Ben with catalog jobs.
func newGame() models.GameState {
	st := game.InitialState(catalog.Default(), testRand())
	return game.InitializeGame(st, []models.PlayerSetup{
		setup("Ana", "engineer"),
		setup("Ben", "teacher"),
	})
}

func withPlayer(st models.GameState, id int, fn func(p *models.Player)) models.GameState {
	p, _ := st.Player(id)
	p = p.Clone()
	fn(&p)
	return st.WithPlayer(p)
}

func player(st models.GameState, id int) models.Player {
	p, _ := st.Player(id)
	return p
}

func intPtr(v int) *int {
	return &v
}
