package game_test

import (
	"testing"

	"github.com/DedS3t/cashflow-backend/app/models"
	"github.com/DedS3t/cashflow-backend/platform/catalog"
	"github.com/DedS3t/cashflow-backend/platform/game"
	"github.com/DedS3t/cashflow-backend/platform/saves"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession() *game.Session {
	s := game.NewSession("g1", catalog.Default(), testRand(), saves.New(saves.NewMemoryStore(), "test-"))
	s.Initialize([]models.PlayerSetup{setup("Ana", "engineer"), setup("Ben", "teacher")})
	return s
}

func TestSessionApply(t *testing.T) {
	s := newSession()
	var seen []models.GameState
	s.OnChange(func(id string, st models.GameState) {
		assert.Equal(t, "g1", id)
		seen = append(seen, st)
	})

	st, res := s.Apply(func(st models.GameState) (models.GameState, game.Result) {
		return game.ProcessPayday(st, 1)
	})
	require.Equal(t, game.Ok, res)
	assert.Equal(t, 2720, player(st, 1).Cash)
	assert.Equal(t, st, s.State())
	assert.Len(t, seen, 1)

	_, res = s.Apply(func(st models.GameState) (models.GameState, game.Result) {
		return game.PurchaseDream(st, 1, models.Dream{Cost: 1000000})
	})
	assert.Equal(t, game.InsufficientFunds, res)
	assert.Len(t, seen, 1, "refused actions are not broadcast")
	assert.Equal(t, 2720, player(s.State(), 1).Cash)
}

func TestSessionCheck(t *testing.T) {
	s := newSession()
	s.Apply(func(st models.GameState) (models.GameState, game.Result) {
		return game.AddLiability(st, 1, models.Liability{Id: "l", Amount: 1000})
	})

	commits := 0
	s.OnChange(func(string, models.GameState) { commits++ })

	st, bankrupt := s.Check(game.CheckBankruptcy, 1)
	assert.True(t, bankrupt)
	assert.True(t, player(st, 1).IsBankrupt)
	assert.Equal(t, 1, commits)

	_, bankrupt = s.Check(game.CheckBankruptcy, 1)
	assert.True(t, bankrupt)
	_, won := s.Check(game.CheckWinCondition, 2)
	assert.False(t, won)
	assert.Equal(t, 1, commits, "checks that change nothing are not committed")
}

func TestSessionDrawCard(t *testing.T) {
	s := newSession()
	total := len(s.State().Deck)

	card, ok := s.DrawCard()
	require.True(t, ok)
	st := s.State()
	assert.Len(t, st.Deck, total-1)
	require.Len(t, st.DiscardedCards, 1)
	assert.Equal(t, card, st.DiscardedCards[0])
}

func TestSessionSaveAndLoad(t *testing.T) {
	s := newSession()
	require.True(t, s.Save(1))
	saved := s.State()

	s.NextPlayer()
	s.Apply(func(st models.GameState) (models.GameState, game.Result) { return game.ProcessChild(st, 2) })
	require.NotEqual(t, saved.CurrentPlayerIndex, s.State().CurrentPlayerIndex)

	require.True(t, s.Load(1))
	st := s.State()
	assert.Equal(t, saved.CurrentPlayerIndex, st.CurrentPlayerIndex)
	assert.Equal(t, 0, player(st, 2).Children)
	assert.NotEmpty(t, st.SavedAt)

	before := s.State()
	assert.False(t, s.Load(4))
	assert.Equal(t, before, s.State())

	list := s.ListSaves()
	require.Len(t, list, 1)
	assert.Equal(t, []string{"Ana", "Ben"}, list[0].Players)

	assert.True(t, s.DeleteSave(1))
	assert.Empty(t, s.ListSaves())
}

func TestSessionAutoSave(t *testing.T) {
	s := newSession()
	assert.False(t, s.HasAutoSave())
	assert.False(t, s.LoadAutoSave())

	require.True(t, s.AutoSave())
	assert.True(t, s.HasAutoSave())
	assert.True(t, s.LoadAutoSave())
}

func TestSessionReset(t *testing.T) {
	s := newSession()
	st := s.Reset()
	assert.Equal(t, models.PhaseSetup, st.Phase)
	assert.Empty(t, st.Players)
	assert.Len(t, st.Deck, len(catalog.Default().Cards()))
}

func TestPlayTurnOnPayday(t *testing.T) {
	s := newSession()

	report, res := s.PlayTurn(1, 5)
	require.Equal(t, game.Ok, res)
	assert.True(t, report.Payday)
	require.NotNil(t, report.Outcome)
	assert.Equal(t, models.SpacePayday, report.Outcome.Space.Type)
	assert.Equal(t, 2720, player(report.State, 1).Cash)
	assert.Equal(t, 5, player(report.State, 1).Position)
	assert.Equal(t, 1, report.State.CurrentPlayerIndex)
	assert.True(t, s.HasAutoSave())
}

func TestPlayTurnSkipsDownsizedPlayer(t *testing.T) {
	s := newSession()
	s.Apply(func(st models.GameState) (models.GameState, game.Result) { return game.ProcessDownsize(st, 1) })

	report, res := s.PlayTurn(1, 4)
	require.Equal(t, game.Ok, res)
	assert.True(t, report.Skipped)
	assert.Equal(t, 0, player(report.State, 1).Position)
	assert.Equal(t, 1, player(report.State, 1).DownsizedTurns)
}

func TestPlayTurnEntersFastTrack(t *testing.T) {
	s := newSession()
	s.Apply(func(st models.GameState) (models.GameState, game.Result) {
		return game.AddAsset(st, 1, models.Asset{Id: "biz", Type: models.AssetBusiness, Value: 0, Income: intPtr(3000)})
	})

	report, res := s.PlayTurn(1, 3)
	require.Equal(t, game.Ok, res)
	assert.True(t, report.FastTrack)
	p := player(report.State, 1)
	assert.True(t, p.FastTrack)
	assert.Equal(t, 0, p.Position)
	assert.Equal(t, 3000, p.PassiveIncome)
	assert.Equal(t, models.PhaseFastTrack, report.State.Phase)
}

func TestPlayTurnFastTrackWin(t *testing.T) {
	s := newSession()
	s.Apply(func(st models.GameState) (models.GameState, game.Result) {
		return withPlayer(st, 1, func(p *models.Player) {
			p.FastTrack = true
			p.PassiveIncome = 5000
			p.Position = 10
			p.Dream = &models.Dream{Id: "yacht"}
		}), game.Ok
	})

	report, res := s.PlayTurn(1, 4)
	require.Equal(t, game.Ok, res)
	assert.True(t, report.Payday)
	assert.True(t, report.Won)
	assert.Equal(t, 2, player(report.State, 1).Position)
	assert.Equal(t, 5350, player(report.State, 1).Cash)
	assert.True(t, report.State.GameOver)
	assert.Equal(t, 0, report.State.CurrentPlayerIndex, "turn does not pass after the game ends")

	_, res = s.PlayTurn(2, 3)
	assert.Equal(t, game.GameOver, res)
}

func TestPlayTurnOnlyForCurrentPlayer(t *testing.T) {
	s := newSession()
	s.Apply(func(st models.GameState) (models.GameState, game.Result) {
		st = withPlayer(st, 1, func(p *models.Player) { p.Cash = 100000 })
		return withPlayer(st, 2, func(p *models.Player) { p.Cash = 100000 }), game.Ok
	})
	before := s.State()

	report, res := s.PlayTurn(2, 1)
	assert.Equal(t, game.NotYourTurn, res)
	assert.Equal(t, before, report.State)
	assert.Equal(t, before, s.State())
	assert.False(t, s.HasAutoSave())

	_, res = s.PlayTurn(1, 1)
	require.Equal(t, game.Ok, res)
	_, res = s.PlayTurn(2, 2)
	require.Equal(t, game.Ok, res)
	_, res = s.PlayTurn(2, 2)
	assert.Equal(t, game.NotYourTurn, res)

	st := s.State()
	assert.Equal(t, 1, player(st, 1).Position)
	assert.Equal(t, 2, player(st, 2).Position)
	assert.Equal(t, 0, st.CurrentPlayerIndex)
	assert.Equal(t, 2, st.Turn)
}

func TestEndTurn(t *testing.T) {
	s := newSession()

	_, res := s.EndTurn(2)
	assert.Equal(t, game.NotYourTurn, res)
	assert.Equal(t, 0, s.State().CurrentPlayerIndex)

	st, res := s.EndTurn(1)
	require.Equal(t, game.Ok, res)
	assert.Equal(t, 1, st.CurrentPlayerIndex)
}

func TestPlayTurnUnknownPlayer(t *testing.T) {
	s := newSession()
	_, res := s.PlayTurn(8, 3)
	assert.Equal(t, game.PlayerNotFound, res)
}

func TestManager(t *testing.T) {
	m := game.NewManager(catalog.Default(), func(id string) game.Saver {
		return saves.New(saves.NewMemoryStore(), id+":")
	})
	changed := 0
	m.OnChange(func(string, models.GameState) { changed++ })

	_, err := m.Get("abc")
	assert.ErrorIs(t, err, game.ErrGameNotFound)

	s := m.Create("abc")
	assert.Same(t, s, m.Create("abc"))
	got, err := m.Get("abc")
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, 1, m.Len())
	assert.Same(t, catalog.Default(), m.Catalog())

	s.Initialize([]models.PlayerSetup{setup("Ana", "janitor")})
	assert.Equal(t, 1, changed)

	m.Delete("abc")
	_, err = m.Get("abc")
	assert.ErrorIs(t, err, game.ErrGameNotFound)
}
