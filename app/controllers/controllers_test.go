package controllers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DedS3t/cashflow-backend/app/controllers"
	"github.com/DedS3t/cashflow-backend/app/models"
	"github.com/DedS3t/cashflow-backend/pkg/routes"
	"github.com/DedS3t/cashflow-backend/platform/catalog"
	"github.com/DedS3t/cashflow-backend/platform/game"
	"github.com/DedS3t/cashflow-backend/platform/queries"
	"github.com/DedS3t/cashflow-backend/platform/saves"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type actionResponse struct {
	Result string           `json:"result"`
	State  models.GameState `json:"state"`
}

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	store := saves.NewMemoryStore()
	manager := game.NewManager(catalog.Default(), func(id string) game.Saver {
		return saves.New(store, "test-"+id+":")
	})
	ctl := controllers.New(manager, queries.NewMemoryGameRepository())

	app := fiber.New(fiber.Config{ErrorHandler: controllers.ErrorHandler})
	routes.GameRoutes(app, ctl)
	routes.SaveRoutes(app, ctl)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

// startGame creates a two-player game from the job catalog and returns its id.
func startGame(t *testing.T, app *fiber.App) string {
	t.Helper()
	code, body := do(t, app, http.MethodPost, "/game/create", `{"name":"Friday night"}`)
	require.Equal(t, http.StatusOK, code)
	var created struct{ Id string }
	require.NoError(t, json.Unmarshal(body, &created))
	require.Len(t, created.Id, 8)

	code, _ = do(t, app, http.MethodPost, "/game/"+created.Id+"/initialize",
		`{"players":[{"name":"Ana","color":"Blue","job":"engineer"},{"name":"Ben","color":"Red","job":"teacher"}]}`)
	require.Equal(t, http.StatusOK, code)
	return created.Id
}

func action(t *testing.T, app *fiber.App, path, body string) (int, actionResponse) {
	t.Helper()
	code, out := do(t, app, http.MethodPost, path, body)
	var resp actionResponse
	require.NoError(t, json.Unmarshal(out, &resp), string(out))
	return code, resp
}

func TestCreateAndVerify(t *testing.T) {
	app := newApp(t)
	id := startGame(t, app)

	code, body := do(t, app, http.MethodGet, "/game/verify?code="+id, "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":true}`, string(body))

	_, body = do(t, app, http.MethodGet, "/game/verify?code=NOPE", "")
	assert.JSONEq(t, `{"status":false}`, string(body))

	code, _ = do(t, app, http.MethodPost, "/game/create", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestUnknownGame(t *testing.T) {
	app := newApp(t)
	code, body := do(t, app, http.MethodGet, "/game/missing/state", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, string(body), "game not found")
}

func TestInitializeFromJobs(t *testing.T) {
	app := newApp(t)
	id := startGame(t, app)

	code, body := do(t, app, http.MethodGet, "/game/"+id+"/state", "")
	require.Equal(t, http.StatusOK, code)
	var st models.GameState
	require.NoError(t, json.Unmarshal(body, &st))
	require.Len(t, st.Players, 2)
	assert.Equal(t, models.PhaseRatRace, st.Phase)
	assert.Equal(t, 350, st.Players[0].Cash)
	assert.Equal(t, 4900, st.Players[0].Income)
	assert.Equal(t, 2530, st.Players[0].Expenses)

	code, _ = do(t, app, http.MethodPost, "/game/"+id+"/initialize",
		`{"players":[{"name":"Cy","job":"astronaut"}]}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestPayday(t *testing.T) {
	app := newApp(t)
	id := startGame(t, app)

	code, resp := action(t, app, "/game/"+id+"/players/1/payday", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", resp.Result)
	assert.Equal(t, 350+4900-2530, resp.State.Players[0].Cash)

	code, resp = action(t, app, "/game/"+id+"/players/9/payday", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "player-not-found", resp.Result)
}

func TestDreamRefusedKeepsState(t *testing.T) {
	app := newApp(t)
	id := startGame(t, app)

	code, resp := action(t, app, "/game/"+id+"/players/1/dream", `{"dreamId":"villa"}`)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "insufficient-funds", resp.Result)
	assert.Equal(t, 350, resp.State.Players[0].Cash)
	assert.Nil(t, resp.State.Players[0].Dream)

	code, _ = do(t, app, http.MethodPost, "/game/"+id+"/players/1/dream", `{"dreamId":"moon"}`)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestBuyDeal(t *testing.T) {
	app := newApp(t)
	id := startGame(t, app)

	code, resp := action(t, app, "/game/"+id+"/players/1/deal", `{"cardId":"reS1"}`)
	require.Equal(t, http.StatusOK, code)
	p := resp.State.Players[0]
	require.Len(t, p.Assets, 1)
	require.Len(t, p.Liabilities, 1)
	assert.Equal(t, p.Liabilities[0].Id, p.Assets[0].Liability)
	assert.Equal(t, 350-2000, p.Cash)

	code, resp = action(t, app, "/game/"+id+"/players/1/deal", `{"cardId":"doodad1"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid-card", resp.Result)
}

func TestAddAssetValidation(t *testing.T) {
	app := newApp(t)
	id := startGame(t, app)

	code, _ := do(t, app, http.MethodPost, "/game/"+id+"/players/1/assets", `{"type":"yacht","name":"x","value":1}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, resp := action(t, app, "/game/"+id+"/players/1/assets", `{"type":"stock","name":"OK4U","value":400}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, -50, resp.State.Players[0].Cash)
	assert.NotEmpty(t, resp.State.Players[0].Assets[0].Id)
}

func TestMoveAndChecks(t *testing.T) {
	app := newApp(t)
	id := startGame(t, app)

	code, _ := do(t, app, http.MethodPost, "/game/"+id+"/players/1/move", `{"spaces":"three"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, resp := action(t, app, "/game/"+id+"/players/1/move", `{"spaces":5}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 5, resp.State.Players[0].Position)

	code, body := do(t, app, http.MethodPost, "/game/"+id+"/players/1/check/win", "")
	require.Equal(t, http.StatusOK, code)
	var check struct{ Result bool }
	require.NoError(t, json.Unmarshal(body, &check))
	assert.False(t, check.Result)
}

func TestSaves(t *testing.T) {
	app := newApp(t)
	id := startGame(t, app)

	_, body := do(t, app, http.MethodPost, "/game/"+id+"/saves/0", "")
	assert.JSONEq(t, `{"success":true}`, string(body))
	_, body = do(t, app, http.MethodPost, "/game/"+id+"/saves/7", "")
	assert.JSONEq(t, `{"success":false}`, string(body))

	_, body = do(t, app, http.MethodGet, "/game/"+id+"/saves", "")
	var summaries []models.SaveSummary
	require.NoError(t, json.Unmarshal(body, &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, []string{"Ana", "Ben"}, summaries[0].Players)

	action(t, app, "/game/"+id+"/players/1/payday", "")
	_, body = do(t, app, http.MethodPost, "/game/"+id+"/saves/0/load", "")
	assert.JSONEq(t, `{"success":true}`, string(body))

	_, body = do(t, app, http.MethodGet, "/game/"+id+"/state", "")
	var st models.GameState
	require.NoError(t, json.Unmarshal(body, &st))
	assert.Equal(t, 350, st.Players[0].Cash)

	_, body = do(t, app, http.MethodGet, "/game/"+id+"/autosave", "")
	assert.JSONEq(t, `{"exists":false}`, string(body))
}

func TestPlayTurnAutoSaves(t *testing.T) {
	app := newApp(t)
	id := startGame(t, app)

	code, body := do(t, app, http.MethodPost, "/game/"+id+"/players/1/turn", `{"roll":3}`)
	require.Equal(t, http.StatusOK, code)
	var resp struct {
		Result string
		Report game.TurnReport
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, 3, resp.Report.Roll)
	assert.Equal(t, 1, resp.Report.State.CurrentPlayerIndex)

	_, body = do(t, app, http.MethodGet, "/game/"+id+"/autosave", "")
	assert.JSONEq(t, `{"exists":true}`, string(body))
}

func TestPlayTurnOutOfTurnConflicts(t *testing.T) {
	app := newApp(t)
	id := startGame(t, app)

	code, body := do(t, app, http.MethodPost, "/game/"+id+"/players/2/turn", `{"roll":3}`)
	assert.Equal(t, http.StatusConflict, code)
	var resp struct {
		Result string
		Report game.TurnReport
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "not-your-turn", resp.Result)
	assert.Equal(t, 0, resp.Report.State.CurrentPlayerIndex)
	assert.Equal(t, 0, resp.Report.State.Players[1].Position)
}

func TestCatalogEndpoints(t *testing.T) {
	app := newApp(t)

	_, body := do(t, app, http.MethodGet, "/game/dreams?cash=300000", "")
	var dreams []models.Dream
	require.NoError(t, json.Unmarshal(body, &dreams))
	for _, d := range dreams {
		assert.LessOrEqual(t, d.Cost, 300000)
	}

	_, body = do(t, app, http.MethodGet, "/game/colors", "")
	assert.Contains(t, string(body), "#")

	_, body = do(t, app, http.MethodGet, "/game/jobs", "")
	assert.Contains(t, string(body), "Random Job")
}
