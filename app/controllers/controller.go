package controllers

import (
	"errors"
	"strconv"

	"github.com/DedS3t/cashflow-backend/app/models"
	"github.com/DedS3t/cashflow-backend/platform/game"
	"github.com/DedS3t/cashflow-backend/platform/queries"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	Games    *game.Manager
	Repo     queries.GameRepository
	validate *validator.Validate
}

func New(games *game.Manager, repo queries.GameRepository) *Controller {
	return &Controller{
		Games:    games,
		Repo:     repo,
		validate: validator.New(),
	}
}

// session finds the running session for :id. A lobby game without a live
// session (fresh process, say) gets a new one in the setup phase.
func (ctl *Controller) session(c *fiber.Ctx) (*game.Session, error) {
	id := c.Params("id")
	s, err := ctl.Games.Get(id)
	if errors.Is(err, game.ErrGameNotFound) && ctl.Repo.VerifyGame(id) {
		return ctl.Games.Create(id), nil
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return s, nil
}

func playerParam(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("player"))
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid player id")
	}
	return id, nil
}

func slotParam(c *fiber.Ctx) (int, error) {
	slot, err := strconv.Atoi(c.Params("slot"))
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid slot")
	}
	return slot, nil
}

func (ctl *Controller) parse(c *fiber.Ctx, dto interface{}) error {
	if err := c.BodyParser(dto); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.validate.Struct(dto); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

func statusFor(res game.Result) int {
	switch res {
	case game.PlayerNotFound:
		return fiber.StatusNotFound
	case game.InsufficientFunds, game.GameOver, game.NotYourTurn:
		return fiber.StatusConflict
	case game.InvalidCard:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusOK
	}
}

func respond(c *fiber.Ctx, state models.GameState, res game.Result) error {
	return c.Status(statusFor(res)).JSON(fiber.Map{
		"result": res,
		"state":  state,
	})
}

// ErrorHandler renders fiber errors as {"error": message}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
