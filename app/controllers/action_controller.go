package controllers

import (
	"github.com/DedS3t/cashflow-backend/app/models"
	"github.com/DedS3t/cashflow-backend/platform/game"
	"github.com/gofiber/fiber/v2"
)

type playerAction func(s models.GameState, id int) (models.GameState, game.Result)

// runPlayerAction applies a handler that needs nothing but the player id.
func (ctl *Controller) runPlayerAction(action playerAction) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := ctl.session(c)
		if err != nil {
			return err
		}
		id, err := playerParam(c)
		if err != nil {
			return err
		}
		state, res := s.Apply(func(st models.GameState) (models.GameState, game.Result) {
			return action(st, id)
		})
		return respond(c, state, res)
	}
}

func (ctl *Controller) ProcessPayday() fiber.Handler {
	return ctl.runPlayerAction(game.ProcessPayday)
}

func (ctl *Controller) ProcessCharity() fiber.Handler {
	return ctl.runPlayerAction(game.ProcessCharity)
}

func (ctl *Controller) ProcessCharityBenefit() fiber.Handler {
	return ctl.runPlayerAction(game.ProcessCharityBenefit)
}

func (ctl *Controller) ProcessDownsize() fiber.Handler {
	return ctl.runPlayerAction(game.ProcessDownsize)
}

func (ctl *Controller) EndDownsize() fiber.Handler {
	return ctl.runPlayerAction(game.EndDownsize)
}

func (ctl *Controller) ProcessChild() fiber.Handler {
	return ctl.runPlayerAction(game.ProcessChild)
}

func (ctl *Controller) EnterFastTrack() fiber.Handler {
	return ctl.runPlayerAction(game.EnterFastTrack)
}

func (ctl *Controller) MovePlayer(c *fiber.Ctx) error {
	return ctl.move(c, game.MovePlayer)
}

func (ctl *Controller) MoveFastTrackPlayer(c *fiber.Ctx) error {
	return ctl.move(c, game.MoveFastTrackPlayer)
}

func (ctl *Controller) move(c *fiber.Ctx, mover func(models.GameState, int, int) (models.GameState, game.Result)) error {
	s, err := ctl.session(c)
	if err != nil {
		return err
	}
	id, err := playerParam(c)
	if err != nil {
		return err
	}
	dto := new(models.MoveDto)
	if err := ctl.parse(c, dto); err != nil {
		return err
	}
	state, res := s.Apply(func(st models.GameState) (models.GameState, game.Result) {
		return mover(st, id, dto.Spaces)
	})
	return respond(c, state, res)
}

func (ctl *Controller) ProcessFastTrackPayday(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return err
	}
	id, err := playerParam(c)
	if err != nil {
		return err
	}
	dto := &models.PaydayDto{Multiplier: 1}
	if len(c.Body()) > 0 {
		if err := ctl.parse(c, dto); err != nil {
			return err
		}
	}
	state, res := s.Apply(func(st models.GameState) (models.GameState, game.Result) {
		return game.ProcessFastTrackPayday(st, id, dto.Multiplier)
	})
	return respond(c, state, res)
}

func (ctl *Controller) AddAsset(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return err
	}
	id, err := playerParam(c)
	if err != nil {
		return err
	}
	dto := new(models.AssetDto)
	if err := ctl.parse(c, dto); err != nil {
		return err
	}
	asset := models.Asset{
		Id:     game.NewId(),
		Type:   dto.Type,
		Name:   dto.Name,
		Value:  dto.Value,
		Income: dto.Income,
	}
	state, res := s.Apply(func(st models.GameState) (models.GameState, game.Result) {
		return game.AddAsset(st, id, asset)
	})
	return respond(c, state, res)
}

func (ctl *Controller) AddLiability(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return err
	}
	id, err := playerParam(c)
	if err != nil {
		return err
	}
	dto := new(models.LiabilityDto)
	if err := ctl.parse(c, dto); err != nil {
		return err
	}
	liability := models.Liability{
		Id:      game.NewId(),
		Type:    dto.Type,
		Name:    dto.Name,
		Amount:  dto.Amount,
		Payment: dto.Payment,
	}
	state, res := s.Apply(func(st models.GameState) (models.GameState, game.Result) {
		return game.AddLiability(st, id, liability)
	})
	return respond(c, state, res)
}

func (ctl *Controller) PurchaseDream(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return err
	}
	id, err := playerParam(c)
	if err != nil {
		return err
	}
	dto := new(models.DreamDto)
	if err := ctl.parse(c, dto); err != nil {
		return err
	}
	dream, err := s.Catalog().DreamById(dto.DreamId)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	state, res := s.Apply(func(st models.GameState) (models.GameState, game.Result) {
		return game.PurchaseDream(st, id, dream)
	})
	return respond(c, state, res)
}

func (ctl *Controller) ApplyDoodad(c *fiber.Ctx) error {
	return ctl.cardAction(c, func(st models.GameState, id int, card models.Card, _ int) (models.GameState, game.Result) {
		return game.ApplyDoodad(st, id, card)
	})
}

func (ctl *Controller) BuyDeal(c *fiber.Ctx) error {
	return ctl.cardAction(c, game.BuyDeal)
}

func (ctl *Controller) cardAction(c *fiber.Ctx, action func(models.GameState, int, models.Card, int) (models.GameState, game.Result)) error {
	s, err := ctl.session(c)
	if err != nil {
		return err
	}
	id, err := playerParam(c)
	if err != nil {
		return err
	}
	dto := new(models.CardDto)
	if err := ctl.parse(c, dto); err != nil {
		return err
	}
	card, ok := s.Catalog().Card(dto.CardId)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "card not found")
	}
	state, res := s.Apply(func(st models.GameState) (models.GameState, game.Result) {
		return action(st, id, card, dto.Units)
	})
	return respond(c, state, res)
}

type check func(models.GameState, int) (models.GameState, bool)

func (ctl *Controller) runCheck(fn check) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := ctl.session(c)
		if err != nil {
			return err
		}
		id, err := playerParam(c)
		if err != nil {
			return err
		}
		state, ok := s.Check(fn, id)
		return c.JSON(fiber.Map{"result": ok, "state": state})
	}
}

func (ctl *Controller) CheckBankruptcy() fiber.Handler {
	return ctl.runCheck(game.CheckBankruptcy)
}

func (ctl *Controller) CheckFastTrackEligibility() fiber.Handler {
	return ctl.runCheck(game.CheckFastTrackEligibility)
}

func (ctl *Controller) CheckWinCondition() fiber.Handler {
	return ctl.runCheck(game.CheckWinCondition)
}

func (ctl *Controller) NextPlayer(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return err
	}
	return c.JSON(s.NextPlayer())
}

func (ctl *Controller) DrawCard(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return err
	}
	card, ok := s.DrawCard()
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "no cards left")
	}
	return c.JSON(card)
}

func (ctl *Controller) RollDice(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return err
	}
	n := 1
	if c.Query("dice") == "2" {
		n = 2
	}
	return c.JSON(fiber.Map{"roll": s.RollDice(n)})
}

// PlayTurn runs a whole turn for the player. Without a roll in the body the
// server rolls one die.
func (ctl *Controller) PlayTurn(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return err
	}
	id, err := playerParam(c)
	if err != nil {
		return err
	}
	dto := new(models.TurnDto)
	if len(c.Body()) > 0 {
		if err := ctl.parse(c, dto); err != nil {
			return err
		}
	}
	roll := dto.Roll
	if roll == 0 {
		roll = s.RollDice(1)
	}
	report, res := s.PlayTurn(id, roll)
	return c.Status(statusFor(res)).JSON(fiber.Map{"result": res, "report": report})
}
