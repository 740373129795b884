package controllers

import (
	"strconv"

	"github.com/DedS3t/cashflow-backend/app/models"
	"github.com/DedS3t/cashflow-backend/pkg/utils"
	"github.com/DedS3t/cashflow-backend/platform/catalog"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func (ctl *Controller) CreateGame(c *fiber.Ctx) error {
	gameCreateDto := new(models.GameCreateDto)
	if err := ctl.parse(c, gameCreateDto); err != nil {
		return err
	}

	game := &models.Game{
		Id:     utils.RandString(8),
		Name:   gameCreateDto.Name,
		Status: models.GameWaiting,
		Type:   gameCreateDto.Type,
	}

	if err := ctl.Repo.CreateGame(game); err != nil {
		log.WithError(err).Error("create game failed")
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	ctl.Games.Create(game.Id)

	return c.JSON(fiber.Map{"id": game.Id})
}

func (ctl *Controller) GetAllAvailGames(c *fiber.Ctx) error {
	games, err := ctl.Repo.AvailableGames()
	if err != nil {
		log.WithError(err).Error("list games failed")
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(games)
}

func (ctl *Controller) VerifyGame(c *fiber.Ctx) error {
	verifyGameDto := new(models.VerifyGameDto)
	if err := c.QueryParser(verifyGameDto); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"status": ctl.Repo.VerifyGame(verifyGameDto.Code)})
}

func (ctl *Controller) GetJobs(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"jobs":         ctl.Games.Catalog().Jobs(),
		"displayNames": ctl.Games.Catalog().JobDisplayNames(),
	})
}

func (ctl *Controller) GetDreams(c *fiber.Ctx) error {
	if cash := c.Query("cash"); cash != "" {
		amount, err := strconv.Atoi(cash)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid cash")
		}
		return c.JSON(ctl.Games.Catalog().AffordableDreams(amount))
	}
	return c.JSON(ctl.Games.Catalog().Dreams())
}

func (ctl *Controller) GetColors(c *fiber.Ctx) error {
	colors := fiber.Map{}
	for _, name := range catalog.Colors() {
		colors[name] = catalog.ColorHex(name)
	}
	return c.JSON(colors)
}

// InitializeGame seats the players. A player given only a job id gets the
// job's salary, expenses and savings from the catalog.
func (ctl *Controller) InitializeGame(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return err
	}
	dto := new(models.InitializeGameDto)
	if err := ctl.parse(c, dto); err != nil {
		return err
	}

	setups := make([]models.PlayerSetup, 0, len(dto.Players))
	for _, setup := range dto.Players {
		if setup.Salary == 0 && setup.Job != "" {
			filled, err := s.Catalog().NewPlayerSetup(setup.Name, setup.Color, setup.Job, setup.Insurance)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			setup = filled
		}
		setups = append(setups, setup)
	}
	return c.JSON(s.Initialize(setups))
}

func (ctl *Controller) GetState(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return err
	}
	return c.JSON(s.State())
}

// GetCurrentPlayer returns the player whose turn it is with their finances.
func (ctl *Controller) GetCurrentPlayer(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return err
	}
	p, ok := s.State().CurrentPlayer()
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "no players")
	}
	return c.JSON(fiber.Map{"player": p, "finance": p.Finance()})
}

func (ctl *Controller) GetFinance(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return err
	}
	id, err := playerParam(c)
	if err != nil {
		return err
	}
	p, ok := s.State().Player(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "player not found")
	}
	return c.JSON(p.Finance())
}

func (ctl *Controller) ResetGame(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return err
	}
	return c.JSON(s.Reset())
}
