package controllers

import (
	"github.com/DedS3t/cashflow-backend/platform/game"
	"github.com/gofiber/fiber/v2"
)

func (ctl *Controller) ListSaves(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return err
	}
	return c.JSON(s.ListSaves())
}

func (ctl *Controller) SaveGame(c *fiber.Ctx) error {
	return ctl.slotAction(c, (*game.Session).Save)
}

func (ctl *Controller) LoadGame(c *fiber.Ctx) error {
	return ctl.slotAction(c, (*game.Session).Load)
}

func (ctl *Controller) DeleteSave(c *fiber.Ctx) error {
	return ctl.slotAction(c, (*game.Session).DeleteSave)
}

// slotAction answers {"success": bool}. Slots outside 0-4 are not an HTTP
// error, they just fail.
func (ctl *Controller) slotAction(c *fiber.Ctx, action func(s *game.Session, slot int) bool) error {
	s, err := ctl.session(c)
	if err != nil {
		return err
	}
	slot, err := slotParam(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": action(s, slot)})
}

func (ctl *Controller) AutoSave(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": s.AutoSave()})
}

func (ctl *Controller) LoadAutoSave(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": s.LoadAutoSave(), "state": s.State()})
}

func (ctl *Controller) HasAutoSave(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"exists": s.HasAutoSave()})
}
