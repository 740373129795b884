package routes

import (
	"github.com/DedS3t/cashflow-backend/app/controllers"
	"github.com/gofiber/fiber/v2"
)

func GameRoutes(a *fiber.App, ctl *controllers.Controller) {
	route := a.Group("/game")
	route.Post("/create", ctl.CreateGame)
	route.Get("/verify", ctl.VerifyGame)
	route.Get("/all", ctl.GetAllAvailGames)
	route.Get("/jobs", ctl.GetJobs)
	route.Get("/dreams", ctl.GetDreams)
	route.Get("/colors", ctl.GetColors)

	route.Post("/:id/initialize", ctl.InitializeGame)
	route.Get("/:id/state", ctl.GetState)
	route.Get("/:id/current", ctl.GetCurrentPlayer)
	route.Post("/:id/reset", ctl.ResetGame)
	route.Post("/:id/next-player", ctl.NextPlayer)
	route.Post("/:id/draw", ctl.DrawCard)
	route.Get("/:id/roll", ctl.RollDice)

	player := route.Group("/:id/players/:player")
	player.Get("/finance", ctl.GetFinance)
	player.Post("/turn", ctl.PlayTurn)
	player.Post("/move", ctl.MovePlayer)
	player.Post("/payday", ctl.ProcessPayday())
	player.Post("/charity", ctl.ProcessCharity())
	player.Post("/charity/benefit", ctl.ProcessCharityBenefit())
	player.Post("/downsize", ctl.ProcessDownsize())
	player.Post("/downsize/end", ctl.EndDownsize())
	player.Post("/child", ctl.ProcessChild())
	player.Post("/assets", ctl.AddAsset)
	player.Post("/liabilities", ctl.AddLiability)
	player.Post("/dream", ctl.PurchaseDream)
	player.Post("/doodad", ctl.ApplyDoodad)
	player.Post("/deal", ctl.BuyDeal)
	player.Post("/fast-track", ctl.EnterFastTrack())
	player.Post("/fast-track/move", ctl.MoveFastTrackPlayer)
	player.Post("/fast-track/payday", ctl.ProcessFastTrackPayday)
	player.Post("/check/bankruptcy", ctl.CheckBankruptcy())
	player.Post("/check/fast-track", ctl.CheckFastTrackEligibility())
	player.Post("/check/win", ctl.CheckWinCondition())
}

func SaveRoutes(a *fiber.App, ctl *controllers.Controller) {
	route := a.Group("/game/:id")
	route.Get("/saves", ctl.ListSaves)
	route.Post("/saves/:slot", ctl.SaveGame)
	route.Post("/saves/:slot/load", ctl.LoadGame)
	route.Delete("/saves/:slot", ctl.DeleteSave)
	route.Get("/autosave", ctl.HasAutoSave)
	route.Post("/autosave", ctl.AutoSave)
	route.Post("/autosave/load", ctl.LoadAutoSave)
}
