package routes

import (
	"simops-backend/internal/handler"
	"simops-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSimopsRoutes(app *fiber.App, db *gorm.DB) {
	simopsRepo := repository.NewSimopsRepository(db)
	pekerjaanRepo := repository.NewPekerjaanRepository(db)
	hdl := handler.NewSimopsHandler(simopsRepo, pekerjaanRepo)

	api := app.Group("/api/simops")

	api.Post("/init", hdl.Init)
	api.Get("/conflicts", hdl.GetConflicts)
	api.Get("/rekap", hdl.GetRekap)
	api.Post("/mitigasi-ganti-jam", hdl.MitigasiGantiJam)
	api.Post("/mitigasi-lainnya", hdl.MitigasiLainnya)
	api.Post("/residual", hdl.Residual)
	api.Put("/:id/mitigasi", hdl.UpdateMitigasi)
}
