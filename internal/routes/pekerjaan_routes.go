package routes

import (
	"simops-backend/internal/handler"
	"simops-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPekerjaanRoutes(app *fiber.App, db *gorm.DB) {
	pekerjaanRepo := repository.NewPekerjaanRepository(db)
	risikoRepo := repository.NewRisikoRepository(db)

	pekerjaanHdl := handler.NewPekerjaanHandler(pekerjaanRepo)
	risikoHdl := handler.NewRisikoHandler(risikoRepo, pekerjaanRepo)
	notifikasiHdl := handler.NewNotifikasiHandler(pekerjaanRepo)

	app.Post("/api/jobs", pekerjaanHdl.Create)
	app.Get("/api/jobs/incomplete", pekerjaanHdl.GetIncomplete)
	app.Put("/api/jobs/:id/approve", pekerjaanHdl.Approve)
	app.Post("/api/risks", risikoHdl.Create)
	app.Get("/api/notifications", notifikasiHdl.GetNotifications)
}
