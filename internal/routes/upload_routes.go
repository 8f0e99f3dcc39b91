package routes

import (
	"simops-backend/internal/gas"
	"simops-backend/internal/handler"
	"simops-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUploadRoutes(app *fiber.App, db *gorm.DB, gasClient *gas.Client) {
	dokumenRepo := repository.NewDokumenRepository(db)
	pekerjaanRepo := repository.NewPekerjaanRepository(db)
	hdl := handler.NewUploadHandler(gasClient, dokumenRepo, pekerjaanRepo)

	app.Post("/api/upload", hdl.Upload)
	app.Get("/api/test-drive", hdl.TestDrive)
}
