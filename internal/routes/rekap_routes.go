package routes

import (
	"simops-backend/internal/handler"
	"simops-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRekapRoutes(app *fiber.App, db *gorm.DB) {
	pekerjaanRepo := repository.NewPekerjaanRepository(db)
	risikoRepo := repository.NewRisikoRepository(db)
	dokumenRepo := repository.NewDokumenRepository(db)
	hdl := handler.NewRekapHandler(pekerjaanRepo, risikoRepo, dokumenRepo)

	app.Get("/api/rekap", hdl.GetRekap)
}
