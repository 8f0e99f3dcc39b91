package routes

import (
	"simops-backend/internal/handler"
	"simops-backend/internal/mailer"
	"simops-backend/internal/repository"
	"simops-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	akunRepo := repository.NewAkunRepository(db)
	authUsecase := usecase.NewAuthUsecase(akunRepo)
	hdl := handler.NewAuthHandler(authUsecase, mailer.New())

	api := app.Group("/api/auth")

	api.Post("/login", hdl.Login)
	api.Post("/register", hdl.Register)
}
