package routes

import (
	"simops-backend/internal/handler"
	"simops-backend/internal/middleware"
	"simops-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	akunRepo := repository.NewAkunRepository(db)
	hdl := handler.NewUserHandler(akunRepo)

	// Approval akun hanya untuk Admin yang sudah login
	api := app.Group("/api/users", middleware.Auth, middleware.Role("Admin"))

	api.Get("/pending", hdl.GetPending)
	api.Put("/:username/approve", hdl.Approve)
	api.Put("/:username/reject", hdl.Reject)
}
