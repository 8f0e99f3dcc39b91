package main

import (
	"fmt"

	"simops-backend/config"
	"simops-backend/internal/gas"
	"simops-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	fmt.Println("2. Mencoba koneksi ke Database...")
	config.ConnectDB()
	fmt.Println("3. Database berhasil terhubung! Menyiapkan routes...")

	gasClient := gas.NewClient(config.GetEnv("GAS_WEB_APP_URL", ""))

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())   // Agar API bisa diakses dari frontend di domain lain
	app.Use(logger.New()) // Agar log request muncul di terminal

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupPekerjaanRoutes(app, config.DB)
	routes.SetupUploadRoutes(app, config.DB, gasClient)
	routes.SetupRekapRoutes(app, config.DB)
	routes.SetupSimopsRoutes(app, config.DB)
	routes.SetupUserRoutes(app, config.DB)

	port := config.GetEnv("PORT", "5000")
	fmt.Println("4. Server siap! Menunggu request di port :" + port)
	app.Listen(":" + port)
}
