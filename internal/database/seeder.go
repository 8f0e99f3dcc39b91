package database

import (
	"fmt"
	"time"

	"simops-backend/config"
	"simops-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAll membuat akun Admin awal supaya ada yang bisa meng-approve
// pendaftaran pertama. Dilewati kalau username-nya sudah ada.
func SeedAll(db *gorm.DB) {
	username := config.GetEnv("SEED_ADMIN_USER", "admin")

	var existing model.Akun
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		fmt.Println("Akun admin sudah ada, seeding dilewati:", username)
		return
	}

	password := config.GetEnv("SEED_ADMIN_PASS", "admin123")
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Println("Gagal hash password admin:", err)
		return
	}

	admin := model.Akun{
		Username:          username,
		Password:          string(hashed),
		Role:              "Admin",
		StatusAkun:        model.StatusAkunActive,
		TanggalRegistrasi: time.Now().Format("02/01/2006 15:04:05"),
	}

	if err := db.Create(&admin).Error; err != nil {
		fmt.Println("Gagal membuat akun admin:", err)
		return
	}
	fmt.Println("Akun admin dibuat:", username)
}
