package handler

import (
	"errors"
	"log"

	"simops-backend/internal/mailer"
	"simops-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	usecase *usecase.AuthUsecase
	mailer  *mailer.Mailer
}

func NewAuthHandler(u *usecase.AuthUsecase, m *mailer.Mailer) *AuthHandler {
	return &AuthHandler{usecase: u, mailer: m}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input struct {
		RegUser string `json:"regUser"`
		RegPass string `json:"regPass"`
		RegRole string `json:"regRole"`
		Area    string `json:"area"`
		Unit    string `json:"unit"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	if input.RegUser == "" || input.RegPass == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username dan password wajib diisi"})
	}

	akun, err := h.usecase.Register(input.RegUser, input.RegPass, input.RegRole, input.Area, input.Unit)
	if err != nil {
		if errors.Is(err, usecase.ErrUsernameExists) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Username sudah ada!"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Kabari admin ada pendaftaran baru. Gagal kirim email tidak menggagalkan registrasi.
	if err := h.mailer.SendRegistrasiBaru(akun); err != nil {
		log.Println("Gagal kirim email notifikasi registrasi:", err)
	}

	return c.JSON(fiber.Map{
		"message": "Registrasi berhasil! Menunggu persetujuan admin.",
		"status":  akun.StatusAkun,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	akun, token, err := h.usecase.Login(input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "Gagal", "message": err.Error()})
		case errors.Is(err, usecase.ErrAkunPending), errors.Is(err, usecase.ErrAkunRejected):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"status": "Gagal", "message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.JSON(fiber.Map{
		"status":     "Sukses",
		"role":       akun.Role,
		"username":   akun.Username,
		"area":       akun.Area,
		"unit":       akun.Unit,
		"statusAkun": akun.StatusAkun,
		"token":      token,
	})
}
