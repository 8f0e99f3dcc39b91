package handler

import (
	"time"

	"simops-backend/internal/model"
	"simops-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	repo repository.AkunRepository
}

func NewUserHandler(repo repository.AkunRepository) *UserHandler {
	return &UserHandler{repo: repo}
}

func (h *UserHandler) GetPending(c *fiber.Ctx) error {
	pending, err := h.repo.GetPending()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	users := []fiber.Map{}
	for _, a := range pending {
		users = append(users, fiber.Map{
			"username":          a.Username,
			"role":              a.Role,
			"area":              a.Area,
			"unit":              a.Unit,
			"statusAkun":        a.StatusAkun,
			"tanggalRegistrasi": a.TanggalRegistrasi,
		})
	}

	return c.JSON(fiber.Map{
		"count": len(users),
		"users": users,
	})
}

func (h *UserHandler) Approve(c *fiber.Ctx) error {
	username := c.Params("username")

	var input struct {
		AdminUsername string `json:"adminUsername"`
	}
	if err := c.BodyParser(&input); err != nil || input.AdminUsername == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Admin username required"})
	}

	akun, err := h.repo.GetByUsername(username)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	akun.StatusAkun = model.StatusAkunActive
	akun.ApprovedBy = input.AdminUsername
	akun.TanggalApproval = time.Now().Format(formatTimestamp)

	if err := h.repo.Update(akun); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message":    "User approved successfully",
		"username":   akun.Username,
		"approvedBy": akun.ApprovedBy,
		"approvedAt": akun.TanggalApproval,
	})
}

func (h *UserHandler) Reject(c *fiber.Ctx) error {
	username := c.Params("username")

	akun, err := h.repo.GetByUsername(username)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	akun.StatusAkun = model.StatusAkunRejected
	if err := h.repo.Update(akun); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message":  "User rejected successfully",
		"username": akun.Username,
	})
}
