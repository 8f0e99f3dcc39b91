package handler

import (
	"time"

	"simops-backend/internal/model"
	"simops-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type NotifikasiHandler struct {
	repo repository.PekerjaanRepository
}

func NewNotifikasiHandler(repo repository.PekerjaanRepository) *NotifikasiHandler {
	return &NotifikasiHandler{repo: repo}
}

// GetNotifications mendaftar pekerjaan hari ini yang dokumennya atau
// penilaian risikonya belum selesai.
func (h *NotifikasiHandler) GetNotifications(c *fiber.Ctx) error {
	today := time.Now().Format(formatTanggal)

	jobs, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	notifications := []fiber.Map{}
	for _, p := range jobs {
		if p.IDPekerjaan == "" || p.TanggalKerja != today {
			continue
		}
		if deriveKelengkapan(p.StatusDokumen, p.StatusRisiko) == model.KelengkapanLengkap {
			continue
		}

		message := "Penilaian risiko belum selesai"
		if p.StatusDokumen != model.StatusDokumenTerupload {
			message = "Dokumen belum lengkap"
		}

		notifications = append(notifications, fiber.Map{
			"id":             p.IDPekerjaan,
			"namaPT":         p.NamaPT,
			"jenisPekerjaan": p.JenisPekerjaan,
			"namaPekerjaan":  p.NamaPekerjaan,
			"area":           p.Area,
			"pj":             p.PJNama,
			"tanggal":        p.TanggalKerja,
			"jamMulai":       p.JamMulai,
			"jamSelesai":     p.JamSelesai,
			"statusDoc":      p.StatusDokumen,
			"statusRisk":     p.StatusRisiko,
			"message":        message,
		})
	}

	return c.JSON(fiber.Map{
		"date":          today,
		"count":         len(notifications),
		"notifications": notifications,
	})
}
