package handler

import (
	"fmt"
	"strconv"

	"simops-backend/internal/model"
	"simops-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type RisikoHandler struct {
	repo          repository.RisikoRepository
	pekerjaanRepo repository.PekerjaanRepository
}

func NewRisikoHandler(repo repository.RisikoRepository, pekerjaanRepo repository.PekerjaanRepository) *RisikoHandler {
	return &RisikoHandler{repo: repo, pekerjaanRepo: pekerjaanRepo}
}

// keString menerima nilai form yang bisa dikirim frontend sebagai string
// ("3 - Mungkin Terjadi") atau angka (9) dan menyimpannya sebagai teks.
func keString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

func (h *RisikoHandler) Create(c *fiber.Ctx) error {
	var input struct {
		IDPekerjaan string `json:"idPekerjaan"`
		DataRisiko  []struct {
			Aktivitas string      `json:"aktivitas"`
			Bahaya    string      `json:"bahaya"`
			L         interface{} `json:"l"`
			C         interface{} `json:"c"`
			RR        interface{} `json:"rr"`
		} `json:"dataRisiko"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	if input.IDPekerjaan == "" || len(input.DataRisiko) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "idPekerjaan dan dataRisiko wajib diisi"})
	}

	rows := make([]model.Risiko, 0, len(input.DataRisiko))
	for _, r := range input.DataRisiko {
		rows = append(rows, model.Risiko{
			IDPekerjaan: input.IDPekerjaan,
			Aktivitas:   r.Aktivitas,
			Bahaya:      r.Bahaya,
			L:           keString(r.L),
			C:           keString(r.C),
			RR:          keString(r.RR),
		})
	}

	if err := h.repo.CreateMany(rows); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Tandai pekerjaan sudah dinilai lalu hitung ulang kelengkapannya
	if pekerjaan, err := h.pekerjaanRepo.GetByIDPekerjaan(input.IDPekerjaan); err == nil {
		pekerjaan.StatusRisiko = model.StatusRisikoSudahDinilai
		h.pekerjaanRepo.Update(pekerjaan)
	}
	perbaruiKelengkapan(h.pekerjaanRepo, input.IDPekerjaan)

	return c.JSON(fiber.Map{"message": "Risiko Tersimpan"})
}
