package handler

import (
	"time"

	"simops-backend/internal/model"
	"simops-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

const (
	formatTanggal   = "02/01/2006"
	formatTimestamp = "02/01/2006 15:04:05"
)

type PekerjaanHandler struct {
	repo repository.PekerjaanRepository
}

func NewPekerjaanHandler(repo repository.PekerjaanRepository) *PekerjaanHandler {
	return &PekerjaanHandler{repo: repo}
}

// deriveKelengkapan menentukan status kelengkapan dari dua status input.
// Lengkap hanya kalau dokumen sudah terupload DAN risiko sudah dinilai,
// kombinasi lain (termasuk kosong) dianggap belum lengkap.
func deriveKelengkapan(statusDokumen, statusRisiko string) string {
	if statusDokumen == model.StatusDokumenTerupload && statusRisiko == model.StatusRisikoSudahDinilai {
		return model.KelengkapanLengkap
	}
	return model.KelengkapanBelumLengkap
}

// perbaruiKelengkapan menghitung ulang status kelengkapan sebuah pekerjaan dan
// menyimpannya kalau berubah. Dipanggil setiap kali dokumen atau risiko berubah.
func perbaruiKelengkapan(repo repository.PekerjaanRepository, idPekerjaan string) {
	pekerjaan, err := repo.GetByIDPekerjaan(idPekerjaan)
	if err != nil {
		return
	}

	status := deriveKelengkapan(pekerjaan.StatusDokumen, pekerjaan.StatusRisiko)
	if status != pekerjaan.StatusKelengkapan {
		pekerjaan.StatusKelengkapan = status
		repo.Update(pekerjaan)
	}
}

// normalisasiTanggal menyeragamkan tanggal kerja ke dd/MM/yyyy. Input yang
// tidak dikenali dikembalikan apa adanya.
func normalisasiTanggal(s string) string {
	if s == "" {
		return s
	}
	for _, layout := range []string{"2006-01-02", "02/01/2006", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(formatTanggal)
		}
	}
	return s
}

func (h *PekerjaanHandler) Create(c *fiber.Ctx) error {
	var input struct {
		NamaPT         string `json:"namaPT"`
		Kompartemen    string `json:"kompartemen"`
		Unit           string `json:"unit"`
		JenisPekerjaan string `json:"jenisPekerjaan"`
		NamaPekerjaan  string `json:"namaPekerjaan"`
		Area           string `json:"area"`
		PJNama         string `json:"pjNama"`
		TanggalKerja   string `json:"tanggalKerja"`
		JamMulai       string `json:"jamMulai"`
		JamSelesai     string `json:"jamSelesai"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	now := time.Now()
	pekerjaan := model.Pekerjaan{
		IDPekerjaan:       "JOB-" + now.Format("20060102150405"),
		Timestamp:         now.Format(formatTimestamp),
		NamaPT:            input.NamaPT,
		Kompartemen:       input.Kompartemen,
		Unit:              input.Unit,
		JenisPekerjaan:    input.JenisPekerjaan,
		NamaPekerjaan:     input.NamaPekerjaan,
		Area:              input.Area,
		PJNama:            input.PJNama,
		TanggalKerja:      normalisasiTanggal(input.TanggalKerja),
		JamMulai:          input.JamMulai,
		JamSelesai:        input.JamSelesai,
		StatusDokumen:     model.StatusDokumenBelumLengkap,
		StatusRisiko:      model.StatusRisikoBelumDinilai,
		StatusKelengkapan: model.KelengkapanBelumLengkap,
	}

	if err := h.repo.Create(pekerjaan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"id": pekerjaan.IDPekerjaan, "message": "Data pekerjaan tersimpan"})
}

func (h *PekerjaanHandler) Approve(c *fiber.Ctx) error {
	id := c.Params("id")

	pekerjaan, err := h.repo.GetByIDPekerjaan(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pekerjaan tidak ditemukan"})
	}

	pekerjaan.StatusDokumen = model.StatusDokumenApproved
	if err := h.repo.Update(pekerjaan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Dokumen Disetujui Inspector"})
}

func (h *PekerjaanHandler) GetIncomplete(c *fiber.Ctx) error {
	username := c.Query("username")
	if username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username parameter required"})
	}

	all, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	jobs := []model.Pekerjaan{}
	for _, p := range all {
		if p.IDPekerjaan == "" {
			continue
		}
		if p.NamaPekerjaan == username && p.StatusKelengkapan != model.KelengkapanLengkap {
			jobs = append(jobs, p)
		}
	}

	return c.JSON(fiber.Map{
		"username": username,
		"count":    len(jobs),
		"jobs":     jobs,
	})
}
