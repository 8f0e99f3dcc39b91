package handler

import (
	"encoding/json"
	"strings"
	"time"

	"simops-backend/internal/model"
	"simops-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type SimopsHandler struct {
	repo          repository.SimopsRepository
	pekerjaanRepo repository.PekerjaanRepository
}

func NewSimopsHandler(repo repository.SimopsRepository, pekerjaanRepo repository.PekerjaanRepository) *SimopsHandler {
	return &SimopsHandler{repo: repo, pekerjaanRepo: pekerjaanRepo}
}

// ---- Deteksi konflik ----

type KonflikGroup struct {
	TimeSlot string            `json:"timeSlot"`
	Jobs     []model.Pekerjaan `json:"jobs"`
}

// kelompokkanKonflik memfilter pekerjaan pada tanggal+area yang sama
// (trim + case-insensitive) lalu mengelompokkan per jam mulai/selesai yang
// persis sama. Kelompok berisi dua pekerjaan atau lebih adalah konflik.
// Jam yang cuma overlap sebagian TIDAK dianggap konflik, sesuai kebijakan
// deteksi per slot.
func kelompokkanKonflik(jobs []model.Pekerjaan, tanggal, area string) []KonflikGroup {
	groups := []KonflikGroup{}
	indexBySlot := map[string]int{}

	for _, p := range jobs {
		if p.IDPekerjaan == "" {
			continue
		}
		if !cocokFilter(p.TanggalKerja, tanggal) || !cocokFilter(p.Area, area) {
			continue
		}

		key := p.JamMulai + "|" + p.JamSelesai
		idx, ok := indexBySlot[key]
		if !ok {
			idx = len(groups)
			indexBySlot[key] = idx
			groups = append(groups, KonflikGroup{
				TimeSlot: p.JamMulai + " - " + p.JamSelesai,
				Jobs:     []model.Pekerjaan{},
			})
		}
		groups[idx].Jobs = append(groups[idx].Jobs, p)
	}

	conflicts := []KonflikGroup{}
	for _, g := range groups {
		if len(g.Jobs) >= 2 {
			conflicts = append(conflicts, g)
		}
	}
	return conflicts
}

func (h *SimopsHandler) GetConflicts(c *fiber.Ctx) error {
	tanggal := c.Query("date")
	area := c.Query("area")
	if tanggal == "" || area == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parameter date dan area wajib diisi"})
	}

	jobs, err := h.pekerjaanRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"date":      tanggal,
		"area":      area,
		"conflicts": kelompokkanKonflik(jobs, tanggal, area),
	})
}

// ---- Ledger SIMOPS ----

// gabungkanKonflik menerima daftar ID pekerjaan sebagai array atau string
// dan menyimpannya sebagai satu string dipisah koma.
func gabungkanKonflik(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []interface{}:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, keString(item))
		}
		return strings.Join(parts, ", ")
	default:
		return keString(val)
	}
}

func (h *SimopsHandler) Init(c *fiber.Ctx) error {
	var input struct {
		IDSimops     string             `json:"idSimops"`
		Area         string             `json:"area"`
		Tanggal      string             `json:"tanggal"`
		KonflikJobs  interface{}        `json:"konflikJobs"`
		GabunganRisk model.GabunganRisk `json:"gabunganRisk"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if input.Area == "" || input.Tanggal == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Area dan tanggal wajib diisi"})
	}

	// Satu record per (area, tanggal): kalau sudah ada, kembalikan yang lama
	if existing, err := h.repo.GetByAreaTanggal(input.Area, input.Tanggal); err == nil {
		return c.JSON(fiber.Map{
			"message": "SIMOPS untuk area dan tanggal ini sudah tercatat",
			"id":      existing.IDSimops,
			"isNew":   false,
		})
	}

	id := input.IDSimops
	if id == "" {
		id = "SIM-" + time.Now().Format("20060102150405")
	}

	gabungan, err := json.Marshal(input.GabunganRisk)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	simops := model.Simops{
		IDSimops:          id,
		Tanggal:           input.Tanggal,
		Area:              input.Area,
		KonflikJobs:       gabungkanKonflik(input.KonflikJobs),
		KeputusanMitigasi: model.KeputusanBelumDitentukan,
		GabunganRisk:      datatypes.JSON(gabungan),
		WaktuInput:        time.Now().Format(time.RFC3339),
	}

	if err := h.repo.Create(simops); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "SIMOPS tercatat",
		"id":      id,
		"isNew":   true,
	})
}

func (h *SimopsHandler) UpdateMitigasi(c *fiber.Ctx) error {
	id := c.Params("id")

	var input struct {
		Keputusan      string          `json:"keputusan"`
		DetailMitigasi json.RawMessage `json:"detailMitigasi"`
		GabunganRisk   json.RawMessage `json:"gabunganRisk"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	simops, err := h.repo.GetByIDSimops(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "SIMOPS tidak ditemukan"})
	}

	if input.Keputusan != "" {
		simops.KeputusanMitigasi = input.Keputusan
	}
	if len(input.DetailMitigasi) > 0 {
		simops.DetailMitigasi = datatypes.JSON(input.DetailMitigasi)
	}
	if len(input.GabunganRisk) > 0 {
		simops.GabunganRisk = datatypes.JSON(input.GabunganRisk)
	}

	if err := h.repo.Update(simops); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Mitigasi tersimpan", "id": simops.IDSimops})
}

func (h *SimopsHandler) MitigasiGantiJam(c *fiber.Ctx) error {
	var input struct {
		SimopsID string               `json:"simopsId"`
		Area     string               `json:"area"`
		Changes  []model.PerubahanJam `json:"changes"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	simops, err := h.repo.GetByIDSimops(input.SimopsID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "SIMOPS tidak ditemukan"})
	}

	// Merge ke detail lama: key selain type/changes dibiarkan, penulis terakhir menang
	detail := map[string]interface{}{}
	if len(simops.DetailMitigasi) > 0 {
		json.Unmarshal(simops.DetailMitigasi, &detail)
	}
	detail["type"] = model.DetailTypeGantiJam
	detail["changes"] = input.Changes

	detailJSON, err := json.Marshal(detail)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	simops.KeputusanMitigasi = model.KeputusanGantiJam
	simops.DetailMitigasi = datatypes.JSON(detailJSON)

	if err := h.repo.Update(simops); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Geser jam tiap pekerjaan yang dirujuk; ID yang tidak ketemu dilewati
	for _, ch := range input.Changes {
		pekerjaan, err := h.pekerjaanRepo.GetByIDPekerjaan(ch.JobID)
		if err != nil {
			continue
		}
		if ch.JamMulai != "" {
			pekerjaan.JamMulai = ch.JamMulai
		}
		if ch.JamSelesai != "" {
			pekerjaan.JamSelesai = ch.JamSelesai
		}
		h.pekerjaanRepo.Update(pekerjaan)
	}

	return c.JSON(fiber.Map{"message": "Mitigasi ganti jam tersimpan", "id": simops.IDSimops})
}

func (h *SimopsHandler) MitigasiLainnya(c *fiber.Ctx) error {
	var input struct {
		SimopsID      string      `json:"simopsId"`
		NamaSO        string      `json:"namaSO"`
		NamaSI        string      `json:"namaSI"`
		Leader        string      `json:"leader"`
		JumlahPekerja interface{} `json:"jumlahPekerja"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	simops, err := h.repo.GetByIDSimops(input.SimopsID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "SIMOPS tidak ditemukan"})
	}

	detail := model.DetailMitigasiLainnya{
		Type:          model.DetailTypeLainnya,
		NamaSO:        input.NamaSO,
		NamaSI:        input.NamaSI,
		Leader:        input.Leader,
		JumlahPekerja: angka(input.JumlahPekerja),
	}
	detailJSON, err := json.Marshal(detail)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Varian lainnya mengganti seluruh detail, bukan merge
	simops.KeputusanMitigasi = model.KeputusanMitigasiLain
	simops.DetailMitigasi = datatypes.JSON(detailJSON)

	if err := h.repo.Update(simops); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Mitigasi tambahan tersimpan", "id": simops.IDSimops})
}

// angka menoleransi nilai yang dikirim sebagai number JSON maupun string.
func angka(v interface{}) int {
	switch val := v.(type) {
	case float64:
		return int(val)
	case string:
		return angkaSkala(val)
	default:
		return 0
	}
}

func (h *SimopsHandler) Residual(c *fiber.Ctx) error {
	var input struct {
		SimopsID string      `json:"simopsId"`
		L        interface{} `json:"l"`
		C        interface{} `json:"c"`
		RR       interface{} `json:"rr"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	simops, err := h.repo.GetByIDSimops(input.SimopsID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "SIMOPS tidak ditemukan"})
	}

	residual := model.ResidualRisk{
		L:          angka(input.L),
		C:          angka(input.C),
		RR:         angka(input.RR),
		WaktuInput: time.Now().Format(time.RFC3339),
	}
	residualJSON, err := json.Marshal(residual)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	simops.ResidualRisk = datatypes.JSON(residualJSON)
	if err := h.repo.Update(simops); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Residual risk tersimpan"})
}

// ---- Rekap SIMOPS ----

// hitungCombinedRR memilih nilai RR gabungan: rr eksplisit, lalu combinedRR,
// terakhir maxL * maxC.
func hitungCombinedRR(g model.GabunganRisk) int {
	if g.RR != nil {
		return *g.RR
	}
	if g.CombinedRR != nil {
		return *g.CombinedRR
	}
	return g.MaxL * g.MaxC
}

// statusPengendalian kosong selama residual belum diinput. Kalau sudah ada,
// mitigasi dianggap berhasil bila residual turun di bawah RR gabungan.
func statusPengendalian(residual *model.ResidualRisk, combinedRR int) string {
	if residual == nil {
		return ""
	}
	if residual.RR < combinedRR {
		return model.StatusSimopsTerkendali
	}
	return model.StatusSimopsBelumTerkendali
}

func (h *SimopsHandler) GetRekap(c *fiber.Ctx) error {
	simopsID := c.Query("simopsId")

	records, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	data := []fiber.Map{}
	for _, s := range records {
		if simopsID != "" && s.IDSimops != simopsID {
			continue
		}

		// Tiap blob diparse sendiri-sendiri; blob rusak cuma mengosongkan
		// field itu, baris lain tetap tampil
		var gabungan model.GabunganRisk
		if len(s.GabunganRisk) > 0 {
			if err := json.Unmarshal(s.GabunganRisk, &gabungan); err != nil {
				gabungan = model.GabunganRisk{}
			}
		}

		detail := map[string]interface{}{}
		if len(s.DetailMitigasi) > 0 {
			json.Unmarshal(s.DetailMitigasi, &detail)
		}

		var residual *model.ResidualRisk
		if len(s.ResidualRisk) > 0 && string(s.ResidualRisk) != "null" {
			var r model.ResidualRisk
			if err := json.Unmarshal(s.ResidualRisk, &r); err == nil {
				residual = &r
			}
		}

		combinedRR := hitungCombinedRR(gabungan)

		data = append(data, fiber.Map{
			"idSimops":           s.IDSimops,
			"tanggal":            s.Tanggal,
			"area":               s.Area,
			"konflikJobs":        s.KonflikJobs,
			"keputusanMitigasi":  s.KeputusanMitigasi,
			"gabunganRisk":       gabungan,
			"detailMitigasi":     detail,
			"residualRisk":       residual,
			"combinedRR":         combinedRR,
			"statusPengendalian": statusPengendalian(residual, combinedRR),
			"waktuInput":         s.WaktuInput,
		})
	}

	return c.JSON(fiber.Map{"count": len(data), "data": data})
}
