package handler

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"simops-backend/internal/model"
	"simops-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type RekapHandler struct {
	pekerjaanRepo repository.PekerjaanRepository
	risikoRepo    repository.RisikoRepository
	dokumenRepo   repository.DokumenRepository
}

func NewRekapHandler(pekerjaanRepo repository.PekerjaanRepository, risikoRepo repository.RisikoRepository, dokumenRepo repository.DokumenRepository) *RekapHandler {
	return &RekapHandler{pekerjaanRepo: pekerjaanRepo, risikoRepo: risikoRepo, dokumenRepo: dokumenRepo}
}

// angkaSkala mengambil angka di depan nilai skala risiko.
// "3 - Mungkin Terjadi" -> 3, "5" -> 5, teks lain -> 0.
func angkaSkala(s string) int {
	depan := strings.TrimSpace(strings.SplitN(s, "-", 2)[0])
	n, err := strconv.Atoi(depan)
	if err != nil {
		return 0
	}
	return n
}

// cocokFilter membandingkan nilai dengan filter secara trim + case-insensitive.
// Filter kosong berarti lolos.
func cocokFilter(nilai, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(nilai), strings.TrimSpace(filter))
}

type rekapRisikoDetail struct {
	Act    string `json:"act"`
	Hazard string `json:"hazard"`
	L      int    `json:"l"`
	C      int    `json:"c"`
	RR     string `json:"rr"`
}

type rekapRisiko struct {
	MaxL    int                 `json:"maxL"`
	MaxC    int                 `json:"maxC"`
	Details []rekapRisikoDetail `json:"details"`
}

type rekapDokumen struct {
	Jenis string `json:"jenis"`
	URL   string `json:"url"`
	Waktu string `json:"waktu"`
}

// petaRisiko mengelompokkan baris risiko per pekerjaan, sambil menyimpan
// L dan C tertinggi yang pernah dinilai.
func petaRisiko(risiko []model.Risiko) map[string]rekapRisiko {
	peta := map[string]rekapRisiko{}
	for _, r := range risiko {
		if r.IDPekerjaan == "" {
			continue
		}
		l := angkaSkala(r.L)
		c := angkaSkala(r.C)

		info := peta[r.IDPekerjaan]
		if l > info.MaxL {
			info.MaxL = l
		}
		if c > info.MaxC {
			info.MaxC = c
		}
		info.Details = append(info.Details, rekapRisikoDetail{Act: r.Aktivitas, Hazard: r.Bahaya, L: l, C: c, RR: r.RR})
		peta[r.IDPekerjaan] = info
	}
	return peta
}

func petaDokumen(dokumen []model.Dokumen) map[string][]rekapDokumen {
	peta := map[string][]rekapDokumen{}
	for _, d := range dokumen {
		if d.IDPekerjaan == "" {
			continue
		}
		peta[d.IDPekerjaan] = append(peta[d.IDPekerjaan], rekapDokumen{Jenis: d.JenisDokumen, URL: d.URL, Waktu: d.WaktuUpload})
	}
	return peta
}

func (h *RekapHandler) GetRekap(c *fiber.Ctx) error {
	area := c.Query("area")
	unit := c.Query("unit")
	date := c.Query("date")
	today := c.Query("today") == "true"
	onlyComplete := c.Query("onlyComplete") == "true"

	// Tiga tabel diambil paralel, tidak ada dependensi urutan di antaranya
	var (
		wg        sync.WaitGroup
		jobs      []model.Pekerjaan
		risiko    []model.Risiko
		dokumen   []model.Dokumen
		errJobs   error
		errRisiko error
		errDok    error
	)
	wg.Add(3)
	go func() { defer wg.Done(); jobs, errJobs = h.pekerjaanRepo.GetAll() }()
	go func() { defer wg.Done(); risiko, errRisiko = h.risikoRepo.GetAll() }()
	go func() { defer wg.Done(); dokumen, errDok = h.dokumenRepo.GetAll() }()
	wg.Wait()

	for _, err := range []error{errJobs, errRisiko, errDok} {
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	risikoPerJob := petaRisiko(risiko)
	dokumenPerJob := petaDokumen(dokumen)

	tanggalTarget := date
	if today {
		tanggalTarget = time.Now().Format(formatTanggal)
	}

	result := []fiber.Map{}
	for _, p := range jobs {
		if p.IDPekerjaan == "" {
			continue
		}

		statusKelengkapan := p.StatusKelengkapan
		if statusKelengkapan == "" {
			statusKelengkapan = model.KelengkapanBelumLengkap
		}

		if onlyComplete && statusKelengkapan != model.KelengkapanLengkap {
			continue
		}
		if !cocokFilter(p.Area, area) {
			continue
		}
		if !cocokFilter(p.Unit, unit) {
			continue
		}
		if tanggalTarget != "" && p.TanggalKerja != tanggalTarget {
			continue
		}

		statusDoc := p.StatusDokumen
		if statusDoc == "" {
			statusDoc = model.StatusDokumenBelumLengkap
		}
		statusRisk := p.StatusRisiko
		if statusRisk == "" {
			statusRisk = model.StatusRisikoBelumDinilai
		}

		riskInfo, ok := risikoPerJob[p.IDPekerjaan]
		if !ok {
			riskInfo = rekapRisiko{Details: []rekapRisikoDetail{}}
		}
		docs := dokumenPerJob[p.IDPekerjaan]
		if docs == nil {
			docs = []rekapDokumen{}
		}

		result = append(result, fiber.Map{
			"id":                p.IDPekerjaan,
			"namaPT":            p.NamaPT,
			"kompartemen":       p.Kompartemen,
			"unit":              p.Unit,
			"jenis":             p.JenisPekerjaan,
			"pekerjaan":         p.NamaPekerjaan,
			"area":              p.Area,
			"pj":                p.PJNama,
			"tanggal":           p.TanggalKerja,
			"jamMulai":          p.JamMulai,
			"jamSelesai":        p.JamSelesai,
			"statusDoc":         statusDoc,
			"statusRisk":        statusRisk,
			"statusKelengkapan": statusKelengkapan,
			"riskData":          riskInfo,
			"docs":              docs,
		})
	}

	return c.JSON(result)
}
