package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"simops-backend/internal/model"

	"github.com/gofiber/fiber/v2"
)

func newRekapApp(pekerjaanRepo *fakePekerjaanRepo, risikoRepo *fakeRisikoRepo, dokumenRepo *fakeDokumenRepo) *fiber.App {
	app := fiber.New()
	hdl := NewRekapHandler(pekerjaanRepo, risikoRepo, dokumenRepo)
	app.Get("/api/rekap", hdl.GetRekap)
	return app
}

func getRekap(t *testing.T, app *fiber.App, path string) []map[string]interface{} {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var out []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return out
}

func TestAngkaSkala(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"1 - Sangat Jarang", 1},
		{"3-Mungkin", 3},
		{"5", 5},
		{"", 0},
		{"tinggi", 0},
	}
	for _, tc := range cases {
		if got := angkaSkala(tc.in); got != tc.want {
			t.Errorf("angkaSkala(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestCocokFilter(t *testing.T) {
	if !cocokFilter("Pabrik 1", "") {
		t.Error("filter kosong harus lolos")
	}
	if !cocokFilter("  PABRIK 1 ", "pabrik 1") {
		t.Error("perbandingan harus trim + case-insensitive")
	}
	if cocokFilter("Pabrik 2", "Pabrik 1") {
		t.Error("area berbeda tidak boleh lolos")
	}
}

func contohPekerjaan() []model.Pekerjaan {
	return []model.Pekerjaan{
		{IDPekerjaan: "JOB-1", Area: "Pabrik A ", Unit: "Urea", TanggalKerja: "20/01/2025",
			StatusDokumen: model.StatusDokumenTerupload, StatusRisiko: model.StatusRisikoSudahDinilai,
			StatusKelengkapan: model.KelengkapanLengkap},
		{IDPekerjaan: "JOB-2", Area: "Pabrik B", Unit: "Amoniak", TanggalKerja: "20/01/2025",
			StatusKelengkapan: model.KelengkapanBelumLengkap},
		{IDPekerjaan: ""}, // baris kosong harus dilewati
	}
}

func TestRekapFilterArea(t *testing.T) {
	app := newRekapApp(&fakePekerjaanRepo{pekerjaan: contohPekerjaan()}, &fakeRisikoRepo{}, &fakeDokumenRepo{})

	out := getRekap(t, app, "/api/rekap?area=pabrik%20a")
	if len(out) != 1 {
		t.Fatalf("jumlah hasil = %d, want 1", len(out))
	}
	if out[0]["id"] != "JOB-1" {
		t.Errorf("id = %v", out[0]["id"])
	}
}

func TestRekapTanpaFilterMengembalikanSemua(t *testing.T) {
	app := newRekapApp(&fakePekerjaanRepo{pekerjaan: contohPekerjaan()}, &fakeRisikoRepo{}, &fakeDokumenRepo{})

	out := getRekap(t, app, "/api/rekap")
	if len(out) != 2 {
		t.Fatalf("jumlah hasil = %d, want 2 (baris kosong dilewati)", len(out))
	}
}

func TestRekapOnlyComplete(t *testing.T) {
	app := newRekapApp(&fakePekerjaanRepo{pekerjaan: contohPekerjaan()}, &fakeRisikoRepo{}, &fakeDokumenRepo{})

	out := getRekap(t, app, "/api/rekap?onlyComplete=true")
	if len(out) != 1 {
		t.Fatalf("jumlah hasil = %d, want 1", len(out))
	}
	if out[0]["statusKelengkapan"] != model.KelengkapanLengkap {
		t.Errorf("statusKelengkapan = %v", out[0]["statusKelengkapan"])
	}
}

func TestRekapMenggabungkanRisikoDanDokumen(t *testing.T) {
	risikoRepo := &fakeRisikoRepo{risiko: []model.Risiko{
		{IDPekerjaan: "JOB-1", Aktivitas: "Pengelasan", Bahaya: "Percikan api", L: "2 - Jarang", C: "4 - Berat", RR: "8"},
		{IDPekerjaan: "JOB-1", Aktivitas: "Bekerja di ketinggian", Bahaya: "Jatuh", L: "3 - Mungkin", C: "5 - Fatal", RR: "15"},
	}}
	dokumenRepo := &fakeDokumenRepo{dokumen: []model.Dokumen{
		{IDPekerjaan: "JOB-1", JenisDokumen: "JSA", URL: "https://drive/x", WaktuUpload: "20/01/2025 08:00:00"},
	}}
	app := newRekapApp(&fakePekerjaanRepo{pekerjaan: contohPekerjaan()}, risikoRepo, dokumenRepo)

	out := getRekap(t, app, "/api/rekap?area=Pabrik%20A")
	if len(out) != 1 {
		t.Fatalf("jumlah hasil = %d", len(out))
	}

	riskData := out[0]["riskData"].(map[string]interface{})
	if riskData["maxL"] != float64(3) || riskData["maxC"] != float64(5) {
		t.Errorf("maxL/maxC = %v/%v, want 3/5", riskData["maxL"], riskData["maxC"])
	}
	if details := riskData["details"].([]interface{}); len(details) != 2 {
		t.Errorf("jumlah detail risiko = %d", len(details))
	}

	docs := out[0]["docs"].([]interface{})
	if len(docs) != 1 {
		t.Fatalf("jumlah dokumen = %d", len(docs))
	}

	// Job tanpa risiko/dokumen tetap dapat struktur kosong, bukan null
	semua := getRekap(t, app, "/api/rekap?area=Pabrik%20B")
	if semua[0]["riskData"].(map[string]interface{})["maxL"] != float64(0) {
		t.Errorf("riskData job tanpa risiko = %v", semua[0]["riskData"])
	}
	if docs := semua[0]["docs"].([]interface{}); len(docs) != 0 {
		t.Errorf("docs job tanpa dokumen = %v", docs)
	}
}
