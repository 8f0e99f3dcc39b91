package handler

import (
	"testing"

	"simops-backend/internal/mailer"
	"simops-backend/internal/model"
	"simops-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func newAuthApp(repo *fakeAkunRepo) *fiber.App {
	app := fiber.New()
	hdl := NewAuthHandler(usecase.NewAuthUsecase(repo), mailer.New())
	app.Post("/api/auth/register", hdl.Register)
	app.Post("/api/auth/login", hdl.Login)
	return app
}

func hashUntukTest(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hashed)
}

func TestRegisterUsernameSudahAda(t *testing.T) {
	repo := &fakeAkunRepo{akun: []model.Akun{{Username: "budi", StatusAkun: model.StatusAkunActive}}}
	app := newAuthApp(repo)

	status, out := doJSON(t, app, "POST", "/api/auth/register",
		`{"regUser":"budi","regPass":"rahasia","regRole":"Worker","area":"Pabrik 1","unit":"Urea"}`)

	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if out["message"] != "Username sudah ada!" {
		t.Errorf("message = %v", out["message"])
	}
	if repo.createCalls != 0 {
		t.Errorf("createCalls = %d, duplikat tidak boleh menulis", repo.createCalls)
	}
}

func TestRegisterAkunBaruPending(t *testing.T) {
	repo := &fakeAkunRepo{}
	app := newAuthApp(repo)

	status, out := doJSON(t, app, "POST", "/api/auth/register",
		`{"regUser":"sari","regPass":"rahasia","regRole":"Worker","area":"Pabrik 2","unit":"Amoniak"}`)

	if status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if out["status"] != model.StatusAkunPending {
		t.Errorf("status akun = %v, want Pending", out["status"])
	}
	if len(repo.akun) != 1 {
		t.Fatalf("jumlah akun = %d", len(repo.akun))
	}
	if repo.akun[0].Password == "rahasia" {
		t.Error("password tersimpan plaintext, harus hash")
	}
}

func TestLoginSalahKredensial(t *testing.T) {
	repo := &fakeAkunRepo{akun: []model.Akun{{
		Username:   "budi",
		Password:   hashUntukTest(t, "benar"),
		StatusAkun: model.StatusAkunActive,
	}}}
	app := newAuthApp(repo)

	status, out := doJSON(t, app, "POST", "/api/auth/login", `{"username":"budi","password":"salah"}`)
	if status != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", status)
	}
	if out["message"] != "Username/Password salah" {
		t.Errorf("message = %v", out["message"])
	}

	status, _ = doJSON(t, app, "POST", "/api/auth/login", `{"username":"tidak-ada","password":"x"}`)
	if status != fiber.StatusUnauthorized {
		t.Errorf("user tidak dikenal: status = %d, want 401", status)
	}
}

func TestLoginAkunBelumAktif(t *testing.T) {
	repo := &fakeAkunRepo{akun: []model.Akun{
		{Username: "pending", Password: hashUntukTest(t, "pw"), StatusAkun: model.StatusAkunPending},
		{Username: "ditolak", Password: hashUntukTest(t, "pw"), StatusAkun: model.StatusAkunRejected},
	}}
	app := newAuthApp(repo)

	status, out := doJSON(t, app, "POST", "/api/auth/login", `{"username":"pending","password":"pw"}`)
	if status != fiber.StatusForbidden {
		t.Fatalf("status pending = %d, want 403", status)
	}
	if out["message"] != "Akun Anda masih menunggu persetujuan admin" {
		t.Errorf("pesan pending = %v", out["message"])
	}

	status, out = doJSON(t, app, "POST", "/api/auth/login", `{"username":"ditolak","password":"pw"}`)
	if status != fiber.StatusForbidden {
		t.Fatalf("status ditolak = %d, want 403", status)
	}
	if out["message"] != "Akun Anda ditolak oleh admin" {
		t.Errorf("pesan ditolak = %v", out["message"])
	}
}

func TestLoginSukses(t *testing.T) {
	repo := &fakeAkunRepo{akun: []model.Akun{{
		Username:   "budi",
		Password:   hashUntukTest(t, "benar"),
		Role:       "Supervisor",
		Area:       "Pabrik 1",
		Unit:       "Urea",
		StatusAkun: model.StatusAkunActive,
	}}}
	app := newAuthApp(repo)

	status, out := doJSON(t, app, "POST", "/api/auth/login", `{"username":"budi","password":"benar"}`)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}

	if out["status"] != "Sukses" || out["role"] != "Supervisor" || out["username"] != "budi" ||
		out["area"] != "Pabrik 1" || out["unit"] != "Urea" || out["statusAkun"] != model.StatusAkunActive {
		t.Errorf("response = %v", out)
	}
	if token, ok := out["token"].(string); !ok || token == "" {
		t.Error("token JWT kosong")
	}
}
