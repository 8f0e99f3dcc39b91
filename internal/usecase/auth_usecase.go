package usecase

import (
	"errors"
	"time"

	"simops-backend/config"
	"simops-backend/internal/model"
	"simops-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameExists     = errors.New("Username sudah ada!")
	ErrInvalidCredentials = errors.New("Username/Password salah")
	ErrAkunPending        = errors.New("Akun Anda masih menunggu persetujuan admin")
	ErrAkunRejected       = errors.New("Akun Anda ditolak oleh admin")
)

type AuthUsecase struct {
	repo repository.AkunRepository
}

func NewAuthUsecase(repo repository.AkunRepository) *AuthUsecase {
	return &AuthUsecase{repo: repo}
}

func jwtSecret() []byte {
	return []byte(config.GetEnv("JWT_SECRET", "rahasia-simops-sangat-kuat"))
}

// Register membuat akun baru berstatus Pending. Username yang sudah terpakai
// ditolak tanpa menulis apa pun.
func (u *AuthUsecase) Register(username, password, role, area, unit string) (model.Akun, error) {
	if existing, _ := u.repo.GetByUsername(username); existing != nil {
		return model.Akun{}, ErrUsernameExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.Akun{}, err
	}

	akun := model.Akun{
		Username:          username,
		Password:          string(hashedPassword),
		Role:              role,
		Area:              area,
		Unit:              unit,
		StatusAkun:        model.StatusAkunPending,
		TanggalRegistrasi: time.Now().Format("02/01/2006 15:04:05"),
	}
	if err := u.repo.Create(akun); err != nil {
		return model.Akun{}, err
	}
	return akun, nil
}

// Login memverifikasi kredensial lalu status akun. Akun non-Active ditolak
// dengan pesan sesuai statusnya.
func (u *AuthUsecase) Login(username, password string) (*model.Akun, string, error) {
	akun, err := u.repo.GetByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(akun.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if akun.StatusAkun != model.StatusAkunActive {
		if akun.StatusAkun == model.StatusAkunPending {
			return nil, "", ErrAkunPending
		}
		return nil, "", ErrAkunRejected
	}

	claims := jwt.MapClaims{
		"username": akun.Username,
		"role":     akun.Role,
		"area":     akun.Area,
		"unit":     akun.Unit,
		"exp":      time.Now().Add(time.Hour * 24).Unix(), // Token expired dalam 24 jam
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString(jwtSecret())
	if err != nil {
		return nil, "", err
	}

	return akun, t, nil
}
