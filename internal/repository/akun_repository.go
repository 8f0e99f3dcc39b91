package repository

import (
	"simops-backend/internal/model"

	"gorm.io/gorm"
)

type AkunRepository interface {
	Create(akun model.Akun) error
	GetByUsername(username string) (*model.Akun, error)
	GetPending() ([]model.Akun, error)
	Update(akun *model.Akun) error
}

type akunRepository struct {
	db *gorm.DB
}

func NewAkunRepository(db *gorm.DB) AkunRepository {
	return &akunRepository{db}
}

func (r *akunRepository) Create(akun model.Akun) error {
	return r.db.Create(&akun).Error
}

func (r *akunRepository) GetByUsername(username string) (*model.Akun, error) {
	var akun model.Akun
	err := r.db.Where("username = ?", username).First(&akun).Error
	if err != nil {
		return nil, err
	}
	return &akun, nil
}

func (r *akunRepository) GetPending() ([]model.Akun, error) {
	var list []model.Akun
	err := r.db.Where("status_akun = ?", model.StatusAkunPending).Order("created_at asc").Find(&list).Error
	return list, err
}

func (r *akunRepository) Update(akun *model.Akun) error {
	return r.db.Save(akun).Error
}
