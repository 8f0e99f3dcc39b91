package repository

import (
	"simops-backend/internal/model"

	"gorm.io/gorm"
)

type DokumenRepository interface {
	Create(dokumen model.Dokumen) error
	GetAll() ([]model.Dokumen, error)
}

type dokumenRepository struct {
	db *gorm.DB
}

func NewDokumenRepository(db *gorm.DB) DokumenRepository {
	return &dokumenRepository{db}
}

func (r *dokumenRepository) Create(dokumen model.Dokumen) error {
	return r.db.Create(&dokumen).Error
}

func (r *dokumenRepository) GetAll() ([]model.Dokumen, error) {
	var list []model.Dokumen
	err := r.db.Find(&list).Error
	return list, err
}
