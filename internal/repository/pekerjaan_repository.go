package repository

import (
	"simops-backend/internal/model"

	"gorm.io/gorm"
)

type PekerjaanRepository interface {
	Create(pekerjaan model.Pekerjaan) error
	GetAll() ([]model.Pekerjaan, error)
	GetByIDPekerjaan(id string) (*model.Pekerjaan, error)
	Update(pekerjaan *model.Pekerjaan) error
}

type pekerjaanRepository struct {
	db *gorm.DB
}

func NewPekerjaanRepository(db *gorm.DB) PekerjaanRepository {
	return &pekerjaanRepository{db}
}

func (r *pekerjaanRepository) Create(pekerjaan model.Pekerjaan) error {
	return r.db.Create(&pekerjaan).Error
}

func (r *pekerjaanRepository) GetAll() ([]model.Pekerjaan, error) {
	var list []model.Pekerjaan
	err := r.db.Order("created_at asc").Find(&list).Error
	return list, err
}

func (r *pekerjaanRepository) GetByIDPekerjaan(id string) (*model.Pekerjaan, error) {
	var pekerjaan model.Pekerjaan
	err := r.db.Where("id_pekerjaan = ?", id).First(&pekerjaan).Error
	if err != nil {
		return nil, err
	}
	return &pekerjaan, nil
}

func (r *pekerjaanRepository) Update(pekerjaan *model.Pekerjaan) error {
	return r.db.Save(pekerjaan).Error
}
