package repository

import (
	"simops-backend/internal/model"

	"gorm.io/gorm"
)

type RisikoRepository interface {
	CreateMany(risiko []model.Risiko) error
	GetAll() ([]model.Risiko, error)
	GetByIDPekerjaan(id string) ([]model.Risiko, error)
}

type risikoRepository struct {
	db *gorm.DB
}

func NewRisikoRepository(db *gorm.DB) RisikoRepository {
	return &risikoRepository{db}
}

func (r *risikoRepository) CreateMany(risiko []model.Risiko) error {
	return r.db.Create(&risiko).Error
}

func (r *risikoRepository) GetAll() ([]model.Risiko, error) {
	var list []model.Risiko
	err := r.db.Find(&list).Error
	return list, err
}

func (r *risikoRepository) GetByIDPekerjaan(id string) ([]model.Risiko, error) {
	var list []model.Risiko
	err := r.db.Where("id_pekerjaan = ?", id).Find(&list).Error
	return list, err
}
