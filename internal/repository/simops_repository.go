package repository

import (
	"simops-backend/internal/model"

	"gorm.io/gorm"
)

type SimopsRepository interface {
	Create(simops model.Simops) error
	GetByAreaTanggal(area, tanggal string) (*model.Simops, error)
	GetByIDSimops(id string) (*model.Simops, error)
	Update(simops *model.Simops) error
	GetAll() ([]model.Simops, error)
}

type simopsRepository struct {
	db *gorm.DB
}

func NewSimopsRepository(db *gorm.DB) SimopsRepository {
	return &simopsRepository{db}
}

func (r *simopsRepository) Create(simops model.Simops) error {
	return r.db.Create(&simops).Error
}

func (r *simopsRepository) GetByAreaTanggal(area, tanggal string) (*model.Simops, error) {
	var simops model.Simops
	err := r.db.Where("area = ? AND tanggal = ?", area, tanggal).First(&simops).Error
	if err != nil {
		return nil, err
	}
	return &simops, nil
}

func (r *simopsRepository) GetByIDSimops(id string) (*model.Simops, error) {
	var simops model.Simops
	err := r.db.Where("id_simops = ?", id).First(&simops).Error
	if err != nil {
		return nil, err
	}
	return &simops, nil
}

func (r *simopsRepository) Update(simops *model.Simops) error {
	return r.db.Save(simops).Error
}

func (r *simopsRepository) GetAll() ([]model.Simops, error) {
	var list []model.Simops
	err := r.db.Order("created_at asc").Find(&list).Error
	return list, err
}
