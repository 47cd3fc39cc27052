package repository

import (
	"rope_coach_backend/internal/model"

	"gorm.io/gorm"
)

type CyclePlanRepository struct {
	DB *gorm.DB
}

func NewCyclePlanRepository(db *gorm.DB) *CyclePlanRepository {
	return &CyclePlanRepository{DB: db}
}

func (r *CyclePlanRepository) List() ([]model.ClassCyclePlan, error) {
	return listAll[model.ClassCyclePlan](r.DB)
}

func (r *CyclePlanRepository) ListByClass(classID string) ([]model.ClassCyclePlan, error) {
	out := []model.ClassCyclePlan{}
	err := r.DB.Where("class_id = ?", classID).Order("created_at asc").Find(&out).Error
	return out, err
}

func (r *CyclePlanRepository) Get(id string) (*model.ClassCyclePlan, error) {
	return getByID[model.ClassCyclePlan](r.DB, id)
}

func (r *CyclePlanRepository) Save(p *model.ClassCyclePlan) error {
	return upsert(r.DB, p)
}

func (r *CyclePlanRepository) Delete(id string) error {
	return deleteByID[model.ClassCyclePlan](r.DB, id)
}
