package repository

import (
	"rope_coach_backend/internal/model"

	"gorm.io/gorm"
)

type ClassRepository struct {
	DB *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{DB: db}
}

func (r *ClassRepository) List() ([]model.Class, error) {
	return listAll[model.Class](r.DB)
}

func (r *ClassRepository) Get(id string) (*model.Class, error) {
	return getByID[model.Class](r.DB, id)
}

func (r *ClassRepository) Save(c *model.Class) error {
	return upsert(r.DB, c)
}

func (r *ClassRepository) Delete(id string) error {
	return deleteByID[model.Class](r.DB, id)
}

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) List() ([]model.Student, error) {
	return listAll[model.Student](r.DB)
}

func (r *StudentRepository) ListByClass(classID string) ([]model.Student, error) {
	out := []model.Student{}
	err := r.DB.Where("class_id = ?", classID).Order("created_at asc").Find(&out).Error
	return out, err
}

func (r *StudentRepository) Get(id string) (*model.Student, error) {
	return getByID[model.Student](r.DB, id)
}

func (r *StudentRepository) Save(s *model.Student) error {
	return upsert(r.DB, s)
}

func (r *StudentRepository) Delete(id string) error {
	return deleteByID[model.Student](r.DB, id)
}
