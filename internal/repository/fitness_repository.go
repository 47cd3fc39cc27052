package repository

import (
	"rope_coach_backend/internal/model"

	"gorm.io/gorm"
)

type FitnessTestRepository struct {
	DB *gorm.DB
}

func NewFitnessTestRepository(db *gorm.DB) *FitnessTestRepository {
	return &FitnessTestRepository{DB: db}
}

func (r *FitnessTestRepository) Get(id string) (*model.FitnessTest, error) {
	return getByID[model.FitnessTest](r.DB, id)
}

// ListByStudent 按测试日期升序返回某学员的全部历史记录，
// 报告生成的前后快照选取依赖这个顺序。
func (r *FitnessTestRepository) ListByStudent(studentID string) ([]model.FitnessTest, error) {
	out := []model.FitnessTest{}
	err := r.DB.Where("student_id = ?", studentID).Order("tested_at asc").Find(&out).Error
	return out, err
}

func (r *FitnessTestRepository) Save(t *model.FitnessTest) error {
	return upsert(r.DB, t)
}

func (r *FitnessTestRepository) Delete(id string) error {
	return deleteByID[model.FitnessTest](r.DB, id)
}
