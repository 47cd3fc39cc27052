package repository

import (
	"rope_coach_backend/internal/model"

	"gorm.io/gorm"
)

type CycleReportRepository struct {
	DB *gorm.DB
}

func NewCycleReportRepository(db *gorm.DB) *CycleReportRepository {
	return &CycleReportRepository{DB: db}
}

func (r *CycleReportRepository) ListByPlan(planID string) ([]model.CycleReport, error) {
	out := []model.CycleReport{}
	err := r.DB.Where("plan_id = ?", planID).Order("created_at asc").Find(&out).Error
	return out, err
}

func (r *CycleReportRepository) ListByStudent(studentID string) ([]model.CycleReport, error) {
	out := []model.CycleReport{}
	err := r.DB.Where("student_id = ?", studentID).Order("created_at desc").Find(&out).Error
	return out, err
}

func (r *CycleReportRepository) Save(rep *model.CycleReport) error {
	return upsert(r.DB, rep)
}

// DeleteByPlan 重新生成前先清掉该计划已有的全部报告行。
func (r *CycleReportRepository) DeleteByPlan(planID string) error {
	return r.DB.Where("plan_id = ?", planID).Delete(&model.CycleReport{}).Error
}
