package repository

import (
	"rope_coach_backend/internal/model"

	"gorm.io/gorm"
)

// PuzzleRepository 拼图卡组的独立存储，训练库不直接触碰该表。
type PuzzleRepository struct {
	DB *gorm.DB
}

func NewPuzzleRepository(db *gorm.DB) *PuzzleRepository {
	return &PuzzleRepository{DB: db}
}

func (r *PuzzleRepository) List() ([]model.PuzzleTemplate, error) {
	return listAll[model.PuzzleTemplate](r.DB)
}

func (r *PuzzleRepository) Get(id string) (*model.PuzzleTemplate, error) {
	return getByID[model.PuzzleTemplate](r.DB, id)
}

func (r *PuzzleRepository) Save(p *model.PuzzleTemplate) error {
	return upsert(r.DB, p)
}

func (r *PuzzleRepository) Delete(id string) error {
	return deleteByID[model.PuzzleTemplate](r.DB, id)
}

func (r *PuzzleRepository) Clear() error {
	return clearAll[model.PuzzleTemplate](r.DB)
}

func (r *PuzzleRepository) BulkPut(items []model.PuzzleTemplate) error {
	return bulkUpsert(r.DB, items)
}
