package service

import (
	"rope_coach_backend/internal/model"
	"rope_coach_backend/internal/repository"

	"gorm.io/gorm"
)

// PuzzleService 拼图卡组的对等存储。课程库把它当作黑盒：
// 整库导入时在主事务提交之后单独调用这里（因此与其余八类不保证原子）。
type PuzzleService struct {
	Repo *repository.PuzzleRepository
	DB   *gorm.DB

	// OnMutate 写入后的通知钩子，装配时挂上课程库的快照缓存失效。
	OnMutate func()
}

func NewPuzzleService(repo *repository.PuzzleRepository, db *gorm.DB) *PuzzleService {
	return &PuzzleService{Repo: repo, DB: db}
}

func (s *PuzzleService) notify() {
	if s.OnMutate != nil {
		s.OnMutate()
	}
}

func (s *PuzzleService) ListTemplates() ([]model.PuzzleTemplate, error) {
	return s.Repo.List()
}

func (s *PuzzleService) GetTemplate(id string) (*model.PuzzleTemplate, error) {
	return s.Repo.Get(id)
}

func (s *PuzzleService) SaveTemplate(p *model.PuzzleTemplate) error {
	model.NormalizePuzzleTemplate(p)
	if err := s.Repo.Save(p); err != nil {
		return err
	}
	s.notify()
	return nil
}

func (s *PuzzleService) DeleteTemplate(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.notify()
	return nil
}

// ImportTemplates 批量导入；replace 时先清空本集合。单表事务。
func (s *PuzzleService) ImportTemplates(items []model.PuzzleTemplate, replace bool) error {
	for i := range items {
		model.NormalizePuzzleTemplate(&items[i])
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		r := repository.NewPuzzleRepository(tx)
		if replace {
			if err := r.Clear(); err != nil {
				return err
			}
		}
		return r.BulkPut(items)
	})
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

func (s *PuzzleService) ReplaceTemplates(items []model.PuzzleTemplate) error {
	return s.ImportTemplates(items, true)
}
