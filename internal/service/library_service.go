package service

import (
	"context"
	"encoding/json"
	"time"

	"rope_coach_backend/internal/model"
	"rope_coach_backend/internal/repository"
	"rope_coach_backend/internal/util"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const snapshotCacheKey = "rope_coach:library:snapshot"
const snapshotCacheTTL = 10 * time.Minute

// LibraryService 课程资产库：八类自有资产的增删改查、整库导出/导入
// 与按类批量替换。所有写路径先归一化（补ID、补空数组）再落库；
// 导出结果在 Redis 缓存，任何变更使缓存失效，保证读到写后视图。
type LibraryService struct {
	Repo    *repository.LibraryRepository
	Puzzles *PuzzleService
	DB      *gorm.DB
	Redis   *redis.Client // 可为 nil，此时不做快照缓存
}

func NewLibraryService(repo *repository.LibraryRepository, puzzles *PuzzleService, db *gorm.DB, rdb *redis.Client) *LibraryService {
	s := &LibraryService{Repo: repo, Puzzles: puzzles, DB: db, Redis: rdb}
	// 拼图是独立存储，但出现在整库快照里，它的写入同样要打掉缓存
	puzzles.OnMutate = s.invalidateSnapshot
	return s
}

func (s *LibraryService) invalidateSnapshot() {
	if s.Redis == nil {
		return
	}
	s.Redis.Del(context.Background(), snapshotCacheKey)
}

// ExportLibrary 读出全部九类资产组成一份快照。
func (s *LibraryService) ExportLibrary() (*model.LibrarySnapshot, error) {
	if s.Redis != nil {
		if raw, err := s.Redis.Get(context.Background(), snapshotCacheKey).Bytes(); err == nil {
			var cached model.LibrarySnapshot
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	snap := &model.LibrarySnapshot{}
	var err error
	if snap.Stages, err = s.Repo.ListStages(); err != nil {
		return nil, err
	}
	if snap.Plans, err = s.Repo.ListPlans(); err != nil {
		return nil, err
	}
	if snap.Units, err = s.Repo.ListUnits(); err != nil {
		return nil, err
	}
	if snap.Qualities, err = s.Repo.ListQualities(); err != nil {
		return nil, err
	}
	if snap.Drills, err = s.Repo.ListDrills(); err != nil {
		return nil, err
	}
	if snap.Games, err = s.Repo.ListGames(); err != nil {
		return nil, err
	}
	if snap.Missions, err = s.Repo.ListMissionCards(); err != nil {
		return nil, err
	}
	if snap.Cycles, err = s.Repo.ListCycleTemplates(); err != nil {
		return nil, err
	}
	if snap.Puzzles, err = s.Puzzles.ListTemplates(); err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if raw, err := json.Marshal(snap); err == nil {
			s.Redis.Set(context.Background(), snapshotCacheKey, raw, snapshotCacheTTL)
		}
	}
	return snap, nil
}

// ImportLibrary 整库导入。八类自有集合在一个事务内完成
// （replace 时先全部清空，快照中缺失的数组不触碰对应集合）；
// puzzles 属于对等存储，在事务提交后单独导入，不与前者原子。
func (s *LibraryService) ImportLibrary(snap *model.LibrarySnapshot, replace bool) error {
	model.NormalizeSnapshot(snap)

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		r := s.Repo.WithTx(tx)
		if replace {
			if err := r.ClearStages(); err != nil {
				return err
			}
			if err := r.ClearPlans(); err != nil {
				return err
			}
			if err := r.ClearUnits(); err != nil {
				return err
			}
			if err := r.ClearQualities(); err != nil {
				return err
			}
			if err := r.ClearDrills(); err != nil {
				return err
			}
			if err := r.ClearGames(); err != nil {
				return err
			}
			if err := r.ClearMissionCards(); err != nil {
				return err
			}
			if err := r.ClearCycleTemplates(); err != nil {
				return err
			}
		}
		if snap.Stages != nil {
			if err := r.BulkPutStages(snap.Stages); err != nil {
				return err
			}
		}
		if snap.Plans != nil {
			if err := r.BulkPutPlans(snap.Plans); err != nil {
				return err
			}
		}
		if snap.Units != nil {
			if err := r.BulkPutUnits(snap.Units); err != nil {
				return err
			}
		}
		if snap.Qualities != nil {
			if err := r.BulkPutQualities(snap.Qualities); err != nil {
				return err
			}
		}
		if snap.Drills != nil {
			if err := r.BulkPutDrills(snap.Drills); err != nil {
				return err
			}
		}
		if snap.Games != nil {
			if err := r.BulkPutGames(snap.Games); err != nil {
				return err
			}
		}
		if snap.Missions != nil {
			if err := r.BulkPutMissionCards(snap.Missions); err != nil {
				return err
			}
		}
		if snap.Cycles != nil {
			if err := r.BulkPutCycleTemplates(snap.Cycles); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if snap.Puzzles != nil || replace {
		if err := s.Puzzles.ImportTemplates(snap.Puzzles, replace); err != nil {
			return err
		}
	}

	s.invalidateSnapshot()
	return nil
}

// ReplaceAssets 按类批量替换：清空该类后整批写入，单类事务。
// data 必须是该类记录的 JSON 数组，调用方（控制器）已保证可解析。
func (s *LibraryService) ReplaceAssets(kind model.AssetKind, data []byte) error {
	var err error
	switch kind {
	case model.KindStage:
		var items []model.Stage
		if err = json.Unmarshal(data, &items); err == nil {
			err = replaceKind(s, items, model.NormalizeStage,
				(*repository.LibraryRepository).ClearStages,
				(*repository.LibraryRepository).BulkPutStages)
		}
	case model.KindPlan:
		var items []model.Plan
		if err = json.Unmarshal(data, &items); err == nil {
			err = replaceKind(s, items, model.NormalizePlan,
				(*repository.LibraryRepository).ClearPlans,
				(*repository.LibraryRepository).BulkPutPlans)
		}
	case model.KindUnit:
		var items []model.Unit
		if err = json.Unmarshal(data, &items); err == nil {
			err = replaceKind(s, items, model.NormalizeUnit,
				(*repository.LibraryRepository).ClearUnits,
				(*repository.LibraryRepository).BulkPutUnits)
		}
	case model.KindQuality:
		var items []model.Quality
		if err = json.Unmarshal(data, &items); err == nil {
			err = replaceKind(s, items, model.NormalizeQuality,
				(*repository.LibraryRepository).ClearQualities,
				(*repository.LibraryRepository).BulkPutQualities)
		}
	case model.KindDrill:
		var items []model.Drill
		if err = json.Unmarshal(data, &items); err == nil {
			err = replaceKind(s, items, model.NormalizeDrill,
				(*repository.LibraryRepository).ClearDrills,
				(*repository.LibraryRepository).BulkPutDrills)
		}
	case model.KindGame:
		var items []model.Game
		if err = json.Unmarshal(data, &items); err == nil {
			err = replaceKind(s, items, model.NormalizeGame,
				(*repository.LibraryRepository).ClearGames,
				(*repository.LibraryRepository).BulkPutGames)
		}
	case model.KindMission:
		var items []model.MissionCard
		if err = json.Unmarshal(data, &items); err == nil {
			err = replaceKind(s, items, model.NormalizeMissionCard,
				(*repository.LibraryRepository).ClearMissionCards,
				(*repository.LibraryRepository).BulkPutMissionCards)
		}
	case model.KindCycle:
		var items []model.CycleTemplate
		if err = json.Unmarshal(data, &items); err == nil {
			err = replaceKind(s, items, model.NormalizeCycleTemplate,
				(*repository.LibraryRepository).ClearCycleTemplates,
				(*repository.LibraryRepository).BulkPutCycleTemplates)
		}
	case model.KindPuzzle:
		var items []model.PuzzleTemplate
		if err = json.Unmarshal(data, &items); err == nil {
			err = s.Puzzles.ReplaceTemplates(items)
		}
	default:
		return util.ErrUnknownAssetKind
	}
	if err != nil {
		return err
	}

	s.invalidateSnapshot()
	return nil
}

func replaceKind[T any](
	s *LibraryService,
	items []T,
	normalize func(*T),
	clear func(*repository.LibraryRepository) error,
	bulkPut func(*repository.LibraryRepository, []T) error,
) error {
	for i := range items {
		normalize(&items[i])
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		r := s.Repo.WithTx(tx)
		if err := clear(r); err != nil {
			return err
		}
		return bulkPut(r, items)
	})
}

// ----- 读取：直接透传存储层，缓存只针对整库快照 -----

func (s *LibraryService) ListStages() ([]model.Stage, error) { return s.Repo.ListStages() }
func (s *LibraryService) GetStage(id string) (*model.Stage, error) {
	return s.Repo.GetStage(id)
}

func (s *LibraryService) ListPlans() ([]model.Plan, error) { return s.Repo.ListPlans() }
func (s *LibraryService) GetPlan(id string) (*model.Plan, error) {
	return s.Repo.GetPlan(id)
}

func (s *LibraryService) ListUnits() ([]model.Unit, error) { return s.Repo.ListUnits() }
func (s *LibraryService) GetUnit(id string) (*model.Unit, error) {
	return s.Repo.GetUnit(id)
}

func (s *LibraryService) ListQualities() ([]model.Quality, error) { return s.Repo.ListQualities() }
func (s *LibraryService) GetQuality(id string) (*model.Quality, error) {
	return s.Repo.GetQuality(id)
}

func (s *LibraryService) ListDrills() ([]model.Drill, error) { return s.Repo.ListDrills() }
func (s *LibraryService) GetDrill(id string) (*model.Drill, error) {
	return s.Repo.GetDrill(id)
}

func (s *LibraryService) ListGames() ([]model.Game, error) { return s.Repo.ListGames() }
func (s *LibraryService) GetGame(id string) (*model.Game, error) {
	return s.Repo.GetGame(id)
}

func (s *LibraryService) ListMissionCards() ([]model.MissionCard, error) {
	return s.Repo.ListMissionCards()
}
func (s *LibraryService) GetMissionCard(id string) (*model.MissionCard, error) {
	return s.Repo.GetMissionCard(id)
}

func (s *LibraryService) ListCycleTemplates() ([]model.CycleTemplate, error) {
	return s.Repo.ListCycleTemplates()
}
func (s *LibraryService) GetCycleTemplate(id string) (*model.CycleTemplate, error) {
	return s.Repo.GetCycleTemplate(id)
}

// ----- 单条保存/删除：归一化后按主键插入或整行覆盖 -----

func (s *LibraryService) SaveStage(v *model.Stage) error {
	model.NormalizeStage(v)
	if err := s.Repo.SaveStage(v); err != nil {
		return err
	}
	s.invalidateSnapshot()
	return nil
}

func (s *LibraryService) DeleteStage(id string) error {
	if err := s.Repo.DeleteStage(id); err != nil {
		return err
	}
	s.invalidateSnapshot()
	return nil
}

func (s *LibraryService) SavePlan(v *model.Plan) error {
	model.NormalizePlan(v)
	if err := s.Repo.SavePlan(v); err != nil {
		return err
	}
	s.invalidateSnapshot()
	return nil
}

func (s *LibraryService) DeletePlan(id string) error {
	if err := s.Repo.DeletePlan(id); err != nil {
		return err
	}
	s.invalidateSnapshot()
	return nil
}

func (s *LibraryService) SaveUnit(v *model.Unit) error {
	model.NormalizeUnit(v)
	if err := s.Repo.SaveUnit(v); err != nil {
		return err
	}
	s.invalidateSnapshot()
	return nil
}

func (s *LibraryService) DeleteUnit(id string) error {
	if err := s.Repo.DeleteUnit(id); err != nil {
		return err
	}
	s.invalidateSnapshot()
	return nil
}

func (s *LibraryService) SaveQuality(v *model.Quality) error {
	model.NormalizeQuality(v)
	if err := s.Repo.SaveQuality(v); err != nil {
		return err
	}
	s.invalidateSnapshot()
	return nil
}

func (s *LibraryService) DeleteQuality(id string) error {
	if err := s.Repo.DeleteQuality(id); err != nil {
		return err
	}
	s.invalidateSnapshot()
	return nil
}

func (s *LibraryService) SaveDrill(v *model.Drill) error {
	model.NormalizeDrill(v)
	if err := s.Repo.SaveDrill(v); err != nil {
		return err
	}
	s.invalidateSnapshot()
	return nil
}

func (s *LibraryService) DeleteDrill(id string) error {
	if err := s.Repo.DeleteDrill(id); err != nil {
		return err
	}
	s.invalidateSnapshot()
	return nil
}

func (s *LibraryService) SaveGame(v *model.Game) error {
	model.NormalizeGame(v)
	if err := s.Repo.SaveGame(v); err != nil {
		return err
	}
	s.invalidateSnapshot()
	return nil
}

func (s *LibraryService) DeleteGame(id string) error {
	if err := s.Repo.DeleteGame(id); err != nil {
		return err
	}
	s.invalidateSnapshot()
	return nil
}

func (s *LibraryService) SaveMissionCard(v *model.MissionCard) error {
	model.NormalizeMissionCard(v)
	if err := s.Repo.SaveMissionCard(v); err != nil {
		return err
	}
	s.invalidateSnapshot()
	return nil
}

func (s *LibraryService) DeleteMissionCard(id string) error {
	if err := s.Repo.DeleteMissionCard(id); err != nil {
		return err
	}
	s.invalidateSnapshot()
	return nil
}

func (s *LibraryService) SaveCycleTemplate(v *model.CycleTemplate) error {
	model.NormalizeCycleTemplate(v)
	if err := s.Repo.SaveCycleTemplate(v); err != nil {
		return err
	}
	s.invalidateSnapshot()
	return nil
}

func (s *LibraryService) DeleteCycleTemplate(id string) error {
	if err := s.Repo.DeleteCycleTemplate(id); err != nil {
		return err
	}
	s.invalidateSnapshot()
	return nil
}
