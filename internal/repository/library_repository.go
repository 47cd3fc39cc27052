package repository

import (
	"errors"

	"rope_coach_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LibraryRepository 管理周期模板库直接拥有的八类资产。
// 查单条未命中返回 (nil, nil)，由上层决定如何降级。
type LibraryRepository struct {
	DB *gorm.DB
}

func NewLibraryRepository(db *gorm.DB) *LibraryRepository {
	return &LibraryRepository{DB: db}
}

// WithTx 返回绑定到事务句柄的副本，供整库导入等多表写入使用。
func (r *LibraryRepository) WithTx(tx *gorm.DB) *LibraryRepository {
	return &LibraryRepository{DB: tx}
}

func getByID[T any](db *gorm.DB, id string) (*T, error) {
	var out T
	err := db.Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func listAll[T any](db *gorm.DB) ([]T, error) {
	out := []T{}
	err := db.Order("created_at asc").Find(&out).Error
	return out, err
}

// upsert 按主键插入或整行覆盖，无乐观锁，后写覆盖先写。
func upsert[T any](db *gorm.DB, rec *T) error {
	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(rec).Error
}

func bulkUpsert[T any](db *gorm.DB, recs []T) error {
	if len(recs) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&recs).Error
}

// deleteByID 删除不存在的ID是静默 no-op。
func deleteByID[T any](db *gorm.DB, id string) error {
	var zero T
	return db.Where("id = ?", id).Delete(&zero).Error
}

func clearAll[T any](db *gorm.DB) error {
	var zero T
	return db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&zero).Error
}

func (r *LibraryRepository) ListStages() ([]model.Stage, error) { return listAll[model.Stage](r.DB) }
func (r *LibraryRepository) GetStage(id string) (*model.Stage, error) {
	return getByID[model.Stage](r.DB, id)
}
func (r *LibraryRepository) SaveStage(s *model.Stage) error { return upsert(r.DB, s) }
func (r *LibraryRepository) DeleteStage(id string) error    { return deleteByID[model.Stage](r.DB, id) }
func (r *LibraryRepository) ClearStages() error             { return clearAll[model.Stage](r.DB) }
func (r *LibraryRepository) BulkPutStages(items []model.Stage) error {
	return bulkUpsert(r.DB, items)
}

func (r *LibraryRepository) ListPlans() ([]model.Plan, error) { return listAll[model.Plan](r.DB) }
func (r *LibraryRepository) GetPlan(id string) (*model.Plan, error) {
	return getByID[model.Plan](r.DB, id)
}
func (r *LibraryRepository) SavePlan(p *model.Plan) error { return upsert(r.DB, p) }
func (r *LibraryRepository) DeletePlan(id string) error   { return deleteByID[model.Plan](r.DB, id) }
func (r *LibraryRepository) ClearPlans() error            { return clearAll[model.Plan](r.DB) }
func (r *LibraryRepository) BulkPutPlans(items []model.Plan) error {
	return bulkUpsert(r.DB, items)
}

func (r *LibraryRepository) ListUnits() ([]model.Unit, error) { return listAll[model.Unit](r.DB) }
func (r *LibraryRepository) GetUnit(id string) (*model.Unit, error) {
	return getByID[model.Unit](r.DB, id)
}
func (r *LibraryRepository) SaveUnit(u *model.Unit) error { return upsert(r.DB, u) }
func (r *LibraryRepository) DeleteUnit(id string) error   { return deleteByID[model.Unit](r.DB, id) }
func (r *LibraryRepository) ClearUnits() error            { return clearAll[model.Unit](r.DB) }
func (r *LibraryRepository) BulkPutUnits(items []model.Unit) error {
	return bulkUpsert(r.DB, items)
}

func (r *LibraryRepository) ListQualities() ([]model.Quality, error) {
	return listAll[model.Quality](r.DB)
}
func (r *LibraryRepository) GetQuality(id string) (*model.Quality, error) {
	return getByID[model.Quality](r.DB, id)
}
func (r *LibraryRepository) SaveQuality(q *model.Quality) error { return upsert(r.DB, q) }
func (r *LibraryRepository) DeleteQuality(id string) error {
	return deleteByID[model.Quality](r.DB, id)
}
func (r *LibraryRepository) ClearQualities() error { return clearAll[model.Quality](r.DB) }
func (r *LibraryRepository) BulkPutQualities(items []model.Quality) error {
	return bulkUpsert(r.DB, items)
}

func (r *LibraryRepository) ListDrills() ([]model.Drill, error) { return listAll[model.Drill](r.DB) }
func (r *LibraryRepository) GetDrill(id string) (*model.Drill, error) {
	return getByID[model.Drill](r.DB, id)
}
func (r *LibraryRepository) SaveDrill(d *model.Drill) error { return upsert(r.DB, d) }
func (r *LibraryRepository) DeleteDrill(id string) error    { return deleteByID[model.Drill](r.DB, id) }
func (r *LibraryRepository) ClearDrills() error             { return clearAll[model.Drill](r.DB) }
func (r *LibraryRepository) BulkPutDrills(items []model.Drill) error {
	return bulkUpsert(r.DB, items)
}

func (r *LibraryRepository) ListGames() ([]model.Game, error) { return listAll[model.Game](r.DB) }
func (r *LibraryRepository) GetGame(id string) (*model.Game, error) {
	return getByID[model.Game](r.DB, id)
}
func (r *LibraryRepository) SaveGame(g *model.Game) error { return upsert(r.DB, g) }
func (r *LibraryRepository) DeleteGame(id string) error   { return deleteByID[model.Game](r.DB, id) }
func (r *LibraryRepository) ClearGames() error            { return clearAll[model.Game](r.DB) }
func (r *LibraryRepository) BulkPutGames(items []model.Game) error {
	return bulkUpsert(r.DB, items)
}

func (r *LibraryRepository) ListMissionCards() ([]model.MissionCard, error) {
	return listAll[model.MissionCard](r.DB)
}
func (r *LibraryRepository) GetMissionCard(id string) (*model.MissionCard, error) {
	return getByID[model.MissionCard](r.DB, id)
}
func (r *LibraryRepository) SaveMissionCard(m *model.MissionCard) error { return upsert(r.DB, m) }
func (r *LibraryRepository) DeleteMissionCard(id string) error {
	return deleteByID[model.MissionCard](r.DB, id)
}
func (r *LibraryRepository) ClearMissionCards() error { return clearAll[model.MissionCard](r.DB) }
func (r *LibraryRepository) BulkPutMissionCards(items []model.MissionCard) error {
	return bulkUpsert(r.DB, items)
}

func (r *LibraryRepository) ListCycleTemplates() ([]model.CycleTemplate, error) {
	return listAll[model.CycleTemplate](r.DB)
}
func (r *LibraryRepository) GetCycleTemplate(id string) (*model.CycleTemplate, error) {
	return getByID[model.CycleTemplate](r.DB, id)
}
func (r *LibraryRepository) SaveCycleTemplate(c *model.CycleTemplate) error { return upsert(r.DB, c) }
func (r *LibraryRepository) DeleteCycleTemplate(id string) error {
	return deleteByID[model.CycleTemplate](r.DB, id)
}
func (r *LibraryRepository) ClearCycleTemplates() error { return clearAll[model.CycleTemplate](r.DB) }
func (r *LibraryRepository) BulkPutCycleTemplates(items []model.CycleTemplate) error {
	return bulkUpsert(r.DB, items)
}
