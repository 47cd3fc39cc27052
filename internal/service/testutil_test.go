package service

import (
	"fmt"
	"testing"

	"rope_coach_backend/internal/repository"
	"rope_coach_backend/pkg/database"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB 每个测试一个独立的内存库，结构与生产迁移一致。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type testEnv struct {
	db        *gorm.DB
	library   *LibraryService
	puzzles   *PuzzleService
	classes   *ClassService
	reports   *ReportService
	cycles    *CycleService
	dashboard *DashboardService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)

	libraryRepo := repository.NewLibraryRepository(db)
	puzzleRepo := repository.NewPuzzleRepository(db)
	classRepo := repository.NewClassRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	testRepo := repository.NewFitnessTestRepository(db)
	planRepo := repository.NewCyclePlanRepository(db)
	reportRepo := repository.NewCycleReportRepository(db)

	puzzles := NewPuzzleService(puzzleRepo, db)
	library := NewLibraryService(libraryRepo, puzzles, db, nil)
	classes := NewClassService(classRepo, studentRepo, testRepo)
	reports := NewReportService(classRepo, studentRepo, testRepo, reportRepo)
	cycles := NewCycleService(libraryRepo, planRepo, reports)
	dashboard := NewDashboardService(libraryRepo, planRepo, reportRepo)

	return &testEnv{
		db:        db,
		library:   library,
		puzzles:   puzzles,
		classes:   classes,
		reports:   reports,
		cycles:    cycles,
		dashboard: dashboard,
	}
}

func mustSave[T any](t *testing.T, save func(*T) error, v *T) *T {
	t.Helper()
	if err := save(v); err != nil {
		t.Fatalf("save %T: %v", v, err)
	}
	return v
}
