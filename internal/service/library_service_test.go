package service

import (
	"testing"

	"rope_coach_backend/internal/model"
	"rope_coach_backend/internal/util"
)

func TestSaveStage_AssignsIDAndCoercesArrays(t *testing.T) {
	env := newTestEnv(t)

	stage := &model.Stage{Name: "节奏启蒙期"}
	mustSave(t, env.library.SaveStage, stage)
	if stage.ID == "" {
		t.Fatalf("expected assigned id")
	}

	got, err := env.library.Repo.GetStage(stage.ID)
	if err != nil {
		t.Fatalf("get stage: %v", err)
	}
	if got == nil {
		t.Fatalf("stage not persisted")
	}
	if got.Name != "节奏启蒙期" {
		t.Fatalf("name mismatch: %q", got.Name)
	}
	if got.FocusAbilities == nil || got.CoreTasks == nil || got.Milestones == nil {
		t.Fatalf("expected array fields coerced to empty, got %+v", got)
	}
}

func TestSaveStage_UpsertOverwritesByID(t *testing.T) {
	env := newTestEnv(t)

	stage := mustSave(t, env.library.SaveStage, &model.Stage{Name: "v1"})
	mustSave(t, env.library.SaveStage, &model.Stage{
		AssetBase: model.AssetBase{ID: stage.ID},
		Name:      "v2",
	})

	got, _ := env.library.Repo.GetStage(stage.ID)
	if got == nil || got.Name != "v2" {
		t.Fatalf("expected last write to win, got %+v", got)
	}

	all, _ := env.library.Repo.ListStages()
	if len(all) != 1 {
		t.Fatalf("expected a single record, got %d", len(all))
	}
}

func TestGetMissing_ReturnsNilNotError(t *testing.T) {
	env := newTestEnv(t)

	got, err := env.library.Repo.GetUnit("no-such-unit")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for absent record")
	}
}

func TestDeleteMissing_IsSilentNoop(t *testing.T) {
	env := newTestEnv(t)

	if err := env.library.DeleteDrill("never-existed"); err != nil {
		t.Fatalf("delete of missing id should be a no-op, got %v", err)
	}
}

func TestDeleteReferencedUnit_DoesNotBreakPlanRendering(t *testing.T) {
	env := newTestEnv(t)

	unit := mustSave(t, env.library.SaveUnit, &model.Unit{Name: "基础单摇课"})
	plan := mustSave(t, env.library.SavePlan, &model.Plan{
		Name:  "八周入门",
		Weeks: []model.PlanWeek{{Week: 1, UnitIDs: []string{unit.ID}}},
	})

	if err := env.library.DeleteUnit(unit.ID); err != nil {
		t.Fatalf("delete unit: %v", err)
	}

	// 悬空引用保留在周条目里，读取时由消费方降级处理
	got, _ := env.library.Repo.GetPlan(plan.ID)
	if got == nil || len(got.Weeks) != 1 || len(got.Weeks[0].UnitIDs) != 1 {
		t.Fatalf("plan weeks should be untouched, got %+v", got)
	}
	resolved, err := env.library.Repo.GetUnit(got.Weeks[0].UnitIDs[0])
	if err != nil || resolved != nil {
		t.Fatalf("dangling lookup should yield nil, nil; got %v, %v", resolved, err)
	}
}

func TestExportLibrary_ReflectsEveryMutation(t *testing.T) {
	env := newTestEnv(t)

	drill := mustSave(t, env.library.SaveDrill, &model.Drill{Name: "开合跳30秒"})

	snap, err := env.library.ExportLibrary()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(snap.Drills) != 1 || snap.Drills[0].ID != drill.ID {
		t.Fatalf("expected export to contain the saved drill, got %+v", snap.Drills)
	}

	if err := env.library.DeleteDrill(drill.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	snap, err = env.library.ExportLibrary()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(snap.Drills) != 0 {
		t.Fatalf("expected export to reflect deletion, got %+v", snap.Drills)
	}
}

func TestImportLibrary_ReplaceClearsOwnedKinds(t *testing.T) {
	env := newTestEnv(t)

	mustSave(t, env.library.SaveStage, &model.Stage{Name: "旧阶段"})
	mustSave(t, env.library.SaveGame, &model.Game{Name: "旧游戏"})
	if err := env.puzzles.SaveTemplate(&model.PuzzleTemplate{Name: "旧卡组"}); err != nil {
		t.Fatalf("save puzzle: %v", err)
	}

	incoming := &model.LibrarySnapshot{
		Stages:  []model.Stage{{Name: "新阶段"}},
		Puzzles: []model.PuzzleTemplate{{Name: "新卡组"}},
	}
	if err := env.library.ImportLibrary(incoming, true); err != nil {
		t.Fatalf("import: %v", err)
	}

	snap, err := env.library.ExportLibrary()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(snap.Stages) != 1 || snap.Stages[0].Name != "新阶段" {
		t.Fatalf("expected stages replaced, got %+v", snap.Stages)
	}
	// replace 清空所有自有集合，即使快照中没有对应的键
	if len(snap.Games) != 0 {
		t.Fatalf("expected games cleared on replace, got %+v", snap.Games)
	}
	if len(snap.Puzzles) != 1 || snap.Puzzles[0].Name != "新卡组" {
		t.Fatalf("expected puzzles replaced via peer store, got %+v", snap.Puzzles)
	}
}

func TestImportLibrary_AdditiveMergesById(t *testing.T) {
	env := newTestEnv(t)

	keep := mustSave(t, env.library.SaveDrill, &model.Drill{Name: "保留动作"})
	collide := mustSave(t, env.library.SaveDrill, &model.Drill{Name: "将被覆盖"})

	incoming := &model.LibrarySnapshot{
		Drills: []model.Drill{
			{AssetBase: model.AssetBase{ID: collide.ID}, Name: "覆盖后的动作"},
			{Name: "全新动作"},
		},
	}
	if err := env.library.ImportLibrary(incoming, false); err != nil {
		t.Fatalf("import: %v", err)
	}

	snap, _ := env.library.ExportLibrary()
	if len(snap.Drills) != 3 {
		t.Fatalf("expected 3 drills after additive import, got %d", len(snap.Drills))
	}
	byID := map[string]string{}
	for _, d := range snap.Drills {
		byID[d.ID] = d.Name
	}
	if byID[keep.ID] != "保留动作" {
		t.Fatalf("pre-existing drill should survive additive import")
	}
	if byID[collide.ID] != "覆盖后的动作" {
		t.Fatalf("colliding id should be overwritten, got %q", byID[collide.ID])
	}
}

func TestImportLibrary_NormalizesIncomingRecords(t *testing.T) {
	env := newTestEnv(t)

	incoming := &model.LibrarySnapshot{
		Units: []model.Unit{{Name: "无ID单元", Blocks: []model.Block{{Period: "warmup"}}}},
	}
	if err := env.library.ImportLibrary(incoming, false); err != nil {
		t.Fatalf("import: %v", err)
	}

	units, _ := env.library.Repo.ListUnits()
	if len(units) != 1 || units[0].ID == "" {
		t.Fatalf("expected imported unit to get an id, got %+v", units)
	}
	if units[0].Blocks[0].DrillIDs == nil {
		t.Fatalf("expected nested block slices coerced")
	}
}

func TestReplaceAssets_SingleKind(t *testing.T) {
	env := newTestEnv(t)

	mustSave(t, env.library.SaveMissionCard, &model.MissionCard{Name: "旧任务卡"})
	mustSave(t, env.library.SaveDrill, &model.Drill{Name: "不受影响"})

	payload := []byte(`[{"name":"新任务卡A"},{"name":"新任务卡B"}]`)
	if err := env.library.ReplaceAssets(model.KindMission, payload); err != nil {
		t.Fatalf("replace: %v", err)
	}

	missions, _ := env.library.Repo.ListMissionCards()
	if len(missions) != 2 {
		t.Fatalf("expected mission cards replaced, got %d", len(missions))
	}
	for _, m := range missions {
		if m.ID == "" || m.Blocks == nil {
			t.Fatalf("expected normalized mission card, got %+v", m)
		}
	}

	drills, _ := env.library.Repo.ListDrills()
	if len(drills) != 1 {
		t.Fatalf("replace must only touch its own kind, got %d drills", len(drills))
	}
}

func TestReplaceAssets_UnknownKind(t *testing.T) {
	env := newTestEnv(t)

	if err := env.library.ReplaceAssets(model.AssetKind("widgets"), []byte(`[]`)); err != util.ErrUnknownAssetKind {
		t.Fatalf("expected ErrUnknownAssetKind, got %v", err)
	}
}
