package service

import (
	"testing"
	"time"

	"rope_coach_backend/internal/model"
)

func TestGetOverview_CountsAndActivePlans(t *testing.T) {
	env := newTestEnv(t)

	mustSave(t, env.library.SaveStage, &model.Stage{Name: "阶段A"})
	mustSave(t, env.library.SaveDrill, &model.Drill{Name: "动作A"})
	mustSave(t, env.library.SaveDrill, &model.Drill{Name: "动作B"})

	tpl := mustSave(t, env.library.SaveCycleTemplate, &model.CycleTemplate{
		Name:          "小周期",
		DurationWeeks: 1,
		WeekPlan:      []model.CycleWeek{{Week: 1, MissionCards: []string{"m1"}}},
	})
	active, _ := env.cycles.AssignPlan("class-1", tpl.ID, time.Now())

	done, _ := env.cycles.AssignPlan("class-2", tpl.ID, time.Now())
	if _, err := env.cycles.MarkSessionCompleted(done.ID, done.Sessions[0].ID, time.Now()); err != nil {
		t.Fatalf("finish plan: %v", err)
	}

	ov, err := env.dashboard.GetOverview()
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if ov.StageCount != 1 || ov.DrillCount != 2 || ov.CycleCount != 1 {
		t.Fatalf("counts wrong: %+v", ov)
	}
	// 迁移时预置了六个素质维度
	if ov.QualityCount != 6 {
		t.Fatalf("expected seeded qualities, got %d", ov.QualityCount)
	}
	if len(ov.ActivePlans) != 1 || ov.ActivePlans[0].ID != active.ID {
		t.Fatalf("only the unfinished plan should be active: %+v", ov.ActivePlans)
	}
}

func TestGetPlanOutline_ResolvesUnitsWithPlaceholders(t *testing.T) {
	env := newTestEnv(t)

	unit := mustSave(t, env.library.SaveUnit, &model.Unit{Name: "双摇入门课"})
	plan := mustSave(t, env.library.SavePlan, &model.Plan{
		Name: "进阶八周",
		Weeks: []model.PlanWeek{
			{Week: 1, Theme: "基础巩固", UnitIDs: []string{unit.ID, "deleted-unit"}},
		},
	})

	outline, err := env.dashboard.GetPlanOutline(plan.ID)
	if err != nil {
		t.Fatalf("outline: %v", err)
	}
	if outline.PlanName != "进阶八周" || len(outline.Weeks) != 1 {
		t.Fatalf("outline shape wrong: %+v", outline)
	}
	units := outline.Weeks[0].Units
	if len(units) != 2 || units[0] != "双摇入门课" {
		t.Fatalf("unit names not resolved: %v", units)
	}
	if units[1] != "未找到单元(deleted-unit)" {
		t.Fatalf("dangling reference should render a placeholder, got %q", units[1])
	}
}

func TestGetPlanOutline_MissingPlan(t *testing.T) {
	env := newTestEnv(t)

	outline, err := env.dashboard.GetPlanOutline("no-such-plan")
	if err != nil || outline != nil {
		t.Fatalf("missing plan should be nil, nil; got %v, %v", outline, err)
	}
}
