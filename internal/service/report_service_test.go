package service

import (
	"strings"
	"testing"
	"time"

	"rope_coach_backend/internal/model"
)

func sriOf(t *testing.T, metrics ...model.MetricItem) *float64 {
	t.Helper()
	return ComputeSRI(&model.FitnessTest{Metrics: metrics})
}

func TestComputeSRI(t *testing.T) {
	got := sriOf(t,
		model.MetricItem{Name: model.MetricSingle30, Value: 100},
		model.MetricItem{Name: model.MetricSingle60, Value: 100},
		model.MetricItem{Name: model.MetricDouble30, Value: 100},
	)
	if got == nil || *got != 100.0 {
		t.Fatalf("baseline inputs should score 100.0, got %v", got)
	}

	got = sriOf(t,
		model.MetricItem{Name: model.MetricSingle30, Value: 80},
		model.MetricItem{Name: model.MetricSingle60, Value: 150},
		model.MetricItem{Name: model.MetricDouble30, Value: 45},
	)
	// 0.4*80 + 0.4*150 + 0.2*45 = 101 → 101.0%
	if got == nil || *got != 101.0 {
		t.Fatalf("weighted score = %v, want 101.0", got)
	}

	if got = sriOf(t); got != nil {
		t.Fatalf("no metrics should give no index, got %v", *got)
	}
	if got = sriOf(t, model.MetricItem{Name: "sit_ups", Value: 30}); got != nil {
		t.Fatalf("unrelated metrics should give no index, got %v", *got)
	}
}

func TestComputeSRI_LegacyRopeSpeedFallback(t *testing.T) {
	got := sriOf(t,
		model.MetricItem{Name: model.MetricLegacyRopeSpeed, Value: 100},
		model.MetricItem{Name: model.MetricSingle60, Value: 100},
		model.MetricItem{Name: model.MetricDouble30, Value: 100},
	)
	if got == nil || *got != 100.0 {
		t.Fatalf("legacy field should substitute for 30s single, got %v", got)
	}

	// 新字段存在时不再读旧字段
	got = sriOf(t,
		model.MetricItem{Name: model.MetricSingle30, Value: 50},
		model.MetricItem{Name: model.MetricLegacyRopeSpeed, Value: 500},
	)
	if got == nil || *got != 20.0 {
		t.Fatalf("new field must win over legacy, got %v", got)
	}
}

func seedReportFixture(t *testing.T, env *testEnv) (*model.Class, *model.Student, *model.ClassCyclePlan) {
	t.Helper()
	student := mustSave(t, env.classes.SaveStudent, &model.Student{Name: "小红"})
	class := mustSave(t, env.classes.SaveClass, &model.Class{
		Name:       "竞训班",
		StudentIDs: []string{student.ID},
	})
	plan := &model.ClassCyclePlan{
		ClassID:        class.ID,
		StartDate:      time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		DurationWeeks:  4,
		FocusAbilities: []string{model.AbilitySpeed, model.AbilityEndurance},
	}
	model.NormalizeCyclePlan(plan)
	return class, student, plan
}

func addTest(t *testing.T, env *testEnv, studentID string, at time.Time, radar map[string]float64, metrics ...model.MetricItem) {
	t.Helper()
	mustSave(t, env.classes.SaveFitnessTest, &model.FitnessTest{
		StudentID: studentID,
		TestedAt:  at,
		Radar:     radar,
		Metrics:   metrics,
	})
}

func TestGenerateCycleReports_BeforeAfterComparison(t *testing.T) {
	env := newTestEnv(t)
	_, student, plan := seedReportFixture(t, env)
	start := plan.StartDate

	// 开课前两次测试，取较晚的一次作为前测
	addTest(t, env, student.ID, start.AddDate(0, 0, -30),
		map[string]float64{model.AbilitySpeed: 50, model.AbilityEndurance: 60})
	addTest(t, env, student.ID, start.AddDate(0, 0, -2),
		map[string]float64{model.AbilitySpeed: 60, model.AbilityEndurance: 62},
		model.MetricItem{Name: model.MetricSingle30, Value: 100},
		model.MetricItem{Name: model.MetricSingle60, Value: 100},
		model.MetricItem{Name: model.MetricDouble30, Value: 100})
	// 结课窗口内的第一次测试作为后测
	addTest(t, env, student.ID, start.AddDate(0, 0, 4*7-5),
		map[string]float64{model.AbilitySpeed: 72, model.AbilityEndurance: 65},
		model.MetricItem{Name: model.MetricSingle30, Value: 110},
		model.MetricItem{Name: model.MetricSingle60, Value: 120},
		model.MetricItem{Name: model.MetricDouble30, Value: 100})

	if err := env.reports.GenerateCycleReports(plan); err != nil {
		t.Fatalf("generate: %v", err)
	}
	reports, err := env.reports.ListByPlan(plan.ID)
	if err != nil || len(reports) != 1 {
		t.Fatalf("expected one report, got %d (%v)", len(reports), err)
	}
	r := reports[0]

	if r.RadarBefore[model.AbilitySpeed] != 60 {
		t.Fatalf("before snapshot should be the latest pre-start test, got %v", r.RadarBefore)
	}
	if r.RadarAfter[model.AbilitySpeed] != 72 {
		t.Fatalf("after snapshot wrong: %v", r.RadarAfter)
	}
	if r.SRIBefore == nil || *r.SRIBefore != 100.0 {
		t.Fatalf("sriBefore = %v, want 100.0", r.SRIBefore)
	}
	if r.SRIAfter == nil || *r.SRIAfter != 112.0 {
		t.Fatalf("sriAfter = %v, want 112.0", r.SRIAfter)
	}

	// 对比行只覆盖聚焦能力，按提升幅度降序
	if len(r.Deltas) != 2 {
		t.Fatalf("expected deltas for both focus abilities, got %+v", r.Deltas)
	}
	if r.Deltas[0].Ability != model.AbilitySpeed || r.Deltas[0].Delta != 12 {
		t.Fatalf("best delta should lead: %+v", r.Deltas)
	}
	if r.Deltas[1].Ability != model.AbilityEndurance || r.Deltas[1].Delta != 3 {
		t.Fatalf("weakest delta should trail: %+v", r.Deltas)
	}

	if !strings.Contains(r.Highlight, "速度提升最明显") {
		t.Fatalf("highlight = %q", r.Highlight)
	}
	if !strings.Contains(r.Highlight, "速度素质指数提升12.0%") {
		t.Fatalf("highlight should mention SRI gain: %q", r.Highlight)
	}
	if !strings.Contains(r.Suggestion, "耐力") {
		t.Fatalf("suggestion should target the weakest ability: %q", r.Suggestion)
	}

	if !r.PeriodStart.Equal(start) || !r.PeriodEnd.Equal(start.AddDate(0, 0, 4*7)) {
		t.Fatalf("period = %v ~ %v", r.PeriodStart, r.PeriodEnd)
	}
}

func TestGenerateCycleReports_NoTestDataStillProducesRow(t *testing.T) {
	env := newTestEnv(t)
	_, student, plan := seedReportFixture(t, env)

	if err := env.reports.GenerateCycleReports(plan); err != nil {
		t.Fatalf("generate: %v", err)
	}
	reports, _ := env.reports.ListByPlan(plan.ID)
	if len(reports) != 1 {
		t.Fatalf("student without tests still gets a row, got %d", len(reports))
	}
	r := reports[0]
	if r.StudentID != student.ID {
		t.Fatalf("wrong student: %+v", r)
	}
	if r.SRIBefore != nil || r.SRIAfter != nil {
		t.Fatalf("no tests means no indexes: %+v", r)
	}
	if len(r.Deltas) != 0 || r.Highlight != "" {
		t.Fatalf("no data should leave comparison empty: %+v", r)
	}
	if !strings.Contains(r.Suggestion, "建议增加体测频次") {
		t.Fatalf("expected generic suggestion, got %q", r.Suggestion)
	}
}

func TestGenerateCycleReports_MissingClassIsSilent(t *testing.T) {
	env := newTestEnv(t)

	plan := &model.ClassCyclePlan{ClassID: "ghost-class", DurationWeeks: 2}
	model.NormalizeCyclePlan(plan)

	if err := env.reports.GenerateCycleReports(plan); err != nil {
		t.Fatalf("missing class should be silent, got %v", err)
	}
	reports, _ := env.reports.ListByPlan(plan.ID)
	if len(reports) != 0 {
		t.Fatalf("expected no reports, got %d", len(reports))
	}
}

func TestGenerateCycleReports_RerunReplacesRows(t *testing.T) {
	env := newTestEnv(t)
	_, student, plan := seedReportFixture(t, env)

	if err := env.reports.GenerateCycleReports(plan); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, _ := env.reports.ListByPlan(plan.ID)
	if len(first) != 1 {
		t.Fatalf("first run rows = %d", len(first))
	}

	addTest(t, env, student.ID, plan.StartDate.AddDate(0, 0, -1),
		map[string]float64{model.AbilitySpeed: 55})

	if err := env.reports.GenerateCycleReports(plan); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, _ := env.reports.ListByPlan(plan.ID)
	if len(second) != 1 {
		t.Fatalf("rerun must replace, not append: %d rows", len(second))
	}
	if second[0].ID == first[0].ID {
		t.Fatalf("rerun should write fresh rows")
	}
	if second[0].RadarBefore[model.AbilitySpeed] != 55 {
		t.Fatalf("rerun should pick up new test data: %v", second[0].RadarBefore)
	}
}

func TestGenerateCycleReports_SkipsUnknownStudentIDs(t *testing.T) {
	env := newTestEnv(t)

	student := mustSave(t, env.classes.SaveStudent, &model.Student{Name: "在册学员"})
	class := mustSave(t, env.classes.SaveClass, &model.Class{
		Name:       "混合名册",
		StudentIDs: []string{"gone-student", student.ID},
	})
	plan := &model.ClassCyclePlan{ClassID: class.ID, DurationWeeks: 1}
	model.NormalizeCyclePlan(plan)

	if err := env.reports.GenerateCycleReports(plan); err != nil {
		t.Fatalf("generate: %v", err)
	}
	reports, _ := env.reports.ListByPlan(plan.ID)
	if len(reports) != 1 || reports[0].StudentID != student.ID {
		t.Fatalf("dangling roster entries must be skipped: %+v", reports)
	}
}
