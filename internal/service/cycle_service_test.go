package service

import (
	"testing"
	"time"

	"rope_coach_backend/internal/model"
	"rope_coach_backend/internal/util"
)

func seedTemplate(t *testing.T, env *testEnv, tpl *model.CycleTemplate) *model.CycleTemplate {
	t.Helper()
	return mustSave(t, env.library.SaveCycleTemplate, tpl)
}

func TestAssignPlan_ExpandsSessionsOnSchedule(t *testing.T) {
	env := newTestEnv(t)

	tpl := seedTemplate(t, env, &model.CycleTemplate{
		Name:           "四周速度周期",
		DurationWeeks:  2,
		FocusAbilities: []string{model.AbilitySpeed, model.AbilityEndurance},
		WeekPlan: []model.CycleWeek{
			{Week: 1, MissionCards: []string{"m1", "m2"}},
			{Week: 2, MissionCards: []string{"m3"}},
		},
	})

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	plan, err := env.cycles.AssignPlan("class-1", tpl.ID, start)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}

	if len(plan.Sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(plan.Sessions))
	}
	wantDates := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
	}
	wantWeeks := []int{1, 1, 2}
	wantCards := []string{"m1", "m2", "m3"}
	for i, sess := range plan.Sessions {
		if !sess.PlannedDate.Equal(wantDates[i]) {
			t.Fatalf("session %d planned %v, want %v", i, sess.PlannedDate, wantDates[i])
		}
		if sess.Week != wantWeeks[i] || sess.MissionCardID != wantCards[i] {
			t.Fatalf("session %d = %+v", i, sess)
		}
		if sess.ID == "" || sess.Status != model.SessionStatusPlanned {
			t.Fatalf("session %d not initialized planned: %+v", i, sess)
		}
	}

	if plan.Progress != 0 || plan.CurrentWeek != 1 {
		t.Fatalf("fresh plan progress=%v currentWeek=%d", plan.Progress, plan.CurrentWeek)
	}
	if len(plan.FocusAbilities) != 2 || plan.FocusAbilities[0] != model.AbilitySpeed {
		t.Fatalf("focus abilities not copied from template: %v", plan.FocusAbilities)
	}

	saved, err := env.cycles.GetPlan(plan.ID)
	if err != nil || saved == nil {
		t.Fatalf("plan not persisted: %v, %v", saved, err)
	}
}

func TestAssignPlan_EmptyWeekPlanIsImmediatelyComplete(t *testing.T) {
	env := newTestEnv(t)

	tpl := seedTemplate(t, env, &model.CycleTemplate{Name: "空模板", DurationWeeks: 4})

	plan, err := env.cycles.AssignPlan("class-1", tpl.ID, time.Now())
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if plan.Progress != 1 {
		t.Fatalf("empty plan should start complete, progress=%v", plan.Progress)
	}
	if len(plan.Sessions) != 0 {
		t.Fatalf("expected no sessions, got %d", len(plan.Sessions))
	}
}

func TestAssignPlan_UnknownTemplate(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.cycles.AssignPlan("class-1", "no-such-template", time.Now()); err != util.ErrTemplateNotFound {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestMarkSessionCompleted_UpdatesProgressAndWeek(t *testing.T) {
	env := newTestEnv(t)

	tpl := seedTemplate(t, env, &model.CycleTemplate{
		Name:          "两周",
		DurationWeeks: 2,
		WeekPlan: []model.CycleWeek{
			{Week: 1, MissionCards: []string{"m1"}},
			{Week: 2, MissionCards: []string{"m2", "m3"}},
		},
	})
	start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	plan, _ := env.cycles.AssignPlan("class-1", tpl.ID, start)

	done := start.AddDate(0, 0, 8)
	got, err := env.cycles.MarkSessionCompleted(plan.ID, plan.Sessions[1].ID, done)
	if err != nil {
		t.Fatalf("mark: %v", err)
	}
	if got.Sessions[1].Status != model.SessionStatusCompleted {
		t.Fatalf("session not completed: %+v", got.Sessions[1])
	}
	if got.Sessions[1].ActualDate == nil || !got.Sessions[1].ActualDate.Equal(done) {
		t.Fatalf("actual date not recorded: %+v", got.Sessions[1].ActualDate)
	}
	if got.Progress < 0.33 || got.Progress > 0.34 {
		t.Fatalf("progress = %v, want 1/3", got.Progress)
	}
	if got.CurrentWeek != 2 {
		t.Fatalf("currentWeek = %d, want 2", got.CurrentWeek)
	}
	if got.CompletedAt != nil {
		t.Fatalf("plan must not be marked complete at 1/3 progress")
	}
}

func TestMarkSessionCompleted_MissionCardFallbackUsesArrayOrder(t *testing.T) {
	env := newTestEnv(t)

	// 同一张任务卡排了两节课，按卡ID标记时取数组顺序第一节未完成的
	tpl := seedTemplate(t, env, &model.CycleTemplate{
		Name:          "重复卡",
		DurationWeeks: 2,
		WeekPlan: []model.CycleWeek{
			{Week: 1, MissionCards: []string{"card-x"}},
			{Week: 2, MissionCards: []string{"card-x"}},
		},
	})
	plan, _ := env.cycles.AssignPlan("class-1", tpl.ID, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC))

	got, err := env.cycles.MarkSessionCompleted(plan.ID, "card-x", time.Now())
	if err != nil {
		t.Fatalf("mark: %v", err)
	}
	if got.Sessions[0].Status != model.SessionStatusCompleted {
		t.Fatalf("first session should be completed")
	}
	if got.Sessions[1].Status != model.SessionStatusPlanned {
		t.Fatalf("second session must stay planned")
	}

	got, err = env.cycles.MarkSessionCompleted(plan.ID, "card-x", time.Now())
	if err != nil {
		t.Fatalf("mark second: %v", err)
	}
	if got.Sessions[1].Status != model.SessionStatusCompleted {
		t.Fatalf("repeat mark should advance to next incomplete session")
	}
}

func TestMarkSessionCompleted_MissingPlanOrSession(t *testing.T) {
	env := newTestEnv(t)

	got, err := env.cycles.MarkSessionCompleted("no-plan", "s1", time.Now())
	if err != nil || got != nil {
		t.Fatalf("missing plan should be silent, got %v, %v", got, err)
	}

	tpl := seedTemplate(t, env, &model.CycleTemplate{
		Name:          "单节",
		DurationWeeks: 1,
		WeekPlan:      []model.CycleWeek{{Week: 1, MissionCards: []string{"m1"}}},
	})
	plan, _ := env.cycles.AssignPlan("class-1", tpl.ID, time.Now())

	got, err = env.cycles.MarkSessionCompleted(plan.ID, "no-such-session", time.Now())
	if err != nil {
		t.Fatalf("unknown session should be silent, got %v", err)
	}
	if got == nil || got.Progress != 0 {
		t.Fatalf("unknown session must not change progress: %+v", got)
	}
}

func TestMarkSessionCompleted_CurrentWeekClampedToDuration(t *testing.T) {
	env := newTestEnv(t)

	// 模板周数与周条目不一致时，进度周取计划时长上限
	tpl := seedTemplate(t, env, &model.CycleTemplate{
		Name:          "越界周",
		DurationWeeks: 1,
		WeekPlan:      []model.CycleWeek{{Week: 3, MissionCards: []string{"m1", "m2"}}},
	})
	plan, _ := env.cycles.AssignPlan("class-1", tpl.ID, time.Now())

	got, err := env.cycles.MarkSessionCompleted(plan.ID, plan.Sessions[0].ID, time.Now())
	if err != nil {
		t.Fatalf("mark: %v", err)
	}
	if got.CurrentWeek != 1 {
		t.Fatalf("currentWeek = %d, want clamp to 1", got.CurrentWeek)
	}
}

func TestMarkSessionCompleted_FinishTriggersSingleReportBatch(t *testing.T) {
	env := newTestEnv(t)

	student := mustSave(t, env.classes.SaveStudent, &model.Student{Name: "小明"})
	class := mustSave(t, env.classes.SaveClass, &model.Class{
		Name:       "一班",
		StudentIDs: []string{student.ID},
	})

	tpl := seedTemplate(t, env, &model.CycleTemplate{
		Name:           "单周完结",
		DurationWeeks:  1,
		FocusAbilities: []string{model.AbilitySpeed},
		WeekPlan:       []model.CycleWeek{{Week: 1, MissionCards: []string{"m1", "m2"}}},
	})
	start := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	plan, _ := env.cycles.AssignPlan(class.ID, tpl.ID, start)

	end := start.AddDate(0, 0, 6)
	if _, err := env.cycles.MarkSessionCompleted(plan.ID, plan.Sessions[0].ID, start); err != nil {
		t.Fatalf("mark first: %v", err)
	}
	got, err := env.cycles.MarkSessionCompleted(plan.ID, plan.Sessions[1].ID, end)
	if err != nil {
		t.Fatalf("mark last: %v", err)
	}

	if got.Progress != 1 {
		t.Fatalf("progress = %v, want 1", got.Progress)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(end) {
		t.Fatalf("completedAt = %v, want %v", got.CompletedAt, end)
	}
	if got.CycleReportGeneratedAt == nil {
		t.Fatalf("report timestamp not set")
	}

	reports, err := env.reports.ListByPlan(plan.ID)
	if err != nil {
		t.Fatalf("list reports: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected one report per student, got %d", len(reports))
	}
	if reports[0].StudentID != student.ID || reports[0].ClassID != class.ID {
		t.Fatalf("report row mismatched: %+v", reports[0])
	}

	// 已盖完成章后重复标记不再生成第二批
	firstCompleted := *got.CompletedAt
	if _, err := env.cycles.MarkSessionCompleted(plan.ID, plan.Sessions[1].ID, end.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("repeat mark: %v", err)
	}
	again, _ := env.cycles.GetPlan(plan.ID)
	if !again.CompletedAt.Equal(firstCompleted) {
		t.Fatalf("completedAt changed on repeat mark: %v", again.CompletedAt)
	}
	reports, _ = env.reports.ListByPlan(plan.ID)
	if len(reports) != 1 {
		t.Fatalf("repeat mark must not add reports, got %d", len(reports))
	}
}
