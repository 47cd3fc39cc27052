package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"rope_coach_backend/internal/model"
	"rope_coach_backend/internal/repository"
	"rope_coach_backend/pkg/monitoring"
)

// sriBaseline 速度素质指数的固定基准分。
const sriBaseline = 100.0

// ReportService 结课报告生成器。只被 CycleService 在计划进度
// 到达 100% 时同步调用；对外只读班级/学员/体测三个存储。
type ReportService struct {
	Classes  *repository.ClassRepository
	Students *repository.StudentRepository
	Tests    *repository.FitnessTestRepository
	Reports  *repository.CycleReportRepository
}

func NewReportService(
	classes *repository.ClassRepository,
	students *repository.StudentRepository,
	tests *repository.FitnessTestRepository,
	reports *repository.CycleReportRepository,
) *ReportService {
	return &ReportService{Classes: classes, Students: students, Tests: tests, Reports: reports}
}

// GenerateCycleReports 为计划班级的每名学员生成前后对比报告。
// 班级不存在时静默放弃；先删掉该计划已有报告再整批重建，
// 所以对同一计划重复执行是替换而不是追加。
func (s *ReportService) GenerateCycleReports(plan *model.ClassCyclePlan) error {
	cls, err := s.Classes.Get(plan.ClassID)
	if err != nil {
		return err
	}
	if cls == nil {
		return nil
	}

	if err := s.Reports.DeleteByPlan(plan.ID); err != nil {
		return err
	}

	endDate := cycleEndDate(plan)

	for _, studentID := range cls.StudentIDs {
		student, err := s.Students.Get(studentID)
		if err != nil {
			return err
		}
		if student == nil {
			continue
		}

		tests, err := s.Tests.ListByStudent(studentID)
		if err != nil {
			return err
		}

		before := snapshotBefore(tests, plan.StartDate)
		after := snapshotAfter(tests, plan.StartDate, plan.DurationWeeks)

		report := buildReport(plan, studentID, before, after)
		report.GeneratedAt = time.Now()
		report.PeriodStart = plan.StartDate
		report.PeriodEnd = endDate

		model.NormalizeCycleReport(report)
		if err := s.Reports.Save(report); err != nil {
			return err
		}
		monitoring.CycleReportCounter.Inc()
	}
	return nil
}

func (s *ReportService) ListByPlan(planID string) ([]model.CycleReport, error) {
	return s.Reports.ListByPlan(planID)
}

func (s *ReportService) ListByStudent(studentID string) ([]model.CycleReport, error) {
	return s.Reports.ListByStudent(studentID)
}

// cycleEndDate 名义结束日期：最后一节课的实际/计划日期
// 与 startDate + durationWeeks*7 天中较晚者，防止课次拖期。
func cycleEndDate(plan *model.ClassCyclePlan) time.Time {
	end := plan.StartDate.AddDate(0, 0, plan.DurationWeeks*7)
	for _, sess := range plan.Sessions {
		d := sess.PlannedDate
		if sess.ActualDate != nil {
			d = *sess.ActualDate
		}
		if d.After(end) {
			end = d
		}
	}
	return end
}

// snapshotBefore 开课日或之前的最后一次测试。
func snapshotBefore(tests []model.FitnessTest, start time.Time) *model.FitnessTest {
	var found *model.FitnessTest
	for i := range tests {
		if !tests[i].TestedAt.After(start) {
			found = &tests[i]
		}
	}
	return found
}

// snapshotAfter 结课窗口（startDate + durationWeeks*7 - 7 天）当天
// 或之后的第一次测试；没有则回退到最近一次测试。
func snapshotAfter(tests []model.FitnessTest, start time.Time, durationWeeks int) *model.FitnessTest {
	if len(tests) == 0 {
		return nil
	}
	threshold := start.AddDate(0, 0, durationWeeks*7-7)
	for i := range tests {
		if !tests[i].TestedAt.Before(threshold) {
			return &tests[i]
		}
	}
	return &tests[len(tests)-1]
}

func buildReport(plan *model.ClassCyclePlan, studentID string, before, after *model.FitnessTest) *model.CycleReport {
	report := &model.CycleReport{
		PlanID:      plan.ID,
		ClassID:     plan.ClassID,
		StudentID:   studentID,
		RadarBefore: map[string]float64{},
		RadarAfter:  map[string]float64{},
		Deltas:      []model.AbilityDelta{},
	}

	for _, key := range model.AbilityKeys {
		if before != nil {
			if v, ok := before.Radar[key]; ok {
				report.RadarBefore[key] = v
			}
		}
		if after != nil {
			if v, ok := after.Radar[key]; ok {
				report.RadarAfter[key] = v
			}
		}
	}

	if before != nil {
		report.SRIBefore = ComputeSRI(before)
	}
	if after != nil {
		report.SRIAfter = ComputeSRI(after)
	}

	for _, ability := range plan.FocusAbilities {
		b, okB := report.RadarBefore[ability]
		a, okA := report.RadarAfter[ability]
		if okB && okA {
			report.Deltas = append(report.Deltas, model.AbilityDelta{
				Ability: ability,
				Before:  b,
				After:   a,
				Delta:   a - b,
			})
		}
	}
	sort.SliceStable(report.Deltas, func(i, j int) bool {
		return report.Deltas[i].Delta > report.Deltas[j].Delta
	})

	report.Highlight = highlightText(report)
	report.Suggestion = suggestionText(report)
	return report
}

func highlightText(report *model.CycleReport) string {
	if len(report.Deltas) == 0 {
		return ""
	}
	best := report.Deltas[0]
	if best.Delta <= 0 {
		return ""
	}
	text := fmt.Sprintf("%s提升最明显，提高了%.1f分", abilityLabel(best.Ability), best.Delta)
	if report.SRIBefore != nil && report.SRIAfter != nil && *report.SRIAfter-*report.SRIBefore >= 0.1 {
		text += fmt.Sprintf("；速度素质指数提升%.1f%%", *report.SRIAfter-*report.SRIBefore)
	}
	return text
}

func suggestionText(report *model.CycleReport) string {
	if len(report.Deltas) == 0 {
		return "保持训练节奏，建议增加体测频次以便下个周期对比"
	}
	weakest := report.Deltas[len(report.Deltas)-1]
	return fmt.Sprintf("建议下个周期重点加强%s训练", abilityLabel(weakest.Ability))
}

var abilityLabels = map[string]string{
	model.AbilitySpeed:        "速度",
	model.AbilityPower:        "力量",
	model.AbilityCoordination: "协调",
	model.AbilityAgility:      "灵敏",
	model.AbilityEndurance:    "耐力",
	model.AbilityFlexibility:  "柔韧",
}

func abilityLabel(key string) string {
	if label, ok := abilityLabels[key]; ok {
		return label
	}
	return key
}

// ComputeSRI 速度素质指数：0.4*30秒单摇 + 0.4*60秒单摇 + 0.2*30秒双摇，
// 对基准分100折算成百分比并保留一位小数。30秒单摇缺失时回退旧的
// rope_skip_speed 字段；三项原始值都缺失时无指数（返回 nil）。
func ComputeSRI(t *model.FitnessTest) *float64 {
	sr30, ok30 := t.MetricValue(model.MetricSingle30)
	if !ok30 {
		sr30, ok30 = t.MetricValue(model.MetricLegacyRopeSpeed)
	}
	sr60, ok60 := t.MetricValue(model.MetricSingle60)
	du30, okDu := t.MetricValue(model.MetricDouble30)

	if !ok30 && !ok60 && !okDu {
		return nil
	}

	raw := 0.4*sr30 + 0.4*sr60 + 0.2*du30
	pct := math.Round(raw/sriBaseline*100*10) / 10
	return &pct
}
