package service

import (
	"time"

	"rope_coach_backend/internal/model"
	"rope_coach_backend/internal/repository"
	"rope_coach_backend/internal/util"
)

// CycleService 周期排课与课次进度。
type CycleService struct {
	Library *repository.LibraryRepository
	Plans   *repository.CyclePlanRepository
	Reports *ReportService
}

func NewCycleService(library *repository.LibraryRepository, plans *repository.CyclePlanRepository, reports *ReportService) *CycleService {
	return &CycleService{Library: library, Plans: plans, Reports: reports}
}

// AssignPlan 把周期模板实例化给一个班级。
// 展开规则：按模板周条目顺序、每周内按任务卡顺序，第 w 周第 k 张卡
// （k 从0起）排在 startDate + (w-1)*7天 + k*2天。两天一课的间隔假设
// 每周最多3~4节课，不考虑节假日与星期约束。
func (s *CycleService) AssignPlan(classID, templateID string, startDate time.Time) (*model.ClassCyclePlan, error) {
	tpl, err := s.Library.GetCycleTemplate(templateID)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		// 用不存在的模板排课没有合理的降级方式，是本层唯一外抛的未找到
		return nil, util.ErrTemplateNotFound
	}

	sessions := []model.CycleSession{}
	for _, wk := range tpl.WeekPlan {
		for k, missionID := range wk.MissionCards {
			sessions = append(sessions, model.CycleSession{
				ID:            model.GenerateUUID(),
				Week:          wk.Week,
				MissionCardID: missionID,
				PlannedDate:   startDate.AddDate(0, 0, (wk.Week-1)*7+k*2),
				Status:        model.SessionStatusPlanned,
			})
		}
	}

	plan := &model.ClassCyclePlan{
		ClassID:        classID,
		TemplateID:     templateID,
		StartDate:      startDate,
		DurationWeeks:  tpl.DurationWeeks,
		FocusAbilities: tpl.FocusAbilities,
		Sessions:       sessions,
		Progress:       0,
		CurrentWeek:    1,
	}
	if len(sessions) == 0 {
		// 空周计划的模板一指派即"完成"
		plan.Progress = 1
	}
	model.NormalizeCyclePlan(plan)

	if err := s.Plans.Save(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *CycleService) ListPlans() ([]model.ClassCyclePlan, error) {
	return s.Plans.List()
}

func (s *CycleService) ListPlansByClass(classID string) ([]model.ClassCyclePlan, error) {
	return s.Plans.ListByClass(classID)
}

func (s *CycleService) GetPlan(id string) (*model.ClassCyclePlan, error) {
	return s.Plans.Get(id)
}

func (s *CycleService) DeletePlan(id string) error {
	return s.Plans.Delete(id)
}

// MarkSessionCompleted 标记一节课完成并刷新进度。
// sessionID 找不到时回退按任务卡ID匹配第一节未完成课
// （兼容旧调用方传任务卡ID；同卡多节未完成时取数组顺序第一个，
// 这个并列规则是历史行为，保持原样）。计划或课次都找不到则静默返回。
// 进度到 1.0 且未盖过完成章时：记 completedAt、同步生成结课报告、
// 记 cycleReportGeneratedAt。completedAt 已存在时不会再次生成。
func (s *CycleService) MarkSessionCompleted(planID, sessionID string, actualDate time.Time) (*model.ClassCyclePlan, error) {
	plan, err := s.Plans.Get(planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, nil
	}

	idx := -1
	for i := range plan.Sessions {
		if plan.Sessions[i].ID == sessionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		for i := range plan.Sessions {
			if plan.Sessions[i].MissionCardID == sessionID && plan.Sessions[i].Status != model.SessionStatusCompleted {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		return plan, nil
	}

	plan.Sessions[idx].Status = model.SessionStatusCompleted
	d := actualDate
	plan.Sessions[idx].ActualDate = &d

	recomputeProgress(plan)

	if plan.Progress >= 1 && plan.CompletedAt == nil {
		completed := actualDate
		plan.CompletedAt = &completed
		// 报告生成失败不回滚进度，只向上返回错误前先落盘计划
		if err := s.Reports.GenerateCycleReports(plan); err != nil {
			_ = s.Plans.Save(plan)
			return plan, err
		}
		now := time.Now()
		plan.CycleReportGeneratedAt = &now
	}

	if err := s.Plans.Save(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// recomputeProgress 进度 = 已完成/总数（无课次为1）；
// currentWeek = 已完成课次的最大周，夹在 [1, durationWeeks]。
func recomputeProgress(plan *model.ClassCyclePlan) {
	total := len(plan.Sessions)
	if total == 0 {
		plan.Progress = 1
		plan.CurrentWeek = 1
		return
	}

	completed := 0
	maxWeek := 0
	for _, sess := range plan.Sessions {
		if sess.Status == model.SessionStatusCompleted {
			completed++
			if sess.Week > maxWeek {
				maxWeek = sess.Week
			}
		}
	}

	plan.Progress = float64(completed) / float64(total)

	week := maxWeek
	if week < 1 {
		week = 1
	}
	if plan.DurationWeeks > 0 && week > plan.DurationWeeks {
		week = plan.DurationWeeks
	}
	plan.CurrentWeek = week
}
