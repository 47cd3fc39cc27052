package service

import (
	"fmt"

	"rope_coach_backend/internal/model"
	"rope_coach_backend/internal/repository"
)

// DashboardService 浏览用的只读聚合。所有跨资产连接都容忍悬空引用：
// 查不到的单元/任务卡渲染成带原始ID的占位条目，绝不报错。
type DashboardService struct {
	Library *repository.LibraryRepository
	Plans   *repository.CyclePlanRepository
	Reports *repository.CycleReportRepository
}

func NewDashboardService(
	library *repository.LibraryRepository,
	plans *repository.CyclePlanRepository,
	reports *repository.CycleReportRepository,
) *DashboardService {
	return &DashboardService{Library: library, Plans: plans, Reports: reports}
}

type LibraryOverview struct {
	StageCount   int `json:"stageCount"`
	PlanCount    int `json:"planCount"`
	UnitCount    int `json:"unitCount"`
	QualityCount int `json:"qualityCount"`
	DrillCount   int `json:"drillCount"`
	GameCount    int `json:"gameCount"`
	MissionCount int `json:"missionCount"`
	CycleCount   int `json:"cycleCount"`

	ActivePlans []model.ClassCyclePlan `json:"activePlans"`
}

func (s *DashboardService) GetOverview() (*LibraryOverview, error) {
	ov := &LibraryOverview{ActivePlans: []model.ClassCyclePlan{}}

	stages, err := s.Library.ListStages()
	if err != nil {
		return nil, err
	}
	ov.StageCount = len(stages)

	plans, err := s.Library.ListPlans()
	if err != nil {
		return nil, err
	}
	ov.PlanCount = len(plans)

	units, err := s.Library.ListUnits()
	if err != nil {
		return nil, err
	}
	ov.UnitCount = len(units)

	qualities, err := s.Library.ListQualities()
	if err != nil {
		return nil, err
	}
	ov.QualityCount = len(qualities)

	drills, err := s.Library.ListDrills()
	if err != nil {
		return nil, err
	}
	ov.DrillCount = len(drills)

	games, err := s.Library.ListGames()
	if err != nil {
		return nil, err
	}
	ov.GameCount = len(games)

	missions, err := s.Library.ListMissionCards()
	if err != nil {
		return nil, err
	}
	ov.MissionCount = len(missions)

	cycles, err := s.Library.ListCycleTemplates()
	if err != nil {
		return nil, err
	}
	ov.CycleCount = len(cycles)

	cyclePlans, err := s.Plans.List()
	if err != nil {
		return nil, err
	}
	for _, p := range cyclePlans {
		if p.Progress < 1 {
			ov.ActivePlans = append(ov.ActivePlans, p)
		}
	}

	return ov, nil
}

type PlanOutlineWeek struct {
	Week  int      `json:"week"`
	Theme string   `json:"theme"`
	Units []string `json:"units"`
}

type PlanOutline struct {
	PlanID   string            `json:"planId"`
	PlanName string            `json:"planName"`
	Weeks    []PlanOutlineWeek `json:"weeks"`
}

// GetPlanOutline 展开训练计划的周视图，单元ID解析成名称。
// 被删除的单元仍可能被周条目引用，这里渲染占位而不是失败。
func (s *DashboardService) GetPlanOutline(planID string) (*PlanOutline, error) {
	plan, err := s.Library.GetPlan(planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, nil
	}

	units, err := s.Library.ListUnits()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*model.Unit, len(units))
	for i := range units {
		byID[units[i].ID] = &units[i]
	}

	outline := &PlanOutline{PlanID: plan.ID, PlanName: plan.Name, Weeks: []PlanOutlineWeek{}}
	for _, wk := range plan.Weeks {
		row := PlanOutlineWeek{Week: wk.Week, Theme: wk.Theme, Units: []string{}}
		for _, unitID := range wk.UnitIDs {
			if u, ok := byID[unitID]; ok {
				row.Units = append(row.Units, u.Name)
			} else {
				row.Units = append(row.Units, fmt.Sprintf("未找到单元(%s)", unitID))
			}
		}
		outline.Weeks = append(outline.Weeks, row)
	}
	return outline, nil
}
