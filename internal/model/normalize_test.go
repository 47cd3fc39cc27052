package model

import "testing"

func TestNormalizeStage_AssignsIDAndCoercesSlices(t *testing.T) {
	s := &Stage{}
	NormalizeStage(s)
	if s.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if s.FocusAbilities == nil || s.CoreTasks == nil || s.Milestones == nil {
		t.Fatalf("expected slices coerced to empty, got %+v", s)
	}
	if s.AgeGuidance == nil || s.CycleThemes == nil {
		t.Fatalf("expected nested slices coerced")
	}
}

func TestNormalizeStage_KeepsExistingID(t *testing.T) {
	s := &Stage{AssetBase: AssetBase{ID: "stage-1"}}
	NormalizeStage(s)
	if s.ID != "stage-1" {
		t.Fatalf("id changed: %q", s.ID)
	}
}

func TestNormalizeStage_NestedRowCollections(t *testing.T) {
	s := &Stage{
		AgeGuidance: []AgeBandGuidance{{AgeBand: "6-8"}},
		CycleThemes: []PeriodTheme{{Period: "prep"}},
	}
	NormalizeStage(s)
	if s.AgeGuidance[0].Cautions == nil {
		t.Fatalf("expected cautions coerced")
	}
	if s.CycleThemes[0].LoadFocus == nil {
		t.Fatalf("expected load focus coerced")
	}
}

func TestNormalizeUnit_BlockCollections(t *testing.T) {
	u := &Unit{Blocks: []Block{{Period: "warmup"}}}
	NormalizeUnit(u)
	b := u.Blocks[0]
	if b.DrillIDs == nil || b.GameIDs == nil || b.PuzzleCardIDs == nil {
		t.Fatalf("expected block slices coerced, got %+v", b)
	}
}

func TestNormalizePlan_WeeksAndPhases(t *testing.T) {
	p := &Plan{Weeks: []PlanWeek{{Week: 1}}, Phases: []PlanPhase{{Name: "base"}}}
	NormalizePlan(p)
	if p.Weeks[0].UnitIDs == nil || p.Weeks[0].FocusAbilities == nil {
		t.Fatalf("expected week slices coerced")
	}
	if p.Phases[0].FocusPoints == nil || p.Phases[0].RecommendedAges == nil {
		t.Fatalf("expected phase slices coerced")
	}
}

func TestNormalizeCycleTemplate_WeekPlan(t *testing.T) {
	c := &CycleTemplate{WeekPlan: []CycleWeek{{Week: 1}}}
	NormalizeCycleTemplate(c)
	if c.WeekPlan[0].MissionCards == nil || c.WeekPlan[0].PuzzleCardIDs == nil {
		t.Fatalf("expected week plan slices coerced")
	}
	if c.FocusAbilities == nil || c.TrackingMetrics == nil {
		t.Fatalf("expected top level slices coerced")
	}
}

func TestNormalizeSnapshot_TouchesEveryKind(t *testing.T) {
	snap := &LibrarySnapshot{
		Stages:   []Stage{{}},
		Plans:    []Plan{{}},
		Units:    []Unit{{}},
		Drills:   []Drill{{}},
		Games:    []Game{{}},
		Missions: []MissionCard{{}},
		Cycles:   []CycleTemplate{{}},
		Puzzles:  []PuzzleTemplate{{}},
	}
	NormalizeSnapshot(snap)
	if snap.Stages[0].ID == "" || snap.Plans[0].ID == "" || snap.Units[0].ID == "" {
		t.Fatalf("expected ids assigned")
	}
	if snap.Cycles[0].WeekPlan == nil {
		t.Fatalf("expected cycle week plan coerced")
	}
	if snap.Puzzles[0].Cards == nil {
		t.Fatalf("expected puzzle cards coerced")
	}
}
