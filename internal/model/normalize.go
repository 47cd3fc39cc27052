package model

// 归一化：每个写路径（单条保存、整库导入、按类替换）都会经过这里。
// 只做两件事：空ID补UUID；切片字段为 nil 时置为空切片（含嵌套记录），
// 其余字段原样保留，不做校验、不做默认值。

func ensureID(id *string) {
	if *id == "" {
		*id = GenerateUUID()
	}
}

func ensureSlice[T any](s *[]T) {
	if *s == nil {
		*s = []T{}
	}
}

func normalizeBlocks(blocks *[]Block) {
	ensureSlice(blocks)
	for i := range *blocks {
		b := &(*blocks)[i]
		ensureSlice(&b.DrillIDs)
		ensureSlice(&b.GameIDs)
		ensureSlice(&b.PuzzleCardIDs)
	}
}

func NormalizeStage(s *Stage) {
	ensureID(&s.ID)
	ensureSlice(&s.FocusAbilities)
	ensureSlice(&s.CoreTasks)
	ensureSlice(&s.Milestones)
	ensureSlice(&s.AgeGuidance)
	for i := range s.AgeGuidance {
		ensureSlice(&s.AgeGuidance[i].Cautions)
	}
	ensureSlice(&s.CycleThemes)
	for i := range s.CycleThemes {
		ensureSlice(&s.CycleThemes[i].LoadFocus)
	}
}

func NormalizePlan(p *Plan) {
	ensureID(&p.ID)
	ensureSlice(&p.Weeks)
	for i := range p.Weeks {
		ensureSlice(&p.Weeks[i].FocusAbilities)
		ensureSlice(&p.Weeks[i].UnitIDs)
	}
	ensureSlice(&p.Phases)
	for i := range p.Phases {
		ensureSlice(&p.Phases[i].FocusPoints)
		ensureSlice(&p.Phases[i].RecommendedAges)
	}
}

func NormalizeUnit(u *Unit) {
	ensureID(&u.ID)
	normalizeBlocks(&u.Blocks)
}

func NormalizeQuality(q *Quality) {
	ensureID(&q.ID)
}

func NormalizeDrill(d *Drill) {
	ensureID(&d.ID)
	ensureSlice(&d.Abilities)
	ensureSlice(&d.Equipment)
}

func NormalizeGame(g *Game) {
	ensureID(&g.ID)
	ensureSlice(&g.Abilities)
	ensureSlice(&g.Equipment)
}

func NormalizeMissionCard(m *MissionCard) {
	ensureID(&m.ID)
	normalizeBlocks(&m.Blocks)
}

func NormalizeCycleTemplate(c *CycleTemplate) {
	ensureID(&c.ID)
	ensureSlice(&c.FocusAbilities)
	ensureSlice(&c.WeekPlan)
	for i := range c.WeekPlan {
		ensureSlice(&c.WeekPlan[i].MissionCards)
		ensureSlice(&c.WeekPlan[i].PuzzleCardIDs)
	}
	ensureSlice(&c.TrackingMetrics)
}

func NormalizePuzzleTemplate(p *PuzzleTemplate) {
	ensureID(&p.ID)
	ensureSlice(&p.Cards)
}

func NormalizeClass(c *Class) {
	ensureID(&c.ID)
	ensureSlice(&c.StudentIDs)
}

func NormalizeStudent(s *Student) {
	ensureID(&s.ID)
}

func NormalizeFitnessTest(t *FitnessTest) {
	ensureID(&t.ID)
	if t.Radar == nil {
		t.Radar = map[string]float64{}
	}
	ensureSlice(&t.Metrics)
}

func NormalizeCyclePlan(p *ClassCyclePlan) {
	ensureID(&p.ID)
	ensureSlice(&p.FocusAbilities)
	ensureSlice(&p.Sessions)
}

func NormalizeCycleReport(r *CycleReport) {
	ensureID(&r.ID)
	if r.RadarBefore == nil {
		r.RadarBefore = map[string]float64{}
	}
	if r.RadarAfter == nil {
		r.RadarAfter = map[string]float64{}
	}
	ensureSlice(&r.Deltas)
}

// NormalizeSnapshot 批量归一化一份导入快照中出现的所有数组。
func NormalizeSnapshot(s *LibrarySnapshot) {
	for i := range s.Stages {
		NormalizeStage(&s.Stages[i])
	}
	for i := range s.Plans {
		NormalizePlan(&s.Plans[i])
	}
	for i := range s.Units {
		NormalizeUnit(&s.Units[i])
	}
	for i := range s.Qualities {
		NormalizeQuality(&s.Qualities[i])
	}
	for i := range s.Drills {
		NormalizeDrill(&s.Drills[i])
	}
	for i := range s.Games {
		NormalizeGame(&s.Games[i])
	}
	for i := range s.Missions {
		NormalizeMissionCard(&s.Missions[i])
	}
	for i := range s.Cycles {
		NormalizeCycleTemplate(&s.Cycles[i])
	}
	for i := range s.Puzzles {
		NormalizePuzzleTemplate(&s.Puzzles[i])
	}
}
