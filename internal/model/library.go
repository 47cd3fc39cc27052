package model

// LibrarySnapshot 整库导出/导入格式：九类资产各一个数组。
// 导入时缺失的键不触碰对应集合。
// swagger:model
type LibrarySnapshot struct {
	Stages    []Stage          `json:"stages,omitempty"`
	Plans     []Plan           `json:"plans,omitempty"`
	Units     []Unit           `json:"units,omitempty"`
	Qualities []Quality        `json:"qualities,omitempty"`
	Drills    []Drill          `json:"drills,omitempty"`
	Games     []Game           `json:"games,omitempty"`
	Missions  []MissionCard    `json:"missions,omitempty"`
	Cycles    []CycleTemplate  `json:"cycles,omitempty"`
	Puzzles   []PuzzleTemplate `json:"puzzles,omitempty"`
}

// AssetKind 资产类别标识，用于按类批量替换接口。
type AssetKind string

const (
	KindStage   AssetKind = "stages"
	KindPlan    AssetKind = "plans"
	KindUnit    AssetKind = "units"
	KindQuality AssetKind = "qualities"
	KindDrill   AssetKind = "drills"
	KindGame    AssetKind = "games"
	KindMission AssetKind = "missions"
	KindCycle   AssetKind = "cycles"
	KindPuzzle  AssetKind = "puzzles"
)

// OwnedKinds 库事务直接管理的八类（puzzles 由独立服务维护）。
var OwnedKinds = []AssetKind{
	KindStage, KindPlan, KindUnit, KindQuality,
	KindDrill, KindGame, KindMission, KindCycle,
}

func ValidKind(k AssetKind) bool {
	if k == KindPuzzle {
		return true
	}
	for _, o := range OwnedKinds {
		if k == o {
			return true
		}
	}
	return false
}
