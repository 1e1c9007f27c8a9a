package planner

// BudgetMode selects the per-person cost target the scorer aims for.
type BudgetMode string

const (
	BudgetTight    BudgetMode = "tight"
	BudgetBalanced BudgetMode = "balanced"
	BudgetGenerous BudgetMode = "generous"
)

// TargetCost returns the per-person cost target for the mode, in local
// currency. Unknown modes resolve to the balanced target.
func (m BudgetMode) TargetCost() float64 {
	switch m {
	case BudgetTight:
		return 35
	case BudgetGenerous:
		return 65
	default:
		return 50
	}
}

const (
	minFamilySize = 1
	maxFamilySize = 24
)

// Settings holds the household preferences that drive candidate filtering
// and scoring. Persisted alongside the plan; mutated only by explicit user
// action.
type Settings struct {
	FamilySize       int        `json:"family_size"`
	BudgetMode       BudgetMode `json:"budget_mode"`
	AvoidPork        bool       `json:"avoid_pork"`
	AvoidSeafood     bool       `json:"avoid_seafood"`
	PreferVegetables bool       `json:"prefer_vegetables"`
	KidsOnly         bool       `json:"kids_only"`
}

// DefaultSettings returns the settings used when no persisted state exists.
func DefaultSettings() Settings {
	return Settings{FamilySize: 4, BudgetMode: BudgetBalanced}
}

// Normalize clamps the family size into [1,24] and resolves an unknown
// budget mode to balanced.
func (s Settings) Normalize() Settings {
	if s.FamilySize < minFamilySize {
		s.FamilySize = minFamilySize
	}
	if s.FamilySize > maxFamilySize {
		s.FamilySize = maxFamilySize
	}
	switch s.BudgetMode {
	case BudgetTight, BudgetBalanced, BudgetGenerous:
	default:
		s.BudgetMode = BudgetBalanced
	}
	return s
}
