package matching

import (
	"github.com/jonathan/career-explorer/internal/types"
)

// Preference component weights, summing to 1.0
const (
	prefEnvironmentWeight = 0.30
	prefSalaryWeight      = 0.30
	prefCategoryWeight    = 0.20
	prefBalanceWeight     = 0.10
	prefTravelWeight      = 0.10
)

// preferenceMatch holds each preference component in [0,1] and the salary
// range it was compared against
type preferenceMatch struct {
	score       float64
	environment float64
	salary      float64
	category    float64
	balance     float64
	travel      float64
	careerPay   types.SalaryRange
	stated      preferenceSignals
}

// preferenceSignals records which components reflect an explicit preference
// rather than a default pass
type preferenceSignals struct {
	environment bool
	category    bool
	balance     bool
	travel      bool
}

// computePreferencesScore grades work environment, salary, category,
// work-life balance and travel and combines them with fixed component
// weights
func computePreferencesScore(prefs types.PreferenceProfile, level types.ExperienceLevel, career *types.Career) preferenceMatch {
	m := preferenceMatch{}

	m.environment, m.stated.environment = environmentFit(prefs.WorkEnvironment, career.WorkEnvironment)
	m.careerPay = salaryRangeFor(career.SalaryRanges, level)
	m.salary = salaryOverlap(prefs.Salary, m.careerPay)
	m.category, m.stated.category = categoryFit(prefs.Categories, career.Category)
	m.balance, m.stated.balance = balanceFit(prefs.WorkLifeBalance, career.WorkLifeBalance)
	m.travel, m.stated.travel = travelFit(prefs.TravelWillingness, career.TravelRequired)

	m.score = 100 * (prefEnvironmentWeight*m.environment +
		prefSalaryWeight*m.salary +
		prefCategoryWeight*m.category +
		prefBalanceWeight*m.balance +
		prefTravelWeight*m.travel)
	return m
}

func environmentFit(wanted, offered types.WorkEnvironment) (float64, bool) {
	if !wanted.Any() {
		return 1, false
	}
	if wanted.Overlaps(offered) {
		return 1, true
	}
	return 0, true
}

// salaryRangeFor picks the range for the given level, or the envelope of all
// ranges when none is specific to it
func salaryRangeFor(ranges []types.SalaryRange, level types.ExperienceLevel) types.SalaryRange {
	for _, r := range ranges {
		if r.Level != "" && r.Level == level {
			return r
		}
	}
	if len(ranges) == 0 {
		return types.SalaryRange{}
	}
	env := types.SalaryRange{Min: ranges[0].Min, Max: ranges[0].Max}
	for _, r := range ranges[1:] {
		env.Min = min(env.Min, r.Min)
		env.Max = max(env.Max, r.Max)
	}
	return env
}

// salaryOverlap returns the share of the wanted range covered by the offered
// range. A single-point wanted range scores 1 when the offer contains it.
func salaryOverlap(wanted, offered types.SalaryRange) float64 {
	lo, hi := wanted.Min, wanted.Max
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi == lo {
		if offered.Min <= lo && lo <= offered.Max {
			return 1
		}
		return 0
	}
	overlap := min(hi, offered.Max) - max(lo, offered.Min)
	if overlap <= 0 {
		return 0
	}
	return min(overlap/(hi-lo), 1)
}

func categoryFit(wanted []types.CareerCategory, category types.CareerCategory) (float64, bool) {
	if len(wanted) == 0 {
		return 1, false
	}
	for _, c := range wanted {
		if c == category {
			return 1, true
		}
	}
	return 0, true
}

func balanceFit(wanted, offered types.WorkLifeBalance) (float64, bool) {
	offeredRank, ok := offered.Rank()
	if !ok {
		return 0.5, false
	}
	wantedRank, ok := wanted.Rank()
	if !ok {
		return 1, false
	}
	switch short := wantedRank - offeredRank; {
	case short <= 0:
		return 1, true
	case short == 1:
		return 0.5, true
	default:
		return 0, true
	}
}

func travelFit(willing, required bool) (float64, bool) {
	if required && !willing {
		return 0, true
	}
	return 1, required
}
