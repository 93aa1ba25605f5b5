package matching

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jonathan/career-explorer/internal/types"
)

// maxListed caps how many skills or tags an explanation names
const maxListed = 3

// scoredCareer carries everything the explanations need about one career
type scoredCareer struct {
	career      *types.Career
	profile     *types.UserProfile
	sub         subScoreSet
	skills      skillMatch
	interests   interestMatch
	experience  experienceMatch
	preferences preferenceMatch
	personality personalityMatch
}

// explain emits a strength for each sub-score at or above StrongThreshold
// and a gap for each below WeakThreshold, in a fixed sub-score order
func explain(sc *scoredCareer) (strengths, gaps []string) {
	strengths = []string{}
	gaps = []string{}

	add := func(score float64, strong func() string, weak func() string) {
		switch {
		case score >= StrongThreshold:
			if s := strong(); s != "" {
				strengths = append(strengths, s)
			}
		case score < WeakThreshold:
			if g := weak(); g != "" {
				gaps = append(gaps, g)
			}
		}
	}

	add(sc.sub.skills, sc.skillsStrength, sc.skillsGap)
	add(sc.sub.interests, sc.interestsStrength, sc.interestsGap)
	add(sc.sub.experience, sc.experienceStrength, sc.experienceGap)
	add(sc.sub.preferences, sc.preferencesStrength, sc.preferencesGap)
	add(sc.sub.personality, sc.personalityStrength, sc.personalityGap)
	return strengths, gaps
}

func (sc *scoredCareer) skillsStrength() string {
	if len(sc.skills.matched) == 0 {
		return fmt.Sprintf("%s has no specific skill requirements", sc.career.Title)
	}
	return fmt.Sprintf("Your skills in %s match what %s needs", listed(sc.skills.matched), sc.career.Title)
}

func (sc *scoredCareer) skillsGap() string {
	if len(sc.skills.missing) == 0 {
		return ""
	}
	return fmt.Sprintf("Consider developing %s", listed(sc.skills.missing))
}

func (sc *scoredCareer) interestsStrength() string {
	if len(sc.interests.matched) == 0 {
		return ""
	}
	return fmt.Sprintf("Strong interest alignment in %s", listed(sc.interests.matched))
}

func (sc *scoredCareer) interestsGap() string {
	return fmt.Sprintf("Your interests overlap little with %s", listed(sc.interests.tags))
}

func (sc *scoredCareer) experienceStrength() string {
	if !sc.experience.known {
		return ""
	}
	return fmt.Sprintf("Your %s experience fits this %s-level role",
		levelOrDefault(sc.profile.Experience.Level), sc.experience.careerLevel)
}

func (sc *scoredCareer) experienceGap() string {
	if !sc.experience.known {
		return ""
	}
	profileRank, _ := sc.profile.Experience.Level.Rank()
	careerRank, _ := sc.experience.careerLevel.Rank()
	if careerRank < profileRank {
		return fmt.Sprintf("This %s-level role may underuse your %s experience",
			sc.experience.careerLevel, levelOrDefault(sc.profile.Experience.Level))
	}
	return fmt.Sprintf("This role typically expects %s-level experience", sc.experience.careerLevel)
}

func (sc *scoredCareer) preferencesStrength() string {
	p := sc.preferences
	parts := make([]string, 0, 4)
	if p.stated.environment && p.environment == 1 {
		parts = append(parts, fmt.Sprintf("offers %s work", strings.Join(matchedEnvironments(sc.profile.Preferences.WorkEnvironment, sc.career.WorkEnvironment), "/")))
	}
	if p.salary >= 0.75 {
		parts = append(parts, fmt.Sprintf("pays %s in your salary range", payRange(p.careerPay)))
	}
	if p.stated.category && p.category == 1 {
		parts = append(parts, fmt.Sprintf("is in your preferred %s category", sc.career.Category))
	}
	if p.stated.balance && p.balance == 1 {
		parts = append(parts, fmt.Sprintf("offers %s work-life balance", sc.career.WorkLifeBalance))
	}
	if len(parts) == 0 {
		return "Fits your work preferences"
	}
	return "This role " + joinPhrases(parts)
}

func (sc *scoredCareer) preferencesGap() string {
	p := sc.preferences
	parts := make([]string, 0, 5)
	if p.environment == 0 {
		offered := sc.career.WorkEnvironment.Names()
		if len(offered) == 0 {
			parts = append(parts, "does not offer your preferred work environment")
		} else {
			parts = append(parts, fmt.Sprintf("is %s rather than your preferred environment", strings.Join(offered, "/")))
		}
	}
	if p.salary < 0.4 {
		parts = append(parts, fmt.Sprintf("pays %s, outside most of your salary range", payRange(p.careerPay)))
	}
	if p.category == 0 {
		parts = append(parts, fmt.Sprintf("is in %s, not one of your preferred categories", sc.career.Category))
	}
	if p.balance == 0 {
		parts = append(parts, fmt.Sprintf("offers %s work-life balance", sc.career.WorkLifeBalance))
	}
	if p.travel == 0 {
		parts = append(parts, "requires travel")
	}
	if len(parts) == 0 {
		return "This role fits few of your work preferences"
	}
	return "This role " + joinPhrases(parts)
}

func (sc *scoredCareer) personalityStrength() string {
	for _, t := range sc.personality.traits {
		if t.score == traitExact && t.profile != "" {
			return fmt.Sprintf("Your %s %s suits this role", t.profile, t.name)
		}
	}
	return "Your working style suits this role"
}

func (sc *scoredCareer) personalityGap() string {
	for _, t := range sc.personality.traits {
		if t.score == traitMismatch {
			return fmt.Sprintf("This role favors a %s %s over your %s one", t.career, t.name, t.profile)
		}
	}
	if l := sc.personality.leadership; l != nil && !*l {
		return "This role expects leadership responsibilities"
	}
	return "This role's working style differs from yours"
}

func matchedEnvironments(wanted, offered types.WorkEnvironment) []string {
	both := types.WorkEnvironment{
		Remote: wanted.Remote && offered.Remote,
		Hybrid: wanted.Hybrid && offered.Hybrid,
		Onsite: wanted.Onsite && offered.Onsite,
	}
	return both.Names()
}

func payRange(r types.SalaryRange) string {
	return fmt.Sprintf("$%s-$%s", humanize.Comma(int64(r.Min)), humanize.Comma(int64(r.Max)))
}

func levelOrDefault(l types.ExperienceLevel) types.ExperienceLevel {
	if _, ok := l.Rank(); ok {
		return l
	}
	return types.LevelEntry
}

// listed joins up to maxListed items with commas and "and"
func listed(items []string) string {
	if len(items) > maxListed {
		items = items[:maxListed]
	}
	return joinPhrases(items)
}

func joinPhrases(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
	}
}
