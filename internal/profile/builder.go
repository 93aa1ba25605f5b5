package profile

import (
	"strings"

	"go.uber.org/zap"

	q "github.com/jonathan/career-explorer/internal/questionnaire"
	"github.com/jonathan/career-explorer/internal/types"
)

// Issue describes an answer that was ignored while building a profile
type Issue struct {
	QuestionID string `json:"question_id"`
	Message    string `json:"message"`
}

// Builder builds profiles against a specific question set
type Builder struct {
	questions *q.Set
	logger    *zap.Logger
}

// NewBuilder creates a Builder. A nil set uses the default questionnaire and
// a nil logger discards output.
func NewBuilder(set *q.Set, logger *zap.Logger) *Builder {
	if set == nil {
		set = q.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{questions: set, logger: logger}
}

// BuildUserProfile builds a profile from responses using the default
// questionnaire. It never fails: missing or invalid answers fall back to the
// documented defaults.
func BuildUserProfile(responses types.Responses) types.UserProfile {
	p, _ := NewBuilder(nil, nil).Build(responses)
	return p
}

// Build folds responses into a fresh profile and reports every answer it had
// to ignore. Array answers from several questions are concatenated in
// question order without deduplication.
func (b *Builder) Build(responses types.Responses) (types.UserProfile, []Issue) {
	r := &reader{questions: b.questions, responses: responses}
	p := Default()

	p.Interests = append(p.Interests, r.choices(q.QInterestAreas)...)
	p.Interests = append(p.Interests, r.choices(q.QInterestActivities)...)

	p.Skills = append(p.Skills, r.choices(q.QSkillsTechnical)...)
	p.Skills = append(p.Skills, r.choices(q.QSkillsSoft)...)
	p.Skills = append(p.Skills, splitList(r.text(q.QSkillsOther))...)

	if level := types.ExperienceLevel(r.text(q.QExperienceLevel)); level != "" {
		if _, ok := level.Rank(); ok {
			p.Experience.Level = level
		} else {
			r.issue(q.QExperienceLevel, "unknown experience level")
		}
	}
	if years, ok := r.number(q.QExperienceYears); ok {
		if years >= 0 {
			p.Experience.YearsOfExperience = years
		} else {
			r.issue(q.QExperienceYears, "negative years of experience")
		}
	}
	p.Experience.Industries = append(p.Experience.Industries, r.choices(q.QExperienceIndustry)...)
	p.Experience.Roles = append(p.Experience.Roles, splitList(r.text(q.QExperienceRoles))...)

	p.Personality.WorkStyle = r.textOr(q.QWorkStyle, p.Personality.WorkStyle)
	p.Personality.Pace = r.textOr(q.QPace, p.Personality.Pace)
	p.Personality.ProblemSolving = r.textOr(q.QProblemSolving, p.Personality.ProblemSolving)
	p.Personality.Communication = r.textOr(q.QCommunication, p.Personality.Communication)
	p.Personality.Leadership = r.yesNoOr(q.QLeadership, p.Personality.Leadership)

	b.applyPreferences(r, &p.Preferences)

	p.Education.Level = r.textOr(q.QEducationLevel, p.Education.Level)
	p.Education.Field = r.text(q.QEducationField)
	p.Education.WillingToGetCertifications = r.yesNoOr(q.QEducationCertifying, p.Education.WillingToGetCertifications)

	for _, is := range r.issues {
		b.logger.Warn("ignored questionnaire answer",
			zap.String("question_id", is.QuestionID),
			zap.String("reason", is.Message))
	}

	return p, r.issues
}

func (b *Builder) applyPreferences(r *reader, prefs *types.PreferenceProfile) {
	for _, env := range r.choices(q.QWorkEnvironment) {
		switch strings.ToLower(env) {
		case "remote":
			prefs.WorkEnvironment.Remote = true
		case "hybrid":
			prefs.WorkEnvironment.Hybrid = true
		case "onsite", "on-site":
			prefs.WorkEnvironment.Onsite = true
		}
	}

	minSalary, hasMin := r.number(q.QSalaryMin)
	maxSalary, hasMax := r.number(q.QSalaryMax)
	switch {
	case hasMin && hasMax:
		if minSalary > maxSalary {
			minSalary, maxSalary = maxSalary, minSalary
		}
		prefs.Salary = types.SalaryRange{Min: minSalary, Max: maxSalary}
	case hasMin:
		maxSalary = DefaultSalaryMax
		if minSalary >= maxSalary {
			maxSalary = minSalary * salaryHeadroom
		}
		prefs.Salary = types.SalaryRange{Min: minSalary, Max: maxSalary}
	case hasMax:
		prefs.Salary = types.SalaryRange{Min: min(DefaultSalaryMin, maxSalary), Max: maxSalary}
	}

	for _, c := range r.choices(q.QCareerCategories) {
		category := types.CareerCategory(strings.ToLower(c))
		if !category.Valid() {
			r.issue(q.QCareerCategories, "unknown career category "+c)
			continue
		}
		prefs.Categories = append(prefs.Categories, category)
	}

	if wlb := types.WorkLifeBalance(r.text(q.QWorkLifeBalance)); wlb != "" {
		if _, ok := wlb.Rank(); ok {
			prefs.WorkLifeBalance = wlb
		} else {
			r.issue(q.QWorkLifeBalance, "unknown work-life balance")
		}
	}

	prefs.TravelWillingness = r.yesNoOr(q.QTravel, prefs.TravelWillingness)
}

// splitList splits a comma separated free-text answer
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
