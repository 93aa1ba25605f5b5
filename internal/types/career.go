// Package types provides type definitions for structured data used throughout the career-explorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CareerCategory is the broad field a career belongs to
type CareerCategory string

// Career categories
const (
	CareerTechnology    CareerCategory = "technology"
	CareerHealthcare    CareerCategory = "healthcare"
	CareerBusiness      CareerCategory = "business"
	CareerFinance       CareerCategory = "finance"
	CareerCreative      CareerCategory = "creative"
	CareerEducation     CareerCategory = "education"
	CareerEngineering   CareerCategory = "engineering"
	CareerScience       CareerCategory = "science"
	CareerTrades        CareerCategory = "trades"
	CareerPublicService CareerCategory = "public-service"
	CareerHospitality   CareerCategory = "hospitality"
	CareerLegal         CareerCategory = "legal"
)

// CareerCategories lists every known career category
var CareerCategories = []CareerCategory{
	CareerTechnology, CareerHealthcare, CareerBusiness, CareerFinance,
	CareerCreative, CareerEducation, CareerEngineering, CareerScience,
	CareerTrades, CareerPublicService, CareerHospitality, CareerLegal,
}

// Valid reports whether c is a known career category
func (c CareerCategory) Valid() bool {
	for _, known := range CareerCategories {
		if c == known {
			return true
		}
	}
	return false
}

// SkillImportance ranks how essential a required skill is to a career
type SkillImportance string

// Importance tiers
const (
	ImportanceCritical   SkillImportance = "critical"
	ImportanceImportant  SkillImportance = "important"
	ImportanceBeneficial SkillImportance = "beneficial"
)

// Career is a read-only catalog entry describing one career
type Career struct {
	ID              string              `json:"id" validate:"required"`
	Title           string              `json:"title" validate:"required"`
	Category        CareerCategory      `json:"category" validate:"required,career_category"`
	Description     string              `json:"description,omitempty"`
	RequiredSkills  []RequiredSkill     `json:"required_skills" validate:"required,dive"`
	Interests       []string            `json:"interests,omitempty"`
	ExperienceLevel ExperienceLevel     `json:"experience_level,omitempty" validate:"omitempty,oneof=entry mid senior executive"`
	MinYears        *float64            `json:"min_years,omitempty" validate:"omitempty,gte=0"`
	MaxYears        *float64            `json:"max_years,omitempty" validate:"omitempty,gte=0"`
	WorkEnvironment WorkEnvironment     `json:"work_environment"`
	SalaryRanges    []SalaryRange       `json:"salary_ranges" validate:"required,min=1,dive"`
	JobOutlook      JobOutlook          `json:"job_outlook"`
	WorkLifeBalance WorkLifeBalance     `json:"work_life_balance,omitempty" validate:"omitempty,oneof=low medium high"`
	TravelRequired  bool                `json:"travel_required,omitempty"`
	Personality     *PersonalityProfile `json:"personality,omitempty"`
	EducationLevel  string              `json:"education_level,omitempty"`
	Certifications  []string            `json:"certifications,omitempty"`
}

// RequiredSkill is a skill a career needs, tagged with its importance tier
type RequiredSkill struct {
	Skill      string          `json:"skill" validate:"required"`
	Importance SkillImportance `json:"importance" validate:"required,oneof=critical important beneficial"`
}

// SalaryRange is an annual salary interval. Level is empty for a range that
// applies to every level.
type SalaryRange struct {
	Level ExperienceLevel `json:"level,omitempty" validate:"omitempty,oneof=entry mid senior executive"`
	Min   float64         `json:"min" validate:"gte=0"`
	Max   float64         `json:"max" validate:"gtefield=Min"`
}

// JobOutlook summarizes market demand for a career
type JobOutlook struct {
	GrowthRate float64 `json:"growth_rate"`
	Demand     string  `json:"demand,omitempty"`
}
