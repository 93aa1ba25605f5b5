package matching

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jonathan/career-explorer/internal/profile"
	"github.com/jonathan/career-explorer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func dataAnalyst() types.Career {
	return types.Career{
		ID:       "data-analyst",
		Title:    "Data Analyst",
		Category: types.CareerTechnology,
		RequiredSkills: []types.RequiredSkill{
			{Skill: "SQL", Importance: types.ImportanceCritical},
			{Skill: "Python", Importance: types.ImportanceCritical},
			{Skill: "Excel", Importance: types.ImportanceImportant},
		},
		Interests:       []string{"data", "analysis"},
		ExperienceLevel: types.LevelEntry,
		SalaryRanges:    []types.SalaryRange{{Min: 50000, Max: 80000}},
	}
}

func graphicDesigner() types.Career {
	return types.Career{
		ID:       "graphic-designer",
		Title:    "Graphic Designer",
		Category: types.CareerCreative,
		RequiredSkills: []types.RequiredSkill{
			{Skill: "Photoshop", Importance: types.ImportanceCritical},
			{Skill: "Illustrator", Importance: types.ImportanceCritical},
			{Skill: "Figma", Importance: types.ImportanceImportant},
		},
		Interests:       []string{"design", "art"},
		ExperienceLevel: types.LevelEntry,
		SalaryRanges:    []types.SalaryRange{{Min: 50000, Max: 80000}},
	}
}

func analystProfile() types.UserProfile {
	p := profile.Default()
	p.Skills = []string{"Python", "SQL"}
	p.Experience.Level = types.LevelEntry
	return p
}

func TestWeights_SumToOne(t *testing.T) {
	w := DefaultWeights()
	assert.InDelta(t, 1.0, w.Sum(), 1e-12)
	assert.Equal(t, 1.0, WeightSkills+WeightInterests+WeightExperience+WeightPreferences+WeightPersonality)
	require.NoError(t, w.Validate())
}

func TestNewEngine_RejectsBadWeights(t *testing.T) {
	tests := []struct {
		name    string
		weights Weights
	}{
		{"sum below one", Weights{Skills: 0.5, Interests: 0.2}},
		{"negative", Weights{Skills: 1.2, Interests: -0.2}},
		{"zero", Weights{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEngine(WithWeights(tt.weights))
			assert.Nil(t, e)
			var werr *WeightsError
			assert.ErrorAs(t, err, &werr)
		})
	}

	e, err := NewEngine(WithWeights(Weights{Skills: 0.5, Interests: 0.5}))
	require.NoError(t, err)
	assert.Equal(t, 0.5, e.Weights().Skills)
}

func TestMatch_DataAnalystScenario(t *testing.T) {
	matches := MatchCareers(analystProfile(), []types.Career{graphicDesigner(), dataAnalyst()})
	require.Len(t, matches, 2)

	analyst := matches[0]
	assert.Equal(t, "data-analyst", analyst.Career.ID, "analyst outranks designer")
	assert.Equal(t, 76.9, analyst.SubScores.Skills)
	assert.Less(t, analyst.SubScores.Skills, 100.0)
	assert.GreaterOrEqual(t, analyst.SubScores.Skills, 55.0)
	assert.Equal(t, []string{"SQL", "Python"}, analyst.MatchedSkills)
	assert.Equal(t, []string{"Excel"}, analyst.MissingSkills)

	designer := matches[1]
	assert.Equal(t, 0.0, designer.SubScores.Skills)
	assert.Greater(t, analyst.OverallScore, designer.OverallScore)
}

func TestMatch_SalaryPartialOverlap(t *testing.T) {
	career := dataAnalyst()
	career.SalaryRanges = []types.SalaryRange{{Min: 90000, Max: 150000}}

	p := profile.Default()
	require.Equal(t, types.SalaryRange{Min: 40000, Max: 100000}, p.Preferences.Salary)

	m, err := Default().ScoreCareer(p, career)
	require.NoError(t, err)

	assert.Greater(t, m.SubScores.Preferences, 0.0)
	assert.Less(t, m.SubScores.Preferences, 100.0)
	// environment 0.3 + salary 0.3×(10k/60k) + category 0.2 + balance 0.1×0.5 + travel 0.1
	assert.Equal(t, 70.0, m.SubScores.Preferences)
}

func TestMatch_Deterministic(t *testing.T) {
	p := analystProfile()
	p.Interests = []string{"data", "art", "data"}
	catalog := []types.Career{dataAnalyst(), graphicDesigner(), dataAnalyst()}
	catalog[2].ID = "data-analyst-2"

	first := MatchCareers(p, catalog)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, MatchCareers(p, catalog))
	}
}

func TestMatch_TiesKeepCatalogOrder(t *testing.T) {
	a := dataAnalyst()
	b := dataAnalyst()
	b.ID = "second"
	c := dataAnalyst()
	c.ID = "third"

	matches := MatchCareers(analystProfile(), []types.Career{a, b, c})
	require.Len(t, matches, 3)
	assert.Equal(t, []string{"data-analyst", "second", "third"},
		[]string{matches[0].Career.ID, matches[1].Career.ID, matches[2].Career.ID})
}

func TestMatch_ScoreBounds(t *testing.T) {
	profiles := []types.UserProfile{profile.Default(), analystProfile()}

	extreme := profile.Default()
	extreme.Skills = []string{"Photoshop", "Illustrator", "Figma", "SQL"}
	extreme.Interests = []string{"design"}
	extreme.Experience = types.ExperienceProfile{Level: types.LevelExecutive, YearsOfExperience: 60}
	extreme.Preferences.WorkEnvironment = types.WorkEnvironment{Onsite: true}
	extreme.Preferences.Categories = []types.CareerCategory{types.CareerLegal}
	extreme.Preferences.Salary = types.SalaryRange{Min: 500000, Max: 500000}
	profiles = append(profiles, extreme)

	empty := types.UserProfile{}
	profiles = append(profiles, empty)

	noSkills := dataAnalyst()
	noSkills.RequiredSkills = []types.RequiredSkill{}
	years := 30.0
	noSkills.MinYears = &years
	noSkills.ExperienceLevel = ""

	catalog := []types.Career{dataAnalyst(), graphicDesigner(), noSkills}
	for _, p := range profiles {
		for _, m := range MatchCareers(p, catalog) {
			for _, s := range []float64{
				m.OverallScore, m.SubScores.Skills, m.SubScores.Interests,
				m.SubScores.Experience, m.SubScores.Preferences, m.SubScores.Personality,
			} {
				assert.GreaterOrEqual(t, s, 0.0)
				assert.LessOrEqual(t, s, 100.0)
			}
		}
	}
}

func TestMatch_AddingPresentSkillNeverLowersSkillsScore(t *testing.T) {
	p := profile.Default()
	p.Skills = []string{"SQL", "Python", "Tableau"}

	career := graphicDesigner()
	career.RequiredSkills = []types.RequiredSkill{{Skill: "Photoshop", Importance: types.ImportanceCritical}}

	additions := []types.RequiredSkill{
		{Skill: "Tableau", Importance: types.ImportanceBeneficial},
		{Skill: "SQL", Importance: types.ImportanceImportant},
		{Skill: "python", Importance: types.ImportanceCritical},
	}

	prev, err := Default().ScoreCareer(p, career)
	require.NoError(t, err)
	for _, add := range additions {
		career.RequiredSkills = append(career.RequiredSkills, add)
		next, err := Default().ScoreCareer(p, career)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, next.SubScores.Skills, prev.SubScores.Skills, "after adding %s", add.Skill)
		prev = next
	}
}

func TestMatch_EmptyCatalog(t *testing.T) {
	for _, catalog := range [][]types.Career{nil, {}} {
		matches := MatchCareers(profile.Default(), catalog)
		assert.NotNil(t, matches)
		assert.Empty(t, matches)
	}
}

func TestMatch_DefaultProfileRanksWholeCatalog(t *testing.T) {
	matches := MatchCareers(profile.BuildUserProfile(nil), []types.Career{dataAnalyst(), graphicDesigner()})
	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.NotNil(t, m.Strengths)
		assert.NotNil(t, m.Gaps)
		assert.Equal(t, NeutralScore, m.SubScores.Interests, "no interests is neutral")
	}
}

func TestMatch_EmptyRequirementsAreNeutral(t *testing.T) {
	career := dataAnalyst()
	career.RequiredSkills = []types.RequiredSkill{}

	m, err := Default().ScoreCareer(analystProfile(), career)
	require.NoError(t, err)
	assert.Equal(t, NeutralScore, m.SubScores.Skills)
	assert.Empty(t, m.MatchedSkills)
	assert.Empty(t, m.MissingSkills)
}

func TestMatch_SkipsMalformedEntries(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	e, err := NewEngine(WithLogger(zap.New(core)))
	require.NoError(t, err)

	noSkills := dataAnalyst()
	noSkills.ID = "no-skills"
	noSkills.RequiredSkills = nil

	noSalary := dataAnalyst()
	noSalary.ID = "no-salary"
	noSalary.SalaryRanges = nil

	noID := graphicDesigner()
	noID.ID = ""

	res := e.Match(analystProfile(), []types.Career{noSkills, dataAnalyst(), noSalary, noID, graphicDesigner()})

	require.Len(t, res.Matches, 2)
	assert.Equal(t, "data-analyst", res.Matches[0].Career.ID)

	require.Len(t, res.Skipped, 3)
	assert.Equal(t, 0, res.Skipped[0].Index)
	assert.Equal(t, "no-skills", res.Skipped[0].CareerID)
	assert.Equal(t, 2, res.Skipped[1].Index)
	assert.Equal(t, 3, res.Skipped[2].Index)

	var cve *CareerValidationError
	assert.True(t, errors.As(&res.Skipped[0], &cve))
	assert.Equal(t, "no-skills", cve.CareerID)

	assert.Equal(t, 3, logs.FilterMessage("skipping malformed career").Len())
}

func TestResult_JSONCarriesSkipReason(t *testing.T) {
	noSkills := dataAnalyst()
	noSkills.ID = "no-skills"
	noSkills.RequiredSkills = nil

	res := Default().Match(analystProfile(), []types.Career{noSkills})
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, res.Skipped[0].Err.Error(), res.Skipped[0].Reason)
	assert.Contains(t, res.Skipped[0].Reason, "no-skills")

	data, err := json.Marshal(res)
	require.NoError(t, err)

	var decoded struct {
		Skipped []struct {
			Index    int    `json:"index"`
			CareerID string `json:"career_id"`
			Reason   string `json:"reason"`
		} `json:"skipped"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Skipped, 1)
	assert.Equal(t, "no-skills", decoded.Skipped[0].CareerID)
	assert.Equal(t, res.Skipped[0].Reason, decoded.Skipped[0].Reason)
}

func TestScoreCareer_MalformedReturnsError(t *testing.T) {
	career := dataAnalyst()
	career.Category = "astrology"

	_, err := Default().ScoreCareer(analystProfile(), career)
	var cve *CareerValidationError
	require.ErrorAs(t, err, &cve)
	assert.Equal(t, "data-analyst", cve.CareerID)
	assert.Contains(t, err.Error(), "malformed career data-analyst")
}

func TestMatch_ExplanationsReferenceSpecifics(t *testing.T) {
	matches := MatchCareers(analystProfile(), []types.Career{dataAnalyst(), graphicDesigner()})
	require.Len(t, matches, 2)

	analyst, designer := matches[0], matches[1]
	assert.Contains(t, analyst.Strengths, "Your skills in SQL and Python match what Data Analyst needs")
	assert.Contains(t, analyst.Strengths, "Your entry experience fits this entry-level role")
	assert.Contains(t, designer.Gaps, "Consider developing Photoshop, Illustrator and Figma")

	for _, s := range append(append([]string{}, analyst.Strengths...), designer.Gaps...) {
		assert.NotContains(t, s, "—")
	}
}

func TestMatch_PreferenceGapNamesComponent(t *testing.T) {
	p := analystProfile()
	p.Preferences.WorkEnvironment = types.WorkEnvironment{Remote: true}
	p.Preferences.Categories = []types.CareerCategory{types.CareerHealthcare}
	p.Preferences.Salary = types.SalaryRange{Min: 200000, Max: 250000}

	career := dataAnalyst()
	career.WorkEnvironment = types.WorkEnvironment{Onsite: true}
	career.TravelRequired = true

	m, err := Default().ScoreCareer(p, career)
	require.NoError(t, err)
	require.Less(t, m.SubScores.Preferences, WeakThreshold)
	require.Len(t, m.Gaps, 1)
	gap := m.Gaps[0]
	assert.Contains(t, gap, "onsite")
	assert.Contains(t, gap, "$50,000-$80,000")
	assert.Contains(t, gap, "technology")
	assert.Contains(t, gap, "requires travel")
}

func TestTopN(t *testing.T) {
	matches := MatchCareers(analystProfile(), []types.Career{dataAnalyst(), graphicDesigner()})

	assert.Len(t, TopN(matches, 1), 1)
	assert.Len(t, TopN(matches, 5), 2)
	assert.Empty(t, TopN(matches, -1))
	assert.Equal(t, matches[0], TopN(matches, 1)[0])
}

func TestResult_JSONOmitsEmptySkipped(t *testing.T) {
	res := Default().Match(analystProfile(), nil)
	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"matches":[]}`, string(data))
}
