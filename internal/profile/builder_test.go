package profile

import (
	"testing"

	q "github.com/jonathan/career-explorer/internal/questionnaire"
	"github.com/jonathan/career-explorer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuildUserProfile_EmptyResponsesUseDefaults(t *testing.T) {
	for _, responses := range []types.Responses{nil, {}} {
		p := BuildUserProfile(responses)

		assert.Equal(t, Default(), p)
		assert.NotNil(t, p.Interests)
		assert.NotNil(t, p.Skills)
		assert.NotNil(t, p.Experience.Industries)
		assert.NotNil(t, p.Experience.Roles)
		assert.NotNil(t, p.Preferences.Categories)
		assert.Equal(t, types.LevelEntry, p.Experience.Level)
		assert.Equal(t, types.SalaryRange{Min: 40000, Max: 100000}, p.Preferences.Salary)
		assert.Equal(t, types.BalanceMedium, p.Preferences.WorkLifeBalance)
		assert.False(t, p.Preferences.WorkEnvironment.Any())
	}
}

func TestBuildUserProfile_FullResponses(t *testing.T) {
	responses := types.Responses{
		q.QInterestAreas:       types.ChoicesAnswer("data", "technology", "data"),
		q.QInterestActivities:  types.ChoicesAnswer("analyzing"),
		q.QSkillsTechnical:     types.ChoicesAnswer("Python", "SQL"),
		q.QSkillsSoft:          types.ChoicesAnswer("Communication"),
		q.QSkillsOther:         types.TextAnswer("Excel, , Tableau "),
		q.QExperienceLevel:     types.TextAnswer("mid"),
		q.QExperienceYears:     types.NumberAnswer(4),
		q.QExperienceIndustry:  types.ChoicesAnswer("Retail"),
		q.QExperienceRoles:     types.TextAnswer("Analyst, Intern"),
		q.QWorkStyle:           types.TextAnswer("independent"),
		q.QPace:                types.TextAnswer("steady"),
		q.QProblemSolving:      types.TextAnswer("analytical"),
		q.QCommunication:       types.TextAnswer("written"),
		q.QLeadership:          types.TextAnswer("yes"),
		q.QWorkEnvironment:     types.ChoicesAnswer("remote", "hybrid"),
		q.QSalaryMin:           types.NumberAnswer(60000),
		q.QSalaryMax:           types.NumberAnswer(90000),
		q.QCareerCategories:    types.ChoicesAnswer("technology", "finance"),
		q.QWorkLifeBalance:     types.TextAnswer("high"),
		q.QTravel:              types.FlagAnswer(true),
		q.QEducationLevel:      types.TextAnswer("master"),
		q.QEducationField:      types.TextAnswer("Statistics"),
		q.QEducationCertifying: types.TextAnswer("no"),
	}

	p, issues := NewBuilder(nil, nil).Build(responses)
	assert.Empty(t, issues)

	assert.Equal(t, []string{"data", "technology", "data", "analyzing"}, p.Interests, "interests are concatenated without dedupe")
	assert.Equal(t, []string{"Python", "SQL", "Communication", "Excel", "Tableau"}, p.Skills)
	assert.Equal(t, types.LevelMid, p.Experience.Level)
	assert.Equal(t, 4.0, p.Experience.YearsOfExperience)
	assert.Equal(t, []string{"Retail"}, p.Experience.Industries)
	assert.Equal(t, []string{"Analyst", "Intern"}, p.Experience.Roles)
	assert.Equal(t, types.PersonalityProfile{
		WorkStyle: "independent", Pace: "steady", ProblemSolving: "analytical", Communication: "written", Leadership: true,
	}, p.Personality)
	assert.Equal(t, types.WorkEnvironment{Remote: true, Hybrid: true}, p.Preferences.WorkEnvironment)
	assert.Equal(t, types.SalaryRange{Min: 60000, Max: 90000}, p.Preferences.Salary)
	assert.Equal(t, []types.CareerCategory{types.CareerTechnology, types.CareerFinance}, p.Preferences.Categories)
	assert.Equal(t, types.BalanceHigh, p.Preferences.WorkLifeBalance)
	assert.True(t, p.Preferences.TravelWillingness)
	assert.Equal(t, types.EducationProfile{Level: "master", Field: "Statistics", WillingToGetCertifications: false}, p.Education)
}

func TestBuild_InvalidAnswersFallBackAndReport(t *testing.T) {
	responses := types.Responses{
		q.QExperienceLevel: types.TextAnswer("intern"),
		q.QExperienceYears: types.TextAnswer("lots"),
		q.QWorkStyle:       types.NumberAnswer(3),
		"not-a-question":   types.TextAnswer("ignored"),
	}

	p, issues := NewBuilder(nil, nil).Build(responses)

	assert.Equal(t, types.LevelEntry, p.Experience.Level)
	assert.Equal(t, 0.0, p.Experience.YearsOfExperience)
	assert.Equal(t, DefaultWorkStyle, p.Personality.WorkStyle)

	ids := make([]string, 0, len(issues))
	for _, is := range issues {
		ids = append(ids, is.QuestionID)
	}
	assert.ElementsMatch(t, []string{q.QExperienceLevel, q.QExperienceYears, q.QWorkStyle}, ids)
}

func TestBuild_LogsIgnoredAnswersAtWarn(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	responses := types.Responses{
		q.QExperienceLevel: types.TextAnswer("intern"),
		q.QInterestAreas:   types.ChoicesAnswer("data"),
	}

	_, issues := NewBuilder(nil, zap.New(core)).Build(responses)
	require.Len(t, issues, 1)

	entries := logs.FilterMessage("ignored questionnaire answer").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, q.QExperienceLevel, entries[0].ContextMap()["question_id"])
}

func TestBuild_SalaryEdgeCases(t *testing.T) {
	tests := []struct {
		name      string
		responses types.Responses
		want      types.SalaryRange
	}{
		{
			"swapped bounds",
			types.Responses{q.QSalaryMin: types.NumberAnswer(90000), q.QSalaryMax: types.NumberAnswer(50000)},
			types.SalaryRange{Min: 50000, Max: 90000},
		},
		{
			"only min below default max",
			types.Responses{q.QSalaryMin: types.NumberAnswer(50000)},
			types.SalaryRange{Min: 50000, Max: 100000},
		},
		{
			"only min above default max",
			types.Responses{q.QSalaryMin: types.NumberAnswer(120000)},
			types.SalaryRange{Min: 120000, Max: 180000},
		},
		{
			"only max below default min",
			types.Responses{q.QSalaryMax: types.NumberAnswer(30000)},
			types.SalaryRange{Min: 30000, Max: 30000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildUserProfile(tt.responses)
			assert.Equal(t, tt.want, p.Preferences.Salary)
		})
	}
}

func TestBuild_DoesNotMutateResponses(t *testing.T) {
	responses := types.Responses{q.QSkillsTechnical: types.ChoicesAnswer(" Go ", "SQL")}
	before := responses.Clone()

	_ = BuildUserProfile(responses)
	require.Equal(t, before, responses)
}
