package schemas

import (
	"os"
	"path/filepath"
	"testing"

	schemafiles "github.com/jonathan/career-explorer/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_CompilesEveryEmbeddedFile(t *testing.T) {
	for _, name := range schemafiles.All {
		s, err := Schema(name)
		require.NoError(t, err, name)
		assert.NotNil(t, s)
	}

	_, err := Schema("missing.schema.json")
	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "missing.schema.json", loadErr.Path)
}

func TestValidateCatalog(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{"bare array", `[{"id":"a"}]`, false},
		{"wrapped", `{"version":"1","careers":[]}`, false},
		{"wrapped without careers", `{"version":"1"}`, true},
		{"string", `"careers"`, true},
		{"non-object entry", `[1, 2]`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCatalog([]byte(tt.doc))
			if tt.wantErr {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.NotEmpty(t, verr.Errors)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateCareer_UsesSharedDefinitions(t *testing.T) {
	valid := `{
		"id": "nurse", "title": "Nurse", "category": "healthcare",
		"required_skills": [{"skill": "Patient Care", "importance": "critical"}],
		"experience_level": "entry",
		"salary_ranges": [{"min": 50000, "max": 90000}]
	}`
	require.NoError(t, ValidateCareer([]byte(valid)))

	invalid := `{
		"id": "nurse", "title": "Nurse", "category": "medicine",
		"required_skills": [{"skill": "Patient Care", "importance": "vital"}],
		"salary_ranges": []
	}`
	err := ValidateCareer([]byte(invalid))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, schemafiles.Career, verr.Schema)

	fields := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "category")
	assert.Contains(t, fields, "required_skills.0.importance")
	assert.Contains(t, fields, "salary_ranges")
}

func TestValidateResponses(t *testing.T) {
	assert.NoError(t, ValidateResponses([]byte(`{"a":"x","b":3,"c":["p","q"],"d":true,"e":null}`)))

	err := ValidateResponses([]byte(`{"a":{"nested":1}}`))
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	err = ValidateResponses([]byte(`{"a":[1,2]}`))
	assert.ErrorAs(t, err, &verr)
}

func TestValidateMatches_ScoreBounds(t *testing.T) {
	ok := `[{"career":{"id":"a","title":"A"},"overall_score":80,
		"sub_scores":{"skills":1,"interests":2,"experience":3,"preferences":4,"personality":5},
		"strengths":[],"gaps":[]}]`
	require.NoError(t, ValidateMatches([]byte(ok)))

	bad := `[{"career":{"id":"a","title":"A"},"overall_score":120,
		"sub_scores":{"skills":1,"interests":2,"experience":3,"preferences":4,"personality":5},
		"strengths":[],"gaps":[]}]`
	var verr *ValidationError
	assert.ErrorAs(t, ValidateMatches([]byte(bad)), &verr)
}

func TestValidateBytes_MalformedJSON(t *testing.T) {
	err := ValidateBytes(schemafiles.Responses, []byte("{ invalid json }"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse JSON document")
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "responses.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"interests-areas":["data"]}`), 0o644))

	assert.NoError(t, ValidateFile(schemafiles.Responses, path))

	err := ValidateFile(schemafiles.Responses, filepath.Join(dir, "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type":"object","required":["name"],"properties":{"name":{"type":"string"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"name":"x"}`))

	err := ValidateJSONString(schema, `{}`)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "(root)", verr.Errors[0].Field)
	assert.Contains(t, verr.Error(), "validation failed")

	err = ValidateJSONString(`{"type": 12}`, `{}`)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
