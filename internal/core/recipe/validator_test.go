package recipe

import (
	"testing"

	"recipe-analyzer/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// candidateFromJSON 以與提取階段相同的解碼設定構建候選記錄
func candidateFromJSON(t *testing.T, raw string) CandidateRecord {
	t.Helper()
	records, err := ExtractRecords(raw)
	require.NoError(t, err)
	require.Len(t, records, 1)
	return records[0]
}

const validCandidate = `{
	"name": "Garlic Rice",
	"ingredients": ["rice", "garlic"],
	"instructions": ["Cook rice", "Add garlic"],
	"cookingTime": "25 minutes",
	"difficulty": "Medium",
	"nutrition": {"calories": 320, "protein": "8g", "carbs": "55g"}
}`

func TestValidateRecordAccepts(t *testing.T) {
	recipe, err := ValidateRecord(candidateFromJSON(t, validCandidate))
	require.NoError(t, err)

	assert.Equal(t, "Garlic Rice", recipe.Name)
	assert.Equal(t, []string{"rice", "garlic"}, recipe.Ingredients)
	assert.Equal(t, []string{"Cook rice", "Add garlic"}, recipe.Instructions)
	assert.Equal(t, "25 minutes", recipe.CookingTime)
	assert.Equal(t, common.DifficultyMedium, recipe.Difficulty)
	assert.Equal(t, 320, recipe.Nutrition.Calories)
	assert.Equal(t, "8g", recipe.Nutrition.Protein)
	assert.Equal(t, "55g", recipe.Nutrition.Carbs)
}

func TestValidateRecordCoercesDifficulty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "outside enum",
			raw: `{"name":"A","ingredients":["x"],"instructions":["y"],"cookingTime":"5 minutes",
				"difficulty":"Extreme","nutrition":{"calories":100,"protein":"1g","carbs":"2g"}}`,
		},
		{
			name: "missing",
			raw: `{"name":"A","ingredients":["x"],"instructions":["y"],"cookingTime":"5 minutes",
				"nutrition":{"calories":100,"protein":"1g","carbs":"2g"}}`,
		},
		{
			name: "wrong case",
			raw: `{"name":"A","ingredients":["x"],"instructions":["y"],"cookingTime":"5 minutes",
				"difficulty":"easy","nutrition":{"calories":100,"protein":"1g","carbs":"2g"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipe, err := ValidateRecord(candidateFromJSON(t, tt.raw))
			require.NoError(t, err)
			assert.Equal(t, common.DifficultyEasy, recipe.Difficulty)
		})
	}
}

func TestValidateRecordRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "missing instructions",
			raw:  `{"name":"A","ingredients":["x"],"cookingTime":"5 minutes","difficulty":"Easy","nutrition":{"calories":100,"protein":"1g","carbs":"2g"}}`,
		},
		{
			name: "empty ingredients",
			raw:  `{"name":"A","ingredients":[],"instructions":["y"],"cookingTime":"5 minutes","difficulty":"Easy","nutrition":{"calories":100,"protein":"1g","carbs":"2g"}}`,
		},
		{
			name: "missing name",
			raw:  `{"ingredients":["x"],"instructions":["y"],"cookingTime":"5 minutes","difficulty":"Easy","nutrition":{"calories":100,"protein":"1g","carbs":"2g"}}`,
		},
		{
			name: "wrong typed name",
			raw:  `{"name":42,"ingredients":["x"],"instructions":["y"],"cookingTime":"5 minutes","difficulty":"Easy","nutrition":{"calories":100,"protein":"1g","carbs":"2g"}}`,
		},
		{
			name: "missing nutrition",
			raw:  `{"name":"A","ingredients":["x"],"instructions":["y"],"cookingTime":"5 minutes","difficulty":"Easy"}`,
		},
		{
			name: "non-numeric calories",
			raw:  `{"name":"A","ingredients":["x"],"instructions":["y"],"cookingTime":"5 minutes","difficulty":"Easy","nutrition":{"calories":"lots","protein":"1g","carbs":"2g"}}`,
		},
		{
			name: "non-string ingredient element",
			raw:  `{"name":"A","ingredients":["x",7],"instructions":["y"],"cookingTime":"5 minutes","difficulty":"Easy","nutrition":{"calories":100,"protein":"1g","carbs":"2g"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateRecord(candidateFromJSON(t, tt.raw))
			require.Error(t, err)
			assert.True(t, common.IsValidationError(err))
		})
	}
}

func TestValidateRecordNilRecord(t *testing.T) {
	_, err := ValidateRecord(nil)
	require.Error(t, err)
	assert.True(t, common.IsValidationError(err))
}

func TestValidateRecordTruncatesInstructions(t *testing.T) {
	raw := `{"name":"A","ingredients":["x"],
		"instructions":["1","2","3","4","5","6","7","8"],
		"cookingTime":"5 minutes","difficulty":"Easy",
		"nutrition":{"calories":100,"protein":"1g","carbs":"2g"}}`

	recipe, err := ValidateRecord(candidateFromJSON(t, raw))
	require.NoError(t, err)
	assert.Len(t, recipe.Instructions, 6)
}
