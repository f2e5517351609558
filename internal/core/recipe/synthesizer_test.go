package recipe

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"recipe-analyzer/internal/core/ai/service"
	"recipe-analyzer/internal/infrastructure/config"
	"recipe-analyzer/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator 測試用假生成後端
// 以 prompt 內容區分主生成與飲食強化兩種呼叫
type fakeGenerator struct {
	mu sync.Mutex

	generateText string
	generateErr  error
	enhanceText  string
	enhanceErr   error

	generateCalls int
	enhanceCalls  int
}

func (f *fakeGenerator) ProcessRequest(_ context.Context, prompt string) (*service.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if strings.Contains(prompt, "Adapt the recipe below") {
		f.enhanceCalls++
		if f.enhanceErr != nil {
			return nil, f.enhanceErr
		}
		return &service.Response{Content: f.enhanceText}, nil
	}

	f.generateCalls++
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	return &service.Response{Content: f.generateText}, nil
}

func newTestSynthesizer(gen Generator) *Synthesizer {
	cfg := &config.Config{}
	cfg.Synthesis.DefaultServings = 4
	cfg.Synthesis.MaxInstructions = 6
	return NewSynthesizer(cfg, gen)
}

const wellFormedRecipe = `{
	"name": "Chicken Fried Rice",
	"ingredients": ["chicken", "rice"],
	"instructions": ["Dice chicken", "Fry with rice"],
	"cookingTime": "30 minutes",
	"difficulty": "Medium",
	"nutrition": {"calories": 420, "protein": "28g", "carbs": "50g"}
}`

const veganRecipe = `{
	"name": "Vegan Fried Rice",
	"ingredients": ["tofu", "rice"],
	"instructions": ["Dice tofu", "Fry with rice"],
	"cookingTime": "25 minutes",
	"difficulty": "Easy",
	"nutrition": {"calories": 360, "protein": "18g", "carbs": "52g"}
}`

func TestSynthesizeFallbackOnEmptyBackend(t *testing.T) {
	gen := &fakeGenerator{generateText: ""}
	s := newTestSynthesizer(gen)

	recipes, err := s.Synthesize(context.Background(), "2 cups chicken, 1 cup rice", "")
	require.NoError(t, err)
	require.Len(t, recipes, 1)

	r := recipes[0]
	assert.Equal(t, []string{"Chicken", "Rice"}, r.Ingredients)
	assert.Equal(t, "Simple Chicken Dish", r.Name)
	assert.Equal(t, common.DifficultyEasy, r.Difficulty)
	assert.Len(t, r.Instructions, 4)
	assert.Greater(t, r.Nutrition.Calories, 0)
	assert.NotEmpty(t, r.CookingTime)
}

func TestSynthesizeFallbackOnBackendError(t *testing.T) {
	gen := &fakeGenerator{generateErr: errors.New("backend unreachable")}
	s := newTestSynthesizer(gen)

	recipes, err := s.Synthesize(context.Background(), "garlic, beef", "")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Simple Garlic Dish", recipes[0].Name)
}

func TestSynthesizeValidRecipes(t *testing.T) {
	gen := &fakeGenerator{generateText: "Here you go:\n[" + wellFormedRecipe + "]"}
	s := newTestSynthesizer(gen)

	recipes, err := s.Synthesize(context.Background(), "chicken, rice", "")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Chicken Fried Rice", recipes[0].Name)
	assert.Equal(t, 0, gen.enhanceCalls) // 無飲食限制時不強化
}

func TestSynthesizeTruncatesToThree(t *testing.T) {
	parts := make([]string, 5)
	for i := range parts {
		parts[i] = wellFormedRecipe
	}
	gen := &fakeGenerator{generateText: "[" + strings.Join(parts, ",") + "]"}
	s := newTestSynthesizer(gen)

	recipes, err := s.Synthesize(context.Background(), "chicken, rice", "")
	require.NoError(t, err)
	assert.Len(t, recipes, 3)
}

func TestSynthesizeDropsInvalidKeepsValid(t *testing.T) {
	broken := `{"name": "No Instructions", "ingredients": ["x"], "cookingTime": "5 minutes",
		"difficulty": "Easy", "nutrition": {"calories": 100, "protein": "1g", "carbs": "2g"}}`
	gen := &fakeGenerator{generateText: "[" + broken + "," + wellFormedRecipe + "]"}
	s := newTestSynthesizer(gen)

	recipes, err := s.Synthesize(context.Background(), "chicken, rice", "")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Chicken Fried Rice", recipes[0].Name)
}

func TestSynthesizeDeterministic(t *testing.T) {
	gen := &fakeGenerator{generateText: "[" + wellFormedRecipe + "]"}
	s := newTestSynthesizer(gen)

	first, err := s.Synthesize(context.Background(), "chicken, rice", "")
	require.NoError(t, err)
	second, err := s.Synthesize(context.Background(), "chicken, rice", "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSynthesizeEmptyInput(t *testing.T) {
	gen := &fakeGenerator{}
	s := newTestSynthesizer(gen)

	tests := []string{"", "   ", ",,,", "1, 2"}
	for _, input := range tests {
		_, err := s.Synthesize(context.Background(), input, "")
		if input == "1, 2" {
			// 正規化後為空但原始文本可切分，走備援而非報錯
			require.NoError(t, err)
			continue
		}
		require.Error(t, err, "input %q", input)
		assert.True(t, common.IsEmptyInputError(err))
	}
	assert.Equal(t, 1, gen.generateCalls) // 只有 "1, 2" 觸發過生成
}

func TestSynthesizeEnhancementReplacesOnSuccess(t *testing.T) {
	gen := &fakeGenerator{
		generateText: "[" + wellFormedRecipe + "]",
		enhanceText:  veganRecipe,
	}
	s := newTestSynthesizer(gen)

	recipes, err := s.Synthesize(context.Background(), "chicken, rice", "vegan")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Vegan Fried Rice", recipes[0].Name)
	assert.Equal(t, 1, gen.enhanceCalls)
}

func TestSynthesizeEnhancementKeepsOriginalOnFailure(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
	}{
		{
			name: "backend error",
			gen: &fakeGenerator{
				generateText: "[" + wellFormedRecipe + "]",
				enhanceErr:   errors.New("timeout"),
			},
		},
		{
			name: "empty response",
			gen: &fakeGenerator{
				generateText: "[" + wellFormedRecipe + "]",
				enhanceText:  "",
			},
		},
		{
			name: "unparseable response",
			gen: &fakeGenerator{
				generateText: "[" + wellFormedRecipe + "]",
				enhanceText:  "sorry, I cannot do that",
			},
		},
		{
			name: "invalid enhanced recipe",
			gen: &fakeGenerator{
				generateText: "[" + wellFormedRecipe + "]",
				enhanceText:  `{"name": "Broken"}`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSynthesizer(tt.gen)
			recipes, err := s.Synthesize(context.Background(), "chicken, rice", "vegan")
			require.NoError(t, err)
			require.Len(t, recipes, 1)
			assert.Equal(t, "Chicken Fried Rice", recipes[0].Name)
		})
	}
}

func TestSynthesizeEnhancementPerRecipeIndependence(t *testing.T) {
	gen := &fakeGenerator{
		generateText: "[" + wellFormedRecipe + "," + wellFormedRecipe + "]",
		enhanceText:  veganRecipe,
	}
	s := newTestSynthesizer(gen)

	recipes, err := s.Synthesize(context.Background(), "chicken, rice", "vegetarian")
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, 2, gen.enhanceCalls)
	for _, r := range recipes {
		assert.Equal(t, "Vegan Fried Rice", r.Name)
	}
}

func TestSplitRaw(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitRaw(" a , b ,, "))
	assert.Nil(t, splitRaw("  ,  ,"))
	assert.Nil(t, splitRaw(""))
}
