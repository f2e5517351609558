package recipe

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"recipe-analyzer/internal/infrastructure/config"
	"recipe-analyzer/internal/pkg/common"

	"go.uber.org/zap"
)

// Synthesizer 食譜合成服務
// 負責排序整條流水線：正規化 → 生成 → 提取 → 驗證 → 強化 → 備援
// Synthesize 對呼叫方是全函數：除了空輸入外，任何失敗都在內部以備援解決
type Synthesizer struct {
	config    *config.Config
	aiService Generator
}

// NewSynthesizer 創建新的食譜合成服務
func NewSynthesizer(cfg *config.Config, aiService Generator) *Synthesizer {
	return &Synthesizer{
		config:    cfg,
		aiService: aiService,
	}
}

// Synthesize 將自由文字食材清單轉為 1-3 份結構化食譜
// 唯一的錯誤情況是輸入在正規化與最後備援後仍為空（EmptyInputError）
func (s *Synthesizer) Synthesize(ctx context.Context, ingredientsText, dietaryRestrictions string) ([]common.Recipe, error) {
	// 步驟 1：正規化食材；結果為空時，以原始文字的逗號切分作為最後備援
	ingredients := NormalizeIngredients(ingredientsText)
	if len(ingredients) == 0 {
		ingredients = splitRaw(ingredientsText)
	}
	if len(ingredients) == 0 {
		return nil, common.NewEmptyInputError()
	}

	common.LogInfo("食材正規化完成",
		zap.Int("ingredient_count", len(ingredients)),
		zap.Strings("ingredients", ingredients),
	)

	// 步驟 2：呼叫生成後端；失敗或超時一律視為空白文本，不中斷流程
	rawText := ""
	resp, err := s.aiService.ProcessRequest(ctx, buildGenerationPrompt(ingredients, dietaryRestrictions))
	if err != nil {
		common.LogWarn("生成後端呼叫失敗，進入備援流程",
			zap.Error(err),
		)
	} else if resp != nil {
		rawText = resp.Content
	}

	// 步驟 3 + 4：提取候選記錄並逐筆驗證，提取失敗等同零候選
	valid := s.extractAndValidate(rawText)

	// 先截斷到 3 份再強化，限制對後端的呼叫次數
	if len(valid) > maxRecipes {
		valid = valid[:maxRecipes]
	}

	// 步驟 5：有飲食限制且有有效食譜時，逐份嘗試替換；單份失敗保留原樣
	if dietaryRestrictions != "" && len(valid) > 0 {
		valid = s.enhanceRecipes(ctx, valid, dietaryRestrictions)
	}

	// 步驟 6：備援決策
	if len(valid) == 0 {
		common.LogInfo("無有效食譜，使用確定性備援",
			zap.Strings("ingredients", ingredients),
		)
		return []common.Recipe{s.fallbackRecipe(ingredients)}, nil
	}

	return valid, nil
}

// extractAndValidate 提取候選記錄並保留通過驗證的子序列
func (s *Synthesizer) extractAndValidate(rawText string) []common.Recipe {
	if rawText == "" {
		return nil
	}

	candidates, err := ExtractRecords(rawText)
	if err != nil {
		common.LogWarn("結構化內容提取失敗",
			zap.Error(err),
			zap.Int("raw_text_length", len(rawText)),
		)
		return nil
	}

	var valid []common.Recipe
	for i, candidate := range candidates {
		recipe, err := ValidateRecord(candidate)
		if err != nil {
			// 被拒絕的記錄直接丟棄，不做單筆替補
			common.LogWarn("候選食譜未通過驗證",
				zap.Error(err),
				zap.Int("candidate_index", i),
			)
			continue
		}
		valid = append(valid, recipe)
	}
	return valid
}

// enhanceRecipes 對每份食譜併發執行替換流程
// 每份食譜的強化彼此獨立，單份失敗只保留該份原樣，不影響其他食譜
func (s *Synthesizer) enhanceRecipes(ctx context.Context, recipes []common.Recipe, dietaryRestrictions string) []common.Recipe {
	enhanced := make([]common.Recipe, len(recipes))
	copy(enhanced, recipes)

	var wg sync.WaitGroup
	for i := range recipes {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			if result, ok := s.enhanceOne(ctx, recipes[idx], dietaryRestrictions); ok {
				enhanced[idx] = result
			}
		}(i)
	}
	wg.Wait()

	return enhanced
}

// enhanceOne 對單一食譜執行生成＋提取＋驗證的次級流程
func (s *Synthesizer) enhanceOne(ctx context.Context, original common.Recipe, dietaryRestrictions string) (common.Recipe, bool) {
	recipeJSON, err := common.ToJSON(original)
	if err != nil {
		return original, false
	}

	resp, err := s.aiService.ProcessRequest(ctx, buildEnhancementPrompt(recipeJSON, dietaryRestrictions))
	if err != nil || resp == nil || resp.Content == "" {
		common.LogWarn("食譜強化失敗，保留原食譜",
			zap.String("recipe_name", original.Name),
			zap.Error(err),
		)
		return original, false
	}

	candidates, err := ExtractRecords(resp.Content)
	if err != nil || len(candidates) == 0 {
		return original, false
	}

	result, err := ValidateRecord(candidates[0])
	if err != nil {
		common.LogWarn("強化後的食譜未通過驗證，保留原食譜",
			zap.String("recipe_name", original.Name),
			zap.Error(err),
		)
		return original, false
	}

	return result, true
}

// fallbackRecipe 以估算引擎確定性合成單一食譜
// 此路徑絕不失敗，也絕不再呼叫生成後端
func (s *Synthesizer) fallbackRecipe(ingredients []string) common.Recipe {
	servings := s.config.Synthesis.DefaultServings
	if servings < 1 {
		servings = 4
	}

	nutrition := EstimateNutrition(ingredients, servings)

	return common.Recipe{
		Name:        fmt.Sprintf("Simple %s Dish", ingredients[0]),
		Ingredients: ingredients,
		Instructions: []string{
			"Prepare all ingredients",
			"Cook ingredients together",
			"Season to taste",
			"Serve when ready",
		},
		CookingTime: EstimateCookingTime(ingredients, common.ComplexityEasy),
		Difficulty:  common.DifficultyEasy,
		Nutrition: common.NutritionInfo{
			Calories: nutrition.Calories,
			Protein:  fmt.Sprintf("%.1fg", nutrition.Protein),
			Carbs:    fmt.Sprintf("%.1fg", nutrition.Carbs),
		},
	}
}

// splitRaw 直接以逗號切分原始文字，作為正規化結果為空時的最後手段
func splitRaw(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
