package recipe

import (
	"context"

	"recipe-analyzer/internal/core/ai/service"
)

// CandidateRecord 從自由文本提取出的未驗證食譜記錄
// 欄位可能缺失、型別可能錯誤，只存在於提取與驗證之間
type CandidateRecord map[string]interface{}

// NutritionEstimate 每份營養估算結果
type NutritionEstimate struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Servings int     `json:"servings"`
}

// Generator 對生成後端的最小依賴
// *service.Service 滿足此介面；測試中以假後端替換
type Generator interface {
	ProcessRequest(ctx context.Context, prompt string) (*service.Response, error)
}

// 合成結果上限：最多回傳 3 份食譜
const maxRecipes = 3

// 指令步驟上限
const maxInstructions = 6
