package common

import (
	"strings"
)

// NutritionInfo 食譜的每份營養資訊
// 注意：protein / carbs 以顯示字串表示（例如 "12g"），與回應格式一致
type NutritionInfo struct {
	Calories int    `json:"calories"`
	Protein  string `json:"protein"`
	Carbs    string `json:"carbs"`
}

// Recipe 結構化食譜
// 欄位名稱、型別、巢狀結構都要與回應格式一模一樣
type Recipe struct {
	Name         string        `json:"name"`
	Ingredients  []string      `json:"ingredients"`
	Instructions []string      `json:"instructions"`
	CookingTime  string        `json:"cookingTime"`
	Difficulty   string        `json:"difficulty"`
	Nutrition    NutritionInfo `json:"nutrition"`
}

// 難度等級
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// IsValidDifficulty 檢查難度是否在允許的集合內
func IsValidDifficulty(d string) bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// 複雜度層級（影響烹飪時間估算）
const (
	ComplexityEasy   = "easy"
	ComplexityMedium = "medium"
	ComplexityHard   = "hard"
)

// FormatIngredients 格式化食材列表（提供給 prompt 使用）
func FormatIngredients(ingredients []string) string {
	var sb strings.Builder
	for _, ing := range ingredients {
		sb.WriteString("- ")
		sb.WriteString(ing)
		sb.WriteString("\n")
	}
	return sb.String()
}

// TitleCase 將每個單詞的首字母轉為大寫，其餘轉為小寫
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
