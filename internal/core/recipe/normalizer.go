package recipe

import (
	"strings"

	"recipe-analyzer/internal/pkg/common"
)

// cleanupTerms 單位、數量與處理方式的停用詞表
// 比對方式為子字串包含，因此 "2cups" 或含數字的 token 也會被去除
var cleanupTerms = []string{
	"cup", "cups", "tbsp", "tsp", "tablespoon", "tablespoons",
	"teaspoon", "teaspoons", "lb", "lbs", "oz", "ounce", "ounces",
	"pound", "pounds", "gram", "grams", "kg", "kilogram", "kilograms",
	"fresh", "dried", "chopped", "diced", "sliced", "minced",
	"large", "small", "medium", "whole", "half", "quarter",
	"1", "2", "3", "4", "5", "6", "7", "8", "9", "0",
}

// NormalizeIngredients 將逗號分隔的食材文字轉為正規化的食材名稱序列
// 空白或純空格輸入回傳空序列；重複的食材不做去重，輸出保留輸入順序
func NormalizeIngredients(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	var ingredients []string
	for _, phrase := range strings.Split(raw, ",") {
		clean := strings.ToLower(strings.TrimSpace(phrase))

		var kept []string
		for _, word := range strings.Fields(clean) {
			if !containsCleanupTerm(word) {
				kept = append(kept, word)
			}
		}

		if len(kept) == 0 {
			continue
		}

		joined := strings.Join(kept, " ")
		// 清理後剩不到兩個字元的片語直接丟棄
		if len(joined) > 1 {
			ingredients = append(ingredients, common.TitleCase(joined))
		}
	}

	if ingredients == nil {
		return []string{}
	}
	return ingredients
}

// containsCleanupTerm 檢查單詞是否包含任一停用詞
func containsCleanupTerm(word string) bool {
	for _, term := range cleanupTerms {
		if strings.Contains(word, term) {
			return true
		}
	}
	return false
}
