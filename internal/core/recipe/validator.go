package recipe

import (
	"encoding/json"
	"fmt"

	"recipe-analyzer/internal/pkg/common"
)

// ValidateRecord 將候選記錄驗證並轉換為強型別的 Recipe
// 只有 difficulty 會被修正（缺失或不在枚舉內 → Easy）
// 其餘必要欄位缺失或型別錯誤一律回傳 ValidationError，由呼叫方丟棄該筆記錄
// 這裡是鬆散型別資料變成強型別資料的唯一邊界
func ValidateRecord(record CandidateRecord) (common.Recipe, error) {
	var recipe common.Recipe

	if record == nil {
		return recipe, common.NewValidationError("candidate record is not an object")
	}

	name, err := requireString(record, "name")
	if err != nil {
		return recipe, err
	}

	ingredients, err := requireStringSlice(record, "ingredients")
	if err != nil {
		return recipe, err
	}

	instructions, err := requireStringSlice(record, "instructions")
	if err != nil {
		return recipe, err
	}
	if len(instructions) > maxInstructions {
		instructions = instructions[:maxInstructions]
	}

	cookingTime, err := requireString(record, "cookingTime")
	if err != nil {
		return recipe, err
	}

	nutrition, err := requireNutrition(record)
	if err != nil {
		return recipe, err
	}

	// 難度修正：不在枚舉內直接降為 Easy，不拒絕整筆記錄
	difficulty := common.DifficultyEasy
	if raw, ok := record["difficulty"].(string); ok && common.IsValidDifficulty(raw) {
		difficulty = raw
	}

	recipe = common.Recipe{
		Name:         name,
		Ingredients:  ingredients,
		Instructions: instructions,
		CookingTime:  cookingTime,
		Difficulty:   difficulty,
		Nutrition:    nutrition,
	}
	return recipe, nil
}

// requireString 取出非空字串欄位
func requireString(record CandidateRecord, key string) (string, error) {
	raw, ok := record[key]
	if !ok {
		return "", common.NewValidationError(fmt.Sprintf("missing required field %q", key))
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		return "", common.NewValidationError(fmt.Sprintf("field %q must be a non-empty string", key))
	}
	return s, nil
}

// requireStringSlice 取出非空字串序列欄位
func requireStringSlice(record CandidateRecord, key string) ([]string, error) {
	raw, ok := record[key]
	if !ok {
		return nil, common.NewValidationError(fmt.Sprintf("missing required field %q", key))
	}
	items, ok := raw.([]interface{})
	if !ok || len(items) == 0 {
		return nil, common.NewValidationError(fmt.Sprintf("field %q must be a non-empty list", key))
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, common.NewValidationError(fmt.Sprintf("field %q must contain only strings", key))
		}
		out = append(out, s)
	}
	return out, nil
}

// requireNutrition 取出營養資訊欄位：calories 為整數，protein/carbs 為字串
func requireNutrition(record CandidateRecord) (common.NutritionInfo, error) {
	var info common.NutritionInfo

	raw, ok := record["nutrition"]
	if !ok {
		return info, common.NewValidationError(`missing required field "nutrition"`)
	}
	m, ok := raw.(map[string]interface{})
	if !ok {
		return info, common.NewValidationError(`field "nutrition" must be an object`)
	}

	calories, err := asInt(m["calories"])
	if err != nil {
		return info, common.NewValidationError(`nutrition field "calories" must be a number`)
	}

	protein, ok := m["protein"].(string)
	if !ok || protein == "" {
		return info, common.NewValidationError(`nutrition field "protein" must be a non-empty string`)
	}
	carbs, ok := m["carbs"].(string)
	if !ok || carbs == "" {
		return info, common.NewValidationError(`nutrition field "carbs" must be a non-empty string`)
	}

	info = common.NutritionInfo{
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
	}
	return info, nil
}

// asInt 將 JSON number 轉為整數（浮點值截斷）
func asInt(raw interface{}) (int, error) {
	switch v := raw.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return 0, err
		}
		return int(f), nil
	case float64:
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, fmt.Errorf("not a number")
	}
}
