package recipe

import (
	"fmt"

	"recipe-analyzer/internal/pkg/common"
)

// buildGenerationPrompt 構建食譜生成 prompt
func buildGenerationPrompt(ingredients []string, dietaryRestrictions string) string {
	constraints := "no constraints"
	if dietaryRestrictions != "" {
		constraints = fmt.Sprintf("dietary restrictions: %s", dietaryRestrictions)
	}

	return fmt.Sprintf(`Generate 2-3 recipes using only the ingredients below.
		Available ingredients:
		%s
		Constraints: %s
		Requirements:
		1. Use only the listed ingredients plus basic pantry staples
		2. Every field must use double quotes
		3. Return a JSON array of recipes, each with:
		- name: recipe name
		- ingredients: list of ingredients used
		- instructions: list of step-by-step instructions (at most 6 steps)
		- cookingTime: estimated time (e.g. "20 minutes")
		- difficulty: Easy/Medium/Hard
		- nutrition: object with calories (number), protein (string), carbs (string)
		4. Return only valid JSON, no commentary before or after
		`,
		common.FormatIngredients(ingredients),
		constraints)
}

// buildEnhancementPrompt 構建飲食限制替換 prompt，輸入為單一食譜的 JSON
func buildEnhancementPrompt(recipeJSON, dietaryRestrictions string) string {
	return fmt.Sprintf(`Adapt the recipe below for these dietary restrictions: %s
		Substitute any non-compliant ingredients and adjust instructions accordingly.
		Original recipe:
		%s
		Return the adapted recipe as a single JSON object with the same fields
		(name, ingredients, instructions, cookingTime, difficulty, nutrition).
		Return only valid JSON, no commentary before or after.
		`,
		dietaryRestrictions,
		recipeJSON)
}
