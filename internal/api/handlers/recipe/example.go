package recipe

import (
	"net/http"

	"recipe-analyzer/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// HandleExample 回傳固定的範例響應，方便前端串接測試
func (h *Handler) HandleExample(c *gin.Context) {
	c.JSON(http.StatusOK, AnalyzeResponse{
		Recipes: []common.Recipe{
			{
				Name:        "Garlic Butter Pasta",
				Ingredients: []string{"pasta", "garlic", "butter", "parmesan cheese", "black pepper"},
				Instructions: []string{
					"Boil pasta according to package directions",
					"Mince garlic and saute in butter until fragrant",
					"Toss cooked pasta with garlic butter",
					"Add grated parmesan and black pepper to taste",
				},
				CookingTime: "20 minutes",
				Difficulty:  common.DifficultyEasy,
				Nutrition: common.NutritionInfo{
					Calories: 450,
					Protein:  "12g",
					Carbs:    "60g",
				},
			},
			{
				Name:        "Simple Aglio e Olio",
				Ingredients: []string{"pasta", "garlic", "olive oil", "red pepper flakes", "parsley"},
				Instructions: []string{
					"Cook pasta until al dente",
					"Slice garlic and cook in olive oil",
					"Add red pepper flakes",
					"Toss pasta with garlic oil and parsley",
				},
				CookingTime: "15 minutes",
				Difficulty:  common.DifficultyEasy,
				Nutrition: common.NutritionInfo{
					Calories: 380,
					Protein:  "10g",
					Carbs:    "55g",
				},
			},
		},
		Status: "success",
		Mode:   h.mode,
	})
}
