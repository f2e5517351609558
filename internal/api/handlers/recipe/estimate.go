package recipe

import (
	"fmt"
	"net/http"

	recipeService "recipe-analyzer/internal/core/recipe"
	"recipe-analyzer/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NutritionRequest 營養估算請求
type NutritionRequest struct {
	Ingredients []string `json:"ingredients" binding:"required"`
	Servings    int      `json:"servings,omitempty"`
}

// NutritionResponse 營養估算響應，份量字串與食譜顯示格式一致
type NutritionResponse struct {
	Calories int    `json:"calories"`
	Protein  string `json:"protein"`
	Carbs    string `json:"carbs"`
	Fat      string `json:"fat"`
	Servings int    `json:"servings"`
}

// CookingTimeRequest 烹飪時間估算請求
type CookingTimeRequest struct {
	Ingredients []string `json:"ingredients" binding:"required"`
	Complexity  string   `json:"complexity,omitempty"`
}

// HandleNutrition 估算食材序列的每份營養
func (h *Handler) HandleNutrition(c *gin.Context) {
	var req NutritionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	servings := req.Servings
	if servings < 1 {
		servings = 4
	}

	estimate := recipeService.EstimateNutrition(req.Ingredients, servings)

	c.JSON(http.StatusOK, NutritionResponse{
		Calories: estimate.Calories,
		Protein:  fmt.Sprintf("%.1fg", estimate.Protein),
		Carbs:    fmt.Sprintf("%.1fg", estimate.Carbs),
		Fat:      fmt.Sprintf("%.1fg", estimate.Fat),
		Servings: estimate.Servings,
	})
}

// HandleCookingTime 估算食材序列的總烹飪時間
func (h *Handler) HandleCookingTime(c *gin.Context) {
	var req CookingTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	complexity := req.Complexity
	if complexity == "" {
		complexity = common.ComplexityMedium
	}

	c.JSON(http.StatusOK, gin.H{
		"cooking_time": recipeService.EstimateCookingTime(req.Ingredients, complexity),
	})
}
