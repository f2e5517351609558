package recipe

import (
	"net/http"
	"strings"

	recipeService "recipe-analyzer/internal/core/recipe"
	"recipe-analyzer/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnalyzeRequest 食材分析請求
type AnalyzeRequest struct {
	Ingredients         string `json:"ingredients" binding:"required"` // 逗號分隔的食材清單
	DietaryRestrictions string `json:"dietary_restrictions,omitempty"` // 飲食限制（如 vegan、gluten-free）
}

// AnalyzeResponse 食材分析響應
type AnalyzeResponse struct {
	Recipes []common.Recipe `json:"recipes"`
	Status  string          `json:"status"`
	Mode    string          `json:"mode"`
}

// Handler 食譜處理程序
type Handler struct {
	synthesizer *recipeService.Synthesizer
	mode        string
}

// NewHandler 創建新的食譜處理程序
func NewHandler(synthesizer *recipeService.Synthesizer, mode string) *Handler {
	return &Handler{
		synthesizer: synthesizer,
		mode:        mode,
	}
}

// HandleAnalyze 分析食材並生成帶營養資訊的食譜
func (h *Handler) HandleAnalyze(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	common.LogInfo("開始處理食材分析請求",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
	)

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if strings.TrimSpace(req.Ingredients) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ingredients cannot be empty"})
		return
	}

	recipes, err := h.synthesizer.Synthesize(c.Request.Context(), req.Ingredients, req.DietaryRestrictions)
	if err != nil {
		// Synthesize 唯一的錯誤情況是輸入為空，屬於呼叫方契約違反
		if common.IsEmptyInputError(err) {
			common.LogWarn("食材輸入為空",
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ingredients cannot be empty"})
			return
		}
		common.LogError("食譜合成失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate recipes"})
		return
	}

	common.LogInfo("食材分析完成",
		zap.String("request_id", requestID),
		zap.Int("recipe_count", len(recipes)),
	)

	c.JSON(http.StatusOK, AnalyzeResponse{
		Recipes: recipes,
		Status:  "success",
		Mode:    h.mode,
	})
}
