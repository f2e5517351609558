package recipe

import (
	"fmt"
	"math"
	"strings"
)

// nutritionEntry 營養表條目（以 100g 等量計）
type nutritionEntry struct {
	name     string
	calories float64
	protein  float64
	carbs    float64
	fat      float64
}

// nutritionTable 靜態營養表
// 比對順序即表內順序：先精確比對，再做雙向子字串比對，取第一個命中
// 啟動後唯讀，可被所有請求併發共用，無需加鎖
var nutritionTable = []nutritionEntry{
	// 蛋白質類
	{"chicken", 165, 31, 0, 3.6},
	{"beef", 250, 26, 0, 15},
	{"pork", 242, 27, 0, 14},
	{"fish", 206, 22, 0, 12},
	{"salmon", 208, 20, 0, 13},
	{"tuna", 132, 28, 0, 1},
	{"eggs", 155, 13, 1, 11},
	{"tofu", 76, 8, 2, 5},

	// 穀物與碳水
	{"rice", 130, 3, 28, 0.3},
	{"pasta", 131, 5, 25, 1.1},
	{"bread", 265, 9, 49, 3.2},
	{"quinoa", 222, 8, 39, 3.6},
	{"oats", 389, 17, 66, 7},

	// 蔬菜
	{"tomatoes", 18, 0.9, 3.9, 0.2},
	{"onions", 40, 1.1, 9.3, 0.1},
	{"garlic", 149, 6.4, 33, 0.5},
	{"carrots", 41, 0.9, 10, 0.2},
	{"broccoli", 34, 2.8, 7, 0.4},
	{"spinach", 23, 2.9, 3.6, 0.4},
	{"bell peppers", 31, 1, 7, 0.3},
	{"mushrooms", 22, 3.1, 3.3, 0.3},

	// 乳製品
	{"cheese", 113, 7, 1, 9},
	{"parmesan", 110, 10, 1, 7},
	{"milk", 42, 3.4, 5, 1},
	{"butter", 717, 0.9, 0.1, 81},
	{"yogurt", 59, 10, 3.6, 0.4},

	// 油脂
	{"olive oil", 884, 0, 0, 100},
	{"coconut oil", 862, 0, 0, 100},

	// 香料（熱量多半可忽略）
	{"salt", 0, 0, 0, 0},
	{"pepper", 251, 10, 64, 3},
	{"basil", 22, 3.2, 2.6, 0.6},
	{"oregano", 265, 9, 69, 4.3},
	{"thyme", 101, 5.6, 24, 1.7},
	{"parsley", 36, 3, 6, 0.8},
}

// defaultNutrition 查無資料時的預設值
var defaultNutrition = nutritionEntry{"", 50, 2, 8, 1}

// timeEntry 烹飪時間表條目（分鐘）
type timeEntry struct {
	name    string
	minutes int
}

// cookingTimeTable 靜態烹飪時間表
// 單向子字串比對（表鍵包含於食材名稱中），每個食材取第一個命中
var cookingTimeTable = []timeEntry{
	// 蛋白質類（耗時最長）
	{"chicken", 25}, {"beef", 30}, {"pork", 25}, {"fish", 15}, {"salmon", 20},
	{"tuna", 10}, {"eggs", 5}, {"tofu", 10},

	// 穀物
	{"rice", 20}, {"pasta", 12}, {"quinoa", 15}, {"oats", 5},

	// 蔬菜（快熟）
	{"tomatoes", 5}, {"onions", 8}, {"garlic", 2}, {"carrots", 10},
	{"broccoli", 8}, {"spinach", 3}, {"bell peppers", 6}, {"mushrooms", 5},

	// 免烹調
	{"cheese", 0}, {"parmesan", 0}, {"milk", 0}, {"butter", 0},
	{"olive oil", 0}, {"salt", 0}, {"pepper", 0}, {"herbs", 0},
}

// defaultCookingTime 查無資料的食材預設時間
const defaultCookingTime = 10

// EstimateNutrition 計算食材序列的每份營養估算
// 為全函數：任何輸入（包含空序列）都回傳合法結果，加總與順序無關
func EstimateNutrition(ingredients []string, servings int) NutritionEstimate {
	if servings < 1 {
		servings = 4
	}

	var totalCalories, totalProtein, totalCarbs, totalFat float64

	for _, ingredient := range ingredients {
		entry := lookupNutrition(strings.ToLower(strings.TrimSpace(ingredient)))

		// 每個食材以 100g 等量估算
		totalCalories += entry.calories
		totalProtein += entry.protein
		totalCarbs += entry.carbs
		totalFat += entry.fat
	}

	return NutritionEstimate{
		Calories: int(math.Round(totalCalories / float64(servings))),
		Protein:  round1(totalProtein / float64(servings)),
		Carbs:    round1(totalCarbs / float64(servings)),
		Fat:      round1(totalFat / float64(servings)),
		Servings: servings,
	}
}

// lookupNutrition 依序執行精確比對、雙向子字串比對，否則回傳預設值
func lookupNutrition(clean string) nutritionEntry {
	for _, entry := range nutritionTable {
		if entry.name == clean {
			return entry
		}
	}

	for _, entry := range nutritionTable {
		if strings.Contains(clean, entry.name) || strings.Contains(entry.name, clean) {
			return entry
		}
	}

	return defaultNutrition
}

// EstimateCookingTime 以最慢食材決定基礎時間，再按複雜度調整
// 空序列 → 基礎時間 0，只剩準備時間
func EstimateCookingTime(ingredients []string, complexity string) string {
	maxTime := 0
	for _, ingredient := range ingredients {
		clean := strings.ToLower(strings.TrimSpace(ingredient))

		matched := false
		for _, entry := range cookingTimeTable {
			if strings.Contains(clean, entry.name) {
				if entry.minutes > maxTime {
					maxTime = entry.minutes
				}
				matched = true
				break
			}
		}
		if !matched && defaultCookingTime > maxTime {
			maxTime = defaultCookingTime
		}
	}

	tier := strings.ToLower(complexity)

	multiplier := 1.0
	switch tier {
	case "easy":
		multiplier = 1.0
	case "medium":
		multiplier = 1.3
	case "hard":
		multiplier = 1.8
	}

	finalTime := int(float64(maxTime) * multiplier)

	// 加上準備時間（依複雜度 5-15 分鐘）
	switch tier {
	case "easy":
		finalTime += 5
	case "medium":
		finalTime += 10
	case "hard":
		finalTime += 15
	default:
		finalTime += 10
	}

	return fmt.Sprintf("%d minutes", finalTime)
}

// round1 四捨五入到一位小數
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
