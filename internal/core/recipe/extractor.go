package recipe

import (
	"sort"
	"strings"

	"recipe-analyzer/internal/pkg/common"
)

// ExtractJSON 從可能夾雜說明文字的生成內容中切出最可能的 JSON 片段
// 優先取第一個 '[' 到最後一個 ']'，其次第一個 '{' 到最後一個 '}'，否則原樣回傳
func ExtractJSON(text string) string {
	text = strings.TrimSpace(text)

	if strings.Contains(text, "[") {
		start := strings.Index(text, "[")
		end := strings.LastIndex(text, "]") + 1
		if start != -1 && end > start {
			return text[start:end]
		}
	}

	if strings.Contains(text, "{") {
		start := strings.Index(text, "{")
		end := strings.LastIndex(text, "}") + 1
		if start != -1 && end > start {
			return text[start:end]
		}
	}

	return text
}

// ExtractRecords 從生成後端的自由文本中提取候選食譜記錄
// 失敗回傳 ExtractionError，由上游以備援流程恢復，絕不致命
func ExtractRecords(text string) ([]CandidateRecord, error) {
	payload := ExtractJSON(text)

	var parsed interface{}
	if err := common.ParseJSON(payload, &parsed); err != nil {
		return nil, common.NewExtractionError("no parseable structured payload", err)
	}

	var items []interface{}
	switch v := parsed.(type) {
	case []interface{}:
		items = v
	case map[string]interface{}:
		// 頂層為物件：優先解開 "recipes" 鍵，其次任何序列值的鍵，否則視為單一食譜
		if seq, ok := v["recipes"].([]interface{}); ok {
			items = seq
		} else if seq := firstSequenceValue(v); seq != nil {
			items = seq
		} else {
			items = []interface{}{v}
		}
	default:
		return nil, common.NewExtractionError("structured payload is not a list or object", nil)
	}

	// 非物件的元素保留為 nil 記錄，交由驗證階段丟棄
	records := make([]CandidateRecord, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]interface{}); ok {
			records = append(records, CandidateRecord(m))
		} else {
			records = append(records, nil)
		}
	}

	return records, nil
}

// firstSequenceValue 以鍵名排序取第一個序列值，確保提取結果可重現
func firstSequenceValue(m map[string]interface{}) []interface{} {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if seq, ok := m[k].([]interface{}); ok {
			return seq
		}
	}
	return nil
}
