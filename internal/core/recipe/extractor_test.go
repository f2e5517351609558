package recipe

import (
	"testing"

	"recipe-analyzer/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "array surrounded by prose",
			input: `Here are recipes: [{"name":"A"}] enjoy`,
			want:  `[{"name":"A"}]`,
		},
		{
			name:  "object surrounded by prose",
			input: `Result: {"name":"A"} done`,
			want:  `{"name":"A"}`,
		},
		{
			name:  "no delimiters returns text unchanged",
			input: "no structured data here",
			want:  "no structured data here",
		},
		{
			name:  "unclosed bracket falls through to object",
			input: `broken [ but {"name":"A"} is fine`,
			want:  `{"name":"A"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSON(tt.input))
		})
	}
}

func TestExtractRecords(t *testing.T) {
	t.Run("array payload", func(t *testing.T) {
		records, err := ExtractRecords(`Here are recipes: [{"name":"A"}] enjoy`)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "A", records[0]["name"])
	})

	t.Run("wrapped in recipes key", func(t *testing.T) {
		records, err := ExtractRecords(`{"recipes": [{"name":"A"}, {"name":"B"}]}`)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "B", records[1]["name"])
	})

	t.Run("wrapped under another key", func(t *testing.T) {
		records, err := ExtractRecords(`{"results": [{"name":"A"}]}`)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "A", records[0]["name"])
	})

	t.Run("single object becomes one element list", func(t *testing.T) {
		records, err := ExtractRecords(`{"name":"A","difficulty":"Easy"}`)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "A", records[0]["name"])
	})

	t.Run("non-object elements become nil records", func(t *testing.T) {
		records, err := ExtractRecords(`[{"name":"A"}, "junk", 42]`)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.NotNil(t, records[0])
		assert.Nil(t, records[1])
		assert.Nil(t, records[2])
	})

	t.Run("unparseable text fails with extraction error", func(t *testing.T) {
		_, err := ExtractRecords("the model refused to answer")
		require.Error(t, err)
		assert.True(t, common.IsExtractionError(err))
	})

	t.Run("malformed json fails with extraction error", func(t *testing.T) {
		_, err := ExtractRecords(`[{"name": "A"`)
		require.Error(t, err)
		assert.True(t, common.IsExtractionError(err))
	})

	t.Run("scalar payload fails with extraction error", func(t *testing.T) {
		_, err := ExtractRecords(`42`)
		require.Error(t, err)
		assert.True(t, common.IsExtractionError(err))
	})
}
