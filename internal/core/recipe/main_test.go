package recipe

import (
	"os"
	"testing"

	"recipe-analyzer/internal/pkg/common"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}
