package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylesense/fitcore/internal/engine"
	"github.com/stylesense/fitcore/internal/engine/registry"
)

func TestReloadSwapsEmbeddedRules(t *testing.T) {
	eng := engine.New(registry.MustLoad())
	before := eng.Rules()

	uc := NewReloadRulesUseCase(eng, "")
	require.NoError(t, uc.Reload(context.Background()))

	assert.NotSame(t, before, eng.Rules())
}

func TestReloadFailsOnMissingOverrideFile(t *testing.T) {
	eng := engine.New(registry.MustLoad())
	before := eng.Rules()

	uc := NewReloadRulesUseCase(eng, filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, uc.Reload(context.Background()))

	assert.Same(t, before, eng.Rules(), "a failed reload must keep the old snapshot")
}

func TestReloadRejectsMalformedOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("weights: [broken"), 0o644))

	eng := engine.New(registry.MustLoad())
	uc := NewReloadRulesUseCase(eng, path)

	assert.Error(t, uc.Reload(context.Background()))
}
