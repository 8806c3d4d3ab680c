package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/stylesense/fitcore/internal/engine"
	"github.com/stylesense/fitcore/internal/engine/registry"
)

// ReloadRulesUseCase swaps the engine's rule snapshot. When an override
// path is configured the file is re-read on every reload, so operators can
// tune weights without a redeploy; otherwise the embedded tables are
// re-parsed.
type ReloadRulesUseCase struct {
	eng          *engine.Engine
	overridePath string
}

func NewReloadRulesUseCase(eng *engine.Engine, overridePath string) *ReloadRulesUseCase {
	return &ReloadRulesUseCase{eng: eng, overridePath: overridePath}
}

func (uc *ReloadRulesUseCase) Reload(_ context.Context) error {
	reg, err := uc.load()
	if err != nil {
		return err
	}
	uc.eng.Reload(reg)
	return nil
}

func (uc *ReloadRulesUseCase) load() (*registry.Registry, error) {
	if uc.overridePath == "" {
		return registry.Load()
	}
	data, err := os.ReadFile(uc.overridePath)
	if err != nil {
		return nil, fmt.Errorf("read rules override %s: %w", uc.overridePath, err)
	}
	reg, err := registry.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("rules override %s: %w", uc.overridePath, err)
	}
	return reg, nil
}
