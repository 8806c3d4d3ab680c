package fabric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylesense/fitcore/internal/core/domain"
)

func TestComputeClingExceedsCurvedZoneThreshold(t *testing.T) {
	resolved := domain.FabricResolution{TotalStretchPct: 15}

	check := ComputeCling(resolved, 38.0, 34.0, 0.8)

	require.True(t, check.ExceedsThreshold)
	assert.InDelta(t, 78.43, check.StretchDemandPct, 0.01)
	assert.InDelta(t, 41.2, check.BaseThreshold, 0.001)
	assert.InDelta(t, 0.904, check.Severity, 0.001)
}

func TestComputeClingNoDemandWhenGarmentIsLarger(t *testing.T) {
	resolved := domain.FabricResolution{TotalStretchPct: 20}

	check := ComputeCling(resolved, 32.0, 36.0, 0.5)

	assert.Zero(t, check.StretchDemandPct)
	assert.False(t, check.ExceedsThreshold)
	assert.Zero(t, check.Severity)
}

func TestComputeClingRigidFabricSaturates(t *testing.T) {
	resolved := domain.FabricResolution{TotalStretchPct: 0}

	check := ComputeCling(resolved, 38.0, 36.0, 0.3)

	require.True(t, check.ExceedsThreshold)
	assert.InDelta(t, 1.0, check.Severity, 0.001)
}

func TestComputeClingThresholdFloor(t *testing.T) {
	resolved := domain.FabricResolution{TotalStretchPct: 30}

	check := ComputeCling(resolved, 40.0, 35.0, 2.5)

	assert.InDelta(t, 10.0, check.BaseThreshold, 0.001)
}

func TestClingByZoneFittedFullBody(t *testing.T) {
	resolved := domain.FabricResolution{TotalStretchPct: 20}
	g := domain.GarmentProfile{
		Silhouette:    domain.SilhouetteFitted,
		Zone:          "full_body",
		CoversWaist:   true,
		CoversHips:    true,
		ExpansionRate: 0.02,
	}
	b := domain.BodyProfile{Bust: 38, Underbust: 34, Waist: 30, Hip: 40}

	checks := ClingByZone(resolved, g, b)

	require.Len(t, checks, 3)
	hip, ok := checks["hip"]
	require.True(t, ok)
	assert.True(t, hip.ExceedsThreshold)
	assert.Greater(t, hip.Severity, 0.5)
}

func TestClingByZoneSkipsLooseSilhouettes(t *testing.T) {
	resolved := domain.FabricResolution{TotalStretchPct: 5}
	g := domain.GarmentProfile{
		Silhouette: domain.SilhouetteOversized,
		Zone:       "full_body",
		CoversHips: true,
	}
	b := domain.BodyProfile{Bust: 44, Waist: 38, Hip: 48}

	assert.Nil(t, ClingByZone(resolved, g, b))
}
