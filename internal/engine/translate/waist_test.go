package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/engine/registry"
)

func TestProportionShiftHeelTiers(t *testing.T) {
	b := hemBody()
	b.LegLengthVisual = 40

	low, _ := ProportionShift(b, 2.0, false, false)
	mid, _ := ProportionShift(b, 4.0, false, false)
	high, _ := ProportionShift(b, 6.0, false, false)

	// Taller heels convert a smaller share of their height to leg line.
	assert.InDelta(t, 41.4, low, 1e-9)
	assert.InDelta(t, 42.4, mid, 1e-9)
	assert.InDelta(t, 43.0, high, 1e-9)
}

func TestProportionShiftShoeTone(t *testing.T) {
	b := hemBody()
	b.LegLengthVisual = 40

	nude, _ := ProportionShift(b, 3.0, true, false)
	contrast, _ := ProportionShift(b, 3.0, false, true)

	assert.InDelta(t, 42.7, nude, 1e-9)
	assert.InDelta(t, 40.8, contrast, 1e-9)
	assert.Greater(t, nude, contrast)
}

func TestGarmentFootwearLiftsLegRatio(t *testing.T) {
	reg := registry.MustLoad()
	b := hemBody()
	b.TorsoLength = 15
	b.LegLengthVisual = 41

	flat := domain.GarmentProfile{
		Category:     domain.CategoryDress,
		HemPosition:  "knee",
		GSMEstimated: 200,
	}
	heeled := flat
	heeled.HeelHeightIn = 4
	heeled.NudeShoe = true

	flatOut, _ := Garment(reg, flat, b, domain.FabricResolution{})
	heeledOut, _ := Garment(reg, heeled, b, domain.FabricResolution{})

	assert.Greater(t, heeledOut.VisualLegRatio, flatOut.VisualLegRatio)
}
