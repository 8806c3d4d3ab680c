package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylesense/fitcore/internal/core/domain"
)

func hemBody() domain.BodyProfile {
	return domain.BodyProfile{
		Height:           66,
		Hip:              38,
		KneeFromFloor:    18,
		CalfMaxFromFloor: 14,
		CalfMinFromFloor: 10,
		AnkleFromFloor:   4,
		ThighMax:         22,
		CalfMax:          13.6,
		CalfMin:          11,
		Ankle:            8.5,
	}
}

func TestHemlineLabelsLandInOrder(t *testing.T) {
	b := hemBody()
	labels := []string{"mini", "above_knee", "knee", "below_knee", "midi", "below_calf", "ankle", "floor"}

	prev := b.Height
	for _, label := range labels {
		got := Hemline(domain.GarmentProfile{HemPosition: label, GSMEstimated: 200}, b)
		assert.Less(t, got.HemFromFloor, prev, "hem for %q must land lower than the previous label", label)
		prev = got.HemFromFloor
	}
}

func TestHemlineKneeDangerZone(t *testing.T) {
	b := hemBody()
	got := Hemline(domain.GarmentProfile{HemPosition: "knee", GSMEstimated: 200}, b)

	assert.Equal(t, "knee_danger", got.HemZone)
	require.Len(t, got.DangerZones, 3)
}

func TestHemlineCalfDangerZone(t *testing.T) {
	b := hemBody()
	got := Hemline(domain.GarmentProfile{HemPosition: "midi", GSMEstimated: 200}, b)

	assert.Equal(t, "calf_danger", got.HemZone)
}

func TestHemlineExplicitLengthScalesToHeight(t *testing.T) {
	length := 40.0
	g := domain.GarmentProfile{GarmentLengthIn: &length, GSMEstimated: 200}

	short := hemBody()
	short.Height = 60
	tall := hemBody()
	tall.Height = 70

	shortHem := Hemline(g, short)
	tallHem := Hemline(g, tall)

	assert.InDelta(t, 60-40.0*(60.0/66.0), shortHem.HemFromFloor, 1e-9)
	assert.InDelta(t, 70-40.0*(70.0/66.0), tallHem.HemFromFloor, 1e-9)
	assert.Greater(t, tallHem.HemFromFloor, shortHem.HemFromFloor)
}

func TestHemlineFabricRiseOnALineOverWideHips(t *testing.T) {
	b := hemBody()
	b.Hip = 44

	flowy := Hemline(domain.GarmentProfile{
		HemPosition:  "knee",
		Silhouette:   domain.SilhouetteALine,
		GSMEstimated: 200,
	}, b)
	straight := Hemline(domain.GarmentProfile{
		HemPosition:  "knee",
		Silhouette:   domain.SilhouetteShift,
		GSMEstimated: 200,
	}, b)

	assert.Greater(t, flowy.FabricRise, straight.FabricRise)
	assert.Greater(t, flowy.HemFromFloor, straight.HemFromFloor)
}

func TestHemlineExplicitLengthLandsOnWidestCalf(t *testing.T) {
	b := hemBody()
	b.CalfMaxFromFloor = 10.78
	b.CalfMax = 15
	b.CalfMin = 12

	// On a 66" body the 55.5" garment hem lands at 10.5" from the floor,
	// inside the widest-calf danger band around 10.78".
	length := 55.5
	g := domain.GarmentProfile{GarmentLengthIn: &length, GSMEstimated: 200}

	got := Hemline(g, b)

	require.Equal(t, "calf_danger", got.HemZone)
	assert.InDelta(t, b.CalfMaxFromFloor, got.HemFromFloor, 3.0)
}

func TestHemlineNarrowestPointBonus(t *testing.T) {
	b := hemBody()
	got := Hemline(domain.GarmentProfile{HemPosition: "ankle", GSMEstimated: 200}, b)

	// ankle label lands at AnkleFromFloor+2, the narrowest visible point
	assert.Equal(t, 2.0, got.NarrowestBonus)
}
