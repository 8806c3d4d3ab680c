package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/engine/contextmod"
	"github.com/stylesense/fitcore/internal/engine/registry"
)

func testBody() domain.BodyProfile {
	return domain.BodyProfile{
		Height:        66,
		Bust:          38,
		Underbust:     34,
		Waist:         30,
		Hip:           40,
		ShoulderWidth: 15.5,
		NeckLength:    13,

		TorsoLength:     15,
		LegLengthVisual: 41,
		Inseam:          30,

		ArmLength:   23,
		UpperArmMax: 11,
		Elbow:       9.35,
		ForearmMax:  8.8,
		ForearmMin:  7.15,
		Wrist:       6,

		KneeFromFloor:    18,
		CalfMaxFromFloor: 14,
		CalfMinFromFloor: 10,
		AnkleFromFloor:   4,
		ThighMax:         22,
		CalfMax:          13.6,
		CalfMin:          11,
		Ankle:            8.5,

		BustProjection: 2,
		HipProjection:  1.7,

		TissueFirmness:    0.6,
		SkinToneL:         0.55,
		ContourSmoothness: 0.7,
		SkinDarkness:      0.45,

		BellyZone:    0.5,
		HipZone:      0.5,
		UpperArmZone: 0.5,
		BustZone:     0.5,
	}
}

func testDress() domain.GarmentProfile {
	return domain.GarmentProfile{
		PrimaryFiber:    "polyester",
		PrimaryFiberPct: 95,
		ElastanePct:     5,
		Construction:    domain.ConstructionKnitJersey,
		GSMEstimated:    220,
		Surface:         domain.SurfaceMatte,
		SurfaceFriction: 0.6,
		Drape:           6,

		Category:      domain.CategoryDress,
		Silhouette:    domain.SilhouetteALine,
		ExpansionRate: 0.08,

		Neckline: domain.NecklineVNeck,
		VDepthCm: 8,

		SleeveType: domain.SleeveShort,

		HemPosition: "knee",

		CoversWaist: true,
		CoversHips:  true,
		Zone:        "full_body",

		ColorLightness:  0.20,
		ColorSaturation: 0.40,

		BrandTier:          domain.TierMidMarket,
		ModelEstimatedSize: 4,
		GarmentLayer:       domain.LayerBase,
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	eng := New(registry.MustLoad())
	b := testBody()
	b.StylingGoals = []domain.StylingGoal{domain.GoalLookTaller, domain.GoalSlimming}
	g := testDress()

	first := eng.Score(b, g, contextmod.Context{})
	second := eng.Score(b, g, contextmod.Context{})

	assert.Equal(t, first.OverallScore, second.OverallScore)
	assert.Equal(t, first.DisplayScore, second.DisplayScore)
	assert.Equal(t, first.CompositeRaw, second.CompositeRaw)
	assert.Equal(t, first.Confidence, second.Confidence)
	require.Len(t, second.PrincipleScores, len(first.PrincipleScores))
	for i := range first.PrincipleScores {
		assert.Equal(t, first.PrincipleScores[i].Score, second.PrincipleScores[i].Score, first.PrincipleScores[i].Name)
	}
}

func TestScoreStaysInBounds(t *testing.T) {
	eng := New(registry.MustLoad())
	b := testBody()
	b.StylingGoals = []domain.StylingGoal{domain.GoalHideMidsection}

	result := eng.Score(b, testDress(), contextmod.Context{})

	assert.GreaterOrEqual(t, result.OverallScore, 0.0)
	assert.LessOrEqual(t, result.OverallScore, 10.0)
	assert.GreaterOrEqual(t, result.DisplayScore, 1.0)
	assert.LessOrEqual(t, result.DisplayScore, 10.0)
	assert.GreaterOrEqual(t, result.CompositeRaw, -1.0)
	assert.LessOrEqual(t, result.CompositeRaw, 1.0)
	assert.Greater(t, result.Confidence, 0.0)
	assert.LessOrEqual(t, result.Confidence, 1.0)
	assert.NotEmpty(t, result.ReasoningChain)
	assert.NotNil(t, result.Translation)
}

func TestScoreHandlesSparseGarment(t *testing.T) {
	eng := New(registry.MustLoad())

	// Unknown everything: the pipeline must degrade, not panic.
	g := domain.GarmentProfile{
		Category:   domain.CategoryTop,
		Silhouette: domain.SilhouetteUnknown,
		Neckline:   domain.NecklineUnknown,
		SleeveType: domain.SleeveUnknown,
	}
	result := eng.Score(testBody(), g, contextmod.Context{})

	assert.GreaterOrEqual(t, result.DisplayScore, 1.0)
	assert.LessOrEqual(t, result.DisplayScore, 10.0)
}

func TestGoalAssessmentsCoverRequestedGoals(t *testing.T) {
	eng := New(registry.MustLoad())
	b := testBody()
	b.StylingGoals = []domain.StylingGoal{domain.GoalLookTaller, domain.GoalHighlightWaist}

	result := eng.Score(b, testDress(), contextmod.Context{})

	require.Len(t, result.GoalAssessments, 2)
	seen := map[domain.StylingGoal]bool{}
	for _, ga := range result.GoalAssessments {
		seen[ga.Goal] = true
		assert.Contains(t, []domain.Verdict{domain.VerdictPass, domain.VerdictCaution, domain.VerdictFail}, ga.Verdict)
	}
	assert.True(t, seen[domain.GoalLookTaller])
	assert.True(t, seen[domain.GoalHighlightWaist])
}

func TestFormalContextPenalizesMiniHem(t *testing.T) {
	eng := New(registry.MustLoad())
	b := testBody()
	g := testDress()
	g.HemPosition = "mini"

	plain := eng.Score(b, g, contextmod.Context{})
	formal := eng.Score(b, g, contextmod.Context{Occasion: "formal", EventType: "formal"})

	assert.Less(t, formal.OverallScore, plain.OverallScore)
}

func TestReloadSwapsRegistrySnapshot(t *testing.T) {
	first := registry.MustLoad()
	eng := New(first)
	require.Same(t, first, eng.Rules())

	second := registry.MustLoad()
	eng.Reload(second)
	assert.Same(t, second, eng.Rules())

	// A score after reload still runs through the whole pipeline.
	result := eng.Score(testBody(), testDress(), contextmod.Context{})
	assert.NotEmpty(t, result.PrincipleScores)
}

func TestStripeReversalOnAppleShape(t *testing.T) {
	eng := New(registry.MustLoad())
	g := testDress()
	g.HasPattern = true
	g.HasHorizontalStripes = true
	g.StripeWidthCm = 2

	apple := testBody()
	apple.Bust = 37
	apple.Waist = 34.5
	apple.Hip = 38
	apple.ShoulderWidth = 11.5
	require.Equal(t, domain.ShapeApple, apple.Shape())

	result := eng.Score(apple, g, contextmod.Context{})

	var reversed bool
	for _, p := range result.PrincipleScores {
		if p.Name == "h_stripe_thinning" && p.Applicable {
			reversed = p.Reversed
		}
	}
	assert.True(t, reversed, "horizontal stripes across an apple midsection must flip direction")

	straight := eng.Score(testBody(), g, contextmod.Context{})
	for _, p := range straight.PrincipleScores {
		if p.Name == "h_stripe_thinning" && p.Applicable {
			assert.False(t, p.Reversed)
		}
	}
}

func TestScoreHandlesNilWaistDefinition(t *testing.T) {
	eng := New(registry.MustLoad())
	g := testDress()
	require.Nil(t, g.HasWaistDefinition)

	result := eng.Score(testBody(), g, contextmod.Context{})

	assert.GreaterOrEqual(t, result.DisplayScore, 1.0)
	for _, ga := range result.GoalAssessments {
		assert.NotEmpty(t, ga.Verdict)
	}
}

func TestDarkFittedScoresDarkSlimming(t *testing.T) {
	eng := New(registry.MustLoad())
	b := testBody()
	b.StylingGoals = []domain.StylingGoal{domain.GoalSlimming}
	g := testDress()
	g.ColorLightness = 0.10
	g.Silhouette = domain.SilhouetteFitted

	result := eng.Score(b, g, contextmod.Context{})

	var found bool
	for _, p := range result.PrincipleScores {
		if p.Name == "dark_slimming" {
			found = true
			assert.True(t, p.Applicable)
			assert.Greater(t, p.Score, 0.0)
		}
	}
	require.True(t, found, "dark_slimming principle missing from result")
}

func principleByName(t *testing.T, result domain.ScoreResult, name string) domain.PrincipleScore {
	t.Helper()
	for _, p := range result.PrincipleScores {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("principle %q missing from result", name)
	return domain.PrincipleScore{}
}

func TestBustGoalSplitsNecklineVerdict(t *testing.T) {
	eng := New(registry.MustLoad())
	g := testDress()
	g.Neckline = domain.NecklineDeepV
	depth := 9.0
	g.NecklineDepth = &depth

	enhance := testBody()
	enhance.GoalBust = "enhance"
	minimize := testBody()
	minimize.GoalBust = "minimize"

	forEnhance := principleByName(t, eng.Score(enhance, g, contextmod.Context{}), "neckline_compound")
	forMinimize := principleByName(t, eng.Score(minimize, g, contextmod.Context{}), "neckline_compound")

	require.True(t, forEnhance.Applicable)
	require.True(t, forMinimize.Applicable)
	assert.Greater(t, forEnhance.Score, forMinimize.Score)
}

func TestFittedClingOnCurvyHipsLowersFabricZone(t *testing.T) {
	eng := New(registry.MustLoad())
	b := testBody()
	b.Hip = 48

	fitted := testDress()
	fitted.Silhouette = domain.SilhouetteFitted
	fitted.ExpansionRate = 0.02
	loose := testDress()
	loose.Silhouette = domain.SilhouetteOversized
	loose.ExpansionRate = 0.25

	fittedZone := principleByName(t, eng.Score(b, fitted, contextmod.Context{}), "fabric_zone")
	looseZone := principleByName(t, eng.Score(b, loose, contextmod.Context{}), "fabric_zone")

	require.True(t, fittedZone.Applicable)
	assert.Less(t, fittedZone.Score, looseZone.Score)
}

func TestShinierSurfaceNeverImprovesComposite(t *testing.T) {
	eng := New(registry.MustLoad())
	b := testBody()

	matte := testDress()
	shiny := testDress()
	shiny.Surface = domain.SurfaceMaximumShine

	matteResult := eng.Score(b, matte, contextmod.Context{})
	shinyResult := eng.Score(b, shiny, contextmod.Context{})

	assert.LessOrEqual(t, shinyResult.CompositeRaw, matteResult.CompositeRaw)
}

func TestVNeckDepthWindowShapesElongation(t *testing.T) {
	eng := New(registry.MustLoad())
	b := testBody()

	moderate := testDress()
	moderate.Neckline = domain.NecklineVNeck
	moderateDepth := 4.0
	moderate.NecklineDepth = &moderateDepth

	plunging := testDress()
	plunging.Neckline = domain.NecklineVNeck
	plungingDepth := 9.0
	plunging.NecklineDepth = &plungingDepth

	inWindow := principleByName(t, eng.Score(b, moderate, contextmod.Context{}), "v_neck_elongation")
	pastWindow := principleByName(t, eng.Score(b, plunging, contextmod.Context{}), "v_neck_elongation")

	require.True(t, inWindow.Applicable)
	assert.Greater(t, inWindow.Score, pastWindow.Score)
}
