package intake

import (
	"strings"

	"github.com/stylesense/fitcore/internal/engine/registry"
)

// resolvedFabric is the output of the weight resolution chain. When a named
// fabric matched, its table entry also supplies defaults for other fabric
// attributes the extractor left blank.
type resolvedFabric struct {
	GSM    float64
	Name   string
	Entry  *registry.Fabric
	Method string
}

// resolveGSM estimates grams per square meter from whatever the listing
// exposes, in priority order: a named fabric in the lookup table, then
// fiber plus stated weight and drape, then weight alone, then a fixed
// midweight fallback.
func resolveGSM(reg *registry.Registry, title, composition, fabricName, fiber, weight, drape string) resolvedFabric {
	if name, entry, ok := matchFabricName(reg, fabricName, composition, title); ok {
		gsm := entry.BaseGSM
		return resolvedFabric{GSM: gsm, Name: name, Entry: entry, Method: "fabric_table"}
	}

	if base, ok := gsmByWeight[strings.ToLower(weight)]; ok {
		gsm := base * reg.FiberGSMMultiplier(normalizeFiber(fiber))
		switch strings.ToLower(drape) {
		case "stiff":
			gsm += 20
		case "very_drapey":
			gsm -= 20
		}
		return resolvedFabric{GSM: gsm, Method: "fiber_weight_drape"}
	}

	return resolvedFabric{GSM: 180, Method: "fallback"}
}

// matchFabricName scans the explicit fabric name first, then the composition
// and title texts, looking for the longest fabric-table match. Bigrams beat
// unigrams so "silk chiffon" wins over "silk".
func matchFabricName(reg *registry.Registry, sources ...string) (string, *registry.Fabric, bool) {
	for _, src := range sources {
		words := tokenize(src)
		for n := 3; n >= 1; n-- {
			for i := 0; i+n <= len(words); i++ {
				candidate := strings.Join(words[i:i+n], "_")
				if entry, ok := reg.FabricData(candidate); ok {
					return candidate, &entry, true
				}
			}
		}
	}
	return "", nil, false
}

func tokenize(s string) []string {
	lower := strings.ToLower(s)
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		switch r {
		case ' ', ',', ';', '/', '(', ')', '-', '%':
			return true
		}
		return r >= '0' && r <= '9'
	})
	out := fields[:0]
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
