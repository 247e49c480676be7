package planner

import (
	"fmt"
	"sort"

	"github.com/sizzlehq/sizzle/internal/catalog"
	"github.com/sizzlehq/sizzle/internal/scene"
)

// orderScenes runs Stage 1 (spec.md §4.5): intent-bucket assembly
// followed by a bounded variety sweep. It returns the reordered
// slate plus a human-readable rationale trail.
func orderScenes(scenes []scene.Analyzed) ([]scene.Analyzed, []string) {
	buckets := bucketByTopIntent(scenes)

	opening := buckets[catalog.IntentOpening]
	hero := buckets[catalog.IntentHero]
	closing := buckets[catalog.IntentClosing]
	emotional := buckets[catalog.IntentEmotional]

	middle := append([]scene.Analyzed{}, buckets[catalog.IntentDetail]...)
	middle = append(middle, buckets[catalog.IntentInformational]...)
	middle = append(middle, buckets[catalog.IntentTransition]...)
	middle = append(middle, buckets[""]...) // untagged

	middle = interleave(middle, emotional)

	ordered := make([]scene.Analyzed, 0, len(scenes))
	ordered = append(ordered, opening...)
	ordered = append(ordered, hero...)
	ordered = append(ordered, middle...)
	ordered = append(ordered, closing...)

	rationale := []string{
		fmt.Sprintf("opening: %d, hero: %d, middle: %d, closing: %d", len(opening), len(hero), len(middle), len(closing)),
	}

	varietyNotes := varietySweep(ordered)
	rationale = append(rationale, varietyNotes...)

	return ordered, rationale
}

// bucketByTopIntent assigns each scene to the bucket of its
// highest-priority intent tag (catalog.IntentPriority), or the ""
// bucket when untagged. Buckets are internally sorted by descending
// intent-tag confidence, stable on input order for ties.
func bucketByTopIntent(scenes []scene.Analyzed) map[string][]scene.Analyzed {
	buckets := map[string][]scene.Analyzed{}
	for _, a := range scenes {
		key := topIntent(a.Metadata.IntentTags)
		buckets[key] = append(buckets[key], a)
	}
	for key, bucket := range buckets {
		b := bucket
		sort.SliceStable(b, func(i, j int) bool {
			return b[i].Confidence.IntentTags > b[j].Confidence.IntentTags
		})
		buckets[key] = b
	}
	return buckets
}

func topIntent(tags []string) string {
	for _, p := range catalog.IntentPriority {
		for _, t := range tags {
			if t == p {
				return p
			}
		}
	}
	return ""
}

// interleave inserts emotional scenes into the middle slate at even
// intervals (spec.md §4.5 Stage 1.2): step = max(1, len(middle) /
// (len(emotional)+1)).
func interleave(middle, emotional []scene.Analyzed) []scene.Analyzed {
	if len(emotional) == 0 {
		return middle
	}
	step := len(middle) / (len(emotional) + 1)
	if step < 1 {
		step = 1
	}

	out := make([]scene.Analyzed, 0, len(middle)+len(emotional))
	mi, ei := 0, 0
	for mi < len(middle) || ei < len(emotional) {
		for i := 0; i < step && mi < len(middle); i++ {
			out = append(out, middle[mi])
			mi++
		}
		if ei < len(emotional) {
			out = append(out, emotional[ei])
			ei++
		}
	}
	return out
}

func varietySweep(ordered []scene.Analyzed) []string {
	var notes []string

	for i := 0; i+1 < len(ordered); i++ {
		if ordered[i].Metadata.ContentType == ordered[i+1].Metadata.ContentType {
			if j := findDifferentContentType(ordered, i+1, 3); j > i+1 {
				ordered[i+1], ordered[j] = ordered[j], ordered[i+1]
				notes = append(notes, fmt.Sprintf("swapped positions %d and %d to avoid repeated content_type", i+1, j))
			}
		}
	}

	for i := 0; i+2 < len(ordered); i++ {
		if ordered[i].Metadata.VisualWeight == ordered[i+1].Metadata.VisualWeight &&
			ordered[i+1].Metadata.VisualWeight == ordered[i+2].Metadata.VisualWeight {
			if j := findDifferentVisualWeight(ordered, i+2, ordered[i].Metadata.VisualWeight, 3); j > i+2 {
				ordered[i+2], ordered[j] = ordered[j], ordered[i+2]
				notes = append(notes, fmt.Sprintf("swapped positions %d and %d to break a visual_weight run", i+2, j))
			}
		}
	}

	if len(ordered) > 1 && ordered[0].Metadata.MotionEnergy == string(catalog.EnergyHigh) &&
		!hasTag(ordered[0].Metadata.IntentTags, catalog.IntentHero) &&
		!hasTag(ordered[0].Metadata.IntentTags, catalog.IntentOpening) {
		if j := findLowerEnergy(ordered, 1, 3); j > 0 {
			ordered[0], ordered[j] = ordered[j], ordered[0]
			notes = append(notes, fmt.Sprintf("swapped high-energy opener with position %d to shape the energy arc", j))
		}
	}

	return notes
}

func findDifferentContentType(ordered []scene.Analyzed, from, lookahead int) int {
	target := ordered[from-1].Metadata.ContentType
	limit := from + lookahead + 1
	if limit > len(ordered) {
		limit = len(ordered)
	}
	for j := from + 1; j < limit; j++ {
		if ordered[j].Metadata.ContentType != target {
			return j
		}
	}
	return -1
}

func findDifferentVisualWeight(ordered []scene.Analyzed, from int, weight string, lookahead int) int {
	limit := from + lookahead + 1
	if limit > len(ordered) {
		limit = len(ordered)
	}
	for j := from + 1; j < limit; j++ {
		if ordered[j].Metadata.VisualWeight != weight {
			return j
		}
	}
	return -1
}

func findLowerEnergy(ordered []scene.Analyzed, from, lookahead int) int {
	limit := from + lookahead
	if limit > len(ordered) {
		limit = len(ordered)
	}
	for j := from; j < limit; j++ {
		e := ordered[j].Metadata.MotionEnergy
		if e == string(catalog.EnergyModerate) || e == string(catalog.EnergySubtle) || e == string(catalog.EnergyStatic) {
			return j
		}
	}
	return -1
}

func hasTag(tags []string, target string) bool {
	for _, t := range tags {
		if t == target {
			return true
		}
	}
	return false
}
