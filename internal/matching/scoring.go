package matching

import (
	"sort"
	"strings"

	"github.com/jonathan/career-explorer/internal/skills"
	"github.com/jonathan/career-explorer/internal/types"
)

// subScoreSet holds unrounded sub-scores in [0,100]
type subScoreSet struct {
	skills      float64
	interests   float64
	experience  float64
	preferences float64
	personality float64
}

// importanceWeight maps an importance tier to its weight.
// Unknown tiers count as beneficial.
func importanceWeight(importance types.SkillImportance) float64 {
	switch importance {
	case types.ImportanceCritical:
		return importanceCriticalWeight
	case types.ImportanceImportant:
		return importanceImportantWeight
	default:
		return importanceBeneficialWeight
	}
}

// skillMatch is the outcome of matching a career's requirements
type skillMatch struct {
	score   float64
	matched []string
	missing []string
}

// computeSkillsScore weights each requirement by its importance tier and by
// how well the best profile skill satisfies it:
// score = Σ(importance × quality) / Σ importance × 100.
// A career with no requirements scores NeutralScore.
func computeSkillsScore(profileSkills []string, reqs []types.RequiredSkill) skillMatch {
	if len(reqs) == 0 {
		return skillMatch{score: NeutralScore, matched: []string{}, missing: []string{}}
	}

	type miss struct {
		name   string
		weight float64
	}

	totalWeight := 0.0
	matchedWeight := 0.0
	matched := make([]string, 0, len(reqs))
	misses := make([]miss, 0)

	for _, req := range reqs {
		w := importanceWeight(req.Importance)
		totalWeight += w

		quality, _ := skills.BestMatch(profileSkills, req.Skill)
		if quality > 0 {
			matchedWeight += w * quality
			matched = append(matched, skills.NormalizeSkillName(req.Skill))
		} else {
			misses = append(misses, miss{name: skills.NormalizeSkillName(req.Skill), weight: w})
		}
	}

	// Most important gaps first, catalog order within a tier
	sort.SliceStable(misses, func(i, j int) bool {
		return misses[i].weight > misses[j].weight
	})
	missing := make([]string, len(misses))
	for i, m := range misses {
		missing[i] = m.name
	}

	return skillMatch{
		score:   matchedWeight / totalWeight * 100,
		matched: matched,
		missing: missing,
	}
}

// interestMatch is the outcome of matching interests against career tags
type interestMatch struct {
	score   float64
	matched []string
	tags    []string
}

// computeInterestsScore uses the overlap coefficient between the profile's
// interests and the career's tags (its interest keywords plus its category):
// matched tags / min(|tags|, |interests|) × 100. No interests scores
// NeutralScore.
func computeInterestsScore(interests []string, career *types.Career) interestMatch {
	tags := careerTags(career)
	if len(interests) == 0 {
		return interestMatch{score: NeutralScore, matched: []string{}, tags: tags}
	}

	matched := make([]string, 0, len(tags))
	for _, tag := range tags {
		for _, interest := range interests {
			if termsOverlap(interest, tag) {
				matched = append(matched, tag)
				break
			}
		}
	}

	denom := min(len(tags), len(interests))
	score := float64(len(matched)) / float64(denom) * 100
	if score > 100 {
		score = 100
	}

	return interestMatch{score: score, matched: matched, tags: tags}
}

// careerTags returns the career's normalized, deduplicated interest tags
// followed by its category
func careerTags(career *types.Career) []string {
	raw := make([]string, 0, len(career.Interests)+1)
	raw = append(raw, career.Interests...)
	raw = append(raw, string(career.Category))
	return normalizeTerms(raw)
}

// normalizeTerms lower-cases, trims and deduplicates free-text terms.
// Hyphens are treated as spaces so "public-service" equals "public service".
func normalizeTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	seen := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		n := strings.Join(strings.Fields(strings.ReplaceAll(strings.ToLower(t), "-", " ")), " ")
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// termsOverlap reports whether two normalized terms are equal or one
// contains the other (for terms of at least three characters)
func termsOverlap(a, b string) bool {
	if a == b {
		return true
	}
	if len(a) >= 3 && strings.Contains(b, a) {
		return true
	}
	return len(b) >= 3 && strings.Contains(a, b)
}
