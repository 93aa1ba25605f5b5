package skills

import (
	"strings"
)

// Match qualities, in decreasing order of confidence
const (
	QualityExact        = 1.0
	QualityTextual      = 0.8
	QualityTransferable = 0.5
	QualityNone         = 0.0

	// minContainLen guards against "Go" matching "Google"
	minContainLen = 3
)

// transferable lists skills that carry over to one another. Lookups are
// symmetric; see related().
var transferable = map[string][]string{
	"excel":              {"google sheets", "spreadsheets", "data analysis"},
	"python":             {"r", "data analysis", "scripting"},
	"r":                  {"statistics", "data analysis"},
	"statistics":         {"data analysis", "mathematics"},
	"sql":                {"database", "data analysis"},
	"java":               {"c#", "kotlin"},
	"javascript":         {"typescript"},
	"communication":      {"public speaking", "writing", "presentation"},
	"leadership":         {"management", "team leadership", "mentoring"},
	"project management": {"agile", "scrum", "planning"},
	"photoshop":          {"illustrator", "graphic design"},
	"figma":              {"sketch", "ui design", "ux design"},
	"ui design":          {"ux design", "graphic design"},
	"customer service":   {"sales", "communication"},
	"teaching":           {"training", "mentoring", "public speaking"},
	"accounting":         {"bookkeeping", "financial analysis"},
	"financial analysis": {"financial modeling", "excel"},
	"autocad":            {"technical drawing", "solidworks"},
	"nursing":            {"patient care", "first aid"},
}

var transferableIndex = buildTransferableIndex()

func buildTransferableIndex() map[string]map[string]struct{} {
	idx := make(map[string]map[string]struct{})
	add := func(a, b string) {
		if idx[a] == nil {
			idx[a] = make(map[string]struct{})
		}
		idx[a][b] = struct{}{}
	}
	for from, tos := range transferable {
		for _, to := range tos {
			add(from, to)
			add(to, from)
		}
	}
	return idx
}

func related(a, b string) bool {
	if set, ok := transferableIndex[a]; ok {
		_, hit := set[b]
		return hit
	}
	return false
}

// MatchQuality scores how well a profile skill satisfies a required skill.
// Exact and synonym matches score 1.0, textual containment 0.8, a known
// transferable relationship 0.5, anything else 0.
func MatchQuality(profileSkill, requiredSkill string) float64 {
	p := Key(profileSkill)
	r := Key(requiredSkill)
	if p == "" || r == "" {
		return QualityNone
	}

	if p == r || stem(p) == stem(r) {
		return QualityExact
	}

	if (len(r) >= minContainLen && strings.Contains(p, r)) ||
		(len(p) >= minContainLen && strings.Contains(r, p)) {
		return QualityTextual
	}

	if related(stem(p), stem(r)) || related(p, r) {
		return QualityTransferable
	}

	return QualityNone
}

// BestMatch returns the highest-quality profile skill for a requirement.
// Ties keep the earliest profile skill.
func BestMatch(profileSkills []string, requiredSkill string) (quality float64, matchedBy string) {
	for _, s := range profileSkills {
		q := MatchQuality(s, requiredSkill)
		if q > quality {
			quality = q
			matchedBy = s
			if q == QualityExact {
				return quality, matchedBy
			}
		}
	}
	return quality, matchedBy
}
