// Package skills provides skill name canonicalization and fuzzy skill matching.
package skills

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"golang":            "Go",
	"go lang":           "Go",
	"javascript":        "JavaScript",
	"js":                "JavaScript",
	"typescript":        "TypeScript",
	"ts":                "TypeScript",
	"k8s":               "Kubernetes",
	"kubernetes":        "Kubernetes",
	"react.js":          "React",
	"reactjs":           "React",
	"node.js":           "Node.js",
	"nodejs":            "Node.js",
	"py":                "Python",
	"postgres":          "PostgreSQL",
	"postgresql":        "PostgreSQL",
	"ms excel":          "Excel",
	"microsoft excel":   "Excel",
	"ml":                "Machine Learning",
	"ai":                "Artificial Intelligence",
	"data analytics":    "Data Analysis",
	"ux":                "UX Design",
	"ui":                "UI Design",
	"adobe photoshop":   "Photoshop",
	"adobe illustrator": "Illustrator",
	"cad":               "AutoCAD",
	"pm":                "Project Management",
	"public relations":  "PR",
}

// NormalizeSkillName normalizes a skill name to its canonical display form
func NormalizeSkillName(skillName string) string {
	normalized := collapseSpaces(strings.TrimSpace(skillName))
	if normalized == "" {
		return ""
	}

	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}

	// Mixed case is taken as deliberate (e.g. "PowerPoint")
	if normalized != strings.ToUpper(normalized) && normalized != strings.ToLower(normalized) {
		return normalized
	}

	// Short all-caps words are acronyms (SQL, AWS)
	if normalized == strings.ToUpper(normalized) && len(normalized) <= 4 {
		return normalized
	}

	if !strings.Contains(lower, " ") {
		first, size := utf8.DecodeRuneInString(lower)
		return string(unicode.ToUpper(first)) + lower[size:]
	}

	return normalized
}

// Key returns the case-insensitive comparison key for a skill
func Key(skillName string) string {
	return strings.ToLower(NormalizeSkillName(skillName))
}

// stem strips a simple plural suffix so "databases" and "database" compare equal
func stem(key string) string {
	if len(key) > 4 && strings.HasSuffix(key, "s") && !strings.HasSuffix(key, "ss") {
		return key[:len(key)-1]
	}
	return key
}

// Dedupe removes skills that share a comparison key, keeping the first
// occurrence's canonical form and the original order.
func Dedupe(skillNames []string) []string {
	out := make([]string, 0, len(skillNames))
	seen := make(map[string]struct{}, len(skillNames))
	for _, s := range skillNames {
		canonical := NormalizeSkillName(s)
		if canonical == "" {
			continue
		}
		k := stem(strings.ToLower(canonical))
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, canonical)
	}
	return out
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
