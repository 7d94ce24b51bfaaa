package match

import (
	"sort"
	"strings"
)

// NormalizeTerm maps a single term to its canonical form using the given
// alias map. Unknown terms pass through lowercased and trimmed.
func NormalizeTerm(term string, aliases map[string]string) string {
	key := strings.ToLower(strings.TrimSpace(term))
	if canonical, ok := aliases[key]; ok {
		return canonical
	}
	return key
}

// NormalizeList canonicalizes every term in items, drops empties, and
// deduplicates, keeping the first occurrence order of the canonical forms.
func NormalizeList(items []string, aliases map[string]string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		canonical := NormalizeTerm(item, aliases)
		if canonical == "" {
			continue
		}
		if _, ok := seen[canonical]; ok {
			continue
		}
		seen[canonical] = struct{}{}
		out = append(out, canonical)
	}
	return out
}

// skillSkipPhrases marks list entries that are requirements prose rather than
// technical keywords.
var skillSkipPhrases = []string{
	"degree", "experience", "ability", "knowledge", "understanding",
	"familiarity", "proficiency", "expertise", "skills", "background",
	"bachelor", "master", "phd", "internship", "collaborative", "projects",
}

// CleanSkillsList filters a skills list down to technical keywords. Entries
// longer than three words or containing requirements phrasing are dropped;
// extraction models tend to leak full sentences into skills lists.
func CleanSkillsList(skills []string) []string {
	if len(skills) == 0 {
		return []string{}
	}

	cleaned := make([]string, 0, len(skills))
	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		if len(strings.Fields(skill)) > 3 {
			continue
		}
		lower := strings.ToLower(skill)
		skip := false
		for _, phrase := range skillSkipPhrases {
			if strings.Contains(lower, phrase) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		cleaned = append(cleaned, skill)
	}
	return cleaned
}

// NormalizeEducation canonicalizes degree entries. An entry containing a known
// degree alias anywhere in its text is replaced by the canonical degree name;
// entries with no recognizable alias pass through trimmed. Duplicates are
// dropped either way. Aliases are tried longest first so "mba" wins over "ma".
func NormalizeEducation(entries []string, aliases map[string]string) []string {
	keys := sortedAliasKeys(aliases)
	out := make([]string, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)
		value := trimmed
		for _, alias := range keys {
			if strings.Contains(lower, alias) {
				value = aliases[alias]
				break
			}
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}

func sortedAliasKeys(aliases map[string]string) []string {
	keys := make([]string, 0, len(aliases))
	for k := range aliases {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}
