package match

import "strings"

// ContainsSkill reports whether skill is evidenced in text. A direct
// case-insensitive substring hit wins; otherwise every variant group whose
// key appears inside the skill name is expanded, and any variant found in the
// text counts. The lookup is deliberately loose in one direction only: the
// group key must be contained in the skill, while variants are searched in
// the text, so "node.js experience" matches a "node" mention but a bare "c"
// skill never matches every word containing the letter.
func (t *Tables) ContainsSkill(text, skill string) bool {
	if text == "" || skill == "" {
		return false
	}
	textLower := strings.ToLower(text)
	skillLower := strings.ToLower(skill)

	if strings.Contains(textLower, skillLower) {
		return true
	}

	for base, variants := range t.SkillVariants {
		if !strings.Contains(skillLower, base) {
			continue
		}
		for _, variant := range variants {
			if strings.Contains(textLower, variant) {
				return true
			}
		}
	}
	return false
}
