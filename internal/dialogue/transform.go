package dialogue

import "strings"

// Transform removes commas, semicolons, colons, exclamation marks,
// double quotes, hyphens, em dashes and en dashes from a dialogue line,
// counting each removal by category. Periods, question marks and
// apostrophes are preserved.
//
// Transform is idempotent: none of the removed character classes can
// reappear in its output.
func Transform(line string) (string, Removals) {
	var removed Removals

	if !strings.ContainsAny(line, ",;:!\"-—–") {
		return line, removed
	}

	var b strings.Builder
	b.Grow(len(line))

	for _, r := range line {
		switch r {
		case ',':
			removed.Commas++
		case ';':
			removed.Semicolons++
		case ':':
			removed.Colons++
		case '!':
			removed.Exclamations++
		case '"':
			removed.Quotes++
		case '-', '—', '–':
			removed.Dashes++
		default:
			b.WriteRune(r)
		}
	}

	return b.String(), removed
}
