package dialogue

// Removals counts punctuation removed from a single line, by category.
// Hyphens, em dashes and en dashes share the dash category.
type Removals struct {
	Commas       int
	Semicolons   int
	Colons       int
	Exclamations int
	Quotes       int
	Dashes       int
}

// Total returns the number of characters removed across all categories.
func (r Removals) Total() int {
	return r.Commas + r.Semicolons + r.Colons + r.Exclamations + r.Quotes + r.Dashes
}

// Add accumulates another line's removals into this one.
func (r *Removals) Add(other Removals) {
	r.Commas += other.Commas
	r.Semicolons += other.Semicolons
	r.Colons += other.Colons
	r.Exclamations += other.Exclamations
	r.Quotes += other.Quotes
	r.Dashes += other.Dashes
}

// Stats accumulates counters over one file traversal. It is owned by
// the caller, handed to a Machine for a single file, and never shared
// across files.
//
// TotalLines == DialogueLinesProcessed + NonDialogueLinesSkipped holds
// after every completed traversal.
type Stats struct {
	Removed Removals

	TotalLines              int
	DialogueLinesProcessed  int
	ModifiedLines           int
	UnchangedLines          int
	NonDialogueLinesSkipped int
}
