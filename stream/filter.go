package stream

import "strings"

// Matches reports whether record is visible under sel.
//
// Values are tested by case-sensitive containment on the entry's rendered text, not on the
// parsed fields: quality against the name, language against the description and origin
// against the marker line. A record without a marker line never matches a specific origin.
func Matches(record Record, sel Selection) bool {
	return matchesQuality(record, sel.Quality) &&
		matchesLanguage(record, sel.Language) &&
		matchesOrigin(record, sel.Origin)
}

func matchesQuality(record Record, value string) bool {
	return IsAll(value) || strings.Contains(record.Entry.Name, value)
}

func matchesLanguage(record Record, value string) bool {
	return isExactAll(value) || strings.Contains(record.Entry.Description, value)
}

func matchesOrigin(record Record, value string) bool {
	if isExactAll(value) {
		return true
	}

	line, ok := MarkerLine(record.Entry.Description).Get()
	return ok && strings.Contains(line, value)
}

// Visibility is the outcome of applying a selection to a list of records.
type Visibility struct {
	// Visible is parallel to the evaluated records.
	Visible []bool
	Total   int
	Hidden  int
}

// Shown returns the records marked visible.
func (v Visibility) Shown(records []Record) []Record {
	var shown []Record
	for i, r := range records {
		if i < len(v.Visible) && v.Visible[i] {
			shown = append(shown, r)
		}
	}
	return shown
}

// Apply evaluates sel against every record.
func Apply(records []Record, sel Selection) Visibility {
	v := Visibility{
		Visible: make([]bool, len(records)),
		Total:   len(records),
	}

	for i, r := range records {
		v.Visible[i] = Matches(r, sel)
		if !v.Visible[i] {
			v.Hidden++
		}
	}
	return v
}
