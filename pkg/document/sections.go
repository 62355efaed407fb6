package document

import "strings"

// Section is the sub-text belonging to one named heading: everything from
// the line after the heading up to the next heading of equal-or-higher rank,
// or the end of the document.
type Section struct {
	// Heading is the heading that opens the section.
	Heading Heading

	// Body is the section text, lines joined with "\n", heading excluded.
	Body string
}

// ExtractSection returns the section whose heading text contains name
// (case-insensitive), or false if no such heading exists. When several
// headings match, the first wins.
func (d *Document) ExtractSection(name string) (Section, bool) {
	needle := strings.ToLower(name)

	for idx, h := range d.headings {
		if !strings.Contains(strings.ToLower(h.Text), needle) {
			continue
		}

		// Section ends at the next heading of equal or higher rank.
		end := len(d.lines)
		for _, next := range d.headings[idx+1:] {
			if next.Level <= h.Level {
				end = next.Line - 1
				break
			}
		}

		body := strings.Join(d.lines[h.Line:end], "\n")
		return Section{Heading: h, Body: body}, true
	}

	return Section{}, false
}

// HasSection reports whether a heading containing name exists.
func (d *Document) HasSection(name string) bool {
	_, ok := d.ExtractSection(name)
	return ok
}

// SectionContains reports whether the named section exists and its body
// matches the given predicate.
func (d *Document) SectionContains(name string, pred func(body string) bool) bool {
	section, ok := d.ExtractSection(name)
	if !ok {
		return false
	}
	return pred(section.Body)
}
