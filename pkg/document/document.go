// Package document provides the immutable document value object analyzed by
// the scoring engine. A Document is plain README text plus derived views
// (lines, headings, fenced code blocks) computed once at construction.
package document

import "strings"

// Heading is a single ATX heading found in the document.
type Heading struct {
	// Level is the heading depth (1 for "#", 2 for "##", ...).
	Level int

	// Text is the heading text with the marker and surrounding space removed.
	Text string

	// Line is the 1-based line number of the heading.
	Line int
}

// Document holds README content and its derived line sequence.
// Immutable once constructed; all accessors are read-only.
type Document struct {
	content  string
	lines    []string
	headings []Heading
	fences   int
}

// New constructs a Document from raw text.
// The content is split on "\n"; CRLF line endings are tolerated by trimming
// the trailing "\r" from each derived line.
func New(content string) *Document {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	doc := &Document{
		content: content,
		lines:   lines,
	}
	doc.headings = scanHeadings(lines)
	doc.fences = countFenceMarkers(lines)
	return doc
}

// Content returns the full raw text of the document.
func (d *Document) Content() string {
	return d.content
}

// Lines returns the derived line sequence.
// Callers must not modify the returned slice.
func (d *Document) Lines() []string {
	return d.lines
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Headings returns all ATX headings in document order.
func (d *Document) Headings() []Heading {
	return d.headings
}

// HeadingCount returns the number of ATX heading lines.
func (d *Document) HeadingCount() int {
	return len(d.headings)
}

// FirstHeading returns the first heading in the document, if any.
func (d *Document) FirstHeading() (Heading, bool) {
	if len(d.headings) == 0 {
		return Heading{}, false
	}
	return d.headings[0], true
}

// CodeBlockCount returns the number of fenced code blocks, counting pairs of
// triple-backtick fence markers. A trailing unclosed fence is ignored.
func (d *Document) CodeBlockCount() int {
	return d.fences / 2
}

// scanHeadings collects ATX headings: lines beginning with 1-6 "#" followed
// by whitespace.
func scanHeadings(lines []string) []Heading {
	var headings []Heading
	for i, line := range lines {
		level := headingLevel(line)
		if level == 0 {
			continue
		}
		text := strings.TrimSpace(line[level:])
		headings = append(headings, Heading{
			Level: level,
			Text:  text,
			Line:  i + 1,
		})
	}
	return headings
}

// headingLevel returns the ATX heading level of a line, or 0 if the line is
// not a heading. The marker must be followed by whitespace.
func headingLevel(line string) int {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level >= len(line) {
		return 0
	}
	if line[level] != ' ' && line[level] != '\t' {
		return 0
	}
	return level
}

// countFenceMarkers counts lines that open or close a fenced code block.
// Fence info strings ("```go") count as markers; indented fences do not.
func countFenceMarkers(lines []string) int {
	count := 0
	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			count++
		}
	}
	return count
}
