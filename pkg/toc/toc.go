// Package toc generates a GitHub-anchored table of contents from a Markdown
// document's headings. It backs the "toc" command, the natural remediation
// for a README missing a table of contents.
package toc

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Entry is one heading in the document outline.
type Entry struct {
	// Level is the heading depth (1-6).
	Level int

	// Text is the rendered heading text.
	Text string

	// Anchor is the GitHub-style anchor slug for the heading.
	Anchor string
}

// Outline parses the source and returns all headings in document order.
// Anchors are deduplicated the way GitHub does: repeated slugs get -1, -2
// suffixes.
func Outline(source []byte) ([]Entry, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(source))

	var entries []Entry
	seen := make(map[string]int)

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		headingText := nodeText(heading, source)
		anchor := slugify(headingText)
		if count, dup := seen[anchor]; dup {
			seen[anchor] = count + 1
			anchor = fmt.Sprintf("%s-%d", anchor, count)
		} else {
			seen[anchor] = 1
		}

		entries = append(entries, Entry{
			Level:  heading.Level,
			Text:   headingText,
			Anchor: anchor,
		})
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk document: %w", err)
	}

	return entries, nil
}

// Generate renders a Markdown table of contents for the source.
// The document title (a single leading H1) is excluded; everything else is
// nested under it.
func Generate(source []byte) (string, error) {
	entries, err := Outline(source)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", nil
	}

	// Drop a single leading H1 title so the TOC lists its contents.
	if entries[0].Level == 1 && countLevel(entries, 1) == 1 {
		entries = entries[1:]
	}
	if len(entries) == 0 {
		return "", nil
	}

	minLevel := entries[0].Level
	for _, e := range entries {
		if e.Level < minLevel {
			minLevel = e.Level
		}
	}

	var b strings.Builder
	for _, e := range entries {
		indent := strings.Repeat("  ", e.Level-minLevel)
		fmt.Fprintf(&b, "%s- [%s](#%s)\n", indent, e.Text, e.Anchor)
	}
	return b.String(), nil
}

func countLevel(entries []Entry, level int) int {
	count := 0
	for _, e := range entries {
		if e.Level == level {
			count++
		}
	}
	return count
}

// nodeText collects the raw text of a node's inline children.
func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	collectText(n, source, &b)
	return strings.TrimSpace(b.String())
}

func collectText(n ast.Node, source []byte, b *strings.Builder) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(source))
		case *ast.String:
			b.Write(node.Value)
		default:
			collectText(c, source, b)
		}
	}
}

// slugify converts heading text into a GitHub-style anchor: lowercase,
// spaces become hyphens, everything but letters, digits, hyphens, and
// underscores is dropped.
func slugify(headingText string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(headingText) {
		switch {
		case r == ' ':
			b.WriteByte('-')
		case r == '-' || r == '_':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r > 127:
			// Unicode letters survive slugification on GitHub.
			b.WriteRune(r)
		}
	}
	return b.String()
}
