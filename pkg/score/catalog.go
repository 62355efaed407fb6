package score

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/yaklabco/readmecheck/pkg/document"
)

// Pattern tests shared by the catalog checks. All checks operate on raw
// document text; there is no semantic understanding of content.
var (
	badgeRe        = regexp.MustCompile(`!\[[^\]]*\]\([^)]*(?:shields\.io|badge)[^)]*\)`)
	imageRe        = regexp.MustCompile(`!\[[^\]]*\]\(([^)]+)\)`)
	externalLinkRe = regexp.MustCompile(`(?m)(?:^|[^!])\[[^\]]+\]\(https?://`)
	anchorLinkRe   = regexp.MustCompile(`\[[^\]]+\]\(#[^)]+\)`)
	listItemRe     = regexp.MustCompile(`(?m)^\s*(?:[-*+]|\d+\.)\s+\S`)
	tableRowRe     = regexp.MustCompile(`(?m)^\s*\|.+\|\s*$`)
	tableSepRe     = regexp.MustCompile(`(?m)^\s*\|?\s*:?-{3,}`)
	inlineCodeRe   = regexp.MustCompile("`[^`\n]+`")
	blockquoteRe   = regexp.MustCompile(`(?m)^>`)
	placeholderRe  = regexp.MustCompile(`(?i)(?:\b(?:todo|tbd|fixme)\b|lorem ipsum)`)
	badHeadingRe   = regexp.MustCompile(`(?m)^#{1,6}[^#\s]`)
	emptyLinkRe    = regexp.MustCompile(`\[[^\]]*\]\(\s*\)`)
	prLanguageRe   = regexp.MustCompile(`(?i)pull request|fork|\bissues?\b|\bPR\b|guideline`)
	licenseNameRe  = regexp.MustCompile(`(?i)\b(?:MIT|Apache|GPL|LGPL|AGPL|BSD|MPL|ISC|Unlicense|CC0|WTFPL)\b`)
)

// Heading keyword sets for the named primary sections.
var (
	installKeywords = []string{"install", "getting started", "setup"}
	usageKeywords   = []string{"usage", "how to use", "quick start"}
	exampleKeywords = []string{"example", "demo"}
)

// Primary is the catalog of named structural sections. Order and weights are
// part of the scoring contract.
var Primary = MustCatalog("primary", []Criterion{
	{
		Name:        "Title",
		Weight:      10,
		Check:       hasTitle,
		Remediation: "Add a project title as a top-level heading (# Project Name).",
	},
	{
		Name:        "Description",
		Weight:      10,
		Check:       hasDescription,
		Remediation: "Add a short description of what the project does near the top.",
	},
	{
		Name:        "Installation",
		Weight:      10,
		Check:       hasAnySection(installKeywords...),
		Remediation: "Add an Installation section explaining how to install the project.",
	},
	{
		Name:        "Usage",
		Weight:      10,
		Check:       hasAnySection(usageKeywords...),
		Remediation: "Add a Usage section showing how to use the project.",
	},
	{
		Name:        "Example",
		Weight:      5,
		Check:       hasAnySection(exampleKeywords...),
		Remediation: "Add an Example section demonstrating the project in action.",
	},
	{
		Name:        "Contributing",
		Weight:      5,
		Check:       hasAnySection("contribut"),
		Remediation: "Add a Contributing section describing how others can help.",
	},
	{
		Name:        "License",
		Weight:      10,
		Check:       hasAnySection("licen"),
		Remediation: "Add a License section stating the project's license.",
	},
	{
		Name:        "Badges",
		Weight:      5,
		Check:       func(doc *document.Document) bool { return badgeCount(doc) >= 1 },
		Remediation: "Add status badges (build, version, license) below the title.",
	},
})

// Extra is the catalog of finer-grained stylistic and content checks.
var Extra = MustCatalog("extra", []Criterion{
	{
		Name:        "Title Is Capitalized",
		Weight:      1,
		Check:       titleIsCapitalized,
		Remediation: "Capitalize the first letter of the project title.",
	},
	{
		Name:        "Description Length",
		Weight:      2,
		Check:       func(doc *document.Document) bool { return len(descriptionText(doc)) > 50 },
		Remediation: "Expand the description to at least a full sentence (50+ characters).",
	},
	{
		Name:        "Table of Contents",
		Weight:      2,
		Check:       hasTableOfContents,
		Remediation: "Add a table of contents to help readers navigate.",
	},
	{
		Name:        "Multiple Badges",
		Weight:      1,
		Check:       func(doc *document.Document) bool { return badgeCount(doc) >= 2 },
		Remediation: "Add more badges to convey project status at a glance.",
	},
	{
		Name:        "Images",
		Weight:      2,
		Check:       hasNonBadgeImage,
		Remediation: "Add a screenshot or diagram to show the project visually.",
	},
	{
		Name:        "External Links",
		Weight:      1,
		Check:       matches(externalLinkRe),
		Remediation: "Link to related resources such as documentation or a homepage.",
	},
	{
		Name:        "Lists",
		Weight:      1,
		Check:       matches(listItemRe),
		Remediation: "Use bullet or numbered lists to break up dense prose.",
	},
	{
		Name:        "Tables",
		Weight:      2,
		Check:       hasTable,
		Remediation: "Use a table for structured information such as options or flags.",
	},
	{
		Name:        "Inline Code",
		Weight:      1,
		Check:       matches(inlineCodeRe),
		Remediation: "Use inline code formatting for commands, flags, and identifiers.",
	},
	{
		Name:        "Blockquotes",
		Weight:      1,
		Check:       matches(blockquoteRe),
		Remediation: "Use blockquotes to call out notes or warnings.",
	},
	{
		Name:        "Consistent Heading Levels",
		Weight:      2,
		Check:       consistentHeadingLevels,
		Remediation: "Keep heading levels consistent; avoid skipping levels.",
	},
	{
		Name:        "No Placeholder Text",
		Weight:      2,
		Check:       absent(placeholderRe),
		Remediation: "Remove placeholder text such as TODO, TBD, or lorem ipsum.",
	},
	{
		Name:        "No Malformed Headings",
		Weight:      1,
		Check:       absent(badHeadingRe),
		Remediation: "Put a space between heading markers and heading text (# Title).",
	},
	{
		Name:        "No Empty Link Targets",
		Weight:      1,
		Check:       absent(emptyLinkRe),
		Remediation: "Fill in empty link targets; links with () point nowhere.",
	},
	{
		Name:        "Installation Section Has Code",
		Weight:      3,
		Check:       sectionHasCode(installKeywords...),
		Remediation: "Add a code block with install commands to the Installation section.",
	},
	{
		Name:        "Usage Section Has Code",
		Weight:      3,
		Check:       sectionHasCode(usageKeywords...),
		Remediation: "Add a code block with usage examples to the Usage section.",
	},
	{
		Name:        "Contributing Guidance",
		Weight:      2,
		Check:       sectionMatches(prLanguageRe, "contribut"),
		Remediation: "Explain how to contribute: forks, pull requests, issue reports.",
	},
	{
		Name:        "License Section Has License Name",
		Weight:      2,
		Check:       sectionMatches(licenseNameRe, "licen"),
		Remediation: "Name the license (MIT, Apache-2.0, GPL, ...) in the License section.",
	},
})

// matches builds a check that passes when the pattern occurs anywhere in the
// document text.
func matches(re *regexp.Regexp) func(*document.Document) bool {
	return func(doc *document.Document) bool {
		return re.MatchString(doc.Content())
	}
}

// absent builds a check that passes when the pattern does not occur.
func absent(re *regexp.Regexp) func(*document.Document) bool {
	return func(doc *document.Document) bool {
		return !re.MatchString(doc.Content())
	}
}

// hasAnySection builds a check that passes when any of the keywords matches
// a heading.
func hasAnySection(keywords ...string) func(*document.Document) bool {
	return func(doc *document.Document) bool {
		for _, kw := range keywords {
			if doc.HasSection(kw) {
				return true
			}
		}
		return false
	}
}

// sectionHasCode builds a check that passes when the first section matching
// one of the keywords contains a fenced code block.
func sectionHasCode(keywords ...string) func(*document.Document) bool {
	return func(doc *document.Document) bool {
		for _, kw := range keywords {
			if section, ok := doc.ExtractSection(kw); ok {
				return strings.Contains(section.Body, "```")
			}
		}
		return false
	}
}

// sectionMatches builds a check that passes when the named section exists
// and its body matches the pattern.
func sectionMatches(re *regexp.Regexp, name string) func(*document.Document) bool {
	return func(doc *document.Document) bool {
		return doc.SectionContains(name, re.MatchString)
	}
}

func hasTitle(doc *document.Document) bool {
	for _, h := range doc.Headings() {
		if h.Level == 1 && h.Text != "" {
			return true
		}
	}
	return false
}

func titleIsCapitalized(doc *document.Document) bool {
	for _, h := range doc.Headings() {
		if h.Level != 1 || h.Text == "" {
			continue
		}
		for _, r := range h.Text {
			if unicode.IsLetter(r) {
				return unicode.IsUpper(r)
			}
		}
		// A title without letters (version numbers, emoji) is not penalized.
		return true
	}
	return false
}

// descriptionText returns the prose that introduces the project: the body of
// a Description/About section when present, otherwise the first plain
// paragraph before the second heading.
func descriptionText(doc *document.Document) string {
	for _, name := range []string{"description", "about"} {
		if section, ok := doc.ExtractSection(name); ok {
			return strings.TrimSpace(section.Body)
		}
	}

	headings := doc.Headings()
	limit := len(doc.Lines())
	if len(headings) > 1 {
		limit = headings[1].Line - 1
	}

	var para []string
	for _, line := range doc.Lines()[:limit] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(para) > 0 {
				break
			}
			continue
		}
		if isMarkupLine(trimmed) {
			continue
		}
		para = append(para, trimmed)
	}
	return strings.Join(para, " ")
}

// isMarkupLine reports whether a line is structure rather than prose:
// headings, badges/images, fences, blockquotes, list items.
func isMarkupLine(line string) bool {
	switch line[0] {
	case '#', '!', '>', '`', '|':
		return true
	case '-', '*', '+':
		return len(line) > 1 && line[1] == ' '
	case '[':
		// Badge reference style: [![...
		return strings.HasPrefix(line, "[!")
	default:
		return false
	}
}

func hasDescription(doc *document.Document) bool {
	return len(descriptionText(doc)) >= 20
}

func badgeCount(doc *document.Document) int {
	return len(badgeRe.FindAllString(doc.Content(), -1))
}

func hasNonBadgeImage(doc *document.Document) bool {
	for _, m := range imageRe.FindAllStringSubmatch(doc.Content(), -1) {
		target := m[1]
		if !strings.Contains(target, "shields.io") && !strings.Contains(target, "badge") {
			return true
		}
	}
	return false
}

func hasTableOfContents(doc *document.Document) bool {
	for _, h := range doc.Headings() {
		text := strings.ToLower(h.Text)
		if strings.Contains(text, "table of contents") || text == "toc" || text == "contents" {
			return true
		}
	}
	return len(anchorLinkRe.FindAllString(doc.Content(), -1)) >= 3
}

func hasTable(doc *document.Document) bool {
	content := doc.Content()
	return tableRowRe.MatchString(content) && tableSepRe.MatchString(content)
}

// consistentHeadingLevels tolerates headings at the first heading's level or
// exactly one level deeper, regardless of deeper nesting later on. The rule
// is preserved as-is; see the open question note in DESIGN.md.
func consistentHeadingLevels(doc *document.Document) bool {
	headings := doc.Headings()
	if len(headings) == 0 {
		return false
	}
	base := headings[0].Level
	for _, h := range headings {
		if h.Level != base && h.Level != base+1 {
			return false
		}
	}
	return true
}
