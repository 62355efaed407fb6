package document

import "strings"

// CodeBlock is one fenced code block in the document.
type CodeBlock struct {
	// Info is the fence info string ("go" in ```go), possibly empty.
	Info string

	// Body is the block content, lines joined with "\n", fences excluded.
	Body string

	// Line is the 1-based line number of the opening fence.
	Line int
}

// CodeBlocks returns all fenced code blocks in document order. A trailing
// unclosed fence yields no block, mirroring CodeBlockCount.
func (d *Document) CodeBlocks() []CodeBlock {
	var blocks []CodeBlock
	var open *CodeBlock
	var body []string

	for i, line := range d.lines {
		if !strings.HasPrefix(line, "```") {
			if open != nil {
				body = append(body, line)
			}
			continue
		}

		if open == nil {
			open = &CodeBlock{
				Info: strings.TrimSpace(strings.TrimPrefix(line, "```")),
				Line: i + 1,
			}
			body = body[:0]
			continue
		}

		open.Body = strings.Join(body, "\n")
		blocks = append(blocks, *open)
		open = nil
	}

	return blocks
}
