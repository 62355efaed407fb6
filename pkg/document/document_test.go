package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineCount(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "empty document", content: "", want: 1},
		{name: "single line no newline", content: "hello", want: 1},
		{name: "single line with newline", content: "hello\n", want: 2},
		{name: "three lines", content: "a\nb\nc", want: 3},
		{name: "crlf endings", content: "a\r\nb\r\nc", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := New(tt.content)
			assert.Equal(t, tt.want, doc.LineCount())
		})
	}
}

func TestLinesStripCarriageReturn(t *testing.T) {
	doc := New("first\r\nsecond\r\n")
	assert.Equal(t, "first", doc.Lines()[0])
	assert.Equal(t, "second", doc.Lines()[1])
}

func TestHeadings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Heading
	}{
		{
			name:    "no headings",
			content: "just text\nmore text",
			want:    nil,
		},
		{
			name:    "single h1",
			content: "# Title",
			want:    []Heading{{Level: 1, Text: "Title", Line: 1}},
		},
		{
			name:    "nested levels",
			content: "# A\ntext\n## B\n### C",
			want: []Heading{
				{Level: 1, Text: "A", Line: 1},
				{Level: 2, Text: "B", Line: 3},
				{Level: 3, Text: "C", Line: 4},
			},
		},
		{
			name:    "hash without space is not a heading",
			content: "#NoSpace\n#1 issue ref",
			want:    nil,
		},
		{
			name:    "seven hashes is not a heading",
			content: "####### Too deep",
			want:    nil,
		},
		{
			name:    "tab after marker",
			content: "#\tTabbed",
			want:    []Heading{{Level: 1, Text: "Tabbed", Line: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := New(tt.content)
			assert.Equal(t, tt.want, doc.Headings())
		})
	}
}

func TestCodeBlockCount(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "no fences", content: "text", want: 0},
		{name: "one block", content: "```\ncode\n```", want: 1},
		{name: "one block with info string", content: "```go\ncode\n```", want: 1},
		{name: "two blocks", content: "```\na\n```\ntext\n```\nb\n```", want: 2},
		{name: "unclosed trailing fence ignored", content: "```\na\n```\n```", want: 1},
		{name: "lone fence", content: "```", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := New(tt.content)
			assert.Equal(t, tt.want, doc.CodeBlockCount())
		})
	}
}

func TestCodeBlocks(t *testing.T) {
	doc := New("intro\n```go\nfunc main() {}\n```\n```\necho hi\n```\n```")

	blocks := doc.CodeBlocks()
	require.Len(t, blocks, 2)

	assert.Equal(t, "go", blocks[0].Info)
	assert.Equal(t, "func main() {}", blocks[0].Body)
	assert.Equal(t, 2, blocks[0].Line)

	assert.Equal(t, "", blocks[1].Info)
	assert.Equal(t, "echo hi", blocks[1].Body)
	assert.Equal(t, 5, blocks[1].Line)
}

func TestFirstHeading(t *testing.T) {
	_, ok := New("no headings here").FirstHeading()
	assert.False(t, ok)

	h, ok := New("text\n## Start").FirstHeading()
	require.True(t, ok)
	assert.Equal(t, Heading{Level: 2, Text: "Start", Line: 2}, h)
}

func TestDocumentIsImmutable(t *testing.T) {
	content := "# A\n" + strings.Repeat("text\n", 5)
	doc := New(content)

	assert.Equal(t, content, doc.Content())
	assert.Equal(t, doc.Headings(), New(content).Headings())
}
