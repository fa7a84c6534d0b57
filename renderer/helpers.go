package renderer

import (
	"bytes"
	"io"
	"strings"

	md "github.com/nao1215/markdown"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// section is a ConditionalBlock made of a markdown document: build fills
// the document and tells whether it is worth printing.
func section(w io.Writer, build func(doc *md.Markdown) bool) {
	ConditionalBlock(w, func(w io.Writer) bool {
		doc := md.NewMarkdown(w)
		keep := build(doc)
		if err := doc.Build(); err != nil {
			return false
		}
		io.WriteString(w, "\n\n")
		return keep
	})
}

// para writes a paragraph followed by a blank line.
func para(doc *md.Markdown, format string, args ...any) {
	doc.PlainTextf(format, args...).PlainText("")
}

// left, then right aligned columns.
func align(left, right int) []md.TableAlignment {
	res := make([]md.TableAlignment, 0, left+right)
	for range left {
		res = append(res, md.AlignLeft)
	}
	for range right {
		res = append(res, md.AlignRight)
	}
	return res
}

// cell escapes the pipe so free text never breaks a table row.
func cell(s string) string { return strings.ReplaceAll(s, "|", `\|`) }
