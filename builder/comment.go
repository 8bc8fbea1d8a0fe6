package builder

import (
	"strings"

	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/parsetree"
)

// vadocMarker is the prefix a comment must carry to be treated as a Vadoc
// documentation block rather than an ordinary remark, `%%` doubling the
// line-comment character the way `///` doubles `//` in other languages.
const vadocMarker = "%%"

// Comment tracks the active Vadoc block: a comment starting with the
// marker opens (or extends, if already open) the block; any other comment
// invalidates it, since a Vadoc block must immediately precede the
// construct it documents.
func (b *Builder) Comment(text string, start parsetree.Token) {
	trimmed := strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(trimmed, vadocMarker):
		body := strings.TrimSpace(strings.TrimPrefix(trimmed, vadocMarker))
		if b.activeBlockComment == "" {
			b.activeBlockComment = body
		} else {
			b.activeBlockComment = b.activeBlockComment + "\n" + body
		}
	default:
		b.activeBlockComment = ""
	}
}

// ParseError records a parser-level diagnostic verbatim, per the policy
// that parse errors propagate unchanged into the final diagnostic list
// without blocking analysis of the rest of the document.
func (b *Builder) ParseError(message string, at parsetree.Token) {
	b.diagnostics = append(b.diagnostics, diagnostic.NewRaw("ERR_PARSE_UNEXPECTED_TOKEN", message, diagnostic.Range{
		StartLine: at.Line, StartCol: at.Column, EndLine: at.Line, EndCol: at.EndColumn(),
	}))
}
