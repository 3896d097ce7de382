package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sfzkit/internal/source"
	"sfzkit/internal/token"
)

type TokenOutput struct {
	Kind    string      `json:"kind"`
	Header  string      `json:"header,omitempty"`
	Name    string      `json:"name,omitempty"`
	Value   *string     `json:"value,omitempty"`
	Quoted  bool        `json:"quoted,omitempty"`
	Text    string      `json:"text,omitempty"`
	Span    source.Span `json:"span"`
	Leading []string    `json:"leading,omitempty"`
}

func leadingKinds(tok token.Token) []string {
	var leading []string
	for _, tv := range tok.Leading {
		leading = append(leading, tv.Kind.String())
	}
	return leading
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)
		var b strings.Builder
		fmt.Fprintf(&b, "%3d: %-8s", i+1, tok.Kind)
		switch tok.Kind {
		case token.Header:
			fmt.Fprintf(&b, " <%s>", tok.HeaderKind)
		case token.Assign:
			fmt.Fprintf(&b, " %s = %q", tok.Name, tok.Value)
		case token.Define:
			fmt.Fprintf(&b, " $%s = %q", tok.Name, tok.Value)
		case token.Include:
			fmt.Fprintf(&b, " %q", tok.Value)
		default:
			if tok.Text != "" {
				fmt.Fprintf(&b, " %q", tok.Text)
			}
		}
		fmt.Fprintf(&b, " at %d:%d-%d:%d", startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		if leading := leadingKinds(tok); len(leading) > 0 {
			fmt.Fprintf(&b, " (leading: %s)", strings.Join(leading, ", "))
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// BuildTokensOutput converts tokens to their JSON shape.
func BuildTokensOutput(tokens []token.Token) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind:    tok.Kind.String(),
			Name:    tok.Name,
			Quoted:  tok.Quoted,
			Text:    tok.Text,
			Span:    tok.Span,
			Leading: leadingKinds(tok),
		}
		switch tok.Kind {
		case token.Header:
			out.Header = tok.HeaderKind.String()
		case token.Assign, token.Define, token.Include:
			v := tok.Value
			out.Value = &v
		}
		output = append(output, out)
		if tok.Kind == token.EOF {
			break
		}
	}
	return output
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTokensOutput(tokens))
}
