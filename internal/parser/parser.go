package parser

import (
	"iter"
	"slices"

	"sfzkit/internal/diag"
	"sfzkit/internal/doc"
	"sfzkit/internal/lexer"
	"sfzkit/internal/opcode"
	"sfzkit/internal/source"
	"sfzkit/internal/token"
)

type Options struct {
	// Reporter receives every diagnostic as it is produced, in addition to
	// the slice Build returns.
	Reporter diag.Reporter
}

// Parser: состояние построителя документа на один поток токенов
type Parser struct {
	b   *doc.Builder
	cat *opcode.Catalog
	rep diag.Reporter

	// открытые области; NoScope означает «закрыта»
	global doc.ScopeID
	master doc.ScopeID
	group  doc.ScopeID
	region doc.ScopeID
	side   doc.ScopeID
}

// Build consumes tokens and produces the document tree. Recoverable problems
// are returned as diagnostics next to a usable document. A fatal error from
// the token stream (or an Invalid token) aborts the build: the document is
// nil and err describes the failure.
func Build(tokens iter.Seq2[token.Token, error], cat *opcode.Catalog, opts Options) (*doc.Document, []diag.Diagnostic, error) {
	if cat == nil {
		cat = opcode.Default()
	}
	collected := &diag.SliceReporter{}
	p := &Parser{
		b:      doc.NewBuilder(cat),
		cat:    cat,
		rep:    diag.Tee(collected, opts.Reporter),
		global: doc.NoScope,
		master: doc.NoScope,
		group:  doc.NoScope,
		region: doc.NoScope,
		side:   doc.NoScope,
	}

	for tok, err := range tokens {
		if err != nil {
			return nil, collected.Items, err
		}
		if tok.IsEOF() {
			break
		}
		if err := p.step(tok); err != nil {
			return nil, collected.Items, err
		}
	}
	return p.b.Document(), collected.Items, nil
}

// BuildTokens is Build over an already materialised token slice.
func BuildTokens(toks []token.Token, cat *opcode.Catalog, opts Options) (*doc.Document, []diag.Diagnostic, error) {
	return Build(func(yield func(token.Token, error) bool) {
		for _, tok := range toks {
			if !yield(tok, nil) {
				return
			}
		}
	}, cat, opts)
}

// ParseFile tokenizes file and builds its document. Lexer diagnostics go to
// opts.Reporter and are included in the returned slice.
func ParseFile(file *source.File, cat *opcode.Catalog, opts Options) (*doc.Document, []diag.Diagnostic, error) {
	lexDiags := &diag.SliceReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: diag.Tee(lexDiags, opts.Reporter)})
	d, diags, err := Build(lx.All(), cat, opts)
	return d, slices.Concat(lexDiags.Items, diags), err
}

func (p *Parser) step(tok token.Token) error {
	switch tok.Kind {
	case token.Header:
		p.header(tok)
	case token.Assign:
		p.assign(tok)
	case token.Define:
		p.b.AddDefine(doc.Define{Name: tok.Name, Value: tok.Value, Span: tok.Span})
	case token.Include:
		p.b.AddInclude(doc.IncludeRef{Path: tok.Value, Span: tok.Span})
		diag.ReportWarning(p.rep, diag.SynUnresolvedInclude, tok.Span,
			"#include \""+tok.Value+"\" was not flattened before parsing").Emit()
	default:
		return p.fail(diag.SynInvalidToken, tok.Span, "unexpected token "+quote(tok.Text))
	}
	return nil
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	p.rep.Report(diag.New(sev, code, sp, msg))
}

func quote(s string) string {
	if s == "" {
		return "''"
	}
	return "'" + s + "'"
}
