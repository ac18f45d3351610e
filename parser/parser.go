// Package parser implements a recursive-descent, one-token-lookahead
// parser that turns a lumen token stream into the expression tree defined
// by package ast. It follows the grammar from the language spec:
//
//	program := expr*
//	expr     := atom | list | vector | map | quoted
//	list     := '(' expr* ')'
//	vector   := '[' expr* ']'
//	map      := '{' (expr expr)* '}'
//	quoted   := ("'" | '`' | '~' | '~@') expr
//	atom     := number | string | keyword | true | false | nil | symbol
//
// A single malformed form does not prevent the rest of the program from
// parsing: errors are collected into a list, not raised as the first and
// only failure, and recovery advances one token at a time from the
// offending position. Surface special forms (def, fn, let, ...) are NOT
// recognised here — every list is just a List of expressions; the
// evaluator decides what a given list head means.
package parser

import (
	"strconv"
	"strings"

	"github.com/nfiedler-labs/lumen/ast"
	"github.com/nfiedler-labs/lumen/lerr"
	"github.com/nfiedler-labs/lumen/lexer"
)

// Parser holds the token stream and lookahead needed for recursive
// descent parsing.
type Parser struct {
	tokens  chan lexer.Token
	cur     lexer.Token
	errs    []*lerr.Error
}

// New creates a parser over the given source text.
func New(source string) *Parser {
	p := &Parser{tokens: lexer.Lex("parser", source)}
	p.advance()
	return p
}

func (p *Parser) advance() {
	tok, ok := <-p.tokens
	if !ok {
		// The lexer closes the channel after its EOF or Error token; from
		// then on the parser sees end of input.
		tok = lexer.Token{Kind: lexer.EOF, Pos: p.cur.Pos}
	}
	p.cur = tok
}

func toPos(p lexer.Pos) ast.Pos {
	return ast.Pos{Line: p.Line, Col: p.Col}
}

func (p *Parser) fail(kind lerr.Kind, pos lexer.Pos, format string, args ...interface{}) {
	p.errs = append(p.errs, lerr.NewAt(kind, lerr.Pos{Line: pos.Line, Col: pos.Col}, format, args...))
}

// ParseProgram consumes the entire token stream, returning every
// expression it could parse and every error it encountered. Parsing does
// not stop at the first error: a bad form is skipped and parsing resumes
// with the next one, so one broken form never blanks out the rest of the
// program.
func ParseProgram(source string) ([]ast.Expr, []*lerr.Error) {
	p := New(source)
	var exprs []ast.Expr
	for p.cur.Kind != lexer.EOF {
		if p.cur.Kind == lexer.Error {
			p.fail(lerr.LexError, p.cur.Pos, "%s", p.cur.Val)
			p.advance()
			continue
		}
		before := len(p.errs)
		e := p.parseExpr()
		if len(p.errs) > before {
			// parseExpr already recorded the error(s); make sure we
			// make forward progress even if it returned without
			// consuming anything.
			continue
		}
		exprs = append(exprs, e)
	}
	return exprs, p.errs
}

// parseExpr parses a single expression starting at the current token. On
// error it records the error and returns nil; callers must check
// len(p.errs) to see whether the result is usable.
func (p *Parser) parseExpr() ast.Expr {
	switch p.cur.Kind {
	case lexer.Error:
		p.fail(lerr.LexError, p.cur.Pos, "%s", p.cur.Val)
		p.advance()
		return nil
	case lexer.EOF:
		p.fail(lerr.ParseError, p.cur.Pos, "unexpected end of input")
		return nil
	case lexer.OpenParen:
		return p.parseSeq(lexer.CloseParen, "list", func(items []ast.Expr, pos ast.Pos) ast.Expr {
			return &ast.List{Items: items, Pos: pos}
		})
	case lexer.OpenBracket:
		return p.parseSeq(lexer.CloseBracket, "vector", func(items []ast.Expr, pos ast.Pos) ast.Expr {
			return &ast.Vector{Items: items, Pos: pos}
		})
	case lexer.OpenBrace:
		return p.parseMap()
	case lexer.CloseParen, lexer.CloseBracket, lexer.CloseBrace:
		p.fail(lerr.ParseError, p.cur.Pos, "unexpected closing delimiter %q", p.cur.Val)
		p.advance()
		return nil
	case lexer.Quote, lexer.Quasiquote, lexer.Unquote, lexer.Splice:
		return p.parseQuoted()
	case lexer.Number:
		return p.parseNumber()
	case lexer.String:
		return p.parseString()
	case lexer.Keyword:
		lit := &ast.Literal{Kind: ast.LitKeyword, Str: p.cur.Val, Pos: toPos(p.cur.Pos)}
		p.advance()
		return lit
	case lexer.Bool:
		lit := &ast.Literal{Kind: ast.LitBool, Bool: p.cur.Val == "true", Pos: toPos(p.cur.Pos)}
		p.advance()
		return lit
	case lexer.Nil:
		lit := &ast.Literal{Kind: ast.LitNil, Pos: toPos(p.cur.Pos)}
		p.advance()
		return lit
	case lexer.Identifier:
		sym := &ast.Symbol{Name: p.cur.Val, Pos: toPos(p.cur.Pos)}
		p.advance()
		return sym
	default:
		p.fail(lerr.ParseError, p.cur.Pos, "unexpected token %q", p.cur.Val)
		p.advance()
		return nil
	}
}

func (p *Parser) parseSeq(closeKind lexer.Kind, what string, build func([]ast.Expr, ast.Pos) ast.Expr) ast.Expr {
	pos := toPos(p.cur.Pos)
	p.advance() // consume opening delimiter
	var items []ast.Expr
	for {
		if p.cur.Kind == lexer.EOF {
			p.fail(lerr.ParseError, p.cur.Pos, "unterminated %s", what)
			return build(items, pos)
		}
		if p.cur.Kind == closeKind {
			p.advance()
			return build(items, pos)
		}
		if p.cur.Kind == lexer.Error {
			p.fail(lerr.LexError, p.cur.Pos, "%s", p.cur.Val)
			p.advance()
			continue
		}
		before := len(p.errs)
		e := p.parseExpr()
		if len(p.errs) > before {
			continue
		}
		items = append(items, e)
	}
}

func (p *Parser) parseMap() ast.Expr {
	pos := toPos(p.cur.Pos)
	p.advance() // consume '{'
	var pairs []ast.MapPair
	for {
		if p.cur.Kind == lexer.EOF {
			p.fail(lerr.ParseError, p.cur.Pos, "unterminated map")
			return &ast.Map{Pairs: pairs, Pos: pos}
		}
		if p.cur.Kind == lexer.CloseBrace {
			p.advance()
			return &ast.Map{Pairs: pairs, Pos: pos}
		}
		key := p.parseExpr()
		if key == nil {
			continue
		}
		if p.cur.Kind == lexer.EOF {
			p.fail(lerr.ParseError, p.cur.Pos, "unterminated map")
			return &ast.Map{Pairs: pairs, Pos: pos}
		}
		if p.cur.Kind == lexer.CloseBrace {
			p.fail(lerr.ParseError, p.cur.Pos, "map is missing a value for the last key")
			p.advance()
			return &ast.Map{Pairs: pairs, Pos: pos}
		}
		val := p.parseExpr()
		if val == nil {
			continue
		}
		pairs = append(pairs, ast.MapPair{Key: key, Val: val})
	}
}

func (p *Parser) parseQuoted() ast.Expr {
	tok := p.cur
	pos := toPos(tok.Pos)
	p.advance()
	if p.cur.Kind == lexer.EOF {
		p.fail(lerr.ParseError, tok.Pos, "unexpected end of input after %q", tok.Val)
		return nil
	}
	sub := p.parseExpr()
	if sub == nil {
		return nil
	}
	switch tok.Kind {
	case lexer.Quote:
		return &ast.Quote{X: sub, Pos: pos}
	case lexer.Quasiquote:
		return &ast.Quasiquote{X: sub, Pos: pos}
	case lexer.Unquote:
		return &ast.Unquote{X: sub, Pos: pos}
	default: // lexer.Splice
		return &ast.Splice{X: sub, Pos: pos}
	}
}

func (p *Parser) parseNumber() ast.Expr {
	tok := p.cur
	pos := toPos(tok.Pos)
	p.advance()
	v, err := parseNumberText(tok.Val)
	if err != nil {
		p.fail(lerr.ParseError, tok.Pos, "invalid number %q", tok.Val)
		return &ast.Literal{Kind: ast.LitNumber, Num: 0, Pos: pos}
	}
	return &ast.Literal{Kind: ast.LitNumber, Num: v, Pos: pos}
}

func parseNumberText(text string) (float64, error) {
	neg := false
	rest := text
	if strings.HasPrefix(rest, "+") {
		rest = rest[1:]
	} else if strings.HasPrefix(rest, "-") {
		neg = true
		rest = rest[1:]
	}
	var v float64
	switch {
	case strings.HasPrefix(rest, "0x") || strings.HasPrefix(rest, "0X"):
		i, err := strconv.ParseInt(rest[2:], 16, 64)
		if err != nil {
			return 0, err
		}
		v = float64(i)
	case strings.HasPrefix(rest, "0o") || strings.HasPrefix(rest, "0O"):
		i, err := strconv.ParseInt(rest[2:], 8, 64)
		if err != nil {
			return 0, err
		}
		v = float64(i)
	default:
		f, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return 0, err
		}
		v = f
	}
	if neg {
		v = -v
	}
	return v, nil
}

func (p *Parser) parseString() ast.Expr {
	tok := p.cur
	pos := toPos(tok.Pos)
	p.advance()
	raw := tok.Val
	if len(raw) >= 2 {
		raw = raw[1 : len(raw)-1]
	}
	return &ast.Literal{Kind: ast.LitString, Str: decodeEscapes(raw), Pos: pos}
}

func decodeEscapes(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
