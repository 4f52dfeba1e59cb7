package sexpr

import (
	"io"
	"os"
	"strconv"
)

// Parse parses S-expressions from bytes.
func Parse(data []byte, opt *ParseOptions) ([]Node, error) {
	return ParseString(string(data), opt)
}

// ParseString parses S-expressions from a string.
func ParseString(src string, opt *ParseOptions) ([]Node, error) {
	p := &parser{src: src, opt: opt.normalize()}
	return p.parseAll()
}

// Decode parses S-expressions from reader.
func Decode(r io.Reader, opt *ParseOptions) ([]Node, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return Parse(b, opt)
}

// DecodeFile parses S-expressions from a file.
func DecodeFile(path string, opt *ParseOptions) ([]Node, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(b, opt)
}

// parser represents a parser for S-expression text. Every parsing step
// takes the remaining input and returns the remainder after the consumed
// token; src is kept whole so failures can report absolute byte offsets.
type parser struct {
	src string       // Full source text
	opt ParseOptions // Options for the parser
}

// parseAll parses all top-level expressions in source order.
func (p *parser) parseAll() ([]Node, error) {
	var nodes []Node
	rest := skipSpace(p.src)
	for rest != "" {
		n, after, err := p.parseExpr(rest, 0)
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, n)
		rest = skipSpace(after)
	}

	return nodes, nil
}

// parseExpr parses a single expression, dispatching on the first character.
// depth is the number of enclosing lists.
func (p *parser) parseExpr(s string, depth int) (Node, string, error) {
	if s == "" {
		return Node{}, "", p.errorf(s, ErrUnexpectedEOF, "")
	}

	switch c := s[0]; {
	case c == '(':
		return p.parseList(s, depth)
	case c == '"':
		return p.parseString(s)
	case c == '-' || isDigit(c):
		return p.parseNumber(s)
	default:
		return p.parseSymbol(s)
	}
}

// parseNumber parses an integer or float leaf. The token is scanned whole,
// so malformed runs like "1-2" or "1.2.3" fail as one token rather than
// splitting.
func (p *parser) parseNumber(s string) (Node, string, error) {
	tok, rest := scanToken(s, stopNumber)

	if v, err := strconv.ParseInt(tok, 10, 32); err == nil {
		return Node{Kind: KindInteger, Int: int32(v)}, rest, nil
	}
	if v, err := strconv.ParseFloat(tok, 64); err == nil {
		return Node{Kind: KindFloat, Float: v}, rest, nil
	}

	// Report the scanned slice, or the remainder when nothing was scanned.
	bad := tok
	if bad == "" {
		bad = rest
	}

	return Node{}, "", p.errorf(s, ErrMalformedNumber, bad)
}

// parseSymbol parses a symbol leaf.
func (p *parser) parseSymbol(s string) (Node, string, error) {
	tok, rest := scanToken(s, stopSymbol)
	if tok == "" {
		return Node{}, "", p.errorf(s, ErrEmptySymbol, "")
	}

	return Node{Kind: KindSymbol, Text: tok}, rest, nil
}

// parseString parses a quoted string leaf. There is no escape handling;
// the content runs to the first '"' after the opening quote.
func (p *parser) parseString(s string) (Node, string, error) {
	tok, rest := scanToken(s[1:], stopQuote)
	if rest == "" {
		return Node{}, "", p.errorf(s, ErrUnterminatedString, tok)
	}

	return Node{Kind: KindString, Text: tok}, rest[1:], nil
}

// parseList parses a parenthesized list, recursing through parseExpr for
// each element.
func (p *parser) parseList(s string, depth int) (Node, string, error) {
	if p.opt.MaxDepth > 0 && depth+1 > p.opt.MaxDepth {
		return Node{}, "", p.errorf(s, ErrTooDeep, "")
	}

	var elems []Node
	rest := s[1:] // consume opening paren
	for {
		rest = skipSpace(rest)
		if rest == "" {
			return Node{}, "", p.errorf(rest, ErrUnclosedList, "")
		}

		// The close check runs before dispatch so "()" yields an empty
		// list. With DisableEmptyLists a leading ')' falls through to the
		// dispatcher and fails in the symbol parser.
		if rest[0] == ')' && (len(elems) > 0 || !p.opt.DisableEmptyLists) {
			return Node{Kind: KindList, List: elems}, rest[1:], nil
		}

		n, after, err := p.parseExpr(rest, depth+1)
		if err != nil {
			return Node{}, "", err
		}

		elems = append(elems, n)
		rest = after
	}
}

// errorf builds a ParseError positioned at the start of rest.
func (p *parser) errorf(rest string, kind error, tok string) error {
	return &ParseError{Err: kind, Token: tok, Offset: len(p.src) - len(rest)}
}
