package amountexpr

import (
	"strconv"
	"unicode"
)

type tokenKind int

const (
	// tokenEnd indicates the end of the input.
	tokenEnd tokenKind = iota
	// tokenNum is a number literal.
	tokenNum
	// tokenOp is one of the four operator characters.
	tokenOp
	// tokenLParen and tokenRParen group subexpressions.
	tokenLParen
	tokenRParen
)

func (k tokenKind) String() string {
	switch k {
	case tokenEnd:
		return "end of expression"
	case tokenNum:
		return "number"
	case tokenOp:
		return "operator"
	case tokenLParen:
		return `"("`
	case tokenRParen:
		return `")"`
	}
	return "unknown token"
}

type lexToken struct {
	kind tokenKind
	text string
	val  float64
	pos  int
}

// String describes a token for diagnostics: the quoted text for operators
// and numbers, the kind otherwise.
func (t lexToken) String() string {
	switch t.kind {
	case tokenNum, tokenOp:
		return strconv.Quote(t.text)
	}
	return t.kind.String()
}

// lexer scans one token at a time from an amount expression. Whitespace is
// stripped up front, so positions are 1-based rune columns into the
// stripped input.
type lexer struct {
	src []rune
	pos int
}

func newLexer(input string) *lexer {
	src := make([]rune, 0, len(input))
	for _, r := range input {
		if unicode.IsSpace(r) {
			continue
		}
		src = append(src, r)
	}
	return &lexer{src: src}
}

// next scans the next token and advances the cursor. At the end of the
// input it returns an end token any number of times.
func (l *lexer) next() (lexToken, error) {
	if l.pos >= len(l.src) {
		return lexToken{kind: tokenEnd, pos: l.pos + 1}, nil
	}
	tok := lexToken{pos: l.pos + 1}
	r := l.src[l.pos]
	switch r {
	case '+', '-', '*', '/':
		l.pos++
		tok.kind = tokenOp
		tok.text = string(r)
		return tok, nil
	case '(':
		l.pos++
		tok.kind = tokenLParen
		tok.text = "("
		return tok, nil
	case ')':
		l.pos++
		tok.kind = tokenRParen
		tok.text = ")"
		return tok, nil
	}
	if isDigit(r) || r == '.' {
		return l.scanNum()
	}
	l.pos++
	return tok, &LexError{Col: tok.pos, Text: string(r)}
}

// peek returns the next token without consuming it. The cursor is restored
// after scanning, so a following next returns the same token.
func (l *lexer) peek() (lexToken, error) {
	save := l.pos
	tok, err := l.next()
	l.pos = save
	return tok, err
}

// scanNum scans a maximal run of digits with at most one dot. A second dot
// ends the number and is left for the next token.
func (l *lexer) scanNum() (lexToken, error) {
	tok := lexToken{kind: tokenNum, pos: l.pos + 1}
	start := l.pos
	dot := false
	for l.pos < len(l.src) {
		r := l.src[l.pos]
		if r == '.' {
			if dot {
				break
			}
			dot = true
		} else if !isDigit(r) {
			break
		}
		l.pos++
	}
	tok.text = string(l.src[start:l.pos])
	v, err := strconv.ParseFloat(tok.text, 64)
	if err != nil {
		return tok, &LexError{Col: tok.pos, Text: tok.text, Kind: "number"}
	}
	tok.val = v
	return tok, nil
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// LexError indicates input the tokenizer cannot classify. It implements
// InputError.
type LexError struct {
	// Col is the 1-based column of the offending text in the
	// whitespace-stripped input.
	Col int
	// Text is the offending character or number literal.
	Text string
	// Kind is "number" for a malformed number literal and the empty string
	// for an unclassifiable character.
	Kind string
}

func (err *LexError) Error() string {
	if err.Kind == "number" {
		return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "unexpected character "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}
