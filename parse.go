package amountexpr

// expression := term (('+' | '-') term)*      // left-associative
// term       := factor (('*' | '/') factor)*  // left-associative
// factor     := ('+' | '-')? (NUMBER | '(' expression ')')

// parser consumes the lexer's token stream and evaluates while parsing.
// There is no AST; each rule folds its operand values left to right, which
// is what makes "10-3-2" come out to 5 rather than 9. A parser serves one
// evalExpr call and is not reused.
type parser struct {
	scan *lexer
	tok  lexToken
}

// evalExpr runs the full tokenizer and parser pipeline over input and
// returns the raw, unrounded result.
func evalExpr(input string) (float64, error) {
	p := parser{scan: newLexer(input)}
	if err := p.advance(); err != nil {
		return 0, err
	}
	v, err := p.expression()
	if err != nil {
		return 0, err
	}
	if p.tok.kind != tokenEnd {
		return 0, &TrailingTokenError{Col: p.tok.pos, Token: p.tok.String()}
	}
	return v, nil
}

// advance pulls the next token into the lookahead.
func (p *parser) advance() error {
	tok, err := p.scan.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) expression() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for p.tok.kind == tokenOp && (p.tok.text == "+" || p.tok.text == "-") {
		op := p.tok.text
		if err := p.advance(); err != nil {
			return 0, err
		}
		rhs, err := p.term()
		if err != nil {
			return 0, err
		}
		if op == "+" {
			v += rhs
		} else {
			v -= rhs
		}
	}
	return v, nil
}

func (p *parser) term() (float64, error) {
	v, err := p.factor()
	if err != nil {
		return 0, err
	}
	for p.tok.kind == tokenOp && (p.tok.text == "*" || p.tok.text == "/") {
		op, col := p.tok.text, p.tok.pos
		if err := p.advance(); err != nil {
			return 0, err
		}
		rhs, err := p.factor()
		if err != nil {
			return 0, err
		}
		if op == "*" {
			v *= rhs
		} else {
			// Refuse before the IEEE division happens so Inf and NaN never
			// escape the parser.
			if rhs == 0 {
				return 0, &DivisionByZeroError{Col: col}
			}
			v /= rhs
		}
	}
	return v, nil
}

func (p *parser) factor() (float64, error) {
	switch p.tok.kind {
	case tokenOp:
		if p.tok.text != "+" && p.tok.text != "-" {
			return 0, &ExpectedNumberError{Col: p.tok.pos, Found: p.tok.String()}
		}
		// Unary sign. Recursing through factor allows any repetition, so
		// "--5" is 5 and "+-5" is -5.
		neg := p.tok.text == "-"
		if err := p.advance(); err != nil {
			return 0, err
		}
		v, err := p.factor()
		if err != nil {
			return 0, err
		}
		if neg {
			v = -v
		}
		return v, nil
	case tokenLParen:
		if err := p.advance(); err != nil {
			return 0, err
		}
		v, err := p.expression()
		if err != nil {
			return 0, err
		}
		if p.tok.kind != tokenRParen {
			return 0, &BracketError{Col: p.tok.pos, Found: p.tok.String()}
		}
		if err := p.advance(); err != nil {
			return 0, err
		}
		return v, nil
	case tokenNum:
		v := p.tok.val
		if err := p.advance(); err != nil {
			return 0, err
		}
		return v, nil
	default:
		return 0, &ExpectedNumberError{Col: p.tok.pos, Found: p.tok.String()}
	}
}
