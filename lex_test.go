package amountexpr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexTokens(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
	}{
		{"", nil},
		{" \t \r\n ", nil},
		{"0", []lexToken{{kind: tokenNum, text: "0", val: 0, pos: 1}}},
		{"12.50", []lexToken{{kind: tokenNum, text: "12.50", val: 12.5, pos: 1}}},
		{".5", []lexToken{{kind: tokenNum, text: ".5", val: 0.5, pos: 1}}},
		{"5.", []lexToken{{kind: tokenNum, text: "5.", val: 5, pos: 1}}},
		{"1+2", []lexToken{
			{kind: tokenNum, text: "1", val: 1, pos: 1},
			{kind: tokenOp, text: "+", pos: 2},
			{kind: tokenNum, text: "2", val: 2, pos: 3},
		}},
		// Whitespace is stripped before tokenizing, so positions count
		// only the characters that survive.
		{" 2 + 3 ", []lexToken{
			{kind: tokenNum, text: "2", val: 2, pos: 1},
			{kind: tokenOp, text: "+", pos: 2},
			{kind: tokenNum, text: "3", val: 3, pos: 3},
		}},
		{"(1)", []lexToken{
			{kind: tokenLParen, text: "(", pos: 1},
			{kind: tokenNum, text: "1", val: 1, pos: 2},
			{kind: tokenRParen, text: ")", pos: 3},
		}},
		{"-5*-1", []lexToken{
			{kind: tokenOp, text: "-", pos: 1},
			{kind: tokenNum, text: "5", val: 5, pos: 2},
			{kind: tokenOp, text: "*", pos: 3},
			{kind: tokenOp, text: "-", pos: 4},
			{kind: tokenNum, text: "1", val: 1, pos: 5},
		}},
		// A second dot ends the number; the rest scans as a new token.
		{"1.2.3", []lexToken{
			{kind: tokenNum, text: "1.2", val: 1.2, pos: 1},
			{kind: tokenNum, text: ".3", val: 0.3, pos: 4},
		}},
	}
	for _, c := range cases {
		c := c
		t.Run(c.src, func(t *testing.T) {
			scan := newLexer(c.src)
			for _, want := range c.tokens {
				got, err := scan.next()
				require.NoError(t, err)
				require.Equal(t, want, got)
			}
			end, err := scan.next()
			require.NoError(t, err)
			require.Equal(t, tokenEnd, end.kind)
		})
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		src  string
		kind string
		col  int
	}{
		{"abc", "", 1},
		{"$", "", 1},
		{"2+x", "", 3},
		{"1,5", "", 2},
		{".", "number", 1},
		{"1+.", "number", 3},
	}
	for _, c := range cases {
		c := c
		t.Run(c.src, func(t *testing.T) {
			scan := newLexer(c.src)
			tok, err := scan.next()
			for err == nil && tok.kind != tokenEnd {
				tok, err = scan.next()
			}
			require.Error(t, err)
			var lerr *LexError
			require.ErrorAs(t, err, &lerr)
			require.Equal(t, c.kind, lerr.Kind)
			require.Equal(t, c.col, lerr.Col)
			require.Equal(t, c.col, lerr.Pos())
		})
	}
}

func TestLexPeek(t *testing.T) {
	scan := newLexer("1+2")
	want := lexToken{kind: tokenNum, text: "1", val: 1, pos: 1}
	tok, err := scan.peek()
	require.NoError(t, err)
	require.Equal(t, want, tok)
	// Peeking must not consume: a repeated peek and the following next all
	// see the same token.
	again, err := scan.peek()
	require.NoError(t, err)
	require.Equal(t, want, again)
	got, err := scan.next()
	require.NoError(t, err)
	require.Equal(t, want, got)
	op, err := scan.next()
	require.NoError(t, err)
	require.Equal(t, lexToken{kind: tokenOp, text: "+", pos: 2}, op)
}

func TestLexEndIdempotent(t *testing.T) {
	scan := newLexer("7")
	_, err := scan.next()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		tok, err := scan.next()
		require.NoError(t, err)
		require.Equal(t, tokenEnd, tok.kind)
	}
}
