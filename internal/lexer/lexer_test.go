package lexer_test

import (
	"testing"

	"github.com/lumalang/luma/internal/lexer"
	"github.com/lumalang/luma/internal/token"
)

func collect(src string) []token.Kind {
	l := lexer.New(src)
	var kinds []token.Kind
	for {
		tok := l.Next()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EOF {
			return kinds
		}
	}
}

func TestLexerKeywordsAndOperators(t *testing.T) {
	src := `func main(): int { let a: int = 3; let b: number = 2.5; return a + b; }`
	kinds := collect(src)

	want := []token.Kind{
		token.FUNC, token.IDENT, token.LPAREN, token.RPAREN, token.COLON, token.INT_TYPE, token.LBRACE,
		token.LET, token.IDENT, token.COLON, token.INT_TYPE, token.ASSIGN, token.INT, token.SEMI,
		token.LET, token.IDENT, token.COLON, token.NUMBER_TYPE, token.ASSIGN, token.NUMBER, token.SEMI,
		token.RETURN, token.IDENT, token.PLUS, token.IDENT, token.SEMI,
		token.RBRACE, token.EOF,
	}

	if len(kinds) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(kinds), len(want), kinds)
	}
	for i, k := range kinds {
		if k != want[i] {
			t.Fatalf("token[%d] = %s, want %s", i, k, want[i])
		}
	}
}

func TestLexerStringEscapes(t *testing.T) {
	l := lexer.New(`"hi\n"`)
	tok := l.Next()
	if tok.Kind != token.STRING {
		t.Fatalf("kind = %s, want STRING", tok.Kind)
	}
	if tok.Literal != "hi\n" {
		t.Fatalf("literal = %q, want %q", tok.Literal, "hi\n")
	}
}

func TestLexerTwoCharOperators(t *testing.T) {
	kinds := collect("== != <= >= && ||")
	want := []token.Kind{token.EQ, token.NEQ, token.LEQ, token.GEQ, token.AND, token.OR, token.EOF}
	if len(kinds) != len(want) {
		t.Fatalf("token count = %d, want %d", len(kinds), len(want))
	}
	for i, k := range kinds {
		if k != want[i] {
			t.Fatalf("token[%d] = %s, want %s", i, k, want[i])
		}
	}
}

func TestLexerPositionsCountRunesNotBytes(t *testing.T) {
	l := lexer.New("Δx y")
	tok := l.Next()
	if tok.Kind != token.IDENT || tok.Literal != "Δx" {
		t.Fatalf("unexpected token: %+v", tok)
	}
	if tok.Pos.Column != 1 || tok.Pos.Length != 2 {
		t.Fatalf("Δx position = %+v, want column 1, length 2", tok.Pos)
	}
	next := l.Next()
	if next.Literal != "y" || next.Pos.Column != 4 {
		t.Fatalf("y token = %+v, want column 4", next)
	}
}
