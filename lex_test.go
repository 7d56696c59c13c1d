package exprtree

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		strict bool
		tokens []Token
		errs   int
	}{
		// spaces
		{"", false, nil, 0},
		{" \t \r\n ", false, nil, 0},
		{" \t \r\n ", true, nil, 0},
		// numbers
		{"0", false, []Token{{Text: "0", Kind: TokenNum, Pos: 1}}, 0},
		{"9876543210", false, []Token{{Text: "9876543210", Kind: TokenNum, Pos: 1}}, 0},
		{"007", false, []Token{{Text: "007", Kind: TokenNum, Pos: 1}}, 0},
		{"1 0", false, []Token{{Text: "1", Kind: TokenNum, Pos: 1}, {Text: "0", Kind: TokenNum, Pos: 3}}, 0},
		{"1.5", false, []Token{{Text: "1", Kind: TokenNum, Pos: 1}, {Text: "5", Kind: TokenNum, Pos: 3}}, 0},
		{"12+3", false, []Token{{Text: "12", Kind: TokenNum, Pos: 1}, {Text: "+", Kind: TokenOp, Pos: 3}, {Text: "3", Kind: TokenNum, Pos: 4}}, 0},
		{"1*0", false, []Token{{Text: "1", Kind: TokenNum, Pos: 1}, {Text: "*", Kind: TokenOp, Pos: 2}, {Text: "0", Kind: TokenNum, Pos: 3}}, 0},
		{"(1)", false, []Token{{Text: "(", Kind: TokenOpen, Pos: 1}, {Text: "1", Kind: TokenNum, Pos: 2}, {Text: ")", Kind: TokenClose, Pos: 3}}, 0},
		{"١٢", false, nil, 0},
		// operators
		{"+", false, []Token{{Text: "+", Kind: TokenOp, Pos: 1}}, 0},
		{"+-*/", false, []Token{{Text: "+", Kind: TokenOp, Pos: 1}, {Text: "-", Kind: TokenOp, Pos: 2}, {Text: "*", Kind: TokenOp, Pos: 3}, {Text: "/", Kind: TokenOp, Pos: 4}}, 0},
		// brackets
		{")(", false, []Token{{Text: ")", Kind: TokenClose, Pos: 1}, {Text: "(", Kind: TokenOpen, Pos: 2}}, 0},
		// ignored symbols
		{"$", false, nil, 0},
		{"x^2", false, []Token{{Text: "2", Kind: TokenNum, Pos: 3}}, 0},
		{"π+1", false, []Token{{Text: "+", Kind: TokenOp, Pos: 2}, {Text: "1", Kind: TokenNum, Pos: 3}}, 0},
		{"[1]", false, []Token{{Text: "1", Kind: TokenNum, Pos: 2}}, 0},
		// erroneous symbols
		{"$", true, []Token{{}}, 1},
		{"1$", true, []Token{{Text: "1", Kind: TokenNum, Pos: 1}, {}}, 1},
		{"$1", true, []Token{{}, {Text: "1", Kind: TokenNum, Pos: 2}}, 1},
		{"$$", true, []Token{{}, {}}, 2},
		{"1 + 2", true, []Token{{Text: "1", Kind: TokenNum, Pos: 1}, {Text: "+", Kind: TokenOp, Pos: 3}, {Text: "2", Kind: TokenNum, Pos: 5}}, 0},
	}

	for _, c := range cases {
		scan := lex(strings.NewReader(c.src), c.strict)
		for _, want := range c.tokens {
			got, err := scan.next()
			if err == io.EOF {
				t.Errorf("scanning %q: expected token %v but got EOF", c.src, want)
				continue
			}
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
			if err != nil {
				if c.errs > 0 {
					c.errs--
					continue
				}
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
			}
		}
		for got, err := scan.next(); err != io.EOF; got, err = scan.next() {
			if c.errs > 0 {
				c.errs--
			}
			t.Errorf("scanning %q: extra token %v with error: %v", c.src, got, err)
		}
		if c.errs > 0 {
			t.Errorf("scanning %q: not enough errors", c.src)
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	for _, src := range []string{"", "   ", "abc"} {
		toks, err := TokenizeString(src)
		if err != nil {
			t.Errorf("tokenizing %q gave error %v", src, err)
		}
		if len(toks) != 0 {
			t.Errorf("tokenizing %q gave tokens %v", src, toks)
		}
	}
}

func TestTokenizeStrict(t *testing.T) {
	cases := []struct {
		name string
		src  string
		text string
		col  int
	}{
		{"letter", "2+x", "x", 3},
		{"decimal", "1.5", ".", 2},
		{"bracket", "[1]", "[", 1},
		{"unicode", "1×2", "×", 2},
		{"arabic-digit", "١+2", "١", 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := TokenizeString(c.src, Strict())
			if err == nil {
				t.Fatalf("%q tokenized to %v with no error", c.src, toks)
			}
			if toks != nil {
				t.Errorf("%q gave tokens %v with error", c.src, toks)
			}
			var le *LexError
			if !errors.As(err, &le) {
				t.Fatalf("%#v is not *LexError", err)
			}
			if !errors.Is(err, ErrStructure) {
				t.Errorf("%v doesn't match ErrStructure", err)
			}
			if le.Text != c.text || le.Pos() != c.col {
				t.Errorf("wrong error: want %q at %d, got %q at %d", c.text, c.col, le.Text, le.Pos())
			}
			// The same input is accepted without Strict, or when Lenient
			// overrides it.
			if _, err := TokenizeString(c.src, Strict(), Lenient()); err != nil {
				t.Errorf("lenient tokenizing failed: %v", err)
			}
		})
	}
}

func TestTokenizeReadError(t *testing.T) {
	boom := errors.New("boom")
	cases := []struct {
		name string
		src  io.Reader
	}{
		{"start", iotest.ErrReader(boom)},
		{"num", io.MultiReader(strings.NewReader("12"), iotest.ErrReader(boom))},
		{"op", io.MultiReader(strings.NewReader("12+"), iotest.ErrReader(boom))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(bufio.NewReader(c.src))
			if !errors.Is(err, boom) {
				t.Errorf("want %v, got tokens %v with error %v", boom, toks, err)
			}
			if toks != nil {
				t.Errorf("got tokens %v with error", toks)
			}
		})
	}
}
