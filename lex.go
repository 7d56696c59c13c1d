package exprtree

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical token of an expression.
type Token struct {
	// Text is the token's source text: a run of decimal digits, an operator,
	// or a bracket.
	Text string
	// Kind is the type of the token.
	Kind TokenKind
	// Pos is the number of runes up to and including the start of the token.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the type of a token.
type TokenKind int

const (
	TokenNone TokenKind = iota
	// TokenNum is a non-negative integer literal.
	TokenNum
	// TokenOp is a binary operator.
	TokenOp
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenOp:
		return "Op"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

// OpenBracket and CloseBracket group subexpressions.
const (
	OpenBracket  = "("
	CloseBracket = ")"
)

func byteidcs(s string) []string {
	v := make([]string, len(s))
	for i, r := range s {
		v[i] = string(r)
	}
	return v
}

var operstrs = byteidcs(Operators)

type lexer struct {
	src    io.RuneScanner
	buf    strings.Builder
	rune   int
	strict bool
}

func lex(src io.RuneScanner, strict bool) *lexer {
	return &lexer{
		src:    src,
		rune:   1,
		strict: strict,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. At the end of the input, the
// error is io.EOF. Unrecognized runes are skipped unless the lexer is strict,
// in which case they produce a *LexError and the lexer may continue after
// them.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	for {
		tok := Token{Pos: l.rune}
		r, err := l.readRune()
		if err != nil {
			return Token{}, err
		}
		switch {
		case '0' <= r && r <= '9':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return Token{}, err
			}
			tok.Text = l.buf.String()
			tok.Kind = TokenNum
			return tok, nil
		case r == '(':
			tok.Text = OpenBracket
			tok.Kind = TokenOpen
			return tok, nil
		case r == ')':
			tok.Text = CloseBracket
			tok.Kind = TokenClose
			return tok, nil
		case unicode.IsSpace(r):
			continue
		default:
			if k := strings.IndexRune(Operators, r); k >= 0 {
				tok.Text = operstrs[k]
				tok.Kind = TokenOp
				return tok, nil
			}
			if !l.strict {
				continue
			}
			l.buf.WriteRune(r)
			return Token{}, &LexError{Text: l.buf.String(), Col: tok.Pos}
		}
	}
}

// scanNum scans a maximal run of ASCII digits into the buffer.
func (l *lexer) scanNum() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if r < '0' || '9' < r {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// Tokenize scans src into a sequence of tokens. Unless the Strict option is
// given, runes other than digits, operators, and parentheses are dropped, so
// the only possible errors are read errors from src. Empty input produces no
// tokens and no error.
func Tokenize(src io.RuneScanner, opts ...ParseOption) ([]Token, error) {
	p := newparsectx(opts)
	return tokenize(src, &p)
}

// TokenizeString is a shortcut to tokenize a string.
func TokenizeString(src string, opts ...ParseOption) ([]Token, error) {
	return Tokenize(strings.NewReader(src), opts...)
}

func tokenize(src io.RuneScanner, p *parsectx) ([]Token, error) {
	scan := lex(src, p.strict)
	var toks []Token
	for {
		tok, err := scan.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
}

// LexError indicates an invalid token: a rune that the lexer does not
// recognize in strict mode, or a token passed to Build that the lexer would
// never produce. It implements InputError and matches ErrStructure.
type LexError struct {
	// Text is the unrecognized rune or token text.
	Text string
	// Col is the position of the rune.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Is(target error) bool {
	return target == ErrStructure
}
