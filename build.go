package exprtree

import (
	"io"
	"math/big"
	"strings"
)

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// op is the node kind to use when this operator is selected.
	op nodeKind
	// fn sets z to the result of the operator applied to x and y and
	// returns z. Division by zero must be checked before calling fn.
	fn func(z, x, y *big.Int) *big.Int
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, nodeAdd, (*big.Int).Add}
	case "-":
		return operator{1, nodeSub, (*big.Int).Sub}
	case "*":
		return operator{2, nodeMul, (*big.Int).Mul}
	case "/":
		return operator{2, nodeDiv, (*big.Int).Quo}
	default:
		return operator{}
	}
}

// openprec is the precedence of an open bracket on the operator stack. It is
// lower than any operator, so nothing reduces past it.
const openprec = -1

// precedence gets the precedence of a token on the operator stack.
func precedence(tok Token) int8 {
	if tok.Kind == TokenOpen {
		return openprec
	}
	return binop(tok.Text).prec
}

// builder holds the two stacks used to build a tree.
type builder struct {
	ops  []Token
	vals []*Node
}

func (b *builder) pushop(tok Token) {
	b.ops = append(b.ops, tok)
}

func (b *builder) popop() Token {
	tok := b.ops[len(b.ops)-1]
	b.ops = b.ops[:len(b.ops)-1]
	return tok
}

func (b *builder) topop() Token {
	return b.ops[len(b.ops)-1]
}

func (b *builder) push(n *Node) {
	b.vals = append(b.vals, n)
}

func (b *builder) pop() *Node {
	n := b.vals[len(b.vals)-1]
	b.vals = b.vals[:len(b.vals)-1]
	return n
}

// reduce pops an operator and its two operands and pushes the combined
// subtree. The right operand is on top of the stack.
func (b *builder) reduce() error {
	tok := b.popop()
	if len(b.vals) < 2 {
		return &OperandError{Col: tok.Pos, Operator: tok.Text}
	}
	right := b.pop()
	left := b.pop()
	n := &Node{
		kind:  binop(tok.Text).op,
		label: tok.Text,
		pos:   tok.Pos,
		left:  left,
		right: right,
	}
	left.parent = n
	right.parent = n
	b.push(n)
	return nil
}

// Build builds an expression tree from a sequence of tokens. If there are no
// tokens, the result is nil with no error. Tokens which cannot form a single
// binary tree produce an error that matches ErrStructure.
func Build(tokens []Token) (*Node, error) {
	var b builder
	// operand is whether the next token must begin an operand, i.e. be a
	// number or an open bracket. last is the previous token.
	operand := true
	var last Token
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNum:
			if !isdigits(tok.Text) {
				return nil, &LexError{Text: tok.Text, Col: tok.Pos}
			}
			if !operand {
				return nil, &OperandError{Col: tok.Pos}
			}
			b.push(&Node{kind: nodeNum, label: tok.Text, pos: tok.Pos})
			operand = false
		case TokenOpen:
			if !operand {
				return nil, &OperandError{Col: tok.Pos}
			}
			b.pushop(tok)
		case TokenClose:
			if operand {
				switch last.Kind {
				case TokenOpen:
					return nil, &EmptyExpressionError{Col: tok.Pos, End: tok.Text}
				case TokenOp:
					return nil, &OperandError{Col: last.Pos, Operator: last.Text}
				default:
					// Close bracket as the first token.
					return nil, &BracketError{Col: tok.Pos, Right: tok.Text}
				}
			}
			for {
				if len(b.ops) == 0 {
					return nil, &BracketError{Col: tok.Pos, Right: tok.Text}
				}
				if b.topop().Kind == TokenOpen {
					b.popop()
					break
				}
				if err := b.reduce(); err != nil {
					return nil, err
				}
			}
		case TokenOp:
			prec := binop(tok.Text)
			if prec.op == nodeNone {
				return nil, &OperatorError{Col: tok.Pos, Operator: tok.Text}
			}
			if operand {
				return nil, &OperandError{Col: tok.Pos, Operator: tok.Text}
			}
			// Reducing on equal precedence makes operators left-associative.
			for len(b.ops) > 0 && precedence(b.topop()) >= prec.prec {
				if err := b.reduce(); err != nil {
					return nil, err
				}
			}
			b.pushop(tok)
			operand = true
		default:
			return nil, &LexError{Text: tok.Text, Col: tok.Pos}
		}
		last = tok
	}
	if len(tokens) == 0 {
		return nil, nil
	}
	if operand {
		return nil, itShouldNotHaveEndedThisWay(last)
	}
	for len(b.ops) > 0 {
		if tok := b.topop(); tok.Kind == TokenOpen {
			return nil, &BracketError{Col: tok.Pos, Left: tok.Text}
		}
		if err := b.reduce(); err != nil {
			return nil, err
		}
	}
	switch len(b.vals) {
	case 0:
		return nil, nil
	case 1:
		return b.vals[0], nil
	default:
		return nil, &OperandError{Col: b.vals[1].start()}
	}
}

// itShouldNotHaveEndedThisWay returns an error appropriate for a
// subexpression that ends where an operand is required. last is the token
// after which the operand was expected.
func itShouldNotHaveEndedThisWay(last Token) error {
	switch last.Kind {
	case TokenOpen:
		// Unexpected end implies an open bracket that was not closed.
		return &BracketError{Col: last.Pos, Left: last.Text}
	case TokenOp:
		return &OperandError{Col: last.Pos, Operator: last.Text}
	default:
		panic("exprtree: it really should not have ended this way: " + last.String())
	}
}

// start returns the position of the leftmost token in the tree rooted at n.
func (n *Node) start() int {
	for n.left != nil {
		n = n.left
	}
	return n.pos
}

func isdigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || '9' < s[i] {
			return false
		}
	}
	return true
}

// Parse tokenizes and builds an expression tree. The given options are applied
// in order. Input with no tokens produces a nil tree and no error.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Node, error) {
	p := newparsectx(opts)
	toks, err := tokenize(src, &p)
	if err != nil {
		return nil, err
	}
	return Build(toks)
}

// ParseString is a shortcut to parse a string expression.
func ParseString(src string, opts ...ParseOption) (*Node, error) {
	return Parse(strings.NewReader(src), opts...)
}
