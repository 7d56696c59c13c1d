package exprtree

import (
	"errors"
	"io"
	"math/big"
	"strconv"
	"strings"
)

// Context is a context for evaluating expression trees. It is not safe to use
// a Context concurrently.
type Context struct {
	stack []*big.Int
	nums  map[string]*big.Int
	err   error
}

// NewContext creates a new evaluation context.
func NewContext() *Context {
	return &Context{nums: make(map[string]*big.Int)}
}

// Eval evaluates an expression tree and returns the result. If an error
// occurs, e.g. a division by zero, then the result is nil and ctx.Err returns
// the error. A nil tree is an *EmptyExpressionError.
//
// The result is not modified by later evaluations with the same context.
func (ctx *Context) Eval(n *Node) *big.Int {
	ctx.reset()
	if n == nil {
		ctx.err = &EmptyExpressionError{Col: 1}
		return nil
	}
	if err := n.eval(ctx); err != nil {
		ctx.reset()
		ctx.err = err
		return nil
	}
	return ctx.Result()
}

// Result returns the result obtained after evaluating an expression. Panics if
// ctx has not been used to evaluate an expression. Returns nil if an error
// occurred during evaluation.
func (ctx *Context) Result() *big.Int {
	if ctx.err != nil {
		return nil
	}
	switch len(ctx.stack) {
	case 0:
		panic("exprtree: Context.Result called before evaluating any expression")
	case 1:
		return ctx.stack[0]
	default:
		panic("exprtree: inconsistent stack: " + strconv.Itoa(len(ctx.stack)) + " items (bad tree?)")
	}
}

// Err returns the error that occurred during the last evaluation with ctx, if
// any.
func (ctx *Context) Err() error {
	return ctx.err
}

// reset empties the stack and detaches the previous result so that it is not
// reused as scratch space.
func (ctx *Context) reset() {
	if cap(ctx.stack) > 0 {
		ctx.stack[:1][0] = nil
	}
	ctx.stack = ctx.stack[:0]
	ctx.err = nil
}

// push ensures a settable value on the stack.
func (ctx *Context) push() *big.Int {
	if len(ctx.stack) < cap(ctx.stack) {
		ctx.stack = ctx.stack[:len(ctx.stack)+1]
		if ctx.stack[len(ctx.stack)-1] == nil {
			ctx.stack[len(ctx.stack)-1] = new(big.Int)
		}
	} else {
		ctx.stack = append(ctx.stack, new(big.Int))
	}
	return ctx.stack[len(ctx.stack)-1]
}

// pop removes the top from the stack and returns it. The returned value may be
// modified by future node evaluations.
func (ctx *Context) pop() *big.Int {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (ctx *Context) top() *big.Int {
	return ctx.stack[len(ctx.stack)-1]
}

// num gets a possibly cached number from its text.
func (ctx *Context) num(s string) *big.Int {
	if r := ctx.nums[s]; r != nil {
		return r
	}
	r, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("exprtree: invalid number: " + strconv.Quote(s))
	}
	ctx.nums[s] = r
	return r
}

// eval pushes the node's value to the context's stack.
func (n *Node) eval(ctx *Context) error {
	switch n.kind {
	case nodeNum:
		ctx.push().Set(ctx.num(n.label))
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		op := binop(n.label)
		if op.op != n.kind || n.left == nil || n.right == nil {
			panic("exprtree: invalid tree node " + n.kind.String() + " " + strconv.Quote(n.label))
		}
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		if err := n.right.eval(ctx); err != nil {
			return err
		}
		r := ctx.pop()
		l := ctx.top()
		if n.kind == nodeDiv && r.Sign() == 0 {
			return &DivisionError{Col: n.pos, X: new(big.Int).Set(l)}
		}
		op.fn(l, l, r)
	default:
		panic("exprtree: invalid tree node " + n.kind.String())
	}
	return nil
}

// Evaluate computes the value of an expression tree. Results are always
// integers: division truncates toward zero, so 7/2 is 3 and not 3.5, and
// (0-7)/2 is -3. Division by zero is a *DivisionError.
func Evaluate(n *Node) (*big.Int, error) {
	ctx := NewContext()
	r := ctx.Eval(n)
	return r, ctx.Err()
}

// Eval is a shortcut to parse an expression and return its result. An input
// with no tokens is an *EmptyExpressionError.
func Eval(src io.RuneScanner, opts ...ParseOption) (*big.Int, error) {
	n, err := Parse(src, opts...)
	if err != nil {
		return nil, err
	}
	return Evaluate(n)
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ParseOption) (*big.Int, error) {
	return Eval(strings.NewReader(src), opts...)
}

// ErrArithmetic is matched by every error from an arithmetic operation that
// has no result, using errors.Is.
var ErrArithmetic = errors.New("exprtree: arithmetic error")

// DivisionError is an error from dividing by zero. It implements InputError.
type DivisionError struct {
	// Col is the position of the division operator.
	Col int
	// X is the dividend.
	X *big.Int
}

func (err *DivisionError) Error() string {
	return errpos(err.Col, "division of "+err.X.String()+" by zero")
}

func (err *DivisionError) Pos() int {
	return err.Col
}

func (err *DivisionError) Is(target error) bool {
	return target == ErrArithmetic
}
