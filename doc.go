// Package exprtree implements an integer calculator that builds explicit
// expression trees.
//
// An expression is made of non-negative integers, the binary operators
// + - * /, and parentheses. "*" and "/" bind tighter than "+" and "-", and
// operators of equal precedence group from the left, so "8-4-2" is 2. Parsing
// produces a *Node tree which can be evaluated to an arbitrary-precision
// integer or flattened into a list of (node, parent) entries for rendering.
//
// By default the tokenizer skips any rune it doesn't understand, so
// "2 apples + 3" is the same as "2+3". Use Strict to reject such input
// instead.
//
package exprtree
