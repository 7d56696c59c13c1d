package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/zephyrtronium/exprtree"
)

// result is the outcome of calculating one expression.
type result struct {
	Expression string           `json:"expression"`
	Result     string           `json:"result,omitempty"`
	Error      string           `json:"error,omitempty"`
	Hierarchy  []exprtree.Entry `json:"tree_hierarchy"`

	tree *exprtree.Node
}

// calculate parses and evaluates src. Errors are recorded in the result.
func calculate(src string, opts []exprtree.ParseOption) result {
	r := result{Expression: src}
	n, err := exprtree.ParseString(src, opts...)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.tree = n
	v, err := exprtree.Evaluate(n)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Result = v.String()
	r.Hierarchy = exprtree.Hierarchy(n)
	return r
}

type printer struct {
	w    io.Writer
	echo bool
	tree bool
	json bool
}

func (p *printer) print(r result) error {
	if p.json {
		return json.NewEncoder(p.w).Encode(r)
	}
	if p.echo && r.tree != nil {
		if _, err := fmt.Fprintf(p.w, "%v : ", r.tree); err != nil {
			return err
		}
	}
	if r.Error != "" {
		_, err := fmt.Fprintln(p.w, "Error:", r.Error)
		return err
	}
	if _, err := fmt.Fprintln(p.w, r.Result); err != nil {
		return err
	}
	if !p.tree {
		return nil
	}
	for _, e := range r.Hierarchy {
		parent := e.Parent
		if e.IsRoot() {
			parent = "-"
		}
		if _, err := fmt.Fprintf(p.w, "\t%d %s %d %s\n", e.ID, e.Label, e.ParentID, parent); err != nil {
			return err
		}
	}
	return nil
}
