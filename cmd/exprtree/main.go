package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/exprtree"
)

func main() {
	log.SetFlags(0)
	var (
		inname            string
		nl, strict        bool
		echo, tree, jsonl bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.BoolVar(&nl, "n", false, "parse separate input lines as separate expressions")
	flag.BoolVar(&strict, "strict", false, "reject unrecognized characters instead of ignoring them")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&tree, "tree", false, "print the tree hierarchy of each expression")
	flag.BoolVar(&jsonl, "json", false, "print one JSON object per expression")
	flag.Parse()

	srcs, err := readinput(inname, flag.NArg() == 0, nl)
	if err != nil {
		log.Fatal(err)
	}
	srcs = append(srcs, flag.Args()...)

	var opts []exprtree.ParseOption
	if strict {
		opts = append(opts, exprtree.Strict())
	}
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	pr := printer{w: out, echo: echo, tree: tree, json: jsonl}
	for _, src := range srcs {
		if err := pr.print(calculate(src, opts)); err != nil {
			log.Fatal(err)
		}
	}
}

func infile(inname string, std bool) (*os.File, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}

// readinput reads the expressions from the input selected by inname and std,
// closing it afterward unless it is stdin.
func readinput(inname string, std, lines bool) ([]string, error) {
	f, err := infile(inname, std)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}
	if f != os.Stdin {
		defer f.Close()
	}
	return readexprs(f, lines)
}

// readexprs reads expressions from r. If lines is true, each non-blank line is
// an expression; otherwise, all of r is one expression.
func readexprs(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return []string{string(b)}, nil
	}
	var v []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		if strings.TrimSpace(s.Text()) == "" {
			continue
		}
		v = append(v, s.Text())
	}
	return v, s.Err()
}
