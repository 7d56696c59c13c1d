//go:build go1.18
// +build go1.18

package exprtree_test

import (
	"testing"

	"github.com/zephyrtronium/exprtree"
)

func FuzzParse(f *testing.F) {
	f.Add("2+3*4")
	f.Add("(2+3")
	f.Add("8-4-2)")
	f.Add("2(+3)")
	f.Fuzz(func(t *testing.T, s string) {
		n, err := exprtree.ParseString(s)
		if err != nil {
			if n != nil {
				t.Errorf("%q gave tree %v with error %v", s, n, err)
			}
			return
		}
		if n == nil {
			return
		}
		if n.Parent() != nil {
			t.Errorf("%q: root has a parent", s)
		}
		v := exprtree.Hierarchy(n)
		if len(v)%2 != 1 {
			t.Errorf("%q: hierarchy of %v has %d entries", s, n, len(v))
		}
		_ = n.String()
	})
}
