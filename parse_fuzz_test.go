package arith_test

import (
	"strings"
	"testing"

	"github.com/zephyrtronium/arith"
)

func FuzzParse(f *testing.F) {
	f.Add("2+3*4")
	f.Add("-2^2")
	f.Add("(1+2")
	f.Add("1 2")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := arith.Parse(strings.NewReader(s))
		if (a == nil) == (err == nil) {
			t.Errorf("parsing %q gave expression %v and error %v", s, a, err)
		}
	})
}
