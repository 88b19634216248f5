package arith

import (
	"strings"
	"testing"
)

func TestTree(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "leaf",
			src:  "7",
			want: "" +
				"└┬────┐\n" +
				" │  7 │\n" +
				" └────┘\n",
		},
		{
			name: "wide-leaf",
			src:  "3.14",
			want: "" +
				"└┬──────┐\n" +
				" │ 3.14 │\n" +
				" └──────┘\n",
		},
		{
			name: "unary",
			src:  "-2",
			want: "" +
				"└┬────┐\n" +
				" │  - │\n" +
				" └──┬─┘\n" +
				"    └┬────┐\n" +
				"     │  2 │\n" +
				"     └────┘\n",
		},
		{
			name: "binary",
			src:  "2+3*4",
			want: "" +
				"└┬────┐\n" +
				" │  + │\n" +
				" └──┬─┘\n" +
				"    ├┬────┐\n" +
				"    ││  2 │\n" +
				"    │└────┘\n" +
				"    └┬────┐\n" +
				"     │  * │\n" +
				"     └──┬─┘\n" +
				"        ├┬────┐\n" +
				"        ││  3 │\n" +
				"        │└────┘\n" +
				"        └┬────┐\n" +
				"         │  4 │\n" +
				"         └────┘\n",
		},
		{
			name: "left-nested",
			src:  "1-2-3",
			want: "" +
				"└┬────┐\n" +
				" │  - │\n" +
				" └──┬─┘\n" +
				"    ├┬────┐\n" +
				"    ││  - │\n" +
				"    │└──┬─┘\n" +
				"    │   ├┬────┐\n" +
				"    │   ││  1 │\n" +
				"    │   │└────┘\n" +
				"    │   └┬────┐\n" +
				"    │    │  2 │\n" +
				"    │    └────┘\n" +
				"    └┬────┐\n" +
				"     │  3 │\n" +
				"     └────┘\n",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(strings.NewReader(c.src))
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if got := a.Tree(); got != c.want {
				t.Errorf("wrong tree for %q:\ngot:\n%s\nwant:\n%s", c.src, got, c.want)
			}
		})
	}
}
