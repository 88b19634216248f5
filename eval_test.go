package arith_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zephyrtronium/arith"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"num", "1", 1},
		{"decimal", "2.5", 2.5},
		{"leadingdot", ".5", 0.5},
		{"plus", "+3", 3},
		{"neg", "-3", -3},
		{"add", "4+5+6", 15},
		{"sub", "1-2-3", -4},
		{"mul", "4*5*6", 120},
		{"div", "10/4", 2.5},
		{"divassoc", "8/4/2", 1},
		{"mod", "7%3", 1},
		{"modneg", "-7%3", -1},
		{"moddecimal", "7.5%2", 1.5},
		{"precedence", "2+3*4", 14},
		{"parens", "(2+3)*4", 20},
		{"unary", "-3+5", 2},
		{"modtier", "10%4*2", 4},
		{"pow", "2^10", 1024},
		{"powright", "2^3^2", 512},
		{"negpow", "-2^2", -4},
		{"parennegpow", "(-2)^2", 4},
		{"negpowodd", "(-2)^3", -8},
		{"powneg", "2^-1", 0.5},
		{"powzero", "0^0", 1},
		{"zeropow", "0^2", 0},
		{"float", "1.5*4", 6},
		{"spaces", " 2  +\t3 * 4 ", 14},
	}
	ctx := arith.NewContext(arith.Prec(64))
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := arith.Parse(strings.NewReader(c.src))
			require.NoError(t, err, "parse %q", c.src)
			r := ctx.Eval(a)
			require.NoError(t, ctx.Err(), "evaluate %q", c.src)
			require.NotNil(t, r)
			f, _ := r.Float64()
			assert.Equal(t, c.want, f, "evaluating %q", c.src)
		})
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	cases := []struct {
		name string
		src  string
		msg  string
	}{
		{"div", "10/0", "division by zero"},
		{"divexpr", "1/(2-2)", "division by zero"},
		{"divdecimal", "1.5/0", "division by zero"},
		{"mod", "10%0", "modulo by zero"},
		{"nested", "1+10/0", "division by zero"},
		{"noshortcircuit", "0*(1/0)", "division by zero"},
	}
	ctx := arith.NewContext()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := arith.Parse(strings.NewReader(c.src))
			require.NoError(t, err, "parse %q", c.src)
			r := ctx.Eval(a)
			assert.Nil(t, r, "evaluating %q", c.src)
			var dz *arith.DivisionByZeroError
			require.ErrorAs(t, ctx.Err(), &dz, "evaluating %q", c.src)
			assert.Equal(t, c.msg, dz.Error())
		})
	}
}

func TestEvalDomainError(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"fracpow", "(-2)^0.5"},
		{"zeronegpow", "0^-1"},
	}
	ctx := arith.NewContext()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := arith.Parse(strings.NewReader(c.src))
			require.NoError(t, err, "parse %q", c.src)
			r := ctx.Eval(a)
			assert.Nil(t, r, "evaluating %q", c.src)
			var de *arith.DomainError
			require.ErrorAs(t, ctx.Err(), &de, "evaluating %q", c.src)
		})
	}
}

func TestEvalString(t *testing.T) {
	r, err := arith.EvalString("2+3*4")
	require.NoError(t, err)
	f, _ := r.Float64()
	assert.Equal(t, 14.0, f)

	_, err = arith.EvalString("(1+2")
	var be *arith.BracketError
	require.ErrorAs(t, err, &be)

	_, err = arith.EvalString("10/0")
	var dz *arith.DivisionByZeroError
	require.ErrorAs(t, err, &dz)
}

func TestEvalAfterError(t *testing.T) {
	// An evaluation error must not poison the context for later use.
	ctx := arith.NewContext()
	bad, err := arith.Parse(strings.NewReader("1+10/0"))
	require.NoError(t, err)
	require.Nil(t, ctx.Eval(bad))
	require.Error(t, ctx.Err())

	good, err := arith.Parse(strings.NewReader("2+2"))
	require.NoError(t, err)
	r := ctx.Eval(good)
	require.NoError(t, ctx.Err())
	require.NotNil(t, r)
	f, _ := r.Float64()
	assert.Equal(t, 4.0, f)
}

func TestPrec(t *testing.T) {
	r, err := arith.EvalString("1/3", arith.Prec(128))
	require.NoError(t, err)
	assert.Equal(t, uint(128), r.Prec())

	ctx := arith.NewContext(arith.Prec(64))
	assert.Equal(t, uint(64), ctx.Prec())
	assert.Equal(t, uint(96), ctx.Clone(arith.Prec(96)).Prec())
}

func TestErrorPositions(t *testing.T) {
	cases := []struct {
		name string
		src  string
		pos  int
	}{
		{"trailing", "1 2", 3},
		{"unclosed", "(1+2", 5},
		{"badunary", "1+*2", 3},
		{"stray", "12)", 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := arith.Parse(strings.NewReader(c.src))
			var ie arith.InputError
			require.ErrorAs(t, err, &ie, "parse %q", c.src)
			assert.Equal(t, c.pos, ie.Pos(), "position of error from %q", c.src)
		})
	}
}

func Example() {
	r, err := arith.EvalString("(2+3)*4")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(r)
	// Output: 20
}

func BenchmarkEval(b *testing.B) {
	cases := []struct {
		name string
		src  string
	}{
		{"nums", "2+3+4"},
		{"precedence", "2+3*4-5/6"},
		{"pow", "2^3^2"},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			ctx := arith.NewContext(arith.Prec(64))
			a, err := arith.Parse(strings.NewReader(c.src))
			if err != nil {
				b.Fatal(err)
			}
			for i := 0; i < b.N; i++ {
				ctx.Clone().Eval(a)
			}
		})
	}
}
