package sexpr

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		name  string
		nodes []Node
		want  string
	}{
		{"int", []Node{num(42)}, "42\n"},
		{"float", []Node{flt(-3.5)}, "-3.5\n"},
		{"float_whole_keeps_point", []Node{flt(2)}, "2.0\n"},
		{"float_no_exponent", []Node{flt(1e6)}, "1000000.0\n"},
		{"string", []Node{str("arg")}, "\"arg\"\n"},
		{"string_empty", []Node{str("")}, "\"\"\n"},
		{"symbol", []Node{sym("e^2*x/y")}, "e^2*x/y\n"},
		{"list", []Node{list(sym("f"), str("arg"), num(2), num(5))}, "(f \"arg\" 2 5)\n"},
		{"list_empty", []Node{list()}, "()\n"},
		{"nested", []Node{list(sym("a"), list(sym("b"), sym("c")))}, "(a (b c))\n"},
		{"multiple_top_level", []Node{num(1), num(2)}, "1\n2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Format(tt.nodes, nil)
			require.NoError(t, err)
			require.Equal(t, tt.want, string(out))
		})
	}
}

func TestFormatIndent(t *testing.T) {
	nodes := []Node{list(sym("a"), list(sym("b"), num(1)))}
	out, err := Format(nodes, &FormatOptions{Indent: "  "})
	require.NoError(t, err)

	want := `(
  a
  (
    b
    1
  )
)
`
	require.Equal(t, want, string(out))
}

func TestNodeString(t *testing.T) {
	n := list(list(sym("lambda"), list(sym("x")), list(sym("*"), sym("x"), sym("x"))), num(50))
	require.Equal(t, "((lambda (x) (* x x)) 50)", n.String())

	require.Equal(t, "42", num(42).String())
	require.Equal(t, `"a b"`, str("a b").String())
	require.Equal(t, "-0.25", flt(-0.25).String())
}

func TestRoundTrip(t *testing.T) {
	want, err := DecodeFile(filepath.Join("testdata", "config.sexp"), nil)
	require.NoError(t, err)

	out, err := Format(want, nil)
	require.NoError(t, err)
	got, err := Parse(out, nil)
	require.NoError(t, err)
	require.Equal(t, want, got)

	// Indented output must parse back to the same tree as well.
	out, err = Format(want, &FormatOptions{Indent: "    "})
	require.NoError(t, err)
	got, err = Parse(out, nil)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestRoundTripKindsPreserved(t *testing.T) {
	nodes := []Node{flt(2), flt(1e10), num(2), str("2"), sym("two")}
	out, err := Format(nodes, nil)
	require.NoError(t, err)
	got, err := Parse(out, nil)
	require.NoError(t, err)
	require.Equal(t, nodes, got)
}

func TestEncodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.sexp")
	nodes := []Node{list(sym("a"), num(1), flt(2.5))}

	require.NoError(t, EncodeFile(path, nodes, nil))
	got, err := DecodeFile(path, nil)
	require.NoError(t, err)
	require.Equal(t, nodes, got)
}
