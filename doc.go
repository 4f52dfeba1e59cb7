/*
Package sexpr provides parsing, writing, and validation for S-expression
text.

It converts a source buffer in a single pass into a tree of typed nodes:
32-bit integers, floats (stored as float64), symbols, quoted strings, and
nested lists. The grammar is fully determined by one character of
lookahead, so there is no backtracking; the first malformed token aborts
the parse with a typed error carrying the offending slice and its byte
offset.

Reader example:

	nodes, err := sexpr.Parse([]byte(`(f "arg" 2 5)`), nil)
	if err != nil {
		// handle error
	}

Writer example:

	out, err := sexpr.Format(nodes, nil)
	if err != nil {
		// handle error
	}

Validator example:

	issues := sexpr.Validate(nodes, nil)
	if len(issues) != 0 {
		// handle validation issues
	}

Error inspection example:

	_, err := sexpr.Parse([]byte(`(1 2`), nil)
	if errors.Is(err, sexpr.ErrUnclosedList) {
		var perr *sexpr.ParseError
		_ = errors.As(err, &perr)
		_ = perr.Offset
	}
*/
package sexpr
