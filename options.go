package sexpr

// ParseOptions controls parsing behavior.
type ParseOptions struct {
	// DisableEmptyLists rejects "()" instead of producing a zero-element
	// list. The stray ')' then reaches the symbol parser and the parse
	// fails with ErrEmptySymbol.
	DisableEmptyLists bool
	// MaxDepth bounds list nesting; input nested deeper fails with
	// ErrTooDeep instead of growing the call stack without limit.
	// Zero means unlimited.
	MaxDepth int
}

// FormatOptions controls writer formatting.
type FormatOptions struct {
	// Indent switches lists to multi-line output, using the given string
	// per nesting level. Empty keeps each expression on one line with
	// single spaces between elements.
	Indent string
}

// ValidateOptions controls validation rules.
type ValidateOptions struct {
	// MaxDepth is the nesting depth beyond which a warning is reported
	// (default is 64).
	MaxDepth int
	// MaxAtomLength warns on symbol or string atoms longer than this.
	// Zero disables the check.
	MaxAtomLength int
	// DisableDepthCheck disables the nesting depth warning.
	DisableDepthCheck bool
	// DisableEmptyListCheck disables warnings for zero-element lists.
	DisableEmptyListCheck bool
	// DisableSymbolCheck disables warnings for control or non-ASCII bytes
	// in symbols.
	DisableSymbolCheck bool
}

// normalize normalizes the ParseOptions.
func (o *ParseOptions) normalize() ParseOptions {
	if o == nil {
		return ParseOptions{}
	}

	return *o
}

// normalize normalizes the FormatOptions.
func (o *FormatOptions) normalize() FormatOptions {
	if o == nil {
		return FormatOptions{}
	}

	return *o
}

// normalize normalizes the ValidateOptions.
func (o *ValidateOptions) normalize() ValidateOptions {
	if o == nil {
		return ValidateOptions{MaxDepth: 64}
	}

	out := *o
	if out.MaxDepth == 0 {
		out.MaxDepth = 64
	}

	return out
}
