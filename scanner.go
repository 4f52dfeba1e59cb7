package sexpr

// stopFunc reports whether token scanning should stop before b.
type stopFunc func(b byte) bool

// All delimiters are ASCII, so byte-wise scanning is safe for UTF-8 input:
// continuation bytes of multi-byte runes never collide with the stop sets.

// skipSpace returns s without its leading whitespace. All-whitespace input
// yields the empty string.
func skipSpace(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	return s[i:]
}

// scanToken splits s at the first byte satisfying stop. The returned token
// is the longest prefix whose bytes all fail stop; rest begins at the
// stopping byte. If stop never fires the whole input is the token and rest
// is empty, including the single-byte case.
func scanToken(s string, stop stopFunc) (token, rest string) {
	for i := 0; i < len(s); i++ {
		if stop(s[i]) {
			return s[:i], s[i:]
		}
	}

	return s, ""
}

// isSpace checks if a byte is whitespace.
func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// isDigit checks if a byte is a decimal digit.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// stopNumber ends a numeric token at the first byte that is not a digit,
// '.', or '-'.
func stopNumber(b byte) bool {
	return !isDigit(b) && b != '.' && b != '-'
}

// stopSymbol ends a symbol at whitespace or a reserved delimiter.
func stopSymbol(b byte) bool {
	return isSpace(b) || b == '(' || b == ')' || b == '"'
}

// stopQuote ends string content at the closing quote.
func stopQuote(b byte) bool {
	return b == '"'
}
