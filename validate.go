package sexpr

import "strconv"

// IssueLevel represents severity of validation issue.
type IssueLevel string

const (
	// IssueError indicates a validation error.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a validation warning.
	IssueWarning IssueLevel = "warning"
)

// Issue represents a validation issue.
type Issue struct {
	Level   IssueLevel `json:"level" yaml:"level"`                   // Severity level
	Code    string     `json:"code,omitempty" yaml:"code,omitempty"` // Machine-readable code
	Message string     `json:"message" yaml:"message"`               // Issue message
	Path    string     `json:"path,omitempty" yaml:"path,omitempty"` // Dotted child-index path to the node
}

// Validate walks parsed trees and reports structural issues: nesting
// deeper than the configured limit, empty lists, symbols carrying control
// or non-ASCII bytes, and oversized atoms. Paths are dotted child indexes
// rooted at the top-level expression index (e.g. "0.2.1").
func Validate(nodes []Node, opt *ValidateOptions) []Issue {
	v := &validator{opt: opt.normalize()}
	for i, n := range nodes {
		v.walk(n, strconv.Itoa(i), 0)
	}

	return v.out
}

// validator accumulates issues during a tree walk.
type validator struct {
	opt ValidateOptions // Options for the validator
	out []Issue         // Accumulated issues
}

// walk validates a node and recurses into list children.
func (v *validator) walk(n Node, path string, depth int) {
	switch n.Kind {
	case KindList:
		if !v.opt.DisableDepthCheck && depth >= v.opt.MaxDepth {
			v.out = append(v.out, Issue{Level: IssueWarning, Code: "deep_nesting", Message: "list nested deeper than limit", Path: path})
			// Deeper levels would only repeat the same finding.
			return
		}

		if !v.opt.DisableEmptyListCheck && len(n.List) == 0 {
			v.out = append(v.out, Issue{Level: IssueWarning, Code: "empty_list", Message: "empty list", Path: path})
		}

		for i, c := range n.List {
			v.walk(c, path+"."+strconv.Itoa(i), depth+1)
		}

	case KindSymbol:
		if !v.opt.DisableSymbolCheck && !isPrintableASCII(n.Text) {
			v.out = append(v.out, Issue{Level: IssueWarning, Code: "symbol_charset", Message: "symbol contains control or non-ASCII bytes", Path: path})
		}
		v.checkAtomLength(n, path)

	case KindString:
		v.checkAtomLength(n, path)
	}
}

// checkAtomLength warns on atoms longer than the configured limit.
func (v *validator) checkAtomLength(n Node, path string) {
	if v.opt.MaxAtomLength <= 0 {
		return
	}

	if len(n.Text) > v.opt.MaxAtomLength {
		v.out = append(v.out, Issue{Level: IssueWarning, Code: "atom_too_long", Message: "atom exceeds length limit", Path: path})
	}
}

// isPrintableASCII checks if every byte of s is printable ASCII.
func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x21 || s[i] > 0x7e {
			return false
		}
	}

	return true
}
