package sexpr

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"
)

// Encode writes nodes to writer, one top-level expression per line.
func Encode(w io.Writer, nodes []Node, opt *FormatOptions) error {
	fopt := opt.normalize()
	// Buffered writer reduces syscall overhead and short writes.
	bw := bufio.NewWriter(w)
	wr := &writer{w: bw, indent: fopt.Indent}
	for _, n := range nodes {
		if err := wr.writeNode(n); err != nil {
			return err
		}
		if err := wr.writeString("\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// EncodeFile writes nodes to a file.
func EncodeFile(path string, nodes []Node, opt *FormatOptions) error {
	b, err := Format(nodes, opt)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o600)
}

// Format renders nodes to bytes.
func Format(nodes []Node, opt *FormatOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, nodes, opt); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// String renders the node in compact single-line form.
func (n Node) String() string {
	var sb strings.Builder
	wr := &writer{w: &sb}
	_ = wr.writeNode(n)

	return sb.String()
}

// writer writes nodes to a writer.
type writer struct {
	w      io.Writer // Writer to write to
	indent string    // Indentation string, empty means compact output
	cache  []string  // Cache of indentation strings
	level  int       // Current nesting level
}

// writeNode writes a Node to the writer.
func (w *writer) writeNode(n Node) error {
	switch n.Kind {
	case KindInteger:
		return w.writeInt(n.Int)
	case KindFloat:
		return w.writeFloat(n.Float)
	case KindSymbol:
		return w.writeString(n.Text)
	case KindString:
		return w.writeQuoted(n.Text)
	case KindList:
		return w.writeList(n.List)
	default:
		return nil
	}
}

// writeList writes a list of nodes to the writer.
func (w *writer) writeList(elems []Node) error {
	if w.indent == "" {
		if err := w.writeString("("); err != nil {
			return err
		}
		for i, e := range elems {
			if i > 0 {
				if err := w.writeString(" "); err != nil {
					return err
				}
			}
			if err := w.writeNode(e); err != nil {
				return err
			}
		}

		return w.writeString(")")
	}

	// Multi-line form: each element on its own indented line.
	if err := w.writeString("("); err != nil {
		return err
	}
	w.level++
	for _, e := range elems {
		if err := w.writeString("\n"); err != nil {
			return err
		}
		if err := w.writeIndent(); err != nil {
			return err
		}
		if err := w.writeNode(e); err != nil {
			return err
		}
	}
	w.level--
	if err := w.writeString("\n"); err != nil {
		return err
	}
	if err := w.writeIndent(); err != nil {
		return err
	}

	return w.writeString(")")
}

// writeInt writes an integer value to the writer.
func (w *writer) writeInt(v int32) error {
	var buf [16]byte
	b := strconv.AppendInt(buf[:0], int64(v), 10)
	_, err := w.w.Write(b)

	return err
}

// writeFloat writes a float value to the writer. Exponent notation is
// avoided and a decimal point is forced so the output reads back as a
// float, not an integer.
func (w *writer) writeFloat(v float64) error {
	var buf [32]byte
	b := strconv.AppendFloat(buf[:0], v, 'f', -1, 64)
	if !bytes.ContainsRune(b, '.') {
		b = append(b, '.', '0')
	}
	_, err := w.w.Write(b)

	return err
}

// writeQuoted writes a quoted string to the writer.
func (w *writer) writeQuoted(s string) error {
	if err := w.writeString("\""); err != nil {
		return err
	}
	if err := w.writeString(s); err != nil {
		return err
	}

	return w.writeString("\"")
}

// writeString writes a string to the writer.
func (w *writer) writeString(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}

// writeIndent writes the current indentation level to the writer.
func (w *writer) writeIndent() error {
	if w.level <= 0 {
		return nil
	}

	// Cache repeated indentation strings per nesting level.
	return w.writeString(w.indentFor(w.level))
}

// indentFor returns the indentation string for a nesting level.
func (w *writer) indentFor(level int) string {
	if level <= 0 {
		return ""
	}

	if len(w.cache) <= level {
		w.cache = append(w.cache, make([]string, level-len(w.cache)+1)...)
	}
	if w.cache[level] == "" {
		w.cache[level] = strings.Repeat(w.indent, level)
	}

	return w.cache[level]
}
