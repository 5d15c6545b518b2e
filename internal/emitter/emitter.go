// Package emitter provides the output side of the engine: committed text
// and preedit updates flow through the Output interface, so frontends and
// tests can substitute lightweight sinks.
package emitter

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Output is the operation set the engine needs to render text. SendBackspace
// retracts the given number of runes of previously sent, still-unflushed
// text; the engine uses it to replace the preedit in place.
type Output interface {
	SendText(text string) error
	SendBackspace(count int) error
	Flush() error
	Close() error
}

// Collector buffers emitted text in memory. Used by tests, batch
// translation, and as the backing store for interactive redraw.
type Collector struct {
	buf []rune
}

func NewCollector() *Collector {
	return &Collector{buf: make([]rune, 0, 64)}
}

func (c *Collector) SendText(text string) error {
	c.buf = append(c.buf, []rune(text)...)
	return nil
}

func (c *Collector) SendBackspace(count int) error {
	if count > len(c.buf) {
		count = len(c.buf)
	}
	c.buf = c.buf[:len(c.buf)-count]
	return nil
}

func (c *Collector) Flush() error { return nil }

func (c *Collector) Close() error { return nil }

func (c *Collector) String() string { return string(c.buf) }

// Reset discards the collected text.
func (c *Collector) Reset() { c.buf = c.buf[:0] }

var _ Output = (*Collector)(nil)

// Writer buffers emitted text and, on Flush, pushes it through an optional
// transform chain (NFC normalization, legacy EUC-KR encoding) into dst.
type Writer struct {
	dst io.Writer
	buf []rune
	tr  transform.Transformer
}

// WriterOptions selects the output transform chain.
type WriterOptions struct {
	// Encoding is "utf-8" (default) or "euc-kr".
	Encoding string
	// Normalize applies NFC before encoding.
	Normalize bool
}

func NewWriter(dst io.Writer, opts WriterOptions) (*Writer, error) {
	var chain []transform.Transformer
	if opts.Normalize {
		chain = append(chain, norm.NFC)
	}
	switch opts.Encoding {
	case "", "utf-8", "utf8":
	case "euc-kr", "euckr":
		chain = append(chain, korean.EUCKR.NewEncoder())
	default:
		return nil, fmt.Errorf("emitter: unsupported encoding %q", opts.Encoding)
	}

	w := &Writer{dst: dst, buf: make([]rune, 0, 64)}
	switch len(chain) {
	case 0:
	case 1:
		w.tr = chain[0]
	default:
		w.tr = transform.Chain(chain...)
	}
	return w, nil
}

func (w *Writer) SendText(text string) error {
	w.buf = append(w.buf, []rune(text)...)
	return nil
}

func (w *Writer) SendBackspace(count int) error {
	if count > len(w.buf) {
		count = len(w.buf)
	}
	w.buf = w.buf[:len(w.buf)-count]
	return nil
}

func (w *Writer) Flush() error {
	if len(w.buf) == 0 {
		return nil
	}
	text := string(w.buf)
	w.buf = w.buf[:0]
	if w.tr != nil {
		encoded, _, err := transform.String(w.tr, text)
		if err != nil {
			return fmt.Errorf("emitter: encode output: %w", err)
		}
		text = encoded
	}
	if _, err := io.WriteString(w.dst, text); err != nil {
		return fmt.Errorf("emitter: write output: %w", err)
	}
	return nil
}

func (w *Writer) Close() error {
	return w.Flush()
}

var _ Output = (*Writer)(nil)
