package lines

import (
	"io"
)

// DefaultEnding is the reference output convention: a doubled carriage
// return before the newline.
const DefaultEnding = "\r\r\n"

// Writer emits output lines with a fixed separator between lines and no
// terminator after the last one. Each line is held back one write so the
// final line can be recognized; call Flush after the last WriteLine.
type Writer struct {
	Output io.Writer
	Ending string // Line separator; DefaultEnding when empty.

	pending string
	started bool
}

func (w *Writer) ending() string {
	if len(w.Ending) == 0 {
		return DefaultEnding
	}
	return w.Ending
}

// WriteLine queues one line for output.
func (w *Writer) WriteLine(text string) (err error) {
	if w.started {
		_, err = io.WriteString(w.Output, w.pending+w.ending())
		if err != nil {
			return
		}
	}

	w.pending = text
	w.started = true

	return
}

// Flush writes the held-back final line, with no ending after it.
func (w *Writer) Flush() (err error) {
	if !w.started {
		return
	}

	_, err = io.WriteString(w.Output, w.pending)
	w.pending = ""
	w.started = false

	return
}
