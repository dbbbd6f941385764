package lines

import (
	"bufio"
	"io"
	"iter"
	"strings"

	"github.com/svonstrauss/mipsdis/mips"
)

// WordBits is the required line length for one word.
const WordBits = 32

// Line is one non-blank input line. When Err is set the line did not
// parse and Word is zero.
type Line struct {
	No   int
	Text string
	Word mips.Word
	Err  error
}

// ParseWord parses a line of exactly WordBits ASCII bits.
func ParseWord(text string) (word mips.Word, err error) {
	if len(text) != WordBits {
		err = ErrLineLength(len(text))
		return
	}

	for _, ch := range []byte(text) {
		word <<= 1
		switch ch {
		case '0':
		case '1':
			word |= 1
		default:
			word = 0
			err = ErrLineChar(ch)
			return
		}
	}

	return
}

// Scan yields one Line per non-blank input line, trimmed of surrounding
// whitespace. Malformed lines are yielded with Err set so the caller can
// choose to flag or abort; scanning itself always continues to the next
// line.
func Scan(input io.Reader) iter.Seq[Line] {
	return func(yield func(line Line) bool) {
		scanner := bufio.NewScanner(input)

		lineno := 0
		for scanner.Scan() {
			lineno++

			text := strings.TrimSpace(scanner.Text())
			if len(text) == 0 {
				continue
			}

			line := Line{No: lineno, Text: text}
			line.Word, line.Err = ParseWord(text)
			if line.Err != nil {
				line.Err = &ErrLine{No: lineno, Text: text, Err: line.Err}
			}

			if !yield(line) {
				return
			}
		}
	}
}
