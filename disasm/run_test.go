package disasm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/svonstrauss/mipsdis/lines"
)

// TestRunReference decodes a small program end to end, through the line
// scanner and the line writer, and compares the output byte for byte.
func TestRunReference(t *testing.T) {
	assert := assert.New(t)

	input := strings.Join([]string{
		"00100000000010100000000000000101", // ADDI R10, R0, #5
		"00000000001000100001100000100000", // ADD R3, R1, R2
		"00000000000000000000000000001101", // BREAK
		"00000000000000000000000000000101",
		"11111111111111111111111111111111",
	}, "\n")

	expected := strings.Join([]string{
		"001000 00000 01010 00000 00000 000101\t496\tADDI\tR10, R0, #5",
		"000000 00001 00010 00011 00000 100000\t500\tADD\tR3, R1, R2",
		"000000 00000 00000 00000 00000 001101\t504\tBREAK",
		"00000000000000000000000000000101      \t508\t5",
		"11111111111111111111111111111111      \t512\t-1",
	}, "\r\r\n")

	dis := New(DefaultConfig())

	var buf bytes.Buffer
	writer := &lines.Writer{Output: &buf}

	for line := range lines.Scan(strings.NewReader(input)) {
		assert.NoError(line.Err)
		rec := dis.Step(line.Word)
		assert.NoError(writer.WriteLine(rec.String()))
	}
	assert.NoError(writer.Flush())

	assert.Equal(expected, buf.String())
}
