// Package lines converts between the textual transport format (one 32-bit
// word per line, as ASCII '0'/'1' characters, most significant bit first)
// and machine words, and owns the output line-ending convention.
package lines
