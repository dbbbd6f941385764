// Copyright 2024, Santiago von Straussburg

package disasm

import (
	"iter"
	"log"

	"github.com/svonstrauss/mipsdis/mips"
)

// Mode is the driver state.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_DECODING = Mode(0) // decoding
	MODE_DATA     = Mode(1) // data
)

// WordSize is the address step per word, in bytes.
const WordSize = 4

// Config fixes the memory layout for one run.
type Config struct {
	Base       uint32 // Address of the first word.
	Data       uint32 // Address at which the data section begins.
	Terminator string // Mnemonic that ends the instruction stream.
}

// DefaultConfig returns the conventional layout: code from address 496,
// data from address 700, BREAK terminator.
func DefaultConfig() Config {
	return Config{
		Base:       496,
		Data:       700,
		Terminator: "BREAK",
	}
}

// Disassembler converts one word sequence into output records. The table
// lookups behind it are stateless; the only state here is the address
// counter and the mode, so independent runs never interfere.
type Disassembler struct {
	Config

	Verbose bool // If set, logs every record as it is produced.

	addr uint32
	mode Mode
}

// New creates a disassembler at the start of its address space.
func New(config Config) (dis *Disassembler) {
	return &Disassembler{
		Config: config,
		addr:   config.Base,
	}
}

// Addr returns the address the next word will occupy.
func (dis *Disassembler) Addr() uint32 {
	return dis.addr
}

// Mode returns the current driver state.
func (dis *Disassembler) Mode() Mode {
	return dis.mode
}

// Step consumes one word and returns its record. The address advances by
// WordSize regardless of mode or recognition.
func (dis *Disassembler) Step(word mips.Word) (rec Record) {
	rec = Record{
		Addr: dis.addr,
		Word: word,
		Mode: dis.mode,
	}
	dis.addr += WordSize

	defer func() {
		if dis.Verbose {
			log.Printf("%v\t%v", dis.mode, &rec)
		}
	}()

	if dis.mode == MODE_DATA {
		return
	}

	inst, err := mips.Decode(word)

	switch {
	case inst.Mnemonic == dis.Terminator:
		// The terminator still decodes on its own line, even when it
		// lands exactly on the data threshold. Data begins with the
		// next word.
		dis.mode = MODE_DATA
	case rec.Addr >= dis.Data:
		dis.mode = MODE_DATA
		rec.Mode = MODE_DATA
		return
	}

	rec.Inst = &inst
	rec.Err = err

	return
}

// Run returns an iterator of records over an entire word sequence.
func (dis *Disassembler) Run(words iter.Seq[mips.Word]) iter.Seq[Record] {
	return func(yield func(rec Record) bool) {
		for word := range words {
			if !yield(dis.Step(word)) {
				return
			}
		}
	}
}
