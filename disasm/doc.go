// Package disasm walks an ordered sequence of machine words and produces
// one output record per word.
//
// The walk is a two-state machine. Words decode as instructions until the
// terminator mnemonic has been emitted or the address reaches the data
// threshold, after which every remaining word renders as a raw data value.
// The transition is one way: data mode never reverts. The address counter
// starts at the configured base and advances one word size per word,
// regardless of mode or recognition.
package disasm
