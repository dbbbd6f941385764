package internal

import (
	"iter"
)

// IterSeqConcat chains several iterator sequences into one, for decoding
// multiple input files as a single word stream.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}
