package internal

import (
	"iter"
)

// IterSeq2Concat yields every pair of each sequence, in argument order.
func IterSeq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, val := range seq {
				if !yield(key, val) {
					return
				}
			}
		}
	}
}

// IterSeq2Map converts each pair of seq with fn.
func IterSeq2Map[K1, V1, K2, V2 any](seq iter.Seq2[K1, V1], fn func(K1, V1) (K2, V2)) iter.Seq2[K2, V2] {
	return func(yield func(K2, V2) bool) {
		for key, val := range seq {
			if !yield(fn(key, val)) {
				return
			}
		}
	}
}
