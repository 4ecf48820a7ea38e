package bwt

import (
	"fmt"
	"slices"

	wcError "wheeler-compression/error"
)

const BYTE_LMT = 256

// Encode sorts every cyclic rotation of block and returns the last column
// of the sorted rotations together with the row holding the unrotated block.
func Encode(block []byte) ([]byte, int) {
	size := len(block)
	if size == 0 {
		return []byte{}, 0
	}

	counters := make([]int, BYTE_LMT)
	for _, bt := range block {
		counters[bt]++
	}

	offsets := make([]int, BYTE_LMT)
	for v := 1; v < BYTE_LMT; v++ {
		offsets[v] = offsets[v-1] + counters[v-1]
	}

	// two pass radix sort over leading byte pairs: bucket every rotation
	// by its second byte, then re-bucket that order by the first byte
	bySecond := make([]int, size)
	for idx := 0; idx < size-1; idx++ {
		bySecond[offsets[block[idx+1]]] = idx
		offsets[block[idx+1]]++
	}
	bySecond[offsets[block[0]]] = size - 1
	offsets[block[0]]++

	offsets[0] = 0
	for v := 1; v < BYTE_LMT; v++ {
		offsets[v] = offsets[v-1] + counters[v-1]
	}

	rotations := make([]int, size)
	for _, start := range bySecond {
		rotations[offsets[block[start]]] = start
		offsets[block[start]]++
	}

	// rotations sharing their first two bytes are still unordered, finish
	// each such run with a full cyclic comparison from the third byte on
	runStart := 0
	for runStart < size {
		runEnd := runStart + 1
		for runEnd < size && samePairPrefix(block, rotations[runStart], rotations[runEnd]) {
			runEnd++
		}

		if runEnd-runStart > 1 {
			slices.SortFunc(rotations[runStart:runEnd], func(a, b int) int {
				return compareRotations(block, a, b)
			})
		}

		runStart = runEnd
	}

	primaryIdx := 0
	last := make([]byte, size)
	for idx, start := range rotations {
		if start == 0 {
			primaryIdx = idx
			last[idx] = block[size-1]
			continue
		}

		last[idx] = block[start-1]
	}

	return last, primaryIdx
}

func samePairPrefix(block []byte, a, b int) bool {
	size := len(block)
	if block[a] != block[b] {
		return false
	}

	return block[(a+1)%size] == block[(b+1)%size]
}

func compareRotations(block []byte, a, b int) int {
	size := len(block)
	for k := 2; k < size; k++ {
		ca := block[(a+k)%size]
		cb := block[(b+k)%size]

		if ca != cb {
			if ca < cb {
				return -1
			}

			return 1
		}
	}

	// full cycles match, keep the earlier rotation first
	if a < b {
		return -1
	}

	if a > b {
		return 1
	}

	return 0
}

// Decode rebuilds the block that produced last by walking the
// last-to-first column mapping backwards from primaryIdx.
func Decode(last []byte, primaryIdx int) ([]byte, error) {
	size := len(last)
	if size == 0 {
		if primaryIdx != 0 {
			return nil, wcError.NewCorruptDataError(fmt.Sprintf("primary index %d for an empty block", primaryIdx))
		}

		return []byte{}, nil
	}

	if primaryIdx < 0 || primaryIdx >= size {
		return nil, wcError.NewCorruptDataError(fmt.Sprintf("primary index %d outside block of %d bytes", primaryIdx, size))
	}

	counters := make([]int, BYTE_LMT)
	predRank := make([]int, size)
	for idx, bt := range last {
		predRank[idx] = counters[bt]
		counters[bt]++
	}

	offsets := make([]int, BYTE_LMT)
	for v := 1; v < BYTE_LMT; v++ {
		offsets[v] = offsets[v-1] + counters[v-1]
	}

	decoded := make([]byte, size)
	pos := primaryIdx
	for idx := size - 1; idx >= 0; idx-- {
		bt := last[pos]
		decoded[idx] = bt
		pos = predRank[pos] + offsets[bt]
	}

	return decoded, nil
}
