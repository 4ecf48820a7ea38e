package mtf

import (
	"slices"
)

const BYTE_LMT = 256

func recencyList() []byte {
	list := make([]byte, BYTE_LMT)
	for idx := 0; idx < BYTE_LMT; idx++ {
		list[idx] = byte(idx)
	}

	return list
}

func Encode(input []byte) []byte {
	list := recencyList()
	result := make([]byte, len(input))

	for idx, bt := range input {
		rank := slices.Index(list, bt)
		result[idx] = byte(rank)

		if rank > 0 {
			list = slices.Delete(list, rank, rank+1)
			list = slices.Insert(list, 0, bt)
		}
	}

	return result
}

func Decode(input []byte) []byte {
	list := recencyList()
	result := make([]byte, len(input))

	for idx, rank := range input {
		bt := list[rank]
		result[idx] = bt

		if rank > 0 {
			list = slices.Delete(list, int(rank), int(rank)+1)
			list = slices.Insert(list, 0, bt)
		}
	}

	return result
}
