package stats

import (
	"bytes"
	"math"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// BlockStats describes one buffer. Histogram keys are byte values, so for a
// move to front encoded buffer they are recency ranks.
type BlockStats struct {
	Size          int
	DistinctBytes int
	Entropy       float64
	Runs          int
	LongestRun    int
	Histogram     map[int]int
	RunLengths    map[int]int
}

// RankZeroShare is the share of zero bytes, which for a move to front
// encoded buffer is the share of symbols repeating their predecessor.
func (bs BlockStats) RankZeroShare() float64 {
	if bs.Size == 0 {
		return 0
	}

	return float64(bs.Histogram[0]) / float64(bs.Size)
}

func (bs *BlockStats) recordRun(length int) {
	bs.RunLengths[length]++
	bs.Runs++

	if length > bs.LongestRun {
		bs.LongestRun = length
	}
}

func Analyze(input []byte) BlockStats {
	blockStats := BlockStats{
		Size:       len(input),
		Histogram:  map[int]int{},
		RunLengths: map[int]int{},
	}

	for _, bt := range input {
		blockStats.Histogram[int(bt)]++
	}

	blockStats.DistinctBytes = len(blockStats.Histogram)

	currRunLength := 0
	runByte := byte(0)
	for idx, bt := range input {
		if runByte != bt {
			if idx != 0 {
				blockStats.recordRun(currRunLength)
			}

			currRunLength = 0
			runByte = bt
		}

		currRunLength++
	}

	if currRunLength != 0 {
		blockStats.recordRun(currRunLength)
	}

	blockStats.Entropy = shannonEntropy(blockStats.Histogram, blockStats.Size)

	return blockStats
}

func shannonEntropy(histogram map[int]int, size int) float64 {
	if size == 0 {
		return 0
	}

	entropy := 0.0
	for _, count := range histogram {
		if count == 0 {
			continue
		}

		p := float64(count) / float64(size)
		entropy -= p * math.Log2(p)
	}

	return entropy
}

// SizeProbe holds the sizes a buffer compresses to with two general purpose
// compressors. The probes only measure how well a buffer would compress, the
// codec itself never runs an entropy stage.
type SizeProbe struct {
	Raw  int
	Zstd int
	Lz4  int
}

func CompressedSizes(input []byte) (SizeProbe, error) {
	probe := SizeProbe{Raw: len(input)}
	if len(input) == 0 {
		return probe, nil
	}

	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	if err != nil {
		return probe, err
	}

	if _, err := enc.Write(input); err != nil {
		enc.Close()
		return probe, err
	}

	if err := enc.Close(); err != nil {
		return probe, err
	}

	probe.Zstd = buf.Len()

	compressed := make([]byte, lz4.CompressBlockBound(len(input)))
	written, err := lz4.CompressBlock(input, compressed, nil)
	if err != nil {
		return probe, err
	}

	probe.Lz4 = written
	if written == 0 {
		// an incompressible buffer would be stored raw
		probe.Lz4 = len(input)
	}

	return probe, nil
}
