package reader

import (
	"encoding/binary"
	"errors"
	"io"

	wcError "wheeler-compression/error"
)

const PRIMARY_INDEX_SIZE = 4

// BlockReader walks a stream of framed blocks. A record is a little endian
// primary index followed by up to blockSize column bytes, and only the final
// record of a stream may carry a short column.
type BlockReader struct {
	reader    io.Reader
	blockSize int
	finished  bool
}

func NewBlockReader(reader io.Reader, blockSize int) *BlockReader {
	return &BlockReader{
		reader:    reader,
		blockSize: blockSize,
	}
}

func (b *BlockReader) Next() bool {
	if b.finished {
		return false
	}

	return true
}

// ReadBlock returns the next primary index and column. A nil column with a
// nil error means the stream ended cleanly on a record boundary.
func (b *BlockReader) ReadBlock() (int, []byte, error) {
	header := make([]byte, PRIMARY_INDEX_SIZE)
	_, err := io.ReadFull(b.reader, header)
	if err != nil {
		switch {
		case errors.Is(err, io.EOF):
			b.finished = true
			return 0, nil, nil
		case errors.Is(err, io.ErrUnexpectedEOF):
			b.finished = true
			return 0, nil, wcError.NewCorruptDataError("stream ended inside a primary index")
		default:
			return 0, nil, err
		}
	}

	primaryIdx := int(binary.LittleEndian.Uint32(header))

	column := make([]byte, b.blockSize)
	read, err := io.ReadFull(b.reader, column)
	if err != nil {
		switch {
		case errors.Is(err, io.EOF):
			b.finished = true
			return 0, nil, wcError.NewCorruptDataError("primary index with no column bytes after it")
		case errors.Is(err, io.ErrUnexpectedEOF):
			// a short column is fine here, it is the final block of the stream
			b.finished = true
			return primaryIdx, column[:read], nil
		default:
			return 0, nil, err
		}
	}

	return primaryIdx, column, nil
}
