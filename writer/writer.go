package writer

import (
	"encoding/binary"
	"io"
)

const PRIMARY_INDEX_SIZE = 4

// BlockWriter frames transformed blocks as a little endian primary index
// followed by the block's last column. Only the final block of a stream may
// be shorter than the block size, so records carry no length field.
type BlockWriter struct {
	writer io.Writer
}

func NewBlockWriter(w io.Writer) *BlockWriter {
	return &BlockWriter{
		writer: w,
	}
}

func (b *BlockWriter) WriteBlock(primaryIdx int, column []byte) error {
	header := make([]byte, PRIMARY_INDEX_SIZE)
	binary.LittleEndian.PutUint32(header, uint32(primaryIdx))

	_, err := b.writer.Write(header)
	if err != nil {
		return err
	}

	_, err = b.writer.Write(column)

	return err
}
