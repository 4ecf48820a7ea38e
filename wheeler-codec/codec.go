package wheelercodec

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"wheeler-compression/bwt"
	wcError "wheeler-compression/error"
	wcFile "wheeler-compression/file"
	"wheeler-compression/mtf"
	"wheeler-compression/reader"
	"wheeler-compression/writer"
)

const (
	BLOCK_SIZE                 = 4096
	TRANSFORMED_FILE_EXTENSION = "wheelc"
	RESTORED_FILE_EXTENSION    = "restored"
)

// Method selects the per block pipeline. The move to front stage rewrites
// the transformed column into recency ranks, both sides have to agree on it.
type Method int

const (
	WITHOUT_MTF Method = iota
	WITH_MTF
)

// Transform reads input in blocks of up to BLOCK_SIZE bytes, rotation sorts
// each block and writes one framed record per block to output. Only the
// final block of a stream may be short.
func Transform(input io.Reader, output io.Writer, method Method) error {
	if input == nil {
		return wcError.NewStreamError("no input stream to transform")
	}

	if output == nil {
		return wcError.NewStreamError("no output stream to write transformed blocks to")
	}

	blockWriter := writer.NewBlockWriter(output)

	block := make([]byte, BLOCK_SIZE)
	for {
		read, err := io.ReadFull(input, block)
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
				return nil
			case errors.Is(err, io.ErrUnexpectedEOF):
				// short read, this is the final block of the stream
			default:
				return err
			}
		}

		column, primaryIdx := bwt.Encode(block[:read])
		if method == WITH_MTF {
			column = mtf.Encode(column)
		}

		err = blockWriter.WriteBlock(primaryIdx, column)
		if err != nil {
			return err
		}

		if read < BLOCK_SIZE {
			return nil
		}
	}
}

// ReverseTransform reads framed records from input and writes the restored
// blocks to output. The method has to match the one used to transform.
func ReverseTransform(input io.Reader, output io.Writer, method Method) error {
	if input == nil {
		return wcError.NewStreamError("no input stream to restore")
	}

	if output == nil {
		return wcError.NewStreamError("no output stream to write restored blocks to")
	}

	blockReader := reader.NewBlockReader(input, BLOCK_SIZE)

	for blockReader.Next() {
		primaryIdx, column, err := blockReader.ReadBlock()
		if err != nil {
			return err
		}

		if column == nil {
			break
		}

		if method == WITH_MTF {
			column = mtf.Decode(column)
		}

		block, err := bwt.Decode(column, primaryIdx)
		if err != nil {
			return err
		}

		_, err = output.Write(block)
		if err != nil {
			return err
		}
	}

	return nil
}

func deleteFile(filename string) error {
	return os.Remove(filename)
}

func replaceExtension(fromFileName, newExtension string) string {
	ext := filepath.Ext(fromFileName)
	if ext == "" {
		return fmt.Sprintf("%s.%s", fromFileName, newExtension)
	}

	filenameSplit := strings.Split(fromFileName, ext)
	if len(filenameSplit) == 0 {
		return fmt.Sprintf("%s.%s", fromFileName, newExtension)
	}

	rawFileName := filenameSplit[0]

	return fmt.Sprintf("%s.%s", rawFileName, newExtension)
}

func makeTransformedFileName(fromFileName string) string {
	return replaceExtension(fromFileName, TRANSFORMED_FILE_EXTENSION)
}

func makeRestoredFileName(fromFileName string) string {
	return replaceExtension(fromFileName, RESTORED_FILE_EXTENSION)
}

// TransformFile transforms filename into a sibling file with the wheelc
// extension and returns the name it wrote. A failed removal of the original
// reports with INFO severity since the transformed file is already complete.
func TransformFile(filename string, method Method, removeOriginal bool) (string, error) {
	inFile, err := os.Open(filename)
	if err != nil {
		return "", wcError.NewStreamError(fmt.Sprintf("failed to open %s: %s", filename, err))
	}

	defer inFile.Close()

	transformedFileName := makeTransformedFileName(filename)

	if !wcFile.FileExists(transformedFileName) {
		if err := wcFile.CreateFile(transformedFileName); err != nil {
			return transformedFileName, wcError.NewStreamError(fmt.Sprintf("failed to create %s: %s", transformedFileName, err))
		}
	}

	outFile, err := wcFile.OpenFileWithWritePermissions(transformedFileName)
	if err != nil {
		return transformedFileName, wcError.NewStreamError(fmt.Sprintf("failed to open %s: %s", transformedFileName, err))
	}

	defer outFile.Close()

	err = Transform(inFile, outFile, method)
	if err != nil {
		return transformedFileName, err
	}

	if removeOriginal {
		err := deleteFile(filename)
		if err != nil {
			return transformedFileName, &wcError.CodecError{
				Severity: wcError.CODEC_ERROR_SEVERITY_INFO,
				Message:  fmt.Sprintf("transform succeeded but the original file could not be removed: %s", err),
			}
		}
	}

	return transformedFileName, nil
}

// RestoreFile reverses a transformed file. An empty outName derives the
// output from filename with the restored extension.
func RestoreFile(filename string, method Method, outName string) (string, error) {
	inFile, err := os.Open(filename)
	if err != nil {
		return "", wcError.NewStreamError(fmt.Sprintf("failed to open %s: %s", filename, err))
	}

	defer inFile.Close()

	restoredFileName := outName
	if restoredFileName == "" {
		restoredFileName = makeRestoredFileName(filename)
	}

	if !wcFile.FileExists(restoredFileName) {
		if err := wcFile.CreateFile(restoredFileName); err != nil {
			return restoredFileName, wcError.NewStreamError(fmt.Sprintf("failed to create %s: %s", restoredFileName, err))
		}
	}

	outFile, err := wcFile.OpenFileWithWritePermissions(restoredFileName)
	if err != nil {
		return restoredFileName, wcError.NewStreamError(fmt.Sprintf("failed to open %s: %s", restoredFileName, err))
	}

	defer outFile.Close()

	err = ReverseTransform(inFile, outFile, method)
	if err != nil {
		return restoredFileName, err
	}

	return restoredFileName, nil
}
