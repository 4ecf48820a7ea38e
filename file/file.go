package wcFile

import (
	"errors"
	"io/fs"
	"os"
)

func FileExists(filename string) bool {
	_, err := os.Stat(filename)

	return !errors.Is(err, fs.ErrNotExist)
}

func CreateFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}

	return file.Close()
}

func OpenFileWithWritePermissions(filename string) (*os.File, error) {
	return os.OpenFile(filename, os.O_WRONLY|os.O_TRUNC, 0666)
}
