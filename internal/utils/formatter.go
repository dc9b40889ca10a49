package utils

import (
	"bufio"
	"bytes"
	"go/format"
	"os"
	"path/filepath"
)

// FormatGoCode formats Go source code using the same logic as gofmt
func FormatGoCode(source []byte) ([]byte, error) {
	return format.Source(source)
}

// WriteGoFile formats content and writes it to filename. Nothing is
// written when the content is not valid Go.
func WriteGoFile(filename string, content []byte) error {
	formatted, err := FormatGoCode(content)
	if err != nil {
		return WrapProcessError(filepath.Base(filename), err)
	}
	if err := os.WriteFile(filename, formatted, 0o644); err != nil {
		return WrapWriteError(filename, err)
	}
	return nil
}

// HasHeader reports whether the first line of the file at path is header
func HasHeader(path, header string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return false, scanner.Err()
	}
	return bytes.Equal(bytes.TrimSpace(scanner.Bytes()), []byte(header)), nil
}
