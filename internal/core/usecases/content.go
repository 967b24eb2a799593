// internal/core/usecases/content.go
package usecases

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"flatsource/internal/core/domain"
)

// readSource reads a whole file as UTF-8. Invalid byte sequences become
// U+FFFD instead of failing the read.
func readSource(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &domain.FileError{Op: domain.FileOpRead, Source: path, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(transform.NewReader(f, unicode.UTF8.NewDecoder()))
	if err != nil {
		return "", &domain.FileError{Op: domain.FileOpRead, Source: path, Err: err}
	}
	return string(data), nil
}

// writeOutput writes the header, a blank line and the content, then closes f.
func writeOutput(f *os.File, source, header, content string) error {
	bw := bufio.NewWriter(f)
	_, err := bw.WriteString(header)
	if err == nil {
		_, err = bw.WriteString("\n\n")
	}
	if err == nil {
		_, err = bw.WriteString(content)
	}
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return &domain.FileError{Op: domain.FileOpWrite, Source: source, Dest: f.Name(), Err: err}
	}
	return nil
}
