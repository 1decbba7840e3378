// Package source defines the narrow line-reader interface the lexer
// consumes, plus two trivial implementations (string and file backed).
package source

import (
	"bufio"
	"os"
	"strings"
)

// Reader supplies an ordered sequence of text lines to the lexer.
type Reader interface {
	ReadLines() ([]string, error)
}

// StringReader splits an in-memory string into lines, preserving empty
// trailing lines the way a file with a final newline would.
type StringReader struct {
	Text string
}

func NewStringReader(text string) *StringReader {
	return &StringReader{Text: text}
}

func (r *StringReader) ReadLines() ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(r.Text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// FileReader reads lines from a file on disk.
type FileReader struct {
	Path string
}

func NewFileReader(path string) *FileReader {
	return &FileReader{Path: path}
}

func (r *FileReader) ReadLines() ([]string, error) {
	f, err := os.Open(r.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
