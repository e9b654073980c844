// Package logs reads slices of the daemon log file for the CLI. Reads are
// offset-based so a caller can poll for new lines without rereading the file.
package logs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// Result holds the lines read and the offset to resume from.
type Result struct {
	Lines  []string
	Offset int64
}

// Tail reads from the log file at path. A negative offset returns up to limit
// trailing lines; a non-negative offset returns everything written after it.
// A missing file yields an empty result at offset zero.
func Tail(path string, offset int64, limit int) (Result, error) {
	if offset < 0 {
		return readLast(path, limit)
	}
	return readAfter(path, offset)
}

func readLast(path string, limit int) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{}, nil
		}
		return Result{}, fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	if limit <= 0 {
		end, err := file.Seek(0, io.SeekEnd)
		if err != nil {
			return Result{}, fmt.Errorf("seek log file: %w", err)
		}
		return Result{Offset: end}, nil
	}

	scanner := newLineScanner(file)
	ring := make([]string, limit)
	count, idx := 0, 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % limit
		if count < limit {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return Result{}, fmt.Errorf("read log file: %w", err)
	}

	end, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		return Result{}, fmt.Errorf("seek log file: %w", err)
	}

	lines := make([]string, count)
	if count == limit {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%limit]
		}
	} else {
		copy(lines, ring[:count])
	}
	return Result{Lines: lines, Offset: end}, nil
}

func readAfter(path string, offset int64) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{}, nil
		}
		return Result{}, fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return Result{}, fmt.Errorf("stat log file: %w", err)
	}
	if offset > info.Size() {
		// File was truncated or rotated; restart from the beginning.
		offset = 0
	}
	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return Result{}, fmt.Errorf("seek log file: %w", err)
	}

	scanner := newLineScanner(file)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return Result{}, fmt.Errorf("read log file: %w", err)
	}

	end, err := file.Seek(0, io.SeekCurrent)
	if err != nil {
		return Result{}, fmt.Errorf("determine log offset: %w", err)
	}
	return Result{Lines: lines, Offset: end}, nil
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return scanner
}
