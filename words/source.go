package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrSource is wrapped by every error a Source returns when its backing
// resource cannot be opened or read.
var ErrSource = errors.New("words: source unavailable")

// Source produces normalized words: trimmed, uppercased, empty lines dropped.
//
// Words materializes the entire sequence; a failed call returns no words.
// A Source may be asked again after a failure (retry), but never resumes a
// partially read stream.
type Source interface {
	Words() ([]string, error)
}

// Normalize trims surrounding whitespace and uppercases w.
func Normalize(w string) string {
	return strings.ToUpper(strings.TrimSpace(w))
}

// File returns a Source reading one word per line from the file at path.
func File(path string) Source { return fileSource(path) }

type fileSource string

// Words opens and scans the file. Open and read errors wrap ErrSource.
func (p fileSource) Words() ([]string, error) {
	f, err := os.Open(string(p))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSource, err)
	}
	defer f.Close()

	out, err := scan(f)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrSource, string(p), err)
	}

	return out, nil
}

// Reader returns a Source over r. The reader is consumed by the first call
// to Words; later calls see whatever r yields then.
func Reader(r io.Reader) Source { return readerSource{r: r} }

type readerSource struct{ r io.Reader }

func (s readerSource) Words() ([]string, error) {
	if s.r == nil {
		return nil, fmt.Errorf("%w: nil reader", ErrSource)
	}
	out, err := scan(s.r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSource, err)
	}

	return out, nil
}

// Slice returns a Source over an in-memory word list; entries are
// normalized the same way file lines are.
func Slice(ws ...string) Source { return sliceSource(ws) }

type sliceSource []string

func (s sliceSource) Words() ([]string, error) {
	out := make([]string, 0, len(s))
	for _, w := range s {
		if w = Normalize(w); w != "" {
			out = append(out, w)
		}
	}

	return out, nil
}

// scan reads r line by line, normalizing and dropping empty lines.
func scan(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if w := Normalize(sc.Text()); w != "" {
			out = append(out, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
