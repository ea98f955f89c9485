package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"
)

//go:embed wordlist.txt
var embeddedWordList string

// Dictionary is an immutable sorted set of uppercase words.
type Dictionary struct {
	words []string
}

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
)

// Default returns the dictionary built from the embedded word list.
func Default() *Dictionary {
	defaultOnce.Do(func() {
		d, err := ReadDictionary(strings.NewReader(embeddedWordList))
		if err != nil {
			panic("embedded word list is invalid: " + err.Error())
		}
		defaultDict = d
	})
	return defaultDict
}

// NewDictionary builds a dictionary from a list of words. Words are upper-cased,
// deduplicated and must contain only the letters A-Z.
func NewDictionary(list []string) (*Dictionary, error) {
	out := make([]string, 0, len(list))
	for _, w := range list {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		for i := 0; i < len(w); i++ {
			if w[i] < 'A' || w[i] > 'Z' {
				return nil, fmt.Errorf("word %q contains invalid character %q", w, w[i])
			}
		}
		out = append(out, w)
	}
	slices.Sort(out)
	return &Dictionary{words: slices.Compact(out)}, nil
}

// ReadDictionary reads one word per line. Blank lines and lines starting with '#' are
// skipped.
func ReadDictionary(r io.Reader) (*Dictionary, error) {
	var list []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return NewDictionary(list)
}

// LoadDictionary reads a word list file. An empty path returns Default().
func LoadDictionary(path string) (*Dictionary, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return ReadDictionary(f)
}

// Contains reports whether word (uppercase) is in the dictionary. A nil dictionary
// contains nothing.
func (d *Dictionary) Contains(word string) bool {
	if d == nil {
		return false
	}
	_, found := slices.BinarySearch(d.words, word)
	return found
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

// Words returns the sorted word list. The slice must not be modified.
func (d *Dictionary) Words() []string {
	if d == nil {
		return nil
	}
	return d.words
}
