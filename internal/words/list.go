package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed words.txt
var embeddedWords string

var ErrEmptyWordList = errors.New("word list is empty")

// Random is the source used to pick the hidden word.
type Random interface {
	IntN(n int) int
}

// LoadList reads one word per line from path, or the embedded list when path is empty.
// Words are trimmed and lower-cased; blank lines are skipped.
func LoadList(path string) ([]string, error) {
	if path == "" {
		return ParseList(strings.NewReader(embeddedWords))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer file.Close()

	list, err := ParseList(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return list, nil
}

func ParseList(r io.Reader) ([]string, error) {
	var list []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word != "" {
			list = append(list, word)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan word list: %w", err)
	}

	if len(list) == 0 {
		return nil, ErrEmptyWordList
	}

	return list, nil
}

// Choose picks one word uniformly.
func Choose(list []string, rng Random) string {
	return list[rng.IntN(len(list))]
}
