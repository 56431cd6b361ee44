// Package corpus reads candidate sentences, one per line.
package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/weit-project/eit-toolkit/lib/text"
)

const maxLineLength = 1024 * 1024

var ErrEmpty = errors.New("corpus is empty")

// Load reads every path in order and returns the cleaned, non-empty lines.
// A sentence is identified by its index in the result.
func Load(paths ...string) ([]string, error) {
	var sentences []string
	for _, path := range paths {
		before := len(sentences)
		if err := loadFile(path, func(sentence string) error {
			sentences = append(sentences, sentence)
			return nil
		}); err != nil {
			return nil, err
		}
		log.Info().Str("path", path).Int("sentences", len(sentences)-before).Msg("loaded corpus file")
	}
	if len(sentences) == 0 {
		return nil, ErrEmpty
	}
	return sentences, nil
}

func loadFile(path string, onSentence func(string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open corpus %s: %w", path, err)
	}
	defer file.Close()

	if err := Read(file, onSentence); err != nil {
		return fmt.Errorf("read corpus %s: %w", path, err)
	}
	return nil
}

// Read calls onSentence for every line of r that is not empty after cleaning.
func Read(r io.Reader, onSentence func(string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		sentence := text.NormalizeSentence(scanner.Text())
		if sentence == "" {
			continue
		}
		if err := onSentence(sentence); err != nil {
			return err
		}
	}
	return scanner.Err()
}
