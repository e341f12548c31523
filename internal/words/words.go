// Package words loads and samples the playable vocabulary.
package words

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
)

// WordLength is the puzzle word length accepted by the loaders.
const WordLength = 5

// Compact fallback set keeps the solver usable when no dataset is present.
//
//go:embed fallback.txt
var fallbackData []byte

// Fallback returns the embedded word list.
func Fallback() []string {
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(fallbackData))
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// Load reads the vocabulary from the CSV file at path, keeping lower-cased
// five-letter alphabetic entries from the first column and skipping a
// "word" header row. An empty path returns the embedded fallback list.
func Load(path string) ([]string, error) {
	if path == "" {
		return Fallback(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %q: %w", path, err)
	}
	defer f.Close()

	list, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("words: parse %q: %w", path, err)
	}
	if len(list) == 0 {
		return Fallback(), nil
	}
	return list, nil
}

func parse(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var out []string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) == 0 {
			continue
		}
		entry := strings.ToLower(strings.TrimSpace(row[0]))
		if entry == "word" {
			continue
		}
		if len(entry) == WordLength && alphabetic(entry) {
			out = append(out, entry)
		}
	}
	return out, nil
}

func alphabetic(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// Sample returns n distinct words drawn without replacement with a seeded
// generator. n larger than the list returns a permutation of the whole list.
func Sample(list []string, n int, seed int64) []string {
	if n > len(list) {
		n = len(list)
	}
	rng := rand.New(rand.NewSource(seed))
	out := make([]string, 0, n)
	for _, i := range rng.Perm(len(list))[:n] {
		out = append(out, list[i])
	}
	return out
}

// RandomAnswer picks one word with the given generator. A nil rng uses the
// shared package-level source.
func RandomAnswer(list []string, rng *rand.Rand) string {
	if len(list) == 0 {
		return ""
	}
	if rng == nil {
		return list[rand.Intn(len(list))]
	}
	return list[rng.Intn(len(list))]
}
