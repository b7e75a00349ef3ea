package recognition

import (
	"bufio"
	"io"
	"iter"
	"strings"
	"unicode/utf8"
)

// Vocabulary provides the words currently offered to the learner. A
// submission counts as correct only if it is closer to the intended word than
// to any other word of the vocabulary.
type Vocabulary interface {
	// Words yields every active word together with its character count.
	// The count is informational, for hosts that group or filter words by
	// length; a [Recognizer] only reads the words and derives their
	// geometry from the glyphs.
	Words() iter.Seq2[string, int]
}

// WordList is a [Vocabulary] of a fixed list of words.
type WordList []string

func (wl WordList) Words() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, w := range wl {
			if !yield(w, utf8.RuneCountInString(normalizeWord(w))) {
				return
			}
		}
	}
}

// ReadWordList reads one word per line. Lines may carry further
// tab-separated fields, like reading and meaning in card files; only the first
// field is used. Blank lines and lines starting with '#' are skipped.
func ReadWordList(r io.Reader) (WordList, error) {
	var wl WordList
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, _, _ := strings.Cut(line, "\t")
		wl = append(wl, strings.TrimSpace(word))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return wl, nil
}
