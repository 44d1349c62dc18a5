// Package pool loads and normalizes word lists. A pool is the set of
// candidate words that seeds every slot's domain.
package pool

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/domino14/crossfill/cache"
	"github.com/domino14/crossfill/config"
)

var ErrEmptyPool = errors.New("word list contains no words")

// A Pool is an immutable, deduplicated, upper-cased word list.
type Pool struct {
	words       []string
	set         map[string]bool
	fingerprint uint64
}

// FromReader reads a line-per-word list. Words are upper-cased and
// deduplicated; blank lines are skipped.
func FromReader(r io.Reader) (*Pool, error) {
	p := &Pool{set: make(map[string]bool)}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		if !p.set[word] {
			p.set[word] = true
			p.words = append(p.words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(p.words) == 0 {
		return nil, ErrEmptyPool
	}
	sort.Strings(p.words)
	p.fingerprint = xxhash.Sum64String(strings.Join(p.words, "\n"))
	return p, nil
}

// FromFile reads a word list from a file. Lists are usually UTF-8 but
// some older ones are in ISO-8859-1; sniff and convert.
func FromFile(filename string) (*Pool, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var r io.Reader = bytes.NewReader(data)
	if !utf8.Valid(data) {
		log.Debug().Str("filename", filename).Msg("word list not utf8, trying iso-8859-1")
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	return FromReader(r)
}

func poolLoadFunc(cfg *config.Config, key string) (interface{}, error) {
	return FromFile(key)
}

// Load loads a word list through the global object cache.
func Load(cfg *config.Config, filename string) (*Pool, error) {
	obj, err := cache.Load(cfg, filename, poolLoadFunc)
	if err != nil {
		return nil, err
	}
	ret, ok := obj.(*Pool)
	if !ok {
		return nil, errors.New("could not read pool from file")
	}
	return ret, nil
}

// Words returns the pool's words, sorted. Callers must not modify the
// returned slice.
func (p *Pool) Words() []string {
	return p.words
}

// CopyWords returns a fresh copy of the word slice, for callers that
// want to shuffle or truncate it.
func (p *Pool) CopyWords() []string {
	cp := make([]string, len(p.words))
	copy(cp, p.words)
	return cp
}

func (p *Pool) Has(word string) bool {
	return p.set[word]
}

func (p *Pool) Len() int {
	return len(p.words)
}

// Fingerprint is a stable hash of the normalized pool contents, used
// to identify the pool in batch logs.
func (p *Pool) Fingerprint() uint64 {
	return p.fingerprint
}
