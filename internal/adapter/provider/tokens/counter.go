// Package tokens measures prompt sizes with a BPE tokenizer.
package tokens

import (
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var knownEncodings = map[string]bool{
	"o200k_base":  true,
	"cl100k_base": true,
	"p50k_base":   true,
	"p50k_edit":   true,
	"r50k_base":   true,
}

// Counter counts tokens of a text with one BPE encoding. The encoding file
// is loaded on the first Count, so constructing a Counter never touches the
// network.
type Counter struct {
	encoding string
	load     func(string) (*tiktoken.Tiktoken, error)

	once    sync.Once
	enc     *tiktoken.Tiktoken
	loadErr error
}

// NewCounter checks that encoding (e.g. "cl100k_base") is one tiktoken-go
// knows and returns a Counter for it.
func NewCounter(encoding string) (*Counter, error) {
	return newCounter(encoding, tiktoken.GetEncoding)
}

func newCounter(encoding string, load func(string) (*tiktoken.Tiktoken, error)) (*Counter, error) {
	if !knownEncodings[encoding] {
		return nil, fmt.Errorf("tokens: unknown encoding %q", encoding)
	}
	return &Counter{encoding: encoding, load: load}, nil
}

// Count returns the number of tokens in text, or 0 when the encoding could
// not be loaded. See Err.
func (c *Counter) Count(text string) int {
	c.once.Do(func() {
		c.enc, c.loadErr = c.load(c.encoding)
		if c.loadErr != nil {
			c.loadErr = fmt.Errorf("tokens: load encoding %q: %w", c.encoding, c.loadErr)
		}
	})
	if c.enc == nil {
		return 0
	}
	return len(c.enc.Encode(text, nil, nil))
}

// Err reports the load failure seen by the first Count, if any.
func (c *Counter) Err() error {
	return c.loadErr
}
