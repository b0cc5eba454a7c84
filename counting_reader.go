package javaio

import "io"

// CountingReader wraps a reader and tracks how many bytes have been
// consumed through it, which is how callers (and our tests) verify
// that each decode operation advances the source by exactly its
// format-mandated width. Errors pass through unwrapped: io.ReadFull
// classifies io.EOF by identity.
type CountingReader struct {
	r io.Reader
	n int
}

func (c *CountingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += n
	return n, err
}

func (c *CountingReader) Count() int {
	return c.n
}

func NewCountingReader(r io.Reader) *CountingReader {
	return &CountingReader{r: r}
}
