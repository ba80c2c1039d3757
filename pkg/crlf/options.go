package crlf

// defaultIncrement is the initial read size. It doubles each time the
// buffer grows.
const defaultIncrement = 2048

type config struct {
	increment int
}

// Option configures ReadAll.
type Option func(*config)

// Increment sets the initial read increment in bytes. Values below one
// are ignored.
//
// The default (2048) suits real streams; tests force tiny increments to
// exercise buffer growth and chunk-boundary handling.
func Increment(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.increment = n
		}
	}
}
