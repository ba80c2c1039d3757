package crlf

import "io"

// ReadAll reads r until end of stream into one contiguous buffer and
// returns its finalized content.
//
// With expand false the result is an exact byte-for-byte copy of the
// input. With expand true, every LF byte not immediately preceded by a
// CR is rewritten in place to the two-byte sequence CR LF as each chunk
// arrives; an LF that already follows a CR passes through unchanged.
//
// A read error is indistinguishable from end of stream at this layer:
// ReadAll stops and returns whatever was successfully read. There is no
// error return.
//
// The returned slice aliases an allocation that may extend beyond its
// length; bytes past the length are unspecified, not zero-filled.
func ReadAll(r io.Reader, expand bool, opts ...Option) []byte {
	cfg := &config{increment: defaultIncrement}
	for _, opt := range opts {
		opt(cfg)
	}

	b := newBuffer(cfg.increment, expand)
	for {
		b.reserve()
		n, err := r.Read(b.window())
		if n == 0 {
			// EOF and read failures alike end the stream
			break
		}
		b.commit(n)
		if err != nil {
			break
		}
	}
	return b.bytes()
}
