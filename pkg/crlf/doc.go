// Package crlf implements buffered streaming of byte data with in-place
// line-ending conversion.
//
// The package moves an unbounded stream into (or out of) one contiguous
// buffer while rewriting line endings in a single pass, with no second
// allocation:
//
//   - ReadAll drains a stream into a growable buffer, optionally
//     expanding lone LF bytes to CRLF pairs as each chunk arrives.
//   - WriteAll flushes a buffer to a stream, optionally collapsing CRLF
//     pairs to lone LF bytes first, and chopping trailing NUL padding.
//
// # In-place rewriting
//
// Both directions rewrite the buffer through a pair of cursors over the
// same allocation. The write cursor never overtakes the read cursor:
// collapsing only ever shrinks the data, and expansion reserves enough
// headroom (the "hole") ahead of the write cursor to absorb the worst
// case where every input byte becomes two output bytes. Reallocation is
// amortized: the read increment doubles each time the buffer grows, so
// a stream of n bytes triggers O(log n) allocations.
//
// # Error model
//
// The error taxonomy is deliberately shallow. ReadAll treats a failed
// read exactly like end of stream: it stops and returns whatever was
// read so far. WriteAll reports false only when the sink returns an
// error; short writes are not retried. Callers that need to tell EOF
// from failure should not use this package.
//
// # NUL padding
//
// WriteAll discards a run of trailing 0x00 bytes before writing. The
// buffer may be over-allocated with unspecified trailing content from a
// previous larger use, and trailing NULs are assumed to be that slack.
// This is a heuristic: logical content that genuinely ends in NUL bytes
// is indistinguishable from padding and is trimmed too.
package crlf
