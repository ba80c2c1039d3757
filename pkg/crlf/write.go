package crlf

import "io"

// WriteAll writes buf to w, optionally collapsing CRLF pairs to lone LF
// bytes first. The collapse rewrites buf in place with a trailing write
// cursor, so the caller's slice contents are modified.
//
// The collapse scan looks ahead one byte, so the final byte of the
// buffer is never inspected as a potential CR: it passes through
// unconditionally, and a lone CR at the very end of the buffer is never
// collapsed.
//
// Before writing, a run of trailing NUL bytes is chopped off as padding
// left over from over-allocation. Content that genuinely ends in NUL
// bytes is trimmed too; see the package documentation.
//
// A zero-length trimmed range is a no-op reported as success. Otherwise
// the whole range goes to w in one Write call; a short write is not
// retried. WriteAll reports false only when w returns an error.
func WriteAll(w io.Writer, buf []byte, collapse bool) bool {
	n := len(buf)
	if collapse {
		n = collapseCRLF(buf)
	}

	// chop trailing NUL padding
	for n > 0 && buf[n-1] == 0 {
		n--
	}
	if n == 0 {
		return true
	}

	_, err := w.Write(buf[:n])
	return err == nil
}

// collapseCRLF rewrites every CR LF pair in buf to a single LF, in
// place, and returns the new length. The write cursor trails the read
// cursor; output is never longer than input, so unread bytes are never
// clobbered.
func collapseCRLF(buf []byte) int {
	n := len(buf)
	out, in := 0, 0
	for rest := n; rest >= 2; rest-- {
		c := buf[in]
		in++
		if c == '\r' && buf[in] == '\n' {
			buf[out] = '\n'
			out++
			in++
			rest--
			n--
		} else {
			buf[out] = c
			out++
		}
	}
	// pass the last byte through
	if in < len(buf) {
		buf[out] = buf[in]
	}
	return n
}
