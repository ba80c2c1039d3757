package crlf

// buffer is one contiguous growable allocation partitioned into three
// zones:
//
//	[ done | hole | tail ]
//	        ^write  ^read
//
// done holds finalized output bytes. hole is reserved headroom between
// the write cursor and the read cursor, sized so that the in-place
// LF to CRLF rewrite of the next chunk can never overrun not-yet-read
// input. tail is free space at the end for the next raw read.
//
// Invariants, checked by the tests:
//
//   - the write cursor never overtakes the read cursor (hole >= 0)
//   - after reserve, hole+tail covers the next read plus its worst-case
//     expansion, and with expansion enabled hole >= incr >= next read
//   - when expansion is disabled the hole stays empty and reads land
//     directly behind done
type buffer struct {
	buf    []byte
	done   int  // finalized bytes at the front
	hole   int  // headroom between the cursors
	tail   int  // free bytes at the end
	incr   int  // next read size, doubles when the buffer grows
	expand bool // rewrite lone LF to CRLF while filling
	prev   byte // last input byte seen, carried across chunk boundaries
}

func newBuffer(increment int, expand bool) *buffer {
	return &buffer{incr: increment, expand: expand}
}

// reserve makes room for the next read of up to b.incr bytes plus its
// worst-case one-to-two byte expansion. If the hole and tail together
// cannot cover that, the increment doubles and the allocation grows;
// only the done zone survives a grow, the hole and tail hold no data.
// With expansion enabled the hole is then widened out of the tail until
// it covers a full read.
func (b *buffer) reserve() {
	want := b.incr
	if b.expand {
		want += b.incr
	}
	if b.hole+b.tail < want {
		b.incr += b.incr
		b.tail += want + want
		grown := make([]byte, b.done+b.hole+b.tail)
		copy(grown, b.buf[:b.done])
		b.buf = grown
	}
	if b.expand && b.hole < b.incr {
		b.tail -= b.incr - b.hole
		b.hole = b.incr
	}
}

// window returns the range the next raw read fills. It begins at the
// read cursor and is b.incr bytes long; reserve guarantees it fits.
func (b *buffer) window() []byte {
	in := b.done + b.hole
	return b.buf[in : in+b.incr]
}

// commit finalizes n freshly read bytes from the window, applying the
// LF to CRLF rewrite in place when enabled. Every emitted CR shrinks
// the hole by one; an LF already preceded by a CR passes through
// unchanged, so existing CRLF pairs are never doubled. b.prev carries
// the trailing byte of the previous chunk so a CR ending one chunk
// suppresses expansion of an LF starting the next.
func (b *buffer) commit(n int) {
	b.tail -= n
	if !b.expand {
		// hole is zero, the bytes already sit behind done
		b.done += n
		return
	}
	in := b.done + b.hole
	out := b.done
	for _, c := range b.buf[in : in+n] {
		if b.prev == '\r' || c != '\n' {
			b.buf[out] = c
			out++
		} else {
			b.buf[out] = '\r'
			b.buf[out+1] = '\n'
			out += 2
			b.hole--
		}
		b.prev = c
	}
	b.done = out
}

// bytes returns the finalized content. The backing array may extend
// beyond the returned length; those bytes are unspecified.
func (b *buffer) bytes() []byte {
	return b.buf[:b.done]
}
