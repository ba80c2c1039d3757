// Package codepage maps the CLI's code-page selection to a character
// encoding and converts stream bytes to and from UTF-8.
//
// The clipboard side of a transfer always carries UTF-8; ANSI and OEM
// describe the encoding of the standard input/output side. On Windows
// the active ANSI and OEM code pages are queried from the system; on
// other platforms they resolve to the US-locale defaults, Windows-1252
// and code page 437.
package codepage

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Codepage selects the byte encoding of the stream side of a transfer.
type Codepage int

const (
	// UTF8 passes bytes through unchanged. The default.
	UTF8 Codepage = iota

	// ANSI is the system ANSI code page (--acp).
	ANSI

	// OEM is the system OEM code page (--oem).
	OEM
)

func (cp Codepage) String() string {
	switch cp {
	case ANSI:
		return "ansi"
	case OEM:
		return "oem"
	default:
		return "utf-8"
	}
}

// Decode converts code-page bytes read from the stream into UTF-8.
func (cp Codepage) Decode(b []byte) ([]byte, error) {
	enc := cp.encoding()
	if enc == nil {
		return b, nil
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), b)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", cp, err)
	}
	return out, nil
}

// Encode converts UTF-8 into code-page bytes for the stream. Runes the
// code page cannot represent are substituted, not rejected, matching
// the behavior of the platform conversion routines.
func (cp Codepage) Encode(b []byte) ([]byte, error) {
	enc := cp.encoding()
	if enc == nil {
		return b, nil
	}
	out, _, err := transform.Bytes(encoding.ReplaceUnsupported(enc.NewEncoder()), b)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", cp, err)
	}
	return out, nil
}

// encoding returns the character map for cp, or nil for UTF-8.
func (cp Codepage) encoding() encoding.Encoding {
	switch cp {
	case ANSI:
		return fromNumber(ansiNumber(), charmap.Windows1252)
	case OEM:
		return fromNumber(oemNumber(), charmap.CodePage437)
	default:
		return nil
	}
}

// fromNumber resolves a Windows code-page number to its character map,
// falling back when the page is unknown or not byte-oriented.
func fromNumber(number uint32, fallback encoding.Encoding) encoding.Encoding {
	if enc, ok := codepages[number]; ok {
		return enc
	}
	return fallback
}

// codepages lists the byte-oriented code pages in common use as ANSI or
// OEM system pages.
var codepages = map[uint32]encoding.Encoding{
	437:  charmap.CodePage437,
	850:  charmap.CodePage850,
	852:  charmap.CodePage852,
	855:  charmap.CodePage855,
	858:  charmap.CodePage858,
	860:  charmap.CodePage860,
	862:  charmap.CodePage862,
	863:  charmap.CodePage863,
	865:  charmap.CodePage865,
	866:  charmap.CodePage866,
	874:  charmap.Windows874,
	1250: charmap.Windows1250,
	1251: charmap.Windows1251,
	1252: charmap.Windows1252,
	1253: charmap.Windows1253,
	1254: charmap.Windows1254,
	1255: charmap.Windows1255,
	1256: charmap.Windows1256,
	1257: charmap.Windows1257,
	1258: charmap.Windows1258,
}
