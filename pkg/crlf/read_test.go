package crlf

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func TestReadAll_ExactCopy(t *testing.T) {
	input := []byte("plain bytes, no conversion\x00\xff\r\n")
	got := ReadAll(bytes.NewReader(input), false)
	if !bytes.Equal(got, input) {
		t.Errorf("got %q, want %q", got, input)
	}
}

func TestReadAll_Empty(t *testing.T) {
	got := ReadAll(bytes.NewReader(nil), false)
	if len(got) != 0 {
		t.Errorf("expected empty buffer, got %d bytes", len(got))
	}

	got = ReadAll(bytes.NewReader(nil), true)
	if len(got) != 0 {
		t.Errorf("expected empty buffer with expansion, got %d bytes", len(got))
	}
}

func TestReadAll_ExpandLoneLF(t *testing.T) {
	got := ReadAll(strings.NewReader("a\nb\n"), true)
	want := "a\r\nb\r\n"
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if len(got) != 6 {
		t.Errorf("got length %d, want 6", len(got))
	}
}

func TestReadAll_ExistingCRLFNotDoubled(t *testing.T) {
	got := ReadAll(strings.NewReader("a\r\nb\n"), true)
	want := "a\r\nb\r\n"
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReadAll_LeadingLF(t *testing.T) {
	// the previous-byte state starts as a non-CR sentinel, so an LF at
	// the very start of the stream expands
	got := ReadAll(strings.NewReader("\n"), true)
	if string(got) != "\r\n" {
		t.Errorf("got %q, want %q", got, "\r\n")
	}
}

func TestReadAll_LoneCRPassesThrough(t *testing.T) {
	got := ReadAll(strings.NewReader("a\rb"), true)
	if string(got) != "a\rb" {
		t.Errorf("got %q, want %q", got, "a\rb")
	}
}

func TestReadAll_ExpandLengthLaw(t *testing.T) {
	// for CR-free input, expansion adds exactly one byte per LF
	input := "line one\nline two\nno trailing newline"
	got := ReadAll(strings.NewReader(input), true)
	want := len(input) + strings.Count(input, "\n")
	if len(got) != want {
		t.Errorf("got length %d, want %d", len(got), want)
	}
}

func TestReadAll_CRLFSplitAcrossChunks(t *testing.T) {
	// one byte per Read call forces every chunk boundary, including the
	// one falling exactly between a CR and its following LF
	got := ReadAll(iotest.OneByteReader(strings.NewReader("a\r\nb\n")), true)
	want := "a\r\nb\r\n"
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReadAll_CRLFSplitAtIncrementBoundary(t *testing.T) {
	// with Increment(1) the first read is two bytes, so the buffer's own
	// read boundary falls exactly between the CR and its LF: "a\r" | "\n..."
	for incr := 1; incr <= 4; incr++ {
		got := ReadAll(strings.NewReader("a\r\nb\n"), true, Increment(incr))
		want := "a\r\nb\r\n"
		if string(got) != want {
			t.Errorf("Increment(%d): got %q, want %q", incr, got, want)
		}
	}
}

func TestReadAll_GrowthAcrossManyChunks(t *testing.T) {
	// enough data to force several buffer growths from a tiny increment
	var in bytes.Buffer
	var want bytes.Buffer
	for i := 0; i < 5000; i++ {
		in.WriteString("x\n")
		want.WriteString("x\r\n")
	}
	got := ReadAll(&in, true, Increment(1))
	if !bytes.Equal(got, want.Bytes()) {
		t.Fatalf("expanded output differs: got %d bytes, want %d", len(got), want.Len())
	}
}

func TestReadAll_AllLFWorstCase(t *testing.T) {
	// every input byte doubles; the hole must absorb all of it
	input := strings.Repeat("\n", 4096)
	got := ReadAll(strings.NewReader(input), true, Increment(3))
	if len(got) != 2*len(input) {
		t.Fatalf("got length %d, want %d", len(got), 2*len(input))
	}
	for i := 0; i < len(got); i += 2 {
		if got[i] != '\r' || got[i+1] != '\n' {
			t.Fatalf("byte pair at %d is %q, want CRLF", i, got[i:i+2])
		}
	}
}

func TestReadAll_ErrorTreatedAsEOF(t *testing.T) {
	// a failing reader ends the stream; whatever was read is returned
	r := io.MultiReader(
		strings.NewReader("partial"),
		iotest.ErrReader(errors.New("boom")),
	)
	got := ReadAll(r, false)
	if string(got) != "partial" {
		t.Errorf("got %q, want %q", got, "partial")
	}
}

func TestReadAll_DataWithError(t *testing.T) {
	// a reader returning data and an error in the same call keeps the data
	r := iotest.DataErrReader(strings.NewReader("a\nb"))
	got := ReadAll(r, true)
	if string(got) != "a\r\nb" {
		t.Errorf("got %q, want %q", got, "a\r\nb")
	}
}
