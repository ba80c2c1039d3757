//go:build !windows

package codepage

// Off Windows there is no system code page to query; resolve to the
// US-locale defaults.

func ansiNumber() uint32 { return 1252 }

func oemNumber() uint32 { return 437 }
