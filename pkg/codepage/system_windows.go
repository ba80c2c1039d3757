//go:build windows

package codepage

import "golang.org/x/sys/windows"

var (
	kernel32   = windows.NewLazySystemDLL("kernel32.dll")
	procGetOEM = kernel32.NewProc("GetOEMCP")
)

// ansiNumber returns the active ANSI code page.
func ansiNumber() uint32 {
	return windows.GetACP()
}

// oemNumber returns the active OEM code page.
func oemNumber() uint32 {
	// not wrapped by x/sys/windows
	cp, _, _ := procGetOEM.Call()
	return uint32(cp)
}
