package agent

import "runtime"

// HostOS identifies the operating system an agent is probed or installed on.
// Values mirror runtime.GOOS so the type can represent any platform, but
// install tables only carry recipes for the three supported constants below.
type HostOS string

const (
	// OSLinux is a Linux host.
	OSLinux HostOS = "linux"
	// OSDarwin is a macOS host.
	OSDarwin HostOS = "darwin"
	// OSWindows is a Windows host.
	OSWindows HostOS = "windows"
)

// CurrentOS returns the HostOS of the running process.
func CurrentOS() HostOS {
	return HostOS(runtime.GOOS)
}

// IsWindows reports whether the host uses Windows path and shell conventions.
func (o HostOS) IsWindows() bool {
	return o == OSWindows
}

// Supported reports whether install recipes exist for this OS.
func (o HostOS) Supported() bool {
	switch o {
	case OSLinux, OSDarwin, OSWindows:
		return true
	default:
		return false
	}
}
