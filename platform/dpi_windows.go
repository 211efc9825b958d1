//go:build windows

package platform

import (
	"golang.org/x/sys/windows"
)

var (
	shcore = windows.NewLazySystemDLL("shcore.dll")
	user32 = windows.NewLazySystemDLL("user32.dll")

	procSetProcessDpiAwareness = shcore.NewProc("SetProcessDpiAwareness")
	procSetProcessDPIAware     = user32.NewProc("SetProcessDPIAware")
)

const processPerMonitorDpiAware = 2

// initPlatform opts into per-monitor DPI awareness so picked coordinates are
// physical pixels, falling back to the legacy call on older systems.
func initPlatform() {
	if err := procSetProcessDpiAwareness.Find(); err == nil {
		if r, _, _ := procSetProcessDpiAwareness.Call(processPerMonitorDpiAware); r == 0 {
			return
		}
	}
	if err := procSetProcessDPIAware.Find(); err == nil {
		procSetProcessDPIAware.Call()
	}
}
