//go:build !windows

package platform

func initPlatform() {}
