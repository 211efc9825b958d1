// Package platform holds process-level OS setup.
package platform

// Init applies platform-specific process setup. Failures are ignored; the
// clicker works without any of it.
func Init() {
	initPlatform()
}
