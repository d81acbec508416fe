//go:build !linux

package terminal

// resetTerminalMode is a no-op where termios ioctls differ; Session.Close covers normal exits
func resetTerminalMode() {}
