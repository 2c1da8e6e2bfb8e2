// +build !debug

package debug

// Log is a no-op unless the binary is built with the debug tag.
func Log(msg interface{}) {}
