// +build !assert

package debug

// Assert is a no-op unless the binary is built with the assert tag.
func Assert(cond bool, msg interface{}) {}
