//go:build !debug

package debug

func Log(msg interface{}, args ...any) {}
