//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package listener

import "syscall"

// reuseControl is a no-op where SO_REUSEPORT is unavailable.
func reuseControl(network, address string, c syscall.RawConn) error {
	return nil
}
