//go:build !unix

package allocator

import "github.com/cockroachdb/errors"

func lockMemory(buf []byte) error {
	return errors.New("memory locking is not supported on this platform")
}

func unlockMemory(buf []byte) error {
	return nil
}
