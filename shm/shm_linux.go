// SPDX-License-Identifier: Unlicense OR MIT

package shm

import (
	"errors"

	"golang.org/x/sys/unix"
)

func alloc(size int) (*Buffer, error) {
	fd, err := unix.MemfdCreate("webgl-pixels", unix.MFD_CLOEXEC)
	if err != nil {
		return nil, err
	}
	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		unix.Close(fd)
		return nil, err
	}
	data, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		unix.Close(fd)
		return nil, err
	}
	b := &Buffer{data: data, fd: fd}
	b.unmap = func() error {
		return errors.Join(unix.Munmap(data), unix.Close(fd))
	}
	return b, nil
}
