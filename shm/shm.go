// SPDX-License-Identifier: Unlicense OR MIT

// Package shm provides the memory buffers that carry pixel payloads between a
// context and its backend. On Linux the buffers are memfd mappings that can be
// handed to another process by file descriptor; elsewhere they live on the heap.
package shm

import (
	"errors"
	"fmt"
)

// ErrClosed is returned when accessing a Buffer after Close.
var ErrClosed = errors.New("shm: buffer closed")

// Buffer is a fixed-size shared byte region.
type Buffer struct {
	data   []byte
	fd     int
	closed bool
	unmap  func() error
}

// New allocates a zeroed buffer of size bytes.
func New(size int) (*Buffer, error) {
	if size < 0 {
		return nil, fmt.Errorf("shm: negative size %d", size)
	}
	if size == 0 {
		return &Buffer{fd: -1}, nil
	}
	b, err := alloc(size)
	if err != nil {
		return nil, fmt.Errorf("shm: allocating %d bytes: %w", size, err)
	}
	return b, nil
}

// FromBytes allocates a buffer holding a copy of data.
func FromBytes(data []byte) (*Buffer, error) {
	b, err := New(len(data))
	if err != nil {
		return nil, err
	}
	copy(b.data, data)
	return b, nil
}

// Bytes returns the mapped region. The slice is invalid after Close.
func (b *Buffer) Bytes() []byte {
	if b == nil || b.closed {
		return nil
	}
	return b.data
}

func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Fd returns the file descriptor backing the buffer, or -1 for buffers
// without one.
func (b *Buffer) Fd() int {
	return b.fd
}

// Close releases the buffer. Closing twice returns ErrClosed.
func (b *Buffer) Close() error {
	if b.closed {
		return ErrClosed
	}
	b.closed = true
	b.data = nil
	if b.unmap != nil {
		return b.unmap()
	}
	return nil
}
