package handler

import (
	"bytes"
	"sync"
)

// Buffer sizes for response encoding. A building list for a busy colony or a
// full star snapshot lands well inside the initial size; anything grown past
// the retain limit is dropped instead of pinned in the pool.
const (
	responseBufferSize      = 2 << 10
	responseBufferMaxRetain = 256 << 10
)

// bufferPool hands out encoding buffers and refuses to keep oversized ones
type bufferPool struct {
	pool      sync.Pool
	maxRetain int
}

func newBufferPool(size, maxRetain int) *bufferPool {
	return &bufferPool{
		pool: sync.Pool{
			New: func() any {
				return bytes.NewBuffer(make([]byte, 0, size))
			},
		},
		maxRetain: maxRetain,
	}
}

func (p *bufferPool) get() *bytes.Buffer {
	return p.pool.Get().(*bytes.Buffer)
}

// put resets buf and returns it unless it outgrew the retain limit
func (p *bufferPool) put(buf *bytes.Buffer) bool {
	if buf.Cap() > p.maxRetain {
		return false
	}
	buf.Reset()
	p.pool.Put(buf)
	return true
}

var responseBuffers = newBufferPool(responseBufferSize, responseBufferMaxRetain)
