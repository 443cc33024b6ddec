package cjson

import (
	"bytes"
	"sync"
)

// Buffer pool for encode calls that do not reuse a Config-owned buffer.
var encodeBufferPool = sync.Pool{
	New: func() any {
		buf := &bytes.Buffer{}
		buf.Grow(defaultBufferSize)
		return buf
	},
}

func getEncodeBuffer() *bytes.Buffer {
	buf := encodeBufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// putEncodeBuffer returns a buffer to the pool. Buffers that shrank below or
// grew beyond the pooling bounds are dropped.
func putEncodeBuffer(buf *bytes.Buffer) {
	if buf == nil {
		return
	}
	if c := buf.Cap(); c >= minPoolBufferSize && c <= maxPoolBufferSize {
		buf.Reset()
		encodeBufferPool.Put(buf)
	}
}
