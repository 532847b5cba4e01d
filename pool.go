package radical

import (
	"bytes"
	"sync"
)

const maxLineCap = 64 * 1024

var lineBufPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

func acquireLineBuf() *bytes.Buffer {
	return lineBufPool.Get().(*bytes.Buffer)
}

func releaseLineBuf(b *bytes.Buffer) {
	if b == nil {
		return
	}
	if b.Cap() > maxLineCap {
		return
	}
	b.Reset()
	lineBufPool.Put(b)
}
