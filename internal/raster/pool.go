package raster

import "sync"

// BufferPool recycles pixel buffers of one size.
type BufferPool struct {
	pool          sync.Pool
	width, height int
}

func NewBufferPool(width, height int) *BufferPool {
	return &BufferPool{
		width:  width,
		height: height,
		pool: sync.Pool{
			New: func() interface{} {
				return NewPixelBuffer(width, height)
			},
		},
	}
}

// Get returns a cleared buffer.
func (p *BufferPool) Get() *PixelBuffer {
	return p.pool.Get().(*PixelBuffer)
}

// Put clears b and returns it to the pool. Buffers of another size are
// dropped.
func (p *BufferPool) Put(b *PixelBuffer) {
	if b == nil || b.Width != p.width || b.Height != p.height {
		return
	}
	b.Clear()
	p.pool.Put(b)
}

var (
	poolsMu sync.Mutex
	pools   = map[[2]int]*BufferPool{}
)

// poolFor returns the shared pool for width x height buffers.
func poolFor(width, height int) *BufferPool {
	poolsMu.Lock()
	defer poolsMu.Unlock()
	key := [2]int{width, height}
	p, ok := pools[key]
	if !ok {
		p = NewBufferPool(width, height)
		pools[key] = p
	}
	return p
}
