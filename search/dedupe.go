package search

import (
	"github.com/dchest/siphash"
	lru "github.com/opencoff/golang-lru"

	"github.com/opencoff/go-owenhash/encode"
	"github.com/opencoff/go-owenhash/scramble"
)

// shapeCacheSize bounds how many recently-seen candidate shapes the
// deduper remembers. Shapes falling out of the LRU are simply re-scored if
// they recur, which is safe (just wasted work), never incorrect.
const shapeCacheSize = 4096

// Deduper recognizes candidate programs whose encoded *shape* (spec.md
// §4.7) was scored recently, so the driver can skip a redundant
// stats.Measure call. Grounded on opencoff-go-chd's DBReader, which uses
// exactly this ARC-cache-of-recent-keys shape to avoid repeated
// (there: disk, here: measurement) work.
type Deduper struct {
	cache *lru.ARCCache
	key0  uint64
	key1  uint64
}

// NewDeduper creates a Deduper. The siphash key is drawn once per search
// run; it only needs to disperse shape-encodings into the cache's internal
// buckets evenly, not resist adversarial input.
func NewDeduper(k0, k1 uint64) (*Deduper, error) {
	c, err := lru.NewARC(shapeCacheSize)
	if err != nil {
		return nil, err
	}
	return &Deduper{cache: c, key0: k0, key1: k1}, nil
}

// SeenRecently reports whether a program with the same shape as p was
// offered to this Deduper before, and records p's shape as seen either way.
func (d *Deduper) SeenRecently(p scramble.Program) bool {
	hi, lo := encode.Pack(p)
	key := d.shapeKey(hi, lo)

	if _, ok := d.cache.Get(key); ok {
		return true
	}
	d.cache.Add(key, struct{}{})
	return false
}

func (d *Deduper) shapeKey(hi, lo uint64) uint64 {
	var buf [16]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(hi >> uint(8*i))
		buf[8+i] = byte(lo >> uint(8*i))
	}
	h := siphash.New(sipKeyBytes(d.key0, d.key1))
	h.Write(buf[:])
	return h.Sum64()
}

func sipKeyBytes(k0, k1 uint64) []byte {
	var b [16]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(k0 >> uint(8*i))
		b[8+i] = byte(k1 >> uint(8*i))
	}
	return b[:]
}
