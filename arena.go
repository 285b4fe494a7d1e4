package erract

import (
	"encoding/binary"
	"sync"
	"sync/atomic"
)

// Pair is a single key/value context item attached to an error.
type Pair struct {
	Key   string
	Value string
}

// arenaInitialCap is the initial byte capacity of a ContextArena buffer.
const arenaInitialCap = 8192

// nextArenaID issues process-unique arena identities. An id is never reused,
// so a stale handle can never accidentally match a different arena.
var nextArenaID atomic.Uint64

// ContextArena is a bump buffer for error context pairs, owned by a single
// worker goroutine.
//
// Each PushPairs call appends a length-prefixed encoding of its pairs and
// returns an (offset, count) region. Written data is immutable; memory is
// reclaimed only by an explicit Clear. Callers are responsible for clearing
// periodically (typically between units of work) to bound growth.
//
// The arena is not synchronized. The owning goroutine is the only one that
// may touch it; handles that escape to other goroutines resolve to empty
// rather than reading across the ownership boundary.
type ContextArena struct {
	id  uint64
	buf []byte
}

// NewContextArena creates an empty arena with a fresh identity.
func NewContextArena() *ContextArena {
	return &ContextArena{
		id:  nextArenaID.Add(1),
		buf: make([]byte, 0, arenaInitialCap),
	}
}

// ID returns the arena's process-unique identity.
func (a *ContextArena) ID() uint64 {
	return a.id
}

// Size returns the number of bytes currently committed to the arena.
func (a *ContextArena) Size() int {
	return len(a.buf)
}

// PushPairs appends the given pairs to the arena and returns the byte offset
// of the first pair and the pair count. It never fails; the buffer grows as
// needed.
//
// Encoding per pair: u32 little-endian key length, key bytes, u32
// little-endian value length, value bytes.
func (a *ContextArena) PushPairs(pairs []Pair) (offset, count int) {
	offset = len(a.buf)
	for _, p := range pairs {
		a.buf = binary.LittleEndian.AppendUint32(a.buf, uint32(len(p.Key)))
		a.buf = append(a.buf, p.Key...)
		a.buf = binary.LittleEndian.AppendUint32(a.buf, uint32(len(p.Value)))
		a.buf = append(a.buf, p.Value...)
	}
	return offset, len(pairs)
}

// GetPairs decodes count pairs starting at offset.
//
// If any bounds check would read past the committed buffer, decoding stops
// and the successfully decoded prefix is returned. This keeps reads through
// an (offset, count) captured before a Clear truncated rather than crashing.
func (a *ContextArena) GetPairs(offset, count int) []Pair {
	if count <= 0 || offset < 0 {
		return nil
	}
	pairs := make([]Pair, 0, count)
	pos := offset
	for i := 0; i < count; i++ {
		key, next, ok := a.readChunk(pos)
		if !ok {
			break
		}
		val, after, ok := a.readChunk(next)
		if !ok {
			break
		}
		pairs = append(pairs, Pair{Key: key, Value: val})
		pos = after
	}
	return pairs
}

// readChunk decodes one length-prefixed string at pos, returning the string
// and the position after it. ok is false if the chunk would run past the
// committed buffer.
func (a *ContextArena) readChunk(pos int) (s string, next int, ok bool) {
	if pos+4 > len(a.buf) {
		return "", 0, false
	}
	n := int(binary.LittleEndian.Uint32(a.buf[pos:]))
	pos += 4
	if pos+n > len(a.buf) {
		return "", 0, false
	}
	return string(a.buf[pos : pos+n]), pos + n, true
}

// Clear resets the arena to empty, retaining capacity. All previously issued
// offsets become stale; later reads through them return truncated or empty
// results, never corrupt data.
func (a *ContextArena) Clear() {
	a.buf = a.buf[:0]
}

// ArenaRegistry hands out per-worker arenas by name.
//
// Go has no goroutine-local storage, so arena ownership is explicit: a worker
// acquires its arena once, uses it for the worker's lifetime, and releases it
// on teardown. Arenas are created lazily on first Acquire. The registry lock
// covers only the name-to-arena map; the arenas themselves stay unsynchronized
// and must each be used by a single goroutine.
type ArenaRegistry struct {
	mu     sync.Mutex
	arenas map[string]*ContextArena
}

// NewArenaRegistry creates an empty registry.
func NewArenaRegistry() *ArenaRegistry {
	return &ArenaRegistry{arenas: make(map[string]*ContextArena)}
}

// Acquire returns the arena registered under worker, creating it if needed.
// Successive calls with the same name return the same arena.
func (r *ArenaRegistry) Acquire(worker string) *ContextArena {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.arenas[worker]
	if !ok {
		a = NewContextArena()
		r.arenas[worker] = a
	}
	return a
}

// Release drops the arena registered under worker. Handles into the dropped
// arena resolve to empty from then on; a later Acquire with the same name
// creates a fresh arena with a new identity.
func (r *ArenaRegistry) Release(worker string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.arenas, worker)
}

// Len returns the number of registered arenas.
func (r *ArenaRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.arenas)
}
