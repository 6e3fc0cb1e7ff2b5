package param

import (
	"fmt"
	"hash/fnv"
)

// BypassID is the string identifier reserved for the bypass parameter the
// wrapper synthesizes itself. Plugins must not declare it.
const BypassID = "bypass"

// HashID computes the stable 32-bit identifier the host sees for a string
// parameter ID. Hosts persist these across save and reload, so the hash
// must be identical across runs, processes and plugin versions.
func HashID(id string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(id))
	return h.Sum32()
}

// BypassHash returns the hash of the reserved bypass ID.
func BypassHash() uint32 {
	return HashID(BypassID)
}

// Registry is the immutable mapping between host-visible parameter hashes
// and the plugin's parameter handles. It is built once at instance
// construction and is safe to read from any thread afterwards.
type Registry struct {
	hashes   []uint32 // declaration order
	byHash   map[uint32]*Parameter
	defaults map[uint32]float64
	hashByID map[string]uint32
}

// NewRegistry builds a registry from the plugin's declared parameters.
// ids fixes the enumeration order presented to the host; every entry must
// exist in byID. The current normalized value of each handle is cached as
// its default, so handles must be at their defaults when this runs.
//
// Construction fails when a plugin declares the reserved bypass ID, when
// two IDs are declared twice, or when two IDs hash to the same value
// (including the bypass hash) - all programmer errors in the declared
// parameter set.
func NewRegistry(ids []string, byID map[string]*Parameter) (*Registry, error) {
	r := &Registry{
		hashes:   make([]uint32, 0, len(ids)),
		byHash:   make(map[uint32]*Parameter, len(ids)),
		defaults: make(map[uint32]float64, len(ids)),
		hashByID: make(map[string]uint32, len(ids)),
	}

	bypassHash := BypassHash()
	for _, id := range ids {
		if id == BypassID {
			return nil, fmt.Errorf("param: %q is reserved for the wrapper's own bypass parameter", BypassID)
		}
		p, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("param: declared ID %q has no parameter", id)
		}

		hash := HashID(id)
		if hash == bypassHash {
			return nil, fmt.Errorf("param: ID %q collides with the bypass parameter hash", id)
		}
		if prev, collision := r.byHash[hash]; collision {
			return nil, fmt.Errorf("param: IDs %q and %q collide on hash %#x", prev.ID, id, hash)
		}

		r.hashes = append(r.hashes, hash)
		r.byHash[hash] = p
		r.defaults[hash] = p.NormalizedValue()
		r.hashByID[id] = hash
	}

	return r, nil
}

// Lookup returns the handle for a host-visible hash.
func (r *Registry) Lookup(hash uint32) (*Parameter, bool) {
	p, ok := r.byHash[hash]
	return p, ok
}

// Hashes returns the parameter hashes in declaration order. Callers must
// not modify the returned slice.
func (r *Registry) Hashes() []uint32 {
	return r.hashes
}

// Count returns the number of declared parameters, excluding the
// synthesized bypass entry.
func (r *Registry) Count() int {
	return len(r.hashes)
}

// DefaultNormalized returns the cached default normalized value for a
// hash.
func (r *Registry) DefaultNormalized(hash uint32) (float64, bool) {
	v, ok := r.defaults[hash]
	return v, ok
}

// HashFor returns the hash of a declared string ID, for debug logging and
// state handling.
func (r *Registry) HashFor(id string) (uint32, bool) {
	h, ok := r.hashByID[id]
	return h, ok
}

// Each calls fn for every parameter in declaration order.
func (r *Registry) Each(fn func(hash uint32, p *Parameter)) {
	for _, hash := range r.hashes {
		fn(hash, r.byHash[hash])
	}
}
