// Package state serializes parameter values for the host's save and
// reload cycle. Entries are keyed by the host-visible parameter hash, the
// same identifier the host itself persists, so state survives reordering
// of the declared parameters.
package state

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/justyntemme/clapgo/pkg/framework/param"
)

const version uint32 = 1

var magic = [6]byte{'C', 'L', 'A', 'P', 'G', 'O'}

// Save writes the registry's current values and the bypass flag to w.
func Save(w io.Writer, registry *param.Registry, bypassed bool) error {
	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, version); err != nil {
		return err
	}

	var bypassByte uint8
	if bypassed {
		bypassByte = 1
	}
	if err := binary.Write(w, binary.LittleEndian, bypassByte); err != nil {
		return err
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(registry.Count())); err != nil {
		return err
	}

	var saveErr error
	registry.Each(func(hash uint32, p *param.Parameter) {
		if saveErr != nil {
			return
		}
		if err := binary.Write(w, binary.LittleEndian, hash); err != nil {
			saveErr = err
			return
		}
		saveErr = binary.Write(w, binary.LittleEndian, p.NormalizedValue())
	})
	return saveErr
}

// Load reads state written by Save back into the registry's handles and
// returns the bypass flag. Hashes not present in the registry are skipped,
// so newer saved states load into older plugin builds.
func Load(r io.Reader, registry *param.Registry) (bypassed bool, err error) {
	var header [6]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return false, err
	}
	if header != magic {
		return false, fmt.Errorf("state: unrecognized format")
	}

	var v uint32
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return false, err
	}
	if v > version {
		return false, fmt.Errorf("state: version %d is newer than supported version %d", v, version)
	}

	var bypassByte uint8
	if err := binary.Read(r, binary.LittleEndian, &bypassByte); err != nil {
		return false, err
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return false, err
	}

	for i := uint32(0); i < count; i++ {
		var hash uint32
		if err := binary.Read(r, binary.LittleEndian, &hash); err != nil {
			return false, err
		}
		var value float64
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return false, err
		}
		if p, ok := registry.Lookup(hash); ok {
			p.SetNormalizedValue(value)
		}
		// Unknown hashes are ignored for forward compatibility.
	}

	return bypassByte != 0, nil
}
