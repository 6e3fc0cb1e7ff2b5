package plugin

import "github.com/google/uuid"

// Info contains plugin metadata.
type Info struct {
	ID      string // reverse-DNS identifier, e.g. "com.example.mygain"
	Name    string
	Version string
	Vendor  string
	URL     string
}

// uidNamespace salts the UID derivation so clapgo plugin IDs never
// collide with other SHA1-derived UUID schemes. Changing it would change
// every plugin's identity; it is fixed forever.
var uidNamespace = uuid.MustParse("7c90fbd4-32f0-4c6a-9d68-3f40ad4bd1b8")

// UID derives the stable 16-byte class identifier from the string ID.
// The same ID always yields the same UID across runs and machines.
func (i Info) UID() [16]byte {
	return [16]byte(uuid.NewSHA1(uidNamespace, []byte(i.ID)))
}
