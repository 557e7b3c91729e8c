// Package hash provides xxHash64 identifiers for dataset provenance.
package hash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 of the given bytes.
// Used to fingerprint raw capture-file contents.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
