package services

import (
	"crypto/md5"
	"encoding/binary"
)

// StablePickIndex maps a string key to an index in [0, n). The same key
// always yields the same index, across processes and restarts, so rotating
// copy stays stable for a given place while still varying between places.
// The first four bytes of the key's md5 are read as a big-endian integer and
// reduced modulo n.
func StablePickIndex(key string, n int) int {
	if n <= 0 {
		return 0
	}
	sum := md5.Sum([]byte(key))
	return int(binary.BigEndian.Uint32(sum[:4]) % uint32(n))
}
