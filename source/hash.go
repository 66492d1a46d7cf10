package source

import (
	"github.com/minio/highwayhash"
)

var hashKey = []byte("fmtfix-content-fingerprint-key!!")

// Hash returns content fingerprint used to detect buffer changes
func Hash(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}
