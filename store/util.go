package store

import (
	"encoding/binary"

	"github.com/gofrs/uuid"
	"github.com/holiman/uint256"
)

func uint64ToBytes(v uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return buf
}

func bytesToUint64(buf []byte) uint64 {
	if len(buf) != 8 {
		panic(len(buf))
	}
	return binary.BigEndian.Uint64(buf)
}

func buildKey(prefix string, parts ...[]byte) []byte {
	key := []byte(prefix)
	for _, p := range parts {
		key = append(key, p...)
	}
	return key
}

func idBytes(id uint256.Int) []byte {
	buf := id.Bytes32()
	return buf[:]
}

func userBytes(id uuid.UUID) []byte {
	return id.Bytes()
}
