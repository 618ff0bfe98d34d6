package generator

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// aesBatch is how many keystream bytes AESCTR produces per refill.
const aesBatch = 8 * aes.BlockSize

// AESCTR returns AES-128 counter mode keystream, 64 bits at a time.
type AESCTR struct {
	stream cipher.Stream
	buf    [aesBatch]byte
	off    int
}

// NewAESCTR keys AES-128 with (k0, k1) and starts the counter at zero.
func NewAESCTR(k0, k1 uint64) *AESCTR {
	var key [16]byte
	binary.LittleEndian.PutUint64(key[:8], k0)
	binary.LittleEndian.PutUint64(key[8:], k1)

	block, err := aes.NewCipher(key[:])
	if err != nil {
		// A 16-byte key is always valid.
		panic(err)
	}

	var iv [aes.BlockSize]byte

	return &AESCTR{
		stream: cipher.NewCTR(block, iv[:]),
		off:    aesBatch,
	}
}

// Uint64 returns the next value.
func (g *AESCTR) Uint64() uint64 {
	if g.off == aesBatch {
		clear(g.buf[:])
		g.stream.XORKeyStream(g.buf[:], g.buf[:])
		g.off = 0
	}

	v := binary.LittleEndian.Uint64(g.buf[g.off:])
	g.off += 8

	return v
}
