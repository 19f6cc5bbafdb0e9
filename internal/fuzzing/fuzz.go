// Package fuzzing derives deterministic test inputs from the random bytes
// generated by the go fuzzer.
package fuzzing

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math/rand"
)

// MakeRandBoolean returns count booleans drawn from a random source seeded
// by data.
func MakeRandBoolean(data []byte, count int) []bool {
	if count < 1 {
		return nil
	}
	src := rand.New(newByteSource(data))
	b := make([]bool, count)
	for i := 0; i < count; i++ {
		b[i] = src.Int63()&0x01 == 1
	}
	return b
}

// MakeRandBytes returns count bytes drawn from a random source seeded by data.
func MakeRandBytes(data []byte, count int) []byte {
	if count < 1 {
		return nil
	}
	src := rand.New(newByteSource(data))
	b := make([]byte, count)
	for i := 0; i < count; i++ {
		b[i] = byte(src.Int63())
	}
	return b
}

type byteSource struct {
	*bytes.Reader
}

func newByteSource(data []byte) *byteSource {
	return &byteSource{
		Reader: bytes.NewReader(data),
	}
}

func (s *byteSource) Uint64() uint64 {
	var bytes [8]byte
	if _, err := s.Read(bytes[:]); err != nil && !errors.Is(err, io.EOF) {
		panic("byteSource: failed to read bytes")
	}
	return binary.BigEndian.Uint64(bytes[:])
}

func (s *byteSource) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

func (s *byteSource) Seed(seed int64) {}
