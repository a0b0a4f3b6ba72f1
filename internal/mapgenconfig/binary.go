package mapgenconfig

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"mapgencore/internal/noise"
)

// NoiseParamsWireSize is the fixed byte length of one serialized
// NoiseParams value.
const NoiseParamsWireSize = 4 + 4 + 4*3 + 4 + 2 + 4 + 4 + 1

// EncodeNoiseParams writes p in the pinned on-disk layout: offset,
// scale, spread.x/y/z, seed_offset, octaves, persistence, lacunarity,
// flags — all little-endian. This layout is a contract other tooling
// round-trips against and must not change field order or width.
func EncodeNoiseParams(p noise.Params) []byte {
	buf := make([]byte, NoiseParamsWireSize)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(p.Offset))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(p.Scale))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(p.Spread[0]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(p.Spread[1]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(p.Spread[2]))
	binary.LittleEndian.PutUint32(buf[20:24], uint32(p.SeedOffset))
	binary.LittleEndian.PutUint16(buf[24:26], p.Octaves)
	binary.LittleEndian.PutUint32(buf[26:30], math.Float32bits(p.Persistence))
	binary.LittleEndian.PutUint32(buf[30:34], math.Float32bits(p.Lacunarity))
	buf[34] = p.Flags
	return buf
}

// DecodeNoiseParams parses the layout EncodeNoiseParams writes.
func DecodeNoiseParams(buf []byte) (noise.Params, error) {
	if len(buf) < NoiseParamsWireSize {
		return noise.Params{}, fmt.Errorf("mapgenconfig: noise params buffer too short: %d < %d", len(buf), NoiseParamsWireSize)
	}
	r := bytes.NewReader(buf)
	var p noise.Params
	var offsetBits, scaleBits, sx, sy, sz, persistBits, lacBits, seedOffset uint32
	binary.Read(r, binary.LittleEndian, &offsetBits)
	binary.Read(r, binary.LittleEndian, &scaleBits)
	binary.Read(r, binary.LittleEndian, &sx)
	binary.Read(r, binary.LittleEndian, &sy)
	binary.Read(r, binary.LittleEndian, &sz)
	binary.Read(r, binary.LittleEndian, &seedOffset)
	binary.Read(r, binary.LittleEndian, &p.Octaves)
	binary.Read(r, binary.LittleEndian, &persistBits)
	binary.Read(r, binary.LittleEndian, &lacBits)
	binary.Read(r, binary.LittleEndian, &p.Flags)

	p.Offset = math.Float32frombits(offsetBits)
	p.Scale = math.Float32frombits(scaleBits)
	p.Spread = [3]float32{math.Float32frombits(sx), math.Float32frombits(sy), math.Float32frombits(sz)}
	p.SeedOffset = int32(seedOffset)
	p.Persistence = math.Float32frombits(persistBits)
	p.Lacunarity = math.Float32frombits(lacBits)
	return p, nil
}
