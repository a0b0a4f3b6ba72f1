// Package schematic reads and writes the MTSM schematic file format and
// blits a loaded schematic into a voxel.Manipulator under one of four
// Y-axis rotations, honoring per-node and per-slice placement
// probabilities.
package schematic

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"

	"mapgencore/internal/nodedef"
	"mapgencore/internal/voxel"
)

const (
	fileSignature = 0x4d54534d // 'MTSM'
	maxReadVersion = 3
	writeVersion   = 3
)

// Probability byte semantics: 0x00 never places, 0xFF always places,
// anything else is the uniform probability p/255.
const (
	ProbNever  uint8 = 0x00
	ProbAlways uint8 = 0xFF
)

// Node is one schematic cell before name resolution: NameIndex keys
// into Schematic.Names, Param1 carries the placement probability.
type Node struct {
	NameIndex uint16
	Param1    uint8
	Param2    uint8
}

// Schematic is a parsed MTSM file: a 3-D grid of Node plus the
// per-Y-slice placement probability and the node name table the
// NameIndex fields are keyed against.
type Schematic struct {
	Size      voxel.Pos // inclusive extents as a size triple (sx, sy, sz)
	SliceProb []uint8   // length Size.Y
	Names     []string
	Nodes     []Node // length Size.X*Size.Y*Size.Z, x-fastest then y then z
}

func (s *Schematic) index(x, y, z int32) int {
	return int(x) + int(y)*int(s.Size.X) + int(z)*int(s.Size.X)*int(s.Size.Y)
}

// Read parses an MTSM stream per §6.3: u32 signature, u16 version,
// v3s16 size, per-slice probability bytes (version>=3 only — earlier
// versions are treated as ProbAlways), a name table, then
// zlib-compressed bulk node data at 4 bytes/node (id_hi, id_lo,
// param1, param2).
func Read(r io.Reader) (*Schematic, error) {
	var sig uint32
	if err := binary.Read(r, binary.BigEndian, &sig); err != nil {
		return nil, fmt.Errorf("schematic: read signature: %w", err)
	}
	if sig != fileSignature {
		return nil, fmt.Errorf("schematic: bad signature %#x", sig)
	}

	var version uint16
	if err := binary.Read(r, binary.BigEndian, &version); err != nil {
		return nil, fmt.Errorf("schematic: read version: %w", err)
	}
	if version < 1 || version > maxReadVersion {
		return nil, fmt.Errorf("schematic: unsupported version %d", version)
	}

	var sx, sy, sz int16
	if err := binary.Read(r, binary.BigEndian, &sx); err != nil {
		return nil, fmt.Errorf("schematic: read size: %w", err)
	}
	if err := binary.Read(r, binary.BigEndian, &sy); err != nil {
		return nil, fmt.Errorf("schematic: read size: %w", err)
	}
	if err := binary.Read(r, binary.BigEndian, &sz); err != nil {
		return nil, fmt.Errorf("schematic: read size: %w", err)
	}
	size := voxel.Pos{X: int32(sx), Y: int32(sy), Z: int32(sz)}

	sliceProb := make([]uint8, size.Y)
	for y := range sliceProb {
		if version >= 3 {
			var b [1]byte
			if _, err := io.ReadFull(r, b[:]); err != nil {
				return nil, fmt.Errorf("schematic: read slice prob: %w", err)
			}
			sliceProb[y] = b[0]
		} else {
			sliceProb[y] = ProbAlways
		}
	}

	var nameCount uint16
	if err := binary.Read(r, binary.BigEndian, &nameCount); err != nil {
		return nil, fmt.Errorf("schematic: read name count: %w", err)
	}
	names := make([]string, nameCount)
	for i := range names {
		var length uint16
		if err := binary.Read(r, binary.BigEndian, &length); err != nil {
			return nil, fmt.Errorf("schematic: read name length: %w", err)
		}
		buf := make([]byte, length)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("schematic: read name: %w", err)
		}
		names[i] = string(buf)
	}

	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("schematic: open zlib stream: %w", err)
	}
	defer zr.Close()

	nodeCount := int(size.X) * int(size.Y) * int(size.Z)
	nodes := make([]Node, nodeCount)
	raw := make([]byte, 4)
	for i := range nodes {
		if _, err := io.ReadFull(zr, raw); err != nil {
			return nil, fmt.Errorf("schematic: read node %d: %w", i, err)
		}
		nodes[i] = Node{
			NameIndex: uint16(raw[0])<<8 | uint16(raw[1]),
			Param1:    raw[2],
			Param2:    raw[3],
		}
	}

	// Version 1 has no explicit probability byte semantics yet: a zero
	// param1 means "always", matching the pre-v2 convention.
	if version == 1 {
		for i := range nodes {
			if nodes[i].Param1 == 0 {
				nodes[i].Param1 = ProbAlways
			}
		}
	}

	return &Schematic{Size: size, SliceProb: sliceProb, Names: names, Nodes: nodes}, nil
}

// Write serializes s as an MTSM version-3 stream.
func Write(w io.Writer, s *Schematic) error {
	if err := binary.Write(w, binary.BigEndian, uint32(fileSignature)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint16(writeVersion)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, int16(s.Size.X)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, int16(s.Size.Y)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, int16(s.Size.Z)); err != nil {
		return err
	}

	for _, p := range s.SliceProb {
		if _, err := w.Write([]byte{p}); err != nil {
			return err
		}
	}

	if err := binary.Write(w, binary.BigEndian, uint16(len(s.Names))); err != nil {
		return err
	}
	for _, name := range s.Names {
		if err := binary.Write(w, binary.BigEndian, uint16(len(name))); err != nil {
			return err
		}
		if _, err := io.WriteString(w, name); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	for _, n := range s.Nodes {
		if _, err := zw.Write([]byte{byte(n.NameIndex >> 8), byte(n.NameIndex), n.Param1, n.Param2}); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// ResolveContent maps each schematic name to a registered content id
// via ndef, once per load, so blitting never repeats name lookups.
func ResolveContent(s *Schematic, ndef *nodedef.Registry) []voxel.Content {
	resolved := make([]voxel.Content, len(s.Names))
	for i, name := range s.Names {
		if name == "ignore" || name == "air" {
			resolved[i] = voxel.Air
			continue
		}
		if d, ok := ndef.Lookup(name); ok {
			resolved[i] = d.ID
			continue
		}
		resolved[i] = voxel.Air
	}
	return resolved
}
