package dungeon

import (
	"mapgencore/internal/rng"
	"mapgencore/internal/voxel"
)

// walk holds the mutable state machine driving one dungeon's
// placement: the PRNG stream, the walker's current position/direction,
// and the voxel buffer it writes into.
type walk struct {
	vm   *voxel.Manipulator
	rng  *rng.PseudoRandom
	mat  Materials
	area voxel.Area

	pos voxel.Pos
	dir voxel.Pos
}

func (w *walk) makeDungeon(startPaddingPos voxel.Pos) bool {
	extent := voxel.Pos{
		X: w.area.Max.X - w.area.Min.X,
		Y: w.area.Max.Y - w.area.Min.Y,
		Z: w.area.Max.Z - w.area.Min.Z,
	}
	padding := voxel.Pos{X: startPaddingPos.X - w.area.Min.X, Y: startPaddingPos.Y - w.area.Min.Y, Z: startPaddingPos.Z - w.area.Min.Z}

	var roomsize, roomplace voxel.Pos
	fits := false
	for i := 0; i < 100; i++ {
		isLarge := w.rng.Next()&3 == 1
		if isLarge {
			roomsize = w.randBox(w.mat.LargeRoomMin, w.mat.LargeRoomMax)
		} else {
			roomsize = w.randBox(w.mat.SmallRoomMin, w.mat.SmallRoomMax)
		}

		roomplace = voxel.Pos{
			X: w.area.Min.X + padding.X + int32(w.rng.Range(0, int(extent.X-roomsize.X-1-padding.X))),
			Y: w.area.Min.Y + padding.Y + int32(w.rng.Range(0, int(extent.Y-roomsize.Y-1-padding.Y))),
			Z: w.area.Min.Z + padding.Z + int32(w.rng.Range(0, int(extent.Z-roomsize.Z-1-padding.Z))),
		}

		fits = true
		for z := int32(1); z < roomsize.Z-1 && fits; z++ {
			for y := int32(1); y < roomsize.Y-1 && fits; y++ {
				for x := int32(1); x < roomsize.X-1 && fits; x++ {
					p := roomplace.Add(voxel.Pos{X: x, Y: y, Z: z})
					if w.vm.HasFlags(p, voxel.FlagDungeonInside) || w.vm.Get(p).Content == voxel.Ignore {
						fits = false
					}
				}
			}
		}
		if fits {
			break
		}
	}
	if !fits {
		return false
	}

	lastRoomCenter := roomplace.Add(voxel.Pos{X: roomsize.X / 2, Y: 1, Z: roomsize.Z / 2})

	roomCount := w.rng.Range(2, 16)
	for i := 0; i < roomCount; i++ {
		w.makeRoom(roomsize, roomplace)
		roomCenter := roomplace.Add(voxel.Pos{X: roomsize.X / 2, Y: 1, Z: roomsize.Z / 2})

		if i == roomCount-1 {
			break
		}

		startInLastRoom := w.rng.Range(0, 2) != 0
		if startInLastRoom {
			w.pos = lastRoomCenter
		} else {
			w.pos = roomCenter
			lastRoomCenter = roomCenter
		}

		doorplace, doordir, ok := w.findPlaceForDoor()
		if !ok {
			return false
		}

		if w.rng.Range(0, 1) == 0 {
			w.makeDoor(doorplace)
		} else {
			doorplace = doorplace.Add(voxel.Pos{X: -doordir.X, Y: -doordir.Y, Z: -doordir.Z})
		}

		corridorEnd, corridorDir := w.makeCorridor(doorplace, doordir)

		roomsize = w.randBox(w.mat.SmallRoomMin, w.mat.SmallRoomMax)
		w.pos = corridorEnd
		w.dir = corridorDir
		var newDoorplace, newDoordir voxel.Pos
		newDoorplace, newDoordir, roomplace, ok = w.findPlaceForRoomDoor(roomsize)
		if !ok {
			return false
		}
		doorplace, doordir = newDoorplace, newDoordir

		if w.rng.Range(0, 1) == 0 {
			w.makeDoor(doorplace)
		} else {
			roomplace = roomplace.Add(voxel.Pos{X: -doordir.X, Y: -doordir.Y, Z: -doordir.Z})
		}
	}
	return true
}

func (w *walk) randBox(min, max voxel.Pos) voxel.Pos {
	return voxel.Pos{
		X: int32(w.rng.Range(int(min.X), int(max.X))),
		Y: int32(w.rng.Range(int(min.Y), int(max.Y))),
		Z: int32(w.rng.Range(int(min.Z), int(max.Z))),
	}
}

func (w *walk) makeRoom(roomsize, roomplace voxel.Pos) {
	setWall := func(p voxel.Pos) {
		if !w.area.Contains(p) {
			return
		}
		if w.vm.HasFlags(p, voxel.FlagDungeonUntouchable) {
			return
		}
		w.vm.Set(p, voxel.Voxel{Content: w.mat.Wall})
	}

	for z := int32(0); z < roomsize.Z; z++ {
		for y := int32(0); y < roomsize.Y; y++ {
			setWall(roomplace.Add(voxel.Pos{X: 0, Y: y, Z: z}))
			setWall(roomplace.Add(voxel.Pos{X: roomsize.X - 1, Y: y, Z: z}))
		}
	}
	for x := int32(0); x < roomsize.X; x++ {
		for y := int32(0); y < roomsize.Y; y++ {
			setWall(roomplace.Add(voxel.Pos{X: x, Y: y, Z: 0}))
			setWall(roomplace.Add(voxel.Pos{X: x, Y: y, Z: roomsize.Z - 1}))
		}
	}
	for z := int32(0); z < roomsize.Z; z++ {
		for x := int32(0); x < roomsize.X; x++ {
			setWall(roomplace.Add(voxel.Pos{X: x, Y: 0, Z: z}))
			setWall(roomplace.Add(voxel.Pos{X: x, Y: roomsize.Y - 1, Z: z}))
		}
	}

	for z := int32(1); z < roomsize.Z-1; z++ {
		for y := int32(1); y < roomsize.Y-1; y++ {
			for x := int32(1); x < roomsize.X-1; x++ {
				p := roomplace.Add(voxel.Pos{X: x, Y: y, Z: z})
				if !w.area.Contains(p) {
					continue
				}
				w.vm.SetFlags(p, voxel.FlagDungeonUntouchable)
				w.vm.Set(p, voxel.Voxel{Content: voxel.Air})
			}
		}
	}
}

// makeFill places n at every voxel of the size box at place, skipping
// voxels that already carry any of avoidFlags, and ORs orFlags into
// every voxel it does write.
func (w *walk) makeFill(place, size voxel.Pos, avoidFlags voxel.Flag, n voxel.Voxel, orFlags voxel.Flag) {
	for z := int32(0); z < size.Z; z++ {
		for y := int32(0); y < size.Y; y++ {
			for x := int32(0); x < size.X; x++ {
				p := place.Add(voxel.Pos{X: x, Y: y, Z: z})
				if !w.area.Contains(p) {
					continue
				}
				if avoidFlags != 0 && w.vm.AnyFlags(p, avoidFlags) {
					continue
				}
				if orFlags != 0 {
					w.vm.SetFlags(p, orFlags)
				}
				w.vm.Set(p, n)
			}
		}
	}
}

func (w *walk) makeHole(place voxel.Pos) {
	w.makeFill(place, w.mat.HoleSize, 0, voxel.Voxel{Content: voxel.Air}, voxel.FlagDungeonInside)
}

func (w *walk) makeDoor(doorplace voxel.Pos) {
	w.makeHole(doorplace)
}

func (w *walk) makeCorridor(doorplace, doordir voxel.Pos) (voxel.Pos, voxel.Pos) {
	w.makeHole(doorplace)
	p0 := doorplace
	dir := doordir

	length := w.rng.Range(1, 13)
	partlength := w.rng.Range(1, 13)
	partcount := 0
	makeStairs := 0
	if w.rng.Next()%2 == 0 && partlength >= 3 {
		if w.rng.Next()%2 != 0 {
			makeStairs = 1
		} else {
			makeStairs = -1
		}
	}

	for i := 0; i < length; i++ {
		p := p0.Add(dir)
		if partcount != 0 {
			p.Y += int32(makeStairs)
		}

		above := p.Add(voxel.Pos{Y: 1})
		if w.area.Contains(p) && w.area.Contains(above) {
			if makeStairs != 0 {
				w.makeFill(p.Add(voxel.Pos{X: -1, Y: -1, Z: -1}), voxel.Pos{X: 3, Y: 5, Z: 3}, voxel.FlagDungeonUntouchable, voxel.Voxel{Content: w.mat.Wall}, 0)
				w.makeHole(p)
				w.makeHole(p.Add(voxel.Pos{X: -dir.X, Y: -dir.Y, Z: -dir.Z}))

				excludeBottomStep := (makeStairs == 1 && i != 0) || (makeStairs == -1 && i != length-1)
				if excludeBottomStep {
					facedir := dirToFacedir(voxel.Pos{X: dir.X * int32(makeStairs), Y: dir.Y * int32(makeStairs), Z: dir.Z * int32(makeStairs)})

					lower := voxel.Pos{X: p.X - dir.X, Y: p.Y - 1, Z: p.Z - dir.Z}
					if w.vm.Get(lower).Content == w.mat.Wall {
						w.vm.Set(lower, voxel.Voxel{Content: w.mat.Stair, Param2: uint8(facedir)})
					}
					if w.vm.Get(p).Content == w.mat.Wall {
						w.vm.Set(p, voxel.Voxel{Content: w.mat.Stair, Param2: uint8(facedir)})
					}
				}
			} else {
				w.makeFill(p.Add(voxel.Pos{X: -1, Y: -1, Z: -1}), voxel.Pos{X: 3, Y: 4, Z: 3}, voxel.FlagDungeonUntouchable, voxel.Voxel{Content: w.mat.Wall}, 0)
				w.makeHole(p)
			}
			p0 = p
		} else {
			dir = turnXZ(dir, w.rng.Range(0, 1))
			makeStairs = -makeStairs
			partcount = 0
			partlength = w.rng.Range(1, length)
			continue
		}

		partcount++
		if partcount >= partlength {
			partcount = 0
			dir = randomTurn(w.rng, dir)
			partlength = w.rng.Range(1, length)
			makeStairs = 0
			if w.rng.Next()%2 == 0 && partlength >= 3 {
				if w.rng.Next()%2 != 0 {
					makeStairs = 1
				} else {
					makeStairs = -1
				}
			}
		}
	}
	return p0, dir
}

func (w *walk) findPlaceForDoor() (voxel.Pos, voxel.Pos, bool) {
	for i := 0; i < 100; i++ {
		p := w.pos.Add(w.dir)
		p1 := p.Add(voxel.Pos{Y: 1})
		if !w.area.Contains(p) || !w.area.Contains(p1) || i%4 == 0 {
			w.randomizeDir()
			continue
		}
		if w.vm.Get(p).Content == w.mat.Wall && w.vm.Get(p1).Content == w.mat.Wall {
			doordir := w.dir
			w.randomizeDir()
			return p, doordir, true
		}

		if w.vm.Get(p).Content == w.mat.Wall &&
			w.vm.Get(p.Add(voxel.Pos{Y: 1})).Content == voxel.Air &&
			w.vm.Get(p.Add(voxel.Pos{Y: 2})).Content == voxel.Air {
			p = p.Add(voxel.Pos{Y: 1})
		}
		if w.vm.Get(p.Add(voxel.Pos{Y: 1})).Content == w.mat.Wall &&
			w.vm.Get(p).Content == voxel.Air &&
			w.vm.Get(p.Add(voxel.Pos{Y: -1})).Content == voxel.Air {
			p = p.Add(voxel.Pos{Y: -1})
		}

		if w.vm.Get(p).Content != voxel.Air || w.vm.Get(p.Add(voxel.Pos{Y: 1})).Content != voxel.Air {
			w.randomizeDir()
			continue
		}
		w.pos = p
	}
	return voxel.Pos{}, voxel.Pos{}, false
}

func (w *walk) findPlaceForRoomDoor(roomsize voxel.Pos) (voxel.Pos, voxel.Pos, voxel.Pos, bool) {
	for try := 0; try < 30; try++ {
		doorplace, doordir, ok := w.findPlaceForDoor()
		if !ok {
			continue
		}

		var roomplace voxel.Pos
		switch {
		case doordir == (voxel.Pos{X: 1}):
			roomplace = doorplace.Add(voxel.Pos{X: 0, Y: -1, Z: int32(w.rng.Range(int(-roomsize.Z+2), -2))})
		case doordir == (voxel.Pos{X: -1}):
			roomplace = doorplace.Add(voxel.Pos{X: -roomsize.X + 1, Y: -1, Z: int32(w.rng.Range(int(-roomsize.Z+2), -2))})
		case doordir == (voxel.Pos{Z: 1}):
			roomplace = doorplace.Add(voxel.Pos{X: int32(w.rng.Range(int(-roomsize.X+2), -2)), Y: -1, Z: 0})
		case doordir == (voxel.Pos{Z: -1}):
			roomplace = doorplace.Add(voxel.Pos{X: int32(w.rng.Range(int(-roomsize.X+2), -2)), Y: -1, Z: -roomsize.Z + 1})
		}

		fits := true
		for z := int32(1); z < roomsize.Z-1 && fits; z++ {
			for y := int32(1); y < roomsize.Y-1 && fits; y++ {
				for x := int32(1); x < roomsize.X-1 && fits; x++ {
					p := roomplace.Add(voxel.Pos{X: x, Y: y, Z: z})
					if !w.area.Contains(p) || w.vm.HasFlags(p, voxel.FlagDungeonInside) {
						fits = false
					}
				}
			}
		}
		if !fits {
			continue
		}
		return doorplace, doordir, roomplace, true
	}
	return voxel.Pos{}, voxel.Pos{}, voxel.Pos{}, false
}

func (w *walk) randomizeDir() {
	w.dir = randOrthoDir(w.rng, w.mat.DiagonalDirs)
}

// randOrthoDir draws one of the four axis directions. When
// diagonalDirs is set (desert dungeons) an extra draw may turn the
// result into one of the four diagonal combinations instead — the
// exact diagonal variant's bit pattern isn't preserved upstream, so
// this generalizes the non-diagonal draw's two-bit-per-axis shape to
// a third bit gating the diagonal combination.
func randOrthoDir(r *rng.PseudoRandom, diagonalDirs bool) voxel.Pos {
	var d voxel.Pos
	if r.Next()%2 == 0 {
		if r.Next()%2 != 0 {
			d.X = -1
		} else {
			d.X = 1
		}
	} else {
		if r.Next()%2 != 0 {
			d.Z = -1
		} else {
			d.Z = 1
		}
	}
	if diagonalDirs && r.Next()%2 == 0 {
		if d.X == 0 {
			if r.Next()%2 != 0 {
				d.X = -1
			} else {
				d.X = 1
			}
		} else if r.Next()%2 != 0 {
			d.Z = -1
		} else {
			d.Z = 1
		}
	}
	return d
}

func turnXZ(old voxel.Pos, t int) voxel.Pos {
	if t == 0 {
		return voxel.Pos{X: old.Z, Y: old.Y, Z: -old.X}
	}
	return voxel.Pos{X: -old.Z, Y: old.Y, Z: old.X}
}

func randomTurn(r *rng.PseudoRandom, old voxel.Pos) voxel.Pos {
	switch r.Range(0, 2) {
	case 0:
		return old
	case 1:
		return turnXZ(old, 0)
	default:
		return turnXZ(old, 1)
	}
}

func dirToFacedir(d voxel.Pos) int {
	if abs32(d.X) > abs32(d.Z) {
		if d.X < 0 {
			return 3
		}
		return 1
	}
	if d.Z < 0 {
		return 2
	}
	return 0
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
