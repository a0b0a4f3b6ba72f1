// Package nodedef is the external node-definition registry the core
// resolves names against once at generator construction. It owns name
// registration and the degraded-construction fallback rules; it does
// not own anything rendering cares about (textures, tint, hardness).
package nodedef

import "mapgencore/internal/voxel"

// Def describes one registered node as the generation core needs it.
type Def struct {
	ID            voxel.Content
	Name          string
	IsGround      bool // counts as "ground" the cave passes may carve
	IsLiquid      bool
	IsBuildableTo bool // passes may overwrite this node without checking
	LightSource   uint8
}

// Registry resolves node names to content ids, with the core's
// required fallbacks applied once at construction so a variant
// definition missing an optional node degrades gracefully rather than
// failing generation.
type Registry struct {
	byName map[string]Def
	byID   map[voxel.Content]Def
}

// New wraps an externally populated name table. defs is the full set
// of nodes the owner has registered; it need not include every name
// the core looks up — Resolve applies fallbacks for the optional ones.
func New(defs []Def) *Registry {
	r := &Registry{byName: make(map[string]Def, len(defs)), byID: make(map[voxel.Content]Def, len(defs))}
	for _, d := range defs {
		r.byName[d.Name] = d
		r.byID[d.ID] = d
	}
	return r
}

// Lookup returns the definition registered under name, if any.
func (r *Registry) Lookup(name string) (Def, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// ByID returns the definition for a content id, if known.
func (r *Registry) ByID(id voxel.Content) (Def, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// Resolve looks up a required node by its preferred name, falling back
// through alternates in order, and finally to AIR if nothing matches.
// Callers pass the degrade-to chain appropriate to the node: ice falls
// back to AIR (no fallback names, just the zero-value default); mossy
// and stair cobble variants fall back to plain cobble; sandstonebrick
// falls back to sandstone.
func (r *Registry) Resolve(preferred string, fallbacks ...string) voxel.Content {
	if d, ok := r.byName[preferred]; ok {
		return d.ID
	}
	for _, name := range fallbacks {
		if d, ok := r.byName[name]; ok {
			return d.ID
		}
	}
	return voxel.Air
}

// Known fallback chains for the node names the core's mapgen variants
// reference by convention.
var (
	MossyCobbleFallback    = []string{"mapgen_cobble"}
	StairCobbleFallback    = []string{"mapgen_cobble"}
	StairDesertStoneBlock  = []string{"mapgen_desert_stone"}
	SandstoneBrickFallback = []string{"mapgen_sandstone"}
)
