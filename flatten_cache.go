package rasterx

import "github.com/gogpu/rasterx/internal/cache"

// flattenCacheKey identifies a flattened polygon set by the path identity
// and its mutation generation, so a stale key never collides with a fresh
// one after the path changes.
type flattenCacheKey struct {
	path       *Path
	generation int
}

// flattenCache memoizes untransformed Flatten results keyed by (path,
// generation), so repeatedly drawing the same untouched path (a very
// common immediate-mode pattern: redrawing a static shape every frame)
// skips re-walking its Bezier segments. The per-draw transform is applied
// to the cached polygons afterward, since mapping points through an affine
// transform is far cheaper than re-flattening curves.
var flattenCache = cache.New[flattenCacheKey, []Polygon](256)

// FlattenCached returns p's device-space polygons under m, reusing a
// cached untransformed flatten result when p has not been mutated since
// the last call.
func FlattenCached(p *Path, m Matrix) []Polygon {
	key := flattenCacheKey{path: p, generation: p.Generation()}
	base := flattenCache.GetOrCreate(key, func() []Polygon {
		return Flatten(p)
	})
	if m.IsIdentity() {
		return base
	}
	out := make([]Polygon, len(base))
	for i, poly := range base {
		pts := make(Polygon, len(poly))
		for j, pt := range poly {
			pts[j] = m.TransformPoint(pt)
		}
		out[i] = pts
	}
	return out
}
