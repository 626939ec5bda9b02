// Package stroke converts a flattened polygon plus a set of stroke
// attributes into a list of discrete filled polygons (segment-body quads,
// join triangles/fans, cap geometry) whose union is the stroke outline.
//
// Unlike a single merged forward/backward offset contour, each piece of
// stroke geometry here is emitted as its own polygon so the scanline filler
// can rasterize them independently under the nonzero rule; overlaps between
// adjacent pieces (inherent at concave turns) are resolved by winding, not
// by careful contour stitching.
package stroke
