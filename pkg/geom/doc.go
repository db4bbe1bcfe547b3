// Package geom provides the geometric primitives used by the collision
// engine: axis-aligned boxes, triangles and circles, plus the point
// distance queries built on them.
package geom
