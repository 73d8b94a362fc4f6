// Package geom provides the 3D math used by the layout engine.
//
// It covers vectors, quaternions, axis-aligned bounds, axes and directions,
// six-sided edge sets (margin/padding), and the alignment arithmetic that
// layout strategies use to place a child box inside a parent box.
// Everything here is a pure function or value type.
package geom
