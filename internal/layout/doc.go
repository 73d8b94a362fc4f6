// Package layout implements an incremental 3D box-layout engine.
//
// Nodes form trees owned by an [Engine]. Each node declares a per-axis
// [Size] (fixed, fill, component or layout), optional min/max [Limit]s,
// margin, padding and an optional [Strategy] that positions its children.
// Nodes may also depend on a node in another tree through a [Constraint];
// a dependent is recomputed after its target every cycle.
//
// The main entry point is [Engine.Update], which measures, arranges and
// constrains every dirty tree and hands the resulting local transforms to
// each node's [TransformUpdater]. Types are re-exported through the root
// box3d package for public consumption.
package layout
