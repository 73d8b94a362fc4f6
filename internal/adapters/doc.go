// Package adapters measures content owned outside the layout engine.
//
// The engine never looks at meshes, sprites or text. Hosts measure their
// content and hand the bounds to a [Bounds] adapter, or describe a flat
// rectangle with an [AspectRatio] adapter.
package adapters
