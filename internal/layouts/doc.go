// Package layouts provides ready-made strategies, constraints and modifiers
// for the layout engine.
//
// [Flexible] flows children along one axis and optionally wraps them into
// lines. [Grid] places children in uniform cells. [Diagonal] stacks children
// along all three axes at once. [AlignConstraint] pins a node to the box of
// the node it depends on, and [OffsetModifier] shifts arranged children.
//
// Strategies are plain values. After changing a field on a strategy that is
// already attached to a node, call MarkDirty on that node.
package layouts
