// Package scene defines the layout tree consumed by the render package.
//
// A scene is a strict tree of Nodes. Each node is either a box, which lays
// its children out along one axis, or a text run. Styling is a small subset
// of CSS flexbox: direction, padding, gap, an auto top margin, justification
// and cross-axis alignment, absolute positioning with z-index ordering, and
// the inherited text properties (color, size, weight, line height, letter
// spacing, alignment, case).
//
// Nodes are values. Children are owned by their parent and copied with it,
// so a tree built once can be rendered any number of times.
package scene
