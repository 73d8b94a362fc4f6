// Package scene loads layout scenes from YAML and exports solved layouts.
//
// A scene is a list of root nodes, each with its sizing, an optional
// strategy and adapter, and its children. Nodes that carry a constraint
// are roots whose transform follows a target node anywhere in the scene.
//
//	name: gallery
//	rootSize: [400, 300, 1]
//	nodes:
//	  - name: row
//	    size: {x: 400, y: layout, z: 1}
//	    layout: {type: flexible, wrap: true, gap: 10}
//	    children:
//	      - name: a
//	        size: {x: fill 1, y: 20, z: 1}
//
// Sizes are written as a number (fixed), "fill <fraction>", "component" or
// "layout". Min and max limits accept a number, "fill <fraction>" or
// "none".
package scene
