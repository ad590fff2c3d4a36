// Package maze reads maze descriptions into gridgraph grids and renders
// search results on top of them.
//
// Text format, one line per row:
//
//	#       wall
//	. or ␠  open cell, cost 1
//	1-9     open cell with that cost
//	A       start (cost 1)
//	B       end (cost 1)
//
// Rows shorter than the widest row are padded with walls. Exactly one A and
// one B are required.
//
// YAML format wraps the text layout:
//
//	name: detour
//	connectivity: 4
//	costs:
//	  "~": 5
//	layout: |
//	  A.~.B
//	  .....
//
// costs adds symbols or overrides the default ones; a cost below 1 turns a
// symbol into a wall.
package maze
