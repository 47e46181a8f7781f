// Package catalog loads named interval definitions.
//
// A catalog is a directory of CUE files sharing one package. Each file may
// contribute entries under the top-level interval field:
//
//	package arcs
//
//	interval: quad1:  {lo: 0, hi: "pi/2"}
//	interval: north:  {point: "pi/2"}
//	interval: seam:   {points: [3, -3]}
//	interval: none:   {empty: true}
//	interval: circle: {full: true}
//
// Every entry is unified with the #Interval schema (schema.cue) before it is
// converted, so a misspelled field or a second shape in one entry is reported
// with its CUE position. Angles are numbers or the symbolic strings accepted
// by ir.ParseAngle.
//
// YAML scenarios declare inline intervals with the same shapes through Def.
package catalog
