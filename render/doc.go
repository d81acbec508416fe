// Package render quantizes colors into density-ramp glyphs and composites them on a Canvas.
//
// A Canvas holds a fixed base grid of Cells. Renderables pushed before Display are applied
// on top of a copy of the base grid for that frame only, and the composited frame is diffed
// against the previous one so only changed cells reach the terminal.
package render
