// Package render turns a (sequence, mode) pair into a RenderModel.
//
// [Build] is a pure function: the same inputs always yield the same model and
// nothing is patched incrementally. Surfaces (SVG export, the Braille
// canvas, the TUI) consume the model and redraw from scratch.
package render
