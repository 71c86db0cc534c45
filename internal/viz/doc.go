// Package viz provides terminal surfaces for the sequence visualizer.
//
//   - [Canvas]: Braille pixel canvas, fed by [Rasterize]
//   - [Board]: character-cell rendering with values, markers and links
//   - [Theme] and [Styles]: lipgloss colour schemes for the TUI
//
// Both [CanvasSurface] and [BoardSurface] redraw from scratch on every
// model they receive.
package viz
