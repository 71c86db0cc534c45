// Package visualizer implements the sequence visualizer: one ordered integer
// sequence viewed as a linked list, a stack or a queue.
//
//   - [Visualizer]: owns the mode, the sequence and the attached surfaces
//   - [Surface]: anything that redraws from a [render.Model]
//
// Every mutation rebuilds the render model from (sequence, mode) and pushes
// it to every surface, then appends one line to the operation log.
// Traversal in linked-list mode additionally starts a highlight run that is
// cancelled by the next traversal or mutation.
//
// # Example
//
//	log := oplog.New()
//	v := visualizer.New(log)
//	v.Insert(5, visualizer.NoPosition)
//	v.Insert(10, visualizer.NoPosition)
//	v.Insert(7, 1) // [5 7 10]
//
// # Thread Safety
//
// Operations are meant to be driven from a single event loop. Highlight
// callbacks arrive from timer goroutines and are synchronised internally.
package visualizer
