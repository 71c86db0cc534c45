// Package dsa provides the domain primitives shared by the sequence visualizer.
//
// The package defines the small vocabulary the rest of the module speaks:
//
//   - [Mode]: the data-structure abstraction (linked list, stack, queue)
//   - [Sequence]: the single ordered backing collection shared by all modes
//   - [OpError]: an operation failure carrying the operation and mode
//
// # Example
//
//	m, _ := dsa.ParseMode("stack")
//	seq := dsa.Sequence{1, 2, 3}
//	fmt.Println(m, seq.Join(" | "))
//
// # Thread Safety
//
// Sequence values are plain slices and are NOT safe for concurrent mutation.
package dsa
