// Package operators constructs the elementary quantum operators used
// throughout the hierarchy-of-pure-states machinery.
//
// All constructors are pure: they allocate a fresh matrix on every
// call, never touch shared state, and are safe to call concurrently.
// Real-valued operators are returned as [mat.Dense], the Pauli family
// as [mat.CDense].
//
//   - [CreationAnnihilation]: bosonic ladder operators of a truncated
//     Fock space
//   - [Number]: the occupation-number operator
//   - [Pauli], [SigmaPlus], [SigmaMinus]: spin-1/2 operators
//   - [Identity]: identity of a given dimension
package operators
