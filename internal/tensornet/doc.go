// Package tensornet selects and configures the matrix-product-state
// integration scheme used by the hierarchy integrator.
//
// A caller picks one of the [IntegrationMode] tags and obtains a
// validated, immutable parameter record, either through the typed
// constructors ([NewTDVP1Site], [NewTDVP2Site], [NewTEBD]) or through
// the generic [GenerateParameters] dispatch fed with a [Fields] map.
// Records have value semantics: two records built from the same mode
// and field values compare equal, hash equal as map keys, and produce
// the same [Parameters.Footprint], so the integration engine can use
// them as memoization keys.
//
// The numerical schemes themselves (TDVP sweeps, TEBD gates, Lanczos
// exponentiation) live in the integration engine, not here.
package tensornet
