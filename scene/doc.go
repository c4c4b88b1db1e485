// Package scene defines the engine's view of the host document model:
// mesh geometry, named morph targets and named membership groups.
//
// The engine never creates or destroys points; it reads and writes
// per-point data by index through these interfaces. The in-memory
// implementations back the tests and the CLI, and serve as the reference
// semantics for host adapters.
package scene
