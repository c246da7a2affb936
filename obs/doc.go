// Package obs provides the observation sink: a capability the tree builder
// and searcher call into for every cache
// consultation, kernel evaluation, and node scan, so a caller can read
// counters back afterward for tests or debugging. It is explicitly not a
// logging facade — nothing here writes anywhere; Sink is a handle the core
// calls, grounded on the original engine's Info/NoInfo split (info.rs).
package obs
