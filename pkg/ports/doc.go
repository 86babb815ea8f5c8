// Package ports defines the driven-side contracts of the execution core:
// how node computations are performed (Executor) and how agent snapshots
// are stored (AgentStore). Adapters implement these interfaces so the
// engine stays decoupled from vendors and storage backends.
package ports
