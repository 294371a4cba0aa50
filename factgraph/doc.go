// Package factgraph is the provenance DAG behind both the deductive database
// and the proof renderer: one node per derived fact (a predicate's canonical
// string), one edge per "this fact was used to derive that fact" dependency,
// and a deterministic topological order over the whole graph so a proof can
// be printed with every premise appearing before the conclusion it justifies.
//
// This is the teacher's core.Graph (an adjacency-list graph guarded by a
// mutex) and dfs.TopologicalSort (the White/Gray/Black DFS state machine)
// adapted to a directed provenance graph instead of a general weighted graph:
// nodes are facts rather than anonymous vertices, and every node additionally
// carries the rule name and parent list that produced it.
package factgraph
