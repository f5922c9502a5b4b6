// Package tanner provides a read-only, bipartite Tanner-graph view of a
// stabilizer code, plus the arena of cluster-tree nodes a decoder grows
// its union–find clusters over.
//
// Vertex ids are a single flat space: qubit (data) vertices occupy
// [0, N), check vertices occupy [N, N+M). Edges only ever connect a
// qubit vertex to a check vertex. The graph is built once via NewGraph +
// AddEdge and is safe to share, unsynchronized, across any number of
// decodes — nothing in this package mutates after construction finishes;
// all decode-time mutation happens on the separate *unionfind.ClusterNode
// arena returned by Nodes/NodeOf.
package tanner
