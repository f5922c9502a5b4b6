// Package unionfind implements a disjoint-set (union–find) data structure
// whose elements carry the extra per-cluster payload a Union–Find qLDPC
// decoder needs: a check-vertex set, merged by Union, and a
// boundary-vertex set, merged by MergeBoundaries.
//
// Every cluster-tree node is allocated once, indexed by the Tanner vertex
// it anchors, and lives in a plain arena ([]*ClusterNode) — there is no
// separate node allocator; Find/Union operate on pointers into that
// arena directly, following the "contiguous arena indexed by vertex_idx"
// design noted for a language-neutral re-architecture of the original
// source.
//
// Find performs path compression; Union merges by cluster size with a
// deterministic tie-break (lower VertexIdx wins). MergeBoundaries is a
// second, explicit step the caller must invoke after every successful
// Union — Union merges check vertices but not boundary vertices, so growth code can batch boundary updates separately from the
// topology update if it ever needs to.
package unionfind
