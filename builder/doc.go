// Package builder turns a set of dimensioned Locations into the
// weighted connectivity graph the route optimizer is solved over.
//
// Construction happens in fixed stages:
//
//  1. layout validation: malformed input aborts before any work;
//  2. clustering: aisles and racks via the cluster package;
//  3. candidate edges, in precedence order: sequential neighbors within
//     each aisle, cross-cluster connections at intersection points and
//     waypoints, with opposite-side rack shortcuts blocked away from
//     aisle ends; isolated nodes are tied to their nearest clear
//     neighbors for redundancy;
//  4. obstruction validation: every candidate's straight segment is
//     tested against the clearance-expanded footprint of every
//     non-traversable Location; this test is authoritative, the cluster
//     rules are only a coarse pre-filter;
//  5. connectivity repair: while the graph splits into components, the
//     shortest obstacle-clear connection between the two nearest
//     components is added; if none exists the graph is returned as-is
//     with the surviving components listed in the Report.
//
// Candidate generation and obstacle testing are O(V²) per floor, which
// is acceptable at the few hundred locations realistic layouts carry.
package builder
