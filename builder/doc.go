// SPDX-License-Identifier: MIT

// Package builder turns raw input Records into graph Nodes: one Node per label
// group, carrying the mean of the group's normalized embeddings.
//
// Pipeline
//
//  1. Discard records whose embedding is missing, empty, or whose length differs
//     from the graph dimension D. D is pinned by WithDimension; otherwise it is
//     the most common length among embeddings that normalize, ties going to
//     the length seen first. Malformed rows never decide D.
//  2. Group the remaining records by label. Groups are emitted in the order their
//     label first appears; every downstream "first seen" tie-break relies on it.
//     Records with an empty label fall into the fallback group ("Unknown").
//  3. Normalize each member embedding independently (vecmath.Normalize), drop the
//     members whose normalization fails, and average the survivors
//     (vecmath.Average). A group with zero survivors is dropped entirely.
//  4. Emit a Node with Count = size of the group from step 2 (raw membership,
//     not the survivor count) and MemberIDs collected from all members.
//
// Errors
//
//	ErrNoUsableData is returned when no Node survives. It is fatal for the call:
//	retrying with the same input yields the same result, the caller has to
//	refresh the source data. Per-record problems are never surfaced; they are
//	filtered silently (and reported at debug level through WithLogger).
//
// Complexity: O(R·D) time and O(R·D) space for R records of dimension D.
package builder
