// Package kernel contains the shared value objects of the dispatch domain:
// UUID identifiers and Money amounts. Both are immutable, validated at
// construction, and safe for concurrent use. Zero values are invalid and
// are rejected by Validate, which keeps improperly constructed instances
// out of aggregates.
package kernel
