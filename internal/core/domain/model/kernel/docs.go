// Package kernel contains shared value objects of the domain model.
// Value objects here are immutable, validated at construction, and safe
// for concurrent use.
package kernel
