// Package kernel contains shared value objects used across the domain model.
// These types are immutable, validated on construction, and safe for
// concurrent use.
package kernel
