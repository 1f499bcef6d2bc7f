// Package util provides small generic slice helpers shared across the
// module: membership checks, filtering, and transformation.
package util
