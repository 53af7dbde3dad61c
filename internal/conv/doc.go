// Package conv provides overflow-checked capacity arithmetic.
//
// Capacities are ints supplied by callers or produced by repeated doubling.
// These helpers fail instead of wrapping, so an oversized request surfaces as
// an allocation error rather than a corrupted buffer size.
package conv
