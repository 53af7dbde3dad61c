// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Buffers start on a cache line boundary (at least 64 bytes), so the first
// elements of a vector never straddle two lines.
package mem
