// Package conv provides checked integer conversions for frame headers.
//
// Counts and sizes read from encoded frames are untrusted; these helpers
// reject values that would overflow instead of silently truncating.
package conv
