// Package lcs computes longest common subsequences.
//
// Table exposes the DP table, LCS rebuilds a witness from it, Length keeps
// only two rows when the value is all that is needed, and Strings works on
// the runes of two strings:
//
//	n, s := lcs.Strings("ABCBDAB", "BDCABA")
//	// n == 4
package lcs
