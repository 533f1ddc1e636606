// Package dfs provides helper functions shared by the traversal and
// cycle-detection implementations: small int-slice operations and
// Booth's minimal-rotation algorithm.
package dfs

import (
	"strconv"
	"strings"
)

// IndexOf returns the first index of val in s, or -1 if not found.
// Time Complexity: O(n).
func IndexOf(s []int, val int) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// JoinSig concatenates the elements of c with commas, producing a single
// string signature suitable for map keys and ordering.
// Time Complexity: O(n).
func JoinSig(c []int) string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}

// MinimalRotation implements Booth's algorithm to find the
// lexicographically minimal rotation of s, returned as a new slice.
// The input is not modified.
// Time Complexity: O(n).
func MinimalRotation(s []int) []int {
	n := len(s)
	if n == 0 {
		return nil
	}

	// duplicate the sequence into fresh storage
	doubled := make([]int, 0, 2*n)
	doubled = append(doubled, s...)
	doubled = append(doubled, s...)

	// failure links, all initialized to -1
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}

	k := 0 // starting index of the minimal rotation found so far
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	res := make([]int, n)
	copy(res, doubled[k:k+n])

	return res
}
