package similarity

import "github.com/kavyateja/chandassu/prosody"

// LongestCommonRun returns the longest contiguous run of identical
// markers shared by two weight sequences, via the classic O(n*m)
// dynamic-programming table. Ties go to the first maximal run found in
// row-major order. No common run yields nil.
func LongestCommonRun(a, b []prosody.Weight) []prosody.Weight {
	m, n := len(a), len(b)
	if m == 0 || n == 0 {
		return nil
	}

	prev := make([]int, n+1)
	cur := make([]int, n+1)
	maxLen, end := 0, 0
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > maxLen {
					maxLen = cur[j]
					end = i
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}
	if maxLen == 0 {
		return nil
	}
	out := make([]prosody.Weight, maxLen)
	copy(out, a[end-maxLen:end])
	return out
}
