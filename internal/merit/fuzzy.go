package merit

import "strings"

// Ratio returns a similarity score in [0,1] for a and b, compared
// case-insensitively. The score is 2*M/(len(a)+len(b)) where M is the total
// length of the matching blocks found by taking the longest common substring
// and recursing on the pieces to either side. Two empty strings compare equal.
func Ratio(a, b string) float64 {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matchLen(ra, rb)) / float64(total)
}

// Pick returns the option most similar to candidate when that similarity
// meets or exceeds cutoff. Ties keep the first option scanned.
func Pick(candidate string, options []string, cutoff float64) (string, bool) {
	if candidate == "" || len(options) == 0 {
		return "", false
	}
	best := ""
	bestRatio := 0.0
	for _, o := range options {
		if r := Ratio(candidate, o); r > bestRatio {
			bestRatio, best = r, o
		}
	}
	if best != "" && bestRatio >= cutoff {
		return best, true
	}
	return "", false
}

func matchLen(a, b []rune) int {
	ai, bi, size := longestBlock(a, b)
	if size == 0 {
		return 0
	}
	return size + matchLen(a[:ai], b[:bi]) + matchLen(a[ai+size:], b[bi+size:])
}

// longestBlock finds the longest common substring of a and b, preferring the
// earliest start in a, then the earliest start in b.
func longestBlock(a, b []rune) (ai, bi, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := range a {
		for j := range b {
			if a[i] == b[j] {
				cur[j+1] = prev[j] + 1
				if cur[j+1] > size {
					size = cur[j+1]
					ai = i - size + 1
					bi = j - size + 1
				}
			} else {
				cur[j+1] = 0
			}
		}
		prev, cur = cur, prev
		for j := range cur {
			cur[j] = 0
		}
	}
	return ai, bi, size
}
