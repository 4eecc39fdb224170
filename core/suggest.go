package core

import "strings"

// closestMatch returns the candidate most likely intended by a mistyped
// selector: a case-insensitive prefix match if one exists, otherwise the
// candidate within a small edit distance. Returns "" when nothing is close.
func closestMatch(target string, candidates []string) string {
	if target == "" || len(candidates) == 0 {
		return ""
	}
	low := strings.ToLower(target)
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), low) {
			return c
		}
	}

	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := editDistance(low, strings.ToLower(c))
		if bestDist == -1 || d < bestDist {
			bestDist = d
			best = c
		}
	}
	threshold := len(low) / 3
	if threshold < 2 {
		threshold = 2
	}
	if bestDist >= 0 && bestDist <= threshold {
		return best
	}
	return ""
}

// editDistance computes the Levenshtein distance between a and b using two
// rolling rows.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		copy(prev, curr)
	}
	return prev[len(b)]
}
