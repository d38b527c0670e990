// Package textdist implements the string-similarity primitive used for
// uniqueness scoring during deduplication.
package textdist

// Distance returns the restricted Damerau-Levenshtein distance (optimal
// string alignment) between two strings: the minimum number of single-rune
// insertions, deletions, substitutions, and adjacent transpositions needed
// to turn a into b. Only adjacent transpositions count as one operation;
// this is not the unrestricted variant. Runs in O(len(a)*len(b)) time and
// space using the classic DP table.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	n := len(ra)
	m := len(rb)

	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}

	d := make([][]int, n+1)
	for i := range d {
		d[i] = make([]int, m+1)
		d[i][0] = i
	}
	for j := 0; j <= m; j++ {
		d[0][j] = j
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			best := min3(
				d[i-1][j]+1,      // deletion
				d[i][j-1]+1,      // insertion
				d[i-1][j-1]+cost, // substitution
			)

			// Adjacent transposition.
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				if t := d[i-2][j-2] + 1; t < best {
					best = t
				}
			}

			d[i][j] = best
		}
	}

	return d[n][m]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
