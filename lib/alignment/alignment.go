// Package alignment lines up an original sentence with a learner's answer,
// character by character, and reads off corresponding word pairs.
package alignment

const (
	Gap = '-'

	matchScore    = 1
	mismatchScore = -1
	gapScore      = -1
)

type WordPair struct {
	Original string `json:"original"`
	Answer   string `json:"answer"`
}

type Result struct {
	// A and B are the aligned strings, equal in rune length, with Gap marking insertions.
	A     string     `json:"a"`
	B     string     `json:"b"`
	Pairs []WordPair `json:"pairs"`
}

// Align computes a global alignment of a and b and splits it into word pairs.
func Align(a, b string) Result {
	alignedA, alignedB := globalAlignment([]rune(a), []rune(b))
	return Result{
		A:     string(alignedA),
		B:     string(alignedB),
		Pairs: wordPairs(alignedA, alignedB),
	}
}

func score(x, y rune) int {
	if x == y {
		return matchScore
	}
	return mismatchScore
}

// globalAlignment is Needleman-Wunsch. On equal scores the traceback prefers a
// diagonal step, then a gap in b, then a gap in a.
func globalAlignment(a, b []rune) ([]rune, []rune) {
	rows, cols := len(a)+1, len(b)+1
	matrix := make([][]int, rows)
	for i := range matrix {
		matrix[i] = make([]int, cols)
		matrix[i][0] = i * gapScore
	}
	for j := 0; j < cols; j++ {
		matrix[0][j] = j * gapScore
	}

	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			best := matrix[i-1][j-1] + score(a[i-1], b[j-1])
			if up := matrix[i-1][j] + gapScore; up > best {
				best = up
			}
			if left := matrix[i][j-1] + gapScore; left > best {
				best = left
			}
			matrix[i][j] = best
		}
	}

	alignedA := make([]rune, 0, rows+cols)
	alignedB := make([]rune, 0, rows+cols)
	i, j := len(a), len(b)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && matrix[i][j] == matrix[i-1][j-1]+score(a[i-1], b[j-1]):
			alignedA = append(alignedA, a[i-1])
			alignedB = append(alignedB, b[j-1])
			i--
			j--
		case i > 0 && matrix[i][j] == matrix[i-1][j]+gapScore:
			alignedA = append(alignedA, a[i-1])
			alignedB = append(alignedB, Gap)
			i--
		default:
			alignedA = append(alignedA, Gap)
			alignedB = append(alignedB, b[j-1])
			j--
		}
	}

	reverse(alignedA)
	reverse(alignedB)
	return alignedA, alignedB
}

func reverse(r []rune) {
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
}

// wordPairs walks both aligned strings together. Characters are collected while
// neither column is a space; a word ends where both columns are spaces or at
// the end of the alignment.
func wordPairs(a, b []rune) []WordPair {
	var pairs []WordPair
	var wordA, wordB []rune
	for i := range a {
		charA, charB := a[i], b[i]

		if charA != ' ' && charB != ' ' {
			if charA != Gap {
				wordA = append(wordA, charA)
			}
			if charB != Gap {
				wordB = append(wordB, charB)
			}
		}

		if (charA == ' ' && charB == ' ') || i == len(a)-1 {
			pairs = append(pairs, WordPair{Original: string(wordA), Answer: string(wordB)})
			wordA, wordB = wordA[:0], wordB[:0]
		}
	}
	return pairs
}
