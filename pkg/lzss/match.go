package lzss

// longestMatch searches buf[s:r] for the longest prefix of buf[r:r+f1].
// Candidates are scanned from the most recent one backwards and only a longer
// match replaces the best, so ties go to the most recent position.
// y is at least 1; a result with y == 1 means nothing useful was found.
func longestMatch(buf []byte, s, r, f1 int) (x, y int) {
	y = 1
	c := buf[r]
	for i := r - 1; i >= s; i-- {
		if buf[i] != c {
			continue
		}
		j := 1
		for j < f1 && buf[i+j] == buf[r+j] {
			j++
		}
		if j > y {
			x, y = i, j
		}
	}
	return x, y
}
