package flate

const (
	minMatch   = 3
	maxMatch   = 258
	windowSize = 32768
)

// bestMatch runs a greedy longest-match search over the trailing window
// behind pos. Candidates are scanned in ascending position order and a
// candidate replaces the best only when strictly longer, so equal-length
// matches resolve to the farthest-back candidate. That tie-break is part of
// the output format contract; nearer matches would encode in fewer extra
// bits but would change the emitted stream.
func bestMatch(data []byte, pos int) (distance, length int, ok bool) {
	if pos+minMatch > len(data) {
		return 0, 0, false
	}

	start := 0
	if pos > windowSize {
		start = pos - windowSize
	}

	for i := start; i < pos; i++ {
		if data[i] != data[pos] {
			continue
		}
		n := 0
		for pos+n < len(data) && data[i+n] == data[pos+n] && n < maxMatch {
			n++
		}
		if n >= minMatch && n > length {
			length = n
			distance = pos - i
			if n == maxMatch {
				break
			}
		}
	}

	return distance, length, length >= minMatch
}
