package png

//go:generate go run github.com/dmarkham/enumer -type FilterType -trimprefix Filter -output filter_enum.go

// FilterType is a PNG scanline filter. The numeric values are the tag bytes
// written into the filtered stream.
type FilterType byte

const (
	FilterNone FilterType = iota
	FilterSub
	FilterUp
	FilterAverage
	FilterPaeth
)

// paeth returns whichever of a (left), b (up), c (upper-left) is closest to
// a+b-c, preferring a, then b, on ties.
func paeth(a, b, c int) int {
	p := a + b - c
	pa := abs(p - a)
	pb := abs(p - b)
	pc := abs(p - c)
	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// filterRow writes the tag byte and transformed samples of row into dst,
// which must hold 1+len(row) bytes. prev is the raw previous scanline, nil
// for the first row. All subtraction wraps modulo 256.
func filterRow(dst []byte, ft FilterType, row, prev []byte, bpp int) {
	dst[0] = byte(ft)
	out := dst[1:]

	switch ft {
	case FilterNone:
		copy(out, row)
	case FilterSub:
		for i := range row {
			if i < bpp {
				out[i] = row[i]
			} else {
				out[i] = row[i] - row[i-bpp]
			}
		}
	case FilterUp:
		for i := range row {
			out[i] = row[i] - up(prev, i)
		}
	case FilterAverage:
		for i := range row {
			a := left(row, i, bpp)
			b := up(prev, i)
			out[i] = row[i] - byte((int(a)+int(b))/2)
		}
	case FilterPaeth:
		for i := range row {
			a := left(row, i, bpp)
			b := up(prev, i)
			c := upperLeft(prev, i, bpp)
			out[i] = row[i] - byte(paeth(int(a), int(b), int(c)))
		}
	}
}

func left(row []byte, i, bpp int) byte {
	if i < bpp {
		return 0
	}
	return row[i-bpp]
}

func up(prev []byte, i int) byte {
	if prev == nil {
		return 0
	}
	return prev[i]
}

func upperLeft(prev []byte, i, bpp int) byte {
	if prev == nil || i < bpp {
		return 0
	}
	return prev[i-bpp]
}

// filterSum scores a filtered row (tag excluded) as the sum of absolute
// signed-byte values. Lower scores tend to compress better.
func filterSum(out []byte) int {
	sum := 0
	for _, v := range out {
		sum += abs(int(int8(v)))
	}
	return sum
}

// chooseFilter runs all five filters on row into scratch and returns the one
// with the minimal score. The first filter reaching the minimum wins, so
// ties resolve in filter-index order.
func chooseFilter(scratch *[5][]byte, row, prev []byte, bpp int) FilterType {
	best := FilterNone
	bestSum := -1
	for ft := FilterNone; ft <= FilterPaeth; ft++ {
		dst := scratch[ft]
		filterRow(dst, ft, row, prev, bpp)
		sum := filterSum(dst[1:])
		if bestSum < 0 || sum < bestSum {
			bestSum = sum
			best = ft
		}
	}
	return best
}
