package shortcuts

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ReadProblem reads a problem instance from r: the node count n followed by
// n shortcut targets in [1, n], all as whitespace-separated decimal tokens.
// It returns the 0-indexed mapping (shortcut[i] = raw[i] - 1) that Distances
// consumes. Targets are range-checked here, before the core ever sees them.
func ReadProblem(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	// 1) Node count.
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("shortcuts: read node count: %w", err)
		}

		return nil, ErrMissingNodeCount
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadNodeCount, sc.Text())
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadNodeCount, n)
	}

	// 2) Exactly n targets, 1-indexed in the source format.
	shortcut := make([]int, n)
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			if err = sc.Err(); err != nil {
				return nil, fmt.Errorf("shortcuts: read shortcut list: %w", err)
			}

			return nil, fmt.Errorf("%w: got %d of %d targets", ErrBadShortcutList, i, n)
		}
		raw, convErr := strconv.Atoi(sc.Text())
		if convErr != nil {
			return nil, fmt.Errorf("%w: target %d is %q", ErrBadShortcutList, i, sc.Text())
		}
		if raw < 1 || raw > n {
			return nil, fmt.Errorf("%w: target %d is %d, want [1, %d]", ErrShortcutOutOfRange, i, raw, n)
		}
		shortcut[i] = raw - 1
	}

	return shortcut, nil
}

// WriteDistances writes dist to w in index order, separated by single
// spaces and terminated by a newline. Writes are buffered; any underlying
// write error is reported once, at flush.
func WriteDistances(w io.Writer, dist []int) error {
	bw := bufio.NewWriter(w)
	for i, d := range dist {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.Itoa(d))
	}
	bw.WriteByte('\n')

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("shortcuts: write distances: %w", err)
	}

	return nil
}
