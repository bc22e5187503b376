package dp

import "fmt"

// maxFibN is the largest n whose Fibonacci number fits in int64.
const maxFibN = 92

// Fibonacci returns F(n) with F(0)=0 and F(1)=1, computed bottom-up.
func Fibonacci(n int) (int64, error) {
	switch {
	case n < 0:
		return 0, fmt.Errorf("%w: %d", ErrNegativeN, n)
	case n > maxFibN:
		return 0, fmt.Errorf("%w: F(%d), max n is %d", ErrOverflow, n, maxFibN)
	case n < 2:
		return int64(n), nil
	}

	prev, cur := int64(0), int64(1)
	for i := 2; i <= n; i++ {
		prev, cur = cur, prev+cur
	}

	return cur, nil
}
