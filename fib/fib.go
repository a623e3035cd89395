// Package fib computes Fibonacci numbers by simulating the naive double
// recursion with an explicit frame stack instead of using the call stack.
// It is a standalone utility with no relationship to the codec.
package fib

// frame is one simulated activation record. state tracks how many of the
// two recursive results have been folded into result so far.
type frame struct {
	n      int
	state  int
	result int
}

// N returns the nth Fibonacci number, with N(0) = 0 and N(1) = 1.
func N(n int) int {
	if n <= 1 {
		return n
	}
	stack := make([]frame, 0, n+1)
	stack = append(stack, frame{n: n})
	var result int
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch f.state {
		case 0:
			if f.n <= 1 {
				result = f.n
				continue
			}
			f.state = 1
			stack = append(stack, f)
			stack = append(stack, frame{n: f.n - 1})
		case 1:
			f.result += result
			f.state = 2
			stack = append(stack, f)
			stack = append(stack, frame{n: f.n - 2})
		case 2:
			f.result += result
			result = f.result
		}
	}
	return result
}
