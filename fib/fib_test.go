package fib

import (
	"testing"
)

func TestSequence(t *testing.T) {
	want := []int{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144}
	for n, w := range want {
		if got := N(n); got != w {
			t.Fatalf("N(%d) = %d, want %d", n, got, w)
		}
	}
}

func TestAgainstRecursive(t *testing.T) {
	var rec func(n int) int
	rec = func(n int) int {
		if n <= 1 {
			return n
		}
		return rec(n-1) + rec(n-2)
	}
	for n := 0; n <= 20; n++ {
		if N(n) != rec(n) {
			t.Fatalf("N(%d) = %d, recursive gives %d", n, N(n), rec(n))
		}
	}
}
