package algo

// Factorial returns n! computed iteratively.
//
// Postcondition: Factorial(0) == 1; for n >= 1, Factorial(n) == Factorial(n-1) * n.
// Negative n returns 1: the loop body never executes. Overflow on large n is
// the caller's concern.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// IsPrime reports whether n is a prime number. Any n <= 1 is not prime.
// Uses trial division up to the square root of n.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Fibonacci returns the nth Fibonacci number with F(0)=0 and F(1)=1.
// Iterative, O(n) time, O(1) space.
//
// Precondition: n >= 0.
func Fibonacci(n int) int {
	a, b := 0, 1
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}
	return a
}
