package algo

import "fmt"

// FindMaximumNumber returns the largest value in xs.
//
// Precondition: xs must be non-empty; an empty slice is an invalid argument.
// Postcondition: the returned value is an element of xs and >= every element.
func FindMaximumNumber(xs []int) (int, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("algo: maximum of empty sequence")
	}
	max := xs[0]
	for _, x := range xs[1:] {
		if x > max {
			max = x
		}
	}
	return max, nil
}

// FindSecondLargest returns the second-largest value in xs found by a single
// position scan. Duplicates of the maximum occupy distinct positions, so a
// repeated maximum does not count as its own runner-up; the result is the
// largest value strictly smaller than the maximum encountered during the scan.
//
// Precondition: len(xs) >= 2; fewer elements is an invalid argument.
func FindSecondLargest(xs []int) (int, error) {
	if len(xs) < 2 {
		return 0, fmt.Errorf("algo: second largest requires at least 2 elements, got %d", len(xs))
	}
	largest, second := xs[0], xs[1]
	if second > largest {
		largest, second = second, largest
	}
	for _, x := range xs[2:] {
		switch {
		case x > largest:
			second = largest
			largest = x
		case x > second && x < largest:
			second = x
		}
	}
	return second, nil
}

// Sum returns the sum of xs. An empty slice sums to 0. Overflow on very large
// inputs is the caller's concern.
func Sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

// RemoveDuplicates returns the distinct values of xs in first-occurrence order.
//
// Postcondition: the result's element set equals the element set of xs, and
// its length equals the count of distinct values in xs.
func RemoveDuplicates(xs []int) []int {
	seen := make(map[int]bool, len(xs))
	result := make([]int, 0, len(xs))
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			result = append(result, x)
		}
	}
	return result
}

// FindMissingNumber returns the single missing integer from xs, where xs holds
// the consecutive integers 1..n with exactly one absent (n == len(xs)+1).
// Computed as the expected 1..n sum minus the actual sum.
//
// Precondition: the input invariant holds; it is not validated.
func FindMissingNumber(xs []int) int {
	n := len(xs) + 1
	expected := n * (n + 1) / 2
	return expected - Sum(xs)
}

// FindCommonElements returns the elements of b that are also present in a.
// Output order follows b's iteration order, and duplicates in b repeat in the
// result when present in a.
func FindCommonElements(a, b []int) []int {
	inA := make(map[int]bool, len(a))
	for _, x := range a {
		inA[x] = true
	}
	var common []int
	for _, x := range b {
		if inA[x] {
			common = append(common, x)
		}
	}
	return common
}
