// Package demo provides simple computations exposed alongside the relay payload.
// All arithmetic uses fixed width integers and wraps on overflow.
package demo

const version = "sdn-demo-v1.0.0"

func Add(a, b int32) int32 {
	return a + b
}

func Multiply(a, b int32) int32 {
	return a * b
}

// Fibonacci returns the n-th Fibonacci number, or 0 if n <= 0.
func Fibonacci(n int32) int32 {
	if n <= 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	var a, b int32 = 0, 1
	for i := int32(2); i <= n; i++ {
		a, b = b, a+b
	}
	return b
}

// Factorial returns n!, or -1 if n is negative.
// There is no overflow check, results past 20! wrap.
func Factorial(n int32) int64 {
	if n < 0 {
		return -1
	}
	var result int64 = 1
	for i := int32(2); i <= n; i++ {
		result *= int64(i)
	}
	return result
}

func Version() string {
	return version
}

// VersionLen returns the length of Version in bytes.
func VersionLen() int32 {
	return int32(len(version))
}
