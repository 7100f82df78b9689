package util

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Gcd is always non-negative; Gcd(0, 0) is 0.
func Gcd[A constraints.Integer](num1 A, num2 A) A {
	for num2 != 0 {
		num1, num2 = num2, num1%num2
	}
	if num1 < 0 {
		return -num1
	}
	return num1
}

func Max[A constraints.Ordered](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

func Sum[A constraints.Integer](nums []A) int64 {
	var total int64
	for _, v := range nums {
		total += int64(v)
	}
	return total
}

// ReadLines returns the file's lines without their line endings.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %v", path)
	}
	defer f.Close()

	var res []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		res = append(res, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "could not read %v", path)
	}
	return res, nil
}

// MaxLen is the length of the longest string.
func MaxLen(lines []string) int {
	var res int
	for _, l := range lines {
		res = Max(res, len(l))
	}
	return res
}
