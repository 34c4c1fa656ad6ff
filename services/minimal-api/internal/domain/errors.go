package domain

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")
)

// Offset turns a 1-indexed page into a row offset; pages below 1 read as 1.
func Offset(page, size int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * size
}
