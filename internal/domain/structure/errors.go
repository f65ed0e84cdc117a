package structure

import "errors"

var (
	ErrStructureNotFound = errors.New("salary structure not found")
	ErrScaleExists       = errors.New("salary scale already exists")
)
