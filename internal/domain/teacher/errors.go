package teacher

import "errors"

var (
	ErrTeacherNotFound = errors.New("teacher not found")
	ErrEmployeeIDTaken = errors.New("employee id already exists")
)
