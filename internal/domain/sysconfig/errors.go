package sysconfig

import "errors"

var (
	ErrConfigKeyNotFound = errors.New("config key not found")
)
