package util

import "errors"

var (
	ErrDeviceNotFound   = errors.New("device not found")
	ErrInvalidDeviceKey = errors.New("invalid device key")
)
