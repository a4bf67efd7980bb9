package config

import "errors"

var (
	ErrAddressHostEmpty = errors.New("address host is empty")
	ErrAddressPortEmpty = errors.New("address port is empty")
	ErrTimeoutTooLow    = errors.New("timeout is too low")
	ErrTTLTooLow        = errors.New("TTL is too low")
	ErrURLNotValid      = errors.New("URL is not valid")
	ErrCredentialsPair  = errors.New("access key ID and secret access key must be set together")
)
