package errors

import "errors"

var (
	ErrDomainNotSet       = errors.New("domain is not set")
	ErrHostnameNotSet     = errors.New("hostname is not set")
	ErrInstanceNameNotSet = errors.New("instance name is not set")
	ErrIPv4NotValid       = errors.New("IPv4 address is not valid")
	ErrKeyNotSet          = errors.New("key is not set")
	ErrKeyNotValid        = errors.New("key is not valid")
	ErrSecretNotSet       = errors.New("secret is not set")
	ErrNoRegisteredDomain = errors.New("hostname has no registered domain")
)

var ErrNotConfirmed = errors.New("destructive operation not confirmed")

var (
	ErrInstanceNotFound  = errors.New("instance not found")
	ErrInstanceAmbiguous = errors.New("several instances match")
	ErrNoPublicIP        = errors.New("no public IP address")
)
