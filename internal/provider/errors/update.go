package errors

import "errors"

var (
	ErrIPReceivedMalformed = errors.New("malformed IP address received")
	ErrRequestEncode       = errors.New("cannot encode request")
	ErrUnmarshalResponse   = errors.New("cannot unmarshal response")
	ErrZoneNotFound        = errors.New("hosted zone not found")
)
