package build

import "errors"

var (
	ErrInvalidSelector    = errors.New("invalid selector")
	ErrInvalidSiteURL     = errors.New("invalid site url")
	ErrInvalidOutputMode  = errors.New("invalid output mode")
	ErrInvalidAdapterKind = errors.New("invalid adapter kind")
	ErrAdapterMismatch    = errors.New("adapter does not match output mode")
	ErrInvalidIntegration = errors.New("invalid integration")
)
