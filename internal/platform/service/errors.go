package service

import "errors"

var (
	ErrUnsupportedFormat    = errors.New("unsupported certificate format")
	ErrFileTooLarge         = errors.New("certificate exceeds the 10 MiB limit")
	ErrUnauthenticated      = errors.New("not signed in")
	ErrDuplicateCertificate = errors.New("certificate already exists for this user")
	ErrProcessingFailure    = errors.New("certificate processing failed")
	ErrCertificateNotFound  = errors.New("certificate not found")

	ErrInvalidUserType    = errors.New("invalid user type")
	ErrUserTypeRequired   = errors.New("user type has not been selected")
	ErrVerificationFailed = errors.New("world id verification failed")
	ErrInvalidProof       = errors.New("invalid world id proof")
)
