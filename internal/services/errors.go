package services

import "errors"

var (
	// ErrEmailTaken is returned on registration with an already-used email.
	ErrEmailTaken = errors.New("email sudah terdaftar")
	// ErrInvalidCredentials is returned on login with an unknown email or
	// wrong password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("email atau password salah")
)
