package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers every password-login failure: unknown
	// email, account without a password, and wrong password. Callers must
	// not reveal which of the three occurred.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailNotVerified is returned on login with correct credentials
	// while the account still awaits OTP verification. A fresh code has
	// already been issued when this error is returned.
	ErrEmailNotVerified = errors.New("email is not verified")

	// ErrAlreadyVerified rejects OTP operations on verified accounts,
	// including the case where a concurrent request won the verification
	// race.
	ErrAlreadyVerified = errors.New("email is already verified")

	// ErrNoOTPIssued is returned when an account has no pending
	// verification code to check against.
	ErrNoOTPIssued = errors.New("no verification code was issued")

	ErrOTPMismatch = errors.New("wrong verification code")
	ErrOTPExpired  = errors.New("verification code is expired")

	// ErrOTPDeliveryFailed is returned by explicit resend requests when
	// the mail gateway rejects the message. Signup swallows the same
	// failure.
	ErrOTPDeliveryFailed = errors.New("could not deliver verification code")

	// ErrGoogleOnlyAccount rejects password-reset initiation for accounts
	// that authenticate exclusively through Google.
	ErrGoogleOnlyAccount = errors.New("account uses google sign-in only")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
