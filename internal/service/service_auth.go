// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrey Karpushin

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akarpushin/go-notes-api/internal/config"
	"github.com/akarpushin/go-notes-api/internal/logger"
	"github.com/akarpushin/go-notes-api/internal/mail"
	"github.com/akarpushin/go-notes-api/internal/store"
	"github.com/akarpushin/go-notes-api/internal/utils"
	"github.com/akarpushin/go-notes-api/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration with email verification, credential
// checks, and JWT token lifecycle using a UserRepository for persistence,
// bcrypt for password hashing and a mail Sender for OTP delivery.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// mailSender delivers one-time verification codes.
	mailSender mail.Sender

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the cost factor applied when hashing passwords.
	bcryptCost int

	// otpTTL is how long a freshly issued verification code stays valid.
	otpTTL time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and mail Sender, populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, mailSender mail.Sender, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		mailSender:     mailSender,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cfg.BcryptCost,
		otpTTL:         cfg.OTPTTL,
		logger:         logger,
	}
}

// SignUp creates a new unverified account and issues its first
// verification code.
//
// The email is lowercased and the name trimmed before persistence. The
// password is hashed with bcrypt. OTP delivery is best-effort: a mail
// failure is logged and the signup still succeeds, since the user can ask
// for a resend.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if any field is empty.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken — see store.ErrEmailAlreadyExists).
func (a *authService) SignUp(ctx context.Context, email, name, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	name = strings.TrimSpace(name)
	if email == "" || name == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		OTPCode:      utils.GenerateOTP(),
		OTPExpiresAt: time.Now().Add(a.otpTTL),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	// delivery failure must not undo the signup
	if sendErr := a.mailSender.SendOTP(ctx, registeredUser.Email, registeredUser.Name, registeredUser.OTPCode); sendErr != nil {
		log.Err(sendErr).Str("email", email).Msg("otp delivery failed after signup")
	}

	return registeredUser, nil
}

// VerifyOTP checks the supplied code against the account's pending one
// and, on success, marks the account verified and issues a session token.
//
// Failure order, each with its own sentinel:
//   - unknown email → store.ErrUserNotFound
//   - already verified → ErrAlreadyVerified
//   - no pending code → ErrNoOTPIssued
//   - wrong code → ErrOTPMismatch
//   - expired code → ErrOTPExpired
//
// The verifying UPDATE is guarded in the database; losing the race to a
// concurrent request reports ErrAlreadyVerified.
func (a *authService) VerifyOTP(ctx context.Context, email, code string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" || code == "" {
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	switch {
	case user.IsEmailVerified:
		return models.User{}, models.Token{}, ErrAlreadyVerified
	case !user.HasOTP():
		return models.User{}, models.Token{}, ErrNoOTPIssued
	case user.OTPCode != code:
		return models.User{}, models.Token{}, ErrOTPMismatch
	case time.Now().After(user.OTPExpiresAt):
		return models.User{}, models.Token{}, ErrOTPExpired
	}

	if err := a.userRepository.VerifyEmail(ctx, user.ID, code); err != nil {
		if errors.Is(err, store.ErrVerificationConflict) {
			return models.User{}, models.Token{}, ErrAlreadyVerified
		}
		log.Err(err).Str("email", email).Msg("email verification failed")
		return models.User{}, models.Token{}, fmt.Errorf("email verification failed: %w", err)
	}

	user.IsEmailVerified = true
	user.OTPCode = ""
	user.OTPExpiresAt = time.Time{}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Str("email", email).Msg("token creation failed after verification")
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// Login authenticates an account by email and password.
//
// Every credential failure (unknown email, account without a password,
// wrong password) collapses into ErrInvalidCredentials so responses never
// reveal whether an address is registered.
//
// Correct credentials on an unverified account reissue a verification
// code (best-effort delivery) and fail with ErrEmailNotVerified.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if user.PasswordHash == "" || !utils.ComparePassword(user.PasswordHash, password) {
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	if !user.IsEmailVerified {
		switch reissueErr := a.reissueOTP(ctx, &user); {
		case reissueErr == nil:
			// delivery is best-effort here, VerifyOTP is still reachable via resend
			if sendErr := a.mailSender.SendOTP(ctx, user.Email, user.Name, user.OTPCode); sendErr != nil {
				log.Err(sendErr).Str("email", email).Msg("otp delivery failed on login")
			}
			return models.User{}, models.Token{}, ErrEmailNotVerified
		case errors.Is(reissueErr, store.ErrUserAlreadyVerified):
			// the account got verified concurrently, proceed with login
			log.Info().Str("email", email).Msg("otp reissue skipped, account verified concurrently")
			user.IsEmailVerified = true
		default:
			log.Err(reissueErr).Str("email", email).Msg("otp reissue failed during login")
			return models.User{}, models.Token{}, fmt.Errorf("otp reissue failed: %w", reissueErr)
		}
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Str("email", email).Msg("token creation failed after login")
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// ResendOTP issues a fresh verification code for an unverified account.
//
// Unlike signup, an explicit resend surfaces mail failures to the caller
// as ErrOTPDeliveryFailed: the resend exists only to deliver the code.
//
// Returns:
//   - store.ErrUserNotFound for unknown emails.
//   - ErrAlreadyVerified for verified accounts, including a lost race.
func (a *authService) ResendOTP(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" {
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	if user.IsEmailVerified {
		return ErrAlreadyVerified
	}

	if err := a.reissueOTP(ctx, &user); err != nil {
		if errors.Is(err, store.ErrUserAlreadyVerified) {
			return ErrAlreadyVerified
		}
		log.Err(err).Str("email", email).Msg("otp reissue failed on resend")
		return fmt.Errorf("otp reissue failed: %w", err)
	}

	if err := a.mailSender.SendOTP(ctx, user.Email, user.Name, user.OTPCode); err != nil {
		log.Err(err).Str("email", email).Msg("otp delivery failed on resend")
		return fmt.Errorf("%w: %w", ErrOTPDeliveryFailed, err)
	}

	return nil
}

// reissueOTP generates a fresh code and stores it behind the unverified
// guard, mutating user with the new code on success. It returns
// [store.ErrUserAlreadyVerified] when the guard matches no row, and the
// repository error as-is on any other failure.
func (a *authService) reissueOTP(ctx context.Context, user *models.User) error {
	code := utils.GenerateOTP()
	expiresAt := time.Now().Add(a.otpTTL)

	if err := a.userRepository.SetOTP(ctx, user.ID, code, expiresAt); err != nil {
		return err
	}

	user.OTPCode = code
	user.OTPExpiresAt = expiresAt

	return nil
}

// GoogleLogin issues a session token for an already-resolved local user.
// Verification state is not checked: Google confirmed the address.
func (a *authService) GoogleLogin(ctx context.Context, user models.User) (models.Token, error) {
	if user.ID == "" || user.Email == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	return a.CreateToken(ctx, user)
}

// GetProfile returns the account with the given ID.
//
// Returns a wrapped store.ErrUserNotFound for unknown IDs.
func (a *authService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("userID", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// UpdateProfile applies a partial name/avatar update. An update carrying
// no changes is answered with the current record rather than an error.
func (a *authService) UpdateProfile(ctx context.Context, userID, name, avatar string) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.User{}, ErrInvalidDataProvided
	}
	name = strings.TrimSpace(name)

	user, err := a.userRepository.UpdateProfile(ctx, userID, name, avatar)
	if err != nil {
		if errors.Is(err, store.ErrNothingToUpdate) {
			return a.GetProfile(ctx, userID)
		}
		log.Err(err).Str("userID", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return user, nil
}

// InitiatePasswordReset acknowledges a reset request without revealing
// whether the address is registered: unknown emails succeed silently.
// Accounts that authenticate exclusively through Google are rejected with
// ErrGoogleOnlyAccount since they have no password to reset.
func (a *authService) InitiatePasswordReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" {
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// do not reveal registration state
			return nil
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	if user.PasswordHash == "" {
		return ErrGoogleOnlyAccount
	}

	// reset-link generation is not implemented yet; the endpoint exists
	// so clients get the uniform acknowledgement
	log.Info().Str("email", email).Msg("password reset initiated")
	return nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
