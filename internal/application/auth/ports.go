package auth

import "context"

// ResetTokenStore holds single-use, time-bound password-reset tokens.
type ResetTokenStore interface {
	Save(ctx context.Context, token, userID string) error
	// Redeem consumes the token and returns the user id it was issued for,
	// or ("", nil) when the token is unknown, expired or already consumed.
	Redeem(ctx context.Context, token string) (string, error)
}

// Mailer delivers the reset token out of band. Delivery failures are the
// collaborator's problem; the token stays valid until its TTL.
type Mailer interface {
	SendResetPassword(to, fullName, token string) error
}
