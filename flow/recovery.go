package flow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// RecoveryState is the password-recovery sub-flow's position.
type RecoveryState int

const (
	RecoveryRequestingOTP RecoveryState = iota
	RecoveryVerifyingOTP
	RecoveryResettingPassword
	RecoveryRecovered
)

func (s RecoveryState) String() string {
	switch s {
	case RecoveryRequestingOTP:
		return "requesting_otp"
	case RecoveryVerifyingOTP:
		return "verifying_otp"
	case RecoveryResettingPassword:
		return "resetting_password"
	case RecoveryRecovered:
		return "recovered"
	default:
		return fmt.Sprintf("recovery_state(%d)", int(s))
	}
}

// RecoveryAPI is the slice of the gateway the sub-flow drives.
type RecoveryAPI interface {
	ForgotPassword(ctx context.Context, email string) error
	VerifyResetOTP(ctx context.Context, email, otp string) error
	ResetPassword(ctx context.Context, email, password string) error
}

// Recovery mirrors the registration wizard's OTP pattern for an existing
// account. Completion hands control back to the login page with a success
// message; it never authenticates by itself. Like Registration, the mutex
// serializes concurrent requests carrying the same flow ID.
type Recovery struct {
	ID        string
	State     RecoveryState
	Email     string
	CreatedAt time.Time

	mu sync.Mutex
}

func NewRecovery() *Recovery {
	return &Recovery{
		ID:        uuid.NewString(),
		State:     RecoveryRequestingOTP,
		CreatedAt: time.Now(),
	}
}

// Snapshot returns a consistent view of the flow's position and email.
func (r *Recovery) Snapshot() (RecoveryState, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.State, r.Email
}

// guard is called with mu held.
func (r *Recovery) guard(want RecoveryState) error {
	if r.State != want {
		return fmt.Errorf("step not available in state %s", r.State)
	}
	return nil
}

// RequestCode asks the service to mail a reset code and advances to
// VerifyingOTP.
func (r *Recovery) RequestCode(ctx context.Context, api RecoveryAPI, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.guard(RecoveryRequestingOTP); err != nil {
		return err
	}
	if email == "" {
		return validationErr("Please enter your email address.")
	}
	r.Email = email

	if err := api.ForgotPassword(ctx, email); err != nil {
		return err
	}
	r.State = RecoveryVerifyingOTP
	return nil
}

func (r *Recovery) VerifyCode(ctx context.Context, api RecoveryAPI, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.guard(RecoveryVerifyingOTP); err != nil {
		return err
	}
	if !otpPattern.MatchString(code) {
		return validationErr("Please enter a valid 6-digit OTP.")
	}
	if err := api.VerifyResetOTP(ctx, r.Email, code); err != nil {
		return err
	}
	r.State = RecoveryResettingPassword
	return nil
}

// ResendCode re-requests the reset code without changing state.
func (r *Recovery) ResendCode(ctx context.Context, api RecoveryAPI) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.guard(RecoveryVerifyingOTP); err != nil {
		return err
	}
	return api.ForgotPassword(ctx, r.Email)
}

// SetPassword submits the new password. On success the flow is Recovered and
// the caller returns the user to the login page.
func (r *Recovery) SetPassword(ctx context.Context, api RecoveryAPI, password, confirm string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.guard(RecoveryResettingPassword); err != nil {
		return err
	}
	if password == "" || confirm == "" {
		return validationErr("Please enter both password and confirmation.")
	}
	if password != confirm {
		return validationErr("Passwords do not match.")
	}
	if len(password) < MinPasswordLength {
		return validationErr("Password must be at least 6 characters long.")
	}
	if err := api.ResetPassword(ctx, r.Email, password); err != nil {
		return err
	}
	r.State = RecoveryRecovered
	return nil
}
