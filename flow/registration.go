// Package flow holds the multi-step state machines behind the registration
// wizard and the password-recovery sub-flow. The machines validate locally
// before touching the network and never advance on a failed request.
package flow

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yesyese/Visitor-Portal/gateway"
)

// MinPasswordLength is the shortest password the portal accepts.
const MinPasswordLength = 6

// otpPattern is the fixed shape of a one-time code.
var otpPattern = regexp.MustCompile(`^[0-9]{6}$`)

// ErrAlreadyRegistered is returned when the remote service reports a conflict
// on registration; the wizard stays put and offers the login page instead.
var ErrAlreadyRegistered = errors.New("an account with this email already exists")

// ValidationError is a local, pre-network rejection. It renders inline next
// to the form that caused it.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErr(message string) error {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// State is the registration wizard's position.
type State int

const (
	StateCollectingProfile State = iota
	StateAwaitingOTP
	StateSettingPassword
	StateDone
)

func (s State) String() string {
	switch s {
	case StateCollectingProfile:
		return "collecting_profile"
	case StateAwaitingOTP:
		return "awaiting_otp"
	case StateSettingPassword:
		return "setting_password"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Draft carries the profile fields collected in the first wizard step. It
// lives only inside the flow store and is discarded when the flow expires.
type Draft struct {
	Name             string
	Email            string
	MobileNo         string
	PassportNumber   string
	Nationality      string
	PassportValidity string
}

func (d Draft) complete() bool {
	return d.Name != "" && d.Email != "" && d.MobileNo != "" &&
		d.PassportNumber != "" && d.Nationality != "" && d.PassportValidity != ""
}

func (d Draft) request() gateway.RegistrationRequest {
	return gateway.RegistrationRequest{
		Name:             d.Name,
		Email:            d.Email,
		MobileNo:         d.MobileNo,
		PassportNumber:   d.PassportNumber,
		Nationality:      d.Nationality,
		PassportValidity: d.PassportValidity,
	}
}

// AuthAPI is the slice of the gateway the wizard drives.
type AuthAPI interface {
	Register(ctx context.Context, req gateway.RegistrationRequest) error
	VerifyOTP(ctx context.Context, email, otp string) error
	SetPassword(ctx context.Context, email, password string) error
}

// Registration is one wizard instance. The flow ID rides in the page URL, so
// concurrent requests can carry the same instance (a double-clicked resend
// racing a verify); the mutex serializes them, holding across the remote call
// so a step completes or fails as a unit.
type Registration struct {
	ID        string
	State     State
	Draft     Draft
	CreatedAt time.Time

	mu sync.Mutex
}

func NewRegistration() *Registration {
	return &Registration{
		ID:        uuid.NewString(),
		State:     StateCollectingProfile,
		CreatedAt: time.Now(),
	}
}

// Snapshot returns a consistent view of the wizard's position and draft for
// rendering while other requests may be mutating the flow.
func (r *Registration) Snapshot() (State, Draft) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.State, r.Draft
}

// guard is called with mu held.
func (r *Registration) guard(want State) error {
	if r.State != want {
		return fmt.Errorf("step not available in state %s", r.State)
	}
	return nil
}

// SubmitProfile validates the draft, fires the registration request (which
// sends the OTP email), and advances to AwaitingOTP. A conflict means the
// email already has an account: the machine stays in CollectingProfile and
// the caller surfaces a login affordance instead of retrying.
func (r *Registration) SubmitProfile(ctx context.Context, api AuthAPI, draft Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.guard(StateCollectingProfile); err != nil {
		return err
	}
	if !draft.complete() {
		return validationErr("Please fill in all required fields.")
	}
	r.Draft = draft

	if err := api.Register(ctx, draft.request()); err != nil {
		if gateway.IsConflict(err) {
			return ErrAlreadyRegistered
		}
		return err
	}
	r.State = StateAwaitingOTP
	return nil
}

// VerifyCode checks the code's shape locally, then asks the remote service.
// Failure leaves the state unchanged.
func (r *Registration) VerifyCode(ctx context.Context, api AuthAPI, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.guard(StateAwaitingOTP); err != nil {
		return err
	}
	if !otpPattern.MatchString(code) {
		return validationErr("Please enter a valid 6-digit OTP.")
	}
	if err := api.VerifyOTP(ctx, r.Draft.Email, code); err != nil {
		return err
	}
	r.State = StateSettingPassword
	return nil
}

// ResendCode re-fires the registration request without changing state. Every
// resend is an independent request; no cooldown is enforced here.
func (r *Registration) ResendCode(ctx context.Context, api AuthAPI) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.guard(StateAwaitingOTP); err != nil {
		return err
	}
	return api.Register(ctx, r.Draft.request())
}

// SetPassword finishes the wizard. Both local checks fail before any network
// request is issued.
func (r *Registration) SetPassword(ctx context.Context, api AuthAPI, password, confirm string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.guard(StateSettingPassword); err != nil {
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
	if err := api.SetPassword(ctx, r.Draft.Email, password); err != nil {
		return err
	}
	r.State = StateDone
	return nil
}
