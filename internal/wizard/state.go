package wizard

import (
	"context"
	"errors"

	"khayl/internal/auth"
)

const TotalSteps = 6

var (
	// ErrValidation signals the current step failed validation; the
	// field errors are on the state.
	ErrValidation = errors.New("step validation failed")
	// ErrNotAtFinalStep guards Submit against being reached early.
	ErrNotAtFinalStep = errors.New("submission is only allowed at the final step")
)

// State is the transient wizard state. It lives in memory for the
// duration of the flow; nothing is persisted except the account shell
// created after step 1.
type State struct {
	Step            int
	Form            FormData
	Errors          map[string]string
	Info            string
	Authenticated   bool
	IsEmailVerified bool
	UserID          string
}

func NewState() State {
	return State{
		Step:   1,
		Errors: make(map[string]string),
	}
}

// ClearError drops a single field error. Editing a field clears only that
// field's message; the full step set is recomputed on the next advance.
func (s *State) ClearError(field string) {
	delete(s.Errors, field)
}

// --------------------------------------------------
// Pure transitions
// --------------------------------------------------

// advance moves one step forward, capped at TotalSteps.
func advance(s State) State {
	if s.Step < TotalSteps {
		s.Step++
	}
	return s
}

// retreat moves one step back. It is suppressed entirely once the email
// is verified and the current step is at or below 3: verified users must
// not re-enter verification or account creation. The floor is step 1.
func retreat(s State) (State, bool) {
	if s.IsEmailVerified && s.Step <= 3 {
		return s, false
	}
	if s.Step > 1 {
		s.Step--
	}
	return s, true
}

// --------------------------------------------------
// Controller
// --------------------------------------------------

// Accounts is the slice of the auth service the wizard drives: account
// creation at step 1 and code verification at step 2.
type Accounts interface {
	Register(ctx context.Context, username, email, password string) (*auth.User, error)
	SendVerification(ctx context.Context, userID string) error
	VerifyCode(ctx context.Context, userID, code string) error
}

// Controller owns one user's wizard state and applies transitions to it.
// Callers must serialize access (the HTTP layer holds a per-session lock).
type Controller struct {
	state     State
	msgs      Messages
	accounts  Accounts
	submitter *Submitter
}

func NewController(msgs Messages, accounts Accounts, submitter *Submitter) *Controller {
	return &Controller{
		state:     NewState(),
		msgs:      msgs,
		accounts:  accounts,
		submitter: submitter,
	}
}

func (c *Controller) State() *State {
	return &c.state
}

// ResolveInitial decides the starting step from the session lookup done
// on mount. A nil user means unauthenticated. detailErr covers the case
// where the session is known-good but the profile fetch failed; the flow
// degrades to step 3 rather than retrying.
// Returns true when the profile is already complete and the wizard should
// redirect out entirely.
func (c *Controller) ResolveInitial(user *auth.User, detailErr error) bool {
	switch {
	case user == nil && detailErr == nil:
		c.state.Step = 1

	case user == nil && detailErr != nil:
		// Session fetch failed outright: treat as unauthenticated.
		c.state.Step = 1

	case detailErr != nil:
		c.state.Authenticated = true
		c.state.UserID = user.ID
		c.state.IsEmailVerified = true
		c.state.Step = 3

	case user.ProfileCompleted:
		return true

	case user.IsEmailVerified:
		c.state.Authenticated = true
		c.state.UserID = user.ID
		c.state.IsEmailVerified = true
		c.state.Step = 3

	default:
		c.state.Authenticated = true
		c.state.UserID = user.ID
		c.state.Step = 2
	}

	return false
}

// NextStep validates the current step and advances on success. Step 1
// additionally creates the account and dispatches the verification code;
// step 2 submits the code. Failures leave the step unchanged.
func (c *Controller) NextStep(ctx context.Context) error {
	errs, ok := ValidateStep(c.state.Step, &c.state.Form, c.msgs)
	c.state.Errors = errs
	c.state.Info = ""
	if !ok {
		return ErrValidation
	}

	switch c.state.Step {
	case 1:
		signUp := c.state.Form.SignUp
		user, err := c.accounts.Register(ctx, signUp.UserName, signUp.Email, signUp.Password)
		if err != nil {
			if errors.Is(err, auth.ErrEmailExists) {
				c.state.Errors["email"] = err.Error()
			} else {
				c.state.Errors["signUp"] = c.msgs.Get("registration_failed")
			}
			return err
		}
		c.state.UserID = user.ID
		c.state.Authenticated = true
		c.state = advance(c.state)

	case 2:
		err := c.accounts.VerifyCode(ctx, c.state.UserID, c.state.Form.Verification.Code)
		if err != nil {
			// Field-level error only, no step change.
			c.state.Errors["verificationCode"] = c.msgs.Get("code_invalid")
			return err
		}
		c.state.IsEmailVerified = true
		c.state = advance(c.state)

	default:
		c.state = advance(c.state)
	}

	return nil
}

// PrevStep moves back one step where allowed. When suppressed (verified
// users at step <= 3) an informational message is set instead.
func (c *Controller) PrevStep() {
	next, ok := retreat(c.state)
	if !ok {
		c.state.Info = c.msgs.Get("verified_cannot_go_back")
		return
	}
	c.state = next
	c.state.Info = ""
}

// ResendCode re-dispatches the verification code from step 2.
func (c *Controller) ResendCode(ctx context.Context) error {
	if c.state.UserID == "" {
		return errors.New("no account to verify")
	}
	return c.accounts.SendVerification(ctx, c.state.UserID)
}

// Submit runs the submission pipeline. Only reachable at step 6. On
// success the state resets to step 1; on failure the state is kept so the
// user can retry the whole step-6 submission.
func (c *Controller) Submit(ctx context.Context) (*SubmitResult, error) {
	if c.state.Step != TotalSteps {
		return nil, ErrNotAtFinalStep
	}

	errs, ok := ValidateStep(TotalSteps, &c.state.Form, c.msgs)
	c.state.Errors = errs
	if !ok {
		return nil, ErrValidation
	}

	result, err := c.submitter.Submit(ctx, c.state.UserID, &c.state.Form)
	if err != nil {
		c.state.Errors["submit"] = c.msgs.Get("submit_failed")
		return nil, err
	}

	c.state = NewState()
	return result, nil
}
