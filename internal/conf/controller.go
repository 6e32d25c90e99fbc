// Package conf gates the main screen behind a valid stored SOS number.
package conf

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/DoyleJ11/sosphone-backend/internal/nav"
	"github.com/DoyleJ11/sosphone-backend/internal/prefs"
)

var ErrEmptyInput = errors.New("empty input")
var ErrInvalidPhoneFormat = errors.New("invalid phone format")

// Validator is the region-aware phone correctness check.
type Validator interface {
	ParseAndValidate(raw, region string) bool
}

type Controller struct {
	store  prefs.Store
	phones Validator
	region string
	log    *zap.Logger
}

func NewController(store prefs.Store, phones Validator, region string, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{store: store, phones: phones, region: region, log: log}
}

func (c *Controller) Region() string { return c.region }

func (c *Controller) LoadStoredNumber(ctx context.Context) (string, bool, error) {
	phone, ok, err := c.store.Get(ctx, prefs.KeySOSPhone)
	if err != nil {
		return "", false, fmt.Errorf("load stored number: %w", err)
	}
	return phone, ok, nil
}

// Check explains why candidate would be rejected, nil if it is acceptable.
func (c *Controller) Check(candidate, region string) error {
	if strings.TrimSpace(candidate) == "" {
		return ErrEmptyInput
	}
	if !c.phones.ParseAndValidate(candidate, region) {
		return ErrInvalidPhoneFormat
	}
	return nil
}

func (c *Controller) Validate(candidate, region string) bool {
	return c.Check(candidate, region) == nil
}

// Submit persists an acceptable candidate and returns the launch of the main screen.
func (c *Controller) Submit(ctx context.Context, candidate string) (nav.Intent, error) {
	if err := c.Check(candidate, c.region); err != nil {
		c.log.Debug("rejected sos number", zap.String("region", c.region), zap.Error(err))
		return nav.Intent{}, err
	}
	if err := c.store.Set(ctx, prefs.KeySOSPhone, candidate); err != nil {
		return nav.Intent{}, fmt.Errorf("store sos number: %w", err)
	}
	c.log.Info("sos number stored")
	return mainIntent(candidate), nil
}

// Reset forgets the stored number and returns the launch of the entry screen with the reset flag.
func (c *Controller) Reset(ctx context.Context) (nav.Intent, error) {
	if err := c.store.Remove(ctx, prefs.KeySOSPhone); err != nil {
		return nav.Intent{}, fmt.Errorf("clear sos number: %w", err)
	}
	c.log.Info("sos number cleared")
	return ResetIntent(), nil
}

// ResetIntent is the signal used by every "start over" edge back to the entry screen.
func ResetIntent() nav.Intent {
	return nav.Intent{Target: nav.ScreenEntry, ResetFlag: true, ClearTop: true}
}

// Gate applies the entry policy to a fresh entry screen: with a stored number and no reset
// request, control moves straight to the main screen.
func (c *Controller) Gate(ctx context.Context, in nav.Intent) (nav.Intent, bool, error) {
	if in.ResetFlag {
		return nav.Intent{}, false, nil
	}
	phone, ok, err := c.LoadStoredNumber(ctx)
	if err != nil || !ok {
		return nav.Intent{}, false, err
	}
	return mainIntent(phone), true, nil
}

// EntryUpdate is what the entry screen must do when it becomes visible.
type EntryUpdate struct {
	ClearField bool
	Notice     bool
}

// OnEntryScreenShown consumes the reset flag of in.
func OnEntryScreenShown(in *nav.Intent) EntryUpdate {
	if in.TakeReset() {
		return EntryUpdate{ClearField: true, Notice: true}
	}
	return EntryUpdate{}
}

func mainIntent(phone string) nav.Intent {
	return nav.Intent{Target: nav.ScreenMain, PhoneNumber: phone, ClearTop: true}
}
