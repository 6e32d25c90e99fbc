package form

import (
	"errors"
	"strings"

	"github.com/samber/lo"
)

var ErrNameRequired = errors.New("name required")
var ErrTextRequired = errors.New("text required")
var ErrOptionRequired = errors.New("option required")

type Option string

const (
	OptionOne   Option = "option1"
	OptionTwo   Option = "option2"
	OptionThree Option = "option3"
)

var Options = []Option{OptionOne, OptionTwo, OptionThree}

// Fields is the submitted form. Checks and Switch are optional and never block submission.
type Fields struct {
	Name   string
	Text   string
	Option Option
	Checks []string
	Switch bool
}

// Check returns the first failing rule in the order name, text, option.
func Check(f Fields) error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(f.Text) == "" {
		return ErrTextRequired
	}
	if !lo.Contains(Options, f.Option) {
		return ErrOptionRequired
	}
	return nil
}

func Validate(f Fields) bool {
	return Check(f) == nil
}
