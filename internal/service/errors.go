package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fundsflow/fundsflow/internal/domain"
)

var (
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidField     = errors.New("invalid field")
	ErrUnknownDashboard = errors.New("unknown dashboard")
)

func checkDashboard(d domain.Dashboard) error {
	if !d.Valid() {
		return fmt.Errorf("%w %q", ErrUnknownDashboard, d)
	}
	return nil
}

func formatValidationErrors(errs []error) error {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = "\n  - " + e.Error()
	}
	return fmt.Errorf("import validation failed (%d errors):%s", len(errs), strings.Join(msgs, ""))
}
