package importer

import (
	"fmt"
	"strings"

	"github.com/fundsflow/fundsflow/internal/domain"
)

// ValidateTree runs the tree checks and returns every problem as its own
// error, or nil when the tree is acceptable.
func ValidateTree(root *domain.FundNode) []error {
	err := domain.ValidateTree(root)
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// LoadAndValidate loads path and rejects it when validation fails. The
// returned error lists each problem on its own line.
func LoadAndValidate(path string) (*domain.FundNode, error) {
	root, err := LoadTree(path)
	if err != nil {
		return nil, err
	}
	if errs := ValidateTree(root); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = "  - " + e.Error()
		}
		return nil, fmt.Errorf("import validation failed (%d errors):\n%s", len(errs), strings.Join(msgs, "\n"))
	}
	return root, nil
}
