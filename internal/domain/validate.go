package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var nodeValidator = newNodeValidator()

func newNodeValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateTree checks a fund tree before it is stored or displayed.
// It returns every problem found, joined into one error, or nil.
//
// Rejected: missing id/name, unknown type or status, negative amounts,
// a zero allocation with a nonzero amount, duplicate ids, and any node
// reachable through more than one parent.
func ValidateTree(root *FundNode) error {
	if root == nil {
		return errors.New("fund tree is empty")
	}

	var errs []error
	seenIDs := make(map[string]bool)
	seenNodes := make(map[*FundNode]bool)

	var visit func(n *FundNode, path string)
	visit = func(n *FundNode, path string) {
		if n == nil {
			errs = append(errs, fmt.Errorf("%s: nil node", path))
			return
		}
		if seenNodes[n] {
			errs = append(errs, fmt.Errorf("%s: node %q appears more than once (cycle or shared subtree)", path, n.ID))
			return
		}
		seenNodes[n] = true

		label := path
		if n.ID != "" {
			label = fmt.Sprintf("%s (%s)", path, n.ID)
		}
		errs = append(errs, validateNode(n, label)...)

		if n.ID != "" {
			if seenIDs[n.ID] {
				errs = append(errs, fmt.Errorf("%s: duplicate id %q", label, n.ID))
			}
			seenIDs[n.ID] = true
		}

		for i, c := range n.Children {
			visit(c, fmt.Sprintf("%s.children[%d]", path, i))
		}
	}
	visit(root, "root")

	return errors.Join(errs...)
}

func validateNode(n *FundNode, label string) []error {
	var errs []error
	if err := nodeValidator.Struct(n); err != nil {
		errs = append(errs, fieldErrors(label, err)...)
	}
	if n.Metadata != nil {
		if err := nodeValidator.Struct(n.Metadata); err != nil {
			errs = append(errs, fieldErrors(label+".metadata", err)...)
		}
	}
	if n.Allocated != nil && *n.Allocated == 0 && n.Amount != 0 {
		errs = append(errs, fmt.Errorf("%s: allocated is 0 but amount is %d", label, n.Amount))
	}
	return errs
}

func fieldErrors(label string, err error) []error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []error{fmt.Errorf("%s: %w", label, err)}
	}
	out := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out = append(out, fmt.Errorf("%s: %s is required", label, fe.Field()))
		case "gte":
			out = append(out, fmt.Errorf("%s: %s must not be negative (got %v)", label, fe.Field(), fe.Value()))
		case "oneof":
			out = append(out, fmt.Errorf("%s: %s %q must be one of [%s]", label, fe.Field(), fe.Value(), fe.Param()))
		default:
			out = append(out, fmt.Errorf("%s: %s failed %q", label, fe.Field(), fe.Tag()))
		}
	}
	return out
}
