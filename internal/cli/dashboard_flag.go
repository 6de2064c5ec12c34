package cli

import (
	"fmt"
	"strings"

	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/spf13/pflag"
)

// dashboardValue is a pflag.Value accepting only known dashboards.
type dashboardValue struct {
	value domain.Dashboard
}

var _ pflag.Value = (*dashboardValue)(nil)

func newDashboardValue(def domain.Dashboard) *dashboardValue {
	if !def.Valid() {
		def = domain.DashboardGovernment
	}
	return &dashboardValue{value: def}
}

func (d *dashboardValue) String() string { return string(d.value) }

func (d *dashboardValue) Set(s string) error {
	v := domain.Dashboard(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		names := make([]string, len(domain.Dashboards))
		for i, known := range domain.Dashboards {
			names[i] = string(known)
		}
		return fmt.Errorf("unknown dashboard %q (want %s)", s, strings.Join(names, " or "))
	}
	d.value = v
	return nil
}

func (d *dashboardValue) Type() string { return "dashboard" }

func (d *dashboardValue) Dashboard() domain.Dashboard { return d.value }
