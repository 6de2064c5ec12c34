package domain

// NodeType is the tier of a fund-flow node. It only drives visual weight.
type NodeType string

const (
	NodeNational   NodeType = "national"
	NodeState      NodeType = "state"
	NodeHospital   NodeType = "hospital"
	NodeDepartment NodeType = "department"
)

// NodeStatus is the health flag supplied by the data source.
type NodeStatus string

const (
	StatusHealthy NodeStatus = "healthy"
	StatusWarning NodeStatus = "warning"
	StatusDanger  NodeStatus = "danger"
)

type LedgerKind string

const (
	LedgerDonation   LedgerKind = "donation"
	LedgerFeePayment LedgerKind = "fee_payment"
	LedgerTransfer   LedgerKind = "transfer"
)

// ValidLedgerKinds is the canonical set of accepted ledger kind strings.
var ValidLedgerKinds = map[string]bool{
	"donation": true, "fee_payment": true, "transfer": true,
}

type Severity string

const (
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Dashboard names one of the fund-flow hierarchies shown by the app.
type Dashboard string

const (
	DashboardGovernment  Dashboard = "government"
	DashboardInstitution Dashboard = "institution"
)

// Dashboards lists every known dashboard in display order.
var Dashboards = []Dashboard{DashboardGovernment, DashboardInstitution}

// Valid reports whether d is a known dashboard.
func (d Dashboard) Valid() bool {
	for _, known := range Dashboards {
		if d == known {
			return true
		}
	}
	return false
}

// ContributionKind returns the ledger kind users contribute on this dashboard:
// donations for government funds, fee payments for institutions.
func (d Dashboard) ContributionKind() LedgerKind {
	if d == DashboardInstitution {
		return LedgerFeePayment
	}
	return LedgerDonation
}

// Label is the human-readable dashboard title.
func (d Dashboard) Label() string {
	switch d {
	case DashboardGovernment:
		return "Government"
	case DashboardInstitution:
		return "Institutions"
	default:
		return string(d)
	}
}
