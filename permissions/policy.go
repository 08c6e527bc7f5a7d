package permissions

import (
	"petstay/config"
	"slices"
	"strings"
)

const (
	CapabilityOperator = "operator"
	CapabilityStaff    = "staff"
)

const (
	OperationConfirm  = "booking.confirm"
	OperationCancel   = "booking.cancel"
	OperationRestore  = "booking.restore"
	OperationCheckIn  = "booking.checkin"
	OperationCheckOut = "booking.checkout"
)

// Policy decides whether a principal, identified by e-mail, may run an operation.
type Policy interface {
	Authorize(principal, operation string) bool
}

type policyImpl struct {
	operations map[string]string
	members    map[string][]string
}

// NewPolicy binds the embedded operation table to the access lists in config.
// Operators also hold the staff capability.
func NewPolicy(data *PermissionData, cfg *config.Config) Policy {
	operators := normalize(cfg.App.Access.Operators)
	staff := append(normalize(cfg.App.Access.Staff), operators...)

	operations := map[string]string{}
	if data != nil {
		operations = data.Operations
	}

	return &policyImpl{
		operations: operations,
		members: map[string][]string{
			CapabilityOperator: operators,
			CapabilityStaff:    staff,
		},
	}
}

func (p *policyImpl) Authorize(principal, operation string) bool {
	principal = strings.ToLower(strings.TrimSpace(principal))
	if principal == "" {
		return false
	}

	capability, ok := p.operations[operation]
	if !ok {
		return false
	}

	return slices.Contains(p.members[capability], principal)
}

func normalize(emails []string) []string {
	out := make([]string, 0, len(emails))

	for _, email := range emails {
		if email = strings.ToLower(strings.TrimSpace(email)); email != "" {
			out = append(out, email)
		}
	}

	return out
}
