package rbac

import "banking-console/internal/session/domain"

// Capability names a discrete user-facing action.
type Capability string

const (
	CapAccountCreate Capability = "account:create"
	CapAccountView   Capability = "account:view"
	CapAccountUpdate Capability = "account:update"
	CapAccountDelete Capability = "account:delete"

	CapTransactionDeposit  Capability = "transaction:deposit"
	CapTransactionWithdraw Capability = "transaction:withdraw"
	CapTransactionTransfer Capability = "transaction:transfer"
	CapTransactionHistory  Capability = "transaction:history"

	CapEmployeeCreate Capability = "employee:create"
	CapEmployeeView   Capability = "employee:view"
	CapEmployeeUpdate Capability = "employee:update"
	CapEmployeeDelete Capability = "employee:delete"

	CapApprovalApprove Capability = "approval:approve"
	CapApprovalReject  Capability = "approval:reject"
	CapApprovalView    Capability = "approval:view"

	CapDashboardManager Capability = "dashboard:manager"
	CapDashboardClerk   Capability = "dashboard:clerk"
)

var (
	bothRoles   = []domain.Role{domain.RoleManager, domain.RoleClerk}
	managerOnly = []domain.Role{domain.RoleManager}
	clerkOnly   = []domain.Role{domain.RoleClerk}
)

// capabilityRoles is the closed capability table. An unknown capability is
// never granted.
var capabilityRoles = map[Capability][]domain.Role{
	CapAccountCreate: bothRoles,
	CapAccountView:   bothRoles,
	CapAccountUpdate: bothRoles,
	CapAccountDelete: bothRoles,

	CapTransactionDeposit:  bothRoles,
	CapTransactionWithdraw: bothRoles,
	CapTransactionTransfer: bothRoles,
	CapTransactionHistory:  bothRoles,

	CapEmployeeCreate: managerOnly,
	CapEmployeeView:   managerOnly,
	CapEmployeeUpdate: managerOnly,
	CapEmployeeDelete: managerOnly,

	CapApprovalApprove: managerOnly,
	CapApprovalReject:  managerOnly,
	CapApprovalView:    managerOnly,

	CapDashboardManager: managerOnly,
	CapDashboardClerk:   clerkOnly,
}

// Can reports whether the current user may exercise the capability.
func (e *Evaluator) Can(c Capability) bool {
	roles, ok := capabilityRoles[c]
	if !ok {
		return false
	}
	for _, r := range roles {
		if e.HasRole(string(r)) {
			return true
		}
	}
	return false
}

func (e *Evaluator) CanManageEmployees() bool { return e.Can(CapEmployeeView) }
func (e *Evaluator) CanApprove() bool         { return e.Can(CapApprovalApprove) }
func (e *Evaluator) CanTransact() bool        { return e.Can(CapTransactionDeposit) }
