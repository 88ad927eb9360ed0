// Package security provides authorization and tenant scoping.
//
// All role checks in the platform go through the policy table below and the
// scope Resolver; handlers and services must not branch on roles directly.
package security

import (
	"fmt"

	"sanhaja/internal/core/apperror"
	appctx "sanhaja/internal/core/context"
)

// Operation names an action gated by the policy table.
type Operation string

const (
	// Reporting
	OpViewReports   Operation = "reports.view"
	OpViewDashboard Operation = "dashboard.view"

	// Agencies and users
	OpListAgencies   Operation = "agencies.list"
	OpManageAgencies Operation = "agencies.manage"
	OpManageUsers    Operation = "users.manage"

	// Ledger entry (clients, suppliers, bookings, invoices, payments)
	OpManageLedger Operation = "ledger.manage"

	// Daily report workflow
	OpSubmitDailyReport Operation = "daily_reports.submit"
	OpReviewDailyReport Operation = "daily_reports.review" // approve or reject
	OpListDailyReports  Operation = "daily_reports.list"
)

// policy is the single declarative (operation, role) → allowed table.
// Keeping it in one place makes the authorization surface auditable.
var policy = map[Operation]map[appctx.Role]bool{
	OpViewReports: {
		appctx.RoleSuperAdmin:        true,
		appctx.RoleGeneralAccountant: true,
		appctx.RoleAgencyStaff:       true,
	},
	OpViewDashboard: {
		appctx.RoleSuperAdmin:        true,
		appctx.RoleGeneralAccountant: true,
		appctx.RoleAgencyStaff:       true,
	},
	OpListAgencies: {
		appctx.RoleSuperAdmin:        true,
		appctx.RoleGeneralAccountant: true,
		appctx.RoleAgencyStaff:       true,
	},
	OpManageAgencies: {
		appctx.RoleSuperAdmin: true,
	},
	OpManageUsers: {
		appctx.RoleSuperAdmin: true,
	},
	OpManageLedger: {
		appctx.RoleSuperAdmin:  true,
		appctx.RoleAgencyStaff: true,
	},
	OpSubmitDailyReport: {
		appctx.RoleSuperAdmin:  true,
		appctx.RoleAgencyStaff: true,
	},
	OpReviewDailyReport: {
		appctx.RoleSuperAdmin:        true,
		appctx.RoleGeneralAccountant: true,
	},
	OpListDailyReports: {
		appctx.RoleSuperAdmin:        true,
		appctx.RoleGeneralAccountant: true,
		appctx.RoleAgencyStaff:       true,
	},
}

// Allowed reports whether role may perform op.
// Unknown operations and unknown roles are denied.
func Allowed(op Operation, role appctx.Role) bool {
	roles, ok := policy[op]
	if !ok {
		return false
	}
	return roles[role]
}

// Require returns Forbidden if role may not perform op.
// The error names the operation, never the resource it was aimed at.
func Require(op Operation, role appctx.Role) error {
	if !Allowed(op, role) {
		return apperror.NewForbidden(
			fmt.Sprintf("role %s may not perform %s", role, op),
		).WithDetail("operation", string(op))
	}
	return nil
}
