package security

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sanhaja/internal/core/apperror"
	appctx "sanhaja/internal/core/context"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
		role appctx.Role
		want bool
	}{
		{"staff views reports", OpViewReports, appctx.RoleAgencyStaff, true},
		{"accountant views dashboard", OpViewDashboard, appctx.RoleGeneralAccountant, true},
		{"staff cannot manage agencies", OpManageAgencies, appctx.RoleAgencyStaff, false},
		{"accountant cannot manage agencies", OpManageAgencies, appctx.RoleGeneralAccountant, false},
		{"admin manages users", OpManageUsers, appctx.RoleSuperAdmin, true},
		{"accountant does not touch the ledger", OpManageLedger, appctx.RoleGeneralAccountant, false},
		{"staff touches the ledger", OpManageLedger, appctx.RoleAgencyStaff, true},
		{"staff submits daily reports", OpSubmitDailyReport, appctx.RoleAgencyStaff, true},
		{"accountant does not submit", OpSubmitDailyReport, appctx.RoleGeneralAccountant, false},
		{"accountant reviews daily reports", OpReviewDailyReport, appctx.RoleGeneralAccountant, true},
		{"staff never reviews", OpReviewDailyReport, appctx.RoleAgencyStaff, false},
		{"unknown operation denied", Operation("reports.delete"), appctx.RoleSuperAdmin, false},
		{"unknown role denied", OpViewReports, appctx.Role("intern"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.op, tt.role))
		})
	}
}

func TestRequire(t *testing.T) {
	assert.NoError(t, Require(OpViewReports, appctx.RoleAgencyStaff))

	err := Require(OpReviewDailyReport, appctx.RoleAgencyStaff)
	appErr, ok := apperror.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, apperror.CodeForbidden, appErr.Code)
	assert.Equal(t, string(OpReviewDailyReport), appErr.Details["operation"])
}
