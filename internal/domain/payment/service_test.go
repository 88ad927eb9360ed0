package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanhaja/internal/core/apperror"
	"sanhaja/internal/core/audit"
	appctx "sanhaja/internal/core/context"
	"sanhaja/internal/core/id"
	"sanhaja/internal/core/security"
	"sanhaja/internal/core/sequence"
	"sanhaja/internal/core/types"
	"sanhaja/internal/domain/invoice"
)

type paymentRepoStub struct {
	payments []*Payment
}

func (r *paymentRepoStub) Create(_ context.Context, p *Payment) error {
	cp := *p
	r.payments = append(r.payments, &cp)
	return nil
}

func (r *paymentRepoStub) List(_ context.Context, scope security.TenantScope) ([]*Payment, error) {
	var out []*Payment
	for _, p := range r.payments {
		if scope.Contains(p.AgencyID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *paymentRepoStub) TotalForInvoice(_ context.Context, invoiceID id.ID) (types.Money, error) {
	total := types.Zero()
	for _, p := range r.payments {
		if p.InvoiceID == invoiceID {
			total = total.Add(p.Amount)
		}
	}
	return total, nil
}

type invoiceRepoStub struct {
	invoices map[id.ID]*invoice.Invoice
}

func (r *invoiceRepoStub) Create(_ context.Context, inv *invoice.Invoice) error {
	r.invoices[inv.ID] = inv
	return nil
}

func (r *invoiceRepoStub) GetByID(_ context.Context, invoiceID id.ID) (*invoice.Invoice, error) {
	inv, ok := r.invoices[invoiceID]
	if !ok {
		return nil, apperror.NewNotFound("invoice", invoiceID)
	}
	cp := *inv
	return &cp, nil
}

func (r *invoiceRepoStub) SetStatus(_ context.Context, invoiceID id.ID, status invoice.Status) error {
	r.invoices[invoiceID].Status = status
	return nil
}

func (r *invoiceRepoStub) List(context.Context, security.TenantScope) ([]*invoice.Invoice, error) {
	return nil, nil
}

func (r *invoiceRepoStub) ClientBelongsTo(context.Context, id.ID, id.ID) (bool, error) {
	return true, nil
}

type dirStub struct {
	existing map[id.ID]bool
}

func (d *dirStub) Exists(_ context.Context, agencyID id.ID) (bool, error) {
	return d.existing[agencyID], nil
}

// txPassthrough runs the function without a database.
type txPassthrough struct{}

func (txPassthrough) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type paymentFixture struct {
	svc      *Service
	invoices *invoiceRepoStub
	agencyID id.ID
	inv      *invoice.Invoice
	staff    *appctx.UserContext
}

func newPaymentFixture() *paymentFixture {
	agencyID := id.New()
	inv := &invoice.Invoice{
		ID:        id.New(),
		InvoiceNo: "INV-000001",
		ClientID:  id.New(),
		AgencyID:  agencyID,
		AmountHT:  types.MustMoney("100"),
		TVARate:   types.MustMoney("20"), // TTC 120
		Status:    invoice.StatusPending,
		DueDate:   time.Now().AddDate(0, 0, 30),
	}
	invoices := &invoiceRepoStub{invoices: map[id.ID]*invoice.Invoice{inv.ID: inv}}
	dir := &dirStub{existing: map[id.ID]bool{agencyID: true}}

	return &paymentFixture{
		svc: NewService(&paymentRepoStub{}, invoices, security.NewResolver(dir),
			sequence.NewMock(), txPassthrough{}, audit.Nop{}),
		invoices: invoices,
		agencyID: agencyID,
		inv:      inv,
		staff: &appctx.UserContext{
			UserID:   id.New().String(),
			Role:     appctx.RoleAgencyStaff,
			AgencyID: agencyID.String(),
		},
	}
}

func createInput(invID id.ID, amount string) CreateInput {
	return CreateInput{
		InvoiceID:   invID,
		Method:      MethodCash,
		Amount:      types.MustMoney(amount),
		PaymentDate: time.Now(),
	}
}

func TestCreate_PartialThenPaid(t *testing.T) {
	f := newPaymentFixture()
	ctx := context.Background()

	p, err := f.svc.Create(ctx, f.staff, createInput(f.inv.ID, "50"))
	require.NoError(t, err)
	assert.Equal(t, "PAY-000001", p.PaymentNo)
	assert.Equal(t, f.agencyID, p.AgencyID, "agency comes from the invoice")
	assert.Equal(t, invoice.StatusPartial, f.invoices.invoices[f.inv.ID].Status)

	p2, err := f.svc.Create(ctx, f.staff, createInput(f.inv.ID, "70"))
	require.NoError(t, err)
	assert.Equal(t, "PAY-000002", p2.PaymentNo)
	assert.Equal(t, invoice.StatusPaid, f.invoices.invoices[f.inv.ID].Status, "50+70 covers TTC of 120")
}

func TestCreate_OverpaymentStaysPaid(t *testing.T) {
	f := newPaymentFixture()
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.staff, createInput(f.inv.ID, "500"))
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusPaid, f.invoices.invoices[f.inv.ID].Status)

	_, err = f.svc.Create(ctx, f.staff, createInput(f.inv.ID, "10"))
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusPaid, f.invoices.invoices[f.inv.ID].Status, "paid never reverts")
}

func TestCreate_ForeignInvoiceLooksMissing(t *testing.T) {
	f := newPaymentFixture()

	outsider := &appctx.UserContext{
		UserID:   id.New().String(),
		Role:     appctx.RoleAgencyStaff,
		AgencyID: id.New().String(),
	}

	_, err := f.svc.Create(context.Background(), outsider, createInput(f.inv.ID, "50"))
	assert.True(t, apperror.IsNotFound(err))
}

func TestCreate_AccountantForbidden(t *testing.T) {
	f := newPaymentFixture()
	accountant := &appctx.UserContext{UserID: id.New().String(), Role: appctx.RoleGeneralAccountant}

	_, err := f.svc.Create(context.Background(), accountant, createInput(f.inv.ID, "50"))
	assert.True(t, apperror.IsCode(err, apperror.CodeForbidden))
}

func TestCreate_Validation(t *testing.T) {
	f := newPaymentFixture()
	ctx := context.Background()

	in := createInput(f.inv.ID, "0")
	_, err := f.svc.Create(ctx, f.staff, in)
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation), "zero amount")

	in = createInput(f.inv.ID, "50")
	in.Method = Method("crypto")
	_, err = f.svc.Create(ctx, f.staff, in)
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation), "unknown method")
}

func TestSettlementStatus(t *testing.T) {
	ttc := types.MustMoney("120")

	tests := []struct {
		name    string
		total   string
		current invoice.Status
		want    invoice.Status
	}{
		{"no payments", "0", invoice.StatusPending, invoice.StatusPending},
		{"partial", "50", invoice.StatusPending, invoice.StatusPartial},
		{"exact", "120", invoice.StatusPending, invoice.StatusPaid},
		{"over", "150", invoice.StatusPartial, invoice.StatusPaid},
		{"paid never reverts", "10", invoice.StatusPaid, invoice.StatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := settlementStatus(types.MustMoney(tt.total), ttc, tt.current)
			assert.Equal(t, tt.want, got)
		})
	}
}
