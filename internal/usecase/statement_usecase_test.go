package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/erpledger/internal/domain"
	"github.com/iho/erpledger/internal/usecase"
	"github.com/iho/erpledger/internal/usecase/mocks"
)

type statementMocks struct {
	holders    *mocks.MockHolderRepository
	sales      *mocks.MockSaleRepository
	receipts   *mocks.MockReceiptRepository
	deductions *mocks.MockDeductionRepository
	debts      *mocks.MockDebtRepository
	recorder   *mocks.MockStatementRecorder
}

func newStatementUseCase(t *testing.T) (*usecase.StatementUseCase, statementMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := statementMocks{
		holders:    mocks.NewMockHolderRepository(ctrl),
		sales:      mocks.NewMockSaleRepository(ctrl),
		receipts:   mocks.NewMockReceiptRepository(ctrl),
		deductions: mocks.NewMockDeductionRepository(ctrl),
		debts:      mocks.NewMockDebtRepository(ctrl),
		recorder:   mocks.NewMockStatementRecorder(ctrl),
	}

	uc := usecase.NewStatementUseCase(m.holders, m.sales, m.receipts, m.deductions, m.debts, m.recorder).
		WithClock(func() time.Time { return time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC) })

	return uc, m
}

func date(s string) time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return t
}

func nd(i int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(i))
}

func TestStatementUseCase_Recompute_Client(t *testing.T) {
	uc, m := newStatementUseCase(t)

	limit := decimal.NewFromInt(1200)
	holder := &domain.AccountHolder{
		ID:             "cli-1",
		Kind:           domain.HolderKindClient,
		OpeningBalance: decimal.NewFromInt(1000),
		CreditLimit:    &limit,
	}

	m.holders.EXPECT().GetByID(gomock.Any(), "cli-1").Return(holder, nil)
	m.sales.EXPECT().ListByClient(gomock.Any(), "cli-1").Return([]domain.Sale{
		{ID: "s1", ClientID: "cli-1", Total: nd(500), Date: date("2025-01-05")},
	}, nil)
	m.receipts.EXPECT().ListByHolder(gomock.Any(), "cli-1").Return([]domain.ReceiptVoucher{
		{ID: "r1", ClientID: "cli-1", Amount: nd(200), Date: date("2025-01-01")},
	}, nil)
	m.recorder.EXPECT().ObserveBuild(domain.HolderKindClient, 2, gomock.Any())

	statement, err := uc.Recompute(context.Background(), "cli-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ledger := statement.Ledger
	if len(ledger.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(ledger.Entries))
	}
	if !ledger.Entries[1].RunningBalanceAfter.Equal(decimal.NewFromInt(800)) {
		t.Errorf("expected 800 after receipt, got %s", ledger.Entries[1].RunningBalanceAfter)
	}
	if !ledger.Totals.Closing.Equal(decimal.NewFromInt(1300)) {
		t.Errorf("expected closing 1300, got %s", ledger.Totals.Closing)
	}
	if !statement.OverCreditLimit {
		t.Error("expected closing 1300 to exceed limit 1200")
	}
}

func TestStatementUseCase_Recompute_EmployeeLoadsEmployeeSources(t *testing.T) {
	uc, m := newStatementUseCase(t)

	holder := &domain.AccountHolder{ID: "emp-1", Kind: domain.HolderKindEmployee}

	m.holders.EXPECT().GetByID(gomock.Any(), "emp-1").Return(holder, nil)
	m.receipts.EXPECT().ListByHolder(gomock.Any(), "emp-1").Return(nil, nil)
	m.deductions.EXPECT().ListByEmployee(gomock.Any(), "emp-1").Return([]domain.Deduction{
		{ID: "d1", EmployeeID: "emp-1", DeductionType: domain.DeductionTypeSalaryToDebt, Amount: nd(200), Date: date("2025-01-12")},
	}, nil)
	m.debts.EXPECT().ListByDebtor(gomock.Any(), "emp-1").Return([]domain.Debt{
		{ID: "debt-1", DebtorID: "emp-1", Items: []domain.DebtItem{{Amount: nd(1000), DueDate: date("2025-01-01")}}},
	}, nil)
	m.sales.EXPECT().ListByClient(gomock.Any(), gomock.Any()).Times(0)
	m.recorder.EXPECT().ObserveBuild(domain.HolderKindEmployee, 2, gomock.Any())

	statement, err := uc.Recompute(context.Background(), "emp-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !statement.Ledger.Totals.Closing.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("expected closing 1200, got %s", statement.Ledger.Totals.Closing)
	}
	if statement.OverCreditLimit {
		t.Error("expected no credit limit breach without a limit")
	}
}

func TestStatementUseCase_Recompute_SourceErrorAbortsBuild(t *testing.T) {
	uc, m := newStatementUseCase(t)

	boom := errors.New("boom")
	holder := &domain.AccountHolder{ID: "cli-1", Kind: domain.HolderKindClient}

	m.holders.EXPECT().GetByID(gomock.Any(), "cli-1").Return(holder, nil)
	m.sales.EXPECT().ListByClient(gomock.Any(), "cli-1").Return(nil, boom)
	m.receipts.EXPECT().ListByHolder(gomock.Any(), "cli-1").Return(nil, nil).AnyTimes()

	_, err := uc.Recompute(context.Background(), "cli-1")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped source error, got %v", err)
	}
}

func TestStatementUseCase_Recompute_HolderNotFound(t *testing.T) {
	uc, m := newStatementUseCase(t)

	m.holders.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, domain.ErrHolderNotFound)

	_, err := uc.Recompute(context.Background(), "missing")
	if !errors.Is(err, domain.ErrHolderNotFound) {
		t.Fatalf("expected ErrHolderNotFound, got %v", err)
	}
}

func TestStatementUseCase_GetStatement_Window(t *testing.T) {
	uc, m := newStatementUseCase(t)

	holder := &domain.AccountHolder{ID: "cli-1", Kind: domain.HolderKindClient, OpeningBalance: decimal.NewFromInt(10)}

	m.holders.EXPECT().GetByID(gomock.Any(), "cli-1").Return(holder, nil)
	m.sales.EXPECT().ListByClient(gomock.Any(), "cli-1").Return([]domain.Sale{
		{ID: "s1", ClientID: "cli-1", Total: nd(100), Date: date("2025-01-01")},
		{ID: "s2", ClientID: "cli-1", Total: nd(50), Date: date("2025-03-01")},
	}, nil)
	m.receipts.EXPECT().ListByHolder(gomock.Any(), "cli-1").Return([]domain.ReceiptVoucher{
		{ID: "r1", ClientID: "cli-1", Amount: nd(30), Date: date("2025-02-01")},
	}, nil)
	m.recorder.EXPECT().ObserveBuild(gomock.Any(), gomock.Any(), gomock.Any())

	statement, err := uc.GetStatement(context.Background(), usecase.GetStatementInput{
		HolderID: "cli-1",
		From:     date("2025-02-01"),
		To:       date("2025-02-28"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ledger := statement.Ledger
	if len(ledger.Entries) != 2 {
		t.Fatalf("expected opening row and one movement, got %d entries", len(ledger.Entries))
	}
	if !ledger.OpeningBalance.Equal(decimal.NewFromInt(110)) {
		t.Errorf("expected brought forward 110, got %s", ledger.OpeningBalance)
	}
	if !ledger.Totals.Closing.Equal(decimal.NewFromInt(80)) {
		t.Errorf("expected closing 80, got %s", ledger.Totals.Closing)
	}
}

func TestStatementUseCase_GetStatement_InvalidRange(t *testing.T) {
	uc, _ := newStatementUseCase(t)

	_, err := uc.GetStatement(context.Background(), usecase.GetStatementInput{
		HolderID: "cli-1",
		From:     date("2025-03-01"),
		To:       date("2025-02-01"),
	})
	if !errors.Is(err, domain.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestStatementUseCase_GetEmployeeNet(t *testing.T) {
	uc, m := newStatementUseCase(t)

	salary := decimal.NewFromInt(5000)
	holder := &domain.AccountHolder{ID: "emp-1", Kind: domain.HolderKindEmployee, Salary: &salary}

	m.holders.EXPECT().GetByID(gomock.Any(), "emp-1").Return(holder, nil)
	m.deductions.EXPECT().ListByEmployee(gomock.Any(), "emp-1").Return([]domain.Deduction{
		{ID: "d1", EmployeeID: "emp-1", DeductionType: domain.DeductionTypeSalary, Amount: nd(300)},
		{ID: "d2", EmployeeID: "emp-1", DeductionType: domain.DeductionTypeSalaryToDebt, Amount: nd(200)},
	}, nil)
	m.debts.EXPECT().ListByDebtor(gomock.Any(), "emp-1").Return([]domain.Debt{
		{ID: "debt-1", DebtorID: "emp-1", Items: []domain.DebtItem{{Amount: nd(1000)}}},
	}, nil)

	result, err := uc.GetEmployeeNet(context.Background(), "emp-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Net.CurrentSalary.Equal(decimal.NewFromInt(4500)) {
		t.Errorf("expected current salary 4500, got %s", result.Net.CurrentSalary)
	}
	if !result.Net.CurrentDebt.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("expected current debt 1200, got %s", result.Net.CurrentDebt)
	}
}

func TestStatementUseCase_GetEmployeeNet_RejectsClients(t *testing.T) {
	uc, m := newStatementUseCase(t)

	m.holders.EXPECT().GetByID(gomock.Any(), "cli-1").Return(&domain.AccountHolder{ID: "cli-1", Kind: domain.HolderKindClient}, nil)

	_, err := uc.GetEmployeeNet(context.Background(), "cli-1")
	if !errors.Is(err, domain.ErrNotAnEmployee) {
		t.Fatalf("expected ErrNotAnEmployee, got %v", err)
	}
}
