package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/payremind/payment-reminder-backend/internal/domain"
)

func newPaymentRepoWithMock(t *testing.T) (*PaymentRepository, sqlmock.Sqlmock, *sqlx.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewPaymentRepo(db), mock, db
}

func paymentRows(payments ...domain.Payment) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "payment_name", "description", "amount",
		"category", "deadline", "status", "created_at", "updated_at",
	})
	for _, p := range payments {
		rows.AddRow(p.ID, p.UserID, p.PaymentName, p.Description, p.Amount,
			string(p.Category), p.Deadline, string(p.Status), p.CreatedAt, p.UpdatedAt)
	}
	return rows
}

func samplePayment(userID uuid.UUID, deadline time.Time) domain.Payment {
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	return domain.Payment{
		ID:          uuid.New(),
		UserID:      userID,
		PaymentName: "Electricity bill",
		Description: "April cycle",
		Amount:      74.50,
		Category:    domain.PaymentCategoryBills,
		Deadline:    deadline,
		Status:      domain.PaymentStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestPaymentRepoCreate(t *testing.T) {
	repo, mock, db := newPaymentRepoWithMock(t)
	defer db.Close()

	userID := uuid.New()
	deadline := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	want := samplePayment(userID, deadline)

	mock.ExpectQuery(`(?s)^\s*INSERT\s+INTO\s+payment\s*\(user_id,\s*payment_name,\s*description,\s*amount,\s*category,\s*deadline\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*RETURNING\s+id,`).
		WithArgs(userID, want.PaymentName, want.Description, want.Amount, want.Category, deadline).
		WillReturnRows(paymentRows(want))

	got, err := repo.Create(context.Background(), userID, want.PaymentName, want.Description, want.Amount, want.Category, deadline)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if got.ID != want.ID || got.UserID != userID || got.Status != domain.PaymentStatusPending {
		t.Fatalf("unexpected payment returned: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPaymentRepoListByOwnerSortsByDeadline(t *testing.T) {
	repo, mock, db := newPaymentRepoWithMock(t)
	defer db.Close()

	userID := uuid.New()
	early := samplePayment(userID, time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC))
	late := samplePayment(userID, time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC))

	mock.ExpectQuery(`(?s)^\s*SELECT\s+id,.*FROM\s+payment\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+deadline\s+ASC`).
		WithArgs(userID).
		WillReturnRows(paymentRows(early, late))

	payments, err := repo.ListByOwner(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListByOwner returned error: %v", err)
	}
	if len(payments) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(payments))
	}
	if payments[0].ID != early.ID || payments[1].ID != late.ID {
		t.Fatalf("row order not preserved: %+v", payments)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPaymentRepoListByOwnerEmpty(t *testing.T) {
	repo, mock, db := newPaymentRepoWithMock(t)
	defer db.Close()

	userID := uuid.New()
	mock.ExpectQuery(`(?s)^\s*SELECT\s+id,.*WHERE\s+user_id\s*=\s*\$1`).
		WithArgs(userID).
		WillReturnRows(paymentRows())

	payments, err := repo.ListByOwner(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListByOwner returned error: %v", err)
	}
	if payments == nil || len(payments) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", payments)
	}
}

func TestPaymentRepoUpdateStatusOwned(t *testing.T) {
	repo, mock, db := newPaymentRepoWithMock(t)
	defer db.Close()

	userID := uuid.New()
	want := samplePayment(userID, time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC))
	want.Status = domain.PaymentStatusPaid

	mock.ExpectQuery(`(?s)^\s*UPDATE\s+payment\s+SET\s+status\s*=\s*\$3,\s*updated_at\s*=\s*NOW\(\)\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2\s+RETURNING\s+id,`).
		WithArgs(want.ID, userID, domain.PaymentStatusPaid).
		WillReturnRows(paymentRows(want))

	got, err := repo.UpdateStatusOwned(context.Background(), want.ID, userID, domain.PaymentStatusPaid)
	if err != nil {
		t.Fatalf("UpdateStatusOwned returned error: %v", err)
	}
	if got.Status != domain.PaymentStatusPaid {
		t.Fatalf("expected status paid, got %q", got.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPaymentRepoUpdateStatusOwnedMiss(t *testing.T) {
	repo, mock, db := newPaymentRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	otherOwner := uuid.New()
	mock.ExpectQuery(`(?s)^\s*UPDATE\s+payment\s+SET.*WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2`).
		WithArgs(id, otherOwner, domain.PaymentStatusPaid).
		WillReturnRows(paymentRows())

	if _, err := repo.UpdateStatusOwned(context.Background(), id, otherOwner, domain.PaymentStatusPaid); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows for another owner's payment, got %v", err)
	}
}

func TestPaymentRepoDeleteOwned(t *testing.T) {
	repo, mock, db := newPaymentRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	userID := uuid.New()
	mock.ExpectExec(`(?s)^\s*DELETE\s+FROM\s+payment\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2`).
		WithArgs(id, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteOwned(context.Background(), id, userID); err != nil {
		t.Fatalf("DeleteOwned returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPaymentRepoDeleteOwnedMiss(t *testing.T) {
	repo, mock, db := newPaymentRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	otherOwner := uuid.New()
	mock.ExpectExec(`(?s)^\s*DELETE\s+FROM\s+payment\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2`).
		WithArgs(id, otherOwner).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteOwned(context.Background(), id, otherOwner); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows when no row matched, got %v", err)
	}
}

func TestPaymentRepoMarkOverdueBefore(t *testing.T) {
	repo, mock, db := newPaymentRepoWithMock(t)
	defer db.Close()

	cutoff := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(`(?s)^\s*UPDATE\s+payment\s+SET\s+status\s*=\s*'overdue',\s*updated_at\s*=\s*NOW\(\)\s+WHERE\s+status\s*=\s*'pending'\s+AND\s+deadline\s*<\s*\$1`).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	swept, err := repo.MarkOverdueBefore(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("MarkOverdueBefore returned error: %v", err)
	}
	if swept != 3 {
		t.Fatalf("expected 3 rows swept, got %d", swept)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPaymentRepoListPendingDeadlineBetween(t *testing.T) {
	repo, mock, db := newPaymentRepoWithMock(t)
	defer db.Close()

	userID := uuid.New()
	from := time.Date(2026, 4, 17, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	inWindow := samplePayment(userID, from.Add(6*time.Hour))

	mock.ExpectQuery(`(?s)^\s*SELECT\s+id,.*WHERE\s+status\s*=\s*'pending'\s+AND\s+deadline\s*>=\s*\$1\s+AND\s+deadline\s*<\s*\$2\s+ORDER\s+BY\s+deadline\s+ASC`).
		WithArgs(from, to).
		WillReturnRows(paymentRows(inWindow))

	payments, err := repo.ListPendingDeadlineBetween(context.Background(), from, to)
	if err != nil {
		t.Fatalf("ListPendingDeadlineBetween returned error: %v", err)
	}
	if len(payments) != 1 || payments[0].ID != inWindow.ID {
		t.Fatalf("unexpected payments: %+v", payments)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPaymentRepoListOverdueDeadlineBefore(t *testing.T) {
	repo, mock, db := newPaymentRepoWithMock(t)
	defer db.Close()

	userID := uuid.New()
	cutoff := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	overdue := samplePayment(userID, cutoff.AddDate(0, 0, -2))
	overdue.Status = domain.PaymentStatusOverdue

	mock.ExpectQuery(`(?s)^\s*SELECT\s+id,.*WHERE\s+status\s*=\s*'overdue'\s+AND\s+deadline\s*<\s*\$1\s+ORDER\s+BY\s+deadline\s+ASC`).
		WithArgs(cutoff).
		WillReturnRows(paymentRows(overdue))

	payments, err := repo.ListOverdueDeadlineBefore(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("ListOverdueDeadlineBefore returned error: %v", err)
	}
	if len(payments) != 1 || payments[0].Status != domain.PaymentStatusOverdue {
		t.Fatalf("unexpected payments: %+v", payments)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
