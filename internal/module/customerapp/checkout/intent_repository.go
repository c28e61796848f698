package checkout

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/tsel-ticketmaster/tm-availability/pkg/errors"
	"github.com/tsel-ticketmaster/tm-availability/pkg/status"
)

type IntentRepository interface {
	BeginTx(ctx context.Context) (*sql.Tx, error)
	CommitTx(ctx context.Context, tx *sql.Tx) error
	Rollback(ctx context.Context, tx *sql.Tx) error

	Save(ctx context.Context, i Intent, tx *sql.Tx) error
	FindByID(ctx context.Context, ID string, tx *sql.Tx) (Intent, error)
	FindManyByAccountID(ctx context.Context, accountID int64, tx *sql.Tx) ([]Intent, error)
	Update(ctx context.Context, ID string, i Intent, tx *sql.Tx) error
}

type sqlCommand interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

type intentRepository struct {
	logger *logrus.Logger
	db     *sql.DB
}

func NewIntentRepository(logger *logrus.Logger, db *sql.DB) IntentRepository {
	return &intentRepository{
		logger: logger,
		db:     db,
	}
}

// BeginTx implements IntentRepository.
func (r *intentRepository) BeginTx(ctx context.Context) (*sql.Tx, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred trying to begin transaction")
	}

	return tx, nil
}

// CommitTx implements IntentRepository.
func (r *intentRepository) CommitTx(ctx context.Context, tx *sql.Tx) error {
	if err := tx.Commit(); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred trying to commit transaction")
	}

	return nil
}

// Rollback implements IntentRepository.
func (r *intentRepository) Rollback(ctx context.Context, tx *sql.Tx) error {
	if err := tx.Rollback(); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred trying to rollback transaction")
	}

	return nil
}

// Save implements IntentRepository.
func (r *intentRepository) Save(ctx context.Context, i Intent, tx *sql.Tx) error {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := `
		INSERT INTO checkout_intent
		(
			id, account_id, event_id, quantity, unit_price, total_amount, checkout_url, status, expires_at, created_at, updated_at
		)
		VALUES
		(
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
	`

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while saving checkout intent's prorperties")
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, i.ID, i.AccountID, i.EventID, i.Quantity, i.UnitPrice, i.TotalAmount, i.CheckoutURL, i.Status, i.ExpiresAt, i.CreatedAt, i.UpdatedAt)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while saving checkout intent's prorperties")
	}

	return nil
}

// FindByID implements IntentRepository.
func (r *intentRepository) FindByID(ctx context.Context, ID string, tx *sql.Tx) (Intent, error) {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := `
		SELECT
			id, account_id, event_id, quantity, unit_price, total_amount, checkout_url, status, expires_at, created_at, updated_at
		FROM checkout_intent
		WHERE
			id = $1
		LIMIT 1
	`

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return Intent{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting checkout intent's prorperties")
	}
	defer stmt.Close()

	row := stmt.QueryRowContext(ctx, ID)

	var data Intent
	err = row.Scan(
		&data.ID, &data.AccountID, &data.EventID, &data.Quantity, &data.UnitPrice, &data.TotalAmount,
		&data.CheckoutURL, &data.Status, &data.ExpiresAt, &data.CreatedAt, &data.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return Intent{}, errors.New(http.StatusNotFound, status.NOT_FOUND, fmt.Sprintf("checkout intent's properties with id '%s' is not found", ID))
		}
		r.logger.WithContext(ctx).WithError(err).Error()
		return Intent{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting checkout intent's prorperties")
	}

	return data, nil
}

// FindManyByAccountID implements IntentRepository.
func (r *intentRepository) FindManyByAccountID(ctx context.Context, accountID int64, tx *sql.Tx) ([]Intent, error) {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := `
		SELECT
			id, account_id, event_id, quantity, unit_price, total_amount, checkout_url, status, expires_at, created_at, updated_at
		FROM checkout_intent
		WHERE
			account_id = $1
		ORDER BY created_at DESC
	`

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of checkout intent's prorperties")
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, accountID)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of checkout intent's prorperties")
	}

	defer rows.Close()

	var data = make([]Intent, 0)

	for rows.Next() {
		var i Intent

		if err := rows.Scan(
			&i.ID, &i.AccountID, &i.EventID, &i.Quantity, &i.UnitPrice, &i.TotalAmount,
			&i.CheckoutURL, &i.Status, &i.ExpiresAt, &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			r.logger.WithContext(ctx).WithError(err).Error()
			return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting bunch of checkout intent's prorperties")
		}

		data = append(data, i)
	}

	return data, nil
}

// Update implements IntentRepository.
func (r *intentRepository) Update(ctx context.Context, ID string, i Intent, tx *sql.Tx) error {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := `
		UPDATE checkout_intent
		SET
			status = $1,
			updated_at = $2
		WHERE
			id = $3
	`

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while updating checkout intent's prorperties")
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, i.Status, i.UpdatedAt, ID)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while updating checkout intent's prorperties")
	}

	return nil
}
