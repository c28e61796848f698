package event

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/tsel-ticketmaster/tm-availability/pkg/errors"
	"github.com/tsel-ticketmaster/tm-availability/pkg/status"
)

type CategoryRepository interface {
	Save(ctx context.Context, c Category, tx *sql.Tx) (int64, error)
	FindByID(ctx context.Context, ID int64, tx *sql.Tx) (Category, error)
}

type categoryRepository struct {
	logger *logrus.Logger
	db     *sql.DB
}

func NewCategoryRepository(logger *logrus.Logger, db *sql.DB) CategoryRepository {
	return &categoryRepository{
		logger: logger,
		db:     db,
	}
}

// Save implements CategoryRepository. The generated identifier is returned.
func (r *categoryRepository) Save(ctx context.Context, c Category, tx *sql.Tx) (int64, error) {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := `
		INSERT INTO category
		(
			name, color, created_at, updated_at
		)
		VALUES
		(
			$1, $2, $3, $4
		)
		RETURNING id
	`

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return 0, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while saving category's prorperties")
	}
	defer stmt.Close()

	row := stmt.QueryRowContext(ctx, c.Name, c.Color, c.CreatedAt, c.UpdatedAt)

	var ID int64
	if err := row.Scan(&ID); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return 0, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while saving category's prorperties")
	}

	return ID, nil
}

// FindByID implements CategoryRepository.
func (r *categoryRepository) FindByID(ctx context.Context, ID int64, tx *sql.Tx) (Category, error) {
	var cmd sqlCommand = r.db

	if tx != nil {
		cmd = tx
	}

	query := `
		SELECT
			id, name, color, created_at, updated_at
		FROM category
		WHERE
			id = $1
		LIMIT 1
	`

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return Category{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting category's prorperties")
	}
	defer stmt.Close()

	row := stmt.QueryRowContext(ctx, ID)

	var data Category
	err = row.Scan(
		&data.ID, &data.Name, &data.Color, &data.CreatedAt, &data.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return Category{}, errors.New(http.StatusNotFound, status.NOT_FOUND, fmt.Sprintf("category's properties with id '%d' is not found", ID))
		}
		r.logger.WithContext(ctx).WithError(err).Error()
		return Category{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting category's prorperties")
	}

	return data, nil
}
