package postgres

import (
	"context"
	"errors"

	"items-api/internal/models"
	"items-api/internal/storage"
	"items-api/internal/transport/dto"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// ItemRepo implements the storage.ItemRepository interface using PostgreSQL.
type ItemRepo struct {
	db *pgxpool.Pool
}

// NewItemRepo creates a new ItemRepo on a shared pool. The pool is owned by
// the caller.
func NewItemRepo(db *pgxpool.Pool) *ItemRepo {
	return &ItemRepo{db: db}
}

// Compile-time check to ensure ItemRepo implements ItemRepository
var _ storage.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, name, description`

func (r *ItemRepo) GetAll(ctx context.Context) ([]models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY id ASC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logrus.WithError(err).Error("Error querying all items")
		return nil, mapError(err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Item])
	if err != nil {
		logrus.WithError(err).Error("Error scanning items")
		return nil, mapError(err)
	}

	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}

func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1;`
	return r.queryOne(ctx, "get", id, query, id)
}

func (r *ItemRepo) Create(ctx context.Context, req *dto.CreateItemRequest) (*models.Item, error) {
	query := `INSERT INTO items (name, description) VALUES ($1, $2) RETURNING ` + itemColumns + `;`
	item, err := r.queryOne(ctx, "create", 0, query, req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	logrus.WithField("item_id", item.ID).Debug("Item created")
	return item, nil
}

// Update only touches the columns whose field is set: a NULL parameter keeps
// the stored value through COALESCE.
func (r *ItemRepo) Update(ctx context.Context, id int64, req *dto.UpdateItemRequest) (*models.Item, error) {
	query := `UPDATE items
		SET name = COALESCE($1, name),
		    description = COALESCE($2, description)
		WHERE id = $3
		RETURNING ` + itemColumns + `;`
	return r.queryOne(ctx, "update", id, query, req.Name, req.Description, id)
}

func (r *ItemRepo) Delete(ctx context.Context, id int64) (*models.Item, error) {
	query := `DELETE FROM items WHERE id = $1 RETURNING ` + itemColumns + `;`
	return r.queryOne(ctx, "delete", id, query, id)
}

// queryOne runs a statement expected to yield at most one item row.
func (r *ItemRepo) queryOne(ctx context.Context, op string, id int64, query string, args ...any) (*models.Item, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"op": op, "item_id": id}).Error("Item query failed")
		return nil, mapError(err)
	}

	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[models.Item])
	if err != nil {
		mapped := mapError(err)
		if !errors.Is(mapped, storage.ErrNotFound) {
			logrus.WithError(err).WithFields(logrus.Fields{"op": op, "item_id": id}).Error("Item scan failed")
		}
		return nil, mapped
	}
	return item, nil
}
