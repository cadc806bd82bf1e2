// Package assettype implements the C1 persistence adapter for asset
// types, grounded on the teacher's account.postgresql.go shape.
package assettype

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/LerianStudio/midaz-credits/pkg"
	"github.com/LerianStudio/midaz-credits/pkg/constant"
	"github.com/LerianStudio/midaz-credits/pkg/mmodel"
	"github.com/LerianStudio/midaz-credits/pkg/mpostgres"
)

// Repository provides persistence operations for asset types.
type Repository interface {
	Find(ctx context.Context, id uuid.UUID) (*mmodel.AssetType, error)
	FindBySymbol(ctx context.Context, symbol string) (*mmodel.AssetType, error)
	FindAll(ctx context.Context) ([]*mmodel.AssetType, error)
	Create(ctx context.Context, a *mmodel.AssetType) (*mmodel.AssetType, error)
}

// PostgreSQLRepository is a Postgres-backed Repository implementation.
type PostgreSQLRepository struct {
	conn      *mpostgres.Connection
	tableName string
}

// NewPostgreSQLRepository returns a new Repository over conn.
func NewPostgreSQLRepository(conn *mpostgres.Connection) *PostgreSQLRepository {
	return &PostgreSQLRepository{conn: conn, tableName: "asset_types"}
}

func scanAssetType(row interface{ Scan(dest ...any) error }) (*mmodel.AssetType, error) {
	var a mmodel.AssetType

	if err := row.Scan(&a.ID, &a.Name, &a.Symbol, &a.Description, &a.IsActive, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}

	return &a, nil
}

// Find retrieves an asset type by ID.
func (r *PostgreSQLRepository) Find(ctx context.Context, id uuid.UUID) (*mmodel.AssetType, error) {
	row := r.conn.Pool.QueryRow(ctx,
		`SELECT id, name, symbol, description, is_active, created_at, updated_at FROM asset_types WHERE id = $1`, id)

	a, err := scanAssetType(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pkg.ValidateBusinessError(constant.ErrAssetTypeNotFound, reflect.TypeOf(mmodel.AssetType{}).Name())
		}

		return nil, err
	}

	return a, nil
}

// FindBySymbol retrieves an asset type by its unique symbol.
func (r *PostgreSQLRepository) FindBySymbol(ctx context.Context, symbol string) (*mmodel.AssetType, error) {
	row := r.conn.Pool.QueryRow(ctx,
		`SELECT id, name, symbol, description, is_active, created_at, updated_at FROM asset_types WHERE symbol = $1`, symbol)

	a, err := scanAssetType(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pkg.ValidateBusinessError(constant.ErrAssetTypeNotFound, reflect.TypeOf(mmodel.AssetType{}).Name())
		}

		return nil, err
	}

	return a, nil
}

// FindAll lists every registered asset type, active or not.
func (r *PostgreSQLRepository) FindAll(ctx context.Context) ([]*mmodel.AssetType, error) {
	query, args, err := squirrel.Select("id", "name", "symbol", "description", "is_active", "created_at", "updated_at").
		From(r.tableName).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*mmodel.AssetType

	for rows.Next() {
		a, err := scanAssetType(rows)
		if err != nil {
			return nil, err
		}

		out = append(out, a)
	}

	return out, rows.Err()
}

// Create inserts a new asset type. No HTTP route and nothing in
// bootstrap calls it (spec.md §6 exposes no asset-type write endpoint).
func (r *PostgreSQLRepository) Create(ctx context.Context, a *mmodel.AssetType) (*mmodel.AssetType, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	now := time.Now()
	a.CreatedAt, a.UpdatedAt = now, now

	_, err := r.conn.Pool.Exec(ctx,
		`INSERT INTO asset_types (id, name, symbol, description, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.Name, a.Symbol, a.Description, a.IsActive, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return a, nil
}
