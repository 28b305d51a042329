package store

import (
	"context"

	"ecomarket/internal/database"
	"ecomarket/internal/model"

	"github.com/pkg/errors"
)

const productColumns = `id, name, description, category, status, owner_id, created_at`

// ListProducts 依 id 排序回傳商品；category 為空時不過濾
func ListProducts(ctx context.Context, db database.DB, category string) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	var args []any
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY id`

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "ListProducts")
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Category,
			&p.Status,
			&p.OwnerID,
			&p.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "ListProducts scan")
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "ListProducts rows")
	}
	return products, nil
}

// CreateProduct 寫入商品並回填 id、status、created_at；owner 不存在時回傳 ErrOwnerNotFound
func CreateProduct(ctx context.Context, db database.DB, p *model.Product) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO products (name, description, category, owner_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, status, created_at`,
		p.Name,
		p.Description,
		p.Category,
		p.OwnerID,
	)
	if err := row.Scan(&p.ID, &p.Status, &p.CreatedAt); err != nil {
		if code, _, ok := pgError(err); ok && code == foreignKeyViolation {
			return nil, ErrOwnerNotFound
		}
		return nil, errors.Wrap(err, "CreateProduct")
	}
	return p, nil
}
