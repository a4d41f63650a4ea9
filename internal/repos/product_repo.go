package repos

import (
	"encoding/json"

	"github.com/jmoiron/sqlx"

	"yizer/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

type productRow struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Price       string `db:"price"`
	Image       string `db:"image"`
	Description string `db:"description"`
	SizesJSON   string `db:"sizes_json"`
	ColorsJSON  string `db:"colors_json"`
}

func (r productRow) toDomain() (domain.Product, error) {
	p := domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		Price:       r.Price,
		Image:       r.Image,
		Description: r.Description,
	}
	if err := json.Unmarshal([]byte(r.SizesJSON), &p.AvailableSizes); err != nil {
		return domain.Product{}, err
	}
	if err := json.Unmarshal([]byte(r.ColorsJSON), &p.AvailableColors); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (r *ProductRepo) List() ([]domain.Product, error) {
	var rows []productRow
	err := r.db.Select(&rows, `
	  SELECT id, name, price, image, description, sizes_json, colors_json
	  FROM products
	  ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		p, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var row productRow
	err := r.db.Get(&row, `
	  SELECT id, name, price, image, description, sizes_json, colors_json
	  FROM products
	  WHERE id = ?
	`, id)
	if err != nil {
		return domain.Product{}, err
	}
	return row.toDomain()
}
