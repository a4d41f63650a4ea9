package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the catalog database and seeds the fixed product catalog.
// The default DSN is ":memory:", so catalog data lives exactly as long as
// the process; nothing survives a restart.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	if err := seedCatalog(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  price TEXT NOT NULL,
  image TEXT,
  description TEXT,
  sizes_json TEXT NOT NULL,
  colors_json TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_name ON products(LOWER(name));
`
	_, err := db.Exec(schema)
	return err
}

// seedCatalog inserts the fixed demo catalog if the table is empty.
// Idempotent; safe to run on every start.
func seedCatalog(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo catalog")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO products(id,name,price,image,description,sizes_json,colors_json) VALUES
	  ('1','Sudadera Grande','250',
	   'https://placehold.co/300x300/B12A2A/FFFFFF?text=Sudadera',
	   'Sudadera de algodón suave y cómoda, ideal para cualquier ocasión. Disponible en varios colores y tallas.',
	   '["XS","S","M","L","XL","XXL"]','["Rojo","Negro","Blanco","Gris"]'),
	  ('2','Chaqueta Urbana','320',
	   'https://placehold.co/300x300/B12A2A/FFFFFF?text=Chaqueta',
	   'Chaqueta moderna con diseño urbano, perfecta para el día a día. Fabricada con materiales de alta calidad.',
	   '["S","M","L","XL"]','["Azul","Verde","Negro"]'),
	  ('3','Camiseta Básica','180',
	   'https://placehold.co/300x300/B12A2A/FFFFFF?text=Camiseta',
	   'Camiseta de algodón 100%, ligera y transpirable. Un básico indispensable en tu armario.',
	   '["XS","S","M","L","XL"]','["Blanco","Negro","Azul Claro","Rosa"]')`)

	return tx.Commit()
}
