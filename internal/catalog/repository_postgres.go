package catalog

import (
	"database/sql"

	"ring-shop-backend/internal/logging"
)

// PostgresRepository reads the catalog from a `catalog_entry` table.
// It is read-only and follows the same fail-open policy as the file
// repository: query failures degrade to an empty catalog.
type PostgresRepository struct {
	db  *sql.DB
	log *logging.Logger
}

const readCatalogQuery = `
	SELECT name, popularity_score, weight, image_yellow, image_rose, image_white
	FROM catalog_entry
	ORDER BY name
`

func NewPostgresRepository(db *sql.DB, log *logging.Logger) *PostgresRepository {
	return &PostgresRepository{db: db, log: log}
}

func (r *PostgresRepository) ReadAll() []Entry {
	rows, err := r.db.Query(readCatalogQuery)
	if err != nil {
		r.log.Warn("catalog query failed, serving empty catalog", "error", err.Error())
		return []Entry{}
	}
	defer rows.Close()

	raw := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.PopularityScore, &e.Weight, &e.Images.Yellow, &e.Images.Rose, &e.Images.White); err != nil {
			r.log.Warn("skipping unscannable catalog row", "error", err.Error())
			continue
		}
		raw = append(raw, e)
	}
	if err := rows.Err(); err != nil {
		r.log.Warn("catalog row iteration failed", "error", err.Error())
	}

	return keepValid(raw, r.log)
}
