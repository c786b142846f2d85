package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"sayyes-srv/internal/model"

	"github.com/lib/pq"
)

// ListByCategory returns catalog rows for a category, ordered by title so
// identical snapshots always produce the same list.
func (r *implCatalog) ListByCategory(ctx context.Context, category model.Category) ([]model.MediaItem, error) {
	query := `
		SELECT title, description, url, location, price, designer, tags
		FROM images
		WHERE category = $1
		ORDER BY title
		LIMIT 10
	`

	rows, err := r.db.QueryContext(ctx, query, string(category))
	if err != nil {
		return nil, fmt.Errorf("ListByCategory: %w", err)
	}
	defer rows.Close()

	var items []model.MediaItem
	for rows.Next() {
		var (
			item        model.MediaItem
			description sql.NullString
			location    sql.NullString
			price       sql.NullString
			designer    sql.NullString
			tags        pq.StringArray
		)

		if err := rows.Scan(
			&item.Title, &description, &item.Image,
			&location, &price, &designer, &tags,
		); err != nil {
			return nil, fmt.Errorf("ListByCategory: %w", err)
		}

		item.Description = description.String
		item.Location = location.String
		item.Price = price.String
		item.Designer = designer.String
		item.Tags = []string(tags)

		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListByCategory: %w", err)
	}

	return items, nil
}
