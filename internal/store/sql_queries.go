package store

import (
	"time"
	"unicode/utf8"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-list-sync/models"
)

const entitiesTable = "entities"

var entityColumns = []string{"id", "name", "description", "price", "created_at", "updated_at"}

// upsertSuffix keeps created_at of an existing row and overwrites everything
// else. Valid for both PostgreSQL and SQLite 3.35+.
const upsertSuffix = `ON CONFLICT (id) DO UPDATE SET
	name = excluded.name,
	description = excluded.description,
	price = excluded.price,
	updated_at = excluded.updated_at
RETURNING id, name, description, price, created_at, updated_at`

func selectEntities(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(entityColumns...).
		From(entitiesTable).
		OrderBy("created_at", "id")
}

func buildGetAllQuery(b sq.StatementBuilderType) (string, []any, error) {
	return selectEntities(b).ToSql()
}

func buildGetByIDQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(entityColumns...).
		From(entitiesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildSearchQuery matches name by case-sensitive prefix. substr is used
// instead of LIKE because LIKE is case-insensitive in SQLite and treats
// % and _ in the prefix as wildcards.
func buildSearchQuery(b sq.StatementBuilderType, prefix string) (string, []any, error) {
	q := selectEntities(b)
	if prefix != "" {
		q = q.Where(sq.Expr("substr(name, 1, ?) = ?", utf8.RuneCountInString(prefix), prefix))
	}
	return q.ToSql()
}

func buildUpsertQuery(b sq.StatementBuilderType, e models.Entity, now time.Time) (string, []any, error) {
	return b.Insert(entitiesTable).
		Columns(entityColumns...).
		Values(e.ID, e.Name, e.Description, e.Price, now, now).
		Suffix(upsertSuffix).
		ToSql()
}
