package repositories

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
)

// qb — общий билдер запросов с плейсхолдерами $1, $2, ... для PostgreSQL.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Таймстемпы уходят клиентам в текстовом ISO-виде, как отдавал старый бэкенд.
func timeToISO(t time.Time) string {
	return t.Format(time.RFC3339)
}

// NULL в базе остаётся null и в JSON-ответе.
func nullTimeToISO(nt sql.NullTime) null.String {
	if !nt.Valid {
		return null.String{}
	}
	return null.StringFrom(nt.Time.Format(time.RFC3339))
}
