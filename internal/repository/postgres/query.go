package postgres

import (
	"errors"
	"strconv"
	"strings"

	repo "github.com/baharkarakas/farm-market/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s literally anywhere.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// cropQuery renders the crop listing for f, newest first.
func cropQuery(f repo.CropFilter) (string, []any) {
	var (
		b    strings.Builder
		args []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	b.WriteString(`SELECT doc FROM crops WHERE TRUE`)
	if f.Status != "" {
		b.WriteString(` AND doc->>'status' = ` + arg(f.Status))
	}
	if f.FarmerID != "" {
		b.WriteString(` AND doc->>'farmer_id' = ` + arg(f.FarmerID))
	}
	if f.CropType != "" {
		b.WriteString(` AND doc->>'crop_type' ILIKE ` + arg(containsPattern(f.CropType)) + ` ESCAPE '\'`)
	}
	if f.Location != "" {
		b.WriteString(` AND doc->>'farmer_location' ILIKE ` + arg(containsPattern(f.Location)) + ` ESCAPE '\'`)
	}
	b.WriteString(` ORDER BY doc->>'created_at' DESC`)
	if f.Limit > 0 {
		b.WriteString(` LIMIT ` + arg(f.Limit))
	}
	return b.String(), args
}
