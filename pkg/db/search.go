package db

import (
	"database/sql/driver"
	"strings"

	gosqlite "github.com/glebarez/go-sqlite"
	"gorm.io/gorm"
)

// sqlite's built-in lower() only folds ASCII.
const foldFunc = "unicode_lower"

func init() {
	gosqlite.MustRegisterDeterministicScalarFunction(foldFunc, 1, func(_ *gosqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		switch v := args[0].(type) {
		case string:
			return strings.ToLower(v), nil
		case []byte:
			return strings.ToLower(string(v)), nil
		default:
			return v, nil
		}
	})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike makes s match itself literally inside a LIKE pattern using '\' as escape.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ContainsFold restricts tx to rows whose column contains term, ignoring case.
// column must be a trusted identifier.
func ContainsFold(tx *gorm.DB, column, term string) *gorm.DB {
	pattern := "%" + EscapeLike(strings.ToLower(term)) + "%"
	if tx.Dialector.Name() == "postgres" {
		return tx.Where(column+` ILIKE ? ESCAPE '\'`, pattern)
	}
	return tx.Where(foldFunc+"("+column+`) LIKE ? ESCAPE '\'`, pattern)
}
