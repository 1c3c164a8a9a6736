package migrations

import (
	"fmt"

	"github.com/pressly/goose/v3"
)

func createUsersTable(dialect goose.Dialect) *goose.Migration {
	up := fmt.Sprintf(`
	CREATE TABLE users (
	  id %s,
	  name TEXT NOT NULL,
	  email TEXT NOT NULL UNIQUE,
	  avatar TEXT,
	  settings TEXT
	);
	`, identityColumn(dialect))

	return goose.NewGoMigration(1, txFunc(up), txFunc(`DROP TABLE IF EXISTS users;`))
}
