package migrations

import (
	"fmt"

	"github.com/pressly/goose/v3"
)

func createMessagesTable(dialect goose.Dialect) *goose.Migration {
	ref := referenceType(dialect)
	up := fmt.Sprintf(`
	CREATE TABLE messages (
	  id %s,
	  sender_id %s NOT NULL REFERENCES users(id),
	  recipient_id %s REFERENCES users(id),
	  group_id %s,
	  content TEXT NOT NULL,
	  type TEXT NOT NULL DEFAULT 'public',
	  timestamp %s NOT NULL
	);

	CREATE INDEX idx_messages_timestamp ON messages(timestamp);
	`, identityColumn(dialect), ref, ref, ref, timestampType(dialect))

	return goose.NewGoMigration(3, txFunc(up), txFunc(`DROP TABLE IF EXISTS messages;`))
}
