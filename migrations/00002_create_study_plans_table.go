package migrations

import (
	"fmt"

	"github.com/pressly/goose/v3"
)

func createStudyPlansTable(dialect goose.Dialect) *goose.Migration {
	ts := timestampType(dialect)
	up := fmt.Sprintf(`
	CREATE TABLE study_plans (
	  id %s,
	  subject TEXT NOT NULL,
	  exam_date TEXT NOT NULL,
	  description TEXT,
	  created_at %s NOT NULL,
	  updated_at %s
	);

	CREATE INDEX idx_study_plans_subject ON study_plans(subject);
	`, identityColumn(dialect), ts, ts)

	return goose.NewGoMigration(2, txFunc(up), txFunc(`DROP TABLE IF EXISTS study_plans;`))
}
