package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/insightai/split-backend-go/internal/pkg/database"
)

var testDB *database.DB

const schema = `
CREATE TABLE IF NOT EXISTS owners (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	bank_account TEXT NOT NULL DEFAULT '',
	ifsc_code TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS workers (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL REFERENCES owners(id),
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	bank_account TEXT NOT NULL DEFAULT '',
	ifsc_code TEXT NOT NULL DEFAULT '',
	base_salary NUMERIC(14,2) NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS fixed_payees (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL REFERENCES owners(id),
	name TEXT NOT NULL,
	fixed_amount NUMERIC(14,2) NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS profits (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL,
	period DATE NOT NULL,
	revenue NUMERIC(14,2) NOT NULL DEFAULT 0,
	expenses NUMERIC(14,2) NOT NULL DEFAULT 0,
	profit NUMERIC(14,2) NOT NULL DEFAULT 0,
	profit_margin NUMERIC(8,4) NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS payouts (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL,
	payee_id UUID NOT NULL,
	payee_type TEXT NOT NULL,
	payee_name TEXT NOT NULL,
	base_amount NUMERIC(14,2) NOT NULL DEFAULT 0,
	bonus_amount NUMERIC(14,2) NOT NULL DEFAULT 0,
	final_amount NUMERIC(14,2) NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// testInit connects to the test database, creating the schema on first use.
// Tests are skipped when TEST_DATABASE_URL is not set.
func testInit(t *testing.T) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping repository tests")
	}
	if testDB != nil {
		return
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(dsn, 5, 1)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if _, err := testDB.Exec(context.Background(), schema); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}
}

func truncateTables(t *testing.T, ctx context.Context) {
	t.Helper()
	tables := []string{"payouts", "profits", "fixed_payees", "workers", "owners"}

	for _, table := range tables {
		if _, err := testDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			continue
		}
	}
}
