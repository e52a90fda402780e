package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./cmd/migrate [drop|up|seed]")
		os.Exit(1)
	}

	command := os.Args[1]

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close(ctx)

	switch command {
	case "drop":
		if err := dropTables(ctx, conn); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		fmt.Println("All election tables dropped")

	case "up":
		if err := createTables(ctx, conn); err != nil {
			log.Fatalf("Failed to create tables: %v", err)
		}
		fmt.Println("All election tables created")

	case "seed":
		if err := seedData(ctx, conn); err != nil {
			log.Fatalf("Failed to seed data: %v", err)
		}
		fmt.Println("Sample election data seeded")

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

// schema holds the election tables. The three UNIQUE constraints are load
// bearing: they close the double-vote, duplicate-ballot and duplicate-winner
// races at the store layer rather than trusting application-level checks.
const schema = `
CREATE TABLE IF NOT EXISTS members (
    id SERIAL PRIMARY KEY,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    email TEXT UNIQUE
);

CREATE TABLE IF NOT EXISTS terms (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    start_date DATE NOT NULL,
    end_date DATE NOT NULL,
    CHECK (start_date <= end_date)
);

CREATE TABLE IF NOT EXISTS positions (
    id SERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    ballot_order INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS elections (
    id SERIAL PRIMARY KEY,
    term_id INTEGER NOT NULL REFERENCES terms(id),
    election_date DATE NOT NULL,
    nominate_by DATE NOT NULL
);

CREATE TABLE IF NOT EXISTS election_positions (
    election_id INTEGER NOT NULL REFERENCES elections(id) ON DELETE CASCADE,
    position_id INTEGER NOT NULL REFERENCES positions(id),
    PRIMARY KEY (election_id, position_id)
);

CREATE TABLE IF NOT EXISTS nominations (
    id SERIAL PRIMARY KEY,
    nominator_id INTEGER NOT NULL REFERENCES members(id),
    nominee_id INTEGER NOT NULL REFERENCES members(id),
    position_id INTEGER NOT NULL REFERENCES positions(id),
    accepted BOOLEAN
);

CREATE INDEX IF NOT EXISTS idx_nominations_position ON nominations(position_id);
CREATE INDEX IF NOT EXISTS idx_nominations_nominee ON nominations(nominee_id);

CREATE TABLE IF NOT EXISTS ballots (
    id SERIAL PRIMARY KEY,
    election_id INTEGER NOT NULL REFERENCES elections(id),
    position_id INTEGER NOT NULL REFERENCES positions(id),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (election_id, position_id)
);

CREATE TABLE IF NOT EXISTS ballot_options (
    id SERIAL PRIMARY KEY,
    ballot_id INTEGER NOT NULL REFERENCES ballots(id) ON DELETE CASCADE,
    nomination_id INTEGER NOT NULL REFERENCES nominations(id)
);

CREATE INDEX IF NOT EXISTS idx_ballot_options_ballot ON ballot_options(ballot_id);

CREATE TABLE IF NOT EXISTS votes (
    id SERIAL PRIMARY KEY,
    ballot_id INTEGER NOT NULL REFERENCES ballots(id),
    member_id INTEGER NOT NULL,
    ballot_option_id INTEGER NOT NULL REFERENCES ballot_options(id),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (ballot_id, member_id)
);

CREATE INDEX IF NOT EXISTS idx_votes_ballot ON votes(ballot_id);
CREATE INDEX IF NOT EXISTS idx_votes_option ON votes(ballot_option_id);

CREATE TABLE IF NOT EXISTS winners (
    id SERIAL PRIMARY KEY,
    member_id INTEGER NOT NULL REFERENCES members(id),
    position_id INTEGER NOT NULL REFERENCES positions(id),
    UNIQUE (position_id)
);
`

func createTables(ctx context.Context, conn *pgx.Conn) error {
	_, err := conn.Exec(ctx, schema)
	return err
}

func dropTables(ctx context.Context, conn *pgx.Conn) error {
	_, err := conn.Exec(ctx, `
		DROP TABLE IF EXISTS winners;
		DROP TABLE IF EXISTS votes;
		DROP TABLE IF EXISTS ballot_options;
		DROP TABLE IF EXISTS ballots;
		DROP TABLE IF EXISTS nominations;
		DROP TABLE IF EXISTS election_positions;
		DROP TABLE IF EXISTS elections;
		DROP TABLE IF EXISTS positions;
		DROP TABLE IF EXISTS terms;
	`)
	return err
}

func seedData(ctx context.Context, conn *pgx.Conn) error {
	_, err := conn.Exec(ctx, `
		INSERT INTO members (first_name, last_name, email) VALUES
			('Avery', 'Martinez', 'avery.martinez@example.edu'),
			('Jordan', 'Chen', 'jordan.chen@example.edu'),
			('Riley', 'Okafor', 'riley.okafor@example.edu'),
			('Sam', 'Patel', 'sam.patel@example.edu')
		ON CONFLICT (email) DO NOTHING;

		INSERT INTO terms (name, start_date, end_date) VALUES
			('Fall 2025', '2025-09-01', '2025-12-15');

		INSERT INTO positions (title, ballot_order) VALUES
			('President', 1),
			('Vice President', 2),
			('Treasurer', 3);

		INSERT INTO elections (term_id, election_date, nominate_by)
		SELECT t.id, DATE '2025-10-01', DATE '2025-09-20'
		FROM terms t WHERE t.name = 'Fall 2025';

		INSERT INTO election_positions (election_id, position_id)
		SELECT e.id, p.id FROM elections e CROSS JOIN positions p;

		INSERT INTO nominations (nominator_id, nominee_id, position_id, accepted)
		SELECT m1.id, m2.id, p.id, TRUE
		FROM members m1, members m2, positions p
		WHERE m1.email = 'avery.martinez@example.edu'
		  AND m2.email = 'jordan.chen@example.edu'
		  AND p.title = 'President';
	`)
	return err
}
