package automatic

import (
	"database/sql"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"
)

// A ResultStore keeps batch results in a sqlite database, for querying
// across runs.
type ResultStore struct {
	db     *sql.DB
	insert *sql.Stmt
}

func OpenResultStore(filename string) (*ResultStore, error) {
	db, err := sql.Open("sqlite", filename)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS results (
		thread INTEGER,
		job INTEGER,
		poolsize INTEGER,
		solved INTEGER,
		nodes INTEGER,
		elapsed_us INTEGER,
		pool TEXT
	)`)
	if err != nil {
		db.Close()
		return nil, err
	}
	insert, err := db.Prepare(
		`INSERT INTO results (thread, job, poolsize, solved, nodes, elapsed_us, pool)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &ResultStore{db: db, insert: insert}, nil
}

// InsertCSVLine inserts one line of the batch log, in the same format
// the CSV writer receives.
func (rs *ResultStore) InsertCSVLine(line string) error {
	fields := strings.Split(strings.TrimSpace(line), ",")
	vals := make([]interface{}, len(fields))
	for i, f := range fields {
		if i == 3 {
			vals[i] = f == "true"
			continue
		}
		if n, err := strconv.Atoi(f); err == nil {
			vals[i] = n
		} else {
			vals[i] = f
		}
	}
	_, err := rs.insert.Exec(vals...)
	return err
}

func (rs *ResultStore) Close() error {
	rs.insert.Close()
	return rs.db.Close()
}
