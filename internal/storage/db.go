package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"cv-builder/internal/cv"
)

// ErrNotFound is returned when no record exists for an identifier.
var ErrNotFound = errors.New("cv not found")

type DB struct {
	connection *sql.DB
}

func NewDB(dataSourceName string) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	// Connection pool tuning
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "ping database")
	}

	return &DB{connection: db}, nil
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		log.Error().Err(err).Msg("error closing the database connection")
	}
}

const recordColumns = `id, user_uuid, name, email, phone, location, linkedin_url, summary,
	       experiences, education, skills, created_at, updated_at`

// Get returns the record addressed by identifier, or ErrNotFound.
func (db *DB) Get(ctx context.Context, identifier string) (*StoredRecord, error) {
	row := db.connection.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM cvs WHERE user_uuid = $1`, identifier)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get cv")
	}
	return rec, nil
}

// Exists reports whether a record is stored for identifier.
func (db *DB) Exists(ctx context.Context, identifier string) (bool, error) {
	var exists bool
	err := db.connection.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM cvs WHERE user_uuid = $1)`, identifier).Scan(&exists)
	return exists, err
}

// Upsert stores rec under identifier. Existence is checked first and the
// write branches between insert and update; both branches return the stored
// row including server-assigned timestamps. Concurrent writers to the same
// identifier race last-write-wins.
func (db *DB) Upsert(ctx context.Context, identifier string, rec cv.Record) (*StoredRecord, error) {
	experiences, err := json.Marshal(rec.Experiences)
	if err != nil {
		return nil, errors.Wrap(err, "encode experiences")
	}
	education, err := json.Marshal(rec.Education)
	if err != nil {
		return nil, errors.Wrap(err, "encode education")
	}
	skills, err := json.Marshal(rec.Skills)
	if err != nil {
		return nil, errors.Wrap(err, "encode skills")
	}

	exists, err := db.Exists(ctx, identifier)
	if err != nil {
		return nil, errors.Wrap(err, "check cv existence")
	}

	var row *sql.Row
	if exists {
		row = db.connection.QueryRowContext(ctx, `
			UPDATE cvs SET
				name         = $2,
				email        = $3,
				phone        = $4,
				location     = $5,
				linkedin_url = $6,
				summary      = $7,
				experiences  = $8::jsonb,
				education    = $9::jsonb,
				skills       = $10::jsonb,
				updated_at   = NOW()
			WHERE user_uuid = $1
			RETURNING `+recordColumns,
			identifier, rec.Name, rec.Email, rec.Phone, rec.Location,
			rec.LinkedinURL, rec.Summary, experiences, education, skills)
	} else {
		row = db.connection.QueryRowContext(ctx, `
			INSERT INTO cvs
				(user_uuid, name, email, phone, location, linkedin_url, summary,
				 experiences, education, skills)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9::jsonb, $10::jsonb)
			RETURNING `+recordColumns,
			identifier, rec.Name, rec.Email, rec.Phone, rec.Location,
			rec.LinkedinURL, rec.Summary, experiences, education, skills)
	}

	stored, err := scanRecord(row)
	if err != nil {
		return nil, errors.Wrap(err, "upsert cv")
	}
	return stored, nil
}

func scanRecord(row *sql.Row) (*StoredRecord, error) {
	var (
		rec         StoredRecord
		experiences []byte
		education   []byte
		skills      []byte
	)
	err := row.Scan(&rec.ID, &rec.UserUUID, &rec.Name, &rec.Email, &rec.Phone,
		&rec.Location, &rec.LinkedinURL, &rec.Summary,
		&experiences, &education, &skills, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(experiences, &rec.Experiences); err != nil {
		return nil, errors.Wrap(err, "decode experiences")
	}
	if err := json.Unmarshal(education, &rec.Education); err != nil {
		return nil, errors.Wrap(err, "decode education")
	}
	if err := json.Unmarshal(skills, &rec.Skills); err != nil {
		return nil, errors.Wrap(err, "decode skills")
	}
	return &rec, nil
}
