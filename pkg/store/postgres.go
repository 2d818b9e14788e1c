package store

import (
	"context"
	"database/sql"
	"errors"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oiime/logrusbun"
	"github.com/sirupsen/logrus"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/robohr/ai-service/pkg/models"
)

type PgCommandRecord struct {
	bun.BaseModel `bun:"table:command_history,alias:ch"`

	UUID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	// ID is used only for sorting as we can't sort by CreatedAt for records
	// created simultaneously.
	ID           int64     `bun:",autoincrement"`
	CreatedAt    time.Time `bun:"type:timestamptz,notnull,default:current_timestamp"`
	DeletedAt    time.Time `bun:"type:timestamptz,soft_delete,nullzero"`
	EmployeeID   *int64    `bun:",nullzero"`
	CommandText  string    `bun:",notnull"`
	Action       string    `bun:",notnull"`
	Success      bool      `bun:",notnull,default:false"`
	ResponseTime int64     `bun:",notnull,default:0"`
	Language     string    `bun:",notnull,default:'en'"`
}

var _ models.HistoryStore = &PostgresStore{}

// PostgresStore persists command records with soft deletes. Deleted rows
// are removed for real by PurgeDeleted.
type PostgresStore struct {
	client *bun.DB
}

// NewPostgresStore returns a PostgresStore. Use this to correctly
// initialize the store and its schema.
func NewPostgresStore(client *bun.DB) (*PostgresStore, error) {
	if client == nil {
		return nil, NewStorageError("nil db client received", nil)
	}
	ps := &PostgresStore{client: client}
	if err := ps.ensureSchema(context.Background()); err != nil {
		return nil, NewStorageError("failed to ensure postgres schema setup", err)
	}
	return ps, nil
}

func (ps *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := ps.client.NewCreateTable().
		Model((*PgCommandRecord)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		// bun still trying to create indexes despite IfNotExists flag
		if strings.Contains(err.Error(), "already exists") {
			return nil
		}
		return err
	}
	return nil
}

func (ps *PostgresStore) Put(ctx context.Context, record *models.CommandRecord) error {
	if record == nil {
		return NewStorageError("nil record received", nil)
	}

	row := &PgCommandRecord{
		UUID:         record.UUID,
		CreatedAt:    record.CreatedAt,
		EmployeeID:   record.EmployeeID,
		CommandText:  record.CommandText,
		Action:       record.Action,
		Success:      record.Success,
		ResponseTime: record.ResponseTime,
		Language:     record.Language,
	}
	_, err := ps.client.NewInsert().Model(row).Exec(ctx)
	if err != nil {
		return NewStorageError("failed to put command record", err)
	}
	return nil
}

func (ps *PostgresStore) Get(
	ctx context.Context,
	recordUUID uuid.UUID,
) (*models.CommandRecord, error) {
	row := &PgCommandRecord{}
	err := ps.client.NewSelect().
		Model(row).
		Where("uuid = ?", recordUUID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NewNotFoundError("command record " + recordUUID.String())
		}
		return nil, NewStorageError("failed to get command record", err)
	}
	return rowToRecord(row), nil
}

func (ps *PostgresStore) List(
	ctx context.Context,
	limit int,
) ([]models.CommandRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []PgCommandRecord
	err := ps.client.NewSelect().
		Model(&rows).
		Order("id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, NewStorageError("failed to list command records", err)
	}

	records := make([]models.CommandRecord, len(rows))
	for i := range rows {
		records[i] = *rowToRecord(&rows[i])
	}
	return records, nil
}

// PurgeDeleted hard deletes soft deleted rows.
func (ps *PostgresStore) PurgeDeleted(ctx context.Context) error {
	_, err := ps.client.NewDelete().
		Model((*PgCommandRecord)(nil)).
		WhereDeleted().
		ForceDelete().
		Exec(ctx)
	if err != nil {
		return NewStorageError("failed to purge deleted rows", err)
	}
	return nil
}

func (ps *PostgresStore) Close() error {
	return ps.client.Close()
}

func rowToRecord(row *PgCommandRecord) *models.CommandRecord {
	return &models.CommandRecord{
		UUID:         row.UUID,
		CreatedAt:    row.CreatedAt,
		EmployeeID:   row.EmployeeID,
		CommandText:  row.CommandText,
		Action:       row.Action,
		Success:      row.Success,
		ResponseTime: row.ResponseTime,
		Language:     row.Language,
	}
}

// NewPostgresConn creates a new bun.DB connection to a postgres database
// using the provided DSN. The connection pool is sized from the number of
// PROCs available.
func NewPostgresConn(dsn string) *bun.DB {
	maxOpenConns := 4 * runtime.GOMAXPROCS(0)
	if dsn == "" {
		log.Fatal("store.postgres.dsn may not be empty")
	}
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	sqldb.SetMaxOpenConns(maxOpenConns)
	sqldb.SetMaxIdleConns(maxOpenConns)
	return bun.NewDB(sqldb, pgdialect.New())
}

func pgDebugLogging(db *bun.DB) {
	db.AddQueryHook(logrusbun.NewQueryHook(logrusbun.QueryHookOptions{
		LogSlow:         time.Second,
		Logger:          log,
		QueryLevel:      logrus.DebugLevel,
		ErrorLevel:      logrus.ErrorLevel,
		SlowLevel:       logrus.WarnLevel,
		MessageTemplate: "{{.Operation}}[{{.Duration}}]: {{.Query}}",
		ErrorTemplate:   "{{.Operation}}[{{.Duration}}]: {{.Query}}: {{.Error}}",
	}))
}
