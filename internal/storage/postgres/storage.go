package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/printdesk/internal/domain/errors"
	"github.com/polkiloo/printdesk/internal/domain/model"
	"github.com/polkiloo/printdesk/internal/domain/repository"
)

const uniqueViolation = "23505"

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type shopRepository struct {
	storage *Storage
}

type submissionRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	logger.Info("postgres storage ready")

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Shops() repository.ShopRepository {
	return &shopRepository{storage: s}
}

func (s *Storage) Submissions() repository.SubmissionRepository {
	return &submissionRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS shops (
            id TEXT PRIMARY KEY,
            owner_name TEXT NOT NULL,
            email TEXT NOT NULL,
            phone TEXT NOT NULL,
            shop_name TEXT NOT NULL,
            shop_address TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS submissions (
            id TEXT PRIMARY KEY,
            seq BIGSERIAL UNIQUE,
            shop_id TEXT NOT NULL,
            files JSONB NOT NULL,
            verification_code TEXT NOT NULL,
            idempotency_key TEXT,
            state TEXT NOT NULL DEFAULT 'pending',
            submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            removed_at TIMESTAMPTZ
        )`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_submissions_idempotency ON submissions(idempotency_key) WHERE idempotency_key IS NOT NULL`,
		`CREATE INDEX IF NOT EXISTS idx_shops_name ON shops(lower(shop_name))`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- ShopRepository implementation ---

const shopColumns = `id, owner_name, email, phone, shop_name, shop_address, created_at`

func (r *shopRepository) Create(ctx context.Context, shop model.Shop) (*model.Shop, error) {
	const query = `INSERT INTO shops (id, owner_name, email, phone, shop_name, shop_address)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at`
	err := r.storage.pool.QueryRow(ctx, query, shop.ID, shop.OwnerName, shop.Email, shop.Phone, shop.ShopName, shop.ShopAddress).Scan(&shop.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, fmt.Errorf("insert shop: %w", err)
	}
	return &shop, nil
}

func (r *shopRepository) Search(ctx context.Context, q string) ([]model.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops
              WHERE strpos(lower(shop_name), lower($1)) > 0
              ORDER BY created_at, id`
	rows, err := r.storage.pool.Query(ctx, query, q)
	if err != nil {
		return nil, fmt.Errorf("search shops: %w", err)
	}
	defer rows.Close()

	var result []model.Shop
	for rows.Next() {
		var s model.Shop
		if err := rows.Scan(&s.ID, &s.OwnerName, &s.Email, &s.Phone, &s.ShopName, &s.ShopAddress, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *shopRepository) GetByID(ctx context.Context, id string) (*model.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE id=$1`
	var s model.Shop
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.OwnerName, &s.Email, &s.Phone, &s.ShopName, &s.ShopAddress, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// --- SubmissionRepository implementation ---

const submissionColumns = `id, seq, shop_id, files, verification_code, COALESCE(idempotency_key, ''), state, submitted_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (*model.Submission, error) {
	var (
		sub   model.Submission
		files []byte
	)
	if err := row.Scan(&sub.ID, &sub.Seq, &sub.ShopID, &files, &sub.VerificationCode, &sub.IdempotencyKey, &sub.State, &sub.Timestamp); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(files, &sub.Files); err != nil {
		return nil, fmt.Errorf("decode submission files: %w", err)
	}
	return &sub, nil
}

func nullableKey(key string) *string {
	if key == "" {
		return nil
	}
	return &key
}

func (r *submissionRepository) Append(ctx context.Context, sub model.Submission) (*model.Submission, bool, error) {
	const insertQuery = `INSERT INTO submissions (id, shop_id, files, verification_code, idempotency_key, state, submitted_at)
                         VALUES ($1, $2, $3, $4, $5, $6, $7)
                         ON CONFLICT (idempotency_key) WHERE idempotency_key IS NOT NULL DO NOTHING
                         RETURNING seq`
	const existingQuery = `SELECT ` + submissionColumns + ` FROM submissions WHERE idempotency_key=$1`

	if sub.State == "" {
		sub.State = model.EntryStatePending
	}
	if sub.Timestamp.IsZero() {
		sub.Timestamp = time.Now().UTC()
	}
	files, err := json.Marshal(sub.Files)
	if err != nil {
		return nil, false, fmt.Errorf("encode submission files: %w", err)
	}

	var (
		result  *model.Submission
		created bool
	)
	err = r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertQuery, sub.ID, sub.ShopID, files, sub.VerificationCode, nullableKey(sub.IdempotencyKey), sub.State, sub.Timestamp).Scan(&sub.Seq)
		if err == nil {
			result, created = &sub, true
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return domainErrors.ErrAlreadyExists
			}
			return fmt.Errorf("insert submission: %w", err)
		}
		existing, err := scanSubmission(tx.QueryRow(ctx, existingQuery, sub.IdempotencyKey))
		if err != nil {
			return fmt.Errorf("load submission by idempotency key: %w", err)
		}
		result = existing
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return result, created, nil
}

func (r *submissionRepository) List(ctx context.Context) ([]model.Submission, error) {
	const query = `SELECT ` + submissionColumns + ` FROM submissions WHERE removed_at IS NULL ORDER BY seq`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var result []model.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *sub)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *submissionRepository) Get(ctx context.Context, id string) (*model.Submission, error) {
	const query = `SELECT ` + submissionColumns + ` FROM submissions WHERE id=$1 AND removed_at IS NULL`
	sub, err := scanSubmission(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return sub, nil
}

func (r *submissionRepository) SetState(ctx context.Context, id string, state model.EntryState) error {
	const query = `UPDATE submissions SET state=$1 WHERE id=$2 AND removed_at IS NULL`
	tag, err := r.storage.pool.Exec(ctx, query, state, id)
	if err != nil {
		return fmt.Errorf("update submission state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// Remove retires the row instead of deleting it so its idempotency key stays
// claimed.
func (r *submissionRepository) Remove(ctx context.Context, id string) error {
	const query = `UPDATE submissions SET removed_at=NOW() WHERE id=$1 AND removed_at IS NULL`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("remove submission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
