package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, pgx.Tx
// and pgxmock's pool. Accepting it instead of *pgxpool.Pool lets integration
// tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgSlotRepo is the Postgres implementation of SlotRepo, backed by the
// kv_slots table created in migrations/00001_create_kv_slots.sql.
type pgSlotRepo struct {
	db db
}

// NewPostgresSlotRepo constructs a SlotRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPostgresSlotRepo(db db) SlotRepo {
	return &pgSlotRepo{db: db}
}

const (
	selectSlotSQL = `SELECT value FROM kv_slots WHERE key = $1`
	upsertSlotSQL = `
		INSERT INTO kv_slots (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()`
	deleteSlotSQL = `DELETE FROM kv_slots WHERE key = $1`
)

func (r *pgSlotRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, fmt.Errorf("repo.pgSlotRepo.Get: %w", err)
	}
	var data []byte
	if err := r.db.QueryRow(ctx, selectSlotSQL, key).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("repo.pgSlotRepo.Get: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("repo.pgSlotRepo.Get: %w", err)
	}
	return data, nil
}

// Put upserts the slot row; a single statement is atomic on its own.
func (r *pgSlotRepo) Put(ctx context.Context, key string, data []byte) error {
	if err := checkKey(key); err != nil {
		return fmt.Errorf("repo.pgSlotRepo.Put: %w", err)
	}
	if _, err := r.db.Exec(ctx, upsertSlotSQL, key, data); err != nil {
		return fmt.Errorf("repo.pgSlotRepo.Put: %w", err)
	}
	return nil
}

func (r *pgSlotRepo) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return fmt.Errorf("repo.pgSlotRepo.Delete: %w", err)
	}
	if _, err := r.db.Exec(ctx, deleteSlotSQL, key); err != nil {
		return fmt.Errorf("repo.pgSlotRepo.Delete: %w", err)
	}
	return nil
}
