package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/erickfunier/pdftotext-worker/internal/domain/queue"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = `id, queue, status, payload, result, error, created_at, updated_at, completed_at`

// PostgresJobRepository implements queue.JobRepository using PostgreSQL
type PostgresJobRepository struct {
	db *pgxpool.Pool
}

// NewPostgresJobRepository creates a new PostgreSQL job repository
func NewPostgresJobRepository(db *pgxpool.Pool) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, job *queue.Job) error {
	// payload and result are bytea: neither is guaranteed to be valid text
	_, err := r.db.Exec(ctx,
		`INSERT INTO extraction_jobs (`+jobColumns+`)
         VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		job.ID, job.Queue, job.Status, job.Payload, []byte(job.Result), job.Error,
		job.CreatedAt, job.UpdatedAt, job.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job %s: %w", job.ID, err)
	}
	return nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*queue.Job, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM extraction_jobs WHERE id = $1`, id)

	job, err := scanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, queue.ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}

	return job, nil
}

func (r *PostgresJobRepository) Update(ctx context.Context, job *queue.Job) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE extraction_jobs SET status=$1, result=$2, error=$3, updated_at=$4, completed_at=$5
         WHERE id=$6`,
		job.Status, []byte(job.Result), job.Error, job.UpdatedAt, job.CompletedAt, job.ID,
	)
	if err != nil {
		return fmt.Errorf("update job %s: %w", job.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return queue.ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) FindByStatus(ctx context.Context, status queue.Status, limit int) ([]*queue.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM extraction_jobs
         WHERE status = $1
         ORDER BY created_at DESC
         LIMIT $2`,
		status, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*queue.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}

func (r *PostgresJobRepository) CountByStatus(ctx context.Context, status queue.Status) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM extraction_jobs WHERE status = $1`, status,
	).Scan(&count)
	return count, err
}

func scanJob(row pgx.Row) (*queue.Job, error) {
	job := &queue.Job{}
	var result []byte
	err := row.Scan(
		&job.ID, &job.Queue, &job.Status, &job.Payload, &result, &job.Error,
		&job.CreatedAt, &job.UpdatedAt, &job.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	job.Result = string(result)
	return job, nil
}
