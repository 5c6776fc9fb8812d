package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ksarkisyan/catalog-intake/constants"
	"github.com/ksarkisyan/catalog-intake/gen/ent"
)

// JobProgress is the counter snapshot written after each file/chunk.
// Counters are owned by the coordinator and only ever grow.
type JobProgress struct {
	Processed int
	Failed    int
	Skipped   int
	Phase     string
}

type UploadJobRepository interface {
	Create(ctx context.Context, totalFiles int) (*ent.UploadJob, error)
	Get(ctx context.Context, id uuid.UUID) (*ent.UploadJob, error)
	MarkProcessing(ctx context.Context, id uuid.UUID, phase string) error
	Progress(ctx context.Context, id uuid.UUID, p JobProgress) error
	Finish(ctx context.Context, id uuid.UUID, status constants.JobStatus, phase string) error
}

type uploadJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewUploadJobRepository(entc *ent.Client, log *slog.Logger) UploadJobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &uploadJobRepo{ent: entc, log: log}
}

func (r *uploadJobRepo) Create(ctx context.Context, totalFiles int) (*ent.UploadJob, error) {
	job, err := r.ent.UploadJob.Create().
		SetTotalFiles(totalFiles).
		SetStatus(string(constants.JobStatusPending)).
		Save(ctx)
	if err != nil {
		r.log.Error("upload_job create failed", "err", err)
		return nil, err
	}
	r.log.Info("upload_job created", "job_id", job.ID, "total_files", totalFiles)
	return job, nil
}

func (r *uploadJobRepo) Get(ctx context.Context, id uuid.UUID) (*ent.UploadJob, error) {
	return r.ent.UploadJob.Get(ctx, id)
}

func (r *uploadJobRepo) MarkProcessing(ctx context.Context, id uuid.UUID, phase string) error {
	_, err := r.ent.UploadJob.UpdateOneID(id).
		SetStatus(string(constants.JobStatusProcessing)).
		SetPhaseMessage(phase).
		Save(ctx)
	if err != nil {
		r.log.Error("upload_job mark processing failed", "job_id", id, "err", err)
	}
	return err
}

func (r *uploadJobRepo) Progress(ctx context.Context, id uuid.UUID, p JobProgress) error {
	_, err := r.ent.UploadJob.UpdateOneID(id).
		SetProcessedFiles(p.Processed).
		SetFailedFiles(p.Failed).
		SetSkippedFiles(p.Skipped).
		SetPhaseMessage(p.Phase).
		Save(ctx)
	if err != nil {
		r.log.Error("upload_job progress update failed", "job_id", id, "err", err)
	}
	return err
}

func (r *uploadJobRepo) Finish(ctx context.Context, id uuid.UUID, status constants.JobStatus, phase string) error {
	_, err := r.ent.UploadJob.UpdateOneID(id).
		SetStatus(string(status)).
		SetPhaseMessage(phase).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("upload_job finish failed", "job_id", id, "status", status, "err", err)
		return err
	}
	r.log.Info("upload_job finished", "job_id", id, "status", status)
	return nil
}
