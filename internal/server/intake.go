package server

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ksarkisyan/catalog-intake/constants"
	v1 "github.com/ksarkisyan/catalog-intake/gen/proto/catalog/v1"
	"github.com/ksarkisyan/catalog-intake/internal/export"
	"github.com/ksarkisyan/catalog-intake/internal/pipeline"
	"github.com/ksarkisyan/catalog-intake/internal/repository"
)

type IntakeService struct {
	v1.UnimplementedCatalogIntakeServiceServer
	coordinator *pipeline.Coordinator
	jobs        repository.UploadJobRepository
	brands      repository.BrandRepository
	exporter    *export.Service
	logger      *slog.Logger
}

func NewIntakeService(coord *pipeline.Coordinator, jobs repository.UploadJobRepository, brands repository.BrandRepository, exporter *export.Service, logger *slog.Logger) *IntakeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &IntakeService{
		coordinator: coord,
		jobs:        jobs,
		brands:      brands,
		exporter:    exporter,
		logger:      logger,
	}
}

// SubmitBatch validates the upload, creates the job row, and kicks off
// the coordinator in the background. Clients poll GetJob for progress.
func (s *IntakeService) SubmitBatch(ctx context.Context, req *v1.SubmitBatchRequest) (*v1.SubmitBatchResponse, error) {
	if len(req.GetFiles()) == 0 {
		s.logger.Error("submit batch request has no files")
		return nil, status.Error(codes.InvalidArgument, "at least one file is required")
	}

	var defaultBrandID *uuid.UUID
	if raw := strings.TrimSpace(req.GetDefaultBrandId()); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			s.logger.Error("invalid default_brand_id format", "default_brand_id", raw, "error", err)
			return nil, status.Error(codes.InvalidArgument, "default_brand_id must be a UUID")
		}
		if _, err := s.brands.GetByID(ctx, id); err != nil {
			s.logger.Error("default brand not found", "brand_id", id)
			return nil, status.Error(codes.InvalidArgument, "default brand not found")
		}
		defaultBrandID = &id
	}

	files := make([]pipeline.BatchFile, 0, len(req.GetFiles()))
	for _, f := range req.GetFiles() {
		name := strings.TrimSpace(f.GetFilename())
		if name == "" {
			return nil, status.Error(codes.InvalidArgument, "every file needs a filename")
		}
		if !constants.IsAllowedExt(filepath.Ext(name)) {
			return nil, status.Errorf(codes.InvalidArgument, "unsupported file type: %s", name)
		}
		if len(f.GetContent()) == 0 {
			return nil, status.Errorf(codes.InvalidArgument, "empty file: %s", name)
		}
		files = append(files, pipeline.BatchFile{Filename: name, Content: f.GetContent()})
	}

	job, err := s.jobs.Create(ctx, len(files))
	if err != nil {
		s.logger.Error("create upload job failed", "error", err)
		return nil, status.Error(codes.Internal, "create upload job failed")
	}

	s.logger.Info("batch accepted", "job_id", job.ID, "total_files", len(files))

	// The request context dies with the RPC; the batch runs on its own.
	go func() {
		runCtx := context.Background()
		if err := s.coordinator.Run(runCtx, job.ID, files, defaultBrandID); err != nil {
			s.logger.Error("batch run failed", "job_id", job.ID, "error", err)
		}
	}()

	return &v1.SubmitBatchResponse{
		JobId:      job.ID.String(),
		TotalFiles: int32(len(files)),
	}, nil
}

func (s *IntakeService) GetJob(ctx context.Context, req *v1.GetJobRequest) (*v1.GetJobResponse, error) {
	raw := strings.TrimSpace(req.GetJobId())
	if raw == "" {
		return nil, status.Error(codes.InvalidArgument, "job_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}

	job, err := s.jobs.Get(ctx, id)
	if err != nil {
		s.logger.Warn("job lookup failed", "job_id", id, "error", err)
		return nil, status.Error(codes.NotFound, "job not found")
	}

	resp := &v1.GetJobResponse{
		JobId:          job.ID.String(),
		Status:         job.Status,
		TotalFiles:     int32(job.TotalFiles),
		ProcessedFiles: int32(job.ProcessedFiles),
		FailedFiles:    int32(job.FailedFiles),
		SkippedFiles:   int32(job.SkippedFiles),
		PhaseMessage:   job.PhaseMessage,
		CreatedAt:      job.CreatedAt.UTC().Format(time.RFC3339),
	}
	if job.CompletedAt != nil {
		resp.CompletedAt = job.CompletedAt.UTC().Format(time.RFC3339)
	}
	return resp, nil
}
