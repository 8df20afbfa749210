package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bdelucia/blog/internal/domain"
	"github.com/bdelucia/blog/internal/middleware"
	"github.com/bdelucia/blog/internal/repository"
)

// CleanupJob purges rejected and spam comments past the retention window
type CleanupJob struct {
	commentRepo   repository.CommentRepository
	retentionDays int
	logger        *zap.Logger
}

// NewCleanupJob creates a new CleanupJob instance
func NewCleanupJob(commentRepo repository.CommentRepository, retentionDays int, logger *zap.Logger) *CleanupJob {
	return &CleanupJob{
		commentRepo:   commentRepo,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// Run executes the cleanup job. Only comments that were moderated into
// rejected or spam before the retention cutoff are removed; pending and
// approved comments are never touched.
func (j *CleanupJob) Run() {
	ctx := context.Background()
	cutoff := time.Now().UTC().AddDate(0, 0, -j.retentionDays)

	j.logger.Info("Starting comment cleanup job",
		zap.Int("retention_days", j.retentionDays),
		zap.Time("cutoff", cutoff),
	)

	deleted, err := j.commentRepo.DeleteModeratedBefore(ctx,
		[]domain.CommentStatus{domain.CommentStatusRejected, domain.CommentStatusSpam},
		cutoff,
	)
	if err != nil {
		j.logger.Error("Failed to purge moderated comments", zap.Error(err))
		return
	}

	if deleted > 0 {
		middleware.RecordPurge(deleted)
	}

	j.logger.Info("Comment cleanup job completed", zap.Int64("deleted", deleted))
}
