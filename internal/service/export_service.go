package service

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"consensus-api/internal/client"
	"consensus-api/internal/domain"
	"consensus-api/internal/dto"
	"consensus-api/internal/repository"
)

const exportLinkTTL = 15 * time.Minute

// ExportService archives a form's responses
type ExportService interface {
	ExportResponses(ctx context.Context, session domain.Session, formID uuid.UUID) (*dto.ExportResponse, error)
}

type exportServiceImpl struct {
	submissions SubmissionService
	guard       accessGuard
	store       client.ObjectStore
	logger      *zap.Logger
	now         func() time.Time
}

// NewExportService creates a new instance of ExportService. store may be nil,
// in which case exports are returned inline.
func NewExportService(
	formRepo repository.FormRepository,
	membershipRepo repository.MembershipRepository,
	submissions SubmissionService,
	store client.ObjectStore,
	logger *zap.Logger,
) ExportService {
	return &exportServiceImpl{
		submissions: submissions,
		guard:       newAccessGuard(formRepo, membershipRepo),
		store:       store,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *exportServiceImpl) ExportResponses(ctx context.Context, session domain.Session, formID uuid.UUID) (*dto.ExportResponse, error) {
	form, err := s.guard.owned(ctx, session, formID)
	if err != nil {
		return nil, err
	}
	rounds, err := s.submissions.ListAllResponses(ctx, session, formID)
	if err != nil {
		return nil, err
	}

	exportedAt := s.now().UTC()
	doc := &dto.ExportDocument{
		Form:       dto.ToFormResponse(form),
		Rounds:     make([]dto.RoundResponsesResponse, 0, len(rounds)),
		ExportedAt: exportedAt,
	}
	for _, r := range rounds {
		doc.Rounds = append(doc.Rounds, *r)
	}

	if s.store == nil {
		return &dto.ExportResponse{FormID: formID, Document: doc}, nil
	}

	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, internalError("Failed to encode export", err)
	}

	key := s.store.ExportKey(formID, exportedAt)
	objectURL, err := s.store.Upload(ctx, key, bytes.NewReader(body), "application/json")
	if err != nil {
		return nil, internalError("Failed to upload export", err)
	}

	result := &dto.ExportResponse{FormID: formID, ObjectKey: key, ObjectURL: objectURL}
	if link, err := s.store.PresignGet(ctx, key, exportLinkTTL); err != nil {
		s.logger.Warn("Failed to presign export link", zap.String("key", key), zap.Error(err))
	} else {
		result.DownloadURL = link
	}

	s.logger.Info("Responses exported",
		zap.String("form_id", formID.String()),
		zap.String("key", key),
		zap.Int("bytes", len(body)),
	)
	return result, nil
}
