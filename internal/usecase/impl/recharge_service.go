package impl

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strconv"
	"time"

	"raseed/internal/domain/constants"
	"raseed/internal/domain/entity"
	domainerrors "raseed/internal/domain/errors"
	"raseed/internal/domain/repository"
	"raseed/internal/domain/service"
	"raseed/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	maxBatchSize = 500

	defaultCodeLimit = 50
	maxCodeLimit     = 100
)

type rechargeService struct {
	codeRepo  repository.RechargeCodeRepository
	generator service.CodeGenerator
	qrcodeSvc service.QRCodeService
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewRechargeService creates a new recharge service instance
func NewRechargeService(
	codeRepo repository.RechargeCodeRepository,
	generator service.CodeGenerator,
	qrcodeSvc service.QRCodeService,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.RechargeUsecase {
	return &rechargeService{
		codeRepo:  codeRepo,
		generator: generator,
		qrcodeSvc: qrcodeSvc,
		publisher: publisher,
		logger:    logger,
	}
}

// IssueBatch generates, persists and returns a batch of recharge codes. The
// plaintext codes only ever exist in the returned result; storage holds their
// hashes. Any insert failure aborts the whole batch.
func (s *rechargeService) IssueBatch(ctx context.Context, input *usecase.IssueBatchInput) (*usecase.IssuedBatch, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.ErrRechargeAmountInvalid
	}
	if input.Count < 1 || input.Count > maxBatchSize {
		return nil, domainerrors.ErrRechargeCountInvalid
	}

	batchID := uuid.New()

	var expiresAt *time.Time
	if input.ExpiresDays != nil && *input.ExpiresDays > 0 {
		expiry := time.Now().AddDate(0, 0, *input.ExpiresDays)
		expiresAt = &expiry
	}

	plaintexts := make([]string, 0, input.Count)
	rows := make([]*entity.RechargeCode, 0, input.Count)
	for i := 0; i < input.Count; i++ {
		code := s.generator.GenerateCode()
		plaintexts = append(plaintexts, code)
		rows = append(rows, &entity.RechargeCode{
			CodeHash:  s.generator.HashCode(code),
			Amount:    input.Amount,
			BatchID:   batchID,
			ExpiresAt: expiresAt,
		})
	}

	if err := s.codeRepo.CreateBatch(ctx, rows); err != nil {
		return nil, err
	}

	result := &usecase.IssuedBatch{
		BatchID:   batchID,
		Codes:     plaintexts,
		Amount:    input.Amount,
		Count:     input.Count,
		ExpiresAt: expiresAt,
	}

	if input.WithQR {
		qrCodes, err := s.renderQRCodes(plaintexts, input.Amount)
		if err != nil {
			// The batch is already persisted; return it without images.
			s.logger.Warn("Failed to render batch QR codes",
				slog.String("batch_id", batchID.String()),
				slog.String("error", err.Error()),
			)
		} else {
			result.QRCodes = qrCodes
		}
	}

	s.publishEvent(ctx, constants.EventBatchIssued, batchID.String(), map[string]string{
		"count":  strconv.Itoa(input.Count),
		"amount": strconv.FormatInt(input.Amount, 10),
	})

	return result, nil
}

// ListCodes retrieves a page of issued code rows (hashes only)
func (s *rechargeService) ListCodes(ctx context.Context, input *usecase.ListCodesInput) ([]*entity.RechargeCode, int64, error) {
	limit, offset := clampPage(input.Page, input.Limit, defaultCodeLimit, maxCodeLimit)

	codes, total, err := s.codeRepo.ListRechargeCodes(ctx, repository.ListRechargeCodesQuery{
		BatchID: input.BatchID,
		Status:  input.Status,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list recharge codes")
	}

	return codes, total, nil
}

// renderQRCodes renders one base64 PNG per plaintext code.
func (s *rechargeService) renderQRCodes(codes []string, amount int64) ([]string, error) {
	images := make([]string, 0, len(codes))
	for _, code := range codes {
		png, err := s.qrcodeSvc.GenerateRechargeQR(code, amount)
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate recharge QR")
		}
		images = append(images, base64.StdEncoding.EncodeToString(png))
	}

	return images, nil
}

// publishEvent publishes an admin action event. Payloads never carry
// plaintext codes. Publish failures are logged, never surfaced.
func (s *rechargeService) publishEvent(ctx context.Context, eventType, entityID string, payload map[string]string) {
	event := &service.AdminEvent{
		RequestID: requestIDFromContext(ctx),
		Type:      eventType,
		EntityID:  entityID,
		Payload:   payload,
	}

	if err := s.publisher.PublishAdminEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish admin event",
			slog.String("type", eventType),
			slog.String("entity_id", entityID),
			slog.String("error", err.Error()),
		)
	}
}
