package impl

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"
	"time"

	"raseed/internal/domain/constants"
	"raseed/internal/domain/entity"
	domainerrors "raseed/internal/domain/errors"
	"raseed/internal/domain/repository"
	"raseed/internal/domain/service"
	mockRepo "raseed/internal/mocks/repository"
	mockSvc "raseed/internal/mocks/service"
	"raseed/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type rechargeFixture struct {
	codeRepo  *mockRepo.MockRechargeCodeRepository
	generator *mockSvc.MockCodeGenerator
	qrcodeSvc *mockSvc.MockQRCodeService
	publisher *mockSvc.MockEventPublisher
	service   usecase.RechargeUsecase
}

func newRechargeFixture(t *testing.T) *rechargeFixture {
	t.Helper()

	f := &rechargeFixture{
		codeRepo:  mockRepo.NewMockRechargeCodeRepository(t),
		generator: mockSvc.NewMockCodeGenerator(t),
		qrcodeSvc: mockSvc.NewMockQRCodeService(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	f.service = NewRechargeService(f.codeRepo, f.generator, f.qrcodeSvc, f.publisher, discardLogger())

	return f
}

// expectSequentialCodes makes the generator hand out CODE-0001, CODE-0002, ...
// and hash every code as "hash:"+code.
func (f *rechargeFixture) expectSequentialCodes() {
	counter := 0
	f.generator.EXPECT().
		GenerateCode().
		RunAndReturn(func() string {
			counter++
			return fmt.Sprintf("CODE-%04d", counter)
		})
	f.generator.EXPECT().
		HashCode(mock.AnythingOfType("string")).
		RunAndReturn(func(code string) string {
			return "hash:" + code
		})
}

func TestRechargeService_IssueBatch_Validation(t *testing.T) {
	f := newRechargeFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   *usecase.IssueBatchInput
		wantErr error
	}{
		{
			name:    "zero amount",
			input:   &usecase.IssueBatchInput{Amount: 0, Count: 10},
			wantErr: domainerrors.ErrRechargeAmountInvalid,
		},
		{
			name:    "negative amount",
			input:   &usecase.IssueBatchInput{Amount: -5000, Count: 10},
			wantErr: domainerrors.ErrRechargeAmountInvalid,
		},
		{
			name:    "zero count",
			input:   &usecase.IssueBatchInput{Amount: 5000, Count: 0},
			wantErr: domainerrors.ErrRechargeCountInvalid,
		},
		{
			name:    "count over batch cap",
			input:   &usecase.IssueBatchInput{Amount: 5000, Count: 501},
			wantErr: domainerrors.ErrRechargeCountInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch, err := f.service.IssueBatch(ctx, tt.input)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, batch)
		})
	}
}

func TestRechargeService_IssueBatch_PersistsHashesOnly(t *testing.T) {
	f := newRechargeFixture(t)
	ctx := context.Background()

	f.expectSequentialCodes()

	f.codeRepo.EXPECT().
		CreateBatch(ctx, mock.AnythingOfType("[]*entity.RechargeCode")).
		Run(func(_ context.Context, rows []*entity.RechargeCode) {
			require.Len(t, rows, 3)
			for i, row := range rows {
				assert.Equal(t, fmt.Sprintf("hash:CODE-%04d", i+1), row.CodeHash)
				assert.Equal(t, int64(5000), row.Amount)
				assert.Equal(t, rows[0].BatchID, row.BatchID)
				assert.Nil(t, row.ExpiresAt)
			}
		}).
		Return(nil)

	f.publisher.EXPECT().
		PublishAdminEvent(ctx, mock.AnythingOfType("*service.AdminEvent")).
		Run(func(_ context.Context, event *service.AdminEvent) {
			assert.Equal(t, constants.EventBatchIssued, event.Type)
			assert.Equal(t, "3", event.Payload["count"])
			assert.Equal(t, "5000", event.Payload["amount"])
			// The event never carries plaintext codes.
			assert.NotContains(t, event.Payload, "codes")
		}).
		Return(nil)

	batch, err := f.service.IssueBatch(ctx, &usecase.IssueBatchInput{Amount: 5000, Count: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"CODE-0001", "CODE-0002", "CODE-0003"}, batch.Codes)
	assert.Equal(t, int64(5000), batch.Amount)
	assert.Equal(t, 3, batch.Count)
	assert.Nil(t, batch.ExpiresAt)
	assert.Empty(t, batch.QRCodes)
}

func TestRechargeService_IssueBatch_WithExpiry(t *testing.T) {
	f := newRechargeFixture(t)
	ctx := context.Background()
	days := 30

	f.expectSequentialCodes()

	f.codeRepo.EXPECT().
		CreateBatch(ctx, mock.AnythingOfType("[]*entity.RechargeCode")).
		Run(func(_ context.Context, rows []*entity.RechargeCode) {
			require.Len(t, rows, 1)
			require.NotNil(t, rows[0].ExpiresAt)
			assert.WithinDuration(t, time.Now().AddDate(0, 0, days), *rows[0].ExpiresAt, time.Minute)
		}).
		Return(nil)

	f.publisher.EXPECT().
		PublishAdminEvent(ctx, mock.AnythingOfType("*service.AdminEvent")).
		Return(nil)

	batch, err := f.service.IssueBatch(ctx, &usecase.IssueBatchInput{
		Amount:      10000,
		Count:       1,
		ExpiresDays: &days,
	})
	require.NoError(t, err)
	require.NotNil(t, batch.ExpiresAt)
}

func TestRechargeService_IssueBatch_WithQR(t *testing.T) {
	f := newRechargeFixture(t)
	ctx := context.Background()
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	f.expectSequentialCodes()

	f.codeRepo.EXPECT().
		CreateBatch(ctx, mock.AnythingOfType("[]*entity.RechargeCode")).
		Return(nil)

	f.qrcodeSvc.EXPECT().
		GenerateRechargeQR(mock.AnythingOfType("string"), int64(5000)).
		Return(png, nil)

	f.publisher.EXPECT().
		PublishAdminEvent(ctx, mock.AnythingOfType("*service.AdminEvent")).
		Return(nil)

	batch, err := f.service.IssueBatch(ctx, &usecase.IssueBatchInput{
		Amount: 5000,
		Count:  2,
		WithQR: true,
	})
	require.NoError(t, err)
	require.Len(t, batch.QRCodes, 2)
	assert.Equal(t, base64.StdEncoding.EncodeToString(png), batch.QRCodes[0])
}

func TestRechargeService_IssueBatch_QRFailureKeepsBatch(t *testing.T) {
	f := newRechargeFixture(t)
	ctx := context.Background()

	f.expectSequentialCodes()

	f.codeRepo.EXPECT().
		CreateBatch(ctx, mock.AnythingOfType("[]*entity.RechargeCode")).
		Return(nil)

	f.qrcodeSvc.EXPECT().
		GenerateRechargeQR(mock.AnythingOfType("string"), int64(5000)).
		Return(nil, errors.New("render failed"))

	f.publisher.EXPECT().
		PublishAdminEvent(ctx, mock.AnythingOfType("*service.AdminEvent")).
		Return(nil)

	batch, err := f.service.IssueBatch(ctx, &usecase.IssueBatchInput{
		Amount: 5000,
		Count:  2,
		WithQR: true,
	})
	require.NoError(t, err)
	assert.Len(t, batch.Codes, 2)
	assert.Empty(t, batch.QRCodes)
}

func TestRechargeService_IssueBatch_InsertFailureAbortsBatch(t *testing.T) {
	f := newRechargeFixture(t)
	ctx := context.Background()

	f.expectSequentialCodes()

	f.codeRepo.EXPECT().
		CreateBatch(ctx, mock.AnythingOfType("[]*entity.RechargeCode")).
		Return(errors.New("insert failed"))

	batch, err := f.service.IssueBatch(ctx, &usecase.IssueBatchInput{Amount: 5000, Count: 5})
	require.Error(t, err)
	assert.Nil(t, batch)
}

func TestRechargeService_ListCodes_ClampsPaging(t *testing.T) {
	f := newRechargeFixture(t)
	ctx := context.Background()

	f.codeRepo.EXPECT().
		ListRechargeCodes(ctx, repository.ListRechargeCodesQuery{
			Status: repository.RechargeStatusUnused,
			Limit:  50,
			Offset: 0,
		}).
		Return([]*entity.RechargeCode{}, int64(0), nil)

	_, _, err := f.service.ListCodes(ctx, &usecase.ListCodesInput{Status: "unused"})
	require.NoError(t, err)

	f.codeRepo.EXPECT().
		ListRechargeCodes(ctx, repository.ListRechargeCodesQuery{
			BatchID: "batch-1",
			Limit:   100,
			Offset:  100,
		}).
		Return([]*entity.RechargeCode{}, int64(0), nil)

	_, _, err = f.service.ListCodes(ctx, &usecase.ListCodesInput{
		Page:    2,
		Limit:   500,
		BatchID: "batch-1",
	})
	require.NoError(t, err)
}
