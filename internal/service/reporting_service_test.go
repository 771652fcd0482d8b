package service

import (
	"context"
	"testing"

	"payment-gateway-core/internal/core/domain"
	"payment-gateway-core/internal/core/ports"
	"payment-gateway-core/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupReportingService(t *testing.T) (ports.ReportingService, *mocks.MockPaymentRepository, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	paymentRepo := mocks.NewMockPaymentRepository(ctrl)
	svc := NewReportingService(paymentRepo)
	return svc, paymentRepo, ctrl
}

func TestReportingService_GetDashboardStats_AllPeriod(t *testing.T) {
	svc, paymentRepo, ctrl := setupReportingService(t)
	defer ctrl.Finish()

	teamID := uuid.New()
	want := &ports.PaymentStats{TotalPayments: 10, Confirmed: 7, TotalRevenue: 70000}

	paymentRepo.EXPECT().GetStats(gomock.Any(), teamID, (*int64)(nil)).Return(want, nil)

	got, err := svc.GetDashboardStats(context.Background(), teamID, "all")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReportingService_GetDashboardStats_DayPeriod(t *testing.T) {
	svc, paymentRepo, ctrl := setupReportingService(t)
	defer ctrl.Finish()

	teamID := uuid.New()
	want := &ports.PaymentStats{TotalPayments: 3}

	paymentRepo.EXPECT().GetStats(gomock.Any(), teamID, gomock.Not(gomock.Nil())).Return(want, nil)

	got, err := svc.GetDashboardStats(context.Background(), teamID, "day")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReportingService_GetDashboardStats_InvalidPeriod(t *testing.T) {
	svc, _, ctrl := setupReportingService(t)
	defer ctrl.Finish()

	_, err := svc.GetDashboardStats(context.Background(), uuid.New(), "fortnight")
	require.Error(t, err)
}

func TestReportingService_ListPayments_Success(t *testing.T) {
	svc, paymentRepo, ctrl := setupReportingService(t)
	defer ctrl.Finish()

	teamID := uuid.New()
	params := ports.PaymentListParams{TeamID: teamID, Page: 1, PageSize: 20}
	payments := []domain.Payment{{ID: uuid.New(), TeamID: teamID, PaymentID: "pid_1"}}

	paymentRepo.EXPECT().List(gomock.Any(), params).Return(payments, int64(1), nil)

	got, total, err := svc.ListPayments(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, got, 1)
}
