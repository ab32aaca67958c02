package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/lestari-app/lestari-bot/internal/app/usecase"
	"github.com/lestari-app/lestari-bot/internal/domain"
)

// =============================================================================
// POINTS AND REDEEM USECASE TESTS
// =============================================================================

func TestPoints_ZeroOnBackendFailure(t *testing.T) {
	gw := &mockGateway{authenticated: true, pointsErr: &domain.RequestError{Op: "profile", Status: 500, Message: "boom"}}
	pointsUC := usecase.NewPointsUsecase(&mockProvider{gw: gw})

	result, err := pointsUC.Execute(context.Background(), "user1")
	if err != nil {
		t.Fatalf("Points must never fail: %v", err)
	}
	if !strings.Contains(result, "0 XP") {
		t.Errorf("Expected zero balance, got '%s'", result)
	}
}

func TestRedeem_NoArgListsCatalog(t *testing.T) {
	gw := &mockGateway{authenticated: true, points: 450}
	redeemUC := usecase.NewRedeemUsecase(&mockProvider{gw: gw})

	result, err := redeemUC.Execute(context.Background(), "user1", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, v := range domain.Vouchers {
		if !strings.Contains(result, v.ID) {
			t.Errorf("Catalog should list %s:\n%s", v.ID, result)
		}
	}
}

func TestRedeem_InsufficientPoints(t *testing.T) {
	gw := &mockGateway{authenticated: true, points: 50}
	redeemUC := usecase.NewRedeemUsecase(&mockProvider{gw: gw})

	result, _ := redeemUC.Execute(context.Background(), "user1", "v1")
	if !strings.Contains(result, "Poin tidak cukup") {
		t.Errorf("Expected affordability refusal, got '%s'", result)
	}
	if gw.redeemCalled {
		t.Error("Redeem must not reach the backend when points are insufficient")
	}
}

func TestRedeem_Success(t *testing.T) {
	gw := &mockGateway{authenticated: true, points: 450, redeemMsg: "Voucher terkirim ke emailmu"}
	redeemUC := usecase.NewRedeemUsecase(&mockProvider{gw: gw})

	result, err := redeemUC.Execute(context.Background(), "user1", "v1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(result, "Voucher terkirim ke emailmu") {
		t.Errorf("Expected server confirmation, got '%s'", result)
	}
	if !strings.Contains(result, "Sisa poin") {
		t.Errorf("Expected refreshed balance, got '%s'", result)
	}
}

func TestRedeem_FailureSurfaced(t *testing.T) {
	gw := &mockGateway{
		authenticated: true,
		points:        450,
		redeemErr:     &domain.RequestError{Op: "redeemVoucher", Status: 409, Message: "Voucher habis"},
	}
	redeemUC := usecase.NewRedeemUsecase(&mockProvider{gw: gw})

	result, _ := redeemUC.Execute(context.Background(), "user1", "v1")
	if !strings.Contains(result, "Gagal menukar") || !strings.Contains(result, "Voucher habis") {
		t.Errorf("Expected surfaced redeem failure, got '%s'", result)
	}
}

func TestProfile_SessionExpiredPromptsLogin(t *testing.T) {
	gw := &mockGateway{
		authenticated: true,
		profileErr:    &domain.RequestError{Op: "profile", Status: 401, Message: "token expired"},
	}
	profileUC := usecase.NewProfileUsecase(&mockProvider{gw: gw})

	result, err := profileUC.Execute(context.Background(), "user1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(result, "#masuk") {
		t.Errorf("Expected login prompt after rejected session, got '%s'", result)
	}
}

func TestProfile_RendersStatsFromReports(t *testing.T) {
	gw := &mockGateway{
		authenticated: true,
		profile: &domain.Profile{
			User:   domain.ProfileUser{Name: "Beyonder", Email: "beyonder@gmail.com"},
			Points: 450,
			Rank:   4,
		},
		userReports: []domain.Report{
			{ID: 1, Verified: true},
			{ID: 2},
			{ID: 3, Verified: true},
		},
	}
	profileUC := usecase.NewProfileUsecase(&mockProvider{gw: gw})

	result, err := profileUC.Execute(context.Background(), "user1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, want := range []string{"Beyonder", "450", "#4", "Laporan terkirim: 3", "Laporan terverifikasi: 2"} {
		if !strings.Contains(result, want) {
			t.Errorf("Profile reply missing %q:\n%s", want, result)
		}
	}
}
