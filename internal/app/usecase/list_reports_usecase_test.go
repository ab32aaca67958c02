package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lestari-app/lestari-bot/internal/app/usecase"
	"github.com/lestari-app/lestari-bot/internal/domain"
)

// =============================================================================
// LIST REPORTS USECASE TESTS
// =============================================================================
//
// The two fetches run concurrently with a best-effort join: one failure
// must not discard the other's result, and only a total failure degrades
// to the fixed fallback dataset.
//
// =============================================================================

func TestListReports_OneFetchFailingStillSurfacesTheOther(t *testing.T) {
	gw := &mockGateway{
		allErr:      errors.New("boom"),
		userReports: []domain.Report{{ID: 1, Description: "Sampah menumpuk"}},
	}
	listUC := usecase.NewListReportsUsecase(&mockProvider{gw: gw})

	result, err := listUC.Execute(context.Background(), "user1", "", false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(result, "Sampah menumpuk") {
		t.Errorf("Successful list must be surfaced, got:\n%s", result)
	}
	if strings.Contains(result, "data contoh") {
		t.Errorf("Fallback marker must not appear when one fetch succeeded:\n%s", result)
	}
}

func TestListReports_BothFailingUsesFallbackDataset(t *testing.T) {
	gw := &mockGateway{
		allErr:  errors.New("down"),
		userErr: errors.New("down"),
	}
	listUC := usecase.NewListReportsUsecase(&mockProvider{gw: gw})

	result, err := listUC.Execute(context.Background(), "user1", "", false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(result, "Budi Herman") {
		t.Errorf("Expected fallback dataset, got:\n%s", result)
	}
	if !strings.Contains(result, "data contoh") {
		t.Errorf("Fallback reply must carry the placeholder warning:\n%s", result)
	}
}

func TestListReports_MineOnlyUsesUserList(t *testing.T) {
	gw := &mockGateway{
		allReports:  []domain.Report{{ID: 1, Description: "laporan orang lain"}},
		userReports: []domain.Report{{ID: 2, Description: "laporan saya sendiri"}},
	}
	listUC := usecase.NewListReportsUsecase(&mockProvider{gw: gw})

	result, err := listUC.Execute(context.Background(), "user1", "", true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(result, "laporan saya sendiri") || strings.Contains(result, "orang lain") {
		t.Errorf("Mine-only list leaked other reports:\n%s", result)
	}
}

func TestListReports_SearchFilter(t *testing.T) {
	gw := &mockGateway{
		allReports: []domain.Report{
			{ID: 1, Description: "Banyak sampah", TrashClassification: "Banyak Sampah"},
			{ID: 2, Description: "Asap tebal", ForestClassification: "Kebakaran Besar"},
		},
	}
	listUC := usecase.NewListReportsUsecase(&mockProvider{gw: gw})

	result, err := listUC.Execute(context.Background(), "user1", "kebakaran", false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if strings.Contains(result, "sampah") || !strings.Contains(result, "Asap tebal") {
		t.Errorf("Filter mismatch:\n%s", result)
	}
}

func TestListReports_NoMatches(t *testing.T) {
	gw := &mockGateway{allReports: []domain.Report{{ID: 1, Description: "Banyak sampah"}}}
	listUC := usecase.NewListReportsUsecase(&mockProvider{gw: gw})

	result, err := listUC.Execute(context.Background(), "user1", "banjir", false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(result, "Tidak ada laporan") {
		t.Errorf("Expected no-match reply, got:\n%s", result)
	}
}
