package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/lestari-app/lestari-bot/internal/domain"
)

const maxListedReports = 5

// ListReportsUsecase renders the report feed. All-reports and
// user-reports are fetched concurrently with a best-effort join: one
// failed fetch degrades to an empty list, and only when nothing at all
// could be loaded does the fixed fallback dataset appear.
type ListReportsUsecase struct {
	gateways domain.GatewayProvider
}

func NewListReportsUsecase(gateways domain.GatewayProvider) *ListReportsUsecase {
	return &ListReportsUsecase{gateways: gateways}
}

func (uc *ListReportsUsecase) Execute(ctx context.Context, userID, query string, mineOnly bool) (string, error) {
	gw := uc.gateways.Gateway(userID)

	var (
		wg        sync.WaitGroup
		all, mine []domain.Report
		errAll    error
		errMine   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		all, errAll = gw.AllReports(ctx)
	}()
	go func() {
		defer wg.Done()
		mine, errMine = gw.UserReports(ctx)
	}()
	wg.Wait()

	var reports []domain.Report
	usingFallback := false
	title := "Semua Laporan"
	if mineOnly {
		title = "Laporan Saya"
		if errMine == nil {
			reports = mine
		} else {
			reports = domain.FallbackReports
			usingFallback = true
		}
	} else {
		switch {
		case errAll == nil:
			reports = all
		case errMine == nil:
			// All-reports failed but the user's own list came back;
			// surface what we have instead of nothing.
			reports = mine
		default:
			reports = domain.FallbackReports
			usingFallback = true
		}
	}

	// Copy before sorting so the shared fallback dataset is never
	// reordered in place.
	reports = domain.FilterReports(append([]domain.Report(nil), reports...), query)
	domain.SortReportsNewestFirst(reports)

	if len(reports) == 0 {
		if strings.TrimSpace(query) != "" {
			return fmt.Sprintf("Tidak ada laporan yang cocok dengan %q.", strings.TrimSpace(query)), nil
		}
		return "Belum ada laporan.", nil
	}

	sb := strings.Builder{}
	sb.WriteString(title)
	if strings.TrimSpace(query) != "" {
		sb.WriteString(fmt.Sprintf(" (%q)", strings.TrimSpace(query)))
	}
	sb.WriteString(":\n\n")

	shown := reports
	if len(shown) > maxListedReports {
		shown = shown[:maxListedReports]
	}
	for i, r := range shown {
		sb.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, r.Category(), r.Description))
		sb.WriteString(fmt.Sprintf("   %s · %s · %s", r.AuthorName(), r.CreatedAt.Format("02-01-2006"), r.Status()))
		sb.WriteString("\n")
	}
	if len(reports) > maxListedReports {
		sb.WriteString(fmt.Sprintf("\n...dan %d laporan lainnya.", len(reports)-maxListedReports))
	}
	if usingFallback {
		sb.WriteString("\n⚠️ Server sedang tidak bisa dihubungi, menampilkan data contoh.")
	}
	return sb.String(), nil
}
