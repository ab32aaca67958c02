package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/lestari-app/lestari-bot/internal/domain"
)

// ProfileUsecase renders the profile with the client-derived report
// stats. A rejected profile call reads as "not logged in" and prompts
// the user back to #masuk.
type ProfileUsecase struct {
	gateways domain.GatewayProvider
}

func NewProfileUsecase(gateways domain.GatewayProvider) *ProfileUsecase {
	return &ProfileUsecase{gateways: gateways}
}

func (uc *ProfileUsecase) Execute(ctx context.Context, userID string) (string, error) {
	gw := uc.gateways.Gateway(userID)
	if !gw.IsAuthenticated(ctx) {
		return "Kamu belum masuk. Silakan #masuk email password.", nil
	}

	profile, err := gw.Profile(ctx)
	if err != nil {
		return "Sesi kamu sudah berakhir. Silakan #masuk kembali.", nil
	}

	// Stats are derived from the user's own reports; a failed fetch
	// degrades to zero counts rather than blocking the profile.
	var stats domain.ProfileStats
	if reports, err := gw.UserReports(ctx); err == nil {
		stats = domain.StatsFromReports(reports)
	}

	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("Profil %s 🌱\n", profile.User.Name))
	if profile.User.Email != "" {
		sb.WriteString(profile.User.Email + "\n")
	}
	if profile.City != "" {
		sb.WriteString(profile.City + "\n")
	}
	sb.WriteString(fmt.Sprintf("\nPoin: %d XP\n", profile.PointBalance()))
	if profile.Rank > 0 {
		sb.WriteString(fmt.Sprintf("Peringkat: #%d\n", profile.Rank))
	}
	sb.WriteString(fmt.Sprintf("Laporan terkirim: %d\nLaporan terverifikasi: %d", stats.ReportsSent, stats.ReportsVerified))
	return sb.String(), nil
}
