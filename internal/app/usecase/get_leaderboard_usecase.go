package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/lestari-app/lestari-bot/internal/domain"
)

// GetLeaderboardUsecase renders the points standing.
type GetLeaderboardUsecase struct {
	gateways domain.GatewayProvider
}

func NewGetLeaderboardUsecase(gateways domain.GatewayProvider) *GetLeaderboardUsecase {
	return &GetLeaderboardUsecase{gateways: gateways}
}

var medals = map[int]string{1: "🥇", 2: "🥈", 3: "🥉"}

func (uc *GetLeaderboardUsecase) Execute(ctx context.Context, userID string) (string, error) {
	gw := uc.gateways.Gateway(userID)
	entries, err := gw.Leaderboard(ctx)
	if err != nil {
		return "Gagal memuat papan peringkat: " + domain.UserMessage(err), nil
	}
	if len(entries) == 0 {
		return "Papan peringkat masih kosong. Jadilah pelapor pertama! 🌱", nil
	}

	sb := strings.Builder{}
	sb.WriteString("Papan Peringkat Lestari 🏆\n\n")
	for _, e := range entries {
		if medal, ok := medals[e.Rank]; ok {
			sb.WriteString(fmt.Sprintf("%s %s - %d XP\n", medal, e.Name, e.Points))
			continue
		}
		sb.WriteString(fmt.Sprintf("%d. %s - %d XP\n", e.Rank, e.Name, e.Points))
	}
	sb.WriteString("\nKumpulkan poin dengan mengirim laporan lewat #lapor 🔥")
	return sb.String(), nil
}
