package usecase

import (
	"context"
	"fmt"

	"github.com/lestari-app/lestari-bot/internal/domain"
)

// Points needed for the next level, from the rewards screen.
const nextLevelPoints = 500

// PointsUsecase shows the balance. It never fails: an unreachable
// backend reads as zero points.
type PointsUsecase struct {
	gateways domain.GatewayProvider
}

func NewPointsUsecase(gateways domain.GatewayProvider) *PointsUsecase {
	return &PointsUsecase{gateways: gateways}
}

func (uc *PointsUsecase) Execute(ctx context.Context, userID string) (string, error) {
	gw := uc.gateways.Gateway(userID)
	if !gw.IsAuthenticated(ctx) {
		return "Silakan #masuk dulu untuk melihat poinmu.", nil
	}

	points := gw.PointsOrZero(ctx)
	remaining := nextLevelPoints - points
	if remaining < 0 {
		remaining = 0
	}
	return fmt.Sprintf("Poin Didapat: %d XP\n%d XP lagi menuju level selanjutnya. Tukar poinmu dengan #tukar 🎁", points, remaining), nil
}
