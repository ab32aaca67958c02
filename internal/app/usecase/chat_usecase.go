package usecase

import (
	"context"

	"github.com/lestari-app/lestari-bot/internal/domain"
)

// Apology shown when Lestar Bot cannot answer. A degraded reply, not a
// retry; the user just asks again.
const chatApology = "Maaf, Lestar Bot sedang mengalami gangguan. Silakan coba lagi nanti 🙏"

// ChatUsecase forwards free text to the Lestar Bot backend.
type ChatUsecase struct {
	gateways domain.GatewayProvider
}

func NewChatUsecase(gateways domain.GatewayProvider) *ChatUsecase {
	return &ChatUsecase{gateways: gateways}
}

func (uc *ChatUsecase) Execute(ctx context.Context, userID, message string) (string, error) {
	gw := uc.gateways.Gateway(userID)
	reply, err := gw.Chatbot(ctx, message)
	if err != nil {
		return chatApology, nil
	}
	return reply, nil
}
