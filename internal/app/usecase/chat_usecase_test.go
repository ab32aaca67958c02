package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lestari-app/lestari-bot/internal/app/usecase"
)

// =============================================================================
// CHAT USECASE TESTS
// =============================================================================

func TestChat_ForwardsBotReply(t *testing.T) {
	gw := &mockGateway{chatReply: "Pisahkan sampah organik dan anorganik ya!"}
	chatUC := usecase.NewChatUsecase(&mockProvider{gw: gw})

	result, err := chatUC.Execute(context.Background(), "user1", "bagaimana memilah sampah?")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result != gw.chatReply {
		t.Errorf("Expected bot reply, got '%s'", result)
	}
}

func TestChat_ApologyOnFailure(t *testing.T) {
	gw := &mockGateway{chatErr: errors.New("backend down")}
	chatUC := usecase.NewChatUsecase(&mockProvider{gw: gw})

	result, err := chatUC.Execute(context.Background(), "user1", "halo")
	if err != nil {
		t.Fatalf("Degraded reply must not error: %v", err)
	}
	if result != "Maaf, Lestar Bot sedang mengalami gangguan. Silakan coba lagi nanti 🙏" {
		t.Errorf("Expected canned apology, got '%s'", result)
	}
}
