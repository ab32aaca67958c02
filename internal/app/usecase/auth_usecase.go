package usecase

import (
	"context"
	"strings"

	"github.com/lestari-app/lestari-bot/internal/domain"
)

// AuthUsecase covers signup, login, and logout. Gateway failures are
// rendered as replies; the chat is this client's error surface.
type AuthUsecase struct {
	gateways domain.GatewayProvider
}

func NewAuthUsecase(gateways domain.GatewayProvider) *AuthUsecase {
	return &AuthUsecase{gateways: gateways}
}

// Signup expects "nama;email;password" so names can contain spaces.
func (uc *AuthUsecase) Signup(ctx context.Context, userID, args string) (string, error) {
	parts := strings.SplitN(args, ";", 3)
	if len(parts) != 3 {
		return "Format: #daftar nama;email;password", nil
	}
	name := strings.TrimSpace(parts[0])
	email := strings.TrimSpace(parts[1])
	password := strings.TrimSpace(parts[2])
	if name == "" || email == "" || password == "" {
		return "Format: #daftar nama;email;password", nil
	}

	gw := uc.gateways.Gateway(userID)
	message, err := gw.Signup(ctx, name, email, password)
	if err != nil {
		return "Gagal mendaftar: " + domain.UserMessage(err), nil
	}
	if message == "" {
		message = "Akun berhasil dibuat."
	}
	return message + " Silakan #masuk untuk mulai melapor 🌱", nil
}

func (uc *AuthUsecase) Login(ctx context.Context, userID, args string) (string, error) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return "Format: #masuk email password", nil
	}

	gw := uc.gateways.Gateway(userID)
	if err := gw.Login(ctx, fields[0], fields[1]); err != nil {
		return "Gagal masuk: " + domain.UserMessage(err), nil
	}
	if !gw.IsAuthenticated(ctx) {
		// Server answered OK but sent no token; nothing was persisted.
		return "Gagal masuk: server tidak mengirim token sesi.", nil
	}
	return "Berhasil masuk! Ketik #bantuan untuk melihat perintah 🌱", nil
}

func (uc *AuthUsecase) Logout(ctx context.Context, userID string) (string, error) {
	gw := uc.gateways.Gateway(userID)
	if err := gw.Logout(ctx); err != nil {
		return "Gagal keluar: " + domain.UserMessage(err), nil
	}
	return "Kamu sudah keluar. Sampai jumpa! 👋", nil
}
