package usecase

import (
	"context"
	"strings"
)

// IncomingMessage is one WhatsApp message normalized by the transport
// layer: caption text, a downloaded image path when a photo was attached,
// and a coordinate when a location was attached.
type IncomingMessage struct {
	Text        string
	ImagePath   string
	Latitude    float64
	Longitude   float64
	HasLocation bool
}

// Text shorthand for messages without attachments.
func TextMessage(text string) IncomingMessage {
	return IncomingMessage{Text: text}
}

// HandleMessageUsecase routes an incoming message to the right flow.
// Commands start with '#' and are case-insensitive; unknown commands are
// ignored (no reply), and plain text goes to Lestar Bot.
type HandleMessageUsecase struct {
	auth        *AuthUsecase
	profile     *ProfileUsecase
	submit      *SubmitReportUsecase
	list        *ListReportsUsecase
	leaderboard *GetLeaderboardUsecase
	chat        *ChatUsecase
	points      *PointsUsecase
	redeem      *RedeemUsecase
}

func NewHandleMessageUsecase(
	auth *AuthUsecase,
	profile *ProfileUsecase,
	submit *SubmitReportUsecase,
	list *ListReportsUsecase,
	leaderboard *GetLeaderboardUsecase,
	chat *ChatUsecase,
	points *PointsUsecase,
	redeem *RedeemUsecase,
) *HandleMessageUsecase {
	return &HandleMessageUsecase{
		auth:        auth,
		profile:     profile,
		submit:      submit,
		list:        list,
		leaderboard: leaderboard,
		chat:        chat,
		points:      points,
		redeem:      redeem,
	}
}

const helpText = `Halo! Saya Lestar Bot 🌱
Perintah yang tersedia:
#daftar nama;email;password — buat akun
#masuk email password — masuk
#keluar — keluar
#profil — lihat profil dan statistik
#lapor deskripsi — kirim laporan (lampirkan foto dan lokasi)
#laporan [kata kunci] — semua laporan
#laporanku [kata kunci] — laporan saya
#peringkat — papan peringkat
#poin — cek poin
#tukar [id] — tukar poin dengan voucher
Pesan lain akan dijawab langsung oleh Lestar Bot.`

func (uc *HandleMessageUsecase) Execute(ctx context.Context, userID, name string, msg IncomingMessage) (string, error) {
	text := strings.TrimSpace(msg.Text)
	if text == "" && msg.ImagePath == "" {
		return "", nil
	}

	// A bare photo with a location is still a report attempt.
	if !strings.HasPrefix(text, "#") && msg.ImagePath != "" {
		return uc.submit.Execute(ctx, userID, name, msg)
	}

	if !strings.HasPrefix(text, "#") {
		return uc.chat.Execute(ctx, userID, text)
	}

	fields := strings.Fields(text)
	command := strings.ToLower(fields[0])
	rest := strings.TrimSpace(strings.TrimPrefix(text, fields[0]))

	switch command {
	case "#daftar":
		return uc.auth.Signup(ctx, userID, rest)
	case "#masuk", "#login":
		return uc.auth.Login(ctx, userID, rest)
	case "#keluar", "#logout":
		return uc.auth.Logout(ctx, userID)
	case "#profil", "#profile":
		return uc.profile.Execute(ctx, userID)
	case "#lapor":
		msg.Text = rest
		return uc.submit.Execute(ctx, userID, name, msg)
	case "#laporan":
		return uc.list.Execute(ctx, userID, rest, false)
	case "#laporanku":
		return uc.list.Execute(ctx, userID, rest, true)
	case "#peringkat", "#leaderboard":
		return uc.leaderboard.Execute(ctx, userID)
	case "#poin":
		return uc.points.Execute(ctx, userID)
	case "#tukar":
		return uc.redeem.Execute(ctx, userID, rest)
	case "#bantuan", "#help":
		return helpText, nil
	default:
		// Unknown commands stay silent so the bot does not spam groups.
		return "", nil
	}
}
