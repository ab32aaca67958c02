package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/lestari-app/lestari-bot/internal/domain"
)

// SubmitReportUsecase turns a photo message into a geotagged report.
type SubmitReportUsecase struct {
	gateways domain.GatewayProvider
}

func NewSubmitReportUsecase(gateways domain.GatewayProvider) *SubmitReportUsecase {
	return &SubmitReportUsecase{gateways: gateways}
}

func (uc *SubmitReportUsecase) Execute(ctx context.Context, userID, name string, msg IncomingMessage) (string, error) {
	gw := uc.gateways.Gateway(userID)
	if !gw.IsAuthenticated(ctx) {
		return "Silakan #masuk dulu sebelum melapor.", nil
	}

	if msg.ImagePath == "" {
		return "Lampirkan foto kejadian pada pesan #lapor ya 📷", nil
	}
	if strings.TrimSpace(msg.Text) == "" {
		return "Tambahkan deskripsi singkat pada laporanmu.", nil
	}
	if !msg.HasLocation {
		return "Sertakan lokasi kejadian (kirim lokasi lewat WhatsApp) 📍", nil
	}

	submission := domain.ReportSubmission{
		ImagePath:   msg.ImagePath,
		Description: strings.TrimSpace(msg.Text),
		Latitude:    msg.Latitude,
		Longitude:   msg.Longitude,
	}

	report, err := gw.SubmitReport(ctx, submission)
	if err != nil {
		if domain.IsAnalysisUnavailable(err) {
			// Partial success: the report is stored, classification
			// comes later.
			return fmt.Sprintf("Laporan diterima, %s! Analisis gambar sedang gangguan, kategori akan menyusul. Terima kasih sudah menjaga lingkungan 🌱", name), nil
		}
		return "Gagal mengirim laporan: " + domain.UserMessage(err), nil
	}

	reply := fmt.Sprintf("Laporan diterima, %s! 🌱\nKategori: %s\nStatus: %s", name, report.Category(), report.Status())
	if labels := report.Labels(); len(labels) > 0 {
		reply += "\nLabel: " + strings.Join(labels, ", ")
	}
	return reply, nil
}
