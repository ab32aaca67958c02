package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/lestari-app/lestari-bot/internal/domain"
)

// RedeemUsecase lists the voucher catalog and exchanges points.
type RedeemUsecase struct {
	gateways domain.GatewayProvider
}

func NewRedeemUsecase(gateways domain.GatewayProvider) *RedeemUsecase {
	return &RedeemUsecase{gateways: gateways}
}

func (uc *RedeemUsecase) Execute(ctx context.Context, userID, voucherID string) (string, error) {
	gw := uc.gateways.Gateway(userID)
	if !gw.IsAuthenticated(ctx) {
		return "Silakan #masuk dulu untuk menukar poin.", nil
	}

	voucherID = strings.TrimSpace(voucherID)
	if voucherID == "" {
		return uc.catalog(ctx, gw), nil
	}

	voucher := domain.VoucherByID(voucherID)
	if voucher == nil {
		return fmt.Sprintf("Voucher %q tidak dikenal. Ketik #tukar untuk melihat daftar voucher.", voucherID), nil
	}

	points := gw.PointsOrZero(ctx)
	if points < voucher.Cost {
		return fmt.Sprintf("Poin tidak cukup. Voucher ini butuh %d XP, poinmu %d XP.", voucher.Cost, points), nil
	}

	message, err := gw.RedeemVoucher(ctx, voucher.ID)
	if err != nil {
		return "Gagal menukar: " + domain.UserMessage(err), nil
	}
	if message == "" {
		message = fmt.Sprintf("Berhasil menukar %d XP untuk %q.", voucher.Cost, voucher.Title)
	}
	// Balance refreshed from the backend; the ledger is server-owned.
	return fmt.Sprintf("%s\nSisa poin: %d XP", message, gw.PointsOrZero(ctx)), nil
}

func (uc *RedeemUsecase) catalog(ctx context.Context, gw domain.Gateway) string {
	sb := strings.Builder{}
	sb.WriteString("Tukar Poin 🎁\n\n")
	for _, v := range domain.Vouchers {
		sb.WriteString(fmt.Sprintf("%s — %s (%d XP)\n", v.ID, v.Title, v.Cost))
	}
	sb.WriteString(fmt.Sprintf("\nPoinmu: %d XP. Tukar dengan #tukar <id>.", gw.PointsOrZero(ctx)))
	return sb.String()
}
