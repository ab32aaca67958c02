package domain

import "context"

// Gateway is the single point of egress to the Lestari backend, scoped to
// one user's session. All real logic (auth, classification, scoring,
// ranking, storage) lives behind it.
type Gateway interface {
	Signup(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool

	Profile(ctx context.Context) (*Profile, error)
	UpdateProfile(ctx context.Context, update ProfileUpdate) (*Profile, error)

	Chatbot(ctx context.Context, message string) (string, error)

	SubmitReport(ctx context.Context, submission ReportSubmission) (*Report, error)
	AllReports(ctx context.Context) ([]Report, error)
	UserReports(ctx context.Context) ([]Report, error)

	Leaderboard(ctx context.Context) ([]LeaderboardEntry, error)
	RedeemVoucher(ctx context.Context, voucherID string) (string, error)

	// Points returns the balance from the profile endpoint.
	Points(ctx context.Context) (int, error)
	// PointsOrZero is the declared degrading variant: it resolves to
	// zero on any failure and never returns an error.
	PointsOrZero(ctx context.Context) int
}

// GatewayProvider hands out a session-scoped gateway per user. The bot
// serves many WhatsApp users over one transport, each with their own
// persisted token.
type GatewayProvider interface {
	Gateway(userID string) Gateway
}
