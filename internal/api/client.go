// Package api implements the gateway client for the Lestari backend. All
// outbound calls funnel through one transport so the token-attachment and
// token-invalidation rules are enforced exactly once.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/lestari-app/lestari-bot/internal/domain"
	"github.com/lestari-app/lestari-bot/internal/session"
)

const DefaultTimeout = 10 * time.Second

// Client talks to the backend on behalf of a single session. Copies made
// with WithSession share the underlying transport, so one Client serves
// as a pool for many users.
type Client struct {
	baseURL string
	http    *http.Client
	session session.Store
}

// New builds a client. store may be nil for a client used purely as a
// pool root; session-scoped copies come from WithSession.
func New(baseURL string, timeout time.Duration, store session.Store) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: store,
	}
}

// WithSession returns a copy of the client bound to another session
// store. The http.Client, and therefore the request timeout, is shared.
func (c *Client) WithSession(store session.Store) *Client {
	clone := *c
	clone.session = store
	return &clone
}

// do issues one request with the session contract applied: bearer header
// attached when a token is stored, 401 clears the stored token before the
// error propagates, and any non-2xx becomes a RequestError carrying the
// server's message when it sent one.
func (c *Client) do(ctx context.Context, op, method, path, contentType string, body io.Reader, fallback string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &domain.RequestError{Op: op, Message: fallback}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.session != nil {
		if token, err := c.session.Token(ctx); err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.RequestError{Op: op, Message: fallback}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.RequestError{Op: op, Status: resp.StatusCode, Message: fallback}
	}

	if resp.StatusCode == http.StatusUnauthorized && c.session != nil {
		// Self-healing invalidation: the token is dead, drop it.
		_ = c.session.Clear(ctx)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.RequestError{Op: op, Status: resp.StatusCode, Message: serverMessage(data, fallback)}
	}
	return data, nil
}

func (c *Client) doJSON(ctx context.Context, op, method, path string, payload any, fallback string) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, &domain.RequestError{Op: op, Message: fallback}
		}
		body = bytes.NewReader(encoded)
	}
	return c.do(ctx, op, method, path, "application/json", body, fallback)
}

// serverMessage digs the human-readable message out of an error body,
// trying the field names the backend is known to use.
func serverMessage(data []byte, fallback string) string {
	var body struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		for _, msg := range []string{body.Message, body.Detail, body.Error} {
			if msg != "" {
				return msg
			}
		}
	}
	return fallback
}

func decode(op string, data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return &domain.MalformedResponseError{Op: op, Reason: err.Error()}
	}
	return nil
}

// Signup creates an account. The returned string is the server's
// confirmation message, empty when it sent none.
func (c *Client) Signup(ctx context.Context, name, email, password string) (string, error) {
	payload := map[string]string{"name": name, "email": email, "password": password}
	data, err := c.doJSON(ctx, "signup", http.MethodPost, "/signup/", payload, "Signup failed")
	if err != nil {
		return "", err
	}
	var body struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(data, &body)
	return body.Message, nil
}

// Login authenticates and persists the access token from the response.
// A success response without an access field leaves any prior token
// untouched.
func (c *Client) Login(ctx context.Context, email, password string) error {
	payload := map[string]string{"email": email, "password": password}
	data, err := c.doJSON(ctx, "login", http.MethodPost, "/login/", payload, "Login failed")
	if err != nil {
		return err
	}
	var body struct {
		Access string `json:"access"`
	}
	if err := decode("login", data, &body); err != nil {
		return err
	}
	if body.Access != "" {
		if err := c.session.Save(ctx, body.Access); err != nil {
			return fmt.Errorf("persist session: %w", err)
		}
	}
	return nil
}

// Logout drops the local session. The backend keeps no server-side
// session to tear down.
func (c *Client) Logout(ctx context.Context) error {
	return c.session.Clear(ctx)
}

// IsAuthenticated reports token presence only; it performs no network IO.
func (c *Client) IsAuthenticated(ctx context.Context) bool {
	token, err := c.session.Token(ctx)
	return err == nil && token != ""
}

func (c *Client) Profile(ctx context.Context) (*domain.Profile, error) {
	data, err := c.doJSON(ctx, "profile", http.MethodGet, "/profile/", nil, "Failed to get profile")
	if err != nil {
		return nil, err
	}
	var profile domain.Profile
	if err := decode("profile", data, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.Profile, error) {
	data, err := c.doJSON(ctx, "updateProfile", http.MethodPut, "/profile/", update, "Failed to update profile")
	if err != nil {
		return nil, err
	}
	var profile domain.Profile
	if err := decode("updateProfile", data, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Chatbot sends a message to Lestar Bot and returns the reply text.
func (c *Client) Chatbot(ctx context.Context, message string) (string, error) {
	payload := map[string]string{"message": message}
	data, err := c.doJSON(ctx, "chatbot", http.MethodPost, "/chatbot/", payload, "Failed to send message")
	if err != nil {
		return "", err
	}
	var body struct {
		Response string `json:"response"`
	}
	if err := decode("chatbot", data, &body); err != nil {
		return "", err
	}
	if body.Response == "" {
		return "", &domain.MalformedResponseError{Op: "chatbot", Reason: "missing response field"}
	}
	return body.Response, nil
}

// SubmitReport uploads a geotagged photo report as multipart form data.
func (c *Client) SubmitReport(ctx context.Context, submission domain.ReportSubmission) (*domain.Report, error) {
	if err := submission.Validate(); err != nil {
		return nil, &domain.RequestError{Op: "submitReport", Message: err.Error()}
	}

	file, err := os.Open(submission.ImagePath)
	if err != nil {
		return nil, &domain.RequestError{Op: "submitReport", Message: "Failed to read report image"}
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filepath.Base(submission.ImagePath))
	if err != nil {
		return nil, &domain.RequestError{Op: "submitReport", Message: "Failed to build report upload"}
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, &domain.RequestError{Op: "submitReport", Message: "Failed to read report image"}
	}
	_ = writer.WriteField("description", submission.Description)
	_ = writer.WriteField("latitude", strconv.FormatFloat(submission.Latitude, 'f', -1, 64))
	_ = writer.WriteField("longitude", strconv.FormatFloat(submission.Longitude, 'f', -1, 64))
	if err := writer.Close(); err != nil {
		return nil, &domain.RequestError{Op: "submitReport", Message: "Failed to build report upload"}
	}

	data, err := c.do(ctx, "submitReport", http.MethodPost, "/reports/", writer.FormDataContentType(), &buf, "Failed to submit report")
	if err != nil {
		return nil, err
	}
	var report domain.Report
	if err := decode("submitReport", data, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) AllReports(ctx context.Context) ([]domain.Report, error) {
	return c.reports(ctx, "getAllReports", "/reports/all/")
}

func (c *Client) UserReports(ctx context.Context) ([]domain.Report, error) {
	return c.reports(ctx, "getUserReports", "/reports/user/")
}

func (c *Client) reports(ctx context.Context, op, path string) ([]domain.Report, error) {
	data, err := c.doJSON(ctx, op, http.MethodGet, path, nil, "Failed to load reports")
	if err != nil {
		return nil, err
	}
	var reports []domain.Report
	if err := decode(op, data, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// Leaderboard fetches standings. The backend's response shape is
// ambiguous; domain.BuildLeaderboard normalizes both variants.
func (c *Client) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	data, err := c.doJSON(ctx, "getLeaderboard", http.MethodGet, "/leaderboard/", nil, "Failed to load leaderboard")
	if err != nil {
		return nil, err
	}
	var rows []domain.LeaderboardRow
	if err := decode("getLeaderboard", data, &rows); err != nil {
		return nil, err
	}
	return domain.BuildLeaderboard(rows), nil
}

// RedeemVoucher exchanges points for a voucher and returns the server's
// confirmation message.
func (c *Client) RedeemVoucher(ctx context.Context, voucherID string) (string, error) {
	payload := map[string]string{"voucher_id": voucherID}
	data, err := c.doJSON(ctx, "redeemVoucher", http.MethodPost, "/redeem/", payload, "Redeem gagal. Silakan coba lagi.")
	if err != nil {
		return "", err
	}
	var body struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(data, &body)
	return body.Message, nil
}

// Points returns the balance from the profile endpoint.
func (c *Client) Points(ctx context.Context) (int, error) {
	profile, err := c.Profile(ctx)
	if err != nil {
		return 0, err
	}
	return profile.PointBalance(), nil
}

// PointsOrZero resolves to zero on any failure, never an error. The
// declared degrading variant for call sites that must not block on a
// broken backend.
func (c *Client) PointsOrZero(ctx context.Context) int {
	points, err := c.Points(ctx)
	if err != nil {
		return 0
	}
	return points
}

var _ domain.Gateway = (*Client)(nil)

// SessionSource hands out a per-user session store; implemented by the
// sqlite store.
type SessionSource interface {
	ForUser(userID string) session.Store
}

// Provider binds the shared client to per-user sessions.
type Provider struct {
	client   *Client
	sessions SessionSource
}

func NewProvider(client *Client, sessions SessionSource) *Provider {
	return &Provider{client: client, sessions: sessions}
}

func (p *Provider) Gateway(userID string) domain.Gateway {
	return p.client.WithSession(p.sessions.ForUser(userID))
}
