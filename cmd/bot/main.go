package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/lestari-app/lestari-bot/internal/api"
	"github.com/lestari-app/lestari-bot/internal/app/usecase"
	"github.com/lestari-app/lestari-bot/internal/config"
	"github.com/lestari-app/lestari-bot/internal/infra/sqlite"
	"github.com/lestari-app/lestari-bot/internal/infra/wa"

	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	walog "go.mau.fi/whatsmeow/util/log"
	_ "modernc.org/sqlite"
)

// lastLocations remembers the most recent location message per user.
// WhatsApp cannot attach a coordinate to a photo, so users share a
// location first and then send the photo with a #lapor caption.
type lastLocations struct {
	mu     sync.Mutex
	coords map[string][2]float64
}

func (l *lastLocations) set(userID string, lat, lng float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.coords[userID] = [2]float64{lat, lng}
}

func (l *lastLocations) get(userID string) (lat, lng float64, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.coords[userID]
	return c[0], c[1], ok
}

func main() {
	// 1. Load Config
	cfg := config.Load()

	// 2. Logger
	logger := walog.Stdout("Client", "INFO", true)

	// 3. Database & Session Store
	// WAL mode and busy timeout avoid "database is locked" errors
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.SQLitePath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	sessions := sqlite.NewSessionStore(db)
	if err := sessions.InitTable(context.Background()); err != nil {
		log.Fatalf("Failed to init session table: %v", err)
	}

	// 4. Gateway Client & Use Cases
	apiClient := api.New(cfg.APIBaseURL, cfg.APITimeout, nil)
	gateways := api.NewProvider(apiClient, sessions)

	authUC := usecase.NewAuthUsecase(gateways)
	profileUC := usecase.NewProfileUsecase(gateways)
	submitUC := usecase.NewSubmitReportUsecase(gateways)
	listUC := usecase.NewListReportsUsecase(gateways)
	leaderboardUC := usecase.NewGetLeaderboardUsecase(gateways)
	chatUC := usecase.NewChatUsecase(gateways)
	pointsUC := usecase.NewPointsUsecase(gateways)
	redeemUC := usecase.NewRedeemUsecase(gateways)
	handleMessageUC := usecase.NewHandleMessageUsecase(
		authUC, profileUC, submitUC, listUC, leaderboardUC, chatUC, pointsUC, redeemUC,
	)

	// 5. WhatsApp Service
	waService := wa.NewService(cfg.SQLitePath, logger)

	locations := &lastLocations{coords: make(map[string][2]float64)}

	// 6. Register Message Handler
	waService.SetMessageHandler(func(ctx context.Context, client *whatsmeow.Client, evt *events.Message) {
		// Filter by GroupID if configured.
		if cfg.GroupID != "" && evt.Info.Chat.String() != cfg.GroupID {
			return
		}

		// Ignore messages from self
		if evt.Info.IsFromMe {
			return
		}

		userID := evt.Info.Sender.User
		pushName := evt.Info.PushName
		if pushName == "" {
			pushName = "Pelapor" // Fallback name
		}

		// Location messages only update the per-user coordinate cache.
		if loc := evt.Message.GetLocationMessage(); loc != nil {
			locations.set(userID, loc.GetDegreesLatitude(), loc.GetDegreesLongitude())
			reply(ctx, cfg, waService, evt, "Lokasi diterima 📍 Sekarang kirim foto kejadian dengan caption #lapor <deskripsi>.")
			return
		}

		msg := usecase.IncomingMessage{Text: wa.MessageText(evt.Message)}
		if img := evt.Message.GetImageMessage(); img != nil {
			path, err := waService.DownloadImage(ctx, img)
			if err != nil {
				log.Printf("Failed to download image: %v", err)
				reply(ctx, cfg, waService, evt, "Gagal mengunduh foto, silakan kirim ulang.")
				return
			}
			defer os.Remove(path)
			msg.ImagePath = path
			if lat, lng, ok := locations.get(userID); ok {
				msg.Latitude = lat
				msg.Longitude = lng
				msg.HasLocation = true
			}
		}

		if msg.Text == "" && msg.ImagePath == "" {
			return
		}

		fmt.Printf("Message from %s (%s): %s\n", pushName, userID, msg.Text)

		response, err := handleMessageUC.Execute(ctx, userID, pushName, msg)
		if err != nil {
			log.Printf("Error handling message: %v", err)
			return
		}

		if response != "" {
			reply(ctx, cfg, waService, evt, response)
		}
	})

	// 7. Initialize Client (DB, Device, etc) - DO NOT CONNECT YET
	if err := waService.Initialize(context.Background()); err != nil {
		log.Fatalf("Failed to initialize WhatsApp service: %v", err)
	}

	// 8. Connect / Login Logic
	if !waService.IsLoggedIn() {
		if cfg.BotPhone != "" {
			// Pair Code Mode
			if err := waService.Connect(); err != nil {
				log.Fatalf("Failed to connect for pairing: %v", err)
			}

			log.Println("Not logged in. Attempting to pair with phone:", cfg.BotPhone)
			code, err := waService.Pair(cfg.BotPhone)
			if err != nil {
				log.Printf("Failed to generate pair code: %v", err)
			} else {
				log.Println("==================================================")
				log.Printf("PAIR CODE: %s", code)
				log.Println("==================================================")
				log.Println("Please verify this code on your WhatsApp (Linked Devices > Link with phone number)")
			}
		} else {
			// QR Code Mode
			log.Println("Not logged in. BOT_PHONE not set. Printing QR...")
			waService.PrintQR()
		}
	} else {
		if err := waService.Connect(); err != nil {
			log.Fatalf("Failed to connect: %v", err)
		}
		log.Println("Client is already logged in.")
	}

	log.Println("Lestari bot is running... Press Ctrl+C to exit.")

	// 9. Wait for OS Signal
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("Shutting down...")
	waService.Disconnect()
	os.Exit(0)
}

// reply sends a response with the configured human-like delay and
// optional typing indicator.
func reply(ctx context.Context, cfg config.Config, waService *wa.Service, evt *events.Message, response string) {
	delayMs := cfg.ReplyDelayMinMs
	if cfg.ReplyDelayMaxMs > cfg.ReplyDelayMinMs {
		delayMs = cfg.ReplyDelayMinMs + rand.Intn(cfg.ReplyDelayMaxMs-cfg.ReplyDelayMinMs+1)
	}

	if delayMs > 0 {
		if cfg.ShowTyping {
			_ = waService.GetClient().SendChatPresence(ctx, evt.Info.Chat, types.ChatPresenceComposing, types.ChatPresenceMediaText)
		}

		time.Sleep(time.Duration(delayMs) * time.Millisecond)

		if cfg.ShowTyping {
			_ = waService.GetClient().SendChatPresence(ctx, evt.Info.Chat, types.ChatPresencePaused, types.ChatPresenceMediaText)
		}
	}

	resp := &waE2E.Message{
		Conversation: &response,
	}
	if _, err := waService.GetClient().SendMessage(ctx, evt.Info.Chat, resp); err != nil {
		log.Printf("Failed to send response: %v", err)
	}
}
