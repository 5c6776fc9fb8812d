package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/ksarkisyan/catalog-intake/internal/common"
)

// TelegramNotifier posts collages to a channel through the Bot API
// sendPhoto method.
type TelegramNotifier struct {
	botToken   string
	chatID     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type TelegramConfig struct {
	BotToken string
	ChatID   string
	BaseURL  string
	Timeout  time.Duration
}

func NewTelegramNotifier(cfg TelegramConfig, logger *slog.Logger) (*TelegramNotifier, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cfg.BotToken = strings.TrimSpace(cfg.BotToken)
	cfg.ChatID = strings.TrimSpace(cfg.ChatID)
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("missing TELEGRAM_BOT_TOKEN")
	}
	if cfg.ChatID == "" {
		return nil, fmt.Errorf("missing TELEGRAM_CHAT_ID")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = "https://api.telegram.org"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &TelegramNotifier{
		botToken:   cfg.BotToken,
		chatID:     cfg.ChatID,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.With("client", "TelegramNotifier"),
	}, nil
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

func (n *TelegramNotifier) PublishPhoto(ctx context.Context, photo []byte, filename, caption string) error {
	if len(photo) == 0 {
		return fmt.Errorf("empty photo: %w", common.ErrPublish)
	}
	if filename == "" {
		filename = "collage.png"
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("chat_id", n.chatID); err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if caption != "" {
		if err := mw.WriteField("caption", caption); err != nil {
			return fmt.Errorf("build request: %w", err)
		}
	}
	part, err := mw.CreateFormFile("photo", filename)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if _, err := part.Write(photo); err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendPhoto", n.baseURL, n.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	start := time.Now()
	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send photo: %w: %v", common.ErrPublish, err)
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return fmt.Errorf("read response: %w: %v", common.ErrPublish, readErr)
	}

	var api apiResponse
	if err := json.Unmarshal(raw, &api); err != nil {
		return fmt.Errorf("telegram http %d: undecodable body: %w", resp.StatusCode, common.ErrPublish)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !api.OK {
		desc := strings.TrimSpace(api.Description)
		if desc == "" {
			desc = "<no description>"
		}
		return fmt.Errorf("telegram http %d: %s: %w", resp.StatusCode, desc, common.ErrPublish)
	}

	n.logger.Info("collage published",
		"filename", filename,
		"bytes", len(photo),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
