package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"gatehouse/internal/domain/service"
)

const (
	signupVerifyPath = "/signup/verify"
	resetVerifyPath  = "/password/verify"
)

// tokenLink builds the link a notification points at, with the token as a query parameter.
func tokenLink(baseURL, path, token string) string {
	return strings.TrimRight(baseURL, "/") + path + "?token=" + url.QueryEscape(token)
}

func signupMessage(link string, ttl time.Duration) (subject, body string) {
	return "請驗證您的電子郵件",
		fmt.Sprintf("請點擊以下連結完成註冊：\n%s\n\n此連結將於 %s 後失效。", link, ttl)
}

func resetMessage(link string, ttl time.Duration) (subject, body string) {
	return "重設您的密碼",
		fmt.Sprintf("我們收到了重設密碼的請求，請點擊以下連結：\n%s\n\n此連結將於 %s 後失效。若您未提出此請求，請忽略本信。", link, ttl)
}

// notify sends a message and only logs when delivery fails.
func notify(ctx context.Context, logger *slog.Logger, notifier service.Notifier, to, subject, body string) {
	if err := notifier.Send(ctx, to, subject, body); err != nil {
		logger.Warn("Failed to send notification",
			slog.String("subject", subject),
			slog.Any("error", err),
		)

		return
	}

	logger.Debug("Notification sent", slog.String("subject", subject))
}
