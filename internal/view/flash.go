package view

import (
	"log/slog"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
)

// FlashData holds the one-shot messages to show on the next full page render.
// Only confirmations are queued: failed actions leave the page unchanged
// without telling the user.
type FlashData struct {
	Success []string
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool {
	return len(f.Success) == 0
}

func setFlash(c echo.Context, key, message string) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil || sess == nil {
		slog.Debug("flash session unavailable", "error", err)
		return
	}
	sess.AddFlash(message, key)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		slog.Warn("failed to save flash message", "error", err)
	}
}

// SetFlashSuccess queues a success message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// GetFlashData retrieves and clears the queued messages.
func GetFlashData(c echo.Context) FlashData {
	sess, err := session.Get(flashSessionName, c)
	if err != nil || sess == nil {
		return FlashData{}
	}

	// Flashes() also removes the messages from the session.
	data := FlashData{
		Success: toStrings(sess.Flashes(flashKeySuccess)),
	}
	if !data.Empty() {
		_ = sess.Save(c.Request(), c.Response())
	}
	return data
}

func toStrings(values []interface{}) []string {
	var out []string
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
