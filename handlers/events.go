package handlers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"gym-tracker/app"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

const (
	eventBuffer       = 16
	heartbeatInterval = 25 * time.Second
)

// StreamEvents pushes goal, reminder and workout events as server-sent events.
// The stream ends when the client goes away or the hub is closed.
func StreamEvents(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Content-Type", "text/event-stream")
		c.Set("Cache-Control", "no-cache")
		c.Set("Connection", "keep-alive")
		c.Set("X-Accel-Buffering", "no")

		events, unsubscribe := a.Events.Subscribe(eventBuffer)
		logger := a.Logger

		c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
			defer unsubscribe()

			ticker := time.NewTicker(heartbeatInterval)
			defer ticker.Stop()

			fmt.Fprint(w, ": connected\n\n")
			if err := w.Flush(); err != nil {
				return
			}

			for {
				select {
				case e, ok := <-events:
					if !ok {
						return
					}
					data, err := json.Marshal(e)
					if err != nil {
						logger.Error("Failed to encode event", "kind", e.Kind, "error", err)
						continue
					}
					fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Kind, data)
					if err := w.Flush(); err != nil {
						logger.Debug("Event stream closed", "error", err)
						return
					}
				case <-ticker.C:
					fmt.Fprint(w, ": ping\n\n")
					if err := w.Flush(); err != nil {
						return
					}
				}
			}
		}))

		return nil
	}
}
