/*
Package handler provides the HTTP handler function for WebSocket connection upgrading.

The WebSocket channel is push-only: connected UI clients receive state-change
events (session updates, typing flags, incoming replies) and send nothing
back.
*/
package handler

import (
	"net"
	"net/http"

	"github.com/gorilla/websocket"

	"bloxclone/internal/app/events"
	"bloxclone/internal/pkg/errs"
	"bloxclone/internal/pkg/limiter"
	"bloxclone/internal/pkg/logx"
	"bloxclone/internal/pkg/resp"
)

// HandleWebSocket upgrades the connection and attaches it to the events hub.
func HandleWebSocket(upgrader websocket.Upgrader, rateLimiter *limiter.IPRateLimiter, deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if ip == "" {
			ip = "unknown_ip"
		}

		if !rateLimiter.GetLimiter(ip).Allow() {
			logx.Warn("WebSocket connection rejected: Rate limit exceeded.", "ip", ip)
			resp.RespondError(w, r, errs.NewError(errs.ErrRateLimitExceeded))
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logx.Error(err, "Failed to upgrade connection to WebSocket")
			return
		}

		client := events.NewClient(deps.Hub, conn)

		go client.WritePump()
		client.ReadPump()
	}
}
