/*
Package handler provides the HTTP handlers and routing setup for the BloxClone platform service.

This file defines the main Router, applying middleware (logging, CORS, rate
limiting) before delegating requests to the per-concern handlers. The routes
map one-to-one onto the state store transitions; no business logic lives
here.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"bloxclone/internal/pkg/limiter"
	"bloxclone/internal/pkg/logx"
	"bloxclone/internal/pkg/resp"
)

// Rate limits for the endpoints that trigger remote assistant calls.
const (
	AssistantRate  = 0.5
	AssistantBurst = 3
	WsJoinRate     = 0.2
	WsJoinBurst    = 5
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
func Router(deps *AppDeps) http.Handler {
	assistantLimiter := limiter.NewIPRateLimiter(rate.Limit(AssistantRate), AssistantBurst)
	joinLimiter := limiter.NewIPRateLimiter(rate.Limit(WsJoinRate), WsJoinBurst)

	r := chi.NewRouter()

	allowedOrigins := make(map[string]struct{})
	for _, origin := range deps.Config.AllowedOrigins {
		allowedOrigins[origin] = struct{}{}
	}

	wsUpgrader := websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			if deps.Config.IsDevelopment() {
				return true
			}

			origin := r.Header.Get("Origin")
			if _, ok := allowedOrigins[origin]; ok {
				return true
			}

			logx.Warn("WebSocket connection rejected: Origin not allowed.", "origin", origin)
			return false
		},
	}

	corsAllowedOrigins := []string{}
	if deps.Config.IsDevelopment() {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]string{
			"status":  "ok",
			"service": "BloxClone Platform",
		})
	})

	r.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/login", HandleLogin(deps))
			auth.Post("/signup", HandleSignup(deps))
			auth.Post("/logout", HandleLogout(deps))
			auth.Get("/session", HandleGetSession(deps))
		})

		api.Route("/profile", func(profile chi.Router) {
			profile.Post("/equip", HandleEquipItem(deps))
			profile.Post("/colors", HandleUpdateColors(deps))
			profile.Post("/settings", HandleUpdateSettings(deps))
		})

		api.Route("/shop", func(shop chi.Router) {
			shop.Get("/items", HandleListItems(deps))
			shop.Post("/buy", HandleBuyItem(deps))
			shop.Post("/items", HandleCreateItem(deps))
			shop.Post("/price", HandleUpdatePrice(deps))
			shop.Post("/robux", HandleBuyRobux(deps))
		})

		api.Route("/friends", func(friends chi.Router) {
			friends.Get("/", HandleListFriends(deps))
			friends.Post("/", HandleAddFriend(deps))
			friends.Delete("/{id}", HandleRemoveFriend(deps))
		})

		api.Route("/admin", func(admin chi.Router) {
			admin.Post("/ban", HandleBanUser(deps))
			admin.Post("/unban", HandleUnbanUser(deps))
			admin.Post("/force-login", HandleForceLogin(deps))
		})

		api.Route("/messages", func(messages chi.Router) {
			messages.Get("/{friendId}", HandleGetConversation(deps))
			rateLimitedSend := assistantLimiter.Middleware(HandleSendMessage(deps))
			messages.Post("/send", rateLimitedSend.ServeHTTP)
		})

		api.Route("/games", func(games chi.Router) {
			games.Get("/", HandleListGames(deps))
			rateLimitedGenerate := assistantLimiter.Middleware(HandleGenerateGames(deps))
			games.Post("/generate", rateLimitedGenerate.ServeHTTP)
		})

		rateLimitedChat := assistantLimiter.Middleware(HandleChatWidget(deps))
		api.Post("/chat", rateLimitedChat.ServeHTTP)
	})

	r.Get("/ws", HandleWebSocket(wsUpgrader, joinLimiter, deps))

	return r
}
