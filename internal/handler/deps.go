package handler

import (
	"bloxclone/internal/app/assistant"
	"bloxclone/internal/app/events"
	"bloxclone/internal/app/store"
	"bloxclone/internal/configs"
)

// AppDeps bundles the collaborators every handler draws on.
type AppDeps struct {
	Store     *store.Store
	Hub       *events.Hub
	Assistant *assistant.Client
	Config    *configs.AppConfig
}
