/*
Package handler provides HTTP handler functions for the game directory.
*/
package handler

import (
	"net/http"

	"bloxclone/internal/app/events"
	"bloxclone/internal/app/platform"
	"bloxclone/internal/pkg/req"
	"bloxclone/internal/pkg/resp"
)

// HandleListGames returns the in-memory game directory and the generating
// flag driving the UI's loading state.
func HandleListGames(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games := deps.Store.Games()
		if games == nil {
			games = []platform.Game{}
		}

		resp.RespondSuccess(w, r, map[string]any{
			"games":      games,
			"generating": deps.Store.IsGenerating(),
		})
	}
}

type GenerateGamesInput struct {
	Count int `json:"count"`
}

// HandleGenerateGames kicks off an asynchronous directory refresh. The
// response reports only that generation started; the result arrives through
// the events hub. Only one refresh runs at a time.
func HandleGenerateGames(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input GenerateGamesInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if !deps.Store.BeginGenerating() {
			resp.RespondSuccess(w, r, map[string]any{"generating": true})
			return
		}

		go func(count int) {
			games := deps.Assistant.GameIdeas(count)
			deps.Store.SetGames(games)
			deps.Hub.Publish(events.TypeGamesUpdated, games)
		}(input.Count)

		resp.RespondSuccess(w, r, map[string]any{"generating": true})
	}
}
