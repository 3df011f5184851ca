/*
Package assistant wraps the remote text-generation service used for friend
replies, the NPC chat widget, and game idea generation.

This file generates game directory entries as structured JSON. Any failure
yields an empty list; the directory simply stays empty.
*/
package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"bloxclone/internal/app/platform"
	"bloxclone/internal/pkg/randx"
)

// rawGameIdea is the wire shape the model is asked to produce.
type rawGameIdea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Creator     string `json:"creator"`
	Genre       string `json:"genre"`
	Likes       int64  `json:"likes"`
	Players     int64  `json:"players"`
}

// GameIdeas asks the model for count game concepts and maps them onto Game
// records with locally generated ids and seeded thumbnail URLs. Missing key,
// call failure, or an unparseable response all return nil.
func (c *Client) GameIdeas(count int) []platform.Game {
	if count <= 0 {
		count = 4
	}

	if !c.Enabled() {
		c.logger.Warn().Msg("No API key provided, returning no game ideas.")
		return nil
	}

	prompt := fmt.Sprintf(`Generate %d creative and unique Roblox-style game concepts. They should be catchy and fun.
Respond with a JSON array of objects with the keys: title, description, creator, genre, likes, players.
likes and players are integers. Respond with the JSON array only.`, count)

	text, err := c.generate(prompt, true)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Game idea generation failed.")
		return nil
	}

	var raw []rawGameIdea
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &raw); err != nil {
		c.logger.Warn().Err(err).Msg("Game idea response was not valid JSON.")
		return nil
	}

	games := make([]platform.Game, 0, len(raw))
	for _, g := range raw {
		seed := strings.ReplaceAll(g.Title, " ", "")
		games = append(games, platform.Game{
			ID:          randx.GameID(),
			Title:       g.Title,
			Description: g.Description,
			Creator:     g.Creator,
			Genre:       g.Genre,
			Likes:       g.Likes,
			Players:     g.Players,
			Thumbnail:   fmt.Sprintf("https://picsum.photos/seed/%s/400/225", seed),
		})
	}

	return games
}
