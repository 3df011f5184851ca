/*
Package assistant wraps the remote text-generation service used for friend
replies, the NPC chat widget, and game idea generation.

This file contains the prompt construction for friend replies and the NPC
chat widget, including the per-friend personas.
*/
package assistant

import (
	"fmt"
	"strings"
)

// Fallback strings. The UI shows these verbatim whenever a remote call cannot
// be made or fails; failures never surface as errors.
const (
	FallbackFriendReplyNoKey = "Haha cool!"
	FallbackFriendReplyError = "brb lag"
	FallbackChatNoKey        = "I cannot reply without an API key."
	FallbackChatError        = "Connection error..."
)

// persona picks the roleplay flavor for a friend based on their name.
func persona(friendName string) string {
	switch {
	case strings.Contains(friendName, "Noob"):
		return "A complete beginner/noob who always asks for free items, uses bad grammar, and says 'pls' a lot."
	case strings.Contains(friendName, "GamerGirl"):
		return "A competitive pro player who uses 'EZ', 'L', 'W' and talks about ranking up."
	case strings.Contains(friendName, "Builder"):
		return "A developer who talks about scripting, building maps, and fixing bugs."
	case strings.Contains(friendName, "Cool"):
		return "A chill player who uses slang like 'bet', 'cap', 'fr'."
	default:
		return "A casual gamer."
	}
}

// FriendReply generates a short in-character reply from a friend to the
// user's last message. history carries the last few lines of the
// conversation for context.
func (c *Client) FriendReply(friendName, lastMessage string, history []string) string {
	if !c.Enabled() {
		return FallbackFriendReplyNoKey
	}

	if len(history) > 3 {
		history = history[len(history)-3:]
	}

	prompt := fmt.Sprintf(`Roleplay as a Roblox player named '%s'.
Your Persona: %s

Conversation History:
%s

The user just said: "%s"

Reply to the user in character. Keep it short (1 sentence max). Do not use hashtags.`,
		friendName, persona(friendName), strings.Join(history, "\n"), lastMessage)

	reply, err := c.generate(prompt, false)
	if err != nil {
		c.logger.Warn().Err(err).Str("friend", friendName).Msg("Friend reply generation failed, using fallback.")
		return FallbackFriendReplyError
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "lol"
	}
	return reply
}

// ChatReply generates an NPC answer for the global chat widget.
func (c *Client) ChatReply(message string, history []string) string {
	if !c.Enabled() {
		return FallbackChatNoKey
	}

	prompt := fmt.Sprintf(`History: %s
User: %s

You are a helpful and enthusiastic NPC in a Roblox-like game world called BloxClone.
Keep your answers short (under 2 sentences) and use gaming slang occasionally (like 'gg', 'noob', 'obby').`,
		strings.Join(history, "\n"), message)

	reply, err := c.generate(prompt, false)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Chat reply generation failed, using fallback.")
		return FallbackChatError
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "GG!"
	}
	return reply
}
