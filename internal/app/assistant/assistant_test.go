package assistant

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a Client at a stub generateContent server.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return New(Options{
		APIKey:  "test-key",
		Model:   "test-model",
		BaseURL: server.URL,
		Rate:    100,
		Burst:   100,
	})
}

// candidateResponse builds the minimal generateContent response carrying text.
func candidateResponse(text string) []byte {
	raw, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	})
	return raw
}

func TestFriendReplySuccess(t *testing.T) {
	var gotPrompt string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req generateRequest
		require.NoError(t, json.Unmarshal(body, &req))
		gotPrompt = req.Contents[0].Parts[0].Text

		w.Write(candidateResponse("EZ W, ranked up again"))
	})

	reply := c.FriendReply("GamerGirl_X", "nice game", []string{"Me: hi", "GamerGirl_X: yo"})
	assert.Equal(t, "EZ W, ranked up again", reply)
	assert.Contains(t, gotPrompt, "GamerGirl_X")
	assert.Contains(t, gotPrompt, "nice game")
	assert.Contains(t, gotPrompt, "competitive pro player")
}

func TestFriendReplyFallbacks(t *testing.T) {
	disabled := New(Options{Rate: 100, Burst: 100})
	assert.Equal(t, FallbackFriendReplyNoKey, disabled.FriendReply("Builderman", "hi", nil))

	failing := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	assert.Equal(t, FallbackFriendReplyError, failing.FriendReply("Builderman", "hi", nil))
}

func TestFriendReplyEmptyTextDefaults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(candidateResponse("   "))
	})
	assert.Equal(t, "lol", c.FriendReply("NoobMaster69", "hi", nil))
}

func TestFriendReplyHistoryCapped(t *testing.T) {
	var gotPrompt string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req generateRequest
		require.NoError(t, json.Unmarshal(body, &req))
		gotPrompt = req.Contents[0].Parts[0].Text
		w.Write(candidateResponse("ok"))
	})

	history := []string{"Me: one", "Me: two", "Me: three", "Me: four", "Me: five"}
	c.FriendReply("CoolCat_99", "hi", history)

	assert.NotContains(t, gotPrompt, "Me: one")
	assert.NotContains(t, gotPrompt, "Me: two")
	assert.Contains(t, gotPrompt, "Me: five")
}

func TestChatReplyFallbacks(t *testing.T) {
	disabled := New(Options{Rate: 100, Burst: 100})
	assert.Equal(t, FallbackChatNoKey, disabled.ChatReply("hi", nil))

	failing := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	assert.Equal(t, FallbackChatError, failing.ChatReply("hi", nil))
}

func TestChatReplySuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(candidateResponse("gg, welcome to the obby!"))
	})
	assert.Equal(t, "gg, welcome to the obby!", c.ChatReply("how do I play?", nil))
}

func TestGameIdeasParsesStructuredResponse(t *testing.T) {
	ideas := []rawGameIdea{
		{Title: "Obby Kingdom", Description: "Jump!", Creator: "Dev1", Genre: "Obby", Likes: 10, Players: 5},
		{Title: "Tycoon World", Description: "Build!", Creator: "Dev2", Genre: "Tycoon", Likes: 20, Players: 7},
	}
	raw, _ := json.Marshal(ideas)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `"responseMimeType":"application/json"`)
		w.Write(candidateResponse(string(raw)))
	})

	games := c.GameIdeas(2)
	require.Len(t, games, 2)
	assert.Equal(t, "Obby Kingdom", games[0].Title)
	assert.NotEmpty(t, games[0].ID)
	assert.Equal(t, "https://picsum.photos/seed/ObbyKingdom/400/225", games[0].Thumbnail)
	assert.Equal(t, int64(20), games[1].Likes)
}

func TestGameIdeasFailuresReturnNil(t *testing.T) {
	disabled := New(Options{Rate: 100, Burst: 100})
	assert.Nil(t, disabled.GameIdeas(4))

	invalid := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(candidateResponse("this is not json"))
	})
	assert.Nil(t, invalid.GameIdeas(4))

	failing := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	assert.Nil(t, failing.GameIdeas(4))
}

func TestGenerateThrottled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(candidateResponse("ok"))
	}))
	t.Cleanup(server.Close)

	c := New(Options{
		APIKey:  "test-key",
		Model:   "test-model",
		BaseURL: server.URL,
		Rate:    0.0001,
		Burst:   1,
	})

	_, err := c.generate("first", false)
	require.NoError(t, err)

	_, err = c.generate("second", false)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "throttled"))
}
