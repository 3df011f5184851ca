package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bloxclone/internal/app/assistant"
	"bloxclone/internal/app/db"
	"bloxclone/internal/app/events"
	"bloxclone/internal/app/platform"
	"bloxclone/internal/app/store"
	"bloxclone/internal/configs"
	"bloxclone/internal/pkg/errs"
	"bloxclone/internal/pkg/resp"
)

const testOwnerPassword = "admin123"

// newTestServer spins up the full router over a fresh temp database, with the
// assistant disabled so its fallbacks answer deterministically.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return newTestServerWithAssistant(t, assistant.New(assistant.Options{Rate: 100, Burst: 100}))
}

// newTestServerWithAssistant is newTestServer with a caller-supplied assistant
// client, for tests that stub the generation endpoint.
func newTestServerWithAssistant(t *testing.T, client *assistant.Client) *httptest.Server {
	t.Helper()

	sqlDB, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	hash, err := bcrypt.GenerateFromPassword([]byte(testOwnerPassword), bcrypt.MinCost)
	require.NoError(t, err)

	appStore, err := store.New(context.Background(), db.NewKV(sqlDB), store.Options{
		OwnerUsername:     platform.OwnerUsername,
		OwnerPasswordHash: hash,
		Confirmer:         store.ConfirmerFunc(func(string) bool { return true }),
	})
	require.NoError(t, err)

	hub := events.NewHub()
	t.Cleanup(hub.Shutdown)

	deps := &AppDeps{
		Store:     appStore,
		Hub:       hub,
		Assistant: client,
		Config: &configs.AppConfig{
			Environment:   "development",
			OwnerUsername: platform.OwnerUsername,
		},
	}

	server := httptest.NewServer(Router(deps))
	t.Cleanup(server.Close)
	return server
}

// postJSON sends body to path and decodes the response envelope.
func postJSON(t *testing.T, server *httptest.Server, path string, body any) (resp.JSONResponse, int) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	httpResp, err := http.Post(server.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer httpResp.Body.Close()

	var envelope resp.JSONResponse
	require.NoError(t, json.NewDecoder(httpResp.Body).Decode(&envelope))
	return envelope, httpResp.StatusCode
}

func getJSON(t *testing.T, server *httptest.Server, path string) (resp.JSONResponse, int) {
	t.Helper()

	httpResp, err := http.Get(server.URL + path)
	require.NoError(t, err)
	defer httpResp.Body.Close()

	var envelope resp.JSONResponse
	require.NoError(t, json.NewDecoder(httpResp.Body).Decode(&envelope))
	return envelope, httpResp.StatusCode
}

func signupAlice(t *testing.T, server *httptest.Server) {
	t.Helper()
	envelope, _ := postJSON(t, server, "/api/auth/signup", map[string]string{
		"username": "Alice", "password": "pw",
	})
	require.Equal(t, 0, envelope.Code)
}

func loginOwner(t *testing.T, server *httptest.Server) {
	t.Helper()
	envelope, _ := postJSON(t, server, "/api/auth/login", map[string]string{
		"username": platform.OwnerUsername, "password": testOwnerPassword,
	})
	require.Equal(t, 0, envelope.Code)
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)

	envelope, status := getJSON(t, server, "/health")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, envelope.Code)
}

func TestAuthFlow(t *testing.T) {
	server := newTestServer(t)

	// Signed out: session lookup reports not signed in.
	envelope, status := getJSON(t, server, "/api/auth/session")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, errs.ErrNotSignedIn, envelope.Code)

	signupAlice(t, server)

	envelope, status = getJSON(t, server, "/api/auth/session")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, envelope.Code)

	envelope, _ = postJSON(t, server, "/api/auth/logout", map[string]string{})
	assert.Equal(t, 0, envelope.Code)

	_, status = getJSON(t, server, "/api/auth/session")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestLoginErrorsCarryOriginalCopy(t *testing.T) {
	server := newTestServer(t)

	envelope, _ := postJSON(t, server, "/api/auth/login", map[string]string{
		"username": "Nobody", "password": "pw",
	})
	assert.Equal(t, errs.ErrUserNotFound, envelope.Code)
	assert.Equal(t, "User not found. Please Sign Up.", envelope.Message)

	envelope, _ = postJSON(t, server, "/api/auth/login", map[string]string{
		"username": platform.OwnerUsername, "password": "wrong",
	})
	assert.Equal(t, errs.ErrOwnerPasswordInvalid, envelope.Code)
	assert.Equal(t, "Invalid password for Developer Account.", envelope.Message)
}

func TestSignupRejectsUnknownFields(t *testing.T) {
	server := newTestServer(t)

	envelope, _ := postJSON(t, server, "/api/auth/signup", map[string]string{
		"username": "Alice", "password": "pw", "extra": "nope",
	})
	assert.Equal(t, errs.ErrInvalidJSONFormat, envelope.Code)
}

func TestBuyItemFlow(t *testing.T) {
	server := newTestServer(t)
	signupAlice(t, server)

	// Fund the account first.
	envelope, _ := postJSON(t, server, "/api/shop/robux", map[string]any{
		"amount": 1000, "confirmed": true,
	})
	require.Equal(t, 0, envelope.Code)

	envelope, _ = postJSON(t, server, "/api/shop/buy", map[string]any{
		"itemId": "glasses_deal", "price": 500,
	})
	require.Equal(t, 0, envelope.Code)

	// Insufficient balance now.
	envelope, _ = postJSON(t, server, "/api/shop/buy", map[string]any{
		"itemId": "crown_gold", "price": 50000,
	})
	assert.Equal(t, errs.ErrPurchaseFailed, envelope.Code)
	assert.Equal(t, "Purchase failed. Check your Robux balance.", envelope.Message)
}

func TestBuyRobuxDeclined(t *testing.T) {
	server := newTestServer(t)
	signupAlice(t, server)

	envelope, _ := postJSON(t, server, "/api/shop/robux", map[string]any{
		"amount": 1000, "confirmed": false,
	})
	assert.Equal(t, errs.ErrPurchaseDeclined, envelope.Code)
}

func TestAdminEndpointsAreOwnerGated(t *testing.T) {
	server := newTestServer(t)

	// Signed out.
	envelope, status := postJSON(t, server, "/api/admin/ban", map[string]string{
		"username": "Alice", "reason": "Spam",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, errs.ErrNotSignedIn, envelope.Code)

	// Signed in as a regular user.
	signupAlice(t, server)
	envelope, status = postJSON(t, server, "/api/admin/ban", map[string]string{
		"username": "Alice", "reason": "Spam",
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, errs.ErrNotAllowed, envelope.Code)
}

func TestSettingsRenameCannotClaimOwnerName(t *testing.T) {
	server := newTestServer(t)
	signupAlice(t, server)

	envelope, _ := postJSON(t, server, "/api/profile/settings", map[string]string{
		"username": platform.OwnerUsername, "status": "Online",
	})
	assert.Equal(t, errs.ErrReservedUsername, envelope.Code)

	// The rename failed, so the admin gate still holds.
	envelope, status := postJSON(t, server, "/api/admin/ban", map[string]string{
		"username": "Alice", "reason": "Spam",
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, errs.ErrNotAllowed, envelope.Code)

	// And the seeded owner record keeps its balance.
	loginOwner(t, server)
	envelope, _ = getJSON(t, server, "/api/auth/session")
	require.Equal(t, 0, envelope.Code)
	user := envelope.Data.(map[string]any)["user"].(map[string]any)
	assert.Equal(t, float64(999_999_999), user["robux"])
}

func TestBanFlowAsOwner(t *testing.T) {
	server := newTestServer(t)
	signupAlice(t, server)
	loginOwner(t, server)

	envelope, _ := postJSON(t, server, "/api/admin/ban", map[string]string{
		"username": "Alice", "reason": "Spam",
	})
	require.Equal(t, 0, envelope.Code)

	envelope, _ = postJSON(t, server, "/api/auth/login", map[string]string{
		"username": "Alice", "password": "pw",
	})
	assert.Equal(t, errs.ErrAccountBanned, envelope.Code)
	assert.Equal(t, "Account Banned: Spam", envelope.Message)

	loginOwner(t, server)
	envelope, _ = postJSON(t, server, "/api/admin/unban", map[string]string{"username": "Alice"})
	require.Equal(t, 0, envelope.Code)

	envelope, _ = postJSON(t, server, "/api/auth/login", map[string]string{
		"username": "Alice", "password": "pw",
	})
	assert.Equal(t, 0, envelope.Code)
}

func TestChatWidgetFallsBackWithoutKey(t *testing.T) {
	server := newTestServer(t)

	envelope, _ := postJSON(t, server, "/api/chat", map[string]any{
		"message": "hello", "history": []string{},
	})
	require.Equal(t, 0, envelope.Code)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, assistant.FallbackChatNoKey, data["reply"])
}

func TestSendMessageValidation(t *testing.T) {
	server := newTestServer(t)
	signupAlice(t, server)

	envelope, _ := postJSON(t, server, "/api/messages/send", map[string]string{
		"friendId": "no_such_friend", "text": "hi",
	})
	assert.Equal(t, errs.ErrFriendNotFound, envelope.Code)

	envelope, _ = postJSON(t, server, "/api/messages/send", map[string]string{
		"friendId": "f1", "text": "",
	})
	assert.Equal(t, errs.ErrInvalidParams, envelope.Code)
}

func TestSendMessageTriggersAsyncReply(t *testing.T) {
	server := newTestServer(t)
	signupAlice(t, server)

	envelope, _ := postJSON(t, server, "/api/messages/send", map[string]string{
		"friendId": "f1", "text": "hello there",
	})
	require.Equal(t, 0, envelope.Code)

	// The typing flag goes up synchronously with the send.
	envelope, _ = getJSON(t, server, "/api/messages/f1")
	data := envelope.Data.(map[string]any)
	assert.Equal(t, true, data["typing"])

	// The disabled assistant answers with its fallback after the reply delay.
	assert.Eventually(t, func() bool {
		envelope, _ := getJSON(t, server, "/api/messages/f1")
		data, ok := envelope.Data.(map[string]any)
		if !ok || data["typing"] != false {
			return false
		}
		messages := data["messages"].([]any)
		if len(messages) != 2 {
			return false
		}
		last := messages[1].(map[string]any)
		return last["text"] == assistant.FallbackFriendReplyNoKey && last["isRead"] == false
	}, 5*time.Second, 50*time.Millisecond)
}

func TestHungGenerationLeavesTypingFlagSet(t *testing.T) {
	if testing.Short() {
		t.Skip("waits out the reply delay")
	}

	// A generation endpoint that never answers until the test is over.
	release := make(chan struct{})
	blocking := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(func() {
		close(release)
		blocking.Close()
	})

	server := newTestServerWithAssistant(t, assistant.New(assistant.Options{
		APIKey:  "test-key",
		Model:   "test-model",
		BaseURL: blocking.URL,
		Rate:    100,
		Burst:   100,
	}))
	signupAlice(t, server)

	envelope, _ := postJSON(t, server, "/api/messages/send", map[string]string{
		"friendId": "f1", "text": "you there?",
	})
	require.Equal(t, 0, envelope.Code)

	// Past the longest reply delay the call is parked inside the generation
	// request, so the flag must still be up and no reply must have landed.
	time.Sleep(3500 * time.Millisecond)

	envelope, _ = getJSON(t, server, "/api/messages/f1")
	data := envelope.Data.(map[string]any)
	assert.Equal(t, true, data["typing"])
	assert.Len(t, data["messages"].([]any), 1)
}

func TestConversationEndpoint(t *testing.T) {
	server := newTestServer(t)

	envelope, _ := getJSON(t, server, "/api/messages/f2")
	require.Equal(t, 0, envelope.Code)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)

	messages, ok := data["messages"].([]any)
	require.True(t, ok)
	assert.Len(t, messages, 2, "seed conversation with f2")
	assert.Equal(t, false, data["typing"])
}

func TestFriendRosterEndpoints(t *testing.T) {
	server := newTestServer(t)

	envelope, _ := getJSON(t, server, "/api/friends/")
	require.Equal(t, 0, envelope.Code)
	data := envelope.Data.(map[string]any)
	assert.Len(t, data["friends"].([]any), 4)

	envelope, _ = postJSON(t, server, "/api/friends/", map[string]string{"username": "Zed"})
	require.Equal(t, 0, envelope.Code)

	envelope, _ = getJSON(t, server, "/api/friends/")
	data = envelope.Data.(map[string]any)
	assert.Len(t, data["friends"].([]any), 5)
}

func TestGamesGenerateWithoutKeyEmptiesDirectory(t *testing.T) {
	server := newTestServer(t)

	envelope, _ := postJSON(t, server, "/api/games/generate", map[string]any{"count": 4})
	require.Equal(t, 0, envelope.Code)

	// The disabled assistant returns no ideas; the directory stays empty and
	// the in-flight flag eventually clears.
	assert.Eventually(t, func() bool {
		envelope, _ := getJSON(t, server, "/api/games/")
		data, ok := envelope.Data.(map[string]any)
		if !ok {
			return false
		}
		return data["generating"] == false
	}, 2*time.Second, 10*time.Millisecond)
}
