package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/motiondesk/server/internal/ai"
	"github.com/motiondesk/server/internal/auth"
	"github.com/motiondesk/server/internal/chat"
	"github.com/motiondesk/server/internal/config"
	"github.com/motiondesk/server/internal/httpapi/handlers"
)

const testSecret = "router-test-secret"

type echoProvider struct{}

func (echoProvider) Chat(ctx context.Context, messages []ai.Message) (string, error) {
	_ = ctx
	return "echo: " + messages[len(messages)-1].Content, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&chat.Chat{}, &chat.StoredMessage{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	svc := chat.NewService(chat.NewRepo(db), ai.NewGateway(echoProvider{}))
	h := handlers.NewHandler(svc, nil, nil)
	cfg := config.Config{CORSOrigins: []string{"http://localhost:3000"}}
	return NewRouter(cfg, h, auth.NewJWTResolver(testSecret))
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, decoded
}

func signToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := auth.SignToken(userID, testSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestConverseEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/chat", "", map[string]any{
		"messages": []map[string]string{{"role": "user", "content": "hello"}},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if resp["reply"] != "echo: hello" {
		t.Fatalf("unexpected reply: %v", resp)
	}
}

func TestConverseEndpoint_EmptyAndMalformed(t *testing.T) {
	r := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/chat", "", map[string]any{"messages": []any{}})
	if w.Code != http.StatusOK || resp["reply"] != chat.EmptyConversationReply {
		t.Fatalf("empty conversation: status %d resp %v", w.Code, resp)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("not json"))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	if w2.Code != http.StatusBadRequest {
		t.Fatalf("malformed: status %d", w2.Code)
	}
}

func TestSaveListGetFlow(t *testing.T) {
	r := newTestRouter(t)
	tokenA := signToken(t, "user-a")
	tokenB := signToken(t, "user-b")

	w, resp := doJSON(t, r, http.MethodPost, "/api/chats", tokenA, map[string]any{
		"messages": []map[string]string{
			{"role": "user", "content": "Quote a 2m3 load"},
			{"role": "assistant", "content": "Ready to send: ..."},
		},
		"settings": map[string]any{"business_name": "Acme Removals"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("save status %d: %s", w.Code, w.Body.String())
	}
	if resp["ok"] != true {
		t.Fatalf("save response missing ok: %v", resp)
	}
	id, _ := resp["id"].(string)
	if id == "" {
		t.Fatalf("save response missing id: %v", resp)
	}

	// owner sees exactly one chat with the derived title
	w, resp = doJSON(t, r, http.MethodGet, "/api/chats", tokenA, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status %d", w.Code)
	}
	chats, _ := resp["chats"].([]any)
	if len(chats) != 1 {
		t.Fatalf("expected 1 chat, got %v", resp)
	}
	entry := chats[0].(map[string]any)
	if entry["id"] != id || entry["title"] != "Quote a 2m3 load" {
		t.Fatalf("unexpected list entry: %v", entry)
	}

	// another user's list stays empty
	w, resp = doJSON(t, r, http.MethodGet, "/api/chats", tokenB, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status %d", w.Code)
	}
	if chats, _ := resp["chats"].([]any); len(chats) != 0 {
		t.Fatalf("foreign chat leaked: %v", resp)
	}

	// owner gets the transcript back in order with settings
	w, resp = doJSON(t, r, http.MethodGet, "/api/chats/"+id, tokenA, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status %d: %s", w.Code, w.Body.String())
	}
	msgs, _ := resp["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %v", resp)
	}
	first := msgs[0].(map[string]any)
	if first["role"] != "user" || first["content"] != "Quote a 2m3 load" {
		t.Fatalf("transcript order broken: %v", msgs)
	}
	settings, _ := resp["settings"].(map[string]any)
	if settings["business_name"] != "Acme Removals" {
		t.Fatalf("settings missing: %v", resp)
	}

	// anyone else is forbidden
	w, resp = doJSON(t, r, http.MethodGet, "/api/chats/"+id, tokenB, nil)
	if w.Code != http.StatusForbidden || resp["error"] != "Forbidden" {
		t.Fatalf("expected 403 Forbidden, got %d %v", w.Code, resp)
	}

	// unknown id is not found
	w, _ = doJSON(t, r, http.MethodGet, "/api/chats/nope", tokenA, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestListDegradesToEmptyWithoutAuth(t *testing.T) {
	r := newTestRouter(t)

	for _, token := range []string{"", "garbage-token"} {
		w, resp := doJSON(t, r, http.MethodGet, "/api/chats", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("token %q: status %d", token, w.Code)
		}
		if chats, ok := resp["chats"].([]any); !ok || len(chats) != 0 {
			t.Fatalf("token %q: expected empty chats, got %v", token, resp)
		}
	}
}

func TestUnauthorizedBodyIsUniform(t *testing.T) {
	r := newTestRouter(t)

	var bodies []string
	for _, token := range []string{"", "garbage-token"} {
		w, _ := doJSON(t, r, http.MethodPost, "/api/chats", token, map[string]any{
			"messages": []map[string]string{{"role": "user", "content": "x"}},
		})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("token %q: status %d", token, w.Code)
		}
		bodies = append(bodies, w.Body.String())
	}
	if bodies[0] != bodies[1] {
		t.Fatalf("401 bodies differ: %q vs %q", bodies[0], bodies[1])
	}
}

func TestSaveRejectsEmptyTranscript(t *testing.T) {
	r := newTestRouter(t)
	token := signToken(t, "user-a")

	w, resp := doJSON(t, r, http.MethodPost, "/api/chats", token, map[string]any{"messages": []any{}})
	if w.Code != http.StatusBadRequest || resp["error"] != "No messages" {
		t.Fatalf("expected 400 No messages, got %d %v", w.Code, resp)
	}
}
