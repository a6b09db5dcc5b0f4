package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sciquest-service/internal/app"
	"sciquest-service/internal/domain"
	"sciquest-service/internal/infra/memory"
	"sciquest-service/internal/seed"
	transport "sciquest-service/internal/transport/http"
	"sciquest-service/internal/transport/http/auth"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := memory.NewStore()
	if err := seed.Apply(context.Background(), store); err != nil {
		t.Fatalf("seed: %v", err)
	}

	handlers := transport.NewHandlers(
		app.NewCatalogService(store),
		app.NewQuizService(store),
		app.NewProgressService(store),
		app.NewCurriculumService(store),
	)
	authSvc := auth.NewService("test-secret", time.Hour)
	server := httptest.NewServer(transport.NewRouter(handlers, authSvc))
	t.Cleanup(server.Close)
	return server
}

func login(t *testing.T, server *httptest.Server, user string) string {
	t.Helper()
	body := fmt.Sprintf(`{"username": %q, "password": %q}`, user, user)
	resp, err := http.Post(server.URL+"/api/auth/login", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status %d", resp.StatusCode)
	}
	var payload struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	return payload.AccessToken
}

func doJSON(t *testing.T, server *httptest.Server, method, path, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, server.URL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, raw
}

func TestQuestionsNeverLeakAnswerKey(t *testing.T) {
	server := newTestServer(t)

	resp, body := doJSON(t, server, http.MethodGet, "/api/quizzes/1/questions", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d: %s", resp.StatusCode, body)
	}
	if strings.Contains(string(body), "correctAnswerIndex") {
		t.Fatalf("answer key leaked: %s", body)
	}
	if strings.Contains(string(body), "explanation") {
		t.Fatalf("explanation leaked before submission: %s", body)
	}

	var questions []map[string]interface{}
	if err := json.Unmarshal(body, &questions); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(questions) == 0 {
		t.Fatalf("expected seeded questions")
	}
}

func TestSubmitRequiresAuth(t *testing.T) {
	server := newTestServer(t)

	resp, _ := doJSON(t, server, http.MethodPost, "/api/quizzes/1/submit", "", map[string]interface{}{"answers": []interface{}{}})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestSubmitFlow(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server, "ada")

	_, rawQuestions := doJSON(t, server, http.MethodGet, "/api/quizzes/1/questions", "", nil)
	var questions []struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(rawQuestions, &questions); err != nil {
		t.Fatalf("decode questions: %v", err)
	}

	answers := make([]domain.SubmittedAnswer, len(questions))
	for i, q := range questions {
		answers[i] = domain.SubmittedAnswer{QuestionID: q.ID, SelectedOption: 0}
	}
	resp, body := doJSON(t, server, http.MethodPost, "/api/quizzes/1/submit", token,
		map[string]interface{}{"answers": answers})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit status %d: %s", resp.StatusCode, body)
	}

	var result struct {
		Attempt struct {
			Score  int  `json:"score"`
			Passed bool `json:"passed"`
		} `json:"attempt"`
		TotalQuestions int `json:"totalQuestions"`
		PassingScore   int `json:"passingScore"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.TotalQuestions != len(questions) || result.PassingScore != 70 {
		t.Fatalf("unexpected result envelope: %s", body)
	}

	resp, body = doJSON(t, server, http.MethodGet, "/api/quizzes/1/attempts", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("attempts status %d", resp.StatusCode)
	}
	var attempts []struct {
		Score int `json:"score"`
	}
	if err := json.Unmarshal(body, &attempts); err != nil {
		t.Fatalf("decode attempts: %v", err)
	}
	if len(attempts) != 1 || attempts[0].Score != result.Attempt.Score {
		t.Fatalf("expected recorded attempt, got %s", body)
	}
}

func TestSubmitCountMismatchIs400(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server, "ada")

	resp, body := doJSON(t, server, http.MethodPost, "/api/quizzes/1/submit", token,
		map[string]interface{}{"answers": []domain.SubmittedAnswer{{QuestionID: 1, SelectedOption: 0}}})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.StatusCode, body)
	}
}

func TestUnknownExperimentIs404(t *testing.T) {
	server := newTestServer(t)
	resp, _ := doJSON(t, server, http.MethodGet, "/api/experiments/999", "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestMalformedExperimentIDIs400(t *testing.T) {
	server := newTestServer(t)
	resp, _ := doJSON(t, server, http.MethodGet, "/api/experiments/abc", "", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestMalformedFilterIs400(t *testing.T) {
	server := newTestServer(t)
	resp, _ := doJSON(t, server, http.MethodGet, "/api/experiments?maxDuration=abc", "", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, server, http.MethodGet, "/api/experiments?householdItemsOnly=maybe", "", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestUnknownUnitFilterYieldsEmptyList(t *testing.T) {
	server := newTestServer(t)
	resp, body := doJSON(t, server, http.MethodGet, "/api/experiments?curriculumUnitId=bogus", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if strings.TrimSpace(string(body)) != "[]" {
		t.Fatalf("expected empty list, got %s", body)
	}
}

func TestAuthUserIsNullWhenAnonymous(t *testing.T) {
	server := newTestServer(t)
	resp, body := doJSON(t, server, http.MethodGet, "/api/auth/user", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if strings.TrimSpace(string(body)) != "null" {
		t.Fatalf("expected null, got %s", body)
	}

	token := login(t, server, "ada")
	_, body = doJSON(t, server, http.MethodGet, "/api/auth/user", token, nil)
	var user struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &user); err != nil || user.ID != "ada" {
		t.Fatalf("expected user ada, got %s", body)
	}
}

func TestQuizByExperimentIsNullWhenAbsent(t *testing.T) {
	server := newTestServer(t)
	// Experiment 4 (Rainbow in a Jar) is seeded without a quiz.
	resp, body := doJSON(t, server, http.MethodGet, "/api/quizzes/experiment/4", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if strings.TrimSpace(string(body)) != "null" {
		t.Fatalf("expected null, got %s", body)
	}
}

func TestProgressRequiresExperimentID(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server, "ada")

	resp, _ := doJSON(t, server, http.MethodPost, "/api/progress", token, map[string]interface{}{"completed": true})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestProgressCompleteToggle(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server, "ada")

	resp, body := doJSON(t, server, http.MethodPatch, "/api/progress/1/complete", token,
		map[string]interface{}{"completed": true})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("complete status %d: %s", resp.StatusCode, body)
	}
	var record struct {
		Completed   bool       `json:"completed"`
		CompletedAt *time.Time `json:"completedAt"`
	}
	if err := json.Unmarshal(body, &record); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !record.Completed || record.CompletedAt == nil {
		t.Fatalf("expected completion stamp, got %s", body)
	}

	_, body = doJSON(t, server, http.MethodPatch, "/api/progress/1/complete", token,
		map[string]interface{}{"completed": false})
	if err := json.Unmarshal(body, &record); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if record.Completed || record.CompletedAt != nil {
		t.Fatalf("expected cleared stamp, got %s", body)
	}
}

func TestCurriculumEndpoints(t *testing.T) {
	server := newTestServer(t)

	resp, body := doJSON(t, server, http.MethodGet, "/api/curriculum/s1-t1", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unit status %d", resp.StatusCode)
	}
	var unit struct {
		UnitID string `json:"unitId"`
	}
	if err := json.Unmarshal(body, &unit); err != nil || unit.UnitID != "s1-t1" {
		t.Fatalf("expected s1-t1, got %s", body)
	}

	resp, _ = doJSON(t, server, http.MethodGet, "/api/curriculum/nope", "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown unit, got %d", resp.StatusCode)
	}
}
