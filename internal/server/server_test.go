package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tilesmith/boggen/pkg/cache"
	"github.com/tilesmith/boggen/pkg/dawg"
	"github.com/tilesmith/boggen/pkg/generate"
	"github.com/tilesmith/boggen/pkg/solve"
)

var testWords = []string{
	"CAT", "CATS", "ACT", "SAT", "RATS", "ARTS", "STAR", "TARS",
	"RAT", "TAR", "ART", "TEN", "NET", "SENT", "NEST", "RENTS",
	"TONE", "NOTE", "STONE", "ONSET", "EAST", "SEAT", "TEAS", "RATE",
	"TEAR", "STARE", "LATER", "ALERT", "LEAST", "STEAL", "TALES",
}

func newTestServer(t *testing.T, opts Options) *Server {
	t.Helper()
	dict, err := dawg.Compile(testWords)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	return New(generate.New(dict, solve.DefaultScores, nil), opts)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, Options{})
	w := doJSON(t, srv.Router(), http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestListDice(t *testing.T) {
	srv := newTestServer(t, Options{})
	w := doJSON(t, srv.Router(), http.MethodGet, "/v1/dice", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var sets []struct {
		Name string   `json:"name"`
		Size int      `json:"size"`
		Dice []string `json:"dice"`
	}
	if err := json.NewDecoder(w.Body).Decode(&sets); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(sets) == 0 {
		t.Fatal("no dice sets returned")
	}
	for _, s := range sets {
		if len(s.Dice) != s.Size*s.Size {
			t.Errorf("set %q: %d dice for size %d", s.Name, len(s.Dice), s.Size)
		}
	}
}

func TestGenerateBoard(t *testing.T) {
	srv := newTestServer(t, Options{})
	w := doJSON(t, srv.Router(), http.MethodPost, "/v1/boards", `{"dice_set":"4","seed":7}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}

	var resp struct {
		ID        string   `json:"id"`
		Board     string   `json:"board"`
		Rows      []string `json:"rows"`
		Width     int      `json:"width"`
		Height    int      `json:"height"`
		Tries     int      `json:"tries"`
		Words     []string `json:"words"`
		WordCount int      `json:"word_count"`
		Cached    bool     `json:"cached"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.ID == "" {
		t.Error("response has no id")
	}
	if resp.Width != 4 || resp.Height != 4 || len(resp.Board) != 16 {
		t.Errorf("board %q is not 4x4", resp.Board)
	}
	if len(resp.Rows) != 4 {
		t.Errorf("rows = %v, want 4 rows", resp.Rows)
	}
	if resp.Tries < 1 {
		t.Errorf("tries = %d, want >= 1", resp.Tries)
	}
	if resp.WordCount != len(resp.Words) {
		t.Errorf("word_count = %d but %d words listed", resp.WordCount, len(resp.Words))
	}
	if resp.Cached {
		t.Error("first response marked cached")
	}
}

func TestGenerateBoardCachesSeededRequests(t *testing.T) {
	store, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	srv := newTestServer(t, Options{Cache: store})
	router := srv.Router()

	body := `{"dice_set":"4","seed":11,"min_words":3}`
	first := doJSON(t, router, http.MethodPost, "/v1/boards", body)
	if first.Code != http.StatusOK {
		t.Fatalf("first request: status %d, body %s", first.Code, first.Body)
	}
	second := doJSON(t, router, http.MethodPost, "/v1/boards", body)
	if second.Code != http.StatusOK {
		t.Fatalf("second request: status %d, body %s", second.Code, second.Body)
	}

	var a, b struct {
		Board  string `json:"board"`
		Cached bool   `json:"cached"`
	}
	if err := json.Unmarshal(first.Body.Bytes(), &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(second.Body.Bytes(), &b); err != nil {
		t.Fatal(err)
	}
	if a.Cached {
		t.Error("first response marked cached")
	}
	if !b.Cached {
		t.Error("second response not served from cache")
	}
	if a.Board != b.Board {
		t.Errorf("cached board %q differs from original %q", b.Board, a.Board)
	}
}

func TestGenerateBoardUnseededSkipsCache(t *testing.T) {
	store, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	srv := newTestServer(t, Options{Cache: store})
	router := srv.Router()

	w := doJSON(t, router, http.MethodPost, "/v1/boards", `{"dice_set":"4"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}

	// Nothing should have been stored.
	fc := store.(*cache.FileCache)
	if n, _ := fc.Purge(); n != 0 {
		t.Errorf("unseeded request stored %d cache entries", n)
	}
}

func TestGenerateBoardErrors(t *testing.T) {
	srv := newTestServer(t, Options{})
	router := srv.Router()

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"malformed json", `{`, http.StatusBadRequest, "INVALID_INPUT"},
		{"unknown set", `{"dice_set":"nope"}`, http.StatusNotFound, "DICE_SET_NOT_FOUND"},
		{"missing set", `{}`, http.StatusBadRequest, "INVALID_DICE"},
		{"dimension mismatch", `{"dice_set":"4","width":3,"height":3}`, http.StatusBadRequest, "INVALID_DICE"},
		{"impossible constraints", `{"dice_set":"4","seed":1,"min_words":100000,"max_tries":5}`, http.StatusUnprocessableEntity, "BUDGET_EXHAUSTED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/v1/boards", tt.body)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.status, w.Body)
			}
			var resp struct {
				Code string `json:"code"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.Code != tt.code {
				t.Errorf("code = %q, want %q", resp.Code, tt.code)
			}
		})
	}
}

func TestReplayBoard(t *testing.T) {
	srv := newTestServer(t, Options{})
	w := doJSON(t, srv.Router(), http.MethodPost, "/v1/boards/replay", `{"board":"CATS","width":2,"height":2}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}

	var resp struct {
		Board string   `json:"board"`
		Tries int      `json:"tries"`
		Words []string `json:"words"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Board != "CATS" {
		t.Errorf("board = %q, want CATS", resp.Board)
	}
	if resp.Tries != 0 {
		t.Errorf("tries = %d, want 0 for a replay", resp.Tries)
	}
	found := map[string]bool{}
	for _, w := range resp.Words {
		found[w] = true
	}
	for _, want := range []string{"CAT", "CATS", "ACT", "SAT"} {
		if !found[want] {
			t.Errorf("word %q missing from replay of CATS", want)
		}
	}
}

func TestReplayBoardRejectsBadInput(t *testing.T) {
	srv := newTestServer(t, Options{})

	w := doJSON(t, srv.Router(), http.MethodPost, "/v1/boards/replay", `{"board":"cats","width":2,"height":2}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("lowercase board: status = %d, want 400", w.Code)
	}

	w = doJSON(t, srv.Router(), http.MethodPost, "/v1/boards/replay", `{"board":"CATS","width":3,"height":3}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("dimension mismatch: status = %d, want 400", w.Code)
	}
}

// Ensure the cached payload round-trips through JSON without losing fields.
func TestBoardResponseRoundtrip(t *testing.T) {
	resp := boardResponse{
		ID:        "x",
		Board:     "CATS",
		Rows:      []string{"C  A ", "T  S "},
		Width:     2,
		Height:    2,
		Tries:     3,
		Words:     []string{"CAT"},
		WordCount: 1,
		Score:     1,
		Longest:   3,
	}
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}
	var back boardResponse
	if err := json.Unmarshal(bytes.TrimSpace(data), &back); err != nil {
		t.Fatal(err)
	}
	if back.Board != resp.Board || back.WordCount != resp.WordCount || back.Tries != resp.Tries {
		t.Errorf("roundtrip lost fields: %+v", back)
	}
}
