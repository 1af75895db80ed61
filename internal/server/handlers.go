package server

import (
	"encoding/binary"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/tilesmith/boggen/pkg/board"
	"github.com/tilesmith/boggen/pkg/cache"
	errs "github.com/tilesmith/boggen/pkg/errors"
	"github.com/tilesmith/boggen/pkg/generate"
	"github.com/tilesmith/boggen/pkg/observability"
	"github.com/tilesmith/boggen/pkg/solve"
)

// generateRequest is the JSON body of POST /v1/boards.
type generateRequest struct {
	DiceSet string `json:"dice_set"`
	Width   int    `json:"width,omitempty"`  // defaults to the set's size
	Height  int    `json:"height,omitempty"` // defaults to the set's size

	MinWords   int `json:"min_words,omitempty"`
	MaxWords   int `json:"max_words,omitempty"`
	MinScore   int `json:"min_score,omitempty"`
	MaxScore   int `json:"max_score,omitempty"`
	MinLongest int `json:"min_longest,omitempty"`
	MaxLongest int `json:"max_longest,omitempty"`
	MinLength  int `json:"min_length,omitempty"`

	MaxTries int `json:"max_tries,omitempty"`

	// Seed makes the request reproducible and cacheable. When absent, a
	// random seed is drawn and the result bypasses the cache.
	Seed *uint64 `json:"seed,omitempty"`
}

// replayRequest is the JSON body of POST /v1/boards/replay.
type replayRequest struct {
	Board  string `json:"board"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// boardResponse is the JSON result for both generation and replay.
type boardResponse struct {
	ID        string   `json:"id"`
	Board     string   `json:"board"`
	Rows      []string `json:"rows"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	Tries     int      `json:"tries,omitempty"`
	Words     []string `json:"words"`
	WordCount int      `json:"word_count"`
	Score     int      `json:"score"`
	Longest   int      `json:"longest"`
	Cached    bool     `json:"cached,omitempty"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListDice(w http.ResponseWriter, r *http.Request) {
	type diceSet struct {
		Name string   `json:"name"`
		Desc string   `json:"desc"`
		Size int      `json:"size"`
		Dice []string `json:"dice"`
	}
	sets := board.Sets()
	out := make([]diceSet, len(sets))
	for i, set := range sets {
		out[i] = diceSet{Name: set.Name, Desc: set.Desc, Size: set.Size, Dice: set.Dice}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errs.New(errs.ErrCodeInvalidInput, "decoding request: %v", err))
		return
	}

	set, err := board.SetByName(req.DiceSet)
	if err != nil {
		writeError(w, err)
		return
	}
	if req.Width == 0 {
		req.Width = set.Size
	}
	if req.Height == 0 {
		req.Height = set.Size
	}
	if req.Width*req.Height != len(set.Dice) {
		writeError(w, errs.New(errs.ErrCodeInvalidDice,
			"dice set %q has %d dice, board %dx%d needs %d",
			set.Name, len(set.Dice), req.Width, req.Height, req.Width*req.Height))
		return
	}

	seed, cacheable := uint64(0), false
	if req.Seed != nil {
		seed, cacheable = *req.Seed, true
	} else {
		u := uuid.New()
		seed = binary.BigEndian.Uint64(u[:8])
	}

	key := s.keyer.BoardKey(cache.BoardKeyOpts{
		DiceSet:    set.Name,
		Width:      req.Width,
		Height:     req.Height,
		MinWords:   req.MinWords,
		MaxWords:   req.MaxWords,
		MinScore:   req.MinScore,
		MaxScore:   req.MaxScore,
		MinLongest: req.MinLongest,
		MaxLongest: req.MaxLongest,
		MinLength:  req.MinLength,
		MaxTries:   req.MaxTries,
		Seed:       seed,
	})
	if cacheable {
		if data, hit, err := s.cache.Get(r.Context(), key); err == nil && hit {
			observability.Cache().OnCacheHit(r.Context(), "board")
			var resp boardResponse
			if json.Unmarshal(data, &resp) == nil {
				resp.Cached = true
				writeJSON(w, http.StatusOK, resp)
				return
			}
		} else if err == nil {
			observability.Cache().OnCacheMiss(r.Context(), "board")
		}
	}

	result, err := s.gen.Generate(r.Context(), generate.Request{
		Dice:   set.Dice,
		Width:  req.Width,
		Height: req.Height,
		Constraints: solve.Constraints{
			MinWords:   req.MinWords,
			MaxWords:   req.MaxWords,
			MinScore:   req.MinScore,
			MaxScore:   req.MaxScore,
			MinLongest: req.MinLongest,
			MaxLongest: req.MaxLongest,
			MinLength:  req.MinLength,
		},
		MaxTries: req.MaxTries,
		Seed:     seed,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	resp := toResponse(result)
	if cacheable {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(r.Context(), key, data, s.ttl); err == nil {
				observability.Cache().OnCacheSet(r.Context(), "board", len(data))
			}
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReplay(w http.ResponseWriter, r *http.Request) {
	var req replayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errs.New(errs.ErrCodeInvalidInput, "decoding request: %v", err))
		return
	}

	result, err := s.gen.Replay(req.Board, req.Width, req.Height)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(result))
}

func toResponse(b *generate.Board) boardResponse {
	return boardResponse{
		ID:        uuid.NewString(),
		Board:     b.Grid.Cells,
		Rows:      b.Grid.Rows(),
		Width:     b.Grid.Width,
		Height:    b.Grid.Height,
		Tries:     b.Tries,
		Words:     b.Words,
		WordCount: len(b.Words),
		Score:     b.Score,
		Longest:   b.Longest,
	}
}

// statusFor maps error codes to HTTP statuses.
func statusFor(code errs.Code) int {
	switch code {
	case errs.ErrCodeInvalidBoard, errs.ErrCodeInvalidDice,
		errs.ErrCodeInvalidConstraints, errs.ErrCodeInvalidWord,
		errs.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case errs.ErrCodeNotFound, errs.ErrCodeDiceSetNotFound, errs.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errs.ErrCodeBudgetExhausted:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := errs.GetCode(err)
	if code == "" {
		code = errs.ErrCodeInternal
	}
	writeJSON(w, statusFor(code), errorResponse{
		Code:    string(code),
		Message: errs.UserMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
