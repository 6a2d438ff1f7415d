package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordhint/internal/logger"
	"github.com/bastiangx/wordhint/pkg/config"
	"github.com/bastiangx/wordhint/pkg/constraint"
	"github.com/bastiangx/wordhint/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for hint requests
type Server struct {
	hinter       suggest.IHinter
	config       *config.Config
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	logger       *log.Logger
	requestCount int
}

// NewServer creates a new hint server using stdin/stdout for IPC
func NewServer(hinter suggest.IHinter, cfg *config.Config) *Server {
	return NewServerWithIO(hinter, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a hint server reading requests from r and
// writing replies to w.
func NewServerWithIO(hinter suggest.IHinter, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		hinter:  hinter,
		config:  cfg,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
		logger:  logger.New("ipc"),
	}
}

// Start processes requests until the input is closed.
func (s *Server) Start() error {
	s.logger.Debug("Starting server")

	for {
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Input closed", "requests", s.requestCount)
				return nil
			}
			s.logger.Errorf("Reading request: %v", err)
			return fmt.Errorf("failed to read request: %w", err)
		}
		s.requestCount++

		var req Request
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			s.logger.Warnf("Malformed request: %v", err)
			s.sendError("", "malformed request", 400)
			continue
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	switch req.Action {
	case "", ActionHint:
		s.handleHint(req)
	case ActionInfo:
		s.handleInfo(req)
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), 400)
	}
}

// handleHint validates the request, runs it through the hinter and sends
// the ranked candidates back.
func (s *Server) handleHint(req Request) {
	if len(req.Guesses) > s.config.Server.MaxGuesses {
		s.sendError(req.ID, fmt.Sprintf("too many guesses: %d (max %d)", len(req.Guesses), s.config.Server.MaxGuesses), 400)
		return
	}

	start := time.Now()
	suggestions, err := s.hinter.Suggest(req.Guesses, s.limit(req.Limit))
	if err != nil {
		code := 500
		if errors.Is(err, constraint.ErrInvalidInput) {
			code = 400
		}
		s.logger.Debug("Rejected request", "id", req.ID, "err", err)
		s.sendError(req.ID, err.Error(), code)
		return
	}
	elapsed := time.Since(start)

	s.send(HintResponse{
		ID:          req.ID,
		Suggestions: toHintSuggestions(suggestions),
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleInfo(req Request) {
	stats := s.hinter.Stats()
	s.send(InfoResponse{
		ID:          req.ID,
		Words:       stats["totalWords"],
		GuessLength: stats["guessLength"],
		Starters:    toHintSuggestions(s.hinter.Starters(s.limit(req.Limit))),
	})
}

// limit applies the CLI default and the server maximum.
func (s *Server) limit(requested int) int {
	if requested < 1 {
		requested = s.config.CLI.Limit
	}
	if requested > s.config.Server.MaxLimit {
		requested = s.config.Server.MaxLimit
	}
	return requested
}

func (s *Server) send(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(HintError{ID: id, Error: message, Code: code})
}

func toHintSuggestions(suggestions []suggest.Suggestion) []HintSuggestion {
	result := make([]HintSuggestion, len(suggestions))
	for i, sg := range suggestions {
		result[i] = HintSuggestion{Word: sg.Word, Rank: sg.Rank, Weight: sg.Weight}
	}
	return result
}
