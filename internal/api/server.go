// Package api exposes the tokenizer over a small REST surface: tokenize,
// encode, and decode against a vocabulary fixed at startup.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"github.com/wordpiece-go/wordpiece/pkg/wordpiece"
)

type Server struct {
	tok *wordpiece.Tokenizer
}

func NewServer(tok *wordpiece.Tokenizer) *Server {
	return &Server{tok: tok}
}

func (s *Server) Register(e *echo.Echo) {
	e.POST("/v1/tokenize", s.handleTokenize)
	e.POST("/v1/encode", s.handleEncode)
	e.POST("/v1/decode", s.handleDecode)
	e.GET("/v1/vocab", s.handleVocab)
	e.GET("/healthz", s.handleHealth)
}

type textRequest struct {
	Text string `json:"text"`
}

type idsRequest struct {
	IDs []int `json:"ids"`
}

type tokenizeResponse struct {
	ID     string   `json:"id"`
	Tokens []string `json:"tokens"`
	Count  int      `json:"count"`
}

type encodeResponse struct {
	ID    string `json:"id"`
	IDs   []int  `json:"ids"`
	Count int    `json:"count"`
}

type decodeResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type vocabResponse struct {
	Size int `json:"size"`
}

func (s *Server) handleTokenize(c *echo.Context) error {
	req, err := decodeJSON[textRequest](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	tokens := s.tok.Tokenize(req.Text)
	if tokens == nil {
		tokens = []string{}
	}
	return c.JSON(http.StatusOK, tokenizeResponse{
		ID:     "tok-" + uuid.NewString(),
		Tokens: tokens,
		Count:  len(tokens),
	})
}

func (s *Server) handleEncode(c *echo.Context) error {
	req, err := decodeJSON[textRequest](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	ids, err := s.tok.Encode(req.Text)
	if err != nil {
		return writeError(c, http.StatusInternalServerError, "server_error", err.Error())
	}
	return c.JSON(http.StatusOK, encodeResponse{
		ID:    "tok-" + uuid.NewString(),
		IDs:   ids,
		Count: len(ids),
	})
}

func (s *Server) handleDecode(c *echo.Context) error {
	req, err := decodeJSON[idsRequest](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	text, err := s.tok.Decode(req.IDs)
	if err != nil {
		if errors.Is(err, wordpiece.ErrUnknownTokenID) {
			return writeBadRequest(c, err.Error())
		}
		return writeError(c, http.StatusInternalServerError, "server_error", err.Error())
	}
	return c.JSON(http.StatusOK, decodeResponse{
		ID:   "tok-" + uuid.NewString(),
		Text: text,
	})
}

func (s *Server) handleVocab(c *echo.Context) error {
	return c.JSON(http.StatusOK, vocabResponse{Size: s.tok.Vocab().Size()})
}

func (s *Server) handleHealth(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func decodeJSON[T any](r io.Reader) (T, error) {
	var out T
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}
