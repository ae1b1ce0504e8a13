//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"maplist-generator/internal/maplist"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

// handler serves a Function URL. The body is a tournament export plus
// "matchId" and an optional "seed".
type handler struct {
	cfg config
	log zerolog.Logger
}

func (h handler) handle(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	if !gjson.Valid(body) {
		return errResp(400, "invalid JSON")
	}
	matchID := gjson.Get(body, "matchId")
	if matchID.Type != gjson.Number || matchID.Int() == 0 {
		return errResp(400, "missing matchId")
	}

	data, err := parseTournament(body)
	if err != nil {
		return errResp(400, err.Error())
	}

	seed := gjson.Get(body, "seed").String()
	if seed == "" {
		seed = uuid.NewString()
	}

	r, err := runMatch(data, int(matchID.Int()), seed, h.cfg.options(h.log)...)
	switch {
	case errors.Is(err, errUnknownMatch):
		return errResp(404, fmt.Sprintf("matchId %d not found", matchID.Int()))
	case errors.Is(err, maplist.ErrInvalidRequest):
		return errResp(400, err.Error())
	case errors.Is(err, maplist.ErrNoMaplist):
		return errResp(422, err.Error())
	case err != nil:
		h.log.Error().Err(err).Int64("match", matchID.Int()).Msg("generation failed")
		return errResp(500, "internal error")
	}

	h.log.Info().Int("match", r.MatchID).Str("seed", r.Seed).Int64("ms", r.TimeMs).Msg("map list generated")
	respJSON, err := json.Marshal(r)
	if err != nil {
		return errResp(500, "failed to encode response")
	}
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	log := zerolog.New(os.Stdout).Level(cfg.level(false)).With().Timestamp().Logger()
	lambda.Start(handler{cfg: cfg, log: log}.handle)
}
