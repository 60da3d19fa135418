package nhl

import (
	"bytes"
	"errors"
	"fmt"
)

// The scoreboard feed is not pure JSON: the payload arrives wrapped in a
// call to a fixed-name JavaScript function, loadScoreboard({...}).
const (
	scoreboardWrapperPrefix = "loadScoreboard("
	scoreboardWrapperSuffix = ")"
)

var errEmptyScoreboard = errors.New("empty scoreboard body")

// unwrapScoreboard strips the JSONP wrapper and returns the inner JSON
// payload. Bodies without the expected wrapper are rejected rather than
// guessed at.
func unwrapScoreboard(body []byte) ([]byte, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, errEmptyScoreboard
	}

	if !bytes.HasPrefix(body, []byte(scoreboardWrapperPrefix)) {
		return nil, fmt.Errorf("scoreboard body missing %q wrapper", scoreboardWrapperPrefix)
	}
	if !bytes.HasSuffix(body, []byte(scoreboardWrapperSuffix)) {
		return nil, fmt.Errorf("scoreboard body missing closing %q", scoreboardWrapperSuffix)
	}

	inner := body[len(scoreboardWrapperPrefix) : len(body)-len(scoreboardWrapperSuffix)]
	if len(bytes.TrimSpace(inner)) == 0 {
		return nil, errEmptyScoreboard
	}

	return inner, nil
}
