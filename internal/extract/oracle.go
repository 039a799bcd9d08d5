package extract

import (
	"context"
	"encoding/json"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/campusdesk/meritbot/internal/merit"
)

// Generator is the text-completion surface the oracle needs from an LLM
// client.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

var jsonBlockPattern = regexp.MustCompile(`(?s)\{.*\}`)

// Oracle asks an LLM to pull slot values out of a message. Its output is
// advisory: any failure (transport, malformed reply, missing fields) is
// reported as a miss and the cheap extractor covers the gap.
type Oracle struct {
	llm    Generator
	index  *merit.Index
	logger *slog.Logger
}

func NewOracle(llm Generator, index *merit.Index, logger *slog.Logger) *Oracle {
	return &Oracle{llm: llm, index: index, logger: logger}
}

// oracleResponse tolerates the loosely-typed JSON the model returns: fields
// may be absent, null, or (for year) a number or a quoted number.
type oracleResponse struct {
	University string   `json:"university"`
	Campus     string   `json:"campus"`
	Department string   `json:"department"`
	Program    string   `json:"program"`
	Year       flexYear `json:"year"`
}

type flexYear int

func (y *flexYear) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*y = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		*y = 0
		return nil
	}
	*y = flexYear(n)
	return nil
}

// Extract returns the slots the oracle identified. ok is false when the call
// failed or produced nothing usable.
func (o *Oracle) Extract(ctx context.Context, message string) (Slots, bool) {
	prompt := buildOraclePrompt(o.index, message)

	raw, err := o.llm.Generate(ctx, prompt)
	if err != nil {
		o.logger.Debug("oracle extraction failed", "error", err)
		return Slots{}, false
	}

	block := jsonBlockPattern.FindString(raw)
	if block == "" {
		o.logger.Debug("oracle reply had no JSON block", "raw_len", len(raw))
		return Slots{}, false
	}

	var resp oracleResponse
	if err := json.Unmarshal([]byte(block), &resp); err != nil {
		o.logger.Debug("oracle reply unparsable", "error", err)
		return Slots{}, false
	}

	return Slots{
		University: strings.TrimSpace(resp.University),
		Campus:     strings.TrimSpace(resp.Campus),
		Department: strings.TrimSpace(resp.Department),
		Program:    strings.TrimSpace(resp.Program),
		Year:       int(resp.Year),
	}, true
}
