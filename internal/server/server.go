// Package server exposes the quote calculation over a small HTTP API. The
// calculation engine stays pure; this layer only decodes payloads, runs the
// pipeline, and encodes results.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dealerdesk/quote-engine/internal/config"
	"github.com/dealerdesk/quote-engine/internal/engine"
	"github.com/dealerdesk/quote-engine/internal/optimizer"
	"github.com/dealerdesk/quote-engine/pkg/constants"
	"github.com/dealerdesk/quote-engine/pkg/output"
	"github.com/dealerdesk/quote-engine/pkg/tax"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger         *zap.Logger
	maxRequestSize int64
	version        string
}

type quoteOptions struct {
	Solve bool
}

// NewHandler constructs the HTTP handler that serves the quote API.
func NewHandler(logger *zap.Logger, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxRequestSize: maxRequestSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Quote API endpoint (JSON payload or raw YAML quote file)
	mux.HandleFunc("/api/quote", h.handleQuote)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type quoteResponse struct {
	Quotes   []quoteRow      `json:"quotes"`
	CSV      string          `json:"csv"`
	Solver   []solverSummary `json:"solver,omitempty"`
	Warnings []string        `json:"warnings,omitempty"`
	Duration string          `json:"duration"`
}

type quoteRow struct {
	Name       string      `json:"name"`
	Vehicle    string      `json:"vehicle,omitempty"`
	Term       int         `json:"term"`
	Frequency  string      `json:"frequency"`
	Option1    *optionBody `json:"option1,omitempty"`
	Option2    *optionBody `json:"option2,omitempty"`
	BestOption string      `json:"bestOption,omitempty"`
	Savings    float64     `json:"savings"`
}

type optionBody struct {
	Rate           float64 `json:"rate"`
	TaxableBase    float64 `json:"taxableBase"`
	Tax            float64 `json:"tax"`
	GrossPrincipal float64 `json:"grossPrincipal"`
	Principal      float64 `json:"principal"`
	Monthly        float64 `json:"monthly"`
	Biweekly       float64 `json:"biweekly"`
	Weekly         float64 `json:"weekly"`
	TotalCost      float64 `json:"totalCost"`
	Payment        float64 `json:"payment"`
}

type solverSummary struct {
	Quote           string  `json:"quote"`
	Option          string  `json:"option"`
	TargetPayment   float64 `json:"targetPayment"`
	AchievedPayment float64 `json:"achievedPayment"`
	CashDown        float64 `json:"cashDown"`
	OriginalDown    float64 `json:"originalDown"`
	Iterations      int     `json:"iterations"`
	Converged       bool    `json:"converged"`
}

func (h *handler) handleQuote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize))
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to read request: %v", err))
		return
	}

	configBytes, options, err := extractPayload(r.Header.Get("Content-Type"), body)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.runQuotes(w, configBytes, options, start)
}

// extractPayload accepts either a raw YAML quote file or a JSON object of the
// form {"config": {...}, "options": {...}}.
func extractPayload(contentType string, body []byte) ([]byte, quoteOptions, error) {
	options := quoteOptions{}

	if strings.Contains(contentType, "yaml") {
		return body, options, nil
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(body), &payload); err != nil {
		return nil, options, fmt.Errorf("failed to decode payload: %v", err)
	}

	configPayload := payload
	if rawConfig, ok := payload["config"]; ok {
		cfgMap, ok := rawConfig.(map[string]interface{})
		if !ok {
			return nil, options, fmt.Errorf("invalid config payload: expected object")
		}
		configPayload = cfgMap
	}

	if rawOptions, ok := payload["options"]; ok {
		optsMap, ok := rawOptions.(map[string]interface{})
		if !ok {
			return nil, options, fmt.Errorf("invalid options payload: expected object")
		}
		if solveVal, ok := optsMap["solve"].(bool); ok {
			options.Solve = solveVal
		}
	}

	configBytes, err := yaml.Marshal(configPayload)
	if err != nil {
		return nil, options, fmt.Errorf("failed to encode configuration: %v", err)
	}
	return configBytes, options, nil
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) runQuotes(w http.ResponseWriter, configBytes []byte, options quoteOptions, start time.Time) {
	const op = "server.handleQuote"

	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(configBytes))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	warnings := cfg.ValidateConfiguration()
	calc := engine.NewCalculator(h.logger, tax.NewEngine(cfg.TaxRate))

	outcomes, err := cfg.ComputeQuotes(h.logger, calc)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to compute quotes: %v", err))
		return
	}

	var solver []solverSummary
	if options.Solve {
		runner, err := optimizer.NewRunner(h.logger, cfg, calc)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to initialize solver: %v", err))
			return
		}
		result, err := runner.Run()
		if err != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("solver execution failed: %v", err))
			return
		}
		solver = buildSolverSummaries(result)
	}

	elapsed := time.Since(start)

	response := quoteResponse{
		Quotes:   buildRows(outcomes),
		CSV:      output.CsvString(outcomes),
		Solver:   solver,
		Warnings: warnings,
		Duration: elapsed.String(),
	}

	h.logger.Info("quotes computed",
		zap.String("op", op),
		zap.Int("quotes", len(response.Quotes)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func buildRows(outcomes []engine.QuoteOutcome) []quoteRow {
	rows := make([]quoteRow, 0, len(outcomes))
	for _, outcome := range outcomes {
		row := quoteRow{
			Name:      outcome.Name,
			Vehicle:   outcome.Description,
			Term:      outcome.TermMonths,
			Frequency: outcome.Frequency,
		}
		if outcome.Result != nil {
			row.Option1 = buildOptionBody(&outcome.Result.Option1, outcome.Frequency)
			if outcome.Result.Option2 != nil {
				row.Option2 = buildOptionBody(outcome.Result.Option2, outcome.Frequency)
			}
			row.BestOption = outcome.Result.BestOption
			row.Savings = outcome.Result.Savings
		}
		rows = append(rows, row)
	}
	return rows
}

func buildOptionBody(quote *engine.OptionQuote, frequency string) *optionBody {
	return &optionBody{
		Rate:           quote.Rate,
		TaxableBase:    quote.TaxableBase,
		Tax:            quote.Tax,
		GrossPrincipal: quote.GrossPrincipal,
		Principal:      quote.Principal,
		Monthly:        quote.Monthly,
		Biweekly:       quote.Biweekly,
		Weekly:         quote.Weekly,
		TotalCost:      quote.TotalCost,
		Payment:        quote.PaymentFor(frequency),
	}
}

func buildSolverSummaries(result *optimizer.Result) []solverSummary {
	if result == nil || result.Empty() {
		return nil
	}
	summaries := make([]solverSummary, 0, len(result.Summaries))
	for _, summary := range result.Summaries {
		summaries = append(summaries, solverSummary{
			Quote:           summary.QuoteName,
			Option:          summary.Option,
			TargetPayment:   summary.TargetPayment,
			AchievedPayment: summary.AchievedPayment,
			CashDown:        summary.Value,
			OriginalDown:    summary.Original,
			Iterations:      summary.Iterations,
			Converged:       summary.Converged,
		})
	}
	return summaries
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.logger.Error("quote request failed",
		zap.String("op", "server.handleQuote"),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
