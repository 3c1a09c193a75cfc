package server

import (
	"errors"
	"net/http"
	"time"

	"TradeCompass/internal/journal"
	"TradeCompass/internal/model"
	"TradeCompass/internal/notifier"
	"TradeCompass/internal/risk"
	"TradeCompass/internal/scanner"
	"TradeCompass/internal/strategy"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// RiskDefaults fills in plan fields the client leaves unset. Fee rates
// are fractions of transaction value (0.0015 = 0.15%).
type RiskDefaults struct {
	Capital     float64
	RiskPercent float64
	BuyFeeRate  float64
	SellFeeRate float64
}

// Handler wires the analysis engine, scanner, and journal to HTTP routes.
type Handler struct {
	Analyzer *strategy.Analyzer
	Scanner  *scanner.Scanner
	Store    *journal.Store
	Metrics  *Metrics
	Notifier notifier.Notifier
	Defaults RiskDefaults

	validate *validator.Validate
}

// NewHandler creates the API handler.
func NewHandler(an *strategy.Analyzer, sc *scanner.Scanner, st *journal.Store, m *Metrics, n notifier.Notifier, d RiskDefaults) *Handler {
	return &Handler{
		Analyzer: an,
		Scanner:  sc,
		Store:    st,
		Metrics:  m,
		Notifier: n,
		Defaults: d,
		validate: validator.New(),
	}
}

// RegisterRoutes mounts all API routes on the Echo instance.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	g := e.Group("/api")
	g.POST("/analyze", h.Analyze)
	g.POST("/scan", h.Scan)
	g.GET("/journal", h.ListTrades)
	g.POST("/journal", h.SaveTrade)
	g.POST("/journal/:id/close", h.CloseTrade)
	g.GET("/journal/summary", h.Summary)
	g.GET("/journal/equity", h.Equity)
}

// Health reports liveness.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type planRequest struct {
	Capital     float64 `json:"capital" validate:"gte=0"`
	EntryPrice  float64 `json:"entry_price" validate:"gt=0"`
	StopLoss    float64 `json:"stop_loss" validate:"gt=0"`
	TakeProfit  float64 `json:"take_profit" validate:"gt=0"`
	RiskPercent float64 `json:"risk_percent" validate:"gte=0,lte=100"`
}

type analyzeRequest struct {
	Symbol      string          `json:"symbol" validate:"required,min=2,max=10"`
	Mode        string          `json:"mode" validate:"required"`
	ForeignFlow string          `json:"foreign_flow"`
	Manual      map[string]bool `json:"manual"`
	Plan        *planRequest    `json:"plan"`
	// Notify pushes the analysis report to the configured channel.
	Notify bool `json:"notify"`
}

type analyzeResponse struct {
	Symbol    string                   `json:"symbol"`
	Mode      string                   `json:"mode"`
	Snapshot  *model.IndicatorSnapshot `json:"snapshot"`
	Flags     model.PatternFlags       `json:"flags"`
	Checklist model.ChecklistResult    `json:"checklist"`
	Decision  model.Decision           `json:"decision"`
	Plan      *risk.Plan               `json:"plan,omitempty"`
}

// Analyze runs the full single-symbol pipeline: indicators, patterns,
// checklist, optional position plan, and the final verdict.
func (h *Handler) Analyze(c echo.Context) error {
	start := time.Now()

	req := &analyzeRequest{}
	if err := h.bind(c, req); err != nil {
		return badRequest(c, err)
	}
	mode, err := strategy.ParseMode(req.Mode)
	if err != nil {
		return badRequest(c, err)
	}
	flow, err := model.ParseForeignFlow(req.ForeignFlow)
	if err != nil {
		return badRequest(c, err)
	}

	analysis, err := h.Analyzer.Analyze(c.Request().Context(), req.Symbol, mode, req.Manual)
	if err != nil {
		return appError(c, err)
	}

	var plan *risk.Plan
	rrr := 0.0
	if req.Plan != nil {
		setup := risk.Setup{
			Ticker:      req.Symbol,
			Capital:     orDefault(req.Plan.Capital, h.Defaults.Capital),
			EntryPrice:  req.Plan.EntryPrice,
			StopLoss:    req.Plan.StopLoss,
			TakeProfit:  req.Plan.TakeProfit,
			RiskPercent: orDefault(req.Plan.RiskPercent, h.Defaults.RiskPercent),
			BuyFeeRate:  h.Defaults.BuyFeeRate,
			SellFeeRate: h.Defaults.SellFeeRate,
		}
		plan, err = risk.BuildPlan(setup)
		if err != nil {
			return badRequest(c, err)
		}
		rrr = plan.RRR
	}

	decision := strategy.Decide(rrr, analysis.Checklist, flow)

	if req.Notify {
		report := notifier.FormatAnalysisReport(analysis.Symbol, analysis.Snapshot, analysis.Checklist, decision)
		if err := h.Notifier.Send(c.Request().Context(), report); err != nil {
			log.Warn().Str("symbol", analysis.Symbol).Err(err).Msg("analysis alert not delivered")
		}
	}

	h.Metrics.ObserveAnalyze(string(mode), time.Since(start).Seconds())
	return c.JSON(http.StatusOK, analyzeResponse{
		Symbol:    analysis.Symbol,
		Mode:      string(mode),
		Snapshot:  analysis.Snapshot,
		Flags:     analysis.Flags,
		Checklist: analysis.Checklist,
		Decision:  decision,
		Plan:      plan,
	})
}

type scanRequest struct {
	Mode    string   `json:"mode" validate:"required"`
	Symbols []string `json:"symbols" validate:"required,min=1"`
}

// Scan runs a batch scan over the requested symbols.
func (h *Handler) Scan(c echo.Context) error {
	req := &scanRequest{}
	if err := h.bind(c, req); err != nil {
		return badRequest(c, err)
	}
	mode, err := model.ParseScanMode(req.Mode)
	if err != nil {
		return badRequest(c, err)
	}

	results, err := h.Scanner.Scan(c.Request().Context(), mode, req.Symbols, nil)
	if err != nil {
		return appError(c, err)
	}

	failures := 0
	for _, r := range results {
		if r.Failed {
			failures++
		}
	}
	h.Metrics.CountScan(string(mode), failures)
	return c.JSON(http.StatusOK, map[string]any{"mode": mode, "results": results})
}

// ListTrades returns the full journal, oldest first.
func (h *Handler) ListTrades(c echo.Context) error {
	trades, err := h.Store.List()
	if err != nil {
		return appError(c, err)
	}
	return c.JSON(http.StatusOK, trades)
}

// SaveTrade inserts a new journal record.
func (h *Handler) SaveTrade(c echo.Context) error {
	rec := &model.TradeRecord{}
	if err := c.Bind(rec); err != nil {
		return badRequest(c, err)
	}
	if rec.Ticker == "" {
		return badRequest(c, errors.New("ticker is required"))
	}
	id, err := h.Store.Save(rec)
	if err != nil {
		return appError(c, err)
	}
	h.Metrics.CountTradeSaved()
	return c.JSON(http.StatusCreated, map[string]int64{"id": id})
}

type closeRequest struct {
	ExitPrice float64 `json:"exit_price" validate:"gt=0"`
}

// CloseTrade records the exit of an open trade.
func (h *Handler) CloseTrade(c echo.Context) error {
	var id int64
	if err := echo.PathParamsBinder(c).Int64("id", &id).BindError(); err != nil {
		return badRequest(c, err)
	}
	req := &closeRequest{}
	if err := h.bind(c, req); err != nil {
		return badRequest(c, err)
	}

	rec, err := h.Store.Close(id, req.ExitPrice)
	if err != nil {
		return appError(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

// Summary aggregates closed trades into performance statistics.
func (h *Handler) Summary(c echo.Context) error {
	trades, err := h.Store.List()
	if err != nil {
		return appError(c, err)
	}
	sum := journal.Summarize(trades)
	if sum == nil {
		return c.JSON(http.StatusOK, map[string]any{"total_trades": 0})
	}
	return c.JSON(http.StatusOK, sum)
}

// Equity returns the cumulative realized-PnL curve.
func (h *Handler) Equity(c echo.Context) error {
	trades, err := h.Store.List()
	if err != nil {
		return appError(c, err)
	}
	return c.JSON(http.StatusOK, journal.EquityCurve(trades))
}

func (h *Handler) bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return h.validate.Struct(req)
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
}

func appError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrDataUnavailable), errors.Is(err, model.ErrAmbiguousData):
		status = http.StatusBadGateway
	}
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}
