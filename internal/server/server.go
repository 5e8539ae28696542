package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/Glennk62/lisa-tach/internal/config"
	"github.com/Glennk62/lisa-tach/internal/export"
	"github.com/Glennk62/lisa-tach/internal/forecast"
	"github.com/Glennk62/lisa-tach/pkg/constants"
	"github.com/Glennk62/lisa-tach/pkg/mathutil"
	"github.com/Glennk62/lisa-tach/pkg/output"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type handler struct {
	logger         *zap.Logger
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the web UI and forecast API.
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

	// Forecast API endpoint (JSON assumptions from the form)
	mux.HandleFunc("/api/forecast", h.handleForecast)

	// Spreadsheet download endpoint
	mux.HandleFunc("/api/export", h.handleExport)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	fileServer := http.FileServer(http.FS(sub))
	mux.Handle("/", fileServer)

	return mux
}

type forecastResponse struct {
	Assumptions forecast.Assumptions `json:"assumptions"`
	Headers     []string             `json:"headers"`
	Rows        []tableRow           `json:"rows"`
	CSV         string               `json:"csv"`
	Warnings    []string             `json:"warnings,omitempty"`
	Duration    string               `json:"duration"`
}

// tableRow is the JSON projection of a forecast row. Populations are
// truncated for display; the per-unit ratios are omitted when undefined.
type tableRow struct {
	Year                int      `json:"year"`
	Customers           int64    `json:"customers"`
	Vehicles            int64    `json:"vehicles"`
	Users               int64    `json:"users"`
	Compute             float64  `json:"compute"`
	TransactionalDB     float64  `json:"transactionalDb"`
	Analytics           float64  `json:"analytics"`
	Streaming           float64  `json:"streaming"`
	Monitoring          float64  `json:"monitoring"`
	Auth                float64  `json:"auth"`
	SupportTools        float64  `json:"supportTools"`
	SupportStaff        float64  `json:"supportStaff"`
	DevOpsStaff         float64  `json:"devOpsStaff"`
	TotalInfrastructure float64  `json:"totalInfrastructure"`
	TotalStaff          float64  `json:"totalStaff"`
	GrandTotal          float64  `json:"grandTotal"`
	PerVehicle          *float64 `json:"perVehicle,omitempty"`
	PerUser             *float64 `json:"perUser,omitempty"`
	PerCustomer         *float64 `json:"perCustomer,omitempty"`
}

func (h *handler) handleForecast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	op := "server.handleForecast"

	assumptions, warnings, ok := h.decodeAssumptions(w, r, op)
	if !ok {
		return
	}

	table, err := forecast.Compute(h.logger, assumptions)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	elapsed := time.Since(start)
	response := forecastResponse{
		Assumptions: assumptions,
		Headers:     forecast.Headers,
		Rows:        buildRows(table),
		CSV:         output.CsvString(table),
		Warnings:    warnings,
		Duration:    elapsed.String(),
	}

	h.logger.Info("forecast computed",
		zap.String("op", op),
		zap.Int("rows", len(response.Rows)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	op := "server.handleExport"

	assumptions, _, ok := h.decodeAssumptions(w, r, op)
	if !ok {
		return
	}

	table, err := forecast.Compute(h.logger, assumptions)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, assumptions, table); err != nil {
		h.respondError(w, http.StatusInternalServerError,
			fmt.Sprintf("failed to build spreadsheet: %v", err), op)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", constants.DefaultExportFilename))
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn("failed to write spreadsheet response",
			zap.String("op", op),
			zap.Error(err),
		)
	}
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

// decodeAssumptions reads a JSON assumptions payload, fills absent fields
// from the defaults, and enforces the input ranges. On failure it writes the
// error response and returns ok=false.
func (h *handler) decodeAssumptions(w http.ResponseWriter, r *http.Request, op string) (forecast.Assumptions, []string, bool) {
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	assumptions := config.DefaultAssumptions()
	if err := json.NewDecoder(r.Body).Decode(&assumptions); err != nil && !errors.Is(err, io.EOF) {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), op)
			return forecast.Assumptions{}, nil, false
		}
		h.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("failed to decode assumptions: %v", err), op)
		return forecast.Assumptions{}, nil, false
	}

	cfg := config.Configuration{Assumptions: assumptions}
	warnings, err := cfg.ValidateConfiguration()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return forecast.Assumptions{}, nil, false
	}

	return assumptions, warnings, true
}

func buildRows(table forecast.Table) []tableRow {
	rows := make([]tableRow, 0, len(table))
	for _, row := range table {
		rows = append(rows, tableRow{
			Year:                row.Year,
			Customers:           mathutil.Truncate(row.Customers),
			Vehicles:            mathutil.Truncate(row.Vehicles),
			Users:               mathutil.Truncate(row.Users),
			Compute:             row.Compute,
			TransactionalDB:     row.TransactionalDB,
			Analytics:           row.Analytics,
			Streaming:           row.Streaming,
			Monitoring:          row.Monitoring,
			Auth:                row.Auth,
			SupportTools:        row.SupportTools,
			SupportStaff:        row.SupportStaff,
			DevOpsStaff:         row.DevOpsStaff,
			TotalInfrastructure: row.TotalInfrastructure,
			TotalStaff:          row.TotalStaff,
			GrandTotal:          row.GrandTotal,
			PerVehicle:          ratioPtr(row.PerVehicle),
			PerUser:             ratioPtr(row.PerUser),
			PerCustomer:         ratioPtr(row.PerCustomer),
		})
	}
	return rows
}

func ratioPtr(ratio forecast.UnitCost) *float64 {
	if !ratio.Defined {
		return nil
	}
	v := ratio.Value
	return &v
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("forecast request failed",
		zap.String("op", op),
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
