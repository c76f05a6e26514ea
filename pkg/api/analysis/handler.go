// Package analysis exposes the assessment pipeline over HTTP.
package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"finhealth/pkg/core/analysis"
	"finhealth/pkg/core/benchmark"
	"finhealth/pkg/core/forecast"
	"finhealth/pkg/core/ingest"
	"finhealth/pkg/core/metrics"
	"finhealth/pkg/core/statement"
	"finhealth/pkg/core/store"
	"finhealth/pkg/models"
)

// performanceLabels maps the comparator's band keys to the English display
// text sent to clients.
var performanceLabels = map[benchmark.Band]string{
	benchmark.BandExcellent:    "Excellent - Top 20% in industry",
	benchmark.BandAboveAverage: "Above Average - Top 40% in industry",
	benchmark.BandAverage:      "Average - Middle 20% in industry",
	benchmark.BandBelowAverage: "Below Average - Bottom 40% in industry",
	benchmark.BandPoor:         "Poor - Bottom 20% in industry",
}

// PerformanceLabel returns the English text for a performance band.
func PerformanceLabel(b benchmark.Band) string {
	if label, ok := performanceLabels[b]; ok {
		return label
	}
	return string(b)
}

type AnalyzeRequest struct {
	Profile        models.BusinessProfile `json:"business_profile"`
	Statement      *statement.Statement   `json:"financial_statement"`
	ForecastMonths int                    `json:"forecast_months"`
}

type AnalyzeResponse struct {
	*analysis.Assessment
	OverallPerformance string `json:"overall_performance_text"`
	AssessmentID       string `json:"assessment_id,omitempty"`
}

// setCORS applies the permissive CORS policy shared by all endpoints and
// answers preflight requests. Returns true when the request is done.
func setCORS(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// horizonOrDefault validates the requested forecast length.
func horizonOrDefault(months int) (int, error) {
	if months == 0 {
		return analysis.DefaultHorizon, nil
	}
	if months < 1 {
		return 0, fmt.Errorf("forecast_months must be at least 1, got %d", months)
	}
	return months, nil
}

// HandleAnalyze runs the full pipeline on a JSON statement.
func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if setCORS(w, r) {
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Statement == nil {
		http.Error(w, "financial_statement is required", http.StatusBadRequest)
		return
	}

	months, err := horizonOrDefault(req.ForecastMonths)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fmt.Printf("[ANALYZE] Request: %s (%s), horizon %d months\n", req.Profile.Name, req.Profile.Industry, months)

	a, err := analysis.Analyze(req.Profile, req.Statement, months)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	respond(w, r, a)
}

// HandleUpload accepts a multipart CSV or HTML statement plus profile form
// fields and runs the full pipeline on the extracted grid.
func HandleUpload(w http.ResponseWriter, r *http.Request) {
	if setCORS(w, r) {
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, fmt.Sprintf("invalid multipart form: %v", err), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	months := analysis.DefaultHorizon
	if v := r.FormValue("forecast_months"); v != "" {
		months, err = strconv.Atoi(v)
		if err != nil || months < 1 {
			http.Error(w, fmt.Sprintf("invalid forecast_months: %q", v), http.StatusBadRequest)
			return
		}
	}

	profile := models.BusinessProfile{
		Name:         r.FormValue("business_name"),
		BusinessType: models.BusinessType(r.FormValue("business_type")),
		Industry:     models.Industry(r.FormValue("industry")),
	}

	fmt.Printf("[UPLOAD] %s (%d bytes) for %s\n", header.Filename, header.Size, profile.Name)

	grid, err := ingest.Read(file, header.Filename)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := analysis.AnalyzeGrid(profile, grid, months)
	if err != nil {
		var missing *statement.MissingDataError
		if errors.As(err, &missing) {
			http.Error(w, missing.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	respond(w, r, a)
}

type ForecastRequest struct {
	Statement *statement.Statement `json:"financial_statement"`
	Industry  string               `json:"industry"`
	Months    int                  `json:"months"`
}

// HandleForecast runs only the cash-flow projection.
func HandleForecast(w http.ResponseWriter, r *http.Request) {
	if setCORS(w, r) {
		return
	}

	var req ForecastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Statement == nil {
		http.Error(w, "financial_statement is required", http.StatusBadRequest)
		return
	}

	months, err := horizonOrDefault(req.Months)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	bundle := metrics.Calculate(req.Statement)
	fc, err := forecast.Project(req.Statement, bundle, models.ParseIndustry(req.Industry), months)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	writeJSON(w, fc)
}

type BenchmarkRequest struct {
	Statement *statement.Statement `json:"financial_statement"`
	Industry  string               `json:"industry"`
}

type BenchmarkResponse struct {
	*benchmark.Comparison
	OverallPerformance string `json:"overall_performance_text"`
}

// HandleBenchmark computes metrics and compares them against the industry.
func HandleBenchmark(w http.ResponseWriter, r *http.Request) {
	if setCORS(w, r) {
		return
	}

	var req BenchmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Statement == nil {
		http.Error(w, "financial_statement is required", http.StatusBadRequest)
		return
	}

	cmp := benchmark.Compare(metrics.Calculate(req.Statement), models.ParseIndustry(req.Industry))
	writeJSON(w, BenchmarkResponse{Comparison: cmp, OverallPerformance: PerformanceLabel(cmp.Overall)})
}

// HandleHealth is the liveness endpoint.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// respond serializes the assessment, persisting it first when a database is
// configured.
func respond(w http.ResponseWriter, r *http.Request, a *analysis.Assessment) {
	resp := AnalyzeResponse{
		Assessment:         a,
		OverallPerformance: PerformanceLabel(a.Benchmark.Overall),
	}

	if store.GetPool() != nil {
		id, err := store.NewAssessmentRepo().Save(r.Context(), a)
		if err != nil {
			fmt.Printf("[WARNING] Failed to persist assessment: %v\n", err)
		} else {
			resp.AssessmentID = id
		}
	}

	fmt.Printf("[ANALYZE] %s: score %d, risk %s\n", a.Profile.Name, a.HealthScore, a.RiskLevel)
	writeJSON(w, resp)
}
