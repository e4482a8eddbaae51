package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	stdimage "image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"gamedevai/internal/domain"
	"gamedevai/internal/middleware"
	"gamedevai/internal/providers/image"
	"gamedevai/internal/sqlinline"
	"gamedevai/internal/synth"
	"gamedevai/pkg/zip"
)

const (
	maxPromptLength  = 4000
	maxBatchSize     = 5
	defaultDims      = "256x256"
	defaultListLimit = 10
)

type assetGenerateRequest struct {
	Prompt          string `json:"prompt"`
	AssetType       string `json:"asset_type"`
	Style           string `json:"style"`
	Dimensions      string `json:"dimensions"`
	ModelPreference string `json:"model_preference"`
	Quality         string `json:"quality"`
}

func (req *assetGenerateRequest) normalize() {
	req.Prompt = strings.TrimSpace(req.Prompt)
	if req.AssetType == "" {
		req.AssetType = string(synth.CategoryTexture)
	}
	if req.Style == "" {
		req.Style = "realistic"
	}
	if req.Dimensions == "" {
		req.Dimensions = defaultDims
	}
	if req.Quality == "" {
		req.Quality = "standard"
	}
}

func (req *assetGenerateRequest) validate() (synth.Category, int, int, string) {
	if req.Prompt == "" {
		return "", 0, 0, "Prompt cannot be empty"
	}
	if len(req.Prompt) > maxPromptLength {
		return "", 0, 0, fmt.Sprintf("Prompt too long (max %d characters)", maxPromptLength)
	}
	category, err := synth.ParseCategory(req.AssetType)
	if err != nil {
		return "", 0, 0, fmt.Sprintf("Unsupported asset type %q", req.AssetType)
	}
	width, height, err := synth.ParseDimensions(req.Dimensions)
	if err != nil {
		return "", 0, 0, fmt.Sprintf("Invalid dimensions %q, expected WxH", req.Dimensions)
	}
	return category, width, height, ""
}

// GenerateAsset routes a single generation request to a backend, persists the
// result, and returns the encoded image with its metadata.
func (a *App) GenerateAsset(w http.ResponseWriter, r *http.Request) {
	var req assetGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	req.normalize()
	category, width, height, problem := req.validate()
	if problem != "" {
		a.error(w, http.StatusBadRequest, "bad_request", problem)
		return
	}

	result, err := a.generateOne(r.Context(), req, category, width, height, clientCountry(a, r))
	if err != nil {
		a.error(w, http.StatusInternalServerError, "generation_failed", err.Error())
		return
	}
	a.json(w, http.StatusOK, result)
}

// GenerateBatch processes up to maxBatchSize independent generation requests
// in order. Item failures are reported inline and do not abort the batch.
func (a *App) GenerateBatch(w http.ResponseWriter, r *http.Request) {
	var reqs []assetGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if len(reqs) > maxBatchSize {
		a.error(w, http.StatusBadRequest, "bad_request", fmt.Sprintf("Batch size limited to %d requests", maxBatchSize))
		return
	}

	country := clientCountry(a, r)
	results := make([]map[string]any, 0, len(reqs))
	for i, req := range reqs {
		req.normalize()
		req.Prompt = fmt.Sprintf("%s (batch %d/%d)", req.Prompt, i+1, len(reqs))
		category, width, height, problem := req.validate()
		if problem != "" {
			results = append(results, map[string]any{
				"success":  false,
				"error":    problem,
				"metadata": map[string]any{"batch_index": i},
			})
			continue
		}
		result, err := a.generateOne(r.Context(), req, category, width, height, country)
		if err != nil {
			results = append(results, map[string]any{
				"success":  false,
				"error":    fmt.Sprintf("Batch item %d failed: %v", i+1, err),
				"metadata": map[string]any{"batch_index": i},
			})
			continue
		}
		result["metadata"].(map[string]any)["batch_index"] = i
		results = append(results, result)
	}
	a.json(w, http.StatusOK, map[string]any{
		"batch_results":   results,
		"total_processed": len(results),
	})
}

func (a *App) generateOne(ctx context.Context, req assetGenerateRequest, category synth.Category, width, height int, country string) (map[string]any, error) {
	start := a.now()
	preference := image.NormalizeBackend(req.ModelPreference, image.NormalizeBackend(a.Config.DefaultProvider, image.BackendDalle))
	generateReq := image.GenerateRequest{
		Prompt:    req.Prompt,
		Category:  string(category),
		Style:     req.Style,
		Width:     width,
		Height:    height,
		Quality:   req.Quality,
		RequestID: middleware.RequestIDFromContext(ctx),
	}

	generator := a.Images.Pick(preference)
	timeout := a.Config.ProviderTimeout
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	provCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	asset, err := generator.Generate(provCtx, generateReq)
	if err != nil && generator.Model() != image.ModelProcedural {
		a.Logger.Warn().Err(err).
			Str("model", generator.Model()).
			Msg("hosted backend failed, using procedural fallback")
		asset, err = a.Images.Pick(image.BackendProcedural).Generate(ctx, generateReq)
	}
	if err != nil {
		a.bumpDailyCounters(ctx, 1, 0, 0, 1, 0)
		return nil, err
	}

	id := domain.NewAssetID(req.Prompt, string(category), req.Style, a.now())
	storageKey, err := a.Store.Write(ctx, id+".png", asset.Data)
	if err != nil {
		a.bumpDailyCounters(ctx, 1, 0, 0, 1, 0)
		return nil, fmt.Errorf("persist asset: %w", err)
	}

	palette := paletteSummary(asset.Data)
	paletteJSON, _ := json.Marshal(palette)
	if _, err := a.SQL.Exec(ctx, sqlinline.QInsertAsset,
		id, req.Prompt, string(category), req.Style, req.Dimensions,
		asset.Model, storageKey, asset.MIME, int64(len(asset.Data)),
		asset.Width, asset.Height, paletteJSON, country,
	); err != nil {
		a.bumpDailyCounters(ctx, 1, 0, 0, 1, 0)
		return nil, fmt.Errorf("record asset: %w", err)
	}
	a.bumpDailyCounters(ctx, 1, 1, 1, 0, 0)

	metadata := map[string]any{
		"prompt":        req.Prompt,
		"asset_type":    string(category),
		"style":         req.Style,
		"dimensions":    req.Dimensions,
		"quality":       req.Quality,
		"color_palette": palette,
	}
	if country != "" {
		metadata["country"] = country
	}
	return map[string]any{
		"success":         true,
		"asset_id":        id,
		"model_used":      asset.Model,
		"prompt_used":     asset.PromptUsed,
		"asset_url":       strings.TrimRight(a.Config.AssetBaseURL, "/") + "/" + id + "/file",
		"image_base64":    base64.StdEncoding.EncodeToString(asset.Data),
		"generation_time": a.now().Sub(start).Seconds(),
		"metadata":        metadata,
	}, nil
}

// ListAssets returns the most recent generated assets.
func (a *App) ListAssets(w http.ResponseWriter, r *http.Request) {
	limit := queryLimit(r, defaultListLimit)
	rows, err := a.SQL.Query(r.Context(), sqlinline.QListAssets, limit)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load assets")
		return
	}
	defer rows.Close()

	items := make([]map[string]any, 0, limit)
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			continue
		}
		items = append(items, map[string]any{
			"asset_id":      asset.ID,
			"prompt":        asset.Prompt,
			"asset_type":    asset.Category,
			"style":         asset.Style,
			"dimensions":    asset.Dimensions,
			"model_used":    asset.Model,
			"mime":          asset.MIME,
			"bytes":         asset.Bytes,
			"width":         asset.Width,
			"height":        asset.Height,
			"color_palette": asset.ColorPalette,
			"country":       asset.Country,
			"created_at":    asset.CreatedAt,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"assets": items, "count": len(items)})
}

// AssetFile streams the stored image bytes for one asset.
func (a *App) AssetFile(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "id")
	if assetID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "asset id required")
		return
	}
	row := a.SQL.QueryRow(r.Context(), sqlinline.QSelectAssetByID, assetID)
	var id, storageKey, mime string
	if err := row.Scan(&id, &storageKey, &mime); err != nil {
		a.error(w, http.StatusNotFound, "not_found", "asset not found")
		return
	}
	data, err := a.Store.Read(r.Context(), storageKey)
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "asset file missing")
		return
	}
	if mime == "" {
		mime = "image/png"
	}
	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// ExportAssets bundles the most recent assets into a zip download.
func (a *App) ExportAssets(w http.ResponseWriter, r *http.Request) {
	limit := queryLimit(r, defaultListLimit)
	rows, err := a.SQL.Query(r.Context(), sqlinline.QListAssets, limit)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load assets")
		return
	}
	defer rows.Close()

	var archiveAssets []zip.Asset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			continue
		}
		data, err := a.Store.Read(r.Context(), asset.StorageKey)
		if err != nil {
			continue
		}
		archiveAssets = append(archiveAssets, zip.Asset{
			Filename: fmt.Sprintf("%s-%s", asset.Category, asset.ID),
			MIME:     asset.MIME,
			Data:     data,
		})
	}
	archive := zip.ArchiveAssets(archiveAssets)
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", "attachment; filename=assets-export.zip")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}

func (a *App) bumpDailyCounters(ctx context.Context, aiRequests, images, success, fail, debugSessions int64) {
	day := a.now().UTC().Format("2006-01-02")
	if _, err := a.SQL.Exec(ctx, sqlinline.QIncrementDailyCounters, day, aiRequests, images, success, fail, debugSessions); err != nil {
		a.Logger.Warn().Err(err).Msg("analytics update failed")
	}
}

// scanAsset reads one asset listing row.
func scanAsset(rows pgx.Rows) (domain.Asset, error) {
	var asset domain.Asset
	var paletteJSON []byte
	if err := rows.Scan(
		&asset.ID, &asset.Prompt, &asset.Category, &asset.Style, &asset.Dimensions,
		&asset.Model, &asset.StorageKey, &asset.MIME, &asset.Bytes,
		&asset.Width, &asset.Height, &paletteJSON, &asset.Country, &asset.CreatedAt,
	); err != nil {
		return domain.Asset{}, err
	}
	_ = json.Unmarshal(paletteJSON, &asset.ColorPalette)
	return asset, nil
}

// paletteSummary decodes the encoded image and summarizes its dominant
// colors. Undecodable payloads yield an empty summary instead of an error.
func paletteSummary(data []byte) []string {
	decoded, _, err := stdimage.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	bounds := decoded.Bounds()
	nrgba := stdimage.NewNRGBA(bounds)
	draw.Draw(nrgba, bounds, decoded, bounds.Min, draw.Src)
	return synth.SummarizePalette(nrgba)
}

func clientCountry(a *App, r *http.Request) string {
	if a.GeoIP == nil {
		return ""
	}
	host := r.RemoteAddr
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if first := strings.TrimSpace(strings.Split(forwarded, ",")[0]); first != "" {
			host = first
		}
	}
	code, err := a.GeoIP.CountryCode(host)
	if err != nil {
		return ""
	}
	return code
}

func queryLimit(r *http.Request, fallback int) int {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	if n > 100 {
		return 100
	}
	return n
}
