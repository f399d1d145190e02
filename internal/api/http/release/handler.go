package release

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/santhosh-tekuri/jsonschema/v6"

	domain "github.com/oshokin/release-server/internal/domain/release"
	"github.com/oshokin/release-server/internal/logger"
	repo "github.com/oshokin/release-server/internal/repository/release"
	"github.com/oshokin/release-server/internal/service/update"
)

// UpdateService answers read requests.
type UpdateService interface {
	Check(ctx context.Context, query *domain.Query) (*update.Answer, error)
	Latest(ctx context.Context, group domain.Group) (*update.Answer, error)
	List(ctx context.Context, filter repo.Filter) ([]*domain.Record, error)
}

// IngestService accepts and retracts releases.
type IngestService interface {
	Ingest(ctx context.Context, record *domain.Record) (*domain.Record, error)
	Retract(ctx context.Context, key domain.Key) error
}

// Pinger reports store health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options configures the handler.
type Options struct {
	// AdminToken guards admin routes. Empty disables the check.
	AdminToken string
	// Timeout bounds request handling. Zero disables it.
	Timeout time.Duration
	// Health is consulted by /healthz when set.
	Health Pinger
	// CORSOrigins lists browser origins allowed on read routes. Empty allows any origin.
	CORSOrigins []string
}

// maxBodyBytes caps POST bodies.
const maxBodyBytes = 1 << 20

// Handler serves the HTTP API.
type Handler struct {
	updates UpdateService
	ingest  IngestService
	opts    Options
	schema  *jsonschema.Schema
}

// NewHandler creates a handler over the given services.
func NewHandler(updates UpdateService, ingest IngestService, opts Options) (*Handler, error) {
	schema, err := compileReleaseSchema()
	if err != nil {
		return nil, err
	}

	return &Handler{
		updates: updates,
		ingest:  ingest,
		opts:    opts,
		schema:  schema,
	}, nil
}

// Router returns a gin engine with every route and middleware registered.
func (h *Handler) Router() *gin.Engine {
	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	engine.Use(requestID(), accessLog(), recovery(), deadline(h.opts.Timeout))

	engine.GET("/", h.root)
	engine.GET("/healthz", h.healthz)

	corsMiddleware := readCORS(h.opts.CORSOrigins)

	docs := engine.Group("/api-docs", corsMiddleware)
	readRoute(docs, "/openapi.json", h.openAPI)

	v1 := engine.Group("/v1", routeFields())

	reads := v1.Group("", corsMiddleware)
	readRoute(reads, "/updates/:platform/:arch/:channel/:current_version", h.checkUpdate)
	readRoute(reads, "/latest/:platform/:arch/:channel", h.latest)
	readRoute(reads, "/download/latest/:platform/:arch/:channel", h.downloadLatest)
	readRoute(reads, "/releases", h.listReleases)

	admin := v1.Group("", adminAuth(h.opts.AdminToken))
	admin.POST("/releases", h.publish)
	admin.DELETE("/releases/:platform/:arch/:channel/:version", h.retract)

	return engine
}

func (h *Handler) root(c *gin.Context) {
	c.String(http.StatusOK, "Release server running")
}

func (h *Handler) healthz(c *gin.Context) {
	if h.opts.Health != nil {
		if err := h.opts.Health.Ping(c.Request.Context()); err != nil {
			logger.WarnKV(c.Request.Context(), "Health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})

			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) checkUpdate(c *gin.Context) {
	query, err := domain.NewQuery(c.Param("platform"), c.Param("arch"), c.Param("channel"), c.Param("current_version"))
	if err != nil {
		abortWithError(c, err)

		return
	}

	answer, err := h.updates.Check(c.Request.Context(), query)
	if err != nil {
		abortWithError(c, err)

		return
	}

	h.writeAnswer(c, answer)
}

func (h *Handler) latest(c *gin.Context) {
	group, err := domain.NewGroup(c.Param("platform"), c.Param("arch"), c.Param("channel"))
	if err != nil {
		abortWithError(c, err)

		return
	}

	answer, err := h.updates.Latest(c.Request.Context(), group)
	if err != nil {
		abortWithError(c, err)

		return
	}

	h.writeAnswer(c, answer)
}

func (h *Handler) downloadLatest(c *gin.Context) {
	group, err := domain.NewGroup(c.Param("platform"), c.Param("arch"), c.Param("channel"))
	if err != nil {
		abortWithError(c, err)

		return
	}

	answer, err := h.updates.Latest(c.Request.Context(), group)
	if err != nil {
		abortWithError(c, err)

		return
	}

	if answer.Manifest == nil {
		abortWithCode(c, http.StatusNotFound, codeNotFound, "no release published for "+group.String())

		return
	}

	// The artifact URL is opaque; http.Redirect would rewrite relative references.
	c.Header("Location", answer.Manifest.ArtifactURL)
	c.Status(http.StatusTemporaryRedirect)
}

// writeAnswer writes 204 for no update, otherwise the manifest with its ETag.
func (h *Handler) writeAnswer(c *gin.Context, answer *update.Answer) {
	if answer.Manifest == nil {
		c.Status(http.StatusNoContent)

		return
	}

	d, err := answer.Manifest.Digest()
	if err != nil {
		abortWithError(c, err)

		return
	}

	etag := `"` + d.String() + `"`
	c.Header("ETag", etag)
	c.Header("Cache-Control", "no-cache")

	if etagMatches(c.GetHeader("If-None-Match"), etag) {
		c.Status(http.StatusNotModified)

		return
	}

	c.JSON(http.StatusOK, answer.Manifest)
}

func (h *Handler) listReleases(c *gin.Context) {
	filter := repo.Filter{
		Platform: strings.ToLower(strings.TrimSpace(c.Query("platform"))),
		Arch:     strings.ToLower(strings.TrimSpace(c.Query("arch"))),
		Channel:  strings.ToLower(strings.TrimSpace(c.Query("channel"))),
	}

	records, err := h.updates.List(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, err)

		return
	}

	body := releaseList{Releases: make([]releaseView, 0, len(records))}
	for _, r := range records {
		body.Releases = append(body.Releases, toReleaseView(r))
	}

	c.JSON(http.StatusOK, body)
}

func (h *Handler) publish(c *gin.Context) {
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		abortWithCode(c, http.StatusBadRequest, codeInvalidPayload, fmt.Sprintf("read body: %v", err))

		return
	}

	if err := validateBody(h.schema, raw); err != nil {
		abortWithSchemaError(c, err)

		return
	}

	var payload releasePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		abortWithCode(c, http.StatusBadRequest, codeInvalidPayload, fmt.Sprintf("decode body: %v", err))

		return
	}

	stored, err := h.ingest.Ingest(c.Request.Context(), payload.toRecord())
	if err != nil {
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusCreated, toReleaseView(stored))
}

func (h *Handler) retract(c *gin.Context) {
	key := domain.Key{
		Group: domain.Group{
			Platform: c.Param("platform"),
			Arch:     c.Param("arch"),
			Channel:  c.Param("channel"),
		},
		Version: c.Param("version"),
	}

	if err := h.ingest.Retract(c.Request.Context(), key); err != nil {
		abortWithError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

// etagMatches implements the weak comparison of If-None-Match.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}

	for candidate := range strings.SplitSeq(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}

	return false
}
