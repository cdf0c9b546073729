package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"gmopay/internal/logger"
	"gmopay/internal/metrics"
	"gmopay/internal/ratelimit"
	"gmopay/internal/utils"
)

const (
	defaultTimeout = 30 * time.Second
	tracerName     = "gmopay/payment"
	contentType    = "application/x-www-form-urlencoded"
)

// Config holds the gateway host and credentials. Which credentials are
// required depends on the client being built.
type Config struct {
	Host     string        `validate:"required,hostname_rfc1123|hostname_port"`
	ShopID   string        `validate:"required"`
	ShopPass string        `validate:"required"`
	SiteID   string        `validate:"required"`
	SitePass string        `validate:"required"`
	Locale   string        `validate:"omitempty,bcp47_language_tag"`
	Timeout  time.Duration `validate:"gte=0"`
}

func (f Family) configFields() []string {
	fields := []string{"Host", "Locale", "Timeout"}
	switch f {
	case FamilySite:
		return append(fields, "SiteID", "SitePass")
	case FamilySiteAndShop:
		return append(fields, "ShopID", "ShopPass", "SiteID", "SitePass")
	default:
		return append(fields, "ShopID", "ShopPass")
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Option customises a client.
type Option func(*api)

// WithHTTPClient replaces the default client. Its Timeout and Transport are
// used as-is.
func WithHTTPClient(c *http.Client) Option {
	return func(a *api) { a.httpClient = c }
}

// WithBaseURL overrides the scheme and host derived from Config.Host.
func WithBaseURL(u string) Option {
	return func(a *api) { a.baseURL = strings.TrimRight(u, "/") }
}

// WithRateLimit throttles outgoing calls. Clients built for the same base URL
// and account share one limiter. A burst below 1 is treated as 1.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(a *api) {
		a.rateLimit = limit
		a.rateBurst = max(burst, 1)
	}
}

// WithTracerProvider sets the provider spans are created from. The global
// provider is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(a *api) { a.tracer = tp.Tracer(tracerName) }
}

// api is the request pipeline shared by every client.
type api struct {
	family      Family
	host        string
	baseURL     string
	credentials Params
	locale      Locale
	httpClient  *http.Client
	rateLimit   rate.Limit
	rateBurst   int
	limiterKey  string
	tracer      trace.Tracer
	stats       metrics.Gateway
}

func newAPI(family Family, cfg Config, opts ...Option) (*api, error) {
	if err := validate.StructPartial(cfg, family.configFields()...); err != nil {
		return nil, fmt.Errorf("%w: %s client: %v", ErrInvalidConfig, family, err)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	a := &api{
		family:  family,
		host:    cfg.Host,
		baseURL: "https://" + cfg.Host,
		credentials: Params{
			ShopID:   cfg.ShopID,
			ShopPass: cfg.ShopPass,
			SiteID:   cfg.SiteID,
			SitePass: cfg.SitePass,
		},
		locale: ParseLocale(cfg.Locale),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: &logger.Transport{},
		},
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(a)
	}
	account := a.credentials[ShopID]
	if a.family == FamilySite {
		account = a.credentials[SiteID]
	}
	a.limiterKey = a.baseURL + "|" + account
	return a, nil
}

// wait blocks until the shared limiter admits a call. The limiter is fetched
// per call so long-lived clients keep their registry entry alive.
func (a *api) wait(ctx context.Context) error {
	if a.rateLimit <= 0 {
		return nil
	}
	return ratelimit.Shared(a.limiterKey, a.rateLimit, a.rateBurst).Wait(ctx)
}

// Host returns the configured gateway host.
func (a *api) Host() string {
	return a.host
}

func (a *api) Locale() Locale {
	return a.locale
}

// Stats counts the calls made through this client.
type Stats = metrics.Snapshot

func (a *api) Stats() Stats {
	return a.stats.Snapshot()
}

// Result is the decoded body of any operation. Exactly one field is set,
// depending on the operation's body format.
type Result struct {
	Response  Response         `json:"response,omitempty"`
	Transfers []TransferRecord `json:"transfers,omitempty"`
	Rows      [][]string       `json:"rows,omitempty"`
}

// Call runs any operation of the client's family by name.
func (a *api) Call(ctx context.Context, name string, p Params) (*Result, error) {
	op, err := Lookup(a.family, name)
	if err != nil {
		return nil, err
	}
	return a.invoke(ctx, op, p)
}

func (a *api) call(ctx context.Context, name string, p Params) (Response, error) {
	res, err := a.Call(ctx, name, p)
	if err != nil {
		return nil, err
	}
	return res.Response, nil
}

func (a *api) invoke(ctx context.Context, op *Operation, in Params) (*Result, error) {
	ctx, _ = logger.EnsureRequestID(ctx)
	log := logger.FromCtx(ctx).With(
		zap.String("operation", op.Name),
		zap.String("family", string(op.Family)),
	)
	if in.Has(OrderID) {
		log = log.With(zap.String("order_id", utils.Mask(in[OrderID])))
	}
	if in.Has(CardNo) {
		log = log.With(zap.String("card_no", utils.MaskCardNo(in[CardNo])))
	}

	p, err := op.build(in)
	if err != nil {
		a.stats.Observe(metrics.Rejected, 0)
		log.Warn("gateway call rejected", zap.Error(err))
		return nil, err
	}
	for _, f := range op.Family.credentials() {
		p[f] = a.credentials[f]
	}

	if err := a.wait(ctx); err != nil {
		a.stats.Observe(metrics.Rejected, 0)
		return nil, fmt.Errorf("%s: rate limit: %w", op.Name, err)
	}

	ctx, span := a.tracer.Start(ctx, "gmo."+op.Name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("gmo.operation", op.Name),
			attribute.String("gmo.family", string(op.Family)),
		),
	)
	defer span.End()

	timer := metrics.StartTimer()
	status, body, err := a.post(ctx, op.Path(), p)
	duration := timer.Duration()
	if err != nil {
		a.stats.Observe(metrics.TransportError, duration)
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport error")
		log.Error("gateway request failed", zap.Duration("duration", duration), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op.Name, err)
	}
	span.SetAttributes(attribute.Int("http.response.status_code", status))

	if status < 200 || status > 299 {
		err := &ServerError{StatusCode: status, Body: body}
		a.stats.Observe(metrics.ServerError, duration)
		span.SetStatus(codes.Error, err.Error())
		log.Error("gateway returned non-success status",
			zap.Int("status", status),
			zap.Duration("duration", duration),
		)
		return nil, err
	}

	res, err := a.decode(op, body)
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		a.stats.Observe(metrics.APIError, duration)
		span.SetAttributes(attribute.StringSlice("gmo.err_info", apiErr.Infos))
		span.SetStatus(codes.Error, "gateway error")
		log.Warn("gateway returned error",
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	case err != nil:
		a.stats.Observe(metrics.DecodeError, duration)
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode error")
		log.Error("gateway response could not be decoded",
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	a.stats.Observe(metrics.Succeeded, duration)
	log.Info("gateway call completed",
		zap.Int("status", status),
		zap.Duration("duration", duration),
	)
	return res, nil
}

func (a *api) post(ctx context.Context, path string, p Params) (int, string, error) {
	form, err := encodeForm(p)
	if err != nil {
		return 0, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, strings.NewReader(form))
	if err != nil {
		return 0, "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	body, err := decodeShiftJIS(resp.Body)
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, body, nil
}

func (a *api) decode(op *Operation, body string) (*Result, error) {
	if op.format != bodyKeyValue && !isErrorBody(body) {
		switch op.format {
		case bodyTransferRecords:
			return &Result{Transfers: ParseTransferRecords(body)}, nil
		case bodyCSV:
			rows, err := parseResultFile(body)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", op.Name, err)
			}
			return &Result{Rows: rows}, nil
		}
	}

	res := ParseResponse(body)
	if res.isError() {
		return nil, newAPIError(res, a.locale)
	}
	return &Result{Response: res}, nil
}
