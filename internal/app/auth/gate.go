package auth

//go:generate mockgen -source=gate.go -destination=mock/gate.go

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/mtmgroup/dashboards-ui/internal/app/config"
	"github.com/mtmgroup/dashboards-ui/internal/app/types"
	"github.com/mtmgroup/dashboards-ui/logger"
	"github.com/mtmgroup/dashboards-ui/metric"
	"github.com/mtmgroup/dashboards-ui/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	meEndpoint = "/auth/me"

	outcomeLocal      = "local"
	outcomeAuthorized = "authorized"
	outcomeRedirect   = "redirect"
	outcomeInvalid    = "invalid_page_url"
)

// PendingMessage is shown while the gate has not resolved yet.
const PendingMessage = "Authorization Processing..."

var errTokenRejected = errors.New("session token rejected")

// Gate decides who the user is, or where they must go to sign in.
type Gate interface {
	Authenticate(ctx context.Context, pageURL string) (types.AuthResult, error)
}

type GateParams struct {
	IdentityBaseURL string
	PortalBaseURL   string
	Timeout         time.Duration
	LocalHosts      []string
	// Cookies are forwarded with the who-am-I call.
	Cookies     map[string]string
	TokenCookie string
	Inspector   TokenInspector
	HTTPClient  *http.Client
}

type gate struct {
	identityBaseURL string
	portalBaseURL   string
	timeout         time.Duration
	localHosts      []string
	cookies         []*http.Cookie
	token           string
	inspector       TokenInspector
	http            *http.Client
}

func NewGate(p GateParams) Gate {
	hc := p.HTTPClient
	if hc == nil {
		hc = &http.Client{Transport: http.DefaultTransport}
	}

	names := make([]string, 0, len(p.Cookies))
	for name := range p.Cookies {
		names = append(names, name)
	}
	sort.Strings(names)
	cookies := make([]*http.Cookie, 0, len(names))
	for _, name := range names {
		cookies = append(cookies, &http.Cookie{Name: name, Value: p.Cookies[name]})
	}

	inspector := p.Inspector
	if inspector == nil {
		inspector = NewTokenInspector("")
	}

	return &gate{
		identityBaseURL: strings.TrimRight(p.IdentityBaseURL, "/"),
		portalBaseURL:   p.PortalBaseURL,
		timeout:         p.Timeout,
		localHosts:      p.LocalHosts,
		cookies:         cookies,
		token:           p.Cookies[p.TokenCookie],
		inspector:       inspector,
		http:            hc,
	}
}

func NewGateFromConfig(cfg config.Auth) Gate {
	return NewGate(GateParams{
		IdentityBaseURL: cfg.IdentityBaseURL,
		PortalBaseURL:   cfg.PortalBaseURL,
		Timeout:         cfg.Timeout,
		LocalHosts:      cfg.LocalHosts,
		Cookies:         cfg.Cookies,
		TokenCookie:     cfg.TokenCookie,
		Inspector:       NewTokenInspector(cfg.JWTSecretKey),
	})
}

// Authenticate returns the dev identity on local hosts. Otherwise it asks the
// identity service and turns every failure into a sign-in redirect.
// An error is returned only for a malformed page URL.
func (g *gate) Authenticate(ctx context.Context, pageURL string) (types.AuthResult, error) {
	ctx, span := tracing.StartSpan(ctx, "auth_authenticate")
	defer span.End()

	start := time.Now()
	outcome := outcomeInvalid
	defer func() {
		metric.AuthCheckDuration.Observe(time.Since(start).Seconds())
		metric.AuthChecks.WithLabelValues(outcome).Inc()
		span.SetAttributes(attribute.String("outcome", outcome))
	}()

	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return types.AuthResult{}, types.NewErrInvalidRequestField(fmt.Sprintf("page url %q", pageURL))
	}

	if IsLocalHost(u.Hostname(), g.localHosts) {
		outcome = outcomeLocal
		id := types.DevIdentity()
		return types.AuthResult{Identity: &id}, nil
	}

	id, err := g.whoAmI(ctx)
	if err != nil {
		outcome = outcomeRedirect
		logger.Warn("auth check failed, redirecting to sign-in",
			zap.String("page_url", pageURL),
			zap.Error(err),
		)
		r := types.NewSigninRedirect(g.portalBaseURL, pageURL)
		return types.AuthResult{Redirect: &r}, nil
	}

	outcome = outcomeAuthorized
	return types.AuthResult{Identity: &id}, nil
}

func (g *gate) whoAmI(ctx context.Context) (types.Identity, error) {
	if g.token != "" && looksLikeJWT(g.token) {
		if _, err := g.inspector.Inspect(g.token); err != nil {
			return types.Identity{}, fmt.Errorf("%w: %w", errTokenRejected, err)
		}
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.identityBaseURL+meEndpoint, http.NoBody)
	if err != nil {
		return types.Identity{}, types.NewNetworkError("auth_me", err)
	}
	req.Header.Set("Accept", "application/json")
	if id := types.GetRequestID(ctx); id != "" {
		req.Header.Set(types.RequestIDHeader, id)
	}
	for _, c := range g.cookies {
		req.AddCookie(c)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return types.Identity{}, types.NewNetworkError("auth_me", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return types.Identity{}, fmt.Errorf("%w: identity service answered %d", types.ErrUnauthenticated, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.Identity{}, types.NewNetworkError("auth_me", err)
	}

	var me meResponse
	if err := json.Unmarshal(data, &me); err != nil {
		return types.Identity{}, fmt.Errorf("decode identity: %w", err)
	}
	return me.toIdentity(), nil
}
