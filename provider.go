// Package flagresolve is a client SDK for remote feature-flag resolution.
// A Provider resolves a flag (optionally with a dotted sub-path into its
// structured value) against the remote resolver and returns a typed result
// with the assigned variant, a reason and, on failure, an error code. All
// pipeline failures fall back to the caller's default value; evaluations
// never panic and never retry.
package flagresolve

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/TimurManjosov/flagresolve/internal/flagerr"
	"github.com/TimurManjosov/flagresolve/internal/flagpath"
	"github.com/TimurManjosov/flagresolve/internal/resolver"
	"github.com/TimurManjosov/flagresolve/values"
)

// Version is the SDK version stamped on every resolve request.
const Version = "0.3.0"

const (
	sdkID        = "SDK_ID_GO_PROVIDER"
	providerName = "flagresolve.resolver.v1.FlagResolverService"
	flagPrefix   = "flags/"
)

// Metadata identifies the provider to its host.
type Metadata struct {
	Name string
}

// Provider evaluates flags against a remote resolver. It is safe for
// concurrent use; each evaluation is an independent round trip and the only
// shared state is the transport handle.
type Provider struct {
	api          resolver.API
	clientSecret string
	closed       atomic.Bool
}

// New creates a Provider from the given configuration. The client secret
// must be non-empty; the API URL falls back to DefaultAPIURL.
func New(cfg Config) (*Provider, error) {
	if cfg.ClientSecret == "" {
		return nil, errors.New("client secret must be a non-empty string")
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}

	var opts []resolver.Option
	if cfg.Debug {
		log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
		opts = append(opts, resolver.WithLogger(log))
	}

	return &Provider{
		api:          resolver.NewClient(cfg.APIURL, opts...),
		clientSecret: cfg.ClientSecret,
	}, nil
}

// Metadata returns the static provider identifier.
func (p *Provider) Metadata() Metadata {
	return Metadata{Name: providerName}
}

// Shutdown releases the transport. Evaluations issued after Shutdown fail
// with a general error and return the caller's default value.
func (p *Provider) Shutdown() {
	if p.closed.CompareAndSwap(false, true) {
		p.api.Close()
	}
}

// ObjectEvaluation resolves key against the evaluation context and returns
// the generic value tree. key may carry a dotted path into the flag's
// structure ("flag.prop.subprop"); a resolved null at the end of the path is
// replaced by defaultValue.
func (p *Provider) ObjectEvaluation(ctx context.Context, key string, defaultValue values.Value, evalCtx EvaluationContext) Evaluation[values.Value] {
	value, variant, reason, err := p.resolveValue(ctx, key, evalCtx)
	if err != nil {
		return Evaluation[values.Value]{
			Value:        defaultValue,
			Reason:       ReasonError,
			ErrorCode:    flagerr.CodeOf(err),
			ErrorMessage: err.Error(),
		}
	}
	// null is "no value", not a legitimate terminal result
	if value.IsNull() {
		value = defaultValue
	}
	return Evaluation[values.Value]{Value: value, Variant: variant, Reason: reason}
}

// resolveValue runs the full pipeline: parse the flag path, serialize the
// context, call the resolver once under the fixed deadline, validate the
// response, map the wire value against its schema and extract the sub-path.
func (p *Provider) resolveValue(ctx context.Context, key string, evalCtx EvaluationContext) (values.Value, string, string, error) {
	if p.closed.Load() {
		return values.Null(), "", "", flagerr.General("Provider is shut down")
	}

	flag, path, err := flagpath.Parse(key)
	if err != nil {
		return values.Null(), "", "", err
	}
	requestFlag := flagPrefix + flag

	resp, err := p.api.ResolveFlags(ctx, &resolver.ResolveFlagsRequest{
		ClientSecret:      p.clientSecret,
		Flags:             []string{requestFlag},
		EvaluationContext: evalCtx.wireContext(),
		SDK:               resolver.SDK{ID: sdkID, Version: Version},
		Apply:             true,
	})
	if err != nil {
		return values.Null(), "", "", err
	}

	if len(resp.ResolvedFlags) == 0 {
		return values.Null(), "", "", flagerr.NotFound("No active flag '%s' was found", flag)
	}
	resolved := resp.ResolvedFlags[0]
	if resolved.Flag != requestFlag {
		// guards against a misrouted backend answering for a different flag
		return values.Null(), "", "", flagerr.NotFound(
			"Unexpected flag '%s' from remote", strings.TrimPrefix(resolved.Flag, flagPrefix))
	}

	if resolved.Variant == "" {
		return values.Null(), "", reasonNoAssignment, nil
	}

	full, err := resolved.Decode()
	if err != nil {
		return values.Null(), "", "", err
	}
	sub, err := values.AtPath(full, path)
	if err != nil {
		return values.Null(), "", "", err
	}
	return sub, resolved.Variant, ReasonResolved, nil
}
