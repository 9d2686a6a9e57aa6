package lens

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/machinebox/graphql"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/templui/lenscard/internal/metrics"
	"github.com/templui/lenscard/internal/model"
)

const DefaultEndpoint = "https://api.lens.dev"

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrNoDefaultProfile = errors.New("address has no default profile")
)

// Client queries the Lens GraphQL API.
type Client struct {
	gql      *graphql.Client
	pageSize int
}

type Options struct {
	Endpoint   string
	Timeout    time.Duration
	PageSize   int          // followers requested per query
	HTTPClient *http.Client // Optional: overrides Timeout
}

func NewClient(opts Options) *Client {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 25
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	gql := graphql.NewClient(opts.Endpoint, graphql.WithHTTPClient(httpClient))
	gql.Log = func(s string) {
		slog.Debug("lens graphql", "msg", s)
	}

	return &Client{
		gql:      gql,
		pageSize: opts.PageSize,
	}
}

// ProfileByID fetches a profile by its Lens profile ID (e.g. "0x01").
func (c *Client) ProfileByID(ctx context.Context, profileID string) (*model.Profile, error) {
	var resp profileByIDResponse
	err := c.run(ctx, QueryProfileByID, profileByIDQuery, map[string]any{"profileId": profileID}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Profile == nil {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, profileID)
	}
	return resp.Profile.toModel(), nil
}

// ProfileByAddress fetches the default profile owned by an Ethereum address.
func (c *Client) ProfileByAddress(ctx context.Context, address string) (*model.Profile, error) {
	var resp profileByAddressResponse
	err := c.run(ctx, QueryProfileByAddress, profileByAddressQuery, map[string]any{"address": address}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.DefaultProfile == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoDefaultProfile, address)
	}
	return resp.DefaultProfile.toModel(), nil
}

// Followers fetches the first page of followers of a profile.
func (c *Client) Followers(ctx context.Context, profileID string) ([]model.Follower, error) {
	var resp followersResponse
	err := c.run(ctx, QueryFollowers, followersQuery, map[string]any{
		"profileId": profileID,
		"limit":     c.pageSize,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.toModel(), nil
}

func (c *Client) run(ctx context.Context, name, query string, vars map[string]any, out any) error {
	req := graphql.NewRequest(query)
	for k, v := range vars {
		req.Var(k, v)
	}

	timer := prometheus.NewTimer(metrics.LensQueryDuration.WithLabelValues(name))
	err := c.gql.Run(ctx, req, out)
	timer.ObserveDuration()

	if err != nil {
		metrics.LensQueriesTotal.WithLabelValues(name, "error").Inc()
		return fmt.Errorf("lens %s query: %w", name, err)
	}
	metrics.LensQueriesTotal.WithLabelValues(name, "ok").Inc()
	return nil
}
