// Package crudstore implements the campaign repository against a generic
// JSON-document collection service such as crudcrud.com. The store exposes
// GET/POST on {base}/{collection} and GET/PUT/DELETE on
// {base}/{collection}/{id}, assigns document identifiers under "_id" and
// speaks JSON on every call.
package crudstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository over HTTP.
type CampaignRepository struct {
	client     *http.Client
	collection string // absolute collection URL without trailing slash
}

// NewCampaignRepository returns a repository rooted at base/collection. The
// provided client is used as-is; no timeouts or retries are layered on top,
// so a hung store call hangs the requesting view until the client gives up.
func NewCampaignRepository(client *http.Client, base url.URL, collection string) *CampaignRepository {
	if client == nil {
		client = http.DefaultClient
	}
	return &CampaignRepository{
		client:     client,
		collection: strings.TrimRight(base.String(), "/") + "/" + collection,
	}
}

// List fetches the whole collection.
func (r *CampaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	var out []domain.Campaign
	if err := r.do(ctx, http.MethodGet, r.collection, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single document by identifier.
func (r *CampaignRepository) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	var out domain.Campaign
	if err := r.do(ctx, http.MethodGet, r.itemURL(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create posts the campaign without an identifier; the store assigns one and
// echoes the document back with "_id" set.
func (r *CampaignRepository) Create(ctx context.Context, c domain.Campaign) (*domain.Campaign, error) {
	c.ID = ""
	var out domain.Campaign
	if err := r.do(ctx, http.MethodPost, r.collection, &c, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the document in full. The identifier travels in the URL,
// never in the body. Some stores answer PUT with an empty body, in which
// case the submitted payload plus the path identifier is the result.
func (r *CampaignRepository) Update(ctx context.Context, id string, c domain.Campaign) (*domain.Campaign, error) {
	c.ID = ""
	var out domain.Campaign
	if err := r.do(ctx, http.MethodPut, r.itemURL(id), &c, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		out = c
		out.ID = id
	}
	return &out, nil
}

// Delete removes the document by identifier.
func (r *CampaignRepository) Delete(ctx context.Context, id string) error {
	return r.do(ctx, http.MethodDelete, r.itemURL(id), nil, nil)
}

func (r *CampaignRepository) itemURL(id string) string {
	return r.collection + "/" + url.PathEscape(id)
}

// do performs one round trip. Any transport failure or non-2xx status is
// reported uniformly as port.ErrRemoteStore; the store does not distinguish
// failure modes in a way worth surfacing.
func (r *CampaignRepository) do(ctx context.Context, method, rawURL string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return fmt.Errorf("%w: %v", port.ErrRemoteStore, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", port.ErrRemoteStore, method, rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s %s: status %d", port.ErrRemoteStore, method, rawURL, resp.StatusCode)
	}
	if out == nil {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", port.ErrRemoteStore, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode body: %v", port.ErrRemoteStore, err)
	}
	return nil
}
