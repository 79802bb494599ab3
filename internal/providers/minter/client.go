package minter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/feral-file/ff-editions/internal/adapter"
	"github.com/feral-file/ff-editions/internal/domain"
)

// CreateCollectionRequest is the input for creating the collection (master edition) of a post
type CreateCollectionRequest struct {
	Creator     string `json:"creator"`
	MetadataURI string `json:"metadataUri"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	MaxSupply   *int64 `json:"maxSupply,omitempty"`
	RoyaltyBps  int    `json:"royaltyBps"`
}

// CollectionResult is the created collection
type CollectionResult struct {
	CollectionAddress string `json:"collectionAddress"`
	Signature         string `json:"signature"`
}

// MintEditionRequest is the input for minting one edition to a buyer
type MintEditionRequest struct {
	Buyer             string `json:"buyer"`
	Creator           string `json:"creator"`
	CollectionAddress string `json:"collectionAddress"`
	MetadataURI       string `json:"metadataUri"`
	Name              string `json:"name"`
	EditionNumber     int64  `json:"editionNumber"`
	// IdempotencyKey lets the minting service deduplicate a repeated request for the same purchase
	IdempotencyKey string `json:"idempotencyKey"`
}

// MintResult is the minted edition
type MintResult struct {
	AssetAddress string `json:"assetAddress"`
	Signature    string `json:"signature"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Client defines the minting service operations
//
//go:generate mockgen -source=client.go -destination=../../mocks/minter_client.go -package=mocks -mock_names=Client=MockMinterClient
type Client interface {
	// CreateCollection creates the on-chain collection for a post
	CreateCollection(ctx context.Context, req CreateCollectionRequest) (*CollectionResult, error)

	// MintEdition mints one edition of a collection to the buyer
	MintEdition(ctx context.Context, req MintEditionRequest) (*MintResult, error)
}

// MinterClient implements Client over the minting service HTTP API
type MinterClient struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	baseURL    string
	apiKey     string
}

// NewClient creates a new minting service client
func NewClient(httpClient adapter.HTTPClient, jsonAdapter adapter.JSON, baseURL, apiKey string) Client {
	return &MinterClient{
		httpClient: httpClient,
		json:       jsonAdapter,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
	}
}

func (c *MinterClient) headers() map[string]string {
	headers := map[string]string{}
	if c.apiKey != "" {
		headers["Authorization"] = "Bearer " + c.apiKey
	}
	return headers
}

// CreateCollection creates the on-chain collection for a post
func (c *MinterClient) CreateCollection(ctx context.Context, req CreateCollectionRequest) (*CollectionResult, error) {
	var result CollectionResult
	if err := c.httpClient.PostJSON(ctx, c.baseURL+"/v1/collections", c.headers(), req, &result); err != nil {
		return nil, c.classify("create collection", err)
	}

	if result.CollectionAddress == "" {
		return nil, domain.NewPermanentError(errors.New("create collection: empty collection address in response"))
	}

	return &result, nil
}

// MintEdition mints one edition of a collection to the buyer
func (c *MinterClient) MintEdition(ctx context.Context, req MintEditionRequest) (*MintResult, error) {
	var result MintResult
	if err := c.httpClient.PostJSON(ctx, c.baseURL+"/v1/editions", c.headers(), req, &result); err != nil {
		return nil, c.classify("mint edition", err)
	}

	if result.AssetAddress == "" {
		return nil, domain.NewPermanentError(errors.New("mint edition: empty asset address in response"))
	}

	return &result, nil
}

// classify maps a transport failure to a typed error:
// network errors, timeouts, 429 and 5xx are transient;
// other 4xx are permanent unless the message says the chain was not ready yet.
func (c *MinterClient) classify(operation string, err error) error {
	statusErr, ok := adapter.AsStatusError(err)
	if !ok {
		return domain.NewTransientError(fmt.Errorf("%s: %w", operation, err))
	}

	message := statusErr.Body
	var body errorResponse
	if jsonErr := c.json.Unmarshal([]byte(statusErr.Body), &body); jsonErr == nil && body.Error != "" {
		message = body.Error
	}
	wrapped := fmt.Errorf("%s: status %d: %s", operation, statusErr.StatusCode, message)

	switch {
	case statusErr.StatusCode == http.StatusTooManyRequests,
		statusErr.StatusCode == http.StatusRequestTimeout,
		statusErr.StatusCode >= http.StatusInternalServerError:
		return domain.NewTransientError(wrapped)
	case domain.IsRetryable(errors.New(message)):
		return domain.NewTransientError(wrapped)
	default:
		return domain.NewPermanentError(wrapped)
	}
}
