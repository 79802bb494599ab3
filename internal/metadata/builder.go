package metadata

import (
	"context"
	"fmt"
	"strconv"

	"github.com/feral-file/ff-editions/internal/adapter"
	"github.com/feral-file/ff-editions/internal/domain"
	"github.com/feral-file/ff-editions/internal/store/schema"
)

// Attribute is a single metadata trait
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// File is a media file referenced by the metadata
type File struct {
	URI  string `json:"uri"`
	Type string `json:"type,omitempty"`
}

// Creator is a royalty recipient
type Creator struct {
	Address string `json:"address"`
	Share   int    `json:"share"`
}

// Properties holds the media and royalty properties of the metadata
type Properties struct {
	Files    []File    `json:"files"`
	Category string    `json:"category"`
	Creators []Creator `json:"creators,omitempty"`
}

// Metadata is the off-chain JSON document shared by the collection and its editions
type Metadata struct {
	Name                 string      `json:"name"`
	Symbol               string      `json:"symbol"`
	Description          string      `json:"description"`
	Image                string      `json:"image"`
	SellerFeeBasisPoints int         `json:"seller_fee_basis_points"`
	Attributes           []Attribute `json:"attributes"`
	Properties           Properties  `json:"properties"`
}

// Builder builds the metadata document of an edition post
//
//go:generate mockgen -source=builder.go -destination=../mocks/metadata_builder.go -package=mocks -mock_names=Builder=MockMetadataBuilder
type Builder interface {
	// Build returns the metadata of the post and its canonical JSON encoding
	Build(ctx context.Context, post *schema.Post, creator *schema.User) (*Metadata, []byte, error)
}

type builder struct {
	httpClient    adapter.HTTPClient
	json          adapter.JSON
	defaultSymbol string
}

// NewBuilder creates a new metadata builder
func NewBuilder(httpClient adapter.HTTPClient, jsonAdapter adapter.JSON, defaultSymbol string) Builder {
	if defaultSymbol == "" {
		defaultSymbol = domain.DEFAULT_NFT_SYMBOL
	}
	return &builder{
		httpClient:    httpClient,
		json:          jsonAdapter,
		defaultSymbol: defaultSymbol,
	}
}

// Build returns the metadata of the post and its canonical JSON encoding.
// The encoding is deterministic for the same post, so re-uploading is harmless.
func (b *builder) Build(ctx context.Context, post *schema.Post, creator *schema.User) (*Metadata, []byte, error) {
	mimeType := detectMimeType(ctx, b.httpClient, post.MediaURL)

	meta := &Metadata{
		Name:                 CollectionName(post),
		Symbol:               Symbol(post, b.defaultSymbol),
		Description:          description(post),
		Image:                post.MediaURL,
		SellerFeeBasisPoints: post.RoyaltyBps,
		Attributes:           attributes(post, creator),
		Properties: Properties{
			Files:    []File{{URI: post.MediaURL, Type: mimeType}},
			Category: categoryForMimeType(mimeType),
		},
	}

	if creator != nil && creator.Wallet() != "" {
		meta.Properties.Creators = []Creator{{Address: creator.Wallet(), Share: 100}}
	}

	data, err := b.json.MarshalCanonical(meta)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode metadata: %w", err)
	}

	return meta, data, nil
}

// CollectionName is the on-chain name of the collection, bounded by the on-chain limit
func CollectionName(post *schema.Post) string {
	name := ""
	if post.NFTName != nil {
		name = domain.TruncateRunes(*post.NFTName, domain.MAX_NFT_NAME_LENGTH)
	}
	if name == "" {
		name = domain.TruncateRunes(post.Caption, domain.MAX_NFT_NAME_LENGTH)
	}
	if name == "" {
		name = "Edition"
	}
	return name
}

// EditionName is the on-chain name of one edition: the collection name with its number,
// shortening the base name so the suffix always fits
func EditionName(post *schema.Post, editionNumber int64) string {
	suffix := " #" + strconv.FormatInt(editionNumber, 10)
	base := domain.TruncateRunes(CollectionName(post), domain.MAX_NFT_NAME_LENGTH-len([]rune(suffix)))
	return base + suffix
}

// Symbol is the on-chain symbol of the collection
func Symbol(post *schema.Post, defaultSymbol string) string {
	if post.NFTSymbol != nil {
		if symbol := domain.TruncateRunes(*post.NFTSymbol, domain.MAX_NFT_SYMBOL_LENGTH); symbol != "" {
			return symbol
		}
	}
	return domain.TruncateRunes(defaultSymbol, domain.MAX_NFT_SYMBOL_LENGTH)
}

func description(post *schema.Post) string {
	if post.NFTDescription != nil && *post.NFTDescription != "" {
		return *post.NFTDescription
	}
	return post.Caption
}

func attributes(post *schema.Post, creator *schema.User) []Attribute {
	attrs := []Attribute{}

	if post.MaxSupply != nil {
		attrs = append(attrs,
			Attribute{TraitType: "Edition Type", Value: "Limited"},
			Attribute{TraitType: "Max Supply", Value: strconv.FormatInt(*post.MaxSupply, 10)},
		)
	} else {
		attrs = append(attrs, Attribute{TraitType: "Edition Type", Value: "Open"})
	}

	if creator != nil && creator.Username != "" {
		attrs = append(attrs, Attribute{TraitType: "Creator", Value: creator.Username})
	}

	return attrs
}
