package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/orbisenerji/backend-store/internal/common"
	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
	"github.com/orbisenerji/backend-store/internal/pricing"
)

type queryProvider interface {
	ListCategories(ctx context.Context) ([]dbgen.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (dbgen.Category, error)
	CountProductsPublic(ctx context.Context, arg dbgen.CountProductsPublicParams) (int64, error)
	ListProductsPublic(ctx context.Context, arg dbgen.ListProductsPublicParams) ([]dbgen.ListProductsPublicRow, error)
	GetProductBySlug(ctx context.Context, slug string) (dbgen.GetProductBySlugRow, error)
	ListActiveVariantsByProduct(ctx context.Context, productID pgtype.UUID) ([]dbgen.ProductVariant, error)
	ListImagesByProduct(ctx context.Context, productID pgtype.UUID) ([]dbgen.ProductImage, error)
	GetReviewSummary(ctx context.Context, productID pgtype.UUID) (dbgen.GetReviewSummaryRow, error)
}

// Service orchestrates catalog queries, DTO assembly, and caching. Listings
// and the product detail resolve variant prices for the caller's audience;
// only audience-independent renderings hit the cache.
type Service struct {
	queries      queryProvider
	cache        *Cache
	prices       *pricing.Resolver
	defaultPage  int
	defaultLimit int
	maxLimit     int
}

// ServiceConfig groups Service dependencies.
type ServiceConfig struct {
	Queries      queryProvider
	Cache        *Cache
	Prices       *pricing.Resolver
	DefaultPage  int
	DefaultLimit int
	MaxLimit     int
}

// ListParams captures filters for product listing.
type ListParams struct {
	Query    string
	Category string
	Page     int
	Limit    int
}

// ProductListItem represents an entry in list responses.
type ProductListItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Slug      string  `json:"slug"`
	Price     int64   `json:"price"`
	InStock   bool    `json:"inStock"`
	Thumbnail *string `json:"thumbnail,omitempty"`
}

// Variant describes a product variant priced for the requesting audience.
type Variant struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	SKU        *string        `json:"sku,omitempty"`
	Price      int64          `json:"price"`
	Stock      int            `json:"stock"`
	Attributes map[string]any `json:"attributes"`
}

// ProductDetail aggregates the full detail payload.
type ProductDetail struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  *string   `json:"description,omitempty"`
	CategoryName *string   `json:"categoryName,omitempty"`
	CategorySlug *string   `json:"categorySlug,omitempty"`
	Variants     []Variant `json:"variants"`
	Images       []string  `json:"images"`
	ReviewCount  int64     `json:"reviewCount"`
	AvgRating    float64   `json:"avgRating"`
}

// Category represents the public category payload.
type Category struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	ParentID *string `json:"parentId,omitempty"`
}

// ProductListResult contains list data and pagination metadata.
type ProductListResult struct {
	Items []ProductListItem
	Total int64
	Page  int
	Limit int
}

// NewService constructs a Service instance.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Queries == nil {
		return nil, errors.New("catalog: queries provider is required")
	}
	defaultPage := cfg.DefaultPage
	if defaultPage < 1 {
		defaultPage = 1
	}
	defaultLimit := cfg.DefaultLimit
	if defaultLimit < 1 {
		defaultLimit = 20
	}
	maxLimit := cfg.MaxLimit
	if maxLimit < 1 {
		maxLimit = 100
	}
	if defaultLimit > maxLimit {
		defaultLimit = maxLimit
	}
	return &Service{
		queries:      cfg.Queries,
		cache:        cfg.Cache,
		prices:       cfg.Prices,
		defaultPage:  defaultPage,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}, nil
}

// ParseListParams normalises raw query values into strongly typed filters.
func (s *Service) ParseListParams(values url.Values) (ListParams, error) {
	params := ListParams{
		Page:  s.defaultPage,
		Limit: s.defaultLimit,
	}
	params.Query = strings.TrimSpace(values.Get("q"))
	params.Category = strings.TrimSpace(values.Get("category"))

	if v := strings.TrimSpace(values.Get("page")); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return params, badRequest("page", "page must be a positive integer", err)
		}
		params.Page = page
	}

	limit := s.defaultLimit
	if v := strings.TrimSpace(values.Get("limit")); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil || l < 1 {
			return params, badRequest("limit", "limit must be a positive integer", err)
		}
		limit = l
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	params.Limit = limit
	return params, nil
}

// ListCategories returns all categories with parent linkage.
func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.queries.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	result := make([]Category, 0, len(rows))
	for _, row := range rows {
		cat := Category{
			ID:   uuidString(row.ID),
			Name: row.Name,
			Slug: row.Slug,
		}
		if row.ParentID.Valid {
			parent := uuidString(row.ParentID)
			cat.ParentID = &parent
		}
		result = append(result, cat)
	}
	return result, nil
}

// ListProducts returns the filtered product list with pagination metadata.
// Listed prices come from each product's cheapest active variant, resolved
// for the caller's audience. Dealer renderings never touch the shared cache.
func (s *Service) ListProducts(ctx context.Context, params ListParams, role pricing.Role) (ProductListResult, error) {
	key, shouldUseCache := s.listCacheKey(params)
	shouldUseCache = shouldUseCache && !role.Dealer()
	if shouldUseCache && s.cache != nil {
		var cached cachedList
		ok, err := s.cache.GetJSON(ctx, key, &cached)
		if err == nil && ok {
			return ProductListResult{Items: cached.Items, Total: cached.Total, Page: params.Page, Limit: params.Limit}, nil
		}
	}

	countParams := dbgen.CountProductsPublicParams{
		Q:            optionalText(params.Query),
		CategorySlug: optionalText(params.Category),
	}
	total, err := s.queries.CountProductsPublic(ctx, countParams)
	if err != nil {
		return ProductListResult{}, fmt.Errorf("count products: %w", err)
	}
	offset := int32((params.Page - 1) * params.Limit)
	if offset < 0 {
		offset = 0
	}
	rows, err := s.queries.ListProductsPublic(ctx, dbgen.ListProductsPublicParams{
		Q:            countParams.Q,
		CategorySlug: countParams.CategorySlug,
		OffsetValue:  offset,
		LimitValue:   int32(params.Limit),
	})
	if err != nil {
		return ProductListResult{}, fmt.Errorf("list products: %w", err)
	}
	bases := make(map[pgtype.UUID]pricing.Money, len(rows))
	for _, row := range rows {
		bases[row.VariantID] = row.BasePrice
	}
	resolved := bases
	if s.prices != nil {
		resolved, err = s.prices.UnitPrices(ctx, role, bases)
		if err != nil {
			return ProductListResult{}, fmt.Errorf("resolve prices: %w", err)
		}
	}
	items := make([]ProductListItem, 0, len(rows))
	for _, row := range rows {
		item := ProductListItem{
			ID:      uuidString(row.ID),
			Name:    row.Name,
			Slug:    row.Slug,
			Price:   resolved[row.VariantID],
			InStock: row.Stock > 0,
		}
		if row.Thumbnail.Valid {
			thumb := row.Thumbnail.String
			item.Thumbnail = &thumb
		}
		items = append(items, item)
	}
	result := ProductListResult{Items: items, Total: total, Page: params.Page, Limit: params.Limit}
	if shouldUseCache && s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, cachedList{Items: items, Total: total})
	}
	return result, nil
}

// GetProductDetail returns product detail with variants priced for the
// audience. Dealer renderings bypass the cache so list prices never leak
// into cached retail payloads or vice versa.
func (s *Service) GetProductDetail(ctx context.Context, slug string, role pricing.Role) (ProductDetail, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return ProductDetail{}, badRequest("slug", "slug is required", nil)
	}
	useCache := s.cache != nil && !role.Dealer()
	cacheKey := detailCacheKey(slug)
	if useCache {
		var cached ProductDetail
		ok, err := s.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && ok {
			return cached, nil
		}
	}
	product, err := s.queries.GetProductBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ProductDetail{}, notFound(err)
		}
		return ProductDetail{}, fmt.Errorf("get product by slug: %w", err)
	}
	if !product.IsActive {
		return ProductDetail{}, notFound(pgx.ErrNoRows)
	}
	detail := ProductDetail{
		ID:   uuidString(product.ID),
		Name: product.Name,
		Slug: product.Slug,
	}
	if product.Description.Valid {
		desc := product.Description.String
		detail.Description = &desc
	}
	if product.CategoryName.Valid {
		name := product.CategoryName.String
		detail.CategoryName = &name
	}
	if product.CategorySlug.Valid {
		catSlug := product.CategorySlug.String
		detail.CategorySlug = &catSlug
	}

	variants, err := s.queries.ListActiveVariantsByProduct(ctx, product.ID)
	if err != nil {
		return ProductDetail{}, fmt.Errorf("list variants: %w", err)
	}
	bases := make(map[pgtype.UUID]pricing.Money, len(variants))
	for _, row := range variants {
		bases[row.ID] = row.BasePrice
	}
	resolved := bases
	if s.prices != nil {
		resolved, err = s.prices.UnitPrices(ctx, role, bases)
		if err != nil {
			return ProductDetail{}, fmt.Errorf("resolve prices: %w", err)
		}
	}
	detail.Variants = make([]Variant, 0, len(variants))
	for _, row := range variants {
		attrs := map[string]any{}
		if len(row.Attributes) > 0 {
			if err := json.Unmarshal(row.Attributes, &attrs); err != nil {
				attrs = map[string]any{}
			}
		}
		variant := Variant{
			ID:         uuidString(row.ID),
			Name:       row.Name,
			Price:      resolved[row.ID],
			Stock:      int(row.Stock),
			Attributes: attrs,
		}
		if row.Sku.Valid {
			sku := row.Sku.String
			variant.SKU = &sku
		}
		detail.Variants = append(detail.Variants, variant)
	}

	images, err := s.queries.ListImagesByProduct(ctx, product.ID)
	if err != nil {
		return ProductDetail{}, fmt.Errorf("list images: %w", err)
	}
	detail.Images = make([]string, 0, len(images))
	for _, row := range images {
		detail.Images = append(detail.Images, row.Url)
	}

	if summary, err := s.queries.GetReviewSummary(ctx, product.ID); err == nil {
		detail.ReviewCount = summary.ReviewCount
		detail.AvgRating = summary.AvgRating
	}

	if useCache {
		_ = s.cache.SetJSON(ctx, cacheKey, detail)
	}
	return detail, nil
}

type cachedList struct {
	Items []ProductListItem `json:"items"`
	Total int64             `json:"total"`
}

func (s *Service) listCacheKey(params ListParams) (string, bool) {
	if params.Page != s.defaultPage {
		return "", false
	}
	if params.Limit != s.defaultLimit {
		return "", false
	}
	if params.Query != "" || params.Category != "" {
		return "", false
	}
	return "catalog:products:list:front", true
}

func detailCacheKey(slug string) string {
	return "catalog:products:detail:" + slug
}

func optionalText(value string) pgtype.Text {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: trimmed, Valid: true}
}

func uuidString(id pgtype.UUID) string {
	if !id.Valid {
		return ""
	}
	u, err := uuid.FromBytes(id.Bytes[:])
	if err != nil {
		return ""
	}
	return u.String()
}

func notFound(err error) *common.AppError {
	return &common.AppError{Code: "NOT_FOUND", Message: "product not found", HTTPStatus: http.StatusNotFound, Err: err}
}

func badRequest(field, message string, err error) *common.AppError {
	return &common.AppError{
		Code:       "BAD_REQUEST",
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
		Details: map[string]any{
			"field": field,
		},
	}
}
