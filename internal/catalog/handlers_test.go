package catalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	redis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbisenerji/backend-store/internal/catalog"
	"github.com/orbisenerji/backend-store/internal/common"
	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
	"github.com/orbisenerji/backend-store/internal/pricing"
)

type stubProvider struct {
	categories []dbgen.Category
	total      int64
	products   []dbgen.ListProductsPublicRow
	product    dbgen.GetProductBySlugRow
	productErr error
	variants   []dbgen.ProductVariant
	images     []dbgen.ProductImage
	summary    dbgen.GetReviewSummaryRow

	listCalls int
}

func (s *stubProvider) ListCategories(context.Context) ([]dbgen.Category, error) {
	return s.categories, nil
}

func (s *stubProvider) GetCategoryBySlug(context.Context, string) (dbgen.Category, error) {
	return dbgen.Category{}, pgx.ErrNoRows
}

func (s *stubProvider) CountProductsPublic(context.Context, dbgen.CountProductsPublicParams) (int64, error) {
	return s.total, nil
}

func (s *stubProvider) ListProductsPublic(context.Context, dbgen.ListProductsPublicParams) ([]dbgen.ListProductsPublicRow, error) {
	s.listCalls++
	return s.products, nil
}

func (s *stubProvider) GetProductBySlug(context.Context, string) (dbgen.GetProductBySlugRow, error) {
	return s.product, s.productErr
}

func (s *stubProvider) ListActiveVariantsByProduct(context.Context, pgtype.UUID) ([]dbgen.ProductVariant, error) {
	return s.variants, nil
}

func (s *stubProvider) ListImagesByProduct(context.Context, pgtype.UUID) ([]dbgen.ProductImage, error) {
	return s.images, nil
}

func (s *stubProvider) GetReviewSummary(context.Context, pgtype.UUID) (dbgen.GetReviewSummaryRow, error) {
	return s.summary, nil
}

type stubPriceQueries struct {
	role  string
	batch []dbgen.ListLatestActiveVariantPricesRow
}

func (s *stubPriceQueries) GetProfileRole(context.Context, pgtype.UUID) (string, error) {
	return s.role, nil
}

func (s *stubPriceQueries) GetLatestActiveVariantPrice(context.Context, dbgen.GetLatestActiveVariantPriceParams) (int64, error) {
	return 0, pgx.ErrNoRows
}

func (s *stubPriceQueries) ListLatestActiveVariantPrices(context.Context, dbgen.ListLatestActiveVariantPricesParams) ([]dbgen.ListLatestActiveVariantPricesRow, error) {
	return s.batch, nil
}

func testUUID(t *testing.T) pgtype.UUID {
	t.Helper()
	return pgtype.UUID{Bytes: uuid.New(), Valid: true}
}

func newTestService(t *testing.T, provider *stubProvider) *catalog.Service {
	t.Helper()
	svc, err := catalog.NewService(catalog.ServiceConfig{Queries: provider})
	require.NoError(t, err)
	return svc
}

func TestProductsEndpoint(t *testing.T) {
	provider := &stubProvider{
		total: 1,
		products: []dbgen.ListProductsPublicRow{{
			ID:        testUUID(t),
			Name:      "Solar Panel 450W",
			Slug:      "solar-panel-450w",
			VariantID: testUUID(t),
			BasePrice: 450000,
			Stock:     3,
			Thumbnail: pgtype.Text{String: "https://cdn.example.com/p.jpg", Valid: true},
		}},
	}
	handler := catalog.NewHandler(catalog.HandlerConfig{Service: newTestService(t, provider)})

	r := chi.NewRouter()
	r.Get("/api/v1/products", handler.Products)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-Total-Count"))

	var body struct {
		Data []catalog.ProductListItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, int64(450000), body.Data[0].Price)
	assert.True(t, body.Data[0].InStock)
	require.NotNil(t, body.Data[0].Thumbnail)
	assert.Equal(t, "https://cdn.example.com/p.jpg", *body.Data[0].Thumbnail)
}

func TestProductsRejectsBadPage(t *testing.T) {
	handler := catalog.NewHandler(catalog.HandlerConfig{Service: newTestService(t, &stubProvider{})})

	r := chi.NewRouter()
	r.Get("/api/v1/products", handler.Products)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?page=zero", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "BAD_REQUEST")
}

func TestProductsOverlaysDealerListPrices(t *testing.T) {
	vID := testUUID(t)
	provider := &stubProvider{
		total: 1,
		products: []dbgen.ListProductsPublicRow{{
			ID:        testUUID(t),
			Name:      "Solar Panel 450W",
			Slug:      "solar-panel-450w",
			VariantID: vID,
			BasePrice: 450000,
			Stock:     3,
		}},
	}
	resolver := &pricing.Resolver{
		Q:   &stubPriceQueries{role: "b2b", batch: []dbgen.ListLatestActiveVariantPricesRow{{VariantID: vID, Price: 390000}}},
		Log: zerolog.Nop(),
	}
	svc, err := catalog.NewService(catalog.ServiceConfig{Queries: provider, Prices: resolver})
	require.NoError(t, err)
	handler := catalog.NewHandler(catalog.HandlerConfig{Service: svc, Prices: resolver})

	r := chi.NewRouter()
	r.Get("/api/v1/products", handler.Products)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	req = req.WithContext(common.WithUserID(req.Context(), uuid.NewString()))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data []catalog.ProductListItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, int64(390000), body.Data[0].Price)
}

func TestProductsDealerSkipsSharedCache(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	vID := testUUID(t)
	provider := &stubProvider{
		total: 1,
		products: []dbgen.ListProductsPublicRow{{
			ID:        testUUID(t),
			Name:      "Solar Panel 450W",
			Slug:      "solar-panel-450w",
			VariantID: vID,
			BasePrice: 450000,
			Stock:     3,
		}},
	}
	resolver := &pricing.Resolver{
		Q:   &stubPriceQueries{role: "b2b", batch: []dbgen.ListLatestActiveVariantPricesRow{{VariantID: vID, Price: 390000}}},
		Log: zerolog.Nop(),
	}
	svc, err := catalog.NewService(catalog.ServiceConfig{
		Queries: provider,
		Cache:   catalog.NewCache(client, time.Minute),
		Prices:  resolver,
	})
	require.NoError(t, err)
	handler := catalog.NewHandler(catalog.HandlerConfig{Service: svc, Prices: resolver})

	r := chi.NewRouter()
	r.Get("/api/v1/products", handler.Products)

	listPrice := func(req *http.Request) int64 {
		t.Helper()
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Data []catalog.ProductListItem `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Data, 1)
		return body.Data[0].Price
	}
	anonReq := func() *http.Request {
		return httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	}
	dealerReq := func() *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
		return req.WithContext(common.WithUserID(req.Context(), uuid.NewString()))
	}

	assert.Equal(t, int64(450000), listPrice(anonReq()))
	assert.Equal(t, int64(450000), listPrice(anonReq()))
	assert.Equal(t, 1, provider.listCalls, "retail rendering should come from cache on repeat")

	assert.Equal(t, int64(390000), listPrice(dealerReq()))
	assert.Equal(t, 2, provider.listCalls, "dealer rendering must not read the shared cache")

	assert.Equal(t, int64(450000), listPrice(anonReq()))
	assert.Equal(t, 2, provider.listCalls, "dealer rendering must not overwrite the shared cache")
}

func TestProductDetailNotFound(t *testing.T) {
	provider := &stubProvider{productErr: pgx.ErrNoRows}
	handler := catalog.NewHandler(catalog.HandlerConfig{Service: newTestService(t, provider)})

	r := chi.NewRouter()
	r.Get("/api/v1/products/{slug}", handler.ProductDetail)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/unknown", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductDetailHidesInactiveProduct(t *testing.T) {
	provider := &stubProvider{product: dbgen.GetProductBySlugRow{
		ID:       testUUID(t),
		Name:     "Discontinued Panel",
		Slug:     "discontinued-panel",
		IsActive: false,
	}}
	handler := catalog.NewHandler(catalog.HandlerConfig{Service: newTestService(t, provider)})

	r := chi.NewRouter()
	r.Get("/api/v1/products/{slug}", handler.ProductDetail)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/discontinued-panel", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProductDetailAssemblesPayload(t *testing.T) {
	vID := testUUID(t)
	provider := &stubProvider{
		product: dbgen.GetProductBySlugRow{
			ID:           testUUID(t),
			Name:         "Solar Panel 450W",
			Slug:         "solar-panel-450w",
			IsActive:     true,
			CategoryName: pgtype.Text{String: "Paneller", Valid: true},
			CategorySlug: pgtype.Text{String: "paneller", Valid: true},
		},
		variants: []dbgen.ProductVariant{{
			ID:         vID,
			Name:       "450W Mono",
			Sku:        pgtype.Text{String: "PNL-450M", Valid: true},
			BasePrice:  450000,
			Stock:      5,
			Attributes: []byte(`{"watt":450}`),
		}},
		images:  []dbgen.ProductImage{{Url: "https://cdn.example.com/1.jpg"}},
		summary: dbgen.GetReviewSummaryRow{ReviewCount: 4, AvgRating: 4.5},
	}
	svc := newTestService(t, provider)

	detail, err := svc.GetProductDetail(context.Background(), "solar-panel-450w", pricing.RoleB2C)
	require.NoError(t, err)
	require.Len(t, detail.Variants, 1)
	assert.Equal(t, int64(450000), detail.Variants[0].Price)
	assert.Equal(t, float64(450), detail.Variants[0].Attributes["watt"])
	assert.Equal(t, []string{"https://cdn.example.com/1.jpg"}, detail.Images)
	assert.Equal(t, int64(4), detail.ReviewCount)
	assert.InDelta(t, 4.5, detail.AvgRating, 0.001)
	require.NotNil(t, detail.CategorySlug)
	assert.Equal(t, "paneller", *detail.CategorySlug)
}

func TestListCategoriesIncludesParentLinkage(t *testing.T) {
	parent := testUUID(t)
	provider := &stubProvider{categories: []dbgen.Category{
		{ID: parent, Name: "Enerji", Slug: "enerji"},
		{ID: testUUID(t), Name: "Paneller", Slug: "paneller", ParentID: parent},
	}}
	svc := newTestService(t, provider)

	rows, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Nil(t, rows[0].ParentID)
	require.NotNil(t, rows[1].ParentID)
	assert.Equal(t, rows[0].ID, *rows[1].ParentID)
}

func TestListProductsClampsLimit(t *testing.T) {
	svc, err := catalog.NewService(catalog.ServiceConfig{Queries: &stubProvider{}, MaxLimit: 50})
	require.NoError(t, err)

	params, err := svc.ParseListParams(map[string][]string{"limit": {"500"}})
	require.NoError(t, err)
	assert.Equal(t, 50, params.Limit)
}
