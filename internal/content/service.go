package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	dbgen "github.com/orbisenerji/backend-store/internal/db/gen"
)

// ErrNotFound indicates the requested page does not exist.
var ErrNotFound = errors.New("content: not found")

type queryProvider interface {
	ListHeroSlides(ctx context.Context) ([]dbgen.HeroSlide, error)
	ListFeaturedCollections(ctx context.Context) ([]dbgen.FeaturedCollection, error)
	ListCollectionProducts(ctx context.Context, collectionID pgtype.UUID) ([]dbgen.ListCollectionProductsRow, error)
	GetLegalPage(ctx context.Context, slug string) (dbgen.LegalPage, error)
	UpsertLegalPage(ctx context.Context, arg dbgen.UpsertLegalPageParams) (dbgen.LegalPage, error)

	ListAllHeroSlides(ctx context.Context) ([]dbgen.HeroSlide, error)
	CreateHeroSlide(ctx context.Context, arg dbgen.CreateHeroSlideParams) (dbgen.HeroSlide, error)
	UpdateHeroSlide(ctx context.Context, arg dbgen.UpdateHeroSlideParams) (dbgen.HeroSlide, error)
	DeleteHeroSlide(ctx context.Context, id pgtype.UUID) error
	ListAllFeaturedCollections(ctx context.Context) ([]dbgen.FeaturedCollection, error)
	CreateFeaturedCollection(ctx context.Context, arg dbgen.CreateFeaturedCollectionParams) (dbgen.FeaturedCollection, error)
	UpdateFeaturedCollection(ctx context.Context, arg dbgen.UpdateFeaturedCollectionParams) (dbgen.FeaturedCollection, error)
	DeleteFeaturedCollection(ctx context.Context, id pgtype.UUID) error
	ClearCollectionProducts(ctx context.Context, collectionID pgtype.UUID) error
	AddCollectionProduct(ctx context.Context, arg dbgen.AddCollectionProductParams) error
}

// Service assembles the home page content, serves legal pages and backs the
// content management endpoints. Public renderings are audience independent,
// so they cache safely upstream; edits drop the cached home rendering.
type Service struct {
	Q     queryProvider
	Cache cacheReader
}

type cacheReader interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, v any) error
}

// HeroSlide is the public slide payload.
type HeroSlide struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Subtitle *string `json:"subtitle,omitempty"`
	ImageURL string  `json:"imageUrl"`
	LinkURL  *string `json:"linkUrl,omitempty"`
}

// CollectionProduct is a product card inside a featured collection.
type CollectionProduct struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Slug      string  `json:"slug"`
	Price     int64   `json:"price"`
	Thumbnail *string `json:"thumbnail,omitempty"`
}

// Collection is a featured collection with its product cards.
type Collection struct {
	ID       string              `json:"id"`
	Title    string              `json:"title"`
	Slug     string              `json:"slug"`
	ImageURL *string             `json:"imageUrl,omitempty"`
	Products []CollectionProduct `json:"products"`
}

// HomeContent is the full home page payload.
type HomeContent struct {
	HeroSlides  []HeroSlide  `json:"heroSlides"`
	Collections []Collection `json:"collections"`
}

// LegalPage is the public legal document payload.
type LegalPage struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	UpdatedAt any    `json:"updatedAt"`
}

const homeCacheKey = "content:home"

// Home returns hero slides and featured collections with their product cards.
// Prices shown on home cards are always base prices.
func (s *Service) Home(ctx context.Context) (HomeContent, error) {
	if s == nil || s.Q == nil {
		return HomeContent{}, errors.New("content: service not configured")
	}
	if s.Cache != nil {
		var cached HomeContent
		ok, err := s.Cache.GetJSON(ctx, homeCacheKey, &cached)
		if err == nil && ok {
			return cached, nil
		}
	}
	slides, err := s.Q.ListHeroSlides(ctx)
	if err != nil {
		return HomeContent{}, fmt.Errorf("list hero slides: %w", err)
	}
	home := HomeContent{HeroSlides: make([]HeroSlide, 0, len(slides))}
	for _, slide := range slides {
		home.HeroSlides = append(home.HeroSlides, HeroSlide{
			ID:       uuidString(slide.ID),
			Title:    slide.Title,
			Subtitle: nullableText(slide.Subtitle),
			ImageURL: slide.ImageUrl,
			LinkURL:  nullableText(slide.LinkUrl),
		})
	}

	collections, err := s.Q.ListFeaturedCollections(ctx)
	if err != nil {
		return HomeContent{}, fmt.Errorf("list featured collections: %w", err)
	}
	home.Collections = make([]Collection, 0, len(collections))
	for _, col := range collections {
		products, err := s.Q.ListCollectionProducts(ctx, col.ID)
		if err != nil {
			return HomeContent{}, fmt.Errorf("list collection products: %w", err)
		}
		entry := Collection{
			ID:       uuidString(col.ID),
			Title:    col.Title,
			Slug:     col.Slug,
			ImageURL: nullableText(col.ImageUrl),
			Products: make([]CollectionProduct, 0, len(products)),
		}
		for _, p := range products {
			entry.Products = append(entry.Products, CollectionProduct{
				ID:        uuidString(p.ID),
				Name:      p.Name,
				Slug:      p.Slug,
				Price:     p.BasePrice,
				Thumbnail: nullableText(p.Thumbnail),
			})
		}
		home.Collections = append(home.Collections, entry)
	}
	if s.Cache != nil {
		_ = s.Cache.SetJSON(ctx, homeCacheKey, home)
	}
	return home, nil
}

// Legal returns a legal page by slug.
func (s *Service) Legal(ctx context.Context, slug string) (LegalPage, error) {
	if s == nil || s.Q == nil {
		return LegalPage{}, errors.New("content: service not configured")
	}
	page, err := s.Q.GetLegalPage(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return LegalPage{}, ErrNotFound
		}
		return LegalPage{}, fmt.Errorf("get legal page: %w", err)
	}
	return LegalPage{Slug: page.Slug, Title: page.Title, Body: page.Body, UpdatedAt: page.UpdatedAt}, nil
}

// UpsertLegal creates or replaces a legal page.
func (s *Service) UpsertLegal(ctx context.Context, slug, title, body string) (LegalPage, error) {
	if s == nil || s.Q == nil {
		return LegalPage{}, errors.New("content: service not configured")
	}
	page, err := s.Q.UpsertLegalPage(ctx, dbgen.UpsertLegalPageParams{Slug: slug, Title: title, Body: body})
	if err != nil {
		return LegalPage{}, fmt.Errorf("upsert legal page: %w", err)
	}
	return LegalPage{Slug: page.Slug, Title: page.Title, Body: page.Body, UpdatedAt: page.UpdatedAt}, nil
}

// AdminSlide is the back-office slide payload, inactive rows included.
type AdminSlide struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Subtitle  *string `json:"subtitle,omitempty"`
	ImageURL  string  `json:"imageUrl"`
	LinkURL   *string `json:"linkUrl,omitempty"`
	SortOrder int32   `json:"sortOrder"`
	IsActive  bool    `json:"isActive"`
}

// SlideInput carries the editable slide fields.
type SlideInput struct {
	Title     string
	Subtitle  *string
	ImageURL  string
	LinkURL   *string
	SortOrder int32
	IsActive  bool
}

// AdminCollection is the back-office collection payload.
type AdminCollection struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Slug      string  `json:"slug"`
	ImageURL  *string `json:"imageUrl,omitempty"`
	SortOrder int32   `json:"sortOrder"`
	IsActive  bool    `json:"isActive"`
}

// CollectionInput carries the editable collection fields.
type CollectionInput struct {
	Title     string
	Slug      string
	ImageURL  *string
	SortOrder int32
	IsActive  bool
}

// CollectionProductInput pins one product card into a collection.
type CollectionProductInput struct {
	ProductID pgtype.UUID
	SortOrder int32
}

// ListSlides returns every hero slide for the back office.
func (s *Service) ListSlides(ctx context.Context) ([]AdminSlide, error) {
	if s == nil || s.Q == nil {
		return nil, errors.New("content: service not configured")
	}
	rows, err := s.Q.ListAllHeroSlides(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hero slides: %w", err)
	}
	slides := make([]AdminSlide, 0, len(rows))
	for _, row := range rows {
		slides = append(slides, adminSlide(row))
	}
	return slides, nil
}

// CreateSlide adds a hero slide and drops the cached home rendering.
func (s *Service) CreateSlide(ctx context.Context, in SlideInput) (AdminSlide, error) {
	if s == nil || s.Q == nil {
		return AdminSlide{}, errors.New("content: service not configured")
	}
	row, err := s.Q.CreateHeroSlide(ctx, dbgen.CreateHeroSlideParams{
		Title:     in.Title,
		Subtitle:  optionalText(in.Subtitle),
		ImageUrl:  in.ImageURL,
		LinkUrl:   optionalText(in.LinkURL),
		SortOrder: in.SortOrder,
		IsActive:  in.IsActive,
	})
	if err != nil {
		return AdminSlide{}, fmt.Errorf("create hero slide: %w", err)
	}
	s.invalidateHome(ctx)
	return adminSlide(row), nil
}

// UpdateSlide replaces a hero slide and drops the cached home rendering.
func (s *Service) UpdateSlide(ctx context.Context, id pgtype.UUID, in SlideInput) (AdminSlide, error) {
	if s == nil || s.Q == nil {
		return AdminSlide{}, errors.New("content: service not configured")
	}
	row, err := s.Q.UpdateHeroSlide(ctx, dbgen.UpdateHeroSlideParams{
		ID:        id,
		Title:     in.Title,
		Subtitle:  optionalText(in.Subtitle),
		ImageUrl:  in.ImageURL,
		LinkUrl:   optionalText(in.LinkURL),
		SortOrder: in.SortOrder,
		IsActive:  in.IsActive,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return AdminSlide{}, ErrNotFound
		}
		return AdminSlide{}, fmt.Errorf("update hero slide: %w", err)
	}
	s.invalidateHome(ctx)
	return adminSlide(row), nil
}

// DeleteSlide removes a hero slide and drops the cached home rendering.
func (s *Service) DeleteSlide(ctx context.Context, id pgtype.UUID) error {
	if s == nil || s.Q == nil {
		return errors.New("content: service not configured")
	}
	if err := s.Q.DeleteHeroSlide(ctx, id); err != nil {
		return fmt.Errorf("delete hero slide: %w", err)
	}
	s.invalidateHome(ctx)
	return nil
}

// ListCollections returns every featured collection for the back office.
func (s *Service) ListCollections(ctx context.Context) ([]AdminCollection, error) {
	if s == nil || s.Q == nil {
		return nil, errors.New("content: service not configured")
	}
	rows, err := s.Q.ListAllFeaturedCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("list featured collections: %w", err)
	}
	collections := make([]AdminCollection, 0, len(rows))
	for _, row := range rows {
		collections = append(collections, adminCollection(row))
	}
	return collections, nil
}

// CreateCollection adds a featured collection.
func (s *Service) CreateCollection(ctx context.Context, in CollectionInput) (AdminCollection, error) {
	if s == nil || s.Q == nil {
		return AdminCollection{}, errors.New("content: service not configured")
	}
	row, err := s.Q.CreateFeaturedCollection(ctx, dbgen.CreateFeaturedCollectionParams{
		Title:     in.Title,
		Slug:      in.Slug,
		ImageUrl:  optionalText(in.ImageURL),
		SortOrder: in.SortOrder,
		IsActive:  in.IsActive,
	})
	if err != nil {
		return AdminCollection{}, fmt.Errorf("create featured collection: %w", err)
	}
	s.invalidateHome(ctx)
	return adminCollection(row), nil
}

// UpdateCollection replaces a featured collection.
func (s *Service) UpdateCollection(ctx context.Context, id pgtype.UUID, in CollectionInput) (AdminCollection, error) {
	if s == nil || s.Q == nil {
		return AdminCollection{}, errors.New("content: service not configured")
	}
	row, err := s.Q.UpdateFeaturedCollection(ctx, dbgen.UpdateFeaturedCollectionParams{
		ID:        id,
		Title:     in.Title,
		Slug:      in.Slug,
		ImageUrl:  optionalText(in.ImageURL),
		SortOrder: in.SortOrder,
		IsActive:  in.IsActive,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return AdminCollection{}, ErrNotFound
		}
		return AdminCollection{}, fmt.Errorf("update featured collection: %w", err)
	}
	s.invalidateHome(ctx)
	return adminCollection(row), nil
}

// DeleteCollection removes a featured collection and its product pins.
func (s *Service) DeleteCollection(ctx context.Context, id pgtype.UUID) error {
	if s == nil || s.Q == nil {
		return errors.New("content: service not configured")
	}
	if err := s.Q.DeleteFeaturedCollection(ctx, id); err != nil {
		return fmt.Errorf("delete featured collection: %w", err)
	}
	s.invalidateHome(ctx)
	return nil
}

// SetCollectionProducts replaces the product pins of a collection.
func (s *Service) SetCollectionProducts(ctx context.Context, id pgtype.UUID, products []CollectionProductInput) error {
	if s == nil || s.Q == nil {
		return errors.New("content: service not configured")
	}
	if err := s.Q.ClearCollectionProducts(ctx, id); err != nil {
		return fmt.Errorf("clear collection products: %w", err)
	}
	for _, p := range products {
		if err := s.Q.AddCollectionProduct(ctx, dbgen.AddCollectionProductParams{
			CollectionID: id,
			ProductID:    p.ProductID,
			SortOrder:    p.SortOrder,
		}); err != nil {
			return fmt.Errorf("add collection product: %w", err)
		}
	}
	s.invalidateHome(ctx)
	return nil
}

type cacheInvalidator interface {
	Delete(ctx context.Context, key string) error
}

func (s *Service) invalidateHome(ctx context.Context) {
	inv, ok := s.Cache.(cacheInvalidator)
	if !ok {
		return
	}
	_ = inv.Delete(ctx, homeCacheKey)
}

func adminSlide(row dbgen.HeroSlide) AdminSlide {
	return AdminSlide{
		ID:        uuidString(row.ID),
		Title:     row.Title,
		Subtitle:  nullableText(row.Subtitle),
		ImageURL:  row.ImageUrl,
		LinkURL:   nullableText(row.LinkUrl),
		SortOrder: row.SortOrder,
		IsActive:  row.IsActive,
	}
}

func adminCollection(row dbgen.FeaturedCollection) AdminCollection {
	return AdminCollection{
		ID:        uuidString(row.ID),
		Title:     row.Title,
		Slug:      row.Slug,
		ImageURL:  nullableText(row.ImageUrl),
		SortOrder: row.SortOrder,
		IsActive:  row.IsActive,
	}
}

func optionalText(value *string) pgtype.Text {
	if value == nil || *value == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *value, Valid: true}
}

func nullableText(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
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
