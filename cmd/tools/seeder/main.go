package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/alexedwards/argon2id"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping DB: %v", err)
	}

	seedPriceLists(ctx, pool)
	seedProfiles(ctx, pool)
	seedCatalog(ctx, pool)
	seedContent(ctx, pool)

	log.Println("Seeding completed successfully!")
}

func seedPriceLists(ctx context.Context, pool *pgxpool.Pool) {
	fmt.Println("Seeding Price Lists...")
	lists := []struct {
		Name string
		Kind string
	}{
		{"Perakende", "b2c"},
		{"Bayi", "b2b"},
	}
	for _, l := range lists {
		_, err := pool.Exec(ctx, `
			INSERT INTO price_lists (name, currency, kind)
			VALUES ($1, 'TRY', $2)
			ON CONFLICT (kind) DO NOTHING;
		`, l.Name, l.Kind)
		if err != nil {
			log.Printf("Failed to seed price list %s: %v", l.Name, err)
		}
	}
}

func seedProfiles(ctx context.Context, pool *pgxpool.Pool) {
	profiles := []struct {
		FullName string
		Email    string
		Role     string
	}{
		{"Orbis Yönetici", "admin@orbisenerji.com.tr", "admin"},
		{"Ayşe Yılmaz", "ayse.yilmaz@example.com", "b2c"},
		{"Mehmet Demir", "mehmet.demir@example.com", "b2c"},
		{"Zeynep Kaya", "zeynep.kaya@example.com", "b2c"},
		{"Güneş Enerji Sistemleri Ltd.", "satis@gunesenerji.example.com", "b2b"},
		{"Ege Solar A.Ş.", "bayi@egesolar.example.com", "b2b"},
	}

	fmt.Println("Seeding Profiles...")
	hash, err := argon2id.CreateHash("parola123", argon2id.DefaultParams)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}
	for _, p := range profiles {
		_, err := pool.Exec(ctx, `
			INSERT INTO profiles (email, full_name, role, password_hash)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (email) DO NOTHING;
		`, p.Email, p.FullName, p.Role, hash)
		if err != nil {
			log.Printf("Failed to seed profile %s: %v", p.Email, err)
		}
	}
}

func seedCatalog(ctx context.Context, pool *pgxpool.Pool) {
	categories := []struct {
		Name string
		Slug string
	}{
		{"Güneş Panelleri", "gunes-panelleri"},
		{"İnverterler", "inverterler"},
		{"Aküler", "akuler"},
		{"Şarj Kontrol Cihazları", "sarj-kontrol-cihazlari"},
		{"Montaj Sistemleri", "montaj-sistemleri"},
		{"Kablolar ve Konnektörler", "kablolar-ve-konnektorler"},
		{"Paket Sistemler", "paket-sistemler"},
	}

	fmt.Println("Seeding Categories...")
	catIDs := make(map[string]string)
	for i, c := range categories {
		var id string
		err := pool.QueryRow(ctx, `
			INSERT INTO categories (name, slug, sort_order)
			VALUES ($1, $2, $3)
			ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name, sort_order = EXCLUDED.sort_order
			RETURNING id;
		`, c.Name, c.Slug, i).Scan(&id)
		if err != nil {
			log.Printf("Failed to upsert category %s: %v", c.Name, err)
			continue
		}
		catIDs[c.Slug] = id
	}

	products := []struct {
		Name        string
		Slug        string
		Category    string
		Description string
		Variants    []seedVariant
	}{
		{
			Name:        "Orbis Mono 450W Güneş Paneli",
			Slug:        "orbis-mono-450w-gunes-paneli",
			Category:    "gunes-panelleri",
			Description: "450W monokristal half-cut hücreli güneş paneli. 25 yıl performans garantisi.",
			Variants: []seedVariant{
				{Name: "450W", SKU: "ORB-PNL-450", Retail: 8_500_00, Dealer: 7_200_00, Stock: 120},
			},
		},
		{
			Name:        "Orbis Mono 550W Güneş Paneli",
			Slug:        "orbis-mono-550w-gunes-paneli",
			Category:    "gunes-panelleri",
			Description: "550W yüksek verimli monokristal panel, ticari çatı kurulumları için.",
			Variants: []seedVariant{
				{Name: "550W", SKU: "ORB-PNL-550", Retail: 10_900_00, Dealer: 9_300_00, Stock: 80},
			},
		},
		{
			Name:        "Orbis Hybrid İnverter",
			Slug:        "orbis-hybrid-inverter",
			Category:    "inverterler",
			Description: "Şebeke bağlantılı hibrit inverter, MPPT şarj kontrollü, Wi-Fi izleme dahildir.",
			Variants: []seedVariant{
				{Name: "3.6kW", SKU: "ORB-INV-3K6", Retail: 32_000_00, Dealer: 27_500_00, Stock: 35},
				{Name: "5kW", SKU: "ORB-INV-5K", Retail: 42_500_00, Dealer: 36_800_00, Stock: 28},
				{Name: "8kW", SKU: "ORB-INV-8K", Retail: 61_000_00, Dealer: 53_000_00, Stock: 12},
			},
		},
		{
			Name:        "Orbis LiFePO4 Akü 100Ah",
			Slug:        "orbis-lifepo4-aku-100ah",
			Category:    "akuler",
			Description: "12.8V 100Ah lityum demir fosfat akü, dahili BMS, 6000 çevrim ömrü.",
			Variants: []seedVariant{
				{Name: "12.8V 100Ah", SKU: "ORB-AKU-100", Retail: 24_900_00, Dealer: 21_000_00, Stock: 45},
			},
		},
		{
			Name:        "Orbis Jel Akü 200Ah",
			Slug:        "orbis-jel-aku-200ah",
			Category:    "akuler",
			Description: "12V 200Ah derin döngü jel akü, bakım gerektirmez.",
			Variants: []seedVariant{
				{Name: "12V 200Ah", SKU: "ORB-AKU-J200", Retail: 14_500_00, Dealer: 12_300_00, Stock: 60},
			},
		},
		{
			Name:        "Orbis MPPT Şarj Kontrol Cihazı",
			Slug:        "orbis-mppt-sarj-kontrol",
			Category:    "sarj-kontrol-cihazlari",
			Description: "MPPT teknolojili şarj kontrol cihazı, LCD ekran, 12V/24V otomatik algılama.",
			Variants: []seedVariant{
				{Name: "30A", SKU: "ORB-MPPT-30", Retail: 4_800_00, Dealer: 3_900_00, Stock: 150},
				{Name: "60A", SKU: "ORB-MPPT-60", Retail: 8_200_00, Dealer: 6_900_00, Stock: 90},
			},
		},
		{
			Name:        "Alüminyum Çatı Montaj Seti",
			Slug:        "aluminyum-cati-montaj-seti",
			Category:    "montaj-sistemleri",
			Description: "Kiremit çatılar için eloksallı alüminyum montaj seti, 4 panel kapasiteli.",
			Variants: []seedVariant{
				{Name: "4 Panel", SKU: "ORB-MNT-4P", Retail: 6_400_00, Dealer: 5_200_00, Stock: 70},
			},
		},
		{
			Name:        "Solar Kablo 6mm²",
			Slug:        "solar-kablo-6mm",
			Category:    "kablolar-ve-konnektorler",
			Description: "UV dayanımlı çift izolasyonlu solar kablo, metre fiyatıdır.",
			Variants: []seedVariant{
				{Name: "Siyah", SKU: "ORB-KBL-6S", Retail: 95_00, Dealer: 72_00, Stock: 2000},
				{Name: "Kırmızı", SKU: "ORB-KBL-6K", Retail: 95_00, Dealer: 72_00, Stock: 2000},
			},
		},
		{
			Name:        "Bağ Evi Paket Sistemi 3kW",
			Slug:        "bag-evi-paket-sistemi-3kw",
			Category:    "paket-sistemler",
			Description: "Şebekeden bağımsız 3kW paket: 6 panel, hibrit inverter, 2 akü ve montaj malzemeleri.",
			Variants: []seedVariant{
				{Name: "3kW Paket", SKU: "ORB-PKT-3K", Retail: 145_000_00, Dealer: 126_000_00, Stock: 8},
			},
		},
	}

	fmt.Println("Seeding Products...")
	for _, p := range products {
		catID, ok := catIDs[p.Category]
		if !ok {
			log.Printf("Missing category ID for %s", p.Category)
			continue
		}

		var prodID string
		err := pool.QueryRow(ctx, `
			INSERT INTO products (name, slug, description, category_id, is_active)
			VALUES ($1, $2, $3, $4, true)
			ON CONFLICT (slug) DO UPDATE SET
				name = EXCLUDED.name,
				description = EXCLUDED.description,
				category_id = EXCLUDED.category_id
			RETURNING id;
		`, p.Name, p.Slug, p.Description, catID).Scan(&prodID)
		if err != nil {
			log.Printf("Failed to seed product %s: %v", p.Name, err)
			continue
		}

		for _, v := range p.Variants {
			var variantID string
			err := pool.QueryRow(ctx, `
				INSERT INTO product_variants (product_id, name, sku, base_price, stock, is_active)
				VALUES ($1, $2, $3, $4, $5, true)
				ON CONFLICT (sku) DO UPDATE SET
					base_price = EXCLUDED.base_price,
					stock = EXCLUDED.stock
				RETURNING id;
			`, prodID, v.Name, v.SKU, v.Retail, v.Stock).Scan(&variantID)
			if err != nil {
				log.Printf("Failed to seed variant %s: %v", v.SKU, err)
				continue
			}
			seedVariantPrice(ctx, pool, variantID, "b2c", v.Retail)
			seedVariantPrice(ctx, pool, variantID, "b2b", v.Dealer)
		}

		imageSlug := strings.ReplaceAll(p.Slug, "-", "_")
		_, err = pool.Exec(ctx, `
			INSERT INTO product_images (product_id, url, sort_order)
			VALUES ($1, $2, 0)
			ON CONFLICT DO NOTHING;
		`, prodID, fmt.Sprintf("https://cdn.orbisenerji.com.tr/products/%s.jpg", imageSlug))
		if err != nil {
			log.Printf("Failed to seed image for %s: %v", p.Name, err)
		}
	}
}

type seedVariant struct {
	Name   string
	SKU    string
	Retail int64
	Dealer int64
	Stock  int32
}

func seedVariantPrice(ctx context.Context, pool *pgxpool.Pool, variantID, kind string, price int64) {
	_, err := pool.Exec(ctx, `
		INSERT INTO variant_prices (variant_id, price_list_id, price, is_active)
		SELECT $1, pl.id, $2, true
		FROM price_lists pl
		WHERE pl.kind = $3
		ON CONFLICT DO NOTHING;
	`, variantID, price, kind)
	if err != nil {
		log.Printf("Failed to seed %s price for variant %s: %v", kind, variantID, err)
	}
}

func seedContent(ctx context.Context, pool *pgxpool.Pool) {
	fmt.Println("Seeding Content...")

	slides := []struct {
		Title    string
		Subtitle string
		Image    string
		Link     string
	}{
		{"Güneşin Gücü Evinizde", "Paket sistemlerde kurulum dahil fiyatlar", "https://cdn.orbisenerji.com.tr/hero/paket_sistemler.jpg", "/paket-sistemler"},
		{"Bayilik Fırsatları", "Bayi fiyat listesi için başvurun", "https://cdn.orbisenerji.com.tr/hero/bayilik.jpg", "/bayilik-basvurusu"},
		{"Yeni Nesil LiFePO4 Aküler", "6000 çevrim ömrü, 5 yıl garanti", "https://cdn.orbisenerji.com.tr/hero/lifepo4.jpg", "/akuler"},
	}
	for i, s := range slides {
		_, err := pool.Exec(ctx, `
			INSERT INTO hero_slides (title, subtitle, image_url, link_url, sort_order, is_active)
			VALUES ($1, $2, $3, $4, $5, true)
			ON CONFLICT DO NOTHING;
		`, s.Title, s.Subtitle, s.Image, s.Link, i)
		if err != nil {
			log.Printf("Failed to seed hero slide %q: %v", s.Title, err)
		}
	}

	var collectionID string
	err := pool.QueryRow(ctx, `
		INSERT INTO featured_collections (title, slug, image_url, sort_order, is_active)
		VALUES ('Çok Satanlar', 'cok-satanlar', 'https://cdn.orbisenerji.com.tr/collections/cok_satanlar.jpg', 0, true)
		ON CONFLICT (slug) DO UPDATE SET title = EXCLUDED.title
		RETURNING id;
	`).Scan(&collectionID)
	if err != nil {
		log.Printf("Failed to seed featured collection: %v", err)
	} else {
		_, err = pool.Exec(ctx, `
			INSERT INTO collection_products (collection_id, product_id, sort_order)
			SELECT $1, p.id, row_number() OVER (ORDER BY p.created_at)
			FROM products p
			WHERE p.slug IN ('orbis-mono-450w-gunes-paneli', 'orbis-hybrid-inverter', 'orbis-lifepo4-aku-100ah')
			ON CONFLICT DO NOTHING;
		`, collectionID)
		if err != nil {
			log.Printf("Failed to seed collection products: %v", err)
		}
	}

	pages := []struct {
		Slug  string
		Title string
		Body  string
	}{
		{"kvkk-aydinlatma-metni", "KVKK Aydınlatma Metni", "<h1>KVKK Aydınlatma Metni</h1><p>6698 sayılı Kişisel Verilerin Korunması Kanunu kapsamında kişisel verileriniz, sipariş süreçlerinin yürütülmesi amacıyla işlenmektedir.</p>"},
		{"mesafeli-satis-sozlesmesi", "Mesafeli Satış Sözleşmesi", "<h1>Mesafeli Satış Sözleşmesi</h1><p>İşbu sözleşme, Orbis Enerji ile alıcı arasında kurulan mesafeli satış ilişkisinin şartlarını düzenler.</p>"},
		{"iade-ve-degisim", "İade ve Değişim Koşulları", "<h1>İade ve Değişim</h1><p>Teslim tarihinden itibaren 14 gün içinde cayma hakkınızı kullanabilirsiniz.</p>"},
	}
	for _, p := range pages {
		_, err := pool.Exec(ctx, `
			INSERT INTO legal_pages (slug, title, body)
			VALUES ($1, $2, $3)
			ON CONFLICT (slug) DO UPDATE SET title = EXCLUDED.title, body = EXCLUDED.body, updated_at = now();
		`, p.Slug, p.Title, p.Body)
		if err != nil {
			log.Printf("Failed to seed legal page %s: %v", p.Slug, err)
		}
	}
}
