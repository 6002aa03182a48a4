package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/siwaht/thriftysouq/internal/logger"
	"github.com/siwaht/thriftysouq/internal/models"
	"github.com/siwaht/thriftysouq/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// SeedService 参考数据播种服务。
// 所有记录按自然键（slug/code/email）判重，存在即跳过，从不覆盖。
type SeedService struct {
	categories     repository.CategoryRepository
	products       repository.ProductRepository
	currencies     repository.CurrencyRepository
	pages          repository.PageRepository
	paymentMethods repository.PaymentMethodRepository
	adminUsers     repository.AdminUserRepository
}

// NewSeedService 创建播种服务
func NewSeedService(
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	currencies repository.CurrencyRepository,
	pages repository.PageRepository,
	paymentMethods repository.PaymentMethodRepository,
	adminUsers repository.AdminUserRepository,
) *SeedService {
	return &SeedService{
		categories:     categories,
		products:       products,
		currencies:     currencies,
		pages:          pages,
		paymentMethods: paymentMethods,
		adminUsers:     adminUsers,
	}
}

// SeedOutcome 单条播种结果
type SeedOutcome struct {
	Kind    string `json:"kind"`
	Key     string `json:"key"`
	Outcome string `json:"outcome"`
}

// SeedReport 播种报告
type SeedReport struct {
	Created  int           `json:"created"`
	Existing int           `json:"existing"`
	Outcomes []SeedOutcome `json:"outcomes"`
}

// Summary 人类可读的播种摘要
func (r *SeedReport) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Seeding complete: %d created, %d already existed\n", r.Created, r.Existing)
	for _, outcome := range r.Outcomes {
		fmt.Fprintf(&b, "  %s %q: %s\n", outcome.Kind, outcome.Key, outcome.Outcome)
	}
	return b.String()
}

func (r *SeedReport) record(kind, key string, created bool) {
	outcome := "already exists"
	if created {
		outcome = "created"
		r.Created++
	} else {
		r.Existing++
	}
	r.Outcomes = append(r.Outcomes, SeedOutcome{Kind: kind, Key: key, Outcome: outcome})
}

// Run 播种固定参考数据集，可重复执行
func (s *SeedService) Run(adminEmail, adminPassword string) (*SeedReport, error) {
	report := &SeedReport{Outcomes: []SeedOutcome{}}

	if err := s.seedCategories(report); err != nil {
		return nil, err
	}
	if err := s.seedProducts(report); err != nil {
		return nil, err
	}
	if err := s.seedCurrencies(report); err != nil {
		return nil, err
	}
	if err := s.seedPages(report); err != nil {
		return nil, err
	}
	if err := s.seedPaymentMethods(report); err != nil {
		return nil, err
	}
	if err := s.seedAdminUser(report, adminEmail, adminPassword); err != nil {
		return nil, err
	}

	logger.Infow("seeding finished", "created", report.Created, "existing", report.Existing)
	return report, nil
}

func (s *SeedService) seedCategories(report *SeedReport) error {
	seeds := []models.Category{
		{Name: "Electronics", Slug: "electronics", SortOrder: 1},
		{Name: "Fashion", Slug: "fashion", SortOrder: 2},
		{Name: "Home & Living", Slug: "home-living", SortOrder: 3},
		{Name: "Beauty", Slug: "beauty", SortOrder: 4},
		{Name: "Sports", Slug: "sports", SortOrder: 5},
	}
	for _, seed := range seeds {
		existing, err := s.categories.GetBySlug(seed.Slug)
		if err != nil {
			return err
		}
		if existing != nil {
			report.record("category", seed.Slug, false)
			continue
		}
		category := seed
		if err := s.categories.Create(&category); err != nil {
			return err
		}
		report.record("category", seed.Slug, true)
	}
	return nil
}

func (s *SeedService) seedProducts(report *SeedReport) error {
	type productSeed struct {
		name         string
		slug         string
		sku          string
		categorySlug string
		price        string
		stock        int
	}
	seeds := []productSeed{
		{"Wireless Earbuds", "wireless-earbuds", "ELEC-001", "electronics", "49.99", 120},
		{"Smart Watch", "smart-watch", "ELEC-002", "electronics", "129.00", 60},
		{"Cotton T-Shirt", "cotton-t-shirt", "FASH-001", "fashion", "14.50", 300},
		{"Ceramic Vase", "ceramic-vase", "HOME-001", "home-living", "32.00", 45},
		{"Yoga Mat", "yoga-mat", "SPRT-001", "sports", "24.90", 80},
	}
	for _, seed := range seeds {
		count, err := s.products.CountBySlug(seed.slug)
		if err != nil {
			return err
		}
		if count > 0 {
			report.record("product", seed.slug, false)
			continue
		}
		price, err := decimal.NewFromString(seed.price)
		if err != nil {
			return err
		}
		var categoryID *uint
		if category, err := s.categories.GetBySlug(seed.categorySlug); err != nil {
			return err
		} else if category != nil {
			categoryID = &category.ID
		}
		product := &models.Product{
			Name:              seed.name,
			Slug:              seed.slug,
			SKU:               seed.sku,
			CategoryID:        categoryID,
			BasePrice:         models.NewMoneyFromDecimal(price),
			StockQuantity:     seed.stock,
			LowStockThreshold: 5,
			IsActive:          true,
		}
		if err := s.products.Create(product); err != nil {
			return err
		}
		report.record("product", seed.slug, true)
	}
	return nil
}

func (s *SeedService) seedCurrencies(report *SeedReport) error {
	seeds := []models.Currency{
		{Code: "USD", Name: "US Dollar", Symbol: "$", ExchangeRate: decimal.NewFromInt(1), IsDefault: true, IsActive: true},
		{Code: "AED", Name: "UAE Dirham", Symbol: "د.إ", ExchangeRate: decimal.NewFromFloat(3.6725), IsActive: true},
		{Code: "EUR", Name: "Euro", Symbol: "€", ExchangeRate: decimal.NewFromFloat(0.92), IsActive: true},
	}
	for _, seed := range seeds {
		existing, err := s.currencies.GetByCode(seed.Code)
		if err != nil {
			return err
		}
		if existing != nil {
			report.record("currency", seed.Code, false)
			continue
		}
		currency := seed
		if err := s.currencies.Create(&currency); err != nil {
			return err
		}
		report.record("currency", seed.Code, true)
	}
	return nil
}

func (s *SeedService) seedPages(report *SeedReport) error {
	seeds := []models.Page{
		{Slug: "about-us", Title: "About Us", Content: "Welcome to ThriftySouq.", IsPublished: true},
		{Slug: "shipping-policy", Title: "Shipping Policy", Content: "Orders ship within 2 business days.", IsPublished: true},
		{Slug: "returns", Title: "Returns & Refunds", Content: "Returns accepted within 14 days.", IsPublished: true},
	}
	for _, seed := range seeds {
		existing, err := s.pages.GetBySlug(seed.Slug)
		if err != nil {
			return err
		}
		if existing != nil {
			report.record("page", seed.Slug, false)
			continue
		}
		page := seed
		if err := s.pages.Create(&page); err != nil {
			return err
		}
		report.record("page", seed.Slug, true)
	}
	return nil
}

func (s *SeedService) seedPaymentMethods(report *SeedReport) error {
	seeds := []models.PaymentMethod{
		{Code: "cod", Name: "Cash on Delivery", Description: "Pay when the order arrives", IsActive: true, SortOrder: 1},
		{Code: "card", Name: "Credit / Debit Card", Description: "Visa, Mastercard", IsActive: true, SortOrder: 2},
		{Code: "bank_transfer", Name: "Bank Transfer", Description: "Manual bank transfer", IsActive: false, SortOrder: 3},
	}
	for _, seed := range seeds {
		existing, err := s.paymentMethods.GetByCode(seed.Code)
		if err != nil {
			return err
		}
		if existing != nil {
			report.record("payment_method", seed.Code, false)
			continue
		}
		method := seed
		if err := s.paymentMethods.Create(&method); err != nil {
			return err
		}
		report.record("payment_method", seed.Code, true)
	}
	return nil
}

func (s *SeedService) seedAdminUser(report *SeedReport, email, password string) error {
	if email == "" {
		email = "admin@thriftysouq.local"
	}
	if password == "" {
		password = "changeme"
	}
	existing, err := s.adminUsers.GetByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		report.record("admin_user", email, false)
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &models.AdminUser{
		Email:        email,
		Name:         "Administrator",
		PasswordHash: string(hash),
		Role:         "admin",
		IsActive:     true,
	}
	if err := s.adminUsers.Create(user); err != nil {
		return err
	}
	report.record("admin_user", email, true)
	return nil
}
