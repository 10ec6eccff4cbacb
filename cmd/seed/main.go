package main

import (
	"time"

	"github.com/laga-admin/internal/config"
	"github.com/laga-admin/internal/constants"
	"github.com/laga-admin/internal/logger"
	"github.com/laga-admin/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 商品分类
	categories := []models.Category{
		{Title: "球衣"},
		{Title: "球鞋"},
		{Title: "周边配件"},
	}
	categoryIDs := map[string]uint{}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("title = ?", cat.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Title, err)
				continue
			}
			stdLog.Printf("Created category: %s", cat.Title)
			categoryIDs[cat.Title] = cat.ID
		} else {
			stdLog.Printf("Category already exists: %s", cat.Title)
			categoryIDs[cat.Title] = existing.ID
		}
	}

	// 商品（含规格）
	products := []models.Product{
		{
			Title:       "Laga 主场球衣 2026",
			Description: "速干面料，官方正品主场球衣",
			Images:      models.StringArray([]string{"https://images.unsplash.com/photo-1577212017184-80cc0da11082?w=800"}),
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(250000)),
			CategoryID:  categoryIDs["球衣"],
			Variants: []models.ProductVariant{
				{Name: "S", SKU: "JSY-HOME-S", PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(250000)), Stock: 20},
				{Name: "M", SKU: "JSY-HOME-M", PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(250000)), Stock: 30},
				{Name: "L", SKU: "JSY-HOME-L", PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(250000)), Stock: 25},
			},
		},
		{
			Title:       "训练背心",
			Description: "透气网眼训练背心",
			Images:      models.StringArray([]string{"https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?w=800"}),
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(95000)),
			Stock:       80,
			CategoryID:  categoryIDs["球衣"],
		},
		{
			Title:       "运动水壶",
			Description: "750ml 便携运动水壶",
			Images:      models.StringArray([]string{"https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=800"}),
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(45000)),
			Stock:       150,
			CategoryID:  categoryIDs["周边配件"],
		},
	}
	for i := range products {
		product := &products[i]
		var existing models.Product
		if err := models.DB.Where("title = ?", product.Title).First(&existing).Error; err == nil {
			stdLog.Printf("Product already exists: %s", product.Title)
			continue
		}
		// 有规格商品的聚合库存等于规格库存之和
		if len(product.Variants) > 0 {
			total := 0
			for _, v := range product.Variants {
				total += v.Stock
			}
			product.Stock = total
		}
		if err := models.DB.Create(product).Error; err != nil {
			stdLog.Printf("Failed to create product %s: %v", product.Title, err)
			continue
		}
		stdLog.Printf("Created product: %s", product.Title)
	}

	// 优惠券
	vouchers := []models.Voucher{
		{
			Code:        "WELCOME10",
			Type:        constants.VoucherTypePercentage,
			Value:       models.NewMoneyFromDecimal(decimal.NewFromFloat(10)),
			MinPurchase: models.NewMoneyFromDecimal(decimal.NewFromFloat(100000)),
			MaxDiscount: models.NewMoneyFromDecimal(decimal.NewFromFloat(50000)),
			ValidUntil:  time.Now().AddDate(0, 3, 0),
			IsActive:    true,
		},
		{
			Code:       "FLAT25K",
			Type:       constants.VoucherTypeFlat,
			Value:      models.NewMoneyFromDecimal(decimal.NewFromFloat(25000)),
			ValidUntil: time.Now().AddDate(0, 1, 0),
			IsActive:   true,
		},
	}
	for _, voucher := range vouchers {
		var existing models.Voucher
		if err := models.DB.Where("code = ?", voucher.Code).First(&existing).Error; err == nil {
			stdLog.Printf("Voucher already exists: %s", voucher.Code)
			continue
		}
		if err := models.DB.Create(&voucher).Error; err != nil {
			stdLog.Printf("Failed to create voucher %s: %v", voucher.Code, err)
			continue
		}
		stdLog.Printf("Created voucher: %s", voucher.Code)
	}

	// 物流费率（部分省份示例）
	rates := map[string]float64{
		"DKI Jakarta": 15000,
		"Jawa Barat":  20000,
		"Jawa Timur":  25000,
		"Bali":        30000,
	}
	for province, price := range rates {
		provinceID := constants.ProvinceSlug(province)
		var existing models.LogisticsRate
		if err := models.DB.Where("province_id = ?", provinceID).First(&existing).Error; err == nil {
			stdLog.Printf("Logistics rate already exists: %s", province)
			continue
		}
		rate := models.LogisticsRate{
			ProvinceID:   provinceID,
			ProvinceName: province,
			Price:        models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
		}
		if err := models.DB.Create(&rate).Error; err != nil {
			stdLog.Printf("Failed to create logistics rate %s: %v", province, err)
			continue
		}
		stdLog.Printf("Created logistics rate: %s", province)
	}

	// 电视分类与内容
	tvCategories := []models.TvCategory{
		{Name: "比赛集锦", SortOrder: 1},
		{Name: "训练日常", SortOrder: 2},
		{Name: "球员专访", SortOrder: 3},
	}
	for _, cat := range tvCategories {
		var existing models.TvCategory
		if err := models.DB.Where("name = ?", cat.Name).First(&existing).Error; err == nil {
			stdLog.Printf("TV category already exists: %s", cat.Name)
			continue
		}
		if err := models.DB.Create(&cat).Error; err != nil {
			stdLog.Printf("Failed to create tv category %s: %v", cat.Name, err)
			continue
		}
		stdLog.Printf("Created tv category: %s", cat.Name)
	}

	// 赛事活动
	fantasies := []models.Fantasy{
		{
			Title:     "Laga Fantasy Cup Jakarta",
			Venue:     "GBK Arena",
			City:      "Jakarta",
			EventDate: time.Now().AddDate(0, 2, 0),
			Price:     models.NewMoneyFromDecimal(decimal.NewFromFloat(150000)),
			Quota:     64,
			IsActive:  true,
		},
		{
			Title:     "Laga Fantasy Cup Surabaya",
			Venue:     "DBL Arena",
			City:      "Surabaya",
			EventDate: time.Now().AddDate(0, 3, 0),
			Price:     models.NewMoneyFromDecimal(decimal.NewFromFloat(125000)),
			Quota:     48,
			IsActive:  true,
		},
	}
	for _, fantasy := range fantasies {
		var existing models.Fantasy
		if err := models.DB.Where("title = ?", fantasy.Title).First(&existing).Error; err == nil {
			stdLog.Printf("Fantasy already exists: %s", fantasy.Title)
			continue
		}
		if err := models.DB.Create(&fantasy).Error; err != nil {
			stdLog.Printf("Failed to create fantasy %s: %v", fantasy.Title, err)
			continue
		}
		stdLog.Printf("Created fantasy: %s", fantasy.Title)
	}

	// 球鞋
	shoes := []models.Shoe{
		{Brand: "Ortuseight", Model: "Catalyst Oracle", Size: "42", Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(399000)), Stock: 12, IsActive: true},
		{Brand: "Specs", Model: "Lightspeed 3", Size: "41", Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(349000)), Stock: 8, IsActive: true},
	}
	for _, shoe := range shoes {
		var existing models.Shoe
		if err := models.DB.Where("brand = ? AND model = ? AND size = ?", shoe.Brand, shoe.Model, shoe.Size).First(&existing).Error; err == nil {
			stdLog.Printf("Shoe already exists: %s %s", shoe.Brand, shoe.Model)
			continue
		}
		if err := models.DB.Create(&shoe).Error; err != nil {
			stdLog.Printf("Failed to create shoe %s %s: %v", shoe.Brand, shoe.Model, err)
			continue
		}
		stdLog.Printf("Created shoe: %s %s", shoe.Brand, shoe.Model)
	}

	stdLog.Println("Seed completed")
}
