package service

import (
	"fmt"
	"strings"

	"github.com/laga-admin/internal/constants"
	"github.com/laga-admin/internal/models"
	"github.com/laga-admin/internal/repository"

	"gorm.io/gorm"
)

// ProductService 商品服务
// 商品存在规格时，聚合库存恒等于全部规格库存之和；
// 无规格时以显式传入的库存为准。
type ProductService struct {
	productRepo repository.ProductRepository
	variantRepo repository.ProductVariantRepository
	notifier    Notifier

	lowStockThreshold int
}

// NewProductService 创建商品服务
func NewProductService(
	productRepo repository.ProductRepository,
	variantRepo repository.ProductVariantRepository,
	notifier Notifier,
	lowStockThreshold int,
) *ProductService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &ProductService{
		productRepo:       productRepo,
		variantRepo:       variantRepo,
		notifier:          notifier,
		lowStockThreshold: lowStockThreshold,
	}
}

// VariantInput 商品规格输入
type VariantInput struct {
	Name        string
	SKU         string
	PriceAmount models.Money
	Stock       int
}

// CreateProductInput 创建商品输入
type CreateProductInput struct {
	Title       string
	Description string
	Images      []string
	PriceAmount models.Money
	Stock       int
	CategoryID  uint
	Variants    []VariantInput
}

// UpdateProductInput 更新商品输入
type UpdateProductInput struct {
	Title       string
	Description string
	Images      []string
	PriceAmount models.Money
	Stock       *int
	CategoryID  uint
}

// List 商品列表
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

// Get 商品详情
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create 创建商品（连同规格）
func (s *ProductService) Create(input CreateProductInput) (*models.Product, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrProductInvalid
	}
	if input.PriceAmount.IsNegative() {
		return nil, ErrProductInvalid
	}
	if input.Stock < 0 {
		return nil, ErrProductInvalid
	}
	for _, v := range input.Variants {
		if strings.TrimSpace(v.Name) == "" || v.Stock < 0 || v.PriceAmount.IsNegative() {
			return nil, ErrVariantInvalid
		}
	}

	product := &models.Product{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Images:      models.StringArray(input.Images),
		PriceAmount: input.PriceAmount,
		Stock:       input.Stock,
		CategoryID:  input.CategoryID,
	}

	// 有规格时聚合库存取规格之和，忽略显式传入值
	if len(input.Variants) > 0 {
		total := 0
		for _, v := range input.Variants {
			total += v.Stock
		}
		product.Stock = total
	}

	err := s.productRepo.Transaction(func(tx *gorm.DB) error {
		productTx := s.productRepo.WithTx(tx)
		variantTx := s.variantRepo.WithTx(tx)

		if err := productTx.Create(product); err != nil {
			return err
		}
		for _, v := range input.Variants {
			variant := &models.ProductVariant{
				ProductID:   product.ID,
				VariantKey:  buildVariantKey(product.ID, v.Name),
				Name:        strings.TrimSpace(v.Name),
				SKU:         strings.TrimSpace(v.SKU),
				PriceAmount: v.PriceAmount,
				Stock:       v.Stock,
			}
			if err := variantTx.Create(variant); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(product.ID)
}

// Update 更新商品基础信息
// 存在规格时忽略显式库存，聚合库存由规格变更联动维护。
func (s *ProductService) Update(id uint, input UpdateProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrProductInvalid
	}
	if input.PriceAmount.IsNegative() {
		return nil, ErrProductInvalid
	}

	product.Title = title
	product.Description = strings.TrimSpace(input.Description)
	product.Images = models.StringArray(input.Images)
	product.PriceAmount = input.PriceAmount
	product.CategoryID = input.CategoryID

	if len(product.Variants) == 0 && input.Stock != nil {
		if *input.Stock < 0 {
			return nil, ErrProductInvalid
		}
		product.Stock = *input.Stock
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	s.checkLowStock(product.ID, product.Title, product.Stock)
	return s.productRepo.GetByID(id)
}

// Delete 删除商品及其规格
func (s *ProductService) Delete(id uint) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	return s.productRepo.Transaction(func(tx *gorm.DB) error {
		if err := s.variantRepo.WithTx(tx).DeleteByProduct(id); err != nil {
			return err
		}
		return s.productRepo.WithTx(tx).Delete(id)
	})
}

// UpdateStock 直接设置无规格商品的库存
func (s *ProductService) UpdateStock(id uint, stock int) (*models.Product, error) {
	if stock < 0 {
		return nil, ErrProductInvalid
	}
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	if len(product.Variants) > 0 {
		// 有规格商品的库存只能通过规格调整
		return nil, ErrProductInvalid
	}
	if err := s.productRepo.UpdateStock(id, stock); err != nil {
		return nil, err
	}
	s.checkLowStock(product.ID, product.Title, stock)
	return s.productRepo.GetByID(id)
}

// AddVariant 新增规格并联动聚合库存
func (s *ProductService) AddVariant(productID uint, input VariantInput) (*models.Product, error) {
	if strings.TrimSpace(input.Name) == "" || input.Stock < 0 || input.PriceAmount.IsNegative() {
		return nil, ErrVariantInvalid
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	err = s.productRepo.Transaction(func(tx *gorm.DB) error {
		variantTx := s.variantRepo.WithTx(tx)
		variant := &models.ProductVariant{
			ProductID:   productID,
			VariantKey:  buildVariantKey(productID, input.Name),
			Name:        strings.TrimSpace(input.Name),
			SKU:         strings.TrimSpace(input.SKU),
			PriceAmount: input.PriceAmount,
			Stock:       input.Stock,
		}
		if err := variantTx.Create(variant); err != nil {
			return err
		}
		return s.syncAggregateStock(tx, productID)
	})
	if err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(productID)
}

// UpdateVariant 更新规格并联动聚合库存
func (s *ProductService) UpdateVariant(variantID uint, input VariantInput) (*models.Product, error) {
	if strings.TrimSpace(input.Name) == "" || input.Stock < 0 || input.PriceAmount.IsNegative() {
		return nil, ErrVariantInvalid
	}
	variant, err := s.variantRepo.GetByID(variantID)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, ErrNotFound
	}

	err = s.productRepo.Transaction(func(tx *gorm.DB) error {
		variantTx := s.variantRepo.WithTx(tx)
		variant.Name = strings.TrimSpace(input.Name)
		variant.SKU = strings.TrimSpace(input.SKU)
		variant.PriceAmount = input.PriceAmount
		variant.Stock = input.Stock
		if err := variantTx.Update(variant); err != nil {
			return err
		}
		return s.syncAggregateStock(tx, variant.ProductID)
	})
	if err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(variant.ProductID)
}

// DeleteVariant 删除规格并联动聚合库存
func (s *ProductService) DeleteVariant(variantID uint) (*models.Product, error) {
	variant, err := s.variantRepo.GetByID(variantID)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, ErrNotFound
	}

	err = s.productRepo.Transaction(func(tx *gorm.DB) error {
		if err := s.variantRepo.WithTx(tx).Delete(variantID); err != nil {
			return err
		}
		return s.syncAggregateStock(tx, variant.ProductID)
	})
	if err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(variant.ProductID)
}

// syncAggregateStock 在事务内重算聚合库存
func (s *ProductService) syncAggregateStock(tx *gorm.DB, productID uint) error {
	productTx := s.productRepo.WithTx(tx)
	sum, err := productTx.SumVariantStock(productID)
	if err != nil {
		return err
	}
	if err := productTx.UpdateStock(productID, sum); err != nil {
		return err
	}
	if s.lowStockThreshold > 0 && sum < s.lowStockThreshold {
		product, err := productTx.GetByID(productID)
		if err == nil && product != nil {
			s.notifyLowStock(productID, product.Title, sum)
		}
	}
	return nil
}

func (s *ProductService) checkLowStock(productID uint, title string, stock int) {
	if s.lowStockThreshold > 0 && stock < s.lowStockThreshold {
		s.notifyLowStock(productID, title, stock)
	}
}

func (s *ProductService) notifyLowStock(productID uint, title string, stock int) {
	s.notifier.Notify(
		constants.NotificationTypeStock,
		"商品库存不足",
		fmt.Sprintf("商品「%s」剩余库存 %d", title, stock),
		fmt.Sprintf("%d", productID),
	)
}

// buildVariantKey 生成规格标识（商品ID + 规格名 slug）
func buildVariantKey(productID uint, name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	return fmt.Sprintf("p%d-%s", productID, slug)
}
