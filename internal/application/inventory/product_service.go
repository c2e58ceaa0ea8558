package inventory

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/optibiz/erp/internal/domain/inventory"
	"github.com/optibiz/erp/internal/domain/shared"
	"github.com/optibiz/erp/internal/store"
	"go.uber.org/zap"
)

const defaultLocation = "Main Store"
const defaultImage = "https://placehold.co/300x300?text=No+Image"

// ProductService applies create-or-update operations to the product
// collection
type ProductService struct {
	products *store.Store[inventory.Product]
	validate *validator.Validate
	logger   *zap.Logger
	clock    func() time.Time
}

// NewProductService creates a new ProductService
func NewProductService(products *store.Store[inventory.Product], logger *zap.Logger) *ProductService {
	return &ProductService{
		products: products,
		validate: validator.New(),
		logger:   logger,
		clock:    time.Now,
	}
}

// Create adds a new product. A barcode is generated, the restock date is
// set to today, and location and image fall back to store defaults.
func (s *ProductService) Create(req CreateProductRequest) (inventory.Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return inventory.Product{}, shared.NewDomainError("INVALID_INPUT", err.Error())
	}
	if err := inventory.ValidateProductStatus(req.Status); err != nil {
		return inventory.Product{}, err
	}

	location := req.Location
	if location == "" {
		location = defaultLocation
	}
	image := req.Image
	if image == "" {
		image = defaultImage
	}

	product := inventory.Product{
		ID:            s.products.NextID(),
		Name:          req.Name,
		Category:      req.Category,
		SubCategory:   req.SubCategory,
		SKU:           req.SKU,
		Barcode:       generateBarcode(),
		Description:   req.Description,
		CostPrice:     req.CostPrice,
		SellingPrice:  req.SellingPrice,
		Quantity:      req.Quantity,
		ReorderLevel:  req.ReorderLevel,
		Supplier:      req.Supplier,
		Location:      location,
		Image:         image,
		Status:        req.Status,
		LastRestocked: shared.FormatDate(s.clock()),
		Tags:          []string{strings.ToLower(req.Category)},
		Warranty:      req.Warranty,
	}
	if err := s.products.Append(product); err != nil {
		return inventory.Product{}, err
	}

	s.logger.Info("product created",
		zap.String("product_id", product.ID),
		zap.String("sku", product.SKU))
	return product, nil
}

// Update merges the present request fields over the existing product.
// A quantity change moves the restock date to today.
func (s *ProductService) Update(id string, req UpdateProductRequest) (inventory.Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return inventory.Product{}, shared.NewDomainError("INVALID_INPUT", err.Error())
	}
	product, ok := s.products.Get(id)
	if !ok {
		return inventory.Product{}, shared.ErrNotFound
	}

	if req.Status != nil {
		if err := inventory.ValidateProductStatus(*req.Status); err != nil {
			return inventory.Product{}, err
		}
		product.Status = *req.Status
	}
	if req.Quantity != nil && *req.Quantity != product.Quantity {
		product.Quantity = *req.Quantity
		product.LastRestocked = shared.FormatDate(s.clock())
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.SubCategory != nil {
		product.SubCategory = *req.SubCategory
	}
	if req.SKU != nil {
		product.SKU = *req.SKU
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.CostPrice != nil {
		product.CostPrice = *req.CostPrice
	}
	if req.SellingPrice != nil {
		product.SellingPrice = *req.SellingPrice
	}
	if req.ReorderLevel != nil {
		product.ReorderLevel = *req.ReorderLevel
	}
	if req.Supplier != nil {
		product.Supplier = *req.Supplier
	}
	if req.Location != nil {
		product.Location = *req.Location
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Warranty != nil {
		product.Warranty = *req.Warranty
	}

	if err := s.products.Replace(id, product); err != nil {
		return inventory.Product{}, err
	}

	s.logger.Info("product updated", zap.String("product_id", id))
	return product, nil
}

// generateBarcode produces a random ten-digit numeric barcode
func generateBarcode() string {
	return strconv.FormatInt(rand.Int63n(9_000_000_000)+1_000_000_000, 10)
}
