package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/launchplanner/launchplanner-server/internal/domain"
	"github.com/launchplanner/launchplanner-server/internal/service"
)

func (s *Server) registerProductRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listProducts",
		Method:      http.MethodGet,
		Path:        "/api/products",
		Summary:     "List products",
		Description: "Returns every product in creation order",
		Tags:        []string{"Products"},
	}, s.handleListProducts)

	huma.Register(s.api, huma.Operation{
		OperationID: "getProduct",
		Method:      http.MethodGet,
		Path:        "/api/products/{id}",
		Summary:     "Get product",
		Description: "Returns a single product",
		Tags:        []string{"Products"},
	}, s.handleGetProduct)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createProduct",
		Method:        http.MethodPost,
		Path:          "/api/products",
		Summary:       "Create product",
		Description:   "Creates a product. Status defaults to planning; target quarter and year default to the start date's quarter.",
		Tags:          []string{"Products"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateProduct)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateProduct",
		Method:      http.MethodPut,
		Path:        "/api/products",
		Summary:     "Update product",
		Description: "Merges the supplied fields into the product named by id",
		Tags:        []string{"Products"},
	}, s.handleUpdateProduct)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteProduct",
		Method:      http.MethodDelete,
		Path:        "/api/products",
		Summary:     "Delete product",
		Description: "Deletes a product together with its goals and leads",
		Tags:        []string{"Products"},
	}, s.handleDeleteProduct)
}

// === DTOs ===

// ProductListOutput wraps the product list for Huma.
type ProductListOutput struct {
	Body []domain.Product
}

// ProductOutput wraps a single product for Huma.
type ProductOutput struct {
	Body domain.Product
}

// GetProductInput names the product to fetch.
type GetProductInput struct {
	ID string `path:"id" doc:"Product ID"`
}

// CreateProductInput wraps the create product request for Huma.
type CreateProductInput struct {
	Body service.CreateProductRequest
}

// UpdateProductRequest is `{id, ...updates}`. Unknown fields are rejected.
type UpdateProductRequest struct {
	_  struct{} `json:"-" additionalProperties:"false"`
	ID string   `json:"id" doc:"Product ID"`
	domain.ProductUpdate
}

// UpdateProductInput wraps the update product request for Huma.
type UpdateProductInput struct {
	Body UpdateProductRequest
}

// DeleteInput names the record to delete.
type DeleteInput struct {
	ID string `query:"id" doc:"ID of the record to delete"`
}

// DeleteResponse acknowledges a delete.
type DeleteResponse struct {
	Success bool `json:"success"`
}

// DeleteOutput wraps the delete acknowledgement for Huma.
type DeleteOutput struct {
	Body DeleteResponse
}

// === Handlers ===

func (s *Server) handleListProducts(ctx context.Context, _ *struct{}) (*ProductListOutput, error) {
	products, err := s.services.Product.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return &ProductListOutput{Body: products}, nil
}

func (s *Server) handleGetProduct(ctx context.Context, input *GetProductInput) (*ProductOutput, error) {
	product, err := s.services.Product.GetProduct(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &ProductOutput{Body: *product}, nil
}

func (s *Server) handleCreateProduct(ctx context.Context, input *CreateProductInput) (*ProductOutput, error) {
	product, err := s.services.Product.CreateProduct(ctx, input.Body)
	if err != nil {
		return nil, err
	}
	return &ProductOutput{Body: *product}, nil
}

func (s *Server) handleUpdateProduct(ctx context.Context, input *UpdateProductInput) (*ProductOutput, error) {
	product, err := s.services.Product.UpdateProduct(ctx, input.Body.ID, input.Body.ProductUpdate)
	if err != nil {
		return nil, err
	}
	return &ProductOutput{Body: *product}, nil
}

func (s *Server) handleDeleteProduct(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if _, err := s.services.Product.DeleteProduct(ctx, input.ID); err != nil {
		return nil, err
	}
	return &DeleteOutput{Body: DeleteResponse{Success: true}}, nil
}
