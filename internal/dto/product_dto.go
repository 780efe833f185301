package dto

type CreateProductRequest struct {
	Name string `json:"product_name" validate:"required"`
}

type UpdateProductRequest struct {
	Name string `json:"product_name" validate:"required"`
}

type ProductResponse struct {
	ID   string `json:"id"`
	Name string `json:"product_name"`
}
