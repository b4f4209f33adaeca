package cart

type AddItemRequest struct {
	Qty int `json:"qty" validate:"required,min=1"`
}

type UpdateQtyRequest struct {
	// pointer so an explicit 0 (remove the line) survives binding
	Qty *int `json:"qty" validate:"required,min=0"`
}

type CartCountResponse struct {
	Count int `json:"count"`
}

type CartDetailResponse struct {
	Items []Line  `json:"items"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}
