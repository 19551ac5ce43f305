package dto

type OrderItemRequest struct {
	ArticleID uint `json:"article_id"`
	Quantity  int  `json:"quantity"`
}

type OrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

type PaymentRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
}
