package dto

type CategoryRequest struct {
	Name string `json:"name"`
}

type ArticleRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CategoryID  uint    `json:"category_id"`
}
