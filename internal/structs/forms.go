package structs

type SellItem struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Price       string `json:"price" form:"price" binding:"required"`
	Condition   string `json:"condition" form:"condition"`
	Description string `json:"description" form:"description"`
	Email       string `json:"email" form:"email" binding:"required,email"`
}

type Contact struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Email   string `json:"email" form:"email" binding:"required,email"`
	Message string `json:"message" form:"message" binding:"required"`
}

type Target struct {
	Target string `json:"target" form:"target"`
}
