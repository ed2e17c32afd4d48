package catalog

type CreateRoomRequest struct {
	Name        string  `json:"name" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Capacity    int     `json:"capacity" binding:"required,gt=0"`
	ImageURL    string  `json:"image"`
}

type UpdateRoomRequest struct {
	Name        *string  `json:"name"`
	Type        *string  `json:"type"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Capacity    *int     `json:"capacity"`
	ImageURL    *string  `json:"image"`
	IsActive    *bool    `json:"is_active"`
}
