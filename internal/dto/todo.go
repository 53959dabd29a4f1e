package dto

type CreateTodoRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=120"`
	Description string `json:"description" binding:"max=1000"`
}

// UpdateTodoRequest carries a partial update: nil = keep current value.
type UpdateTodoRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=120"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

type TodoResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// MessageResponse is a generic confirmation body (e.g. after delete).
type MessageResponse struct {
	Message string `json:"message"`
}
