package contract

const MaxTitleLength = 200

type NoteResponse struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	Category      string `json:"category"`
	CategoryLabel string `json:"category_label"`
	CategoryClass string `json:"category_class"`
	Priority      string `json:"priority"`
	PriorityLabel string `json:"priority_label"`
	PriorityClass string `json:"priority_class"`
	IsArchived    bool   `json:"is_archived"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type NoteListResponse struct {
	Notes      []*NoteResponse `json:"notes"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	Total      int             `json:"total"`
	TotalPages int             `json:"total_pages"`
}

// NoteMessageResponse wraps a note with the confirmation shown to the user.
type NoteMessageResponse struct {
	Message string        `json:"message"`
	Note    *NoteResponse `json:"note"`
}

// CreateNoteRequest binds from JSON or from a form post. Empty category and
// priority fall back to their defaults.
type CreateNoteRequest struct {
	Title    string `json:"title" form:"title" validate:"required,notblank,max=200"`
	Content  string `json:"content" form:"content" validate:"required,notblank"`
	Category string `json:"category" form:"category" validate:"omitempty,category"`
	Priority string `json:"priority" form:"priority" validate:"omitempty,priority"`
}

// UpdateNoteRequest has PATCH semantics: nil fields are left untouched.
type UpdateNoteRequest struct {
	Title    *string `json:"title" form:"title" validate:"omitnil,notblank,max=200"`
	Content  *string `json:"content" form:"content" validate:"omitnil,notblank"`
	Category *string `json:"category" form:"category" validate:"omitnil,category"`
	Priority *string `json:"priority" form:"priority" validate:"omitnil,priority"`
}

type NoteSearchRequest struct {
	SearchQuery    string `query:"search_query" validate:"max=200"`
	CategoryFilter string `query:"category_filter" validate:"omitempty,category"`
	PriorityFilter string `query:"priority_filter" validate:"omitempty,priority"`
}

type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type ChoicesResponse struct {
	Categories []Choice `json:"categories"`
	Priorities []Choice `json:"priorities"`
}
