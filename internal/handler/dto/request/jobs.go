package request

// DrainRequest optionally caps the batch size of one drain run. Zero or
// absent falls back to the configured limit.
type DrainRequest struct {
	Limit int32 `json:"limit,omitempty" binding:"omitempty,min=1,max=500"`
}
