package pagination

import "gorm.io/gorm"

const (
	// DefaultLimit is applied when no limit is supplied.
	DefaultLimit = 100
	// MaxLimit caps the number of records a single request may return.
	MaxLimit = 500
)

// ListParams holds offset pagination parameters parsed from query strings.
type ListParams struct {
	Skip  int `form:"skip" binding:"omitempty,min=0"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=500"`
}

// Defaults fills in the default limit when none was provided.
func (p *ListParams) Defaults() {
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
}

// Scope returns a GORM scope that applies OFFSET and LIMIT for the params.
func Scope(p ListParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Skip).Limit(p.Limit)
	}
}
