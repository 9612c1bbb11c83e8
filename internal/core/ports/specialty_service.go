package ports

import "context"

// SpecialtyInput carries the validated fields of a create or update request.
// Description is nil when the client omitted it.
type SpecialtyInput struct {
	Name        string
	Description *string
	Active      bool
}

// SpecialtyDetail is the full specialty view returned to the transport layer.
type SpecialtyDetail struct {
	ID          string
	Name        string
	Description *string
	Active      bool
}

// SpecialtyService defines use-case operations for specialties.
type SpecialtyService interface {
	Create(ctx context.Context, input SpecialtyInput) (*SpecialtyDetail, error)
	Get(ctx context.Context, id string) (*SpecialtyDetail, error)
	List(ctx context.Context) ([]SpecialtyDetail, error)
	// Update applies full-replacement semantics: the stored record takes
	// exactly the fields of input, no merge.
	Update(ctx context.Context, id string, input SpecialtyInput) (*SpecialtyDetail, error)
	Delete(ctx context.Context, id string) error
}
