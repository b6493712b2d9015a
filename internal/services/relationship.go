package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rollodex/brandcentral/internal/models"
	"github.com/rollodex/brandcentral/internal/repositories"
	"github.com/rollodex/brandcentral/internal/roles"
)

var (
	// ErrRelationshipNotFound covers both an absent relationship and one
	// owned by a different retailer.
	ErrRelationshipNotFound = errors.New("relationship not found")

	// ErrDuplicateRelationship is returned when the (brand, retailer)
	// pair already has a relationship.
	ErrDuplicateRelationship = errors.New("relationship already exists")

	// ErrInvalidStatus is returned for a status outside the legal set.
	ErrInvalidStatus = errors.New("invalid relationship status")

	// ErrInvalidPriority is returned for a priority outside the legal set.
	ErrInvalidPriority = errors.New("invalid relationship priority")
)

// BrandGetter resolves single brand records for cross-entity checks.
type BrandGetter interface {
	GetByID(ctx context.Context, brandID uuid.UUID) (*models.BrandDB, error)
}

// RelationshipReader reads relationship records.
type RelationshipReader interface {
	GetByPair(ctx context.Context, brandID, retailerID uuid.UUID) (*models.RelationshipDB, error)
	ListForRetailer(ctx context.Context, retailerID uuid.UUID) ([]models.RetailerRelationshipView, error)
	ListForBrandOwner(ctx context.Context, ownerID uuid.UUID) ([]models.BrandRelationshipView, error)
}

// RelationshipWriter persists relationship records.
type RelationshipWriter interface {
	Create(ctx context.Context, rel *models.RelationshipDB) error
	Update(ctx context.Context, relationshipID, retailerID uuid.UUID, upd models.RelationshipUpdate) (*models.RelationshipDB, error)
	Delete(ctx context.Context, relationshipID, retailerID uuid.UUID) (bool, error)
}

// RelationshipService implements retailer-brand partnership tracking.
type RelationshipService struct {
	reader   RelationshipReader
	writer   RelationshipWriter
	brands   BrandGetter
	activity ActivityWriter
}

func NewRelationshipService(
	reader RelationshipReader,
	writer RelationshipWriter,
	brands BrandGetter,
	activity ActivityWriter,
) *RelationshipService {
	return &RelationshipService{
		reader:   reader,
		writer:   writer,
		brands:   brands,
		activity: activity,
	}
}

// RelationshipCreateParams carries the validated creation input. Zero
// Status and Priority take the defaults.
type RelationshipCreateParams struct {
	BrandID         uuid.UUID
	Status          string
	Priority        string
	PartnershipType *string
	StartedDate     *time.Time
	Notes           *string
}

// Create opens a relationship from the calling retailer to a public
// brand. The pair is unique: a pre-check catches most duplicates and the
// database constraint backstops concurrent creates.
func (svc *RelationshipService) Create(ctx context.Context, retailerID uuid.UUID, p RelationshipCreateParams) (*models.RelationshipDB, error) {
	if p.Status == "" {
		p.Status = models.StatusProspective
	}
	if p.Priority == "" {
		p.Priority = models.PriorityNormal
	}
	if !models.IsValidStatus(p.Status) {
		return nil, ErrInvalidStatus
	}
	if !models.IsValidPriority(p.Priority) {
		return nil, ErrInvalidPriority
	}

	brand, err := svc.brands.GetByID(ctx, p.BrandID)
	if err != nil {
		return nil, err
	}
	if brand == nil || !brand.IsPublic {
		return nil, ErrBrandNotFound
	}

	existing, err := svc.reader.GetByPair(ctx, p.BrandID, retailerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateRelationship
	}

	rel := &models.RelationshipDB{
		RelationshipID:  uuid.New(),
		BrandID:         p.BrandID,
		RetailerID:      retailerID,
		Status:          p.Status,
		PartnershipType: p.PartnershipType,
		StartedDate:     p.StartedDate,
		Notes:           p.Notes,
		Priority:        p.Priority,
		CreatedBy:       retailerID,
	}
	if err := svc.writer.Create(ctx, rel); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrDuplicateRelationship
		}
		return nil, err
	}

	id := rel.RelationshipID
	recordActivity(ctx, svc.activity, retailerID, "relationship_created", "relationship", &id, map[string]any{
		"brand_id": p.BrandID.String(),
		"status":   rel.Status,
	})

	return rel, nil
}

// ListForRetailer returns the retailer's relationships with brand and
// owner info, ordered by priority then recency.
func (svc *RelationshipService) ListForRetailer(ctx context.Context, retailerID uuid.UUID) ([]models.RetailerRelationshipView, error) {
	return svc.reader.ListForRetailer(ctx, retailerID)
}

// ListForBrandOwner returns incoming relationships for the brands the
// user owns, with retailer info.
func (svc *RelationshipService) ListForBrandOwner(ctx context.Context, ownerID uuid.UUID) ([]models.BrandRelationshipView, error) {
	return svc.reader.ListForBrandOwner(ctx, ownerID)
}

// ListForRole branches the listing on the caller's side of the market.
// Brand admins see incoming relationships; everyone else sees their own.
func (svc *RelationshipService) ListForRole(ctx context.Context, userID uuid.UUID, role roles.Role) ([]models.RetailerRelationshipView, []models.BrandRelationshipView, error) {
	if role.IsBrand() {
		brandSide, err := svc.reader.ListForBrandOwner(ctx, userID)
		return nil, brandSide, err
	}
	retailerSide, err := svc.reader.ListForRetailer(ctx, userID)
	return retailerSide, nil, err
}

// Update applies the non-nil fields. Any legal status may be set
// directly. Ownership is enforced in the write, so a foreign
// relationship is indistinguishable from an absent one.
func (svc *RelationshipService) Update(ctx context.Context, relationshipID, retailerID uuid.UUID, upd models.RelationshipUpdate) (*models.RelationshipDB, error) {
	if upd.Status != nil && !models.IsValidStatus(*upd.Status) {
		return nil, ErrInvalidStatus
	}
	if upd.Priority != nil && !models.IsValidPriority(*upd.Priority) {
		return nil, ErrInvalidPriority
	}

	rel, err := svc.writer.Update(ctx, relationshipID, retailerID, upd)
	if err != nil {
		return nil, err
	}
	if rel == nil {
		return nil, ErrRelationshipNotFound
	}

	id := relationshipID
	recordActivity(ctx, svc.activity, retailerID, "relationship_updated", "relationship", &id, map[string]any{
		"status": rel.Status,
	})

	return rel, nil
}

// Delete removes the retailer's relationship.
func (svc *RelationshipService) Delete(ctx context.Context, relationshipID, retailerID uuid.UUID) error {
	deleted, err := svc.writer.Delete(ctx, relationshipID, retailerID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRelationshipNotFound
	}

	id := relationshipID
	recordActivity(ctx, svc.activity, retailerID, "relationship_deleted", "relationship", &id, nil)

	return nil
}
