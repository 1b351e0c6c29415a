package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/harshitgawli/Turf-Booking/internal/domain/slot"
	"github.com/harshitgawli/Turf-Booking/internal/httperr"
	"github.com/harshitgawli/Turf-Booking/internal/models"
)

type SlotGormRepository struct {
	db *gorm.DB
}

func NewSlotGormRepository(db *gorm.DB) *SlotGormRepository {
	return &SlotGormRepository{db: db}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *SlotGormRepository) ListSlots(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Slot, error) {

	q := r.db.WithContext(ctx).Model(&models.Slot{})

	if filter.Date != "" {
		q = q.Where("date = ?", filter.Date)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}

	var slots []models.Slot
	if err := q.
		Preload("ReservedBy").
		Order("date ASC, time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *SlotGormRepository) GetSlot(
	ctx context.Context,
	id uint,
) (*models.Slot, error) {

	var s models.Slot
	if err := r.db.WithContext(ctx).
		Preload("ReservedBy").
		First(&s, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("slot_not_found")
		}
		return nil, err
	}

	return &s, nil
}

func (r *SlotGormRepository) ListByReserver(
	ctx context.Context,
	userID uint,
	status domain.Status,
) ([]models.Slot, error) {

	var slots []models.Slot
	if err := r.db.WithContext(ctx).
		Where("reserved_by_id = ? AND status = ?", userID, string(status)).
		Order("date ASC, time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *SlotGormRepository) ListByStatuses(
	ctx context.Context,
	statuses []domain.Status,
) ([]models.Slot, error) {

	vals := make([]string, 0, len(statuses))
	for _, s := range statuses {
		vals = append(vals, string(s))
	}

	var slots []models.Slot
	if err := r.db.WithContext(ctx).
		Preload("ReservedBy").
		Where("status IN ?", vals).
		Order("date ASC, time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

// --------------------------------------------------
// Day generation
// --------------------------------------------------

func (r *SlotGormRepository) CreateDaySlots(
	ctx context.Context,
	date string,
	slots []models.Slot,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.Model(&models.Slot{}).
			Where("date = ?", date).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness("day_already_generated")
		}

		if err := tx.Create(&slots).Error; err != nil {
			// the unique (date, time) index closes the generate/generate race
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return httperr.ErrBusiness("day_already_generated")
			}
			return err
		}

		return nil
	})
}

// --------------------------------------------------
// Conditional transitions
// --------------------------------------------------
//
// Every transition is one conditional UPDATE keyed by (id, current status).
// The affected-row count decides the outcome; the store is never mutated by
// a read-check-write sequence. RETURNING hands back the row the UPDATE
// itself produced, so the result cannot reflect a later transition.

func (r *SlotGormRepository) UpdateIfStatus(
	ctx context.Context,
	id uint,
	expected domain.Status,
	changes map[string]any,
) (*models.Slot, error) {

	var updated models.Slot
	res := r.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{}).
		Where("id = ? AND status = ?", id, string(expected)).
		Updates(changes)

	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, r.explainMiss(ctx, id, func(s *models.Slot) error {
			return httperr.ErrBusiness("slot_conflict")
		})
	}

	if err := r.attachReserver(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *SlotGormRepository) UpdateIfHeldBy(
	ctx context.Context,
	id uint,
	expected domain.Status,
	userID uint,
	changes map[string]any,
) (*models.Slot, error) {

	var updated models.Slot
	res := r.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{}).
		Where("id = ? AND status = ? AND reserved_by_id = ?", id, string(expected), userID).
		Updates(changes)

	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, r.explainMiss(ctx, id, func(s *models.Slot) error {
			if s.Status != string(expected) {
				return httperr.ErrBusiness("slot_conflict")
			}
			return httperr.ErrBusiness("not_slot_holder")
		})
	}

	if err := r.attachReserver(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *SlotGormRepository) ReleaseIfOccupied(
	ctx context.Context,
	id uint,
	changes map[string]any,
) (*models.Slot, error) {

	var updated models.Slot
	res := r.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{}).
		Where("id = ? AND status <> ?", id, string(domain.StatusAvailable)).
		Updates(changes)

	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, r.explainMiss(ctx, id, func(s *models.Slot) error {
			return httperr.ErrBusiness("slot_already_available")
		})
	}

	if err := r.attachReserver(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// attachReserver resolves the holder the RETURNING row points at. The user
// id is immutable, so this read cannot contradict the committed transition.
func (r *SlotGormRepository) attachReserver(ctx context.Context, s *models.Slot) error {
	if s.ReservedByID == nil {
		return nil
	}

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, *s.ReservedByID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	s.ReservedBy = &u
	return nil
}

// explainMiss turns a zero-row conditional update into the precise business
// error: the slot is gone, or it exists in a state the caller lost to.
func (r *SlotGormRepository) explainMiss(
	ctx context.Context,
	id uint,
	classify func(*models.Slot) error,
) error {

	var s models.Slot
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("slot_not_found")
		}
		return err
	}

	return classify(&s)
}

// Compile-time check
var _ domain.Repository = (*SlotGormRepository)(nil)
