package service

import (
	"fmt"

	"food-ordering-api/models"
	"food-ordering-api/policy"

	"gorm.io/gorm"
)

// PaymentMethodInput carries create/update fields for a payment method.
// Nil pointers on update mean "leave unchanged".
type PaymentMethodInput struct {
	Type      *models.PaymentType
	LastFour  *string
	IsDefault *bool
}

// PaymentService manages payment method records. Setting a method as
// default clears every other default owned by the same user inside the
// same transaction — two defaults are never observable, not even
// transiently.
type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

func validatePaymentInput(in PaymentMethodInput) error {
	if in.Type != nil && !models.ValidPaymentType(*in.Type) {
		return fmt.Errorf("%w: unknown payment type %q", ErrValidation, *in.Type)
	}
	if in.LastFour != nil && len(*in.LastFour) != 4 {
		return fmt.Errorf("%w: last_four must be exactly 4 characters", ErrValidation)
	}
	return nil
}

// clearDefaults resets is_default on all of the user's methods.
func clearDefaults(tx *gorm.DB, userID uint) error {
	return tx.Model(&models.PaymentMethod{}).
		Where("user_id = ?", userID).
		Update("is_default", false).Error
}

// List returns the caller's own payment methods. Open to any
// authenticated role.
func (s *PaymentService) List(user models.User) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	if err := s.db.Where("user_id = ?", user.ID).Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

// Create adds a payment method for the caller. Admin only.
func (s *PaymentService) Create(user models.User, in PaymentMethodInput) (*models.PaymentMethod, error) {
	if !policy.Allows(user.Role, policy.ActionManagePayments) {
		return nil, fmt.Errorf("%w: role %q cannot manage payment methods", ErrForbidden, user.Role)
	}
	if in.Type == nil || in.LastFour == nil {
		return nil, fmt.Errorf("%w: type and last_four are required", ErrValidation)
	}
	if err := validatePaymentInput(in); err != nil {
		return nil, err
	}

	method := models.PaymentMethod{
		UserID:   user.ID,
		Type:     *in.Type,
		LastFour: *in.LastFour,
	}
	if in.IsDefault != nil {
		method.IsDefault = *in.IsDefault
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if method.IsDefault {
			if err := clearDefaults(tx, user.ID); err != nil {
				return err
			}
		}
		return tx.Create(&method).Error
	})
	if err != nil {
		return nil, err
	}
	return &method, nil
}

// Update modifies one of the caller's payment methods. Admin only.
func (s *PaymentService) Update(user models.User, id uint, in PaymentMethodInput) (*models.PaymentMethod, error) {
	if !policy.Allows(user.Role, policy.ActionManagePayments) {
		return nil, fmt.Errorf("%w: role %q cannot manage payment methods", ErrForbidden, user.Role)
	}
	if err := validatePaymentInput(in); err != nil {
		return nil, err
	}

	var method models.PaymentMethod
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, user.ID).First(&method).Error; err != nil {
			return fmt.Errorf("%w: payment method", ErrNotFound)
		}
		if in.IsDefault != nil && *in.IsDefault {
			if err := clearDefaults(tx, user.ID); err != nil {
				return err
			}
		}
		if in.Type != nil {
			method.Type = *in.Type
		}
		if in.LastFour != nil {
			method.LastFour = *in.LastFour
		}
		if in.IsDefault != nil {
			method.IsDefault = *in.IsDefault
		}
		return tx.Save(&method).Error
	})
	if err != nil {
		return nil, err
	}
	return &method, nil
}

// Delete removes one of the caller's payment methods. Admin only.
// Deleting the default does not promote another method; choosing a new
// default is an explicit action.
func (s *PaymentService) Delete(user models.User, id uint) error {
	if !policy.Allows(user.Role, policy.ActionManagePayments) {
		return fmt.Errorf("%w: role %q cannot manage payment methods", ErrForbidden, user.Role)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var method models.PaymentMethod
		if err := tx.Where("id = ? AND user_id = ?", id, user.ID).First(&method).Error; err != nil {
			return fmt.Errorf("%w: payment method", ErrNotFound)
		}
		return tx.Delete(&method).Error
	})
}
