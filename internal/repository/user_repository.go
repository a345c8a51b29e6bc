package repository

import (
	"errors"

	"pathwise_backend/internal/model"
	"pathwise_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository persists one row per account, keyed by email. Mutations
// run under a row lock so read-modify-write cycles on the same account
// never interleave; cross-account writes do not contend.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(account *model.UserAccount) error {
	return r.DB.Create(account).Error
}

func (r *UserRepository) FindByEmail(email string) (*model.UserAccount, error) {
	var account model.UserAccount
	err := r.DB.Where("email = ?", email).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Mutate loads the account under SELECT ... FOR UPDATE, applies fn and
// saves the result in the same transaction.
func (r *UserRepository) Mutate(email string, fn func(*model.UserAccount) error) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var account model.UserAccount
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("email = ?", email).
			First(&account).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		if err != nil {
			return err
		}

		if err := fn(&account); err != nil {
			return err
		}
		return tx.Save(&account).Error
	})
}
