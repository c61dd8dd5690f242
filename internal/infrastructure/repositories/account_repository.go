package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/khanh-nd1204/music-be/domain"
)

// AccountRepositoryImpl implements domain.AccountRepository using GORM
type AccountRepositoryImpl struct {
	db *gorm.DB
}

// DBAccount represents the database model for Account (with GORM tags)
type DBAccount struct {
	ID           string     `gorm:"primaryKey;size:36"`
	Name         string     `gorm:"size:255"`
	Email        string     `gorm:"uniqueIndex;size:255"`
	PasswordHash string     `gorm:"column:password"`
	Role         string     `gorm:"index;size:64"`
	Avatar       string     `gorm:"size:255"`
	Status       string     `gorm:"index;size:16"`
	RefreshToken *string    `gorm:"index;size:1024"`
	OTP          *int       `gorm:"column:otp"`
	OTPExpiry    *time.Time `gorm:"column:otp_expiry"`
	CreatedAt    time.Time  `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBAccount) TableName() string {
	return "accounts"
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domain.AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

// Create implements domain.AccountRepository
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *domain.Account) error {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	dbAccount := r.domainToDB(account)
	if err := r.db.WithContext(ctx).Create(dbAccount).Error; err != nil {
		return err
	}
	account.CreatedAt = dbAccount.CreatedAt
	account.UpdatedAt = dbAccount.UpdatedAt
	return nil
}

// FindByEmail implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, "email = ?", email)
}

// FindByID implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByRefreshToken implements domain.AccountRepository. The stored
// refresh token is a reverse lookup key: at most one account holds a
// given value at a time.
func (r *AccountRepositoryImpl) FindByRefreshToken(ctx context.Context, token string) (*domain.Account, error) {
	return r.findOne(ctx, "refresh_token = ?", token)
}

// UpdateRefreshToken implements domain.AccountRepository. Clearing an
// already-cleared token is a no-op, not an error, so logout stays
// idempotent.
func (r *AccountRepositoryImpl) UpdateRefreshToken(ctx context.Context, id string, token *string) error {
	return r.db.WithContext(ctx).Model(&DBAccount{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"refresh_token": token,
			"updated_at":    time.Now(),
		}).Error
}

// UpdateOTP implements domain.AccountRepository. Overwrites any
// outstanding code, which makes the prior code immediately unusable.
func (r *AccountRepositoryImpl) UpdateOTP(ctx context.Context, id string, code int, expiry time.Time) error {
	res := r.db.WithContext(ctx).Model(&DBAccount{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"otp":        code,
			"otp_expiry": expiry,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNothingUpdated
	}
	return nil
}

// Activate implements domain.AccountRepository. The status predicate
// makes the write conditional: of two racing activations only one
// observes an affected row, the loser gets ErrNothingUpdated.
func (r *AccountRepositoryImpl) Activate(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&DBAccount{}).
		Where("id = ? AND status = ?", id, string(domain.StatusPending)).
		Updates(map[string]interface{}{
			"status":     string(domain.StatusActive),
			"otp":        nil,
			"otp_expiry": nil,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNothingUpdated
	}
	return nil
}

// UpdatePassword implements domain.AccountRepository. The consumed code
// is cleared in the same write so it cannot be replayed.
func (r *AccountRepositoryImpl) UpdatePassword(ctx context.Context, id string, hash string) error {
	res := r.db.WithContext(ctx).Model(&DBAccount{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"password":   hash,
			"otp":        nil,
			"otp_expiry": nil,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNothingUpdated
	}
	return nil
}

func (r *AccountRepositoryImpl) findOne(ctx context.Context, query string, arg interface{}) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where(query, arg).First(&dbAccount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// domainToDB converts a domain account to a database account
func (r *AccountRepositoryImpl) domainToDB(account *domain.Account) *DBAccount {
	return &DBAccount{
		ID:           account.ID,
		Name:         account.Name,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		Role:         account.Role,
		Avatar:       account.Avatar,
		Status:       string(account.Status),
		RefreshToken: account.RefreshToken,
		OTP:          account.OTP,
		OTPExpiry:    account.OTPExpiry,
	}
}

// dbToDomain converts a database account to a domain account
func (r *AccountRepositoryImpl) dbToDomain(dbAccount *DBAccount) *domain.Account {
	return &domain.Account{
		ID:           dbAccount.ID,
		Name:         dbAccount.Name,
		Email:        dbAccount.Email,
		PasswordHash: dbAccount.PasswordHash,
		Role:         dbAccount.Role,
		Avatar:       dbAccount.Avatar,
		Status:       domain.AccountStatus(dbAccount.Status),
		RefreshToken: dbAccount.RefreshToken,
		OTP:          dbAccount.OTP,
		OTPExpiry:    dbAccount.OTPExpiry,
		CreatedAt:    dbAccount.CreatedAt,
		UpdatedAt:    dbAccount.UpdatedAt,
	}
}
