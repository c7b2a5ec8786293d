package repositories

import (
	"fmt"
	"time"

	"household-expenses/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type revokedTokenRepository struct {
	db *gorm.DB
}

func NewRevokedTokenRepository(db *gorm.DB) RevokedTokenRepositoryInterface {
	return &revokedTokenRepository{db: db}
}

// Revoke stores the token JTI. Revoking the same JTI twice is not an error.
func (r *revokedTokenRepository) Revoke(token *models.RevokedAccessToken) error {
	if token.RevokedAt.IsZero() {
		token.RevokedAt = time.Now().UTC()
	}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(token).Error; err != nil {
		return fmt.Errorf("failed to revoke access token: %w", err)
	}
	return nil
}

func (r *revokedTokenRepository) IsRevoked(jti string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.RevokedAccessToken{}).Where("jti = ?", jti).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}
	return count > 0, nil
}

func (r *revokedTokenRepository) DeleteExpired(before time.Time) (int64, error) {
	result := r.db.Where("expires_at < ?", before).Delete(&models.RevokedAccessToken{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired revoked tokens: %w", result.Error)
	}
	return result.RowsAffected, nil
}
