package repository

import (
	"context"
	"fmt"
	"time"

	"webtoonhub/internal/microservices/http-api/models"
	"webtoonhub/internal/shared"

	"gorm.io/gorm"
)

// MemberRepository defines member data operations.
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	FindByUsername(ctx context.Context, username string) (*models.Member, error)
	FindByEmail(ctx context.Context, email string) (*models.Member, error)
	FindByID(ctx context.Context, id int64) (*models.Member, error)
	List(ctx context.Context, page, pageSize int) ([]models.Member, int64, error)
	Update(ctx context.Context, member *models.Member) error
	Delete(ctx context.Context, id int64) error
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, member *models.Member) error {
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		return fmt.Errorf("create member: %w", err)
	}
	return nil
}

// query methods return nil on miss so callers never see a zero-value member
func (r *memberRepository) FindByUsername(ctx context.Context, username string) (*models.Member, error) {
	var member models.Member
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByEmail(ctx context.Context, email string) (*models.Member, error) {
	var member models.Member
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByID(ctx context.Context, id int64) (*models.Member, error) {
	var member models.Member
	if err := r.db.WithContext(ctx).First(&member, id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) List(ctx context.Context, page, pageSize int) ([]models.Member, int64, error) {
	var list []models.Member
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Member{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Scopes(paginate(page, pageSize)).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *memberRepository) Update(ctx context.Context, member *models.Member) error {
	if err := r.db.WithContext(ctx).Save(member).Error; err != nil {
		return fmt.Errorf("update member: %w", err)
	}
	return nil
}

func (r *memberRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Member{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NotFound("member not found")
	}
	return nil
}

func (r *memberRepository) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&models.Member{}).Where("id = ?", id).Update("last_login", at).Error
}
