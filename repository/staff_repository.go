package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Sopejohn/freshmart/models"
)

type StaffRepository interface {
	Create(ctx context.Context, member *models.StaffMember) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.StaffMember, error)
	FindAll(ctx context.Context, role, search string) ([]models.StaffMember, error)
	Update(ctx context.Context, member *models.StaffMember) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type gormStaffRepo struct {
	db *gorm.DB
}

func NewGormStaffRepo(db *gorm.DB) StaffRepository {
	return &gormStaffRepo{db: db}
}

func (r *gormStaffRepo) Create(ctx context.Context, member *models.StaffMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *gormStaffRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.StaffMember, error) {
	var member models.StaffMember
	if err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *gormStaffRepo) FindAll(ctx context.Context, role, search string) ([]models.StaffMember, error) {
	q := r.db.WithContext(ctx).Model(&models.StaffMember{})
	if role != "" && role != "all" {
		q = q.Where("role = ?", role)
	}
	if search != "" {
		q = q.Where("name ILIKE ? OR email ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var members []models.StaffMember
	if err := q.Order("name asc").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *gormStaffRepo) Update(ctx context.Context, member *models.StaffMember) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *gormStaffRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.StaffMember{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
