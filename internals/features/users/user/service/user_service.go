// file: internals/features/users/user/service/user_service.go
package service

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kariahku_backend/internals/constants"
	authService "kariahku_backend/internals/features/users/auth/service"
	"kariahku_backend/internals/features/users/user/dto"
	"kariahku_backend/internals/features/users/user/model"
)

const (
	MsgUserNotFound   = "Pengguna tidak ditemukan"
	MsgEmailTaken     = "E-mel sudah didaftarkan"
	MsgLastAdminGuard = "Tenant mesti mempunyai sekurang-kurangnya seorang ADMIN aktif"
)

// UserService: pengurusan pengguna skop satu masjid. Dipakai dua pintu —
// admin tenant sendiri dan master admin (nested ikut slug tenant).
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func isDuplicateKey(err error) bool {
	return err != nil && (strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "SQLSTATE 23505"))
}

func (s *UserService) FindAll(masjidID uuid.UUID) ([]model.UserModel, error) {
	var users []model.UserModel
	err := s.DB.
		Where("user_masjid_id = ?", masjidID).
		Order("user_created_at ASC").
		Find(&users).Error
	return users, err
}

func (s *UserService) findOne(masjidID, userID uuid.UUID) (*model.UserModel, error) {
	var user model.UserModel
	err := s.DB.
		Where("user_id = ? AND user_masjid_id = ?", userID, masjidID).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, MsgUserNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Create(masjidID uuid.UUID, req dto.CreateUserRequest) (*model.UserModel, error) {
	hashed, err := authService.HashPassword(req.UserPassword)
	if err != nil {
		return nil, err
	}

	user := model.UserModel{
		UserMasjidID: masjidID,
		UserEmail:    strings.ToLower(strings.TrimSpace(req.UserEmail)),
		UserPassword: hashed,
		UserFullName: strings.TrimSpace(req.UserFullName),
		UserRole:     req.UserRole,
		UserIsActive: true,
	}

	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, fiber.NewError(fiber.StatusConflict, MsgEmailTaken)
		}
		return nil, err
	}
	return &user, nil
}

// countOtherActiveAdmins: bilangan ADMIN aktif lain dalam masjid yang sama.
func (s *UserService) countOtherActiveAdmins(masjidID, excludeUserID uuid.UUID) (int64, error) {
	var n int64
	err := s.DB.Model(&model.UserModel{}).
		Where("user_masjid_id = ? AND user_id <> ?", masjidID, excludeUserID).
		Where("user_role = ? AND user_is_active = TRUE", constants.RoleAdmin).
		Count(&n).Error
	return n, err
}

// guardLastAdmin: tolak perubahan yang meninggalkan masjid tanpa ADMIN aktif.
func (s *UserService) guardLastAdmin(user *model.UserModel, newRole *string, newActive *bool) error {
	if user.UserRole != constants.RoleAdmin || !user.UserIsActive {
		return nil
	}
	losesAdmin := (newRole != nil && *newRole != constants.RoleAdmin) ||
		(newActive != nil && !*newActive)
	if !losesAdmin {
		return nil
	}
	others, err := s.countOtherActiveAdmins(user.UserMasjidID, user.UserID)
	if err != nil {
		return err
	}
	if others == 0 {
		return fiber.NewError(fiber.StatusForbidden, MsgLastAdminGuard)
	}
	return nil
}

func (s *UserService) Update(masjidID, userID uuid.UUID, req dto.UpdateUserRequest) (*model.UserModel, error) {
	user, err := s.findOne(masjidID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.guardLastAdmin(user, req.UserRole, req.UserIsActive); err != nil {
		return nil, err
	}

	if req.UserEmail != nil {
		user.UserEmail = strings.ToLower(strings.TrimSpace(*req.UserEmail))
	}
	if req.UserPassword != nil {
		hashed, herr := authService.HashPassword(*req.UserPassword)
		if herr != nil {
			return nil, herr
		}
		user.UserPassword = hashed
	}
	if req.UserFullName != nil {
		user.UserFullName = strings.TrimSpace(*req.UserFullName)
	}
	if req.UserRole != nil {
		user.UserRole = *req.UserRole
	}
	if req.UserIsActive != nil {
		user.UserIsActive = *req.UserIsActive
	}

	if err := s.DB.Save(user).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, fiber.NewError(fiber.StatusConflict, MsgEmailTaken)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Deactivate(masjidID, userID uuid.UUID) (*model.UserModel, error) {
	inactive := false
	return s.Update(masjidID, userID, dto.UpdateUserRequest{UserIsActive: &inactive})
}

// Delete: padam kekal. actorID tidak boleh padam diri sendiri, dan ADMIN
// aktif terakhir dilindungi.
func (s *UserService) Delete(masjidID, userID, actorID uuid.UUID) error {
	if userID == actorID {
		return fiber.NewError(fiber.StatusForbidden, "Tidak boleh memadam akaun sendiri")
	}
	user, err := s.findOne(masjidID, userID)
	if err != nil {
		return err
	}
	if user.UserRole == constants.RoleAdmin && user.UserIsActive {
		others, cerr := s.countOtherActiveAdmins(masjidID, userID)
		if cerr != nil {
			return cerr
		}
		if others == 0 {
			return fiber.NewError(fiber.StatusForbidden, MsgLastAdminGuard)
		}
	}
	return s.DB.Delete(user).Error
}
