package service

import (
	"fmt"

	"github.com/siwaht/thriftysouq/internal/models"
	"github.com/siwaht/thriftysouq/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// SettingsService 站点配置服务：店铺/首页配置、页脚、支付方式、管理员
type SettingsService struct {
	settings       repository.SettingRepository
	footer         repository.FooterRepository
	paymentMethods repository.PaymentMethodRepository
	adminUsers     repository.AdminUserRepository
}

// NewSettingsService 创建站点配置服务
func NewSettingsService(
	settings repository.SettingRepository,
	footer repository.FooterRepository,
	paymentMethods repository.PaymentMethodRepository,
	adminUsers repository.AdminUserRepository,
) *SettingsService {
	return &SettingsService{
		settings:       settings,
		footer:         footer,
		paymentMethods: paymentMethods,
		adminUsers:     adminUsers,
	}
}

// GetSetting 读取配置，键不存在时返回空对象
func (s *SettingsService) GetSetting(key string) (models.JSON, error) {
	setting, err := s.settings.Get(key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return models.JSON{}, nil
	}
	return setting.ValueJSON, nil
}

// UpdateSetting 整体覆盖配置
func (s *SettingsService) UpdateSetting(key string, value models.JSON) (models.JSON, error) {
	if err := s.settings.Upsert(key, value); err != nil {
		return nil, err
	}
	return value, nil
}

// ListFooterSections 页脚分区列表（含链接）
func (s *SettingsService) ListFooterSections() ([]models.FooterSection, error) {
	return s.footer.ListSections()
}

// CreateFooterSectionInput 创建页脚分区参数
type CreateFooterSectionInput struct {
	Title     string
	SortOrder int
	IsActive  *bool
}

// CreateFooterSection 创建页脚分区
func (s *SettingsService) CreateFooterSection(input CreateFooterSectionInput) (*models.FooterSection, error) {
	section := &models.FooterSection{
		Title:     input.Title,
		SortOrder: input.SortOrder,
		IsActive:  true,
	}
	if input.IsActive != nil {
		section.IsActive = *input.IsActive
	}
	if err := s.footer.CreateSection(section); err != nil {
		return nil, err
	}
	return section, nil
}

// UpdateFooterSectionInput 更新页脚分区参数，nil 字段不变
type UpdateFooterSectionInput struct {
	Title     *string
	SortOrder *int
	IsActive  *bool
}

// UpdateFooterSection 更新页脚分区
func (s *SettingsService) UpdateFooterSection(id uint, input UpdateFooterSectionInput) (*models.FooterSection, error) {
	section, err := s.footer.GetSectionByID(id)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, ErrFooterSectionNotFound
	}

	fields := map[string]interface{}{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.SortOrder != nil {
		fields["sort_order"] = *input.SortOrder
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}
	if len(fields) > 0 {
		if err := s.footer.UpdateSectionFields(id, fields); err != nil {
			return nil, err
		}
	}
	return s.footer.GetSectionByID(id)
}

// DeleteFooterSection 删除页脚分区及其链接
func (s *SettingsService) DeleteFooterSection(id uint) error {
	section, err := s.footer.GetSectionByID(id)
	if err != nil {
		return err
	}
	if section == nil {
		return ErrFooterSectionNotFound
	}
	return s.footer.DeleteSection(id)
}

// CreateFooterLinkInput 创建页脚链接参数
type CreateFooterLinkInput struct {
	SectionID uint
	Label     string
	URL       string
	SortOrder int
	IsActive  *bool
}

// CreateFooterLink 创建页脚链接
func (s *SettingsService) CreateFooterLink(input CreateFooterLinkInput) (*models.FooterLink, error) {
	section, err := s.footer.GetSectionByID(input.SectionID)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, ErrFooterSectionNotFound
	}

	link := &models.FooterLink{
		SectionID: input.SectionID,
		Label:     input.Label,
		URL:       input.URL,
		SortOrder: input.SortOrder,
		IsActive:  true,
	}
	if input.IsActive != nil {
		link.IsActive = *input.IsActive
	}
	if err := s.footer.CreateLink(link); err != nil {
		return nil, err
	}
	return link, nil
}

// UpdateFooterLinkInput 更新页脚链接参数，nil 字段不变
type UpdateFooterLinkInput struct {
	Label     *string
	URL       *string
	SortOrder *int
	IsActive  *bool
}

// UpdateFooterLink 更新页脚链接
func (s *SettingsService) UpdateFooterLink(id uint, input UpdateFooterLinkInput) (*models.FooterLink, error) {
	link, err := s.footer.GetLinkByID(id)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, ErrFooterLinkNotFound
	}

	fields := map[string]interface{}{}
	if input.Label != nil {
		fields["label"] = *input.Label
	}
	if input.URL != nil {
		fields["url"] = *input.URL
	}
	if input.SortOrder != nil {
		fields["sort_order"] = *input.SortOrder
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}
	if len(fields) > 0 {
		if err := s.footer.UpdateLinkFields(id, fields); err != nil {
			return nil, err
		}
	}
	return s.footer.GetLinkByID(id)
}

// DeleteFooterLink 删除页脚链接
func (s *SettingsService) DeleteFooterLink(id uint) error {
	link, err := s.footer.GetLinkByID(id)
	if err != nil {
		return err
	}
	if link == nil {
		return ErrFooterLinkNotFound
	}
	return s.footer.DeleteLink(id)
}

// ListPaymentMethods 支付方式列表
func (s *SettingsService) ListPaymentMethods() ([]models.PaymentMethod, error) {
	return s.paymentMethods.List()
}

// UpdatePaymentMethodInput 更新支付方式参数，nil 字段不变
type UpdatePaymentMethodInput struct {
	Name        *string
	Description *string
	Config      models.JSON
	IsActive    *bool
	SortOrder   *int
}

// UpdatePaymentMethod 更新支付方式
func (s *SettingsService) UpdatePaymentMethod(id uint, input UpdatePaymentMethodInput) (*models.PaymentMethod, error) {
	method, err := s.paymentMethods.GetByID(id)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, ErrPaymentMethodNotFound
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Config != nil {
		fields["config_json"] = input.Config
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}
	if input.SortOrder != nil {
		fields["sort_order"] = *input.SortOrder
	}
	if len(fields) > 0 {
		if err := s.paymentMethods.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}
	return s.paymentMethods.GetByID(id)
}

// ListAdminUsers 管理员列表
func (s *SettingsService) ListAdminUsers() ([]models.AdminUser, error) {
	return s.adminUsers.List()
}

// CreateAdminUserInput 创建管理员参数
type CreateAdminUserInput struct {
	Email    string
	Name     string
	Password string
	Role     string
}

// CreateAdminUser 创建管理员，密码经 bcrypt 哈希后入库
func (s *SettingsService) CreateAdminUser(input CreateAdminUserInput) (*models.AdminUser, error) {
	existing, err := s.adminUsers.GetByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrEmailTaken, input.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := input.Role
	if role == "" {
		role = "admin"
	}
	user := &models.AdminUser{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := s.adminUsers.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
