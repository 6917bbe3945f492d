package models

import (
	"time"

	"github.com/erp/salechannel/internal/domain/channel"
	"github.com/erp/salechannel/internal/domain/shared"
	"github.com/google/uuid"
)

// SaleChannelModel is the persistence model for the SaleChannel domain entity
type SaleChannelModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key"`
	TenantID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_sale_channel_tenant"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Code        string         `gorm:"type:varchar(64)"`
	Source      channel.Source `gorm:"type:varchar(64);not null;index:idx_sale_channel_source"`
	WarehouseID uuid.UUID      `gorm:"type:uuid;not null"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SaleChannelModel) TableName() string {
	return "sale_channels"
}

// ToDomain converts the persistence model to a domain SaleChannel entity
func (m *SaleChannelModel) ToDomain() *channel.SaleChannel {
	return &channel.SaleChannel{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		TenantID:    m.TenantID,
		Name:        m.Name,
		Code:        m.Code,
		Source:      m.Source,
		WarehouseID: m.WarehouseID,
	}
}

// SaleChannelModelFromDomain creates a persistence model from a domain entity
func SaleChannelModelFromDomain(ch *channel.SaleChannel) *SaleChannelModel {
	return &SaleChannelModel{
		ID:          ch.ID,
		TenantID:    ch.TenantID,
		Name:        ch.Name,
		Code:        ch.Code,
		Source:      ch.Source,
		WarehouseID: ch.WarehouseID,
		CreatedAt:   ch.CreatedAt,
		UpdatedAt:   ch.UpdatedAt,
	}
}
