package models

import (
	"time"

	"github.com/erp/salechannel/internal/domain/channel"
	"github.com/erp/salechannel/internal/domain/shared"
	"github.com/google/uuid"
)

// CarrierModel is the persistence model for host-side carriers
type CarrierModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index:idx_carrier_tenant"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CarrierModel) TableName() string {
	return "carriers"
}

// ToDomain converts the persistence model to a domain Carrier entity
func (m *CarrierModel) ToDomain() *channel.Carrier {
	return &channel.Carrier{
		BaseEntity: shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		TenantID:   m.TenantID,
		Name:       m.Name,
	}
}

// CarrierServiceModel is the persistence model for carrier services
type CarrierServiceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index:idx_carrier_service_tenant"`
	CarrierID uuid.UUID `gorm:"type:uuid;not null;index:idx_carrier_service_carrier"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Code      string    `gorm:"type:varchar(64)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CarrierServiceModel) TableName() string {
	return "carrier_services"
}

// ToDomain converts the persistence model to a domain CarrierService entity
func (m *CarrierServiceModel) ToDomain() channel.CarrierService {
	return channel.CarrierService{
		BaseEntity: shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		TenantID:   m.TenantID,
		CarrierID:  m.CarrierID,
		Name:       m.Name,
		Code:       m.Code,
	}
}

// CarrierMappingModel is the persistence model for channel carrier mappings
type CarrierMappingModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key"`
	TenantID         uuid.UUID  `gorm:"type:uuid;not null;index:idx_carrier_mapping_tenant"`
	ChannelID        uuid.UUID  `gorm:"type:uuid;not null;index:idx_carrier_mapping_channel"`
	Name             string     `gorm:"type:varchar(255);not null"`
	Code             string     `gorm:"type:varchar(64)"`
	CarrierID        *uuid.UUID `gorm:"type:uuid"`
	CarrierServiceID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt        time.Time  `gorm:"not null"`
	UpdatedAt        time.Time  `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CarrierMappingModel) TableName() string {
	return "channel_carrier_mappings"
}

// ToDomain converts the persistence model to a domain CarrierMapping entity
func (m *CarrierMappingModel) ToDomain() *channel.CarrierMapping {
	return &channel.CarrierMapping{
		BaseEntity:       shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		TenantID:         m.TenantID,
		ChannelID:        m.ChannelID,
		Name:             m.Name,
		Code:             m.Code,
		CarrierID:        m.CarrierID,
		CarrierServiceID: m.CarrierServiceID,
	}
}

// CarrierMappingModelFromDomain creates a persistence model from a domain entity
func CarrierMappingModelFromDomain(cm *channel.CarrierMapping) *CarrierMappingModel {
	return &CarrierMappingModel{
		ID:               cm.ID,
		TenantID:         cm.TenantID,
		ChannelID:        cm.ChannelID,
		Name:             cm.Name,
		Code:             cm.Code,
		CarrierID:        cm.CarrierID,
		CarrierServiceID: cm.CarrierServiceID,
		CreatedAt:        cm.CreatedAt,
		UpdatedAt:        cm.UpdatedAt,
	}
}
