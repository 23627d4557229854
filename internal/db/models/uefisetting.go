// Package models contains database model definitions.
package models

import (
	"gorm.io/gorm"
)

// UefiSetting is one UEFI setting of a hardware instance, stored in the
// uefisettings table created by the plugin install hook.
type UefiSetting struct {
	// ID is generated by the database; together with HardwareID it forms the primary key.
	ID uint64 `gorm:"primaryKey;autoIncrement"`
	// HardwareID pairs the setting with the hardware it belongs to. No foreign key is declared.
	HardwareID uint64 `gorm:"primaryKey;autoIncrement:false;not null"`
	// SettingName is the UEFI setting name, e.g. "SecureBoot".
	SettingName *string `gorm:"size:255"`
	// SettingValue is the current value of the setting.
	SettingValue *string `gorm:"size:255"`
}

// TableName specifies the database table name for the UefiSetting model.
func (UefiSetting) TableName() string {
	return "uefisettings"
}

// BeforeCreate assigns the next id on sqlite, which cannot auto increment
// one column of a composite primary key.
func (s *UefiSetting) BeforeCreate(tx *gorm.DB) error {
	if s.ID != 0 || tx.Dialector.Name() != "sqlite" {
		return nil
	}

	var maxID uint64

	row := tx.Session(&gorm.Session{NewDB: true}).
		Raw("SELECT COALESCE(MAX(id), 0) FROM uefisettings").
		Row()
	if err := row.Scan(&maxID); err != nil {
		return err
	}

	s.ID = maxID + 1

	return nil
}

// Name returns the setting name or an empty string.
func (s *UefiSetting) Name() string {
	if s.SettingName == nil {
		return ""
	}

	return *s.SettingName
}

// Value returns the setting value or an empty string.
func (s *UefiSetting) Value() string {
	if s.SettingValue == nil {
		return ""
	}

	return *s.SettingValue
}
