// Package uefisetting provides CRUD operations for the rows of the
// uefisettings table. The table itself is owned by the plugin hooks.
package uefisetting

import (
	"errors"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/uefisettings/uefisettings/internal/db/models"
)

const (
	// maxLength is the VARCHAR size of setting_name and setting_value.
	maxLength = 255

	keyQueryPattern      = "id = ? AND hardware_id = ?"
	hardwareQueryPattern = "hardware_id = ?"
	nameQueryPattern     = "hardware_id = ? AND setting_name = ?"
)

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("uefi setting not found")
	// ErrSettingNameEmpty is returned when attempting to create/update a setting with an empty name.
	ErrSettingNameEmpty = errors.New("uefi setting name cannot be empty")
	// ErrSettingAlreadyExists is returned when the hardware already has a setting with that name.
	ErrSettingAlreadyExists = errors.New("uefi setting already exists")
	// ErrHardwareIDZero is returned when no hardware id was given.
	ErrHardwareIDZero = errors.New("hardware id cannot be zero")
	// ErrValueTooLong is returned when a name or value exceeds the column size.
	ErrValueTooLong = errors.New("uefi setting name or value exceeds 255 characters")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

func validate(hardwareID uint64, name, value string) error {
	if hardwareID == 0 {
		return ErrHardwareIDZero
	}
	if name == "" {
		return ErrSettingNameEmpty
	}
	if utf8.RuneCountInString(name) > maxLength || utf8.RuneCountInString(value) > maxLength {
		return ErrValueTooLong
	}

	return nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrSettingNotFound
	}

	return err
}

// Get retrieves a setting by its composite key.
func Get(db *gorm.DB, id, hardwareID uint64) (*models.UefiSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var setting models.UefiSetting
	if err := db.Where(keyQueryPattern, id, hardwareID).First(&setting).Error; err != nil {
		return nil, notFound(err)
	}

	return &setting, nil
}

// GetByName retrieves the named setting of a hardware instance.
func GetByName(db *gorm.DB, hardwareID uint64, name string) (*models.UefiSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrSettingNameEmpty
	}

	var setting models.UefiSetting
	if err := db.Where(nameQueryPattern, hardwareID, name).First(&setting).Error; err != nil {
		return nil, notFound(err)
	}

	return &setting, nil
}

// ListByHardware retrieves all settings of a hardware instance ordered by id.
func ListByHardware(db *gorm.DB, hardwareID uint64) ([]models.UefiSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.UefiSetting
	if err := db.Where(hardwareQueryPattern, hardwareID).Order("id").Find(&settings).Error; err != nil {
		return nil, err
	}

	return settings, nil
}

// GetAll retrieves every stored setting.
func GetAll(db *gorm.DB) ([]models.UefiSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.UefiSetting
	if err := db.Order("hardware_id, id").Find(&settings).Error; err != nil {
		return nil, err
	}

	return settings, nil
}

// Count returns the number of stored settings.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	if err := db.Model(&models.UefiSetting{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// Create stores a new setting for a hardware instance; the id is generated.
func Create(db *gorm.DB, hardwareID uint64, name, value string) (*models.UefiSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if err := validate(hardwareID, name, value); err != nil {
		return nil, err
	}

	// Check if setting already exists
	var existing models.UefiSetting
	result := db.Where(nameQueryPattern, hardwareID, name).First(&existing)
	if result.Error == nil {
		return nil, ErrSettingAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	setting := &models.UefiSetting{
		HardwareID:   hardwareID,
		SettingName:  &name,
		SettingValue: &value,
	}

	if err := db.Create(setting).Error; err != nil {
		return nil, err
	}

	return setting, nil
}

// Set creates or updates the named setting of a hardware instance.
func Set(db *gorm.DB, hardwareID uint64, name, value string) (*models.UefiSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if err := validate(hardwareID, name, value); err != nil {
		return nil, err
	}

	var setting models.UefiSetting
	result := db.Where(nameQueryPattern, hardwareID, name).First(&setting)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return Create(db, hardwareID, name, value)
	}
	if result.Error != nil {
		return nil, result.Error
	}

	if err := db.Model(&setting).Update("setting_value", value).Error; err != nil {
		return nil, err
	}
	setting.SettingValue = &value

	return &setting, nil
}

// Update replaces the value of an existing setting.
func Update(db *gorm.DB, id, hardwareID uint64, value string) (*models.UefiSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if utf8.RuneCountInString(value) > maxLength {
		return nil, ErrValueTooLong
	}

	setting, err := Get(db, id, hardwareID)
	if err != nil {
		return nil, err
	}

	if err = db.Model(setting).Update("setting_value", value).Error; err != nil {
		return nil, err
	}
	setting.SettingValue = &value

	return setting, nil
}

// Delete deletes a setting by its composite key.
func Delete(db *gorm.DB, id, hardwareID uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where(keyQueryPattern, id, hardwareID).Delete(&models.UefiSetting{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSettingNotFound
	}

	return nil
}

// DeleteByHardware deletes every setting of a hardware instance and
// returns how many rows were removed.
func DeleteByHardware(db *gorm.DB, hardwareID uint64) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}
	if hardwareID == 0 {
		return 0, ErrHardwareIDZero
	}

	result := db.Where(hardwareQueryPattern, hardwareID).Delete(&models.UefiSetting{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
