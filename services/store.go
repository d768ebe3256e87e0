package services

import (
	"github.com/kendall-kelly/tailorshop-api/clock"
	"github.com/kendall-kelly/tailorshop-api/models"
	"gorm.io/gorm"
)

var appClock clock.Clock = clock.NewRealClock()

// SetClock replaces the clock used for "today" defaults (primarily for testing)
func SetClock(c clock.Clock) {
	if c == nil {
		c = clock.NewRealClock()
	}
	appClock = c
}

func today() string {
	return appClock.Now().Format(models.DateLayout)
}

func dateOrToday(date string) string {
	if date == "" {
		return today()
	}
	return date
}

func exists(db *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// mustExist returns missing() when no row of model has the given id
func mustExist(db *gorm.DB, model interface{}, id uint, missing func() *Error) error {
	ok, err := exists(db, model, id)
	if err != nil {
		return translate(err, missing)
	}
	if !ok {
		return missing()
	}
	return nil
}
