package domain

import "regexp"

// Default configuration values
const (
	DefaultSlotDurationMinutes = 30
	DefaultTimezone            = "Asia/Kolkata"
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours

	MinBabyNameLength = 2
	MaxBabyNameLength = 50
	MinBabyAge        = 0
	MaxBabyAge        = 120

	MaxClosureReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// PhotoTypes перечень типов фотосессий, доступных в студии
var PhotoTypes = []string{
	"newborn",
	"toddler",
	"family",
	"Maternity",
	"Baby & family",
}

// IsValidPhotoType reports whether t is one of the offered photo types.
func IsValidPhotoType(t string) bool {
	for _, pt := range PhotoTypes {
		if pt == t {
			return true
		}
	}
	return false
}

// MobileNoPattern matches a 10-digit Indian mobile number.
var MobileNoPattern = regexp.MustCompile(`^[1-9][0-9]{9}$`)
