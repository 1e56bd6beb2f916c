package domain

// Default booking configuration values
const (
	DefaultSlotStepMinutes         = 30
	DefaultMinBookingNoticeMinutes = 60 // 1 hour
	DefaultAdvanceBookingDays      = 0  // 0 = unlimited
	DefaultHoldTTLSeconds          = 300
)

// Business validation constants
const (
	MinCourtsCount = 1
	MaxCourtsCount = 64

	MinSlotStepMinutes = 15
	MaxSlotStepMinutes = 240

	MinCustomerNameLength = 2
	MaxCustomerNameLength = 120

	MinPhoneLength = 6
	MaxPhoneLength = 20

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500

	MaxTitleLength = 200
	MaxSlugLength  = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
