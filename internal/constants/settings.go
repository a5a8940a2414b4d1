package constants

const (
	// Settings keys
	SettingSleepStart           = "sleep_start"
	SettingSleepEnd             = "sleep_end"
	SettingTimezone             = "timezone"
	SettingBufferMin            = "buffer_min"
	SettingDowntimeMin          = "downtime_min"
	SettingNotificationsEnabled = "notifications_enabled"
	SettingNotifyLeadMin        = "notify_lead_min"

	// Gym settings keys
	SettingGymEnabled       = "gym_enabled"
	SettingGymDaysPerWeek   = "gym_days_per_week"
	SettingGymDefaultMin    = "gym_default_min"
	SettingGymMinimumMin    = "gym_minimum_min"
	SettingGymWindow        = "gym_window"
	SettingGymBedtimeBuffer = "gym_bedtime_buffer_min"

	// Default settings values
	DefaultSleepStart           = "23:00"
	DefaultSleepEnd             = "07:00"
	DefaultTimezone             = "Local"
	DefaultBufferMin            = 10
	DefaultDowntimeMin          = 30
	DefaultNotificationsEnabled = false
	DefaultNotifyLeadMin        = 5

	DefaultGymEnabled       = false
	DefaultGymDaysPerWeek   = 3
	DefaultGymDefaultMin    = 60
	DefaultGymMinimumMin    = 30
	DefaultGymWindow        = "after_work"
	DefaultGymBedtimeBuffer = 90
)
