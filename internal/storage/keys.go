// Package storage provides the key-value persistence layer for the
// chequeflow application.
package storage

// Fixed keys for process-wide records.
const (
	// KeyUsers holds the directory of all known users as a JSON array.
	KeyUsers = "cp_users"
	// KeyLastUser holds the ID of the last active user.
	KeyLastUser = "cp_last_active_user"
)

// UserHistoryKey returns the key for a user's print history.
func UserHistoryKey(userID string) string {
	return "cp_history_" + userID
}

// UserSettingsKey returns the key for a user's layout and print settings.
func UserSettingsKey(userID string) string {
	return "cp_settings_" + userID
}
