package kvstore_adapter

import "github.com/google/uuid"

// Key constructors for the namespaced key/value store. All per-user records
// go through these so the namespace stays in one place.

func historyKey(userID uuid.UUID) string {
	return "history_" + userID.String()
}

func preferencesKey(userID uuid.UUID) string {
	return "preferences_" + userID.String()
}
