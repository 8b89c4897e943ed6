package models

// Settings is the single store-wide configuration document. It is kept as a
// map because updates are shallow merges and the admin panel is free to add
// keys the backend does not know about; a struct would silently drop them.
//
// Well-known keys: storeName, supportEmail, whatsappNumber, autoTopup,
// adminProfilePic, gameIcons (object gameId -> image path),
// paymentMethodsBanner.
type Settings map[string]any

// GetString returns the value for key when it is a string, else "".
func (s Settings) GetString(key string) string {
	v, _ := s[key].(string)
	return v
}

// GameIcons returns the gameIcons sub-object, creating it if absent.
func (s Settings) GameIcons() map[string]any {
	if icons, ok := s["gameIcons"].(map[string]any); ok {
		return icons
	}
	icons := map[string]any{}
	s["gameIcons"] = icons
	return icons
}
