package ocr

// Profile is one recognition configuration. Profiles are tried in order;
// earlier entries win confidence ties.
type Profile struct {
	Name string
	// PSM is the Tesseract page segmentation mode. 0 leaves the engine default.
	PSM int
	// Whitelist restricts recognized characters. Empty means unrestricted.
	Whitelist string
}

// receiptWhitelist keeps the character set to what appears on store receipts,
// which cuts down on hallucinated punctuation.
const receiptWhitelist = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789.,$()@/x-+ "

// DefaultProfiles returns the ordered attempt list: the tuned profile first,
// then progressively more generic fallbacks, then the engine default.
func DefaultProfiles() []Profile {
	return []Profile{
		{Name: "receipt_tuned", PSM: 6, Whitelist: receiptWhitelist},
		{Name: "fallback_psm_4", PSM: 4, Whitelist: receiptWhitelist},
		{Name: "fallback_psm_11", PSM: 11, Whitelist: receiptWhitelist},
		{Name: "engine_default", PSM: 0},
	}
}

// SimpleProfile is the maximally permissive last resort, tried only when
// every profile in the ordered list raised.
func SimpleProfile() Profile {
	return Profile{Name: "simple", PSM: 3}
}
