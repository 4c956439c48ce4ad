package constant

type contextKey string

// ClaimsKey holds the verified session claims of an authenticated request.
const ClaimsKey contextKey = "claims"
