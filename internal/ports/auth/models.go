package auth

// Claims representa la identidad extraída del token (o del header dev).
type Claims struct {
	UserID string
	Email  string
	Role   string // patient, provider, ... (informativo; los permisos salen del care team)
}
