package auth_case

type SessionTracker struct {
	JTI       string
	UserID    string
	Role      string
	Token     string
	Device    string
	UserAgent string
	IP        string
	LoginAt   string
}
