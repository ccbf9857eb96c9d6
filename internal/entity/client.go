package entity

// ClientInfo describes the caller of a request as reported by its headers.
type ClientInfo struct {
	IPAddress string
	Language  string
	Software  string
}
