package http

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/vadimbarashkov/microservices/internal/entity"
)

type whoamiResponse struct {
	IPAddress string `json:"ipaddress,omitempty"`
	Language  string `json:"language,omitempty"`
	Software  string `json:"software,omitempty"`
}

// clientInfo copies the caller's headers verbatim.
func clientInfo(r *http.Request) entity.ClientInfo {
	return entity.ClientInfo{
		IPAddress: r.Header.Get("X-Forwarded-For"),
		Language:  r.Header.Get("Accept-Language"),
		Software:  r.Header.Get("User-Agent"),
	}
}

func handleWhoami(w http.ResponseWriter, r *http.Request) {
	info := clientInfo(r)

	render.JSON(w, r, whoamiResponse{
		IPAddress: info.IPAddress,
		Language:  info.Language,
		Software:  info.Software,
	})
}
