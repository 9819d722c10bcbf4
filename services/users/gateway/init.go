package gateway

import (
	natspkg "github.com/scrapline/scrapline/internal/pkg/nats"
	"github.com/scrapline/scrapline/services/users"
)

// UserGateway implements the users.UserGW interface
type UserGateway struct {
	natsClient *natspkg.Client
}

// NewUserGW creates a new user gateway
func NewUserGW(natsClient *natspkg.Client) users.UserGW {
	return &UserGateway{
		natsClient: natsClient,
	}
}
