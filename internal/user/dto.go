// AngelaMos | 2026
// dto.go

package user

import (
	"github.com/carterperez-dev/socialdash/internal/storage"
)

// UserResponse is the client view of a user. It never carries the password.
type UserResponse struct {
	ID           int64   `json:"id"`
	Username     string  `json:"username"`
	Name         string  `json:"name"`
	BusinessName *string `json:"businessName"`
	Email        string  `json:"email"`
}

func ToUserResponse(u *storage.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Name:         u.Name,
		BusinessName: u.BusinessName,
		Email:        u.Email,
	}
}
