package backend

import (
	"context"
	"fmt"

	"hardware-store/models"
)

// rawUser tolerates the user-shape drift across backend revisions
// (name|userName|fullName).
type rawUser struct {
	ID       int    `json:"id"`
	UserID   int    `json:"userId"`
	Name     string `json:"name"`
	UserName string `json:"userName"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

func (r rawUser) toUser() models.User {
	u := models.User{
		ID:      r.ID,
		Name:    r.Name,
		Email:   r.Email,
		Role:    r.Role,
		Address: r.Address,
		Phone:   r.Phone,
	}
	if u.ID == 0 {
		u.ID = r.UserID
	}
	if u.Name == "" {
		u.Name = r.UserName
	}
	if u.Name == "" {
		u.Name = r.FullName
	}
	if u.Role == "" {
		u.Role = "USER"
	}
	return u
}

func (c *Client) Login(ctx context.Context, email, password string) (models.User, error) {
	body := map[string]string{"email": email, "password": password}
	var raw rawUser
	if err := c.post(ctx, "/api/users/login", body, &raw); err != nil {
		return models.User{}, err
	}
	return raw.toUser(), nil
}

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var raw rawUser
	if err := c.post(ctx, "/api/users/register", req, &raw); err != nil {
		return models.User{}, err
	}
	user := raw.toUser()
	if user.Email == "" {
		user.Email = req.Email
	}
	if user.Name == "" {
		user.Name = req.Name
	}
	return user, nil
}

func (c *Client) ChangePassword(ctx context.Context, userID int, req models.ChangePasswordRequest) error {
	return c.post(ctx, fmt.Sprintf("/api/users/%d/change-password", userID), req, nil)
}

func (c *Client) FetchUsers(ctx context.Context) ([]models.User, error) {
	var raws []rawUser
	if err := c.get(ctx, "/api/users", &raws); err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(raws))
	for _, r := range raws {
		users = append(users, r.toUser())
	}
	return users, nil
}

func (c *Client) FetchUser(ctx context.Context, id int) (*models.User, error) {
	var raw rawUser
	if err := c.get(ctx, fmt.Sprintf("/api/users/%d", id), &raw); err != nil {
		return nil, err
	}
	user := raw.toUser()
	return &user, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int, req models.UpdateUserRequest) (*models.User, error) {
	var raw rawUser
	if err := c.put(ctx, fmt.Sprintf("/api/users/%d", id), req, &raw); err != nil {
		return nil, err
	}
	user := raw.toUser()
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/users/%d", id))
}
