package api

import "context"

// Login exchanges credentials for an access token. Unlike the other calls,
// login is bounded by the client's auth timeout so a dead server fails the
// form quickly.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.authTimeout)
	defer cancel()

	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp LoginResponse
	if err := c.post(ctx, "/login", body, &resp); err != nil {
		return nil, err
	}
	if resp.TokenType == "" {
		resp.TokenType = "bearer"
	}
	return &resp, nil
}

// Register creates a new account. Bounded by the auth timeout like Login.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.authTimeout)
	defer cancel()

	var resp RegisterResponse
	if err := c.post(ctx, "/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the authenticated user's identity.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/user/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
