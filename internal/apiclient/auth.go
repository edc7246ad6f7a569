package apiclient

import "context"

// Login authenticates with username and password and returns a bearer token.
func (c *Client) Login(ctx context.Context, usuario, contrasena string) (*LoginResponse, error) {
	body := struct {
		Usuario    string `json:"usuario"`
		Contrasena string `json:"contrasena"`
	}{Usuario: usuario, Contrasena: contrasena}

	var resp LoginResponse
	if _, err := c.Post(ctx, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
