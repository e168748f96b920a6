package email

import "context"

func (c *Client) SendWelcomeEmail(ctx context.Context, to, username string) error {
	return c.SendEmail(ctx, to, "Welcome to Travel!", TemplateWelcome, map[string]string{
		"Username": username,
	})
}
