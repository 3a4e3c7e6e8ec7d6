package gateway

import (
	"context"
	"net/http"
	"net/url"
)

// SubmitFormC files the visitor-registration (Form C) application. The
// service flips the user's form_c_status to "submitted" on success.
func (c *Client) SubmitFormC(ctx context.Context, token string, application FormCApplication) error {
	return c.do(ctx, http.MethodPost, "/visitor-registrations", token, application, nil)
}

func (c *Client) Profile(ctx context.Context, token string) (*VisitorProfile, error) {
	var profile VisitorProfile
	if err := c.do(ctx, http.MethodGet, "/users/profile", token, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token string, profile VisitorProfile) error {
	return c.do(ctx, http.MethodPut, "/users/profile", token, profile, nil)
}

func (c *Client) Dashboard(ctx context.Context, token string) (*DashboardData, error) {
	var data DashboardData
	if err := c.do(ctx, http.MethodGet, "/users/dashboard", token, nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) Notifications(ctx context.Context, token string) ([]Notification, error) {
	var list []Notification
	if err := c.do(ctx, http.MethodGet, "/notifications", token, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodPut, "/notifications/read/"+url.PathEscape(id), token, nil, nil)
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPut, "/notifications/read-all", token, nil, nil)
}

func (c *Client) DeleteNotification(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/notifications/"+url.PathEscape(id), token, nil, nil)
}

// DistrictInfo fetches the static district content. It needs no credential.
func (c *Client) DistrictInfo(ctx context.Context) (*DistrictInfo, error) {
	var info DistrictInfo
	if err := c.do(ctx, http.MethodGet, "/district/info", "", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
