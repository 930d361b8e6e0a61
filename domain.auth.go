package main

import "time"

// User is the mock account echoed back by the auth simulation. There
// is no account database: whatever shape-valid identity the caller
// submits is reflected with fresh ids.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

// Session is the fake session handed out by the mock sign-in/sign-up
// flows. The token is never checked anywhere.
type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}
