// Package vaultsdk is the Go client for the passkeep API. It also owns the
// wire types, which the server encodes directly.
//
// Unauthenticated calls hang off Client; Login returns a Session that
// carries the bearer token for everything else:
//
//	c := vaultsdk.NewClient("http://localhost:8080")
//	s, err := c.Login(ctx, "alice", "passw0rd!")
//	if err != nil { ... }
//	group, err := s.CreateGroup(ctx, "work", "")
package vaultsdk
