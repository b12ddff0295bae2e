package follwit

import (
	"crypto/sha1"
	"encoding/hex"
)

// Credentials identify the account requests are made for. PasswordHash is the
// already hashed password; plaintext passwords are never stored.
type Credentials struct {
	Username     string
	PasswordHash string
}

// PasswordHasher turns a plaintext password into the digest the service expects.
type PasswordHasher func(password string) string

// SHA1Hasher is the digest follw.it accounts are keyed on: lowercase hex SHA-1.
func SHA1Hasher(password string) string {
	sum := sha1.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Credentials returns the current session snapshot.
func (c *Client) Credentials() Credentials {
	return *c.session.Load()
}

// Username returns the session username.
func (c *Client) Username() string {
	return c.session.Load().Username
}

// SetCredentials replaces the session. The hash is stored as given.
func (c *Client) SetCredentials(creds Credentials) {
	c.session.Store(&creds)
}

// SetUsername changes the session username and keeps the password hash.
func (c *Client) SetUsername(username string) {
	c.updateSession(func(s *Credentials) { s.Username = username })
}

// SetPassword hashes password and stores the digest in the session.
func (c *Client) SetPassword(password string) {
	hash := c.hashPassword(password)
	c.updateSession(func(s *Credentials) { s.PasswordHash = hash })
}

func (c *Client) updateSession(fn func(*Credentials)) {
	for {
		current := c.session.Load()
		next := *current
		fn(&next)
		if c.session.CompareAndSwap(current, &next) {
			return
		}
	}
}

// stamp copies the session into the credentials fragment of a request. Each request
// reads the session exactly once.
func (c *Client) stamp() credentials {
	s := c.session.Load()
	return credentials{Username: s.Username, Password: s.PasswordHash}
}

// queryUsername substitutes the session username for an empty argument.
func (c *Client) queryUsername(username string) string {
	if username == "" {
		return c.Username()
	}
	return username
}
