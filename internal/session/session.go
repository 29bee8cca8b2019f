package session

import "sync"

// User is the operator signed into the console.
type User struct {
	Name string
	Role string
}

// Context is the explicitly-scoped auth/session state. It is built once at
// startup and passed to whatever needs it; nothing reads auth state from
// package-level singletons.
type Context struct {
	mu    sync.RWMutex
	user  *User
	token string
}

// New creates a session context holding the opaque bearer token and the
// signed-in user, either of which may be absent.
func New(token string, user *User) *Context {
	return &Context{user: user, token: token}
}

// CurrentUser returns the signed-in user, or nil.
func (c *Context) CurrentUser() *User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user
}

// Token returns the bearer credential attached to every API call.
func (c *Context) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Authenticated reports whether a credential is present.
func (c *Context) Authenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != ""
}

// Logout is the single teardown entry point: it drops both the user and the
// credential.
func (c *Context) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = nil
	c.token = ""
}
