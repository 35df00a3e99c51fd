package apiclient

import (
	"Tracer-Study-Portal/src/utils"

	"github.com/gofiber/fiber/v2"
)

// Storage is where a logged-in client keeps its token: Local survives the
// browser session, Session lasts for one login session.
type Storage interface {
	Local(key string) (string, bool)
	Session(key string) (string, bool)
}

// TokenSource finds the bearer token for an outgoing request.
type TokenSource interface {
	Token() (string, bool)
}

// StorageTokenSource checks, in order: local access_token, local token,
// session access_token, session token.
type StorageTokenSource struct {
	Storage Storage
}

var tokenKeys = []string{"access_token", "token"}

func (s StorageTokenSource) Token() (string, bool) {
	if s.Storage == nil {
		return "", false
	}
	for _, lookup := range []func(string) (string, bool){s.Storage.Local, s.Storage.Session} {
		for _, key := range tokenKeys {
			if v, ok := lookup(key); ok && v != "" {
				return v, true
			}
		}
	}
	return "", false
}

// StaticToken is a fixed token, e.g. for the worker.
type StaticToken string

func (t StaticToken) Token() (string, bool) {
	return string(t), t != ""
}

// FiberStorage maps local storage to the request cookies and session storage
// to the Redis session hash of the logged-in user.
type FiberStorage struct {
	Ctx *fiber.Ctx
}

func (f FiberStorage) Local(key string) (string, bool) {
	v := f.Ctx.Cookies(key)
	return v, v != ""
}

func (f FiberStorage) Session(key string) (string, bool) {
	sessionID, _ := f.Ctx.Locals("sessionId").(string)
	return utils.SessionValue(sessionID, key)
}
