package checkers

import (
	"context"
	"errors"
)

// CredentialChecker reports whether a model API key was resolved at startup.
// The key itself is never echoed back.
type CredentialChecker struct {
	configured bool
}

func NewCredentialChecker(apiKey string) *CredentialChecker {
	return &CredentialChecker{configured: apiKey != ""}
}

func (c *CredentialChecker) Name() string { return "credential" }

func (c *CredentialChecker) Check(context.Context) error {
	if !c.configured {
		return errors.New("model api key is not configured")
	}
	return nil
}
