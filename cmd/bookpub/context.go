package main

import (
	"os"
	"strings"

	"bookpub/internal/client"
)

const defaultServer = "http://localhost:8000"

type commandContext struct {
	serverFlag *string
	jsonFlag   *bool
}

func newCommandContext(serverFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{serverFlag: serverFlag, jsonFlag: jsonFlag}
}

func (c *commandContext) serverURL() string {
	if c.serverFlag != nil {
		if v := strings.TrimSpace(*c.serverFlag); v != "" {
			return v
		}
	}
	if v := strings.TrimSpace(os.Getenv("BOOKPUB_SERVER")); v != "" {
		return v
	}
	return defaultServer
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

func (c *commandContext) client() *client.Client {
	return client.New(c.serverURL(), nil)
}
