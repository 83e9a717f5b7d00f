// Package omni is a client for the Omni messaging gateway, which fronts
// channel instances such as WhatsApp, Discord or Telegram bridges.
package omni

import "context"

// Gateway is the contract the rest of the application depends on.
type Gateway interface {
	// SendText sends a text message through the named instance.
	// A response with Success == false is not an error.
	SendText(ctx context.Context, instanceName string, req SendTextRequest) (*SendTextResponse, error)

	// ListInstances returns the configured instances in gateway order.
	ListInstances(ctx context.Context) ([]InstanceInfo, error)
}
